package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Version represents a released version of an application
type Version struct {
	ID                string    `json:"id" gorm:"primaryKey;type:uuid"`
	ApplicationID     string    `json:"applicationId" gorm:"type:uuid;not null;uniqueIndex:idx_app_version"`
	VersionIdentifier string    `json:"versionIdentifier" gorm:"not null;uniqueIndex:idx_app_version"`
	ExternalReference string    `json:"externalReference" gorm:"default:null"`
	ReleaseDate       Date      `json:"releaseDate" gorm:"type:date;not null"`
	EndOfLifeDate     *Date     `json:"endOfLifeDate" gorm:"type:date;default:null"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`

	// Relations
	Application Application `json:"application,omitempty" gorm:"foreignKey:ApplicationID"`
}

// TableName sets the table name for Version model
func (Version) TableName() string {
	return "versions"
}

func (v *Version) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
