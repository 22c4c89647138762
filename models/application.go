package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicationStatus represents the lifecycle stage of an application
type ApplicationStatus string

const (
	StatusIdea           ApplicationStatus = "IDEA"
	StatusInDevelopment  ApplicationStatus = "IN_DEVELOPMENT"
	StatusInService      ApplicationStatus = "IN_SERVICE"
	StatusMaintenance    ApplicationStatus = "MAINTENANCE"
	StatusDecommissioned ApplicationStatus = "DECOMMISSIONED"
)

// IsValid reports whether the status is one of the known lifecycle stages.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case StatusIdea, StatusInDevelopment, StatusInService, StatusMaintenance, StatusDecommissioned:
		return true
	}
	return false
}

// Application represents a software application in the inventory
type Application struct {
	ID               string            `json:"id" gorm:"primaryKey;type:uuid"`
	Name             string            `json:"name" gorm:"not null;index"`
	Description      string            `json:"description" gorm:"default:null"`
	Status           ApplicationStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	BusinessUnitID   string            `json:"businessUnitId" gorm:"type:uuid;not null;index"`
	EndOfLifeDate    *Date             `json:"endOfLifeDate" gorm:"type:date;default:null"`
	EndOfSupportDate *Date             `json:"endOfSupportDate" gorm:"type:date;default:null"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`

	// Relations
	BusinessUnit BusinessUnit         `json:"businessUnit,omitempty" gorm:"foreignKey:BusinessUnitID"`
	Versions     []Version            `json:"versions,omitempty" gorm:"foreignKey:ApplicationID"`
	Dependencies []ExternalDependency `json:"dependencies,omitempty" gorm:"foreignKey:ApplicationID"`
}

// TableName sets the table name for Application model
func (Application) TableName() string {
	return "applications"
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
