package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessUnit represents an organizational unit that owns applications
type BusinessUnit struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Description string    `json:"description" gorm:"default:null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Relations
	Applications []Application `json:"applications,omitempty" gorm:"foreignKey:BusinessUnitID"`
}

// TableName sets the table name for BusinessUnit model
func (BusinessUnit) TableName() string {
	return "business_units"
}

func (b *BusinessUnit) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
