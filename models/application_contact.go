package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicationContact associates an application with a contact
type ApplicationContact struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid"`
	ApplicationID string    `json:"applicationId" gorm:"type:uuid;not null;uniqueIndex:idx_application_contact"`
	ContactID     string    `json:"contactId" gorm:"type:uuid;not null;uniqueIndex:idx_application_contact"`
	CreatedAt     time.Time `json:"createdAt"`

	// Relations
	Contact Contact `json:"contact,omitempty" gorm:"foreignKey:ContactID"`
}

// TableName sets the table name for ApplicationContact model
func (ApplicationContact) TableName() string {
	return "application_contacts"
}

func (ac *ApplicationContact) BeforeCreate(tx *gorm.DB) error {
	if ac.ID == "" {
		ac.ID = uuid.NewString()
	}
	return nil
}
