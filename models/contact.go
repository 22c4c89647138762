package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact bundles persons under one contact role with a designated primary
// person
type Contact struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid"`
	ContactRoleID string    `json:"contactRoleId" gorm:"type:uuid;not null;index"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	// Relations
	ContactRole    ContactRole     `json:"contactRole,omitempty" gorm:"foreignKey:ContactRoleID"`
	ContactPersons []ContactPerson `json:"contactPersons,omitempty" gorm:"foreignKey:ContactID"`
}

// TableName sets the table name for Contact model
func (Contact) TableName() string {
	return "contacts"
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// ContactPerson links a person to a contact. At most one row per
// (contact, person) pair; exactly one row per contact carries is_primary.
type ContactPerson struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	ContactID string    `json:"contactId" gorm:"type:uuid;not null;uniqueIndex:idx_contact_person"`
	PersonID  string    `json:"personId" gorm:"type:uuid;not null;uniqueIndex:idx_contact_person"`
	IsPrimary bool      `json:"isPrimary" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"createdAt"`

	// Relations
	Person Person `json:"person,omitempty" gorm:"foreignKey:PersonID"`
}

// TableName sets the table name for ContactPerson model
func (ContactPerson) TableName() string {
	return "contact_persons"
}

func (cp *ContactPerson) BeforeCreate(tx *gorm.DB) error {
	if cp.ID == "" {
		cp.ID = uuid.NewString()
	}
	return nil
}
