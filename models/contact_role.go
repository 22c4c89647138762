package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactRole is a catalog of functional roles such as Owner or Operator
type ContactRole struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	RoleName    string    `json:"roleName" gorm:"uniqueIndex;not null"`
	Description string    `json:"description" gorm:"default:null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName sets the table name for ContactRole model
func (ContactRole) TableName() string {
	return "contact_roles"
}

func (r *ContactRole) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
