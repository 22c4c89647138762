package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DependencyType is a catalog entry classifying external dependencies
type DependencyType struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	TypeName    string    `json:"typeName" gorm:"uniqueIndex;not null"`
	Description string    `json:"description" gorm:"default:null"`
	IsCustom    bool      `json:"isCustom" gorm:"not null;default:false"` // true for user-created types
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName sets the table name for DependencyType model
func (DependencyType) TableName() string {
	return "dependency_types"
}

func (t *DependencyType) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
