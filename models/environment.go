package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Environment represents a deployment target such as dev, staging or prod
type Environment struct {
	ID               string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name             string    `json:"name" gorm:"uniqueIndex;not null"`
	Description      string    `json:"description" gorm:"default:null"`
	IsProduction     bool      `json:"isProduction" gorm:"not null;default:false"`
	CriticalityLevel *int      `json:"criticalityLevel" gorm:"default:null"` // 1-5 when set
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// TableName sets the table name for Environment model
func (Environment) TableName() string {
	return "environments"
}

func (e *Environment) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
