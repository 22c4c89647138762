package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DependencyStatus is derived from the validity window on every read and is
// never stored.
const (
	DependencyStatusActive      = "ACTIVE"
	DependencyStatusExpiring    = "EXPIRING"
	DependencyStatusExpired     = "EXPIRED"
	DependencyStatusNotYetValid = "NOT_YET_VALID"
)

// ExpiringWindowDays is the lead time before expiry during which a dependency
// counts as EXPIRING.
const ExpiringWindowDays = 30

// IsValidDependencyStatus reports whether s is a known derived status value.
func IsValidDependencyStatus(s string) bool {
	switch s {
	case DependencyStatusActive, DependencyStatusExpiring, DependencyStatusExpired, DependencyStatusNotYetValid:
		return true
	}
	return false
}

// ExternalDependency represents a contract, license or service an application
// depends on, with an optional validity window
type ExternalDependency struct {
	ID                     string    `json:"id" gorm:"primaryKey;type:uuid"`
	ApplicationID          string    `json:"applicationId" gorm:"type:uuid;not null;index"`
	DependencyTypeID       string    `json:"dependencyTypeId" gorm:"type:uuid;not null;index"`
	Name                   string    `json:"name" gorm:"not null"`
	Description            string    `json:"description" gorm:"default:null"`
	TechnicalDocumentation string    `json:"technicalDocumentation" gorm:"default:null"`
	ValidityStartDate      *Date     `json:"validityStartDate" gorm:"type:date;default:null"`
	ValidityEndDate        *Date     `json:"validityEndDate" gorm:"type:date;default:null"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`

	// Relations
	Application    Application    `json:"application,omitempty" gorm:"foreignKey:ApplicationID"`
	DependencyType DependencyType `json:"dependencyType,omitempty" gorm:"foreignKey:DependencyTypeID"`
}

// TableName sets the table name for ExternalDependency model
func (ExternalDependency) TableName() string {
	return "external_dependencies"
}

func (d *ExternalDependency) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
