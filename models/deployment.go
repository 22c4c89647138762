package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Deployment is an append-only record of a version reaching an environment.
// Rows are never updated; a correction is a newer deployment.
type Deployment struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid"`
	ApplicationID  string    `json:"applicationId" gorm:"type:uuid;not null;index"`
	VersionID      string    `json:"versionId" gorm:"type:uuid;not null;index"`
	EnvironmentID  string    `json:"environmentId" gorm:"type:uuid;not null;index"`
	DeploymentDate time.Time `json:"deploymentDate" gorm:"not null;index"`
	DeployedBy     string    `json:"deployedBy" gorm:"default:null"`
	Notes          string    `json:"notes" gorm:"default:null"`
	CreatedAt      time.Time `json:"createdAt"`

	// Relations
	Application Application `json:"application,omitempty" gorm:"foreignKey:ApplicationID"`
	Version     Version     `json:"version,omitempty" gorm:"foreignKey:VersionID"`
	Environment Environment `json:"environment,omitempty" gorm:"foreignKey:EnvironmentID"`
}

// TableName sets the table name for Deployment model
func (Deployment) TableName() string {
	return "deployments"
}

func (d *Deployment) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
