package dto

import (
	"time"
)

// RecordDeploymentRequest records a deployment as a historical fact
type RecordDeploymentRequest struct {
	ApplicationID  string    `json:"applicationId" binding:"required"`
	VersionID      string    `json:"versionId" binding:"required"`
	EnvironmentID  string    `json:"environmentId" binding:"required"`
	DeploymentDate time.Time `json:"deploymentDate" binding:"required"`
	DeployedBy     string    `json:"deployedBy"`
	Notes          string    `json:"notes"`
}

// DeploymentResponse is the full deployment representation
type DeploymentResponse struct {
	ID             string             `json:"id"`
	Application    ApplicationSummary `json:"application"`
	Version        VersionSummary     `json:"version"`
	Environment    EnvironmentSummary `json:"environment"`
	DeploymentDate time.Time          `json:"deploymentDate"`
	DeployedBy     string             `json:"deployedBy"`
	Notes          string             `json:"notes"`
	CreatedAt      time.Time          `json:"createdAt"`
}

// CurrentDeploymentStateResponse is one row of the latest-deployment-per-
// application/environment aggregation
type CurrentDeploymentStateResponse struct {
	Application    ApplicationSummary `json:"application"`
	Environment    EnvironmentSummary `json:"environment"`
	Version        VersionSummary     `json:"version"`
	DeploymentDate time.Time          `json:"deploymentDate"`
	DeployedBy     string             `json:"deployedBy"`
}
