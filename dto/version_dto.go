package dto

import (
	"time"

	"github.com/appinventory/models"
)

// CreateVersionRequest creates a version under an application
type CreateVersionRequest struct {
	VersionIdentifier string       `json:"versionIdentifier" binding:"required"`
	ExternalReference string       `json:"externalReference"`
	ReleaseDate       *models.Date `json:"releaseDate" binding:"required"`
	EndOfLifeDate     *models.Date `json:"endOfLifeDate"`
}

// UpdateVersionRequest carries partial updates; nil fields are left unchanged
type UpdateVersionRequest struct {
	VersionIdentifier *string      `json:"versionIdentifier"`
	ExternalReference *string      `json:"externalReference"`
	ReleaseDate       *models.Date `json:"releaseDate"`
	EndOfLifeDate     *models.Date `json:"endOfLifeDate"`
}

// VersionResponse is the full version representation
type VersionResponse struct {
	ID                string       `json:"id"`
	ApplicationID     string       `json:"applicationId"`
	ApplicationName   string       `json:"applicationName"`
	VersionIdentifier string       `json:"versionIdentifier"`
	ExternalReference string       `json:"externalReference"`
	ReleaseDate       models.Date  `json:"releaseDate"`
	EndOfLifeDate     *models.Date `json:"endOfLifeDate"`
	CreatedAt         time.Time    `json:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt"`
}

// VersionSummary is the compact form embedded in deployment responses
type VersionSummary struct {
	ID                string      `json:"id"`
	VersionIdentifier string      `json:"versionIdentifier"`
	ReleaseDate       models.Date `json:"releaseDate"`
}
