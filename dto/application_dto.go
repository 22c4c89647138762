package dto

import (
	"time"

	"github.com/appinventory/models"
)

// CreateApplicationRequest creates an application under a business unit
type CreateApplicationRequest struct {
	Name             string                   `json:"name" binding:"required"`
	Description      string                   `json:"description"`
	Status           models.ApplicationStatus `json:"status" binding:"required"`
	BusinessUnitID   string                   `json:"businessUnitId" binding:"required"`
	EndOfLifeDate    *models.Date             `json:"endOfLifeDate"`
	EndOfSupportDate *models.Date             `json:"endOfSupportDate"`
}

// UpdateApplicationRequest carries partial updates; nil fields are left
// unchanged
type UpdateApplicationRequest struct {
	Name             *string                   `json:"name"`
	Description      *string                   `json:"description"`
	Status           *models.ApplicationStatus `json:"status"`
	BusinessUnitID   *string                   `json:"businessUnitId"`
	EndOfLifeDate    *models.Date              `json:"endOfLifeDate"`
	EndOfSupportDate *models.Date              `json:"endOfSupportDate"`
}

// ApplicationResponse is the full application representation
type ApplicationResponse struct {
	ID               string                   `json:"id"`
	Name             string                   `json:"name"`
	Description      string                   `json:"description"`
	Status           models.ApplicationStatus `json:"status"`
	BusinessUnit     BusinessUnitSummary      `json:"businessUnit"`
	EndOfLifeDate    *models.Date             `json:"endOfLifeDate"`
	EndOfSupportDate *models.Date             `json:"endOfSupportDate"`
	CreatedAt        time.Time                `json:"createdAt"`
	UpdatedAt        time.Time                `json:"updatedAt"`
}

// ApplicationSummary is the compact form embedded in deployment and
// dependency responses
type ApplicationSummary struct {
	ID               string                   `json:"id"`
	Name             string                   `json:"name"`
	Status           models.ApplicationStatus `json:"status"`
	BusinessUnitName string                   `json:"businessUnitName"`
}

// ApplicationContactResponse pairs an application with one of its contacts
type ApplicationContactResponse struct {
	ApplicationID string          `json:"applicationId"`
	Contact       ContactResponse `json:"contact"`
}
