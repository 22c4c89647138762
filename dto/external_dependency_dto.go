package dto

import (
	"time"

	"github.com/appinventory/models"
)

// CreateExternalDependencyRequest creates a dependency under an application
type CreateExternalDependencyRequest struct {
	DependencyTypeID       string       `json:"dependencyTypeId" binding:"required"`
	Name                   string       `json:"name" binding:"required"`
	Description            string       `json:"description"`
	TechnicalDocumentation string       `json:"technicalDocumentation"`
	ValidityStartDate      *models.Date `json:"validityStartDate"`
	ValidityEndDate        *models.Date `json:"validityEndDate"`
}

// UpdateExternalDependencyRequest carries partial updates; nil fields are
// left unchanged
type UpdateExternalDependencyRequest struct {
	DependencyTypeID       *string      `json:"dependencyTypeId"`
	Name                   *string      `json:"name"`
	Description            *string      `json:"description"`
	TechnicalDocumentation *string      `json:"technicalDocumentation"`
	ValidityStartDate      *models.Date `json:"validityStartDate"`
	ValidityEndDate        *models.Date `json:"validityEndDate"`
}

// ExternalDependencyResponse is the full dependency representation including
// the derived status fields
type ExternalDependencyResponse struct {
	ID                     string                 `json:"id"`
	Application            ApplicationSummary     `json:"application"`
	DependencyType         DependencyTypeResponse `json:"dependencyType"`
	Name                   string                 `json:"name"`
	Description            string                 `json:"description"`
	TechnicalDocumentation string                 `json:"technicalDocumentation"`
	ValidityStartDate      *models.Date           `json:"validityStartDate"`
	ValidityEndDate        *models.Date           `json:"validityEndDate"`
	IsActive               bool                   `json:"isActive"`
	DaysUntilExpiration    *int                   `json:"daysUntilExpiration"`
	Status                 string                 `json:"status"`
	CreatedAt              time.Time              `json:"createdAt"`
	UpdatedAt              time.Time              `json:"updatedAt"`
}
