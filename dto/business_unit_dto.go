package dto

import "time"

// CreateBusinessUnitRequest creates a business unit
type CreateBusinessUnitRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateBusinessUnitRequest carries partial updates; nil fields are left
// unchanged
type UpdateBusinessUnitRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// BusinessUnitResponse is the full business unit representation
type BusinessUnitResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BusinessUnitSummary is the compact form embedded in application responses
type BusinessUnitSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
