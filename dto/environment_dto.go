package dto

import "time"

// CreateEnvironmentRequest creates a deployment environment
type CreateEnvironmentRequest struct {
	Name             string `json:"name" binding:"required"`
	Description      string `json:"description"`
	IsProduction     bool   `json:"isProduction"`
	CriticalityLevel *int   `json:"criticalityLevel"`
}

// UpdateEnvironmentRequest carries partial updates; nil fields are left
// unchanged
type UpdateEnvironmentRequest struct {
	Name             *string `json:"name"`
	Description      *string `json:"description"`
	IsProduction     *bool   `json:"isProduction"`
	CriticalityLevel *int    `json:"criticalityLevel"`
}

// EnvironmentResponse is the full environment representation
type EnvironmentResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	IsProduction     bool      `json:"isProduction"`
	CriticalityLevel *int      `json:"criticalityLevel"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// EnvironmentSummary is the compact form embedded in deployment responses
type EnvironmentSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	IsProduction bool   `json:"isProduction"`
}
