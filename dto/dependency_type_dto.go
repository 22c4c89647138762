package dto

import "time"

// CreateDependencyTypeRequest creates a dependency type catalog entry
type CreateDependencyTypeRequest struct {
	TypeName    string `json:"typeName" binding:"required"`
	Description string `json:"description"`
}

// UpdateDependencyTypeRequest carries partial updates; nil fields are left
// unchanged
type UpdateDependencyTypeRequest struct {
	TypeName    *string `json:"typeName"`
	Description *string `json:"description"`
}

// DependencyTypeResponse is the full dependency type representation
type DependencyTypeResponse struct {
	ID          string    `json:"id"`
	TypeName    string    `json:"typeName"`
	Description string    `json:"description"`
	IsCustom    bool      `json:"isCustom"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
