package dto

import "time"

// CreateContactRoleRequest creates a contact role catalog entry
type CreateContactRoleRequest struct {
	RoleName    string `json:"roleName" binding:"required"`
	Description string `json:"description"`
}

// UpdateContactRoleRequest carries partial updates; nil fields are left
// unchanged
type UpdateContactRoleRequest struct {
	RoleName    *string `json:"roleName"`
	Description *string `json:"description"`
}

// ContactRoleResponse is the full contact role representation
type ContactRoleResponse struct {
	ID          string    `json:"id"`
	RoleName    string    `json:"roleName"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
