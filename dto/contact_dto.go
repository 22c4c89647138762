package dto

import "time"

// CreateContactRequest creates a contact bundling persons under a role. The
// primary person must appear in the person id list.
type CreateContactRequest struct {
	ContactRoleID   string   `json:"contactRoleId" binding:"required"`
	PersonIDs       []string `json:"personIds" binding:"required,min=1"`
	PrimaryPersonID string   `json:"primaryPersonId" binding:"required"`
}

// PersonInContactResponse pairs a person with their primary flag within a
// contact
type PersonInContactResponse struct {
	Person    PersonResponse `json:"person"`
	IsPrimary bool           `json:"isPrimary"`
}

// ContactResponse is the full contact representation
type ContactResponse struct {
	ID          string                    `json:"id"`
	ContactRole ContactRoleResponse       `json:"contactRole"`
	Persons     []PersonInContactResponse `json:"persons"`
	CreatedAt   time.Time                 `json:"createdAt"`
	UpdatedAt   time.Time                 `json:"updatedAt"`
}
