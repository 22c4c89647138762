package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appinventory/dto"
)

func TestPersonEmailUniqueness(t *testing.T) {
	setupTestDB(t)
	svc := NewPersonService()

	ada, err := svc.Create(dto.CreatePersonRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	})
	require.NoError(t, err)

	_, err = svc.Create(dto.CreatePersonRequest{
		FirstName: "Ada",
		LastName:  "Byron",
		Email:     "ada@example.com",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	grace, err := svc.Create(dto.CreatePersonRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
	})
	require.NoError(t, err)

	// Re-submitting the unchanged email is not a collision.
	phone := "+1-555-0100"
	_, err = svc.Update(ada.ID, dto.UpdatePersonRequest{Email: &ada.Email, Phone: &phone})
	require.NoError(t, err)

	_, err = svc.Update(grace.ID, dto.UpdatePersonRequest{Email: &ada.Email})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestPersonSearch(t *testing.T) {
	setupTestDB(t)
	svc := NewPersonService()

	seedPerson(t, "Ada", "Lovelace", "ada@example.com")
	seedPerson(t, "Grace", "Hopper", "grace@example.com")
	seedPerson(t, "Alan", "Turing", "alan@computing.org")

	req := dto.PageRequest{Size: 20, SortBy: "lastName", SortDirection: "asc"}

	byName, err := svc.Search("hopper", req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), byName.TotalItems)

	byEmail, err := svc.Search("example.com", req)
	require.NoError(t, err)
	assert.Equal(t, int64(2), byEmail.TotalItems)
}

func TestDeletePersonBlockedByContacts(t *testing.T) {
	setupTestDB(t)
	svc := NewPersonService()
	contactSvc := NewContactService()

	role := seedContactRole(t, "Owner")
	ada := seedPerson(t, "Ada", "Lovelace", "ada@example.com")

	_, err := contactSvc.Create(dto.CreateContactRequest{
		ContactRoleID:   role.ID,
		PersonIDs:       []string{ada.ID},
		PrimaryPersonID: ada.ID,
	})
	require.NoError(t, err)

	err = svc.Delete(ada.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contacts")
}
