package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appinventory/dto"
	"github.com/appinventory/utils"
)

func primaryOf(t *testing.T, contact dto.ContactResponse) string {
	t.Helper()
	primary := ""
	for _, entry := range contact.Persons {
		if entry.IsPrimary {
			require.Empty(t, primary, "more than one primary person")
			primary = entry.Person.ID
		}
	}
	return primary
}

func TestCreateContact(t *testing.T) {
	setupTestDB(t)
	svc := NewContactService()

	role := seedContactRole(t, "Owner")
	ada := seedPerson(t, "Ada", "Lovelace", "ada@example.com")
	grace := seedPerson(t, "Grace", "Hopper", "grace@example.com")

	t.Run("unknown role", func(t *testing.T) {
		_, err := svc.Create(dto.CreateContactRequest{
			ContactRoleID:   "missing",
			PersonIDs:       []string{ada.ID},
			PrimaryPersonID: ada.ID,
		})
		assert.True(t, utils.IsNotFound(err))
	})

	t.Run("primary not in the person list", func(t *testing.T) {
		_, err := svc.Create(dto.CreateContactRequest{
			ContactRoleID:   role.ID,
			PersonIDs:       []string{ada.ID},
			PrimaryPersonID: grace.ID,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "primary person")
	})

	t.Run("unknown person leaves no partial contact", func(t *testing.T) {
		_, err := svc.Create(dto.CreateContactRequest{
			ContactRoleID:   role.ID,
			PersonIDs:       []string{ada.ID, "missing"},
			PrimaryPersonID: ada.ID,
		})
		assert.True(t, utils.IsNotFound(err))

		contacts, err := svc.FindAll()
		require.NoError(t, err)
		assert.Empty(t, contacts)
	})

	t.Run("valid contact", func(t *testing.T) {
		contact, err := svc.Create(dto.CreateContactRequest{
			ContactRoleID:   role.ID,
			PersonIDs:       []string{ada.ID, grace.ID},
			PrimaryPersonID: ada.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, "Owner", contact.ContactRole.RoleName)
		assert.Len(t, contact.Persons, 2)
		assert.Equal(t, ada.ID, primaryOf(t, contact))
	})
}

func TestContactPersonLifecycle(t *testing.T) {
	setupTestDB(t)
	svc := NewContactService()

	role := seedContactRole(t, "Owner")
	ada := seedPerson(t, "Ada", "Lovelace", "ada@example.com")
	grace := seedPerson(t, "Grace", "Hopper", "grace@example.com")
	edsger := seedPerson(t, "Edsger", "Dijkstra", "edsger@example.com")

	contact, err := svc.Create(dto.CreateContactRequest{
		ContactRoleID:   role.ID,
		PersonIDs:       []string{ada.ID},
		PrimaryPersonID: ada.ID,
	})
	require.NoError(t, err)

	// Attaching a new primary demotes the old one.
	updated, err := svc.AddPerson(contact.ID, grace.ID, true)
	require.NoError(t, err)
	assert.Equal(t, grace.ID, primaryOf(t, updated))

	// A non-primary attach leaves the primary alone.
	updated, err = svc.AddPerson(contact.ID, edsger.ID, false)
	require.NoError(t, err)
	assert.Len(t, updated.Persons, 3)
	assert.Equal(t, grace.ID, primaryOf(t, updated))

	// Re-attaching is rejected.
	_, err = svc.AddPerson(contact.ID, grace.ID, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already part")

	// SetPrimary flips exactly one row on.
	updated, err = svc.SetPrimary(contact.ID, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, ada.ID, primaryOf(t, updated))

	// SetPrimary on an unassociated person is a not-found.
	outsider := seedPerson(t, "Alan", "Turing", "alan@example.com")
	_, err = svc.SetPrimary(contact.ID, outsider.ID)
	assert.True(t, utils.IsNotFound(err))

	// Removing is idempotent.
	require.NoError(t, svc.RemovePerson(contact.ID, edsger.ID))
	require.NoError(t, svc.RemovePerson(contact.ID, edsger.ID))

	final, err := svc.FindByID(contact.ID)
	require.NoError(t, err)
	assert.Len(t, final.Persons, 2)
}

func TestDeleteContactDetachesLinks(t *testing.T) {
	setupTestDB(t)
	svc := NewContactService()
	appSvc := NewApplicationService()

	role := seedContactRole(t, "Owner")
	ada := seedPerson(t, "Ada", "Lovelace", "ada@example.com")
	unit := seedBusinessUnit(t, "Payments")
	app := seedApplication(t, "Billing", unit.ID)

	contact, err := svc.Create(dto.CreateContactRequest{
		ContactRoleID:   role.ID,
		PersonIDs:       []string{ada.ID},
		PrimaryPersonID: ada.ID,
	})
	require.NoError(t, err)

	_, err = appSvc.AddContact(app.ID, contact.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(contact.ID))

	_, err = svc.FindByID(contact.ID)
	assert.True(t, utils.IsNotFound(err))

	contacts, err := appSvc.GetContacts(app.ID)
	require.NoError(t, err)
	assert.Empty(t, contacts)

	// The person survives the contact.
	_, err = NewPersonService().FindByID(ada.ID)
	assert.NoError(t, err)
}
