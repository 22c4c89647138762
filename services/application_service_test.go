package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appinventory/dto"
	"github.com/appinventory/models"
	"github.com/appinventory/utils"
)

func TestCreateApplication(t *testing.T) {
	setupTestDB(t)
	svc := NewApplicationService()
	unit := seedBusinessUnit(t, "Payments")

	t.Run("unknown business unit", func(t *testing.T) {
		_, err := svc.Create(dto.CreateApplicationRequest{
			Name:           "Billing",
			Status:         models.StatusIdea,
			BusinessUnitID: "missing",
		})
		assert.True(t, utils.IsNotFound(err))
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := svc.Create(dto.CreateApplicationRequest{
			Name:           "Billing",
			Status:         "RETIRED",
			BusinessUnitID: unit.ID,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status")
	})

	t.Run("end of support after end of life", func(t *testing.T) {
		_, err := svc.Create(dto.CreateApplicationRequest{
			Name:             "Billing",
			Status:           models.StatusInService,
			BusinessUnitID:   unit.ID,
			EndOfSupportDate: datePtr(2027, time.June, 1),
			EndOfLifeDate:    datePtr(2027, time.January, 1),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "end of support")
	})

	t.Run("valid application", func(t *testing.T) {
		response, err := svc.Create(dto.CreateApplicationRequest{
			Name:           "Billing",
			Status:         models.StatusInService,
			BusinessUnitID: unit.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, "Billing", response.Name)
		assert.Equal(t, "Payments", response.BusinessUnit.Name)
	})
}

func TestUpdateApplicationRevalidatesMergedDates(t *testing.T) {
	setupTestDB(t)
	svc := NewApplicationService()
	unit := seedBusinessUnit(t, "Payments")

	created, err := svc.Create(dto.CreateApplicationRequest{
		Name:           "Billing",
		Status:         models.StatusInService,
		BusinessUnitID: unit.ID,
		EndOfLifeDate:  datePtr(2027, time.January, 1),
	})
	require.NoError(t, err)

	// The new end-of-support lands after the stored end-of-life.
	_, err = svc.Update(created.ID, dto.UpdateApplicationRequest{
		EndOfSupportDate: datePtr(2027, time.June, 1),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end of support")

	updated, err := svc.Update(created.ID, dto.UpdateApplicationRequest{
		EndOfSupportDate: datePtr(2026, time.June, 1),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.EndOfSupportDate)
	assert.Equal(t, "2026-06-01", updated.EndOfSupportDate.String())
}

func TestDeleteApplicationGuards(t *testing.T) {
	setupTestDB(t)
	svc := NewApplicationService()
	unit := seedBusinessUnit(t, "Payments")
	app := seedApplication(t, "Billing", unit.ID)
	seedVersion(t, app.ID, "1.0.0", models.NewDate(2026, time.January, 10))

	err := svc.Delete(app.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "versions")

	empty := seedApplication(t, "Ledger", unit.ID)
	require.NoError(t, svc.Delete(empty.ID))

	_, err = svc.FindByID(empty.ID)
	assert.True(t, utils.IsNotFound(err))
}

func TestApplicationContactLinks(t *testing.T) {
	setupTestDB(t)
	svc := NewApplicationService()
	contactSvc := NewContactService()

	unit := seedBusinessUnit(t, "Payments")
	app := seedApplication(t, "Billing", unit.ID)
	role := seedContactRole(t, "Owner")
	person := seedPerson(t, "Ada", "Lovelace", "ada@example.com")

	contact, err := contactSvc.Create(dto.CreateContactRequest{
		ContactRoleID:   role.ID,
		PersonIDs:       []string{person.ID},
		PrimaryPersonID: person.ID,
	})
	require.NoError(t, err)

	linked, err := svc.AddContact(app.ID, contact.ID)
	require.NoError(t, err)
	assert.Equal(t, contact.ID, linked.Contact.ID)

	// Linking again keeps the existing pairing.
	_, err = svc.AddContact(app.ID, contact.ID)
	require.NoError(t, err)

	contacts, err := svc.GetContacts(app.ID)
	require.NoError(t, err)
	require.Len(t, contacts, 1)

	require.NoError(t, svc.RemoveContact(app.ID, contact.ID))
	// Removing an absent pairing still succeeds.
	require.NoError(t, svc.RemoveContact(app.ID, contact.ID))

	contacts, err = svc.GetContacts(app.ID)
	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestSearchApplicationsFilters(t *testing.T) {
	setupTestDB(t)
	svc := NewApplicationService()

	payments := seedBusinessUnit(t, "Payments")
	logistics := seedBusinessUnit(t, "Logistics")
	seedApplication(t, "Billing", payments.ID)
	seedApplication(t, "Ledger", payments.ID)
	seedApplication(t, "Routing", logistics.ID)

	req := dto.PageRequest{Size: 20, SortBy: "name", SortDirection: "asc"}

	all, err := svc.Search(nil, nil, "", req)
	require.NoError(t, err)
	assert.Equal(t, int64(3), all.TotalItems)

	byUnit, err := svc.Search(nil, &payments.ID, "", req)
	require.NoError(t, err)
	assert.Equal(t, int64(2), byUnit.TotalItems)

	byName, err := svc.Search(nil, nil, "rout", req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), byName.TotalItems)

	bad := models.ApplicationStatus("RETIRED")
	_, err = svc.Search(&bad, nil, "", req)
	require.Error(t, err)
}
