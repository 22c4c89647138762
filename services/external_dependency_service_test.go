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

func TestCreateExternalDependency(t *testing.T) {
	setupTestDB(t)
	svc := NewExternalDependencyService()
	svc.now = fixedClock(2026, time.June, 15)

	unit := seedBusinessUnit(t, "Payments")
	app := seedApplication(t, "Billing", unit.ID)
	license := seedDependencyType(t, "License")

	t.Run("unknown dependency type", func(t *testing.T) {
		_, err := svc.Create(app.ID, dto.CreateExternalDependencyRequest{
			DependencyTypeID: "missing",
			Name:             "Postgres license",
		})
		assert.True(t, utils.IsNotFound(err))
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := svc.Create(app.ID, dto.CreateExternalDependencyRequest{
			DependencyTypeID:  license.ID,
			Name:              "Postgres license",
			ValidityStartDate: datePtr(2026, time.June, 1),
			ValidityEndDate:   datePtr(2026, time.May, 1),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validity end")
	})

	t.Run("derived fields on the response", func(t *testing.T) {
		response, err := svc.Create(app.ID, dto.CreateExternalDependencyRequest{
			DependencyTypeID:  license.ID,
			Name:              "Postgres license",
			ValidityStartDate: datePtr(2026, time.January, 1),
			ValidityEndDate:   datePtr(2026, time.June, 25),
		})
		require.NoError(t, err)
		assert.Equal(t, models.DependencyStatusExpiring, response.Status)
		assert.True(t, response.IsActive)
		if assert.NotNil(t, response.DaysUntilExpiration) {
			assert.Equal(t, 10, *response.DaysUntilExpiration)
		}
	})
}

func TestSearchDependenciesByDerivedStatus(t *testing.T) {
	setupTestDB(t)
	svc := NewExternalDependencyService()
	svc.now = fixedClock(2026, time.June, 15)

	unit := seedBusinessUnit(t, "Payments")
	app := seedApplication(t, "Billing", unit.ID)
	license := seedDependencyType(t, "License")

	create := func(name string, start, end *models.Date) {
		t.Helper()
		_, err := svc.Create(app.ID, dto.CreateExternalDependencyRequest{
			DependencyTypeID:  license.ID,
			Name:              name,
			ValidityStartDate: start,
			ValidityEndDate:   end,
		})
		require.NoError(t, err)
	}

	create("indefinite", datePtr(2026, time.January, 1), nil)
	create("active", datePtr(2026, time.January, 1), datePtr(2026, time.December, 1))
	create("expiring", datePtr(2026, time.January, 1), datePtr(2026, time.July, 1))
	create("expired", datePtr(2026, time.January, 1), datePtr(2026, time.June, 1))
	create("pending", datePtr(2026, time.August, 1), datePtr(2026, time.December, 31))

	req := dto.PageRequest{Size: 20, SortBy: "name", SortDirection: "asc"}
	expect := map[string][]string{
		models.DependencyStatusActive:      {"active", "indefinite"},
		models.DependencyStatusExpiring:    {"expiring"},
		models.DependencyStatusExpired:     {"expired"},
		models.DependencyStatusNotYetValid: {"pending"},
	}

	for status, names := range expect {
		page, err := svc.Search(nil, nil, status, req)
		require.NoError(t, err)
		items := page.Items.([]dto.ExternalDependencyResponse)
		got := make([]string, 0, len(items))
		for _, item := range items {
			// The query filter and the mapped status must agree.
			assert.Equal(t, status, item.Status)
			got = append(got, item.Name)
		}
		assert.ElementsMatch(t, names, got, "status %s", status)
	}

	_, err := svc.Search(nil, nil, "BROKEN", req)
	require.Error(t, err)
}

func TestFindExpiringAndExpired(t *testing.T) {
	setupTestDB(t)
	svc := NewExternalDependencyService()
	svc.now = fixedClock(2026, time.June, 15)

	unit := seedBusinessUnit(t, "Payments")
	app := seedApplication(t, "Billing", unit.ID)
	license := seedDependencyType(t, "License")

	create := func(name string, end *models.Date) {
		t.Helper()
		_, err := svc.Create(app.ID, dto.CreateExternalDependencyRequest{
			DependencyTypeID: license.ID,
			Name:             name,
			ValidityEndDate:  end,
		})
		require.NoError(t, err)
	}

	create("ends tomorrow", datePtr(2026, time.June, 16))
	create("ends next week", datePtr(2026, time.June, 22))
	create("ended yesterday", datePtr(2026, time.June, 14))
	create("open ended", nil)

	expiring, err := svc.FindExpiring(7)
	require.NoError(t, err)
	require.Len(t, expiring, 2)
	assert.Equal(t, "ends tomorrow", expiring[0].Name)

	expired, err := svc.FindExpired()
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, "ended yesterday", expired[0].Name)

	_, err = svc.FindExpiring(-1)
	require.Error(t, err)
}

func TestDeleteDependencyTypeBlockedWhileReferenced(t *testing.T) {
	setupTestDB(t)
	depSvc := NewExternalDependencyService()
	depSvc.now = fixedClock(2026, time.June, 15)
	typeSvc := NewDependencyTypeService()

	unit := seedBusinessUnit(t, "Payments")
	app := seedApplication(t, "Billing", unit.ID)
	license := seedDependencyType(t, "License")

	created, err := depSvc.Create(app.ID, dto.CreateExternalDependencyRequest{
		DependencyTypeID: license.ID,
		Name:             "Postgres license",
	})
	require.NoError(t, err)

	err = typeSvc.Delete(license.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot delete")

	require.NoError(t, depSvc.Delete(created.ID))
	require.NoError(t, typeSvc.Delete(license.ID))
}
