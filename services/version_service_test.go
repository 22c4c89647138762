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

func TestCreateVersion(t *testing.T) {
	setupTestDB(t)
	svc := NewVersionService()
	svc.now = fixedClock(2026, time.June, 15)

	unit := seedBusinessUnit(t, "Payments")
	app := seedApplication(t, "Billing", unit.ID)

	t.Run("unknown application", func(t *testing.T) {
		_, err := svc.Create("missing", dto.CreateVersionRequest{
			VersionIdentifier: "1.0.0",
			ReleaseDate:       datePtr(2026, time.January, 10),
		})
		assert.True(t, utils.IsNotFound(err))
	})

	t.Run("release date in the future", func(t *testing.T) {
		_, err := svc.Create(app.ID, dto.CreateVersionRequest{
			VersionIdentifier: "1.0.0",
			ReleaseDate:       datePtr(2026, time.June, 16),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "future")
	})

	t.Run("valid version", func(t *testing.T) {
		response, err := svc.Create(app.ID, dto.CreateVersionRequest{
			VersionIdentifier: "1.0.0",
			ReleaseDate:       datePtr(2026, time.January, 10),
		})
		require.NoError(t, err)
		assert.Equal(t, "1.0.0", response.VersionIdentifier)
		assert.Equal(t, "Billing", response.ApplicationName)
	})

	t.Run("duplicate identifier for the same application", func(t *testing.T) {
		_, err := svc.Create(app.ID, dto.CreateVersionRequest{
			VersionIdentifier: "1.0.0",
			ReleaseDate:       datePtr(2026, time.February, 1),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("same identifier under another application", func(t *testing.T) {
		other := seedApplication(t, "Ledger", unit.ID)
		_, err := svc.Create(other.ID, dto.CreateVersionRequest{
			VersionIdentifier: "1.0.0",
			ReleaseDate:       datePtr(2026, time.February, 1),
		})
		assert.NoError(t, err)
	})
}

func TestFindLatestVersion(t *testing.T) {
	setupTestDB(t)
	svc := NewVersionService()

	unit := seedBusinessUnit(t, "Payments")
	app := seedApplication(t, "Billing", unit.ID)

	_, err := svc.FindLatestByApplication(app.ID)
	assert.True(t, utils.IsNotFound(err))

	seedVersion(t, app.ID, "1.0.0", models.NewDate(2026, time.January, 10))
	seedVersion(t, app.ID, "2.0.0", models.NewDate(2026, time.May, 1))
	seedVersion(t, app.ID, "1.5.0", models.NewDate(2026, time.March, 1))

	latest, err := svc.FindLatestByApplication(app.ID)
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", latest.VersionIdentifier)
}

func TestUpdateVersionUniquenessOnlyWhenChanged(t *testing.T) {
	setupTestDB(t)
	svc := NewVersionService()
	svc.now = fixedClock(2026, time.June, 15)

	unit := seedBusinessUnit(t, "Payments")
	app := seedApplication(t, "Billing", unit.ID)
	v1 := seedVersion(t, app.ID, "1.0.0", models.NewDate(2026, time.January, 10))
	seedVersion(t, app.ID, "2.0.0", models.NewDate(2026, time.May, 1))

	// Re-submitting the unchanged identifier is not a collision.
	ref := "JIRA-42"
	updated, err := svc.Update(v1.ID, dto.UpdateVersionRequest{
		VersionIdentifier: &v1.VersionIdentifier,
		ExternalReference: &ref,
	})
	require.NoError(t, err)
	assert.Equal(t, "JIRA-42", updated.ExternalReference)

	taken := "2.0.0"
	_, err = svc.Update(v1.ID, dto.UpdateVersionRequest{VersionIdentifier: &taken})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestDeleteVersionBlockedByDeployments(t *testing.T) {
	setupTestDB(t)
	svc := NewVersionService()
	deploySvc := NewDeploymentService()
	deploySvc.now = fixedClock(2026, time.June, 15)

	unit := seedBusinessUnit(t, "Payments")
	app := seedApplication(t, "Billing", unit.ID)
	env := seedEnvironment(t, "production", true)
	version := seedVersion(t, app.ID, "1.0.0", models.NewDate(2026, time.January, 10))

	_, err := deploySvc.RecordDeployment(dto.RecordDeploymentRequest{
		ApplicationID:  app.ID,
		VersionID:      version.ID,
		EnvironmentID:  env.ID,
		DeploymentDate: time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	err = svc.Delete(version.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deployments")
}
