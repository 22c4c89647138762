package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appinventory/database"
	"github.com/appinventory/dto"
	"github.com/appinventory/models"
	"github.com/appinventory/utils"
)

func TestRecordDeploymentValidation(t *testing.T) {
	setupTestDB(t)
	svc := NewDeploymentService()
	svc.now = fixedClock(2026, time.June, 15)

	unit := seedBusinessUnit(t, "Payments")
	app := seedApplication(t, "Billing", unit.ID)
	otherApp := seedApplication(t, "Ledger", unit.ID)
	env := seedEnvironment(t, "production", true)
	version := seedVersion(t, app.ID, "1.0.0", models.NewDate(2026, time.January, 10))

	deployedAt := time.Date(2026, time.June, 10, 9, 0, 0, 0, time.UTC)

	t.Run("unknown application", func(t *testing.T) {
		_, err := svc.RecordDeployment(dto.RecordDeploymentRequest{
			ApplicationID:  "missing",
			VersionID:      version.ID,
			EnvironmentID:  env.ID,
			DeploymentDate: deployedAt,
		})
		assert.True(t, utils.IsNotFound(err))
	})

	t.Run("version of another application", func(t *testing.T) {
		_, err := svc.RecordDeployment(dto.RecordDeploymentRequest{
			ApplicationID:  otherApp.ID,
			VersionID:      version.ID,
			EnvironmentID:  env.ID,
			DeploymentDate: deployedAt,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not belong")
	})

	t.Run("future deployment date", func(t *testing.T) {
		_, err := svc.RecordDeployment(dto.RecordDeploymentRequest{
			ApplicationID:  app.ID,
			VersionID:      version.ID,
			EnvironmentID:  env.ID,
			DeploymentDate: time.Date(2026, time.June, 16, 0, 0, 0, 0, time.UTC),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "future")
	})

	t.Run("valid deployment is recorded", func(t *testing.T) {
		response, err := svc.RecordDeployment(dto.RecordDeploymentRequest{
			ApplicationID:  app.ID,
			VersionID:      version.ID,
			EnvironmentID:  env.ID,
			DeploymentDate: deployedAt,
			DeployedBy:     "release-bot",
		})
		require.NoError(t, err)
		assert.Equal(t, app.ID, response.Application.ID)
		assert.Equal(t, "1.0.0", response.Version.VersionIdentifier)
		assert.Equal(t, "production", response.Environment.Name)
		assert.Equal(t, "release-bot", response.DeployedBy)
	})
}

func TestGetCurrentStatePicksLatestPerPair(t *testing.T) {
	setupTestDB(t)
	svc := NewDeploymentService()
	svc.now = fixedClock(2026, time.June, 15)

	unit := seedBusinessUnit(t, "Payments")
	app := seedApplication(t, "Billing", unit.ID)
	prod := seedEnvironment(t, "production", true)
	staging := seedEnvironment(t, "staging", false)
	v1 := seedVersion(t, app.ID, "1.0.0", models.NewDate(2026, time.January, 10))
	v2 := seedVersion(t, app.ID, "2.0.0", models.NewDate(2026, time.May, 1))

	record := func(versionID, envID string, day int) {
		t.Helper()
		deployment := models.Deployment{
			ApplicationID:  app.ID,
			VersionID:      versionID,
			EnvironmentID:  envID,
			DeploymentDate: time.Date(2026, time.June, day, 10, 0, 0, 0, time.UTC),
		}
		require.NoError(t, database.DB.Create(&deployment).Error)
	}

	record(v1.ID, prod.ID, 1)
	record(v2.ID, prod.ID, 10)
	record(v1.ID, staging.ID, 5)

	state, err := svc.GetCurrentState(nil, nil)
	require.NoError(t, err)
	require.Len(t, state, 2)

	byEnv := map[string]string{}
	for _, row := range state {
		byEnv[row.Environment.Name] = row.Version.VersionIdentifier
	}
	assert.Equal(t, "2.0.0", byEnv["production"])
	assert.Equal(t, "1.0.0", byEnv["staging"])

	narrowed, err := svc.GetCurrentState(nil, &prod.ID)
	require.NoError(t, err)
	require.Len(t, narrowed, 1)
	assert.Equal(t, "2.0.0", narrowed[0].Version.VersionIdentifier)
}

func TestGetCurrentStateTieBreaksOnID(t *testing.T) {
	setupTestDB(t)
	svc := NewDeploymentService()

	unit := seedBusinessUnit(t, "Payments")
	app := seedApplication(t, "Billing", unit.ID)
	env := seedEnvironment(t, "production", true)
	v1 := seedVersion(t, app.ID, "1.0.0", models.NewDate(2026, time.January, 10))
	v2 := seedVersion(t, app.ID, "2.0.0", models.NewDate(2026, time.May, 1))

	sameInstant := time.Date(2026, time.June, 10, 10, 0, 0, 0, time.UTC)
	first := models.Deployment{
		ID:             "00000000-0000-0000-0000-000000000001",
		ApplicationID:  app.ID,
		VersionID:      v1.ID,
		EnvironmentID:  env.ID,
		DeploymentDate: sameInstant,
	}
	second := models.Deployment{
		ID:             "00000000-0000-0000-0000-000000000002",
		ApplicationID:  app.ID,
		VersionID:      v2.ID,
		EnvironmentID:  env.ID,
		DeploymentDate: sameInstant,
	}
	require.NoError(t, database.DB.Create(&first).Error)
	require.NoError(t, database.DB.Create(&second).Error)

	state, err := svc.GetCurrentState(nil, nil)
	require.NoError(t, err)
	require.Len(t, state, 1)
	assert.Equal(t, "2.0.0", state[0].Version.VersionIdentifier)
}

func TestSearchDeploymentsDateRange(t *testing.T) {
	setupTestDB(t)
	svc := NewDeploymentService()

	unit := seedBusinessUnit(t, "Payments")
	app := seedApplication(t, "Billing", unit.ID)
	env := seedEnvironment(t, "production", true)
	version := seedVersion(t, app.ID, "1.0.0", models.NewDate(2026, time.January, 10))

	for day := 1; day <= 5; day++ {
		deployment := models.Deployment{
			ApplicationID:  app.ID,
			VersionID:      version.ID,
			EnvironmentID:  env.ID,
			DeploymentDate: time.Date(2026, time.June, day, 0, 0, 0, 0, time.UTC),
		}
		require.NoError(t, database.DB.Create(&deployment).Error)
	}

	from := time.Date(2026, time.June, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.June, 4, 0, 0, 0, 0, time.UTC)
	page, err := svc.Search(nil, nil, nil, &from, &to, dto.PageRequest{Size: 20, SortBy: "deploymentDate", SortDirection: "asc"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalItems)
}
