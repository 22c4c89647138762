package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/appinventory/database"
	"github.com/appinventory/models"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// One connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(database.Models...))
	database.DB = db
}

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	}
}

func seedBusinessUnit(t *testing.T, name string) models.BusinessUnit {
	t.Helper()
	unit := models.BusinessUnit{Name: name}
	require.NoError(t, database.DB.Create(&unit).Error)
	return unit
}

func seedApplication(t *testing.T, name string, businessUnitID string) models.Application {
	t.Helper()
	application := models.Application{
		Name:           name,
		Status:         models.StatusInService,
		BusinessUnitID: businessUnitID,
	}
	require.NoError(t, database.DB.Create(&application).Error)
	return application
}

func seedEnvironment(t *testing.T, name string, isProduction bool) models.Environment {
	t.Helper()
	environment := models.Environment{Name: name, IsProduction: isProduction}
	require.NoError(t, database.DB.Create(&environment).Error)
	return environment
}

func seedVersion(t *testing.T, applicationID, identifier string, release models.Date) models.Version {
	t.Helper()
	version := models.Version{
		ApplicationID:     applicationID,
		VersionIdentifier: identifier,
		ReleaseDate:       release,
	}
	require.NoError(t, database.DB.Create(&version).Error)
	return version
}

func seedPerson(t *testing.T, first, last, email string) models.Person {
	t.Helper()
	person := models.Person{FirstName: first, LastName: last, Email: email}
	require.NoError(t, database.DB.Create(&person).Error)
	return person
}

func seedContactRole(t *testing.T, name string) models.ContactRole {
	t.Helper()
	role := models.ContactRole{RoleName: name}
	require.NoError(t, database.DB.Create(&role).Error)
	return role
}

func seedDependencyType(t *testing.T, name string) models.DependencyType {
	t.Helper()
	dependencyType := models.DependencyType{TypeName: name}
	require.NoError(t, database.DB.Create(&dependencyType).Error)
	return dependencyType
}
