package repositories

import (
	"github.com/appinventory/database"
	"github.com/appinventory/dto"
	"github.com/appinventory/models"
)

var versionSortColumns = map[string]string{
	"versionIdentifier": "version_identifier",
	"releaseDate":       "release_date",
	"createdAt":         "created_at",
}

// VersionRepository handles database operations for application versions
type VersionRepository struct{}

// NewVersionRepository creates a new version repository instance
func NewVersionRepository() *VersionRepository {
	return &VersionRepository{}
}

// FindByID retrieves a version with its application
func (r *VersionRepository) FindByID(id string) (models.Version, error) {
	var version models.Version
	result := database.DB.Preload("Application").First(&version, "id = ?", id)
	return version, result.Error
}

// FindByApplicationID retrieves a page of versions for an application
func (r *VersionRepository) FindByApplicationID(applicationID string, req dto.PageRequest) ([]models.Version, int64, error) {
	var versions []models.Version
	var total int64

	base := database.DB.Model(&models.Version{}).Where("application_id = ?", applicationID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := base.Preload("Application").
		Order(req.Order(versionSortColumns, "release_date")).
		Offset(req.Offset()).Limit(req.Size).
		Find(&versions)
	return versions, total, result.Error
}

// FindLatestByApplicationID retrieves the version with the most recent
// release date for an application
func (r *VersionRepository) FindLatestByApplicationID(applicationID string) (models.Version, error) {
	var version models.Version
	result := database.DB.Preload("Application").
		Where("application_id = ?", applicationID).
		Order("release_date DESC").
		First(&version)
	return version, result.Error
}

// ExistsByApplicationAndIdentifier checks per-application uniqueness of a
// version identifier
func (r *VersionRepository) ExistsByApplicationAndIdentifier(applicationID, identifier string) (bool, error) {
	var count int64
	result := database.DB.Model(&models.Version{}).
		Where("application_id = ? AND version_identifier = ?", applicationID, identifier).
		Count(&count)
	return count > 0, result.Error
}

// CountDeployments counts the deployments that reference a version
func (r *VersionRepository) CountDeployments(id string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Deployment{}).Where("version_id = ?", id).Count(&count)
	return count, result.Error
}

// Create inserts a new version into the database
func (r *VersionRepository) Create(version models.Version) (models.Version, error) {
	result := database.DB.Create(&version)
	return version, result.Error
}

// Update modifies an existing version
func (r *VersionRepository) Update(version models.Version) error {
	result := database.DB.Save(&version)
	return result.Error
}

// Delete removes a version from the database
func (r *VersionRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Version{}, "id = ?", id)
	return result.Error
}
