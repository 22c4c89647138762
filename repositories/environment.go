package repositories

import (
	"github.com/appinventory/database"
	"github.com/appinventory/dto"
	"github.com/appinventory/models"
)

var environmentSortColumns = map[string]string{
	"name":             "name",
	"criticalityLevel": "criticality_level",
	"createdAt":        "created_at",
}

// EnvironmentRepository handles database operations for environments
type EnvironmentRepository struct{}

// NewEnvironmentRepository creates a new environment repository instance
func NewEnvironmentRepository() *EnvironmentRepository {
	return &EnvironmentRepository{}
}

// FindByID retrieves an environment by its ID
func (r *EnvironmentRepository) FindByID(id string) (models.Environment, error) {
	var environment models.Environment
	result := database.DB.First(&environment, "id = ?", id)
	return environment, result.Error
}

// FindAll retrieves a page of environments
func (r *EnvironmentRepository) FindAll(req dto.PageRequest) ([]models.Environment, int64, error) {
	var environments []models.Environment
	var total int64

	if err := database.DB.Model(&models.Environment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := database.DB.
		Order(req.Order(environmentSortColumns, "name")).
		Offset(req.Offset()).Limit(req.Size).
		Find(&environments)
	return environments, total, result.Error
}

// Search retrieves a page of environments whose name contains the query
func (r *EnvironmentRepository) Search(query string, req dto.PageRequest) ([]models.Environment, int64, error) {
	var environments []models.Environment
	var total int64

	base := database.DB.Model(&models.Environment{}).
		Where("LOWER(name) LIKE LOWER(?)", "%"+query+"%")
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := base.
		Order(req.Order(environmentSortColumns, "name")).
		Offset(req.Offset()).Limit(req.Size).
		Find(&environments)
	return environments, total, result.Error
}

// ExistsByID checks if an environment exists
func (r *EnvironmentRepository) ExistsByID(id string) (bool, error) {
	var count int64
	result := database.DB.Model(&models.Environment{}).Where("id = ?", id).Count(&count)
	return count > 0, result.Error
}

// ExistsByName checks if an environment with the given name exists
func (r *EnvironmentRepository) ExistsByName(name string) (bool, error) {
	var count int64
	result := database.DB.Model(&models.Environment{}).Where("name = ?", name).Count(&count)
	return count > 0, result.Error
}

// CountDeployments counts the deployments recorded in an environment
func (r *EnvironmentRepository) CountDeployments(id string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Deployment{}).Where("environment_id = ?", id).Count(&count)
	return count, result.Error
}

// Create inserts a new environment into the database
func (r *EnvironmentRepository) Create(environment models.Environment) (models.Environment, error) {
	result := database.DB.Create(&environment)
	return environment, result.Error
}

// Update modifies an existing environment
func (r *EnvironmentRepository) Update(environment models.Environment) error {
	result := database.DB.Save(&environment)
	return result.Error
}

// Delete removes an environment from the database
func (r *EnvironmentRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Environment{}, "id = ?", id)
	return result.Error
}
