package repositories

import (
	"github.com/appinventory/database"
	"github.com/appinventory/models"
)

// DependencyTypeRepository handles database operations for dependency types
type DependencyTypeRepository struct{}

// NewDependencyTypeRepository creates a new dependency type repository
// instance
func NewDependencyTypeRepository() *DependencyTypeRepository {
	return &DependencyTypeRepository{}
}

// FindByID retrieves a dependency type by its ID
func (r *DependencyTypeRepository) FindByID(id string) (models.DependencyType, error) {
	var dependencyType models.DependencyType
	result := database.DB.First(&dependencyType, "id = ?", id)
	return dependencyType, result.Error
}

// FindAll retrieves all dependency types ordered by name
func (r *DependencyTypeRepository) FindAll() ([]models.DependencyType, error) {
	var types []models.DependencyType
	result := database.DB.Order("type_name ASC").Find(&types)
	return types, result.Error
}

// ExistsByTypeName checks if a dependency type with the given name exists
func (r *DependencyTypeRepository) ExistsByTypeName(typeName string) (bool, error) {
	var count int64
	result := database.DB.Model(&models.DependencyType{}).Where("type_name = ?", typeName).Count(&count)
	return count > 0, result.Error
}

// Create inserts a new dependency type into the database
func (r *DependencyTypeRepository) Create(dependencyType models.DependencyType) (models.DependencyType, error) {
	result := database.DB.Create(&dependencyType)
	return dependencyType, result.Error
}

// Update modifies an existing dependency type
func (r *DependencyTypeRepository) Update(dependencyType models.DependencyType) error {
	result := database.DB.Save(&dependencyType)
	return result.Error
}

// Delete removes a dependency type from the database
func (r *DependencyTypeRepository) Delete(id string) error {
	result := database.DB.Delete(&models.DependencyType{}, "id = ?", id)
	return result.Error
}
