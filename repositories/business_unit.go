package repositories

import (
	"github.com/appinventory/database"
	"github.com/appinventory/dto"
	"github.com/appinventory/models"
)

// businessUnitSortColumns whitelists caller-sortable columns.
var businessUnitSortColumns = map[string]string{
	"name":      "name",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// BusinessUnitRepository handles database operations for business units
type BusinessUnitRepository struct{}

// NewBusinessUnitRepository creates a new business unit repository instance
func NewBusinessUnitRepository() *BusinessUnitRepository {
	return &BusinessUnitRepository{}
}

// FindByID retrieves a business unit by its ID
func (r *BusinessUnitRepository) FindByID(id string) (models.BusinessUnit, error) {
	var unit models.BusinessUnit
	result := database.DB.First(&unit, "id = ?", id)
	return unit, result.Error
}

// FindAll retrieves a page of business units
func (r *BusinessUnitRepository) FindAll(req dto.PageRequest) ([]models.BusinessUnit, int64, error) {
	var units []models.BusinessUnit
	var total int64

	if err := database.DB.Model(&models.BusinessUnit{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := database.DB.
		Order(req.Order(businessUnitSortColumns, "name")).
		Offset(req.Offset()).Limit(req.Size).
		Find(&units)
	return units, total, result.Error
}

// Search retrieves a page of business units whose name contains the query
func (r *BusinessUnitRepository) Search(query string, req dto.PageRequest) ([]models.BusinessUnit, int64, error) {
	var units []models.BusinessUnit
	var total int64

	base := database.DB.Model(&models.BusinessUnit{}).
		Where("LOWER(name) LIKE LOWER(?)", "%"+query+"%")
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := base.
		Order(req.Order(businessUnitSortColumns, "name")).
		Offset(req.Offset()).Limit(req.Size).
		Find(&units)
	return units, total, result.Error
}

// ExistsByID checks if a business unit exists
func (r *BusinessUnitRepository) ExistsByID(id string) (bool, error) {
	var count int64
	result := database.DB.Model(&models.BusinessUnit{}).Where("id = ?", id).Count(&count)
	return count > 0, result.Error
}

// ExistsByName checks if a business unit with the given name exists
func (r *BusinessUnitRepository) ExistsByName(name string) (bool, error) {
	var count int64
	result := database.DB.Model(&models.BusinessUnit{}).Where("name = ?", name).Count(&count)
	return count > 0, result.Error
}

// CountApplications counts the applications owned by a business unit
func (r *BusinessUnitRepository) CountApplications(id string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Application{}).Where("business_unit_id = ?", id).Count(&count)
	return count, result.Error
}

// Create inserts a new business unit into the database
func (r *BusinessUnitRepository) Create(unit models.BusinessUnit) (models.BusinessUnit, error) {
	result := database.DB.Create(&unit)
	return unit, result.Error
}

// Update modifies an existing business unit
func (r *BusinessUnitRepository) Update(unit models.BusinessUnit) error {
	result := database.DB.Save(&unit)
	return result.Error
}

// Delete removes a business unit from the database
func (r *BusinessUnitRepository) Delete(id string) error {
	result := database.DB.Delete(&models.BusinessUnit{}, "id = ?", id)
	return result.Error
}
