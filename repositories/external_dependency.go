package repositories

import (
	"github.com/appinventory/database"
	"github.com/appinventory/dto"
	"github.com/appinventory/models"
	"gorm.io/gorm"
)

var dependencySortColumns = map[string]string{
	"name":              "name",
	"validityEndDate":   "validity_end_date",
	"validityStartDate": "validity_start_date",
	"createdAt":         "created_at",
}

// ExternalDependencyRepository handles database operations for external
// dependencies
type ExternalDependencyRepository struct{}

// NewExternalDependencyRepository creates a new external dependency
// repository instance
func NewExternalDependencyRepository() *ExternalDependencyRepository {
	return &ExternalDependencyRepository{}
}

func dependencyPreloads(query *gorm.DB) *gorm.DB {
	return query.Preload("Application.BusinessUnit").Preload("DependencyType")
}

// FindByID retrieves a dependency with its application and type
func (r *ExternalDependencyRepository) FindByID(id string) (models.ExternalDependency, error) {
	var dependency models.ExternalDependency
	result := dependencyPreloads(database.DB).First(&dependency, "id = ?", id)
	return dependency, result.Error
}

// FindByApplicationID retrieves a page of dependencies for an application
func (r *ExternalDependencyRepository) FindByApplicationID(applicationID string, req dto.PageRequest) ([]models.ExternalDependency, int64, error) {
	var dependencies []models.ExternalDependency
	var total int64

	base := database.DB.Model(&models.ExternalDependency{}).Where("application_id = ?", applicationID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := dependencyPreloads(base).
		Order(req.Order(dependencySortColumns, "name")).
		Offset(req.Offset()).Limit(req.Size).
		Find(&dependencies)
	return dependencies, total, result.Error
}

// Search retrieves a page of dependencies matching the optional application,
// type and derived-status filters. The status predicate mirrors the
// precedence of services.ComputeDependencyStatus branch for branch, with the
// same today reference and expiring window, so the filter and the per-entity
// status can never disagree.
func (r *ExternalDependencyRepository) Search(applicationID, dependencyTypeID *string, status string, today models.Date, req dto.PageRequest) ([]models.ExternalDependency, int64, error) {
	var dependencies []models.ExternalDependency
	var total int64

	base := database.DB.Model(&models.ExternalDependency{})
	if applicationID != nil {
		base = base.Where("application_id = ?", *applicationID)
	}
	if dependencyTypeID != nil {
		base = base.Where("dependency_type_id = ?", *dependencyTypeID)
	}
	if status != "" {
		base = applyStatusPredicate(base, status, today)
	}

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := dependencyPreloads(base).
		Order(req.Order(dependencySortColumns, "name")).
		Offset(req.Offset()).Limit(req.Size).
		Find(&dependencies)
	return dependencies, total, result.Error
}

// applyStatusPredicate narrows the query to rows whose derived status equals
// the requested value. The four branches are mutually exclusive: a started
// window within the expiring lead time is EXPIRING, never ACTIVE.
func applyStatusPredicate(query *gorm.DB, status string, today models.Date) *gorm.DB {
	expiring := today.AddDays(models.ExpiringWindowDays)
	const started = "(validity_start_date IS NULL OR validity_start_date <= ?)"

	switch status {
	case models.DependencyStatusNotYetValid:
		return query.Where("validity_start_date IS NOT NULL AND validity_start_date > ?", today)
	case models.DependencyStatusExpired:
		return query.Where(started+" AND validity_end_date IS NOT NULL AND validity_end_date < ?", today, today)
	case models.DependencyStatusExpiring:
		return query.Where(started+" AND validity_end_date IS NOT NULL AND validity_end_date >= ? AND validity_end_date <= ?",
			today, today, expiring)
	case models.DependencyStatusActive:
		return query.Where(started+" AND (validity_end_date IS NULL OR validity_end_date > ?)", today, expiring)
	default:
		// Unknown statuses match nothing.
		return query.Where("1 = 0")
	}
}

// FindExpiring retrieves dependencies whose end date falls within
// [today, today+days], both ends inclusive
func (r *ExternalDependencyRepository) FindExpiring(today models.Date, days int) ([]models.ExternalDependency, error) {
	var dependencies []models.ExternalDependency
	result := dependencyPreloads(database.DB).
		Where("validity_end_date IS NOT NULL AND validity_end_date >= ? AND validity_end_date <= ?",
			today, today.AddDays(days)).
		Order("validity_end_date ASC").
		Find(&dependencies)
	return dependencies, result.Error
}

// FindExpired retrieves dependencies whose end date is strictly before today
func (r *ExternalDependencyRepository) FindExpired(today models.Date) ([]models.ExternalDependency, error) {
	var dependencies []models.ExternalDependency
	result := dependencyPreloads(database.DB).
		Where("validity_end_date IS NOT NULL AND validity_end_date < ?", today).
		Order("validity_end_date ASC").
		Find(&dependencies)
	return dependencies, result.Error
}

// CountByDependencyTypeID counts the dependencies referencing a type
func (r *ExternalDependencyRepository) CountByDependencyTypeID(dependencyTypeID string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.ExternalDependency{}).
		Where("dependency_type_id = ?", dependencyTypeID).
		Count(&count)
	return count, result.Error
}

// ExistsByID checks if a dependency exists
func (r *ExternalDependencyRepository) ExistsByID(id string) (bool, error) {
	var count int64
	result := database.DB.Model(&models.ExternalDependency{}).Where("id = ?", id).Count(&count)
	return count > 0, result.Error
}

// Create inserts a new dependency into the database
func (r *ExternalDependencyRepository) Create(dependency models.ExternalDependency) (models.ExternalDependency, error) {
	result := database.DB.Create(&dependency)
	return dependency, result.Error
}

// Update modifies an existing dependency
func (r *ExternalDependencyRepository) Update(dependency models.ExternalDependency) error {
	result := database.DB.Save(&dependency)
	return result.Error
}

// Delete removes a dependency from the database
func (r *ExternalDependencyRepository) Delete(id string) error {
	result := database.DB.Delete(&models.ExternalDependency{}, "id = ?", id)
	return result.Error
}
