package repositories

import (
	"github.com/appinventory/database"
	"github.com/appinventory/dto"
	"github.com/appinventory/models"
)

var applicationSortColumns = map[string]string{
	"name":      "name",
	"status":    "status",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// ApplicationRepository handles database operations for applications
type ApplicationRepository struct{}

// NewApplicationRepository creates a new application repository instance
func NewApplicationRepository() *ApplicationRepository {
	return &ApplicationRepository{}
}

// FindByID retrieves an application with its business unit
func (r *ApplicationRepository) FindByID(id string) (models.Application, error) {
	var application models.Application
	result := database.DB.Preload("BusinessUnit").First(&application, "id = ?", id)
	return application, result.Error
}

// Search retrieves a page of applications matching the optional status,
// business unit and name-substring filters
func (r *ApplicationRepository) Search(status *models.ApplicationStatus, businessUnitID *string, name string, req dto.PageRequest) ([]models.Application, int64, error) {
	var applications []models.Application
	var total int64

	base := database.DB.Model(&models.Application{})
	if status != nil {
		base = base.Where("status = ?", *status)
	}
	if businessUnitID != nil {
		base = base.Where("business_unit_id = ?", *businessUnitID)
	}
	if name != "" {
		base = base.Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%")
	}

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := base.Preload("BusinessUnit").
		Order(req.Order(applicationSortColumns, "name")).
		Offset(req.Offset()).Limit(req.Size).
		Find(&applications)
	return applications, total, result.Error
}

// ExistsByID checks if an application exists
func (r *ApplicationRepository) ExistsByID(id string) (bool, error) {
	var count int64
	result := database.DB.Model(&models.Application{}).Where("id = ?", id).Count(&count)
	return count > 0, result.Error
}

// Create inserts a new application into the database
func (r *ApplicationRepository) Create(application models.Application) (models.Application, error) {
	result := database.DB.Create(&application)
	return application, result.Error
}

// Update modifies an existing application
func (r *ApplicationRepository) Update(application models.Application) error {
	result := database.DB.Save(&application)
	return result.Error
}

// Delete removes an application from the database
func (r *ApplicationRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Application{}, "id = ?", id)
	return result.Error
}

// CountVersions counts the versions belonging to an application
func (r *ApplicationRepository) CountVersions(id string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Version{}).Where("application_id = ?", id).Count(&count)
	return count, result.Error
}

// CountDeployments counts the deployments recorded for an application
func (r *ApplicationRepository) CountDeployments(id string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Deployment{}).Where("application_id = ?", id).Count(&count)
	return count, result.Error
}

// CountDependencies counts the external dependencies of an application
func (r *ApplicationRepository) CountDependencies(id string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.ExternalDependency{}).Where("application_id = ?", id).Count(&count)
	return count, result.Error
}

// FindContacts retrieves the contact join rows for an application with
// contact details
func (r *ApplicationRepository) FindContacts(applicationID string) ([]models.ApplicationContact, error) {
	var joins []models.ApplicationContact
	result := database.DB.
		Preload("Contact.ContactRole").
		Preload("Contact.ContactPersons.Person").
		Where("application_id = ?", applicationID).
		Find(&joins)
	return joins, result.Error
}

// FindContactJoin retrieves a single application-contact pairing
func (r *ApplicationRepository) FindContactJoin(applicationID, contactID string) (models.ApplicationContact, error) {
	var join models.ApplicationContact
	result := database.DB.
		Where("application_id = ? AND contact_id = ?", applicationID, contactID).
		First(&join)
	return join, result.Error
}

// AddContact links a contact to an application
func (r *ApplicationRepository) AddContact(join models.ApplicationContact) (models.ApplicationContact, error) {
	result := database.DB.Create(&join)
	return join, result.Error
}

// RemoveContact unlinks a contact from an application. Removing an absent
// pairing is a no-op.
func (r *ApplicationRepository) RemoveContact(applicationID, contactID string) error {
	result := database.DB.
		Where("application_id = ? AND contact_id = ?", applicationID, contactID).
		Delete(&models.ApplicationContact{})
	return result.Error
}
