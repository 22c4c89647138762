package repositories

import (
	"github.com/appinventory/database"
	"github.com/appinventory/models"
)

// ContactRoleRepository handles database operations for contact roles
type ContactRoleRepository struct{}

// NewContactRoleRepository creates a new contact role repository instance
func NewContactRoleRepository() *ContactRoleRepository {
	return &ContactRoleRepository{}
}

// FindByID retrieves a contact role by its ID
func (r *ContactRoleRepository) FindByID(id string) (models.ContactRole, error) {
	var role models.ContactRole
	result := database.DB.First(&role, "id = ?", id)
	return role, result.Error
}

// FindAll retrieves all contact roles ordered by name
func (r *ContactRoleRepository) FindAll() ([]models.ContactRole, error) {
	var roles []models.ContactRole
	result := database.DB.Order("role_name ASC").Find(&roles)
	return roles, result.Error
}

// ExistsByRoleName checks if a contact role with the given name exists
func (r *ContactRoleRepository) ExistsByRoleName(roleName string) (bool, error) {
	var count int64
	result := database.DB.Model(&models.ContactRole{}).Where("role_name = ?", roleName).Count(&count)
	return count > 0, result.Error
}

// CountContacts counts the contacts referencing a role
func (r *ContactRoleRepository) CountContacts(id string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Contact{}).Where("contact_role_id = ?", id).Count(&count)
	return count, result.Error
}

// Create inserts a new contact role into the database
func (r *ContactRoleRepository) Create(role models.ContactRole) (models.ContactRole, error) {
	result := database.DB.Create(&role)
	return role, result.Error
}

// Update modifies an existing contact role
func (r *ContactRoleRepository) Update(role models.ContactRole) error {
	result := database.DB.Save(&role)
	return result.Error
}

// Delete removes a contact role from the database
func (r *ContactRoleRepository) Delete(id string) error {
	result := database.DB.Delete(&models.ContactRole{}, "id = ?", id)
	return result.Error
}
