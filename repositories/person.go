package repositories

import (
	"github.com/appinventory/database"
	"github.com/appinventory/dto"
	"github.com/appinventory/models"
)

var personSortColumns = map[string]string{
	"lastName":  "last_name",
	"firstName": "first_name",
	"email":     "email",
	"createdAt": "created_at",
}

// PersonRepository handles database operations for persons
type PersonRepository struct{}

// NewPersonRepository creates a new person repository instance
func NewPersonRepository() *PersonRepository {
	return &PersonRepository{}
}

// FindByID retrieves a person by their ID
func (r *PersonRepository) FindByID(id string) (models.Person, error) {
	var person models.Person
	result := database.DB.First(&person, "id = ?", id)
	return person, result.Error
}

// FindAll retrieves a page of persons
func (r *PersonRepository) FindAll(req dto.PageRequest) ([]models.Person, int64, error) {
	var persons []models.Person
	var total int64

	if err := database.DB.Model(&models.Person{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := database.DB.
		Order(req.Order(personSortColumns, "last_name")).
		Offset(req.Offset()).Limit(req.Size).
		Find(&persons)
	return persons, total, result.Error
}

// Search retrieves a page of persons whose name or email contains the query
func (r *PersonRepository) Search(query string, req dto.PageRequest) ([]models.Person, int64, error) {
	var persons []models.Person
	var total int64

	pattern := "%" + query + "%"
	base := database.DB.Model(&models.Person{}).
		Where("LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)",
			pattern, pattern, pattern)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := base.
		Order(req.Order(personSortColumns, "last_name")).
		Offset(req.Offset()).Limit(req.Size).
		Find(&persons)
	return persons, total, result.Error
}

// ExistsByID checks if a person exists
func (r *PersonRepository) ExistsByID(id string) (bool, error) {
	var count int64
	result := database.DB.Model(&models.Person{}).Where("id = ?", id).Count(&count)
	return count > 0, result.Error
}

// ExistsByEmail checks if a person with the given email exists
func (r *PersonRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	result := database.DB.Model(&models.Person{}).Where("email = ?", email).Count(&count)
	return count > 0, result.Error
}

// CountContactMemberships counts the contact join rows referencing a person
func (r *PersonRepository) CountContactMemberships(id string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.ContactPerson{}).Where("person_id = ?", id).Count(&count)
	return count, result.Error
}

// Create inserts a new person into the database
func (r *PersonRepository) Create(person models.Person) (models.Person, error) {
	result := database.DB.Create(&person)
	return person, result.Error
}

// Update modifies an existing person
func (r *PersonRepository) Update(person models.Person) error {
	result := database.DB.Save(&person)
	return result.Error
}

// Delete removes a person from the database
func (r *PersonRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Person{}, "id = ?", id)
	return result.Error
}
