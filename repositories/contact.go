package repositories

import (
	"github.com/appinventory/database"
	"github.com/appinventory/models"
	"gorm.io/gorm"
)

// ContactRepository handles database operations for contacts and their
// person associations
type ContactRepository struct{}

// NewContactRepository creates a new contact repository instance
func NewContactRepository() *ContactRepository {
	return &ContactRepository{}
}

func contactPreloads(query *gorm.DB) *gorm.DB {
	return query.Preload("ContactRole").Preload("ContactPersons.Person")
}

// FindByID retrieves a contact with its role and person associations
func (r *ContactRepository) FindByID(id string) (models.Contact, error) {
	var contact models.Contact
	result := contactPreloads(database.DB).First(&contact, "id = ?", id)
	return contact, result.Error
}

// FindAll retrieves all contacts with their roles and person associations
func (r *ContactRepository) FindAll() ([]models.Contact, error) {
	var contacts []models.Contact
	result := contactPreloads(database.DB).Order("created_at ASC").Find(&contacts)
	return contacts, result.Error
}

// ExistsByID checks if a contact exists
func (r *ContactRepository) ExistsByID(id string) (bool, error) {
	var count int64
	result := database.DB.Model(&models.Contact{}).Where("id = ?", id).Count(&count)
	return count > 0, result.Error
}

// CreateWithPersons inserts a contact and its person join rows in one
// transaction so a missing person leaves no partial contact behind.
func (r *ContactRepository) CreateWithPersons(contact models.Contact, joins []models.ContactPerson) (models.Contact, error) {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&contact).Error; err != nil {
			return err
		}
		for i := range joins {
			joins[i].ContactID = contact.ID
		}
		return tx.Create(&joins).Error
	})
	if err != nil {
		return contact, err
	}
	return r.FindByID(contact.ID)
}

// FindJoin retrieves the join row for one (contact, person) pair
func (r *ContactRepository) FindJoin(contactID, personID string) (models.ContactPerson, error) {
	var join models.ContactPerson
	result := database.DB.
		Where("contact_id = ? AND person_id = ?", contactID, personID).
		First(&join)
	return join, result.Error
}

// AddPerson attaches a person to a contact. When the new row is primary, the
// previous primary is demoted in the same transaction.
func (r *ContactRepository) AddPerson(join models.ContactPerson) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if join.IsPrimary {
			err := tx.Model(&models.ContactPerson{}).
				Where("contact_id = ?", join.ContactID).
				Update("is_primary", false).Error
			if err != nil {
				return err
			}
		}
		return tx.Create(&join).Error
	})
}

// RemovePerson detaches a person from a contact. Removing an absent pairing
// is a no-op.
func (r *ContactRepository) RemovePerson(contactID, personID string) error {
	result := database.DB.
		Where("contact_id = ? AND person_id = ?", contactID, personID).
		Delete(&models.ContactPerson{})
	return result.Error
}

// SetPrimary flips is_primary to true on the join row for personID and false
// on every other row of the contact, as a single statement so no concurrent
// reader can observe two or zero primary rows.
func (r *ContactRepository) SetPrimary(contactID, personID string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.ContactPerson{}).
			Where("contact_id = ?", contactID).
			Update("is_primary", gorm.Expr("(person_id = ?)", personID)).Error
	})
}

// Delete removes a contact and its join rows
func (r *ContactRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contact_id = ?", id).Delete(&models.ContactPerson{}).Error; err != nil {
			return err
		}
		if err := tx.Where("contact_id = ?", id).Delete(&models.ApplicationContact{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Contact{}, "id = ?", id).Error
	})
}
