package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/appinventory/dto"
	"github.com/appinventory/models"
	"github.com/appinventory/repositories"
	"github.com/appinventory/utils"
)

// ContactService handles business logic for contacts and their person
// associations
type ContactService struct {
	contactRepo     *repositories.ContactRepository
	contactRoleRepo *repositories.ContactRoleRepository
	personRepo      *repositories.PersonRepository
}

// NewContactService creates a new contact service instance
func NewContactService() *ContactService {
	return &ContactService{
		contactRepo:     repositories.NewContactRepository(),
		contactRoleRepo: repositories.NewContactRoleRepository(),
		personRepo:      repositories.NewPersonRepository(),
	}
}

// Create bundles persons under a contact role. The primary person must be one
// of the listed persons, and every listed person must exist.
func (s *ContactService) Create(req dto.CreateContactRequest) (dto.ContactResponse, error) {
	if _, err := s.contactRoleRepo.FindByID(req.ContactRoleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ContactResponse{}, utils.NotFoundError("contact role not found with id: %s", req.ContactRoleID)
		}
		return dto.ContactResponse{}, err
	}

	primaryListed := false
	seen := make(map[string]bool, len(req.PersonIDs))
	joins := make([]models.ContactPerson, 0, len(req.PersonIDs))
	for _, personID := range req.PersonIDs {
		if seen[personID] {
			continue
		}
		seen[personID] = true

		exists, err := s.personRepo.ExistsByID(personID)
		if err != nil {
			return dto.ContactResponse{}, err
		}
		if !exists {
			return dto.ContactResponse{}, utils.NotFoundError("person not found with id: %s", personID)
		}

		isPrimary := personID == req.PrimaryPersonID
		primaryListed = primaryListed || isPrimary
		joins = append(joins, models.ContactPerson{PersonID: personID, IsPrimary: isPrimary})
	}
	if !primaryListed {
		return dto.ContactResponse{}, utils.BadRequestError("primary person must be one of the contact's persons")
	}

	contact := models.Contact{ContactRoleID: req.ContactRoleID}
	created, err := s.contactRepo.CreateWithPersons(contact, joins)
	if err != nil {
		return dto.ContactResponse{}, err
	}
	return mapContactResponse(created), nil
}

// FindByID retrieves a contact with its role and persons
func (s *ContactService) FindByID(id string) (dto.ContactResponse, error) {
	contact, err := s.contactRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ContactResponse{}, utils.NotFoundError("contact not found with id: %s", id)
		}
		return dto.ContactResponse{}, err
	}
	return mapContactResponse(contact), nil
}

// FindAll lists all contacts
func (s *ContactService) FindAll() ([]dto.ContactResponse, error) {
	contacts, err := s.contactRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		responses = append(responses, mapContactResponse(contact))
	}
	return responses, nil
}

// AddPerson attaches a person to a contact. Attaching with isPrimary set
// demotes the current primary.
func (s *ContactService) AddPerson(contactID, personID string, isPrimary bool) (dto.ContactResponse, error) {
	exists, err := s.contactRepo.ExistsByID(contactID)
	if err != nil {
		return dto.ContactResponse{}, err
	}
	if !exists {
		return dto.ContactResponse{}, utils.NotFoundError("contact not found with id: %s", contactID)
	}

	personExists, err := s.personRepo.ExistsByID(personID)
	if err != nil {
		return dto.ContactResponse{}, err
	}
	if !personExists {
		return dto.ContactResponse{}, utils.NotFoundError("person not found with id: %s", personID)
	}

	if _, err := s.contactRepo.FindJoin(contactID, personID); err == nil {
		return dto.ContactResponse{}, utils.BadRequestError("person is already part of this contact")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.ContactResponse{}, err
	}

	join := models.ContactPerson{ContactID: contactID, PersonID: personID, IsPrimary: isPrimary}
	if err := s.contactRepo.AddPerson(join); err != nil {
		return dto.ContactResponse{}, err
	}
	return s.FindByID(contactID)
}

// RemovePerson detaches a person from a contact. Removing an absent pairing
// succeeds without effect.
func (s *ContactService) RemovePerson(contactID, personID string) error {
	exists, err := s.contactRepo.ExistsByID(contactID)
	if err != nil {
		return err
	}
	if !exists {
		return utils.NotFoundError("contact not found with id: %s", contactID)
	}

	personExists, err := s.personRepo.ExistsByID(personID)
	if err != nil {
		return err
	}
	if !personExists {
		return utils.NotFoundError("person not found with id: %s", personID)
	}

	return s.contactRepo.RemovePerson(contactID, personID)
}

// SetPrimary makes the given person the contact's sole primary
func (s *ContactService) SetPrimary(contactID, personID string) (dto.ContactResponse, error) {
	exists, err := s.contactRepo.ExistsByID(contactID)
	if err != nil {
		return dto.ContactResponse{}, err
	}
	if !exists {
		return dto.ContactResponse{}, utils.NotFoundError("contact not found with id: %s", contactID)
	}

	if _, err := s.contactRepo.FindJoin(contactID, personID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ContactResponse{}, utils.NotFoundError("person %s is not part of contact %s", personID, contactID)
		}
		return dto.ContactResponse{}, err
	}

	if err := s.contactRepo.SetPrimary(contactID, personID); err != nil {
		return dto.ContactResponse{}, err
	}
	return s.FindByID(contactID)
}

// Delete removes a contact along with its person and application links
func (s *ContactService) Delete(id string) error {
	exists, err := s.contactRepo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return utils.NotFoundError("contact not found with id: %s", id)
	}
	return s.contactRepo.Delete(id)
}
