package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/appinventory/dto"
	"github.com/appinventory/models"
	"github.com/appinventory/repositories"
	"github.com/appinventory/utils"
)

// PersonService handles business logic for persons
type PersonService struct {
	personRepo *repositories.PersonRepository
}

// NewPersonService creates a new person service instance
func NewPersonService() *PersonService {
	return &PersonService{
		personRepo: repositories.NewPersonRepository(),
	}
}

// Create registers a new person with a unique email
func (s *PersonService) Create(req dto.CreatePersonRequest) (dto.PersonResponse, error) {
	taken, err := s.personRepo.ExistsByEmail(req.Email)
	if err != nil {
		return dto.PersonResponse{}, err
	}
	if taken {
		return dto.PersonResponse{}, utils.BadRequestError("person with email '%s' already exists", req.Email)
	}

	person := models.Person{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	created, err := s.personRepo.Create(person)
	if err != nil {
		return dto.PersonResponse{}, err
	}
	return mapPersonResponse(created), nil
}

// Update applies a partial update; nil request fields keep the stored value.
// Email uniqueness is re-checked only when the email changes.
func (s *PersonService) Update(id string, req dto.UpdatePersonRequest) (dto.PersonResponse, error) {
	person, err := s.personRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PersonResponse{}, utils.NotFoundError("person not found with id: %s", id)
		}
		return dto.PersonResponse{}, err
	}

	if req.FirstName != nil {
		person.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		person.LastName = *req.LastName
	}
	if req.Email != nil && *req.Email != person.Email {
		taken, err := s.personRepo.ExistsByEmail(*req.Email)
		if err != nil {
			return dto.PersonResponse{}, err
		}
		if taken {
			return dto.PersonResponse{}, utils.BadRequestError("person with email '%s' already exists", *req.Email)
		}
		person.Email = *req.Email
	}
	if req.Phone != nil {
		person.Phone = *req.Phone
	}

	if err := s.personRepo.Update(person); err != nil {
		return dto.PersonResponse{}, err
	}
	return mapPersonResponse(person), nil
}

// FindByID retrieves a person
func (s *PersonService) FindByID(id string) (dto.PersonResponse, error) {
	person, err := s.personRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PersonResponse{}, utils.NotFoundError("person not found with id: %s", id)
		}
		return dto.PersonResponse{}, err
	}
	return mapPersonResponse(person), nil
}

// FindAll retrieves a page of persons
func (s *PersonService) FindAll(req dto.PageRequest) (dto.PageResponse, error) {
	persons, total, err := s.personRepo.FindAll(req)
	if err != nil {
		return dto.PageResponse{}, err
	}
	return dto.NewPageResponse(mapPersonResponses(persons), req, total), nil
}

// Search retrieves a page of persons whose name or email contains the query
func (s *PersonService) Search(query string, req dto.PageRequest) (dto.PageResponse, error) {
	persons, total, err := s.personRepo.Search(query, req)
	if err != nil {
		return dto.PageResponse{}, err
	}
	return dto.NewPageResponse(mapPersonResponses(persons), req, total), nil
}

// Delete removes a person. Blocked while contacts still reference them.
func (s *PersonService) Delete(id string) error {
	exists, err := s.personRepo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return utils.NotFoundError("person not found with id: %s", id)
	}

	memberships, err := s.personRepo.CountContactMemberships(id)
	if err != nil {
		return err
	}
	if memberships > 0 {
		return utils.BadRequestError("cannot delete person assigned to %d contacts", memberships)
	}

	return s.personRepo.Delete(id)
}

func mapPersonResponses(persons []models.Person) []dto.PersonResponse {
	responses := make([]dto.PersonResponse, 0, len(persons))
	for _, person := range persons {
		responses = append(responses, mapPersonResponse(person))
	}
	return responses
}
