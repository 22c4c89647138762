package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/appinventory/dto"
	"github.com/appinventory/models"
	"github.com/appinventory/repositories"
	"github.com/appinventory/utils"
)

// ContactRoleService handles business logic for the contact role catalog
type ContactRoleService struct {
	contactRoleRepo *repositories.ContactRoleRepository
}

// NewContactRoleService creates a new contact role service instance
func NewContactRoleService() *ContactRoleService {
	return &ContactRoleService{
		contactRoleRepo: repositories.NewContactRoleRepository(),
	}
}

// Create registers a new contact role with a unique name
func (s *ContactRoleService) Create(req dto.CreateContactRoleRequest) (dto.ContactRoleResponse, error) {
	taken, err := s.contactRoleRepo.ExistsByRoleName(req.RoleName)
	if err != nil {
		return dto.ContactRoleResponse{}, err
	}
	if taken {
		return dto.ContactRoleResponse{}, utils.BadRequestError("contact role '%s' already exists", req.RoleName)
	}

	role := models.ContactRole{
		RoleName:    req.RoleName,
		Description: req.Description,
	}

	created, err := s.contactRoleRepo.Create(role)
	if err != nil {
		return dto.ContactRoleResponse{}, err
	}
	return mapContactRoleResponse(created), nil
}

// Update applies a partial update; nil request fields keep the stored value
func (s *ContactRoleService) Update(id string, req dto.UpdateContactRoleRequest) (dto.ContactRoleResponse, error) {
	role, err := s.contactRoleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ContactRoleResponse{}, utils.NotFoundError("contact role not found with id: %s", id)
		}
		return dto.ContactRoleResponse{}, err
	}

	if req.RoleName != nil && *req.RoleName != role.RoleName {
		taken, err := s.contactRoleRepo.ExistsByRoleName(*req.RoleName)
		if err != nil {
			return dto.ContactRoleResponse{}, err
		}
		if taken {
			return dto.ContactRoleResponse{}, utils.BadRequestError("contact role '%s' already exists", *req.RoleName)
		}
		role.RoleName = *req.RoleName
	}
	if req.Description != nil {
		role.Description = *req.Description
	}

	if err := s.contactRoleRepo.Update(role); err != nil {
		return dto.ContactRoleResponse{}, err
	}
	return mapContactRoleResponse(role), nil
}

// FindByID retrieves a contact role
func (s *ContactRoleService) FindByID(id string) (dto.ContactRoleResponse, error) {
	role, err := s.contactRoleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ContactRoleResponse{}, utils.NotFoundError("contact role not found with id: %s", id)
		}
		return dto.ContactRoleResponse{}, err
	}
	return mapContactRoleResponse(role), nil
}

// FindAll lists all contact roles
func (s *ContactRoleService) FindAll() ([]dto.ContactRoleResponse, error) {
	roles, err := s.contactRoleRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ContactRoleResponse, 0, len(roles))
	for _, role := range roles {
		responses = append(responses, mapContactRoleResponse(role))
	}
	return responses, nil
}

// Delete removes a contact role. Blocked while contacts still reference it.
func (s *ContactRoleService) Delete(id string) error {
	if _, err := s.contactRoleRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFoundError("contact role not found with id: %s", id)
		}
		return err
	}

	contacts, err := s.contactRoleRepo.CountContacts(id)
	if err != nil {
		return err
	}
	if contacts > 0 {
		return utils.BadRequestError("cannot delete contact role used by %d contacts", contacts)
	}

	return s.contactRoleRepo.Delete(id)
}
