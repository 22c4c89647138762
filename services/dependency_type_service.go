package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/appinventory/dto"
	"github.com/appinventory/models"
	"github.com/appinventory/repositories"
	"github.com/appinventory/utils"
)

// DependencyTypeService handles business logic for the dependency type
// catalog
type DependencyTypeService struct {
	dependencyTypeRepo *repositories.DependencyTypeRepository
	dependencyRepo     *repositories.ExternalDependencyRepository
}

// NewDependencyTypeService creates a new dependency type service instance
func NewDependencyTypeService() *DependencyTypeService {
	return &DependencyTypeService{
		dependencyTypeRepo: repositories.NewDependencyTypeRepository(),
		dependencyRepo:     repositories.NewExternalDependencyRepository(),
	}
}

// Create registers a new dependency type with a unique name. API-created
// types are always marked custom.
func (s *DependencyTypeService) Create(req dto.CreateDependencyTypeRequest) (dto.DependencyTypeResponse, error) {
	taken, err := s.dependencyTypeRepo.ExistsByTypeName(req.TypeName)
	if err != nil {
		return dto.DependencyTypeResponse{}, err
	}
	if taken {
		return dto.DependencyTypeResponse{}, utils.BadRequestError("dependency type '%s' already exists", req.TypeName)
	}

	dependencyType := models.DependencyType{
		TypeName:    req.TypeName,
		Description: req.Description,
		IsCustom:    true,
	}

	created, err := s.dependencyTypeRepo.Create(dependencyType)
	if err != nil {
		return dto.DependencyTypeResponse{}, err
	}
	return mapDependencyTypeResponse(created), nil
}

// Update applies a partial update; nil request fields keep the stored value
func (s *DependencyTypeService) Update(id string, req dto.UpdateDependencyTypeRequest) (dto.DependencyTypeResponse, error) {
	dependencyType, err := s.dependencyTypeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.DependencyTypeResponse{}, utils.NotFoundError("dependency type not found with id: %s", id)
		}
		return dto.DependencyTypeResponse{}, err
	}

	if req.TypeName != nil && *req.TypeName != dependencyType.TypeName {
		taken, err := s.dependencyTypeRepo.ExistsByTypeName(*req.TypeName)
		if err != nil {
			return dto.DependencyTypeResponse{}, err
		}
		if taken {
			return dto.DependencyTypeResponse{}, utils.BadRequestError("dependency type '%s' already exists", *req.TypeName)
		}
		dependencyType.TypeName = *req.TypeName
	}
	if req.Description != nil {
		dependencyType.Description = *req.Description
	}

	if err := s.dependencyTypeRepo.Update(dependencyType); err != nil {
		return dto.DependencyTypeResponse{}, err
	}
	return mapDependencyTypeResponse(dependencyType), nil
}

// FindByID retrieves a dependency type
func (s *DependencyTypeService) FindByID(id string) (dto.DependencyTypeResponse, error) {
	dependencyType, err := s.dependencyTypeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.DependencyTypeResponse{}, utils.NotFoundError("dependency type not found with id: %s", id)
		}
		return dto.DependencyTypeResponse{}, err
	}
	return mapDependencyTypeResponse(dependencyType), nil
}

// FindAll lists all dependency types
func (s *DependencyTypeService) FindAll() ([]dto.DependencyTypeResponse, error) {
	types, err := s.dependencyTypeRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.DependencyTypeResponse, 0, len(types))
	for _, dependencyType := range types {
		responses = append(responses, mapDependencyTypeResponse(dependencyType))
	}
	return responses, nil
}

// Delete removes a dependency type. Blocked while dependencies still
// reference it.
func (s *DependencyTypeService) Delete(id string) error {
	if _, err := s.dependencyTypeRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFoundError("dependency type not found with id: %s", id)
		}
		return err
	}

	dependencies, err := s.dependencyRepo.CountByDependencyTypeID(id)
	if err != nil {
		return err
	}
	if dependencies > 0 {
		return utils.BadRequestError("cannot delete dependency type used by %d dependencies", dependencies)
	}

	return s.dependencyTypeRepo.Delete(id)
}
