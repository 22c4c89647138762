package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/appinventory/dto"
	"github.com/appinventory/models"
	"github.com/appinventory/repositories"
	"github.com/appinventory/utils"
)

// BusinessUnitService handles business logic for business units
type BusinessUnitService struct {
	businessUnitRepo *repositories.BusinessUnitRepository
}

// NewBusinessUnitService creates a new business unit service instance
func NewBusinessUnitService() *BusinessUnitService {
	return &BusinessUnitService{
		businessUnitRepo: repositories.NewBusinessUnitRepository(),
	}
}

// Create registers a new business unit with a unique name
func (s *BusinessUnitService) Create(req dto.CreateBusinessUnitRequest) (dto.BusinessUnitResponse, error) {
	taken, err := s.businessUnitRepo.ExistsByName(req.Name)
	if err != nil {
		return dto.BusinessUnitResponse{}, err
	}
	if taken {
		return dto.BusinessUnitResponse{}, utils.BadRequestError("business unit '%s' already exists", req.Name)
	}

	unit := models.BusinessUnit{
		Name:        req.Name,
		Description: req.Description,
	}

	created, err := s.businessUnitRepo.Create(unit)
	if err != nil {
		return dto.BusinessUnitResponse{}, err
	}
	return mapBusinessUnitResponse(created), nil
}

// Update applies a partial update; nil request fields keep the stored value
func (s *BusinessUnitService) Update(id string, req dto.UpdateBusinessUnitRequest) (dto.BusinessUnitResponse, error) {
	unit, err := s.businessUnitRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.BusinessUnitResponse{}, utils.NotFoundError("business unit not found with id: %s", id)
		}
		return dto.BusinessUnitResponse{}, err
	}

	if req.Name != nil && *req.Name != unit.Name {
		taken, err := s.businessUnitRepo.ExistsByName(*req.Name)
		if err != nil {
			return dto.BusinessUnitResponse{}, err
		}
		if taken {
			return dto.BusinessUnitResponse{}, utils.BadRequestError("business unit '%s' already exists", *req.Name)
		}
		unit.Name = *req.Name
	}
	if req.Description != nil {
		unit.Description = *req.Description
	}

	if err := s.businessUnitRepo.Update(unit); err != nil {
		return dto.BusinessUnitResponse{}, err
	}
	return mapBusinessUnitResponse(unit), nil
}

// FindByID retrieves a business unit
func (s *BusinessUnitService) FindByID(id string) (dto.BusinessUnitResponse, error) {
	unit, err := s.businessUnitRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.BusinessUnitResponse{}, utils.NotFoundError("business unit not found with id: %s", id)
		}
		return dto.BusinessUnitResponse{}, err
	}
	return mapBusinessUnitResponse(unit), nil
}

// FindAll retrieves a page of business units
func (s *BusinessUnitService) FindAll(req dto.PageRequest) (dto.PageResponse, error) {
	units, total, err := s.businessUnitRepo.FindAll(req)
	if err != nil {
		return dto.PageResponse{}, err
	}
	return dto.NewPageResponse(mapBusinessUnitResponses(units), req, total), nil
}

// Search retrieves a page of business units whose name contains the query
func (s *BusinessUnitService) Search(query string, req dto.PageRequest) (dto.PageResponse, error) {
	units, total, err := s.businessUnitRepo.Search(query, req)
	if err != nil {
		return dto.PageResponse{}, err
	}
	return dto.NewPageResponse(mapBusinessUnitResponses(units), req, total), nil
}

// Delete removes a business unit. Blocked while applications still reference
// it.
func (s *BusinessUnitService) Delete(id string) error {
	exists, err := s.businessUnitRepo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return utils.NotFoundError("business unit not found with id: %s", id)
	}

	applications, err := s.businessUnitRepo.CountApplications(id)
	if err != nil {
		return err
	}
	if applications > 0 {
		return utils.BadRequestError("cannot delete business unit with %d existing applications", applications)
	}

	return s.businessUnitRepo.Delete(id)
}

func mapBusinessUnitResponses(units []models.BusinessUnit) []dto.BusinessUnitResponse {
	responses := make([]dto.BusinessUnitResponse, 0, len(units))
	for _, unit := range units {
		responses = append(responses, mapBusinessUnitResponse(unit))
	}
	return responses
}
