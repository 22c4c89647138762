package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/appinventory/dto"
	"github.com/appinventory/models"
	"github.com/appinventory/repositories"
	"github.com/appinventory/utils"
)

// EnvironmentService handles business logic for deployment environments
type EnvironmentService struct {
	environmentRepo *repositories.EnvironmentRepository
}

// NewEnvironmentService creates a new environment service instance
func NewEnvironmentService() *EnvironmentService {
	return &EnvironmentService{
		environmentRepo: repositories.NewEnvironmentRepository(),
	}
}

// Create registers a new environment with a unique name
func (s *EnvironmentService) Create(req dto.CreateEnvironmentRequest) (dto.EnvironmentResponse, error) {
	taken, err := s.environmentRepo.ExistsByName(req.Name)
	if err != nil {
		return dto.EnvironmentResponse{}, err
	}
	if taken {
		return dto.EnvironmentResponse{}, utils.BadRequestError("environment '%s' already exists", req.Name)
	}

	if err := validateCriticalityLevel(req.CriticalityLevel); err != nil {
		return dto.EnvironmentResponse{}, err
	}

	environment := models.Environment{
		Name:             req.Name,
		Description:      req.Description,
		IsProduction:     req.IsProduction,
		CriticalityLevel: req.CriticalityLevel,
	}

	created, err := s.environmentRepo.Create(environment)
	if err != nil {
		return dto.EnvironmentResponse{}, err
	}
	return mapEnvironmentResponse(created), nil
}

// Update applies a partial update; nil request fields keep the stored value
func (s *EnvironmentService) Update(id string, req dto.UpdateEnvironmentRequest) (dto.EnvironmentResponse, error) {
	environment, err := s.environmentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.EnvironmentResponse{}, utils.NotFoundError("environment not found with id: %s", id)
		}
		return dto.EnvironmentResponse{}, err
	}

	if req.Name != nil && *req.Name != environment.Name {
		taken, err := s.environmentRepo.ExistsByName(*req.Name)
		if err != nil {
			return dto.EnvironmentResponse{}, err
		}
		if taken {
			return dto.EnvironmentResponse{}, utils.BadRequestError("environment '%s' already exists", *req.Name)
		}
		environment.Name = *req.Name
	}
	if req.Description != nil {
		environment.Description = *req.Description
	}
	if req.IsProduction != nil {
		environment.IsProduction = *req.IsProduction
	}
	if req.CriticalityLevel != nil {
		if err := validateCriticalityLevel(req.CriticalityLevel); err != nil {
			return dto.EnvironmentResponse{}, err
		}
		environment.CriticalityLevel = req.CriticalityLevel
	}

	if err := s.environmentRepo.Update(environment); err != nil {
		return dto.EnvironmentResponse{}, err
	}
	return mapEnvironmentResponse(environment), nil
}

// FindByID retrieves an environment
func (s *EnvironmentService) FindByID(id string) (dto.EnvironmentResponse, error) {
	environment, err := s.environmentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.EnvironmentResponse{}, utils.NotFoundError("environment not found with id: %s", id)
		}
		return dto.EnvironmentResponse{}, err
	}
	return mapEnvironmentResponse(environment), nil
}

// FindAll retrieves a page of environments
func (s *EnvironmentService) FindAll(req dto.PageRequest) (dto.PageResponse, error) {
	environments, total, err := s.environmentRepo.FindAll(req)
	if err != nil {
		return dto.PageResponse{}, err
	}
	return dto.NewPageResponse(mapEnvironmentResponses(environments), req, total), nil
}

// Search retrieves a page of environments whose name contains the query
func (s *EnvironmentService) Search(query string, req dto.PageRequest) (dto.PageResponse, error) {
	environments, total, err := s.environmentRepo.Search(query, req)
	if err != nil {
		return dto.PageResponse{}, err
	}
	return dto.NewPageResponse(mapEnvironmentResponses(environments), req, total), nil
}

// Delete removes an environment. Blocked while deployments still reference
// it.
func (s *EnvironmentService) Delete(id string) error {
	exists, err := s.environmentRepo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return utils.NotFoundError("environment not found with id: %s", id)
	}

	deployments, err := s.environmentRepo.CountDeployments(id)
	if err != nil {
		return err
	}
	if deployments > 0 {
		return utils.BadRequestError("cannot delete environment with %d recorded deployments", deployments)
	}

	return s.environmentRepo.Delete(id)
}

func mapEnvironmentResponses(environments []models.Environment) []dto.EnvironmentResponse {
	responses := make([]dto.EnvironmentResponse, 0, len(environments))
	for _, environment := range environments {
		responses = append(responses, mapEnvironmentResponse(environment))
	}
	return responses
}

func validateCriticalityLevel(level *int) error {
	if level != nil && (*level < 1 || *level > 5) {
		return utils.BadRequestError("criticality level must be between 1 and 5")
	}
	return nil
}
