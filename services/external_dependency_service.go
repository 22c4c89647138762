package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/appinventory/dto"
	"github.com/appinventory/models"
	"github.com/appinventory/repositories"
	"github.com/appinventory/utils"
)

// ExternalDependencyService handles business logic for external dependencies
type ExternalDependencyService struct {
	dependencyRepo  *repositories.ExternalDependencyRepository
	applicationRepo *repositories.ApplicationRepository
	typeRepo        *repositories.DependencyTypeRepository
	now             func() time.Time
}

// NewExternalDependencyService creates a new external dependency service
// instance
func NewExternalDependencyService() *ExternalDependencyService {
	return &ExternalDependencyService{
		dependencyRepo:  repositories.NewExternalDependencyRepository(),
		applicationRepo: repositories.NewApplicationRepository(),
		typeRepo:        repositories.NewDependencyTypeRepository(),
		now:             time.Now,
	}
}

func (s *ExternalDependencyService) today() models.Date {
	return models.DateOf(s.now())
}

// Create records a new dependency under an application
func (s *ExternalDependencyService) Create(applicationID string, req dto.CreateExternalDependencyRequest) (dto.ExternalDependencyResponse, error) {
	exists, err := s.applicationRepo.ExistsByID(applicationID)
	if err != nil {
		return dto.ExternalDependencyResponse{}, err
	}
	if !exists {
		return dto.ExternalDependencyResponse{}, utils.NotFoundError("application not found with id: %s", applicationID)
	}

	if _, err := s.typeRepo.FindByID(req.DependencyTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ExternalDependencyResponse{}, utils.NotFoundError("dependency type not found with id: %s", req.DependencyTypeID)
		}
		return dto.ExternalDependencyResponse{}, err
	}

	if err := validateValidityWindow(req.ValidityStartDate, req.ValidityEndDate); err != nil {
		return dto.ExternalDependencyResponse{}, err
	}

	dependency := models.ExternalDependency{
		ApplicationID:          applicationID,
		DependencyTypeID:       req.DependencyTypeID,
		Name:                   req.Name,
		Description:            req.Description,
		TechnicalDocumentation: req.TechnicalDocumentation,
		ValidityStartDate:      req.ValidityStartDate,
		ValidityEndDate:        req.ValidityEndDate,
	}

	created, err := s.dependencyRepo.Create(dependency)
	if err != nil {
		return dto.ExternalDependencyResponse{}, err
	}
	return s.FindByID(created.ID)
}

// Update applies a partial update; nil request fields keep the stored value.
// The validity window is re-validated on the merged result.
func (s *ExternalDependencyService) Update(id string, req dto.UpdateExternalDependencyRequest) (dto.ExternalDependencyResponse, error) {
	dependency, err := s.dependencyRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ExternalDependencyResponse{}, utils.NotFoundError("external dependency not found with id: %s", id)
		}
		return dto.ExternalDependencyResponse{}, err
	}

	if req.DependencyTypeID != nil {
		if _, err := s.typeRepo.FindByID(*req.DependencyTypeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.ExternalDependencyResponse{}, utils.NotFoundError("dependency type not found with id: %s", *req.DependencyTypeID)
			}
			return dto.ExternalDependencyResponse{}, err
		}
		dependency.DependencyTypeID = *req.DependencyTypeID
	}
	if req.Name != nil {
		dependency.Name = *req.Name
	}
	if req.Description != nil {
		dependency.Description = *req.Description
	}
	if req.TechnicalDocumentation != nil {
		dependency.TechnicalDocumentation = *req.TechnicalDocumentation
	}
	if req.ValidityStartDate != nil {
		dependency.ValidityStartDate = req.ValidityStartDate
	}
	if req.ValidityEndDate != nil {
		dependency.ValidityEndDate = req.ValidityEndDate
	}

	if err := validateValidityWindow(dependency.ValidityStartDate, dependency.ValidityEndDate); err != nil {
		return dto.ExternalDependencyResponse{}, err
	}

	if err := s.dependencyRepo.Update(dependency); err != nil {
		return dto.ExternalDependencyResponse{}, err
	}
	return s.FindByID(id)
}

// FindByID retrieves a dependency with its derived status
func (s *ExternalDependencyService) FindByID(id string) (dto.ExternalDependencyResponse, error) {
	dependency, err := s.dependencyRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ExternalDependencyResponse{}, utils.NotFoundError("external dependency not found with id: %s", id)
		}
		return dto.ExternalDependencyResponse{}, err
	}
	return s.mapResponse(dependency), nil
}

// FindByApplication retrieves a page of dependencies for an application
func (s *ExternalDependencyService) FindByApplication(applicationID string, req dto.PageRequest) (dto.PageResponse, error) {
	exists, err := s.applicationRepo.ExistsByID(applicationID)
	if err != nil {
		return dto.PageResponse{}, err
	}
	if !exists {
		return dto.PageResponse{}, utils.NotFoundError("application not found with id: %s", applicationID)
	}

	dependencies, total, err := s.dependencyRepo.FindByApplicationID(applicationID, req)
	if err != nil {
		return dto.PageResponse{}, err
	}
	return dto.NewPageResponse(s.mapResponses(dependencies), req, total), nil
}

// Search retrieves a page of dependencies with optional application, type
// and derived-status filters. The status filter is evaluated inside the
// query with the same today reference used for response mapping.
func (s *ExternalDependencyService) Search(applicationID, dependencyTypeID *string, status string, req dto.PageRequest) (dto.PageResponse, error) {
	if status != "" && !models.IsValidDependencyStatus(status) {
		return dto.PageResponse{}, utils.BadRequestError("unknown dependency status: %s", status)
	}

	dependencies, total, err := s.dependencyRepo.Search(applicationID, dependencyTypeID, status, s.today(), req)
	if err != nil {
		return dto.PageResponse{}, err
	}
	return dto.NewPageResponse(s.mapResponses(dependencies), req, total), nil
}

// FindExpiring retrieves dependencies expiring within the given number of
// days
func (s *ExternalDependencyService) FindExpiring(days int) ([]dto.ExternalDependencyResponse, error) {
	if days < 0 {
		return nil, utils.BadRequestError("days must not be negative")
	}
	dependencies, err := s.dependencyRepo.FindExpiring(s.today(), days)
	if err != nil {
		return nil, err
	}
	return s.mapResponses(dependencies), nil
}

// FindExpired retrieves dependencies whose validity has ended
func (s *ExternalDependencyService) FindExpired() ([]dto.ExternalDependencyResponse, error) {
	dependencies, err := s.dependencyRepo.FindExpired(s.today())
	if err != nil {
		return nil, err
	}
	return s.mapResponses(dependencies), nil
}

// Delete removes a dependency
func (s *ExternalDependencyService) Delete(id string) error {
	exists, err := s.dependencyRepo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return utils.NotFoundError("external dependency not found with id: %s", id)
	}
	return s.dependencyRepo.Delete(id)
}

func (s *ExternalDependencyService) mapResponse(dependency models.ExternalDependency) dto.ExternalDependencyResponse {
	today := s.today()
	status := ComputeDependencyStatus(dependency.ValidityStartDate, dependency.ValidityEndDate, today)

	return dto.ExternalDependencyResponse{
		ID:                     dependency.ID,
		Application:            mapApplicationSummary(dependency.Application),
		DependencyType:         mapDependencyTypeResponse(dependency.DependencyType),
		Name:                   dependency.Name,
		Description:            dependency.Description,
		TechnicalDocumentation: dependency.TechnicalDocumentation,
		ValidityStartDate:      dependency.ValidityStartDate,
		ValidityEndDate:        dependency.ValidityEndDate,
		IsActive:               IsDependencyActive(status),
		DaysUntilExpiration:    DaysUntilExpiration(dependency.ValidityEndDate, today),
		Status:                 status,
		CreatedAt:              dependency.CreatedAt,
		UpdatedAt:              dependency.UpdatedAt,
	}
}

func (s *ExternalDependencyService) mapResponses(dependencies []models.ExternalDependency) []dto.ExternalDependencyResponse {
	responses := make([]dto.ExternalDependencyResponse, 0, len(dependencies))
	for _, dependency := range dependencies {
		responses = append(responses, s.mapResponse(dependency))
	}
	return responses
}

func validateValidityWindow(start, end *models.Date) error {
	if start != nil && end != nil && end.Before(start.Time) {
		return utils.BadRequestError("validity end date must be after or equal to start date")
	}
	return nil
}
