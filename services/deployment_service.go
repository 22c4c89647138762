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

// DeploymentService handles business logic for the append-only deployment
// log
type DeploymentService struct {
	deploymentRepo  *repositories.DeploymentRepository
	applicationRepo *repositories.ApplicationRepository
	versionRepo     *repositories.VersionRepository
	environmentRepo *repositories.EnvironmentRepository
	now             func() time.Time
}

// NewDeploymentService creates a new deployment service instance
func NewDeploymentService() *DeploymentService {
	return &DeploymentService{
		deploymentRepo:  repositories.NewDeploymentRepository(),
		applicationRepo: repositories.NewApplicationRepository(),
		versionRepo:     repositories.NewVersionRepository(),
		environmentRepo: repositories.NewEnvironmentRepository(),
		now:             time.Now,
	}
}

// RecordDeployment validates and appends a deployment fact. Deployments are
// never updated afterwards; a correction is a newer deployment.
func (s *DeploymentService) RecordDeployment(req dto.RecordDeploymentRequest) (dto.DeploymentResponse, error) {
	exists, err := s.applicationRepo.ExistsByID(req.ApplicationID)
	if err != nil {
		return dto.DeploymentResponse{}, err
	}
	if !exists {
		return dto.DeploymentResponse{}, utils.NotFoundError("application not found with id: %s", req.ApplicationID)
	}

	version, err := s.versionRepo.FindByID(req.VersionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.DeploymentResponse{}, utils.NotFoundError("version not found with id: %s", req.VersionID)
		}
		return dto.DeploymentResponse{}, err
	}

	envExists, err := s.environmentRepo.ExistsByID(req.EnvironmentID)
	if err != nil {
		return dto.DeploymentResponse{}, err
	}
	if !envExists {
		return dto.DeploymentResponse{}, utils.NotFoundError("environment not found with id: %s", req.EnvironmentID)
	}

	// Both ids can exist and still be incoherent; the schema alone cannot
	// express this.
	if version.ApplicationID != req.ApplicationID {
		return dto.DeploymentResponse{}, utils.BadRequestError("version does not belong to the specified application")
	}

	if req.DeploymentDate.After(s.now()) {
		return dto.DeploymentResponse{}, utils.BadRequestError("deployment date cannot be in the future")
	}

	deployment := models.Deployment{
		ApplicationID:  req.ApplicationID,
		VersionID:      req.VersionID,
		EnvironmentID:  req.EnvironmentID,
		DeploymentDate: req.DeploymentDate,
		DeployedBy:     req.DeployedBy,
		Notes:          req.Notes,
	}

	created, err := s.deploymentRepo.Create(deployment)
	if err != nil {
		return dto.DeploymentResponse{}, err
	}
	return s.FindByID(created.ID)
}

// FindByID retrieves a deployment
func (s *DeploymentService) FindByID(id string) (dto.DeploymentResponse, error) {
	deployment, err := s.deploymentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.DeploymentResponse{}, utils.NotFoundError("deployment not found with id: %s", id)
		}
		return dto.DeploymentResponse{}, err
	}
	return mapDeploymentResponse(deployment), nil
}

// Search retrieves a page of deployments with optional application,
// environment, version and inclusive date-range filters
func (s *DeploymentService) Search(applicationID, environmentID, versionID *string, dateFrom, dateTo *time.Time, req dto.PageRequest) (dto.PageResponse, error) {
	deployments, total, err := s.deploymentRepo.Search(applicationID, environmentID, versionID, dateFrom, dateTo, req)
	if err != nil {
		return dto.PageResponse{}, err
	}
	return dto.NewPageResponse(mapDeploymentResponses(deployments), req, total), nil
}

// FindByApplication retrieves a page of deployments for an application
func (s *DeploymentService) FindByApplication(applicationID string, req dto.PageRequest) (dto.PageResponse, error) {
	exists, err := s.applicationRepo.ExistsByID(applicationID)
	if err != nil {
		return dto.PageResponse{}, err
	}
	if !exists {
		return dto.PageResponse{}, utils.NotFoundError("application not found with id: %s", applicationID)
	}
	return s.Search(&applicationID, nil, nil, nil, nil, req)
}

// FindByEnvironment retrieves a page of deployments in an environment
func (s *DeploymentService) FindByEnvironment(environmentID string, req dto.PageRequest) (dto.PageResponse, error) {
	exists, err := s.environmentRepo.ExistsByID(environmentID)
	if err != nil {
		return dto.PageResponse{}, err
	}
	if !exists {
		return dto.PageResponse{}, utils.NotFoundError("environment not found with id: %s", environmentID)
	}
	return s.Search(nil, &environmentID, nil, nil, nil, req)
}

// GetCurrentState returns the latest deployment per (application,
// environment) pair, optionally narrowed to one application or environment
func (s *DeploymentService) GetCurrentState(applicationID, environmentID *string) ([]dto.CurrentDeploymentStateResponse, error) {
	deployments, err := s.deploymentRepo.FindCurrentState(applicationID, environmentID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CurrentDeploymentStateResponse, 0, len(deployments))
	for _, deployment := range deployments {
		responses = append(responses, mapCurrentStateResponse(deployment))
	}
	return responses, nil
}

func mapDeploymentResponses(deployments []models.Deployment) []dto.DeploymentResponse {
	responses := make([]dto.DeploymentResponse, 0, len(deployments))
	for _, deployment := range deployments {
		responses = append(responses, mapDeploymentResponse(deployment))
	}
	return responses
}
