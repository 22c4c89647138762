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

// VersionService handles business logic for application versions
type VersionService struct {
	versionRepo     *repositories.VersionRepository
	applicationRepo *repositories.ApplicationRepository
	now             func() time.Time
}

// NewVersionService creates a new version service instance
func NewVersionService() *VersionService {
	return &VersionService{
		versionRepo:     repositories.NewVersionRepository(),
		applicationRepo: repositories.NewApplicationRepository(),
		now:             time.Now,
	}
}

// Create registers a new version under an application. The version
// identifier must be unique per application and the release date must not be
// in the future.
func (s *VersionService) Create(applicationID string, req dto.CreateVersionRequest) (dto.VersionResponse, error) {
	exists, err := s.applicationRepo.ExistsByID(applicationID)
	if err != nil {
		return dto.VersionResponse{}, err
	}
	if !exists {
		return dto.VersionResponse{}, utils.NotFoundError("application not found with id: %s", applicationID)
	}

	taken, err := s.versionRepo.ExistsByApplicationAndIdentifier(applicationID, req.VersionIdentifier)
	if err != nil {
		return dto.VersionResponse{}, err
	}
	if taken {
		return dto.VersionResponse{}, utils.BadRequestError("version '%s' already exists for this application", req.VersionIdentifier)
	}

	if req.ReleaseDate == nil {
		return dto.VersionResponse{}, utils.BadRequestError("release date is required")
	}
	if err := s.validateReleaseDates(*req.ReleaseDate, req.EndOfLifeDate); err != nil {
		return dto.VersionResponse{}, err
	}

	version := models.Version{
		ApplicationID:     applicationID,
		VersionIdentifier: req.VersionIdentifier,
		ExternalReference: req.ExternalReference,
		ReleaseDate:       *req.ReleaseDate,
		EndOfLifeDate:     req.EndOfLifeDate,
	}

	created, err := s.versionRepo.Create(version)
	if err != nil {
		return dto.VersionResponse{}, err
	}
	return s.FindByID(created.ID)
}

// Update applies a partial update; nil request fields keep the stored value.
// Uniqueness is re-checked only when the identifier changes, and the
// not-in-future rule only when a release date is supplied.
func (s *VersionService) Update(id string, req dto.UpdateVersionRequest) (dto.VersionResponse, error) {
	version, err := s.versionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.VersionResponse{}, utils.NotFoundError("version not found with id: %s", id)
		}
		return dto.VersionResponse{}, err
	}

	if req.VersionIdentifier != nil && *req.VersionIdentifier != version.VersionIdentifier {
		taken, err := s.versionRepo.ExistsByApplicationAndIdentifier(version.ApplicationID, *req.VersionIdentifier)
		if err != nil {
			return dto.VersionResponse{}, err
		}
		if taken {
			return dto.VersionResponse{}, utils.BadRequestError("version '%s' already exists for this application", *req.VersionIdentifier)
		}
		version.VersionIdentifier = *req.VersionIdentifier
	}
	if req.ExternalReference != nil {
		version.ExternalReference = *req.ExternalReference
	}
	if req.ReleaseDate != nil {
		if req.ReleaseDate.After(models.DateOf(s.now()).Time) {
			return dto.VersionResponse{}, utils.BadRequestError("release date cannot be in the future")
		}
		version.ReleaseDate = *req.ReleaseDate
	}
	if req.EndOfLifeDate != nil {
		version.EndOfLifeDate = req.EndOfLifeDate
	}

	if version.EndOfLifeDate != nil && version.ReleaseDate.After(version.EndOfLifeDate.Time) {
		return dto.VersionResponse{}, utils.BadRequestError("end of life date must be after or equal to release date")
	}

	if err := s.versionRepo.Update(version); err != nil {
		return dto.VersionResponse{}, err
	}
	return s.FindByID(id)
}

// FindByID retrieves a version
func (s *VersionService) FindByID(id string) (dto.VersionResponse, error) {
	version, err := s.versionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.VersionResponse{}, utils.NotFoundError("version not found with id: %s", id)
		}
		return dto.VersionResponse{}, err
	}
	return mapVersionResponse(version), nil
}

// FindByApplication retrieves a page of versions for an application
func (s *VersionService) FindByApplication(applicationID string, req dto.PageRequest) (dto.PageResponse, error) {
	exists, err := s.applicationRepo.ExistsByID(applicationID)
	if err != nil {
		return dto.PageResponse{}, err
	}
	if !exists {
		return dto.PageResponse{}, utils.NotFoundError("application not found with id: %s", applicationID)
	}

	versions, total, err := s.versionRepo.FindByApplicationID(applicationID, req)
	if err != nil {
		return dto.PageResponse{}, err
	}

	responses := make([]dto.VersionResponse, 0, len(versions))
	for _, version := range versions {
		responses = append(responses, mapVersionResponse(version))
	}
	return dto.NewPageResponse(responses, req, total), nil
}

// FindLatestByApplication retrieves the version with the most recent release
// date. Returns NotFound when the application has no versions.
func (s *VersionService) FindLatestByApplication(applicationID string) (dto.VersionResponse, error) {
	exists, err := s.applicationRepo.ExistsByID(applicationID)
	if err != nil {
		return dto.VersionResponse{}, err
	}
	if !exists {
		return dto.VersionResponse{}, utils.NotFoundError("application not found with id: %s", applicationID)
	}

	version, err := s.versionRepo.FindLatestByApplicationID(applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.VersionResponse{}, utils.NotFoundError("application %s has no versions", applicationID)
		}
		return dto.VersionResponse{}, err
	}
	return mapVersionResponse(version), nil
}

// Delete removes a version. Blocked while deployments still reference it.
func (s *VersionService) Delete(id string) error {
	exists, err := s.versionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFoundError("version not found with id: %s", id)
		}
		return err
	}

	deployments, err := s.versionRepo.CountDeployments(exists.ID)
	if err != nil {
		return err
	}
	if deployments > 0 {
		return utils.BadRequestError("cannot delete version with %d recorded deployments", deployments)
	}

	return s.versionRepo.Delete(id)
}

func (s *VersionService) validateReleaseDates(release models.Date, endOfLife *models.Date) error {
	if endOfLife != nil && release.After(endOfLife.Time) {
		return utils.BadRequestError("end of life date must be after or equal to release date")
	}
	if release.After(models.DateOf(s.now()).Time) {
		return utils.BadRequestError("release date cannot be in the future")
	}
	return nil
}
