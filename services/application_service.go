package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/appinventory/dto"
	"github.com/appinventory/models"
	"github.com/appinventory/repositories"
	"github.com/appinventory/utils"
)

// ApplicationService handles business logic for applications
type ApplicationService struct {
	applicationRepo  *repositories.ApplicationRepository
	businessUnitRepo *repositories.BusinessUnitRepository
	contactRepo      *repositories.ContactRepository
}

// NewApplicationService creates a new application service instance
func NewApplicationService() *ApplicationService {
	return &ApplicationService{
		applicationRepo:  repositories.NewApplicationRepository(),
		businessUnitRepo: repositories.NewBusinessUnitRepository(),
		contactRepo:      repositories.NewContactRepository(),
	}
}

// Create registers a new application under an existing business unit
func (s *ApplicationService) Create(req dto.CreateApplicationRequest) (dto.ApplicationResponse, error) {
	if !req.Status.IsValid() {
		return dto.ApplicationResponse{}, utils.BadRequestError("unknown application status: %s", req.Status)
	}

	exists, err := s.businessUnitRepo.ExistsByID(req.BusinessUnitID)
	if err != nil {
		return dto.ApplicationResponse{}, err
	}
	if !exists {
		return dto.ApplicationResponse{}, utils.NotFoundError("business unit not found with id: %s", req.BusinessUnitID)
	}

	if err := validateLifecycleDates(req.EndOfSupportDate, req.EndOfLifeDate); err != nil {
		return dto.ApplicationResponse{}, err
	}

	application := models.Application{
		Name:             req.Name,
		Description:      req.Description,
		Status:           req.Status,
		BusinessUnitID:   req.BusinessUnitID,
		EndOfLifeDate:    req.EndOfLifeDate,
		EndOfSupportDate: req.EndOfSupportDate,
	}

	created, err := s.applicationRepo.Create(application)
	if err != nil {
		return dto.ApplicationResponse{}, err
	}
	return s.FindByID(created.ID)
}

// Update applies a partial update; nil request fields keep the stored value.
// The date-ordering invariant is re-validated on the merged result.
func (s *ApplicationService) Update(id string, req dto.UpdateApplicationRequest) (dto.ApplicationResponse, error) {
	application, err := s.applicationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ApplicationResponse{}, utils.NotFoundError("application not found with id: %s", id)
		}
		return dto.ApplicationResponse{}, err
	}

	if req.Name != nil {
		application.Name = *req.Name
	}
	if req.Description != nil {
		application.Description = *req.Description
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return dto.ApplicationResponse{}, utils.BadRequestError("unknown application status: %s", *req.Status)
		}
		application.Status = *req.Status
	}
	if req.BusinessUnitID != nil {
		exists, err := s.businessUnitRepo.ExistsByID(*req.BusinessUnitID)
		if err != nil {
			return dto.ApplicationResponse{}, err
		}
		if !exists {
			return dto.ApplicationResponse{}, utils.NotFoundError("business unit not found with id: %s", *req.BusinessUnitID)
		}
		application.BusinessUnitID = *req.BusinessUnitID
	}
	if req.EndOfLifeDate != nil {
		application.EndOfLifeDate = req.EndOfLifeDate
	}
	if req.EndOfSupportDate != nil {
		application.EndOfSupportDate = req.EndOfSupportDate
	}

	if err := validateLifecycleDates(application.EndOfSupportDate, application.EndOfLifeDate); err != nil {
		return dto.ApplicationResponse{}, err
	}

	if err := s.applicationRepo.Update(application); err != nil {
		return dto.ApplicationResponse{}, err
	}
	return s.FindByID(id)
}

// UpdateStatus sets the lifecycle status directly; no history is recorded
func (s *ApplicationService) UpdateStatus(id string, status models.ApplicationStatus) (dto.ApplicationResponse, error) {
	if !status.IsValid() {
		return dto.ApplicationResponse{}, utils.BadRequestError("unknown application status: %s", status)
	}

	application, err := s.applicationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ApplicationResponse{}, utils.NotFoundError("application not found with id: %s", id)
		}
		return dto.ApplicationResponse{}, err
	}

	application.Status = status
	if err := s.applicationRepo.Update(application); err != nil {
		return dto.ApplicationResponse{}, err
	}
	return s.FindByID(id)
}

// FindByID retrieves an application
func (s *ApplicationService) FindByID(id string) (dto.ApplicationResponse, error) {
	application, err := s.applicationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ApplicationResponse{}, utils.NotFoundError("application not found with id: %s", id)
		}
		return dto.ApplicationResponse{}, err
	}
	return mapApplicationResponse(application), nil
}

// Search retrieves a page of applications with optional status, business
// unit and name-substring filters. Passing no filters lists everything.
func (s *ApplicationService) Search(status *models.ApplicationStatus, businessUnitID *string, name string, req dto.PageRequest) (dto.PageResponse, error) {
	if status != nil && !status.IsValid() {
		return dto.PageResponse{}, utils.BadRequestError("unknown application status: %s", *status)
	}

	applications, total, err := s.applicationRepo.Search(status, businessUnitID, name, req)
	if err != nil {
		return dto.PageResponse{}, err
	}

	responses := make([]dto.ApplicationResponse, 0, len(applications))
	for _, application := range applications {
		responses = append(responses, mapApplicationResponse(application))
	}
	return dto.NewPageResponse(responses, req, total), nil
}

// Delete removes an application. Blocked while versions, deployments or
// dependencies still reference it.
func (s *ApplicationService) Delete(id string) error {
	exists, err := s.applicationRepo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return utils.NotFoundError("application not found with id: %s", id)
	}

	versions, err := s.applicationRepo.CountVersions(id)
	if err != nil {
		return err
	}
	if versions > 0 {
		return utils.BadRequestError("cannot delete application with %d existing versions", versions)
	}

	deployments, err := s.applicationRepo.CountDeployments(id)
	if err != nil {
		return err
	}
	if deployments > 0 {
		return utils.BadRequestError("cannot delete application with %d recorded deployments", deployments)
	}

	dependencies, err := s.applicationRepo.CountDependencies(id)
	if err != nil {
		return err
	}
	if dependencies > 0 {
		return utils.BadRequestError("cannot delete application with %d external dependencies", dependencies)
	}

	return s.applicationRepo.Delete(id)
}

// AddContact links an existing contact to an application
func (s *ApplicationService) AddContact(applicationID, contactID string) (dto.ApplicationContactResponse, error) {
	exists, err := s.applicationRepo.ExistsByID(applicationID)
	if err != nil {
		return dto.ApplicationContactResponse{}, err
	}
	if !exists {
		return dto.ApplicationContactResponse{}, utils.NotFoundError("application not found with id: %s", applicationID)
	}

	contact, err := s.contactRepo.FindByID(contactID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ApplicationContactResponse{}, utils.NotFoundError("contact not found with id: %s", contactID)
		}
		return dto.ApplicationContactResponse{}, err
	}

	// Re-linking an already linked contact keeps the existing pairing.
	if _, err := s.applicationRepo.FindContactJoin(applicationID, contactID); err == nil {
		return dto.ApplicationContactResponse{ApplicationID: applicationID, Contact: mapContactResponse(contact)}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.ApplicationContactResponse{}, err
	}

	join := models.ApplicationContact{ApplicationID: applicationID, ContactID: contactID}
	if _, err := s.applicationRepo.AddContact(join); err != nil {
		return dto.ApplicationContactResponse{}, err
	}

	return dto.ApplicationContactResponse{ApplicationID: applicationID, Contact: mapContactResponse(contact)}, nil
}

// RemoveContact unlinks a contact from an application. Removing an absent
// pairing succeeds without effect.
func (s *ApplicationService) RemoveContact(applicationID, contactID string) error {
	exists, err := s.applicationRepo.ExistsByID(applicationID)
	if err != nil {
		return err
	}
	if !exists {
		return utils.NotFoundError("application not found with id: %s", applicationID)
	}

	contactExists, err := s.contactRepo.ExistsByID(contactID)
	if err != nil {
		return err
	}
	if !contactExists {
		return utils.NotFoundError("contact not found with id: %s", contactID)
	}

	return s.applicationRepo.RemoveContact(applicationID, contactID)
}

// GetContacts lists the contacts linked to an application
func (s *ApplicationService) GetContacts(applicationID string) ([]dto.ApplicationContactResponse, error) {
	exists, err := s.applicationRepo.ExistsByID(applicationID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, utils.NotFoundError("application not found with id: %s", applicationID)
	}

	joins, err := s.applicationRepo.FindContacts(applicationID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ApplicationContactResponse, 0, len(joins))
	for _, join := range joins {
		responses = append(responses, dto.ApplicationContactResponse{
			ApplicationID: applicationID,
			Contact:       mapContactResponse(join.Contact),
		})
	}
	return responses, nil
}

func validateLifecycleDates(endOfSupport, endOfLife *models.Date) error {
	if endOfSupport != nil && endOfLife != nil && endOfSupport.After(endOfLife.Time) {
		return utils.BadRequestError("end of support date must be before or equal to end of life date")
	}
	return nil
}
