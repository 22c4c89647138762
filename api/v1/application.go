package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/appinventory/dto"
	"github.com/appinventory/models"
	"github.com/appinventory/services"
	"github.com/appinventory/utils"
)

var applicationService = services.NewApplicationService()

// ListApplications returns a page of applications, filterable by status,
// business unit and name substring
func ListApplications(c *gin.Context) {
	req := dto.ParsePageRequest(c, "name", "asc")

	var status *models.ApplicationStatus
	if v := c.Query("status"); v != "" {
		s := models.ApplicationStatus(v)
		status = &s
	}
	var businessUnitID *string
	if v := c.Query("businessUnitId"); v != "" {
		businessUnitID = &v
	}

	response, err := applicationService.Search(status, businessUnitID, c.Query("name"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// GetApplication returns one application by id
func GetApplication(c *gin.Context) {
	response, err := applicationService.FindByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// CreateApplication registers a new application
func CreateApplication(c *gin.Context) {
	var req dto.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BadRequestError("invalid request body: %s", err.Error()))
		return
	}

	response, err := applicationService.Create(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondCreated(c, response)
}

// UpdateApplication applies a partial update to an application
func UpdateApplication(c *gin.Context) {
	var req dto.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BadRequestError("invalid request body: %s", err.Error()))
		return
	}

	response, err := applicationService.Update(c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// UpdateApplicationStatus sets the lifecycle status from the status query
// parameter
func UpdateApplicationStatus(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		utils.RespondError(c, utils.BadRequestError("status query parameter is required"))
		return
	}

	response, err := applicationService.UpdateStatus(c.Param("id"), models.ApplicationStatus(status))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// ListApplicationsByStatus returns a page of applications in one lifecycle
// status
func ListApplicationsByStatus(c *gin.Context) {
	req := dto.ParsePageRequest(c, "name", "asc")
	status := models.ApplicationStatus(c.Param("status"))

	response, err := applicationService.Search(&status, nil, "", req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// ListApplicationsByBusinessUnit returns a page of a business unit's
// applications
func ListApplicationsByBusinessUnit(c *gin.Context) {
	req := dto.ParsePageRequest(c, "name", "asc")
	businessUnitID := c.Param("businessUnitId")

	response, err := applicationService.Search(nil, &businessUnitID, "", req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// DeleteApplication removes an application without dependent records
func DeleteApplication(c *gin.Context) {
	if err := applicationService.Delete(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondNoContent(c)
}

// ListApplicationContacts lists the contacts linked to an application
func ListApplicationContacts(c *gin.Context) {
	response, err := applicationService.GetContacts(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// AddApplicationContact links an existing contact to an application
func AddApplicationContact(c *gin.Context) {
	response, err := applicationService.AddContact(c.Param("id"), c.Param("contactId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondCreated(c, response)
}

// RemoveApplicationContact unlinks a contact from an application
func RemoveApplicationContact(c *gin.Context) {
	if err := applicationService.RemoveContact(c.Param("id"), c.Param("contactId")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondNoContent(c)
}
