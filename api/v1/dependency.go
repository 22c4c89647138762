package v1

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/appinventory/dto"
	"github.com/appinventory/models"
	"github.com/appinventory/services"
	"github.com/appinventory/utils"
)

var dependencyService = services.NewExternalDependencyService()

// CreateApplicationDependency registers a dependency under an application
func CreateApplicationDependency(c *gin.Context) {
	var req dto.CreateExternalDependencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BadRequestError("invalid request body: %s", err.Error()))
		return
	}

	response, err := dependencyService.Create(c.Param("applicationId"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondCreated(c, response)
}

// ListApplicationDependencies returns a page of an application's dependencies
func ListApplicationDependencies(c *gin.Context) {
	req := dto.ParsePageRequest(c, "name", "asc")

	response, err := dependencyService.FindByApplication(c.Param("applicationId"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// SearchDependencies returns a page of dependencies filtered by application,
// type and derived status
func SearchDependencies(c *gin.Context) {
	req := dto.ParsePageRequest(c, "name", "asc")

	var applicationID, dependencyTypeID *string
	if v := c.Query("applicationId"); v != "" {
		applicationID = &v
	}
	if v := c.Query("dependencyTypeId"); v != "" {
		dependencyTypeID = &v
	}

	response, err := dependencyService.Search(applicationID, dependencyTypeID, c.Query("status"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// GetDependency returns one dependency by id
func GetDependency(c *gin.Context) {
	response, err := dependencyService.FindByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// UpdateDependency applies a partial update to a dependency
func UpdateDependency(c *gin.Context) {
	var req dto.UpdateExternalDependencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BadRequestError("invalid request body: %s", err.Error()))
		return
	}

	response, err := dependencyService.Update(c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// DeleteDependency removes a dependency
func DeleteDependency(c *gin.Context) {
	if err := dependencyService.Delete(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondNoContent(c)
}

// ListExpiringDependencies lists dependencies whose validity ends within the
// given number of days
func ListExpiringDependencies(c *gin.Context) {
	days := models.ExpiringWindowDays
	if v := c.Query("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			utils.RespondError(c, utils.BadRequestError("invalid days: %s", v))
			return
		}
		days = parsed
	}

	response, err := dependencyService.FindExpiring(days)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// ListExpiredDependencies lists dependencies whose validity has ended
func ListExpiredDependencies(c *gin.Context) {
	response, err := dependencyService.FindExpired()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}
