package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/appinventory/dto"
	"github.com/appinventory/services"
	"github.com/appinventory/utils"
)

var versionService = services.NewVersionService()

// ListApplicationVersions returns a page of an application's versions
func ListApplicationVersions(c *gin.Context) {
	req := dto.ParsePageRequest(c, "releaseDate", "desc")

	response, err := versionService.FindByApplication(c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// GetLatestApplicationVersion returns the most recently released version
func GetLatestApplicationVersion(c *gin.Context) {
	response, err := versionService.FindLatestByApplication(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// CreateApplicationVersion registers a version under an application
func CreateApplicationVersion(c *gin.Context) {
	var req dto.CreateVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BadRequestError("invalid request body: %s", err.Error()))
		return
	}

	response, err := versionService.Create(c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondCreated(c, response)
}

// GetVersion returns one version by id
func GetVersion(c *gin.Context) {
	response, err := versionService.FindByID(c.Param("versionId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// UpdateVersion applies a partial update to a version
func UpdateVersion(c *gin.Context) {
	var req dto.UpdateVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BadRequestError("invalid request body: %s", err.Error()))
		return
	}

	response, err := versionService.Update(c.Param("versionId"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// DeleteVersion removes a version without recorded deployments
func DeleteVersion(c *gin.Context) {
	if err := versionService.Delete(c.Param("versionId")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondNoContent(c)
}
