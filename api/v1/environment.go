package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/appinventory/dto"
	"github.com/appinventory/services"
	"github.com/appinventory/utils"
)

var environmentService = services.NewEnvironmentService()

// ListEnvironments returns a page of environments
func ListEnvironments(c *gin.Context) {
	req := dto.ParsePageRequest(c, "name", "asc")

	response, err := environmentService.FindAll(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// SearchEnvironments returns a page of environments matching a name query
func SearchEnvironments(c *gin.Context) {
	req := dto.ParsePageRequest(c, "name", "asc")

	response, err := environmentService.Search(searchQuery(c), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// GetEnvironment returns one environment by id
func GetEnvironment(c *gin.Context) {
	response, err := environmentService.FindByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// CreateEnvironment registers a new environment
func CreateEnvironment(c *gin.Context) {
	var req dto.CreateEnvironmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BadRequestError("invalid request body: %s", err.Error()))
		return
	}

	response, err := environmentService.Create(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondCreated(c, response)
}

// UpdateEnvironment applies a partial update to an environment
func UpdateEnvironment(c *gin.Context) {
	var req dto.UpdateEnvironmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BadRequestError("invalid request body: %s", err.Error()))
		return
	}

	response, err := environmentService.Update(c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// DeleteEnvironment removes an environment without recorded deployments
func DeleteEnvironment(c *gin.Context) {
	if err := environmentService.Delete(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondNoContent(c)
}
