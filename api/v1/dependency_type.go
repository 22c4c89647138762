package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/appinventory/dto"
	"github.com/appinventory/services"
	"github.com/appinventory/utils"
)

var dependencyTypeService = services.NewDependencyTypeService()

// ListDependencyTypes lists all dependency types
func ListDependencyTypes(c *gin.Context) {
	response, err := dependencyTypeService.FindAll()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// GetDependencyType returns one dependency type by id
func GetDependencyType(c *gin.Context) {
	response, err := dependencyTypeService.FindByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// CreateDependencyType registers a custom dependency type
func CreateDependencyType(c *gin.Context) {
	var req dto.CreateDependencyTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BadRequestError("invalid request body: %s", err.Error()))
		return
	}

	response, err := dependencyTypeService.Create(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondCreated(c, response)
}

// UpdateDependencyType applies a partial update to a dependency type
func UpdateDependencyType(c *gin.Context) {
	var req dto.UpdateDependencyTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BadRequestError("invalid request body: %s", err.Error()))
		return
	}

	response, err := dependencyTypeService.Update(c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// DeleteDependencyType removes an unreferenced dependency type
func DeleteDependencyType(c *gin.Context) {
	if err := dependencyTypeService.Delete(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondNoContent(c)
}
