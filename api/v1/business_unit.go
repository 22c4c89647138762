package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/appinventory/dto"
	"github.com/appinventory/services"
	"github.com/appinventory/utils"
)

var businessUnitService = services.NewBusinessUnitService()

// ListBusinessUnits returns a page of business units
func ListBusinessUnits(c *gin.Context) {
	req := dto.ParsePageRequest(c, "name", "asc")

	response, err := businessUnitService.FindAll(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// SearchBusinessUnits returns a page of business units matching a name query
func SearchBusinessUnits(c *gin.Context) {
	req := dto.ParsePageRequest(c, "name", "asc")

	response, err := businessUnitService.Search(searchQuery(c), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// GetBusinessUnit returns one business unit by id
func GetBusinessUnit(c *gin.Context) {
	response, err := businessUnitService.FindByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// CreateBusinessUnit registers a new business unit
func CreateBusinessUnit(c *gin.Context) {
	var req dto.CreateBusinessUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BadRequestError("invalid request body: %s", err.Error()))
		return
	}

	response, err := businessUnitService.Create(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondCreated(c, response)
}

// UpdateBusinessUnit applies a partial update to a business unit
func UpdateBusinessUnit(c *gin.Context) {
	var req dto.UpdateBusinessUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BadRequestError("invalid request body: %s", err.Error()))
		return
	}

	response, err := businessUnitService.Update(c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// DeleteBusinessUnit removes a business unit without applications
func DeleteBusinessUnit(c *gin.Context) {
	if err := businessUnitService.Delete(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondNoContent(c)
}
