package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/appinventory/dto"
	"github.com/appinventory/services"
	"github.com/appinventory/utils"
)

var contactRoleService = services.NewContactRoleService()

// ListContactRoles lists all contact roles
func ListContactRoles(c *gin.Context) {
	response, err := contactRoleService.FindAll()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// GetContactRole returns one contact role by id
func GetContactRole(c *gin.Context) {
	response, err := contactRoleService.FindByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// CreateContactRole registers a new contact role
func CreateContactRole(c *gin.Context) {
	var req dto.CreateContactRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BadRequestError("invalid request body: %s", err.Error()))
		return
	}

	response, err := contactRoleService.Create(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondCreated(c, response)
}

// UpdateContactRole applies a partial update to a contact role
func UpdateContactRole(c *gin.Context) {
	var req dto.UpdateContactRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BadRequestError("invalid request body: %s", err.Error()))
		return
	}

	response, err := contactRoleService.Update(c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// DeleteContactRole removes an unreferenced contact role
func DeleteContactRole(c *gin.Context) {
	if err := contactRoleService.Delete(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondNoContent(c)
}
