package v1

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/appinventory/dto"
	"github.com/appinventory/services"
	"github.com/appinventory/utils"
)

var contactService = services.NewContactService()

// ListContacts lists all contacts
func ListContacts(c *gin.Context) {
	response, err := contactService.FindAll()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// GetContact returns one contact by id
func GetContact(c *gin.Context) {
	response, err := contactService.FindByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// CreateContact bundles persons under a contact role
func CreateContact(c *gin.Context) {
	var req dto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BadRequestError("invalid request body: %s", err.Error()))
		return
	}

	response, err := contactService.Create(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondCreated(c, response)
}

// AddContactPerson attaches a person to a contact. The isPrimary query
// parameter defaults to false.
func AddContactPerson(c *gin.Context) {
	isPrimary, err := strconv.ParseBool(c.DefaultQuery("isPrimary", "false"))
	if err != nil {
		utils.RespondError(c, utils.BadRequestError("invalid isPrimary: %s", c.Query("isPrimary")))
		return
	}

	response, err := contactService.AddPerson(c.Param("id"), c.Param("personId"), isPrimary)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondCreated(c, response)
}

// RemoveContactPerson detaches a person from a contact
func RemoveContactPerson(c *gin.Context) {
	if err := contactService.RemovePerson(c.Param("id"), c.Param("personId")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondNoContent(c)
}

// SetContactPrimaryPerson makes the given person the contact's sole primary
func SetContactPrimaryPerson(c *gin.Context) {
	response, err := contactService.SetPrimary(c.Param("id"), c.Param("personId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// DeleteContact removes a contact along with its links
func DeleteContact(c *gin.Context) {
	if err := contactService.Delete(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondNoContent(c)
}
