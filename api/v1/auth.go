package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/appinventory/dto"
	"github.com/appinventory/services"
	"github.com/appinventory/utils"
)

var authService = services.NewAuthService()

// Register creates a user account and returns a token for it
func Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BadRequestError("invalid request body: %s", err.Error()))
		return
	}

	response, err := authService.Register(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondCreated(c, response)
}

// Login verifies credentials and returns a token
func Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BadRequestError("invalid request body: %s", err.Error()))
		return
	}

	response, err := authService.Login(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// GetCurrentUser returns the profile of the authenticated caller
func GetCurrentUser(c *gin.Context) {
	userID := c.GetString("userId")

	response, err := authService.GetCurrentUser(userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}
