package v1

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/appinventory/dto"
	"github.com/appinventory/services"
	"github.com/appinventory/utils"
)

var deploymentService = services.NewDeploymentService()

// RecordDeployment records a deployment as a historical fact
func RecordDeployment(c *gin.Context) {
	var req dto.RecordDeploymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BadRequestError("invalid request body: %s", err.Error()))
		return
	}

	response, err := deploymentService.RecordDeployment(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondCreated(c, response)
}

// GetDeployment returns one deployment by id
func GetDeployment(c *gin.Context) {
	response, err := deploymentService.FindByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// SearchDeployments returns a page of deployments filtered by application,
// environment, version and date range
func SearchDeployments(c *gin.Context) {
	req := dto.ParsePageRequest(c, "deploymentDate", "desc")

	var applicationID, environmentID, versionID *string
	if v := c.Query("applicationId"); v != "" {
		applicationID = &v
	}
	if v := c.Query("environmentId"); v != "" {
		environmentID = &v
	}
	if v := c.Query("versionId"); v != "" {
		versionID = &v
	}

	var dateFrom, dateTo *time.Time
	if v := c.Query("dateFrom"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			utils.RespondError(c, utils.BadRequestError("invalid dateFrom: %s", v))
			return
		}
		dateFrom = &t
	}
	if v := c.Query("dateTo"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			utils.RespondError(c, utils.BadRequestError("invalid dateTo: %s", v))
			return
		}
		dateTo = &t
	}

	response, err := deploymentService.Search(applicationID, environmentID, versionID, dateFrom, dateTo, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// ListApplicationDeployments returns a page of an application's deployments
func ListApplicationDeployments(c *gin.Context) {
	req := dto.ParsePageRequest(c, "deploymentDate", "desc")

	response, err := deploymentService.FindByApplication(c.Param("applicationId"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// ListEnvironmentDeployments returns a page of an environment's deployments
func ListEnvironmentDeployments(c *gin.Context) {
	req := dto.ParsePageRequest(c, "deploymentDate", "desc")

	response, err := deploymentService.FindByEnvironment(c.Param("environmentId"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}

// GetCurrentDeploymentState returns the latest deployment per application and
// environment pair, optionally narrowed to one application or environment
func GetCurrentDeploymentState(c *gin.Context) {
	var applicationID, environmentID *string
	if v := c.Query("applicationId"); v != "" {
		applicationID = &v
	}
	if v := c.Query("environmentId"); v != "" {
		environmentID = &v
	}

	response, err := deploymentService.GetCurrentState(applicationID, environmentID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, response)
}
