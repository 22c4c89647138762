package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/appinventory/middleware"
)

// searchQuery accepts the query under either q or query.
func searchQuery(c *gin.Context) string {
	if v := c.Query("q"); v != "" {
		return v
	}
	return c.Query("query")
}

// RegisterRoutes registers all v1 API routes. Reads are public, mutations
// require authentication, and catalog mutations require the admin role.
func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", HealthCheck)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	authenticated := router.Group("")
	authenticated.Use(middleware.AuthMiddleware())

	admin := router.Group("")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())

	// Business units
	router.GET("/business-units", ListBusinessUnits)
	router.GET("/business-units/search", SearchBusinessUnits)
	router.GET("/business-units/:id", GetBusinessUnit)
	authenticated.POST("/business-units", CreateBusinessUnit)
	authenticated.PUT("/business-units/:id", UpdateBusinessUnit)
	authenticated.DELETE("/business-units/:id", DeleteBusinessUnit)

	// Applications
	router.GET("/applications", ListApplications)
	router.GET("/applications/by-status/:status", ListApplicationsByStatus)
	router.GET("/applications/by-business-unit/:businessUnitId", ListApplicationsByBusinessUnit)
	router.GET("/applications/:id", GetApplication)
	authenticated.POST("/applications", CreateApplication)
	authenticated.PUT("/applications/:id", UpdateApplication)
	authenticated.PATCH("/applications/:id/status", UpdateApplicationStatus)
	authenticated.DELETE("/applications/:id", DeleteApplication)

	// Application contacts
	router.GET("/applications/:id/contacts", ListApplicationContacts)
	authenticated.POST("/applications/:id/contacts/:contactId", AddApplicationContact)
	authenticated.DELETE("/applications/:id/contacts/:contactId", RemoveApplicationContact)

	// Versions, nested under their application
	router.GET("/applications/:id/versions", ListApplicationVersions)
	router.GET("/applications/:id/versions/latest", GetLatestApplicationVersion)
	router.GET("/applications/:id/versions/:versionId", GetVersion)
	authenticated.POST("/applications/:id/versions", CreateApplicationVersion)
	authenticated.PUT("/applications/:id/versions/:versionId", UpdateVersion)
	authenticated.DELETE("/applications/:id/versions/:versionId", DeleteVersion)

	// Environments
	router.GET("/environments", ListEnvironments)
	router.GET("/environments/search", SearchEnvironments)
	router.GET("/environments/:id", GetEnvironment)
	authenticated.POST("/environments", CreateEnvironment)
	authenticated.PUT("/environments/:id", UpdateEnvironment)
	authenticated.DELETE("/environments/:id", DeleteEnvironment)

	// Deployments
	router.GET("/deployments", SearchDeployments)
	router.GET("/deployments/current", GetCurrentDeploymentState)
	router.GET("/deployments/by-application/:applicationId", ListApplicationDeployments)
	router.GET("/deployments/by-environment/:environmentId", ListEnvironmentDeployments)
	router.GET("/deployments/:id", GetDeployment)
	authenticated.POST("/deployments", RecordDeployment)

	// External dependencies
	router.GET("/dependencies", SearchDependencies)
	router.GET("/dependencies/expiring", ListExpiringDependencies)
	router.GET("/dependencies/expired", ListExpiredDependencies)
	router.GET("/dependencies/by-application/:applicationId", ListApplicationDependencies)
	router.GET("/dependencies/:id", GetDependency)
	authenticated.POST("/dependencies/for-application/:applicationId", CreateApplicationDependency)
	authenticated.PUT("/dependencies/:id", UpdateDependency)
	authenticated.DELETE("/dependencies/:id", DeleteDependency)

	// Dependency type catalog, admin-managed
	router.GET("/dependency-types", ListDependencyTypes)
	router.GET("/dependency-types/:id", GetDependencyType)
	admin.POST("/dependency-types", CreateDependencyType)
	admin.PUT("/dependency-types/:id", UpdateDependencyType)
	admin.DELETE("/dependency-types/:id", DeleteDependencyType)

	// Contact role catalog, admin-managed
	router.GET("/contact-roles", ListContactRoles)
	router.GET("/contact-roles/:id", GetContactRole)
	admin.POST("/contact-roles", CreateContactRole)
	admin.PUT("/contact-roles/:id", UpdateContactRole)
	admin.DELETE("/contact-roles/:id", DeleteContactRole)

	// Persons
	router.GET("/persons", ListPersons)
	router.GET("/persons/search", SearchPersons)
	router.GET("/persons/:id", GetPerson)
	authenticated.POST("/persons", CreatePerson)
	authenticated.PUT("/persons/:id", UpdatePerson)
	authenticated.DELETE("/persons/:id", DeletePerson)

	// Contacts
	router.GET("/contacts", ListContacts)
	router.GET("/contacts/:id", GetContact)
	authenticated.POST("/contacts", CreateContact)
	authenticated.DELETE("/contacts/:id", DeleteContact)
	authenticated.POST("/contacts/:id/persons/:personId", AddContactPerson)
	authenticated.DELETE("/contacts/:id/persons/:personId", RemoveContactPerson)
	authenticated.PATCH("/contacts/:id/persons/:personId/primary", SetContactPrimaryPerson)
}
