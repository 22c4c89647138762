package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/appinventory/database"
)

// HealthCheck reports service liveness and database connectivity
func HealthCheck(c *gin.Context) {
	status := "up"
	dbStatus := "up"

	if sqlDB, err := database.DB.DB(); err != nil || sqlDB.Ping() != nil {
		status = "degraded"
		dbStatus = "down"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    status,
		"database":  dbStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
