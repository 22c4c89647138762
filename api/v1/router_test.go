package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/appinventory/database"
	"github.com/appinventory/models"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(database.Models...))
	database.DB = db

	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func registerUser(t *testing.T, router *gin.Engine, username string) string {
	t.Helper()
	body := `{"username":"` + username + `","email":"` + username + `@example.com","password":"s3cret-pw"}`
	recorder := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", body, "")
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data.Token)
	return envelope.Data.Token
}

func TestRouteAuthorization(t *testing.T) {
	router := setupRouter(t)

	t.Run("health is open", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodGet, "/api/v1/health", "", "")
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("reads are open", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodGet, "/api/v1/business-units", "", "")
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("mutations need a token", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPost, "/api/v1/business-units", `{"name":"Payments"}`, "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	token := registerUser(t, router, "alice")

	t.Run("authenticated mutation succeeds", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPost, "/api/v1/business-units", `{"name":"Payments"}`, token)
		assert.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	})

	t.Run("catalog mutation needs admin", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPost, "/api/v1/dependency-types", `{"typeName":"License"}`, token)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("admin can manage catalogs", func(t *testing.T) {
		require.NoError(t, database.DB.Model(&models.User{}).
			Where("username = ?", "alice").
			Update("role", models.RoleAdmin).Error)

		// The old token still carries USER; a fresh login picks up the role.
		recorder := doJSON(t, router, http.MethodPost, "/api/v1/auth/login",
			`{"username":"alice","password":"s3cret-pw"}`, "")
		require.Equal(t, http.StatusOK, recorder.Code)
		var envelope struct {
			Data struct {
				Token string `json:"token"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))

		recorder = doJSON(t, router, http.MethodPost, "/api/v1/dependency-types",
			`{"typeName":"License"}`, envelope.Data.Token)
		assert.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	})

	t.Run("me returns the caller", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodGet, "/api/v1/auth/me", "", token)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"alice"`)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodGet, "/api/v1/auth/me", "", "garbage")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestErrorEnvelope(t *testing.T) {
	router := setupRouter(t)

	recorder := doJSON(t, router, http.MethodGet, "/api/v1/business-units/missing", "", "")
	require.Equal(t, http.StatusNotFound, recorder.Code)

	var envelope struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "error", envelope.Status)
	assert.Contains(t, envelope.Message, "business unit not found")
}
