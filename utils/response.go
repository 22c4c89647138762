package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// RespondOK sends a 200 success envelope.
func RespondOK(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   data,
	})
}

// RespondCreated sends a 201 success envelope.
func RespondCreated(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   data,
	})
}

// RespondNoContent sends a 204 with an empty body.
func RespondNoContent(ctx *gin.Context) {
	ctx.Status(http.StatusNoContent)
}

// RespondError translates a service error into the matching HTTP status.
func RespondError(ctx *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		ctx.JSON(statusForKind(appErr.Kind), gin.H{
			"status":  "error",
			"message": appErr.Message,
		})
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "resource not found",
		})
		return
	}

	// A race past a uniqueness pre-check surfaces here as the store's
	// duplicate-key error.
	if IsUniqueViolation(err) {
		ctx.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "resource already exists",
		})
		return
	}

	log.Error().Err(err).Str("path", ctx.FullPath()).Msg("unhandled error")
	ctx.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": "internal server error",
	})
}

func statusForKind(kind ErrorKind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindBadRequest:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
