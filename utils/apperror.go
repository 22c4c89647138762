package utils

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrorKind classifies an AppError for HTTP status mapping.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindBadRequest
	KindConflict
	KindUnauthorized
	KindForbidden
)

// AppError is a typed business error raised by the service layer and
// translated to an HTTP status at the API boundary.
type AppError struct {
	Kind    ErrorKind `json:"-"`
	Message string    `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// NotFoundError reports a missing referenced entity.
func NotFoundError(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// BadRequestError reports a business-rule violation.
func BadRequestError(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindBadRequest, Message: fmt.Sprintf(format, args...)}
}

// ConflictError reports a uniqueness conflict detected by the store.
func ConflictError(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// UnauthorizedError reports failed authentication.
func UnauthorizedError(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

// ForbiddenError reports insufficient privileges.
func ForbiddenError(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

// IsNotFound reports whether err is a record-not-found error from either the
// store or the service layer.
func IsNotFound(err error) bool {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true
	}
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == KindNotFound
}

// IsUniqueViolation reports whether err is a duplicate-key error from the
// store. Pre-checks catch most duplicates; the constraint is the final
// arbiter under concurrent writers.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") || // postgres
		strings.Contains(msg, "UNIQUE constraint failed") // sqlite
}
