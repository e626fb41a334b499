// Package errors provides error handling and HTTP status code mapping.
package errors

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/remiblancher/qoid/internal/api/dto"
	"github.com/remiblancher/qoid/pkg/oid"
	"github.com/remiblancher/qoid/pkg/oiddb"
)

// Error codes for API responses.
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInvalidOID     = "INVALID_OID"
	CodeNotFound       = "NOT_FOUND"
	CodeTableNotFound  = "TABLE_NOT_FOUND"
	CodeInternal       = "INTERNAL_ERROR"
)

// MapError maps an internal error to an HTTP status code and APIError.
func MapError(err error) (int, *dto.APIError) {
	if err == nil {
		return http.StatusOK, nil
	}

	var parseErr *oid.ParseError
	switch {
	case errors.As(err, &parseErr):
		return http.StatusBadRequest, &dto.APIError{
			Code:    CodeInvalidOID,
			Message: parseErr.Error(),
			Details: map[string]string{
				"input":    parseErr.Input,
				"position": strconv.Itoa(parseErr.Pos),
			},
		}
	case errors.Is(err, oid.ErrInvalid):
		return http.StatusBadRequest, &dto.APIError{
			Code:    CodeInvalidOID,
			Message: err.Error(),
		}
	case errors.Is(err, oiddb.ErrUnknownTable):
		return http.StatusNotFound, &dto.APIError{
			Code:    CodeTableNotFound,
			Message: err.Error(),
		}
	case errors.Is(err, oiddb.ErrNotFound):
		return http.StatusNotFound, &dto.APIError{
			Code:    CodeNotFound,
			Message: err.Error(),
		}
	}

	// Default internal error
	return http.StatusInternalServerError, &dto.APIError{
		Code:    CodeInternal,
		Message: "An internal error occurred",
	}
}

// NewBadRequest creates a bad request error.
func NewBadRequest(message string) *dto.APIError {
	return &dto.APIError{
		Code:    CodeInvalidRequest,
		Message: message,
	}
}

// NewNotFound creates a not found error.
func NewNotFound(resource, id string) *dto.APIError {
	return &dto.APIError{
		Code:    CodeNotFound,
		Message: resource + " not found",
		Details: map[string]string{"id": id},
	}
}
