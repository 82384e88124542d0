package httperror

import (
	"errors"
	"net/http"

	"github.com/tesoreria-paralelo/backend/internal/auth"
	"github.com/tesoreria-paralelo/backend/internal/models"
)

type Error struct {
	Message string `json:"error" example:"there is no student matching your query"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

// Status returns the appropriate HTTP status for an error
func Status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, models.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidOrExpiredToken):
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}
