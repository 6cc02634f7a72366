package handlers

import (
	"errors"
	"net/http"

	"github.com/SscSPs/fxcore/internal/apperrors"
)

// statusForError maps the core's sentinel errors to HTTP statuses.
// Restricted currency is a policy rejection, not a server fault; an
// exhausted provider chain means the service cannot currently quote rates.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrRestrictedCurrency):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNoProviderAvailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
