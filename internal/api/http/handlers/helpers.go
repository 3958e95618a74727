package handlers

import (
	"errors"

	"github.com/spec-kit/inventory-service/internal/auth"
	"github.com/spec-kit/inventory-service/pkg/util"
)

// mapAuthError collapses all token and session failures into one generic
// unauthenticated outcome so callers cannot tell which check failed.
func mapAuthError(err error) error {
	switch {
	case errors.Is(err, auth.ErrNoToken),
		errors.Is(err, auth.ErrTokenInvalid),
		errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, auth.ErrAudienceMismatch),
		errors.Is(err, auth.ErrSessionRevoked):
		return util.NewUnauthorized("unauthenticated")
	}
	return util.MapError(err)
}
