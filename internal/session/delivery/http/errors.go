package http

import (
	"errors"
	"net/http"

	"listkeeper/internal/session"
	"listkeeper/pkg/backend"
	pkgErrors "listkeeper/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, session.ErrNotAuthenticated),
		errors.Is(err, session.ErrSessionExpired),
		errors.Is(err, backend.ErrSessionExpired):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, backend.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, backend.ErrTimeout):
		return pkgErrors.NewHTTPError(http.StatusGatewayTimeout, err.Error())
	case errors.Is(err, backend.ErrNetwork):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return err
	}
}
