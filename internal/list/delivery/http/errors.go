package http

import (
	"errors"

	"listkeeper/internal/list"
	"listkeeper/pkg/backend"
	pkgErrors "listkeeper/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// Validation errors fall through unchanged; the response envelope renders
// them as 400 with the sentinel's message.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, list.ErrListNotFound),
		errors.Is(err, list.ErrItemNotFound),
		errors.Is(err, list.ErrShareLinkNotFound),
		errors.Is(err, list.ErrTemplateNotFound):
		return pkgErrors.NewHTTPError(404, err.Error())

	case errors.Is(err, list.ErrDuplicateTitle),
		errors.Is(err, list.ErrDuplicateTag),
		errors.Is(err, list.ErrDuplicateCollaborator):
		return pkgErrors.NewHTTPError(409, err.Error())

	case errors.Is(err, list.ErrListLimitReached),
		errors.Is(err, list.ErrItemLimitReached),
		errors.Is(err, list.ErrListTypeNotAllowed),
		errors.Is(err, list.ErrSharingNotAllowed),
		errors.Is(err, list.ErrImportNotAllowed),
		errors.Is(err, list.ErrGuestsNotAllowed),
		errors.Is(err, list.ErrTeamsNotAllowed),
		errors.Is(err, list.ErrTemplatesNotAllowed):
		return pkgErrors.NewHTTPError(403, err.Error())

	case errors.Is(err, backend.ErrSessionExpired):
		return pkgErrors.NewHTTPError(401, "session expired")
	case errors.Is(err, backend.ErrTimeout):
		return pkgErrors.NewHTTPError(504, "backend timed out")
	case errors.Is(err, backend.ErrNetwork):
		return pkgErrors.NewHTTPError(502, "backend unreachable")
	}
	return err
}
