package http

import (
	"errors"
	"net/http"

	"travel-assistant/internal/conversation"
	pkgErrors "travel-assistant/pkg/errors"
)

var errInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")

// mapError translates use-case errors into HTTP errors. Anything unknown,
// storage failures included, becomes a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, conversation.ErrEmptyMessage):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, conversation.ErrEmptyMessage.Error())
	case errors.Is(err, conversation.ErrInvalidSessionID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, conversation.ErrInvalidSessionID.Error())
	case errors.Is(err, conversation.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, conversation.ErrSessionNotFound.Error())
	default:
		return err
	}
}

// mapBindError keeps the domain message for validation failures and hides
// decoder details otherwise.
func (h *handler) mapBindError(err error) error {
	if errors.Is(err, conversation.ErrEmptyMessage) {
		return h.mapError(err)
	}
	return errInvalidBody
}
