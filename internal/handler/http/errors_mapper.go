package http

import (
	"errors"
	"net/http"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/images"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/service"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/store"
)

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []struct {
	target error
	status int
}{
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrNoUserInContext, http.StatusUnauthorized},
	{ErrTooManyRequests, http.StatusTooManyRequests},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrWrongCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrLoginAlreadyExists, http.StatusConflict},
	{service.ErrRecipeConflict, http.StatusConflict},
	{service.ErrUserNotFound, http.StatusNotFound},
	{service.ErrNotRecipeOwner, http.StatusForbidden},
	{service.ErrCannotFollowSelf, http.StatusBadRequest},
	{service.ErrImagesDisabled, http.StatusServiceUnavailable},
	{service.ErrRecipeNotSaved, http.StatusInternalServerError},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},

	{store.ErrRecipeNotFound, http.StatusNotFound},
	{store.ErrFilterNotFound, http.StatusNotFound},

	{images.ErrImageNotFound, http.StatusNotFound},
	{images.ErrUnsupportedImage, http.StatusUnsupportedMediaType},
}

// statusFromError maps err to an HTTP status and the message safe to send
// back. Unknown errors become 500 with a generic message.
func statusFromError(err error) (int, string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			if e.status >= http.StatusInternalServerError {
				return e.status, http.StatusText(e.status)
			}
			return e.status, e.target.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError logs err with the request logger and answers with the mapped
// status.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", status).Str("uri", r.RequestURI).Msg("request failed")

	http.Error(w, message, status)
}
