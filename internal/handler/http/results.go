package http

import (
	"fmt"
	"net/http"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/utils"
	"github.com/Zeafen/Recipe-Sharing-sub002/models"
)

// writeJSON logs the rare case where the client went away mid-write.
func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// decodeBody decodes the JSON body into dst and answers 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := utils.DecodeJSON(r, dst); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return false
	}
	return true
}

// writeAdded answers 201 when a relation was created and 409 when it
// already existed or was refused.
func writeAdded(w http.ResponseWriter, ok bool) {
	if ok {
		w.WriteHeader(http.StatusCreated)
		return
	}
	http.Error(w, http.StatusText(http.StatusConflict), http.StatusConflict)
}

// writeRemoved answers 204 when something was removed and 404 otherwise.
func writeRemoved(w http.ResponseWriter, ok bool) {
	if ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}

func writeValue(w http.ResponseWriter, r *http.Request, value bool) {
	writeJSON(w, r, models.ValueResponse{Value: value}, http.StatusOK)
}
