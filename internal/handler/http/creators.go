package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) getCreators(w http.ResponseWriter, r *http.Request) {
	creators, err := h.services.UserService.GetCreators(r.Context(), r.URL.Query().Get("nickname"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, creators, http.StatusOK)
}

func (h *Handler) getCreator(w http.ResponseWriter, r *http.Request) {
	creator, err := h.services.UserService.GetCreator(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, creator, http.StatusOK)
}

func (h *Handler) getCreatorFollowers(w http.ResponseWriter, r *http.Request) {
	followers, err := h.services.FollowersService.GetFollowers(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, followers, http.StatusOK)
}
