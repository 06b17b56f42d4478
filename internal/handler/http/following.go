package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) getFollowing(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	records, err := h.services.FollowersService.GetFollowing(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, records, http.StatusOK)
}

func (h *Handler) isFollowing(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	following, err := h.services.FollowersService.IsFollowing(r.Context(), userID, chi.URLParam(r, "creatorID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeValue(w, r, following)
}

func (h *Handler) follow(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	followed, err := h.services.FollowersService.Follow(r.Context(), userID, chi.URLParam(r, "creatorID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeAdded(w, followed)
}

func (h *Handler) unfollow(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	removed, err := h.services.FollowersService.Unfollow(r.Context(), userID, chi.URLParam(r, "creatorID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeRemoved(w, removed)
}

func (h *Handler) removeFollowRecord(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	removed, err := h.services.FollowersService.RemoveFollowRecord(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeRemoved(w, removed)
}
