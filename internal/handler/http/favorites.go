package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) getFavorites(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	records, err := h.services.FavoritesService.GetFavorites(r.Context(), userID, r.URL.Query().Get("name"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, records, http.StatusOK)
}

func (h *Handler) isFavorite(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	favorite, err := h.services.FavoritesService.IsFavorite(r.Context(), userID, chi.URLParam(r, "recipeID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeValue(w, r, favorite)
}

func (h *Handler) addToFavorites(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	added, err := h.services.FavoritesService.AddToFavorites(r.Context(), userID, chi.URLParam(r, "recipeID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeAdded(w, added)
}

func (h *Handler) removeFromFavorites(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	removed, err := h.services.FavoritesService.RemoveFromFavorites(r.Context(), userID, chi.URLParam(r, "recipeID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeRemoved(w, removed)
}

func (h *Handler) removeFavoriteRecord(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	removed, err := h.services.FavoritesService.RemoveFavoriteRecord(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeRemoved(w, removed)
}
