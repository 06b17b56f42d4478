package http

import (
	"net/http"
	"net/url"

	"github.com/Zeafen/Recipe-Sharing-sub002/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.services.FiltersService.GetCategories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, categories, http.StatusOK)
}

func (h *Handler) getCategoryFilters(w http.ResponseWriter, r *http.Request) {
	filters, err := h.services.FiltersService.GetFiltersByCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, filters, http.StatusOK)
}

func (h *Handler) getCategorizedFilters(w http.ResponseWriter, r *http.Request) {
	filters, err := h.services.FiltersService.GetCategorizedFilters(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, filters, http.StatusOK)
}

func (h *Handler) getRecipeFilters(w http.ResponseWriter, r *http.Request) {
	filters, err := h.services.FiltersService.GetRecipeFilters(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, filters, http.StatusOK)
}

func (h *Handler) attachFilter(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.AttachFilterRequest
	if !decodeBody(w, r, &request) {
		return
	}

	attached, err := h.services.FiltersService.AttachFilter(r.Context(), userID, chi.URLParam(r, "id"), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeAdded(w, attached)
}

func (h *Handler) detachFilter(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	detached, err := h.services.FiltersService.DetachFilter(r.Context(), userID, chi.URLParam(r, "id"), chi.URLParam(r, "filterID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeRemoved(w, detached)
}

func (h *Handler) detachFilterByValue(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	value := chi.URLParam(r, "value")
	if unescaped, err := url.PathUnescape(value); err == nil {
		value = unescaped
	}

	detached, err := h.services.FiltersService.DetachFilterByValue(r.Context(), userID, chi.URLParam(r, "id"), value)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeRemoved(w, detached)
}

func (h *Handler) clearRecipeFilters(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	cleared, err := h.services.FiltersService.ClearRecipeFilters(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeRemoved(w, cleared)
}
