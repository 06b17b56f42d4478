package http

import (
	"net/http"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/store"
	"github.com/Zeafen/Recipe-Sharing-sub002/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (h *Handler) getRecipes(w http.ResponseWriter, r *http.Request) {
	query := models.RecipeQuery{
		Name:      r.URL.Query().Get("name"),
		CreatorID: r.URL.Query().Get("creator"),
	}

	recipes, err := h.services.RecipeService.GetRecipes(r.Context(), query)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, recipes, http.StatusOK)
}

func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	recipe, err := h.services.RecipeService.GetRecipe(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, recipe, http.StatusOK)
}

func (h *Handler) createRecipe(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var recipe models.Recipe
	if !decodeBody(w, r, &recipe) {
		return
	}

	created, err := h.services.RecipeService.CreateRecipe(r.Context(), userID, recipe)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/recipes/"+created.ID.Hex())
	writeJSON(w, r, created, http.StatusCreated)
}

// updateRecipe takes the recipe id from the path; an id in the body is
// ignored.
func (h *Handler) updateRecipe(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, store.ErrRecipeNotFound)
		return
	}

	var recipe models.Recipe
	if !decodeBody(w, r, &recipe) {
		return
	}
	recipe.ID = id

	updated, err := h.services.RecipeService.UpdateRecipe(r.Context(), userID, recipe)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, updated, http.StatusOK)
}

func (h *Handler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.RecipeService.DeleteRecipe(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
