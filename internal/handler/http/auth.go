package http

import (
	"net/http"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/Zeafen/Recipe-Sharing-sub002/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var credentials models.Credentials
	if !decodeBody(w, r, &credentials) {
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.issueToken(w, r, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var credentials models.Credentials
	if !decodeBody(w, r, &credentials) {
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("id", foundUser.ID.Hex()).Msg("user successfully logged in")

	h.issueToken(w, r, foundUser, http.StatusOK)
}

// issueToken answers with the user in the body and a fresh bearer token in
// the Authorization header.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	writeJSON(w, r, user, status)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), userID.Hex())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.ProfileUpdate
	if !decodeBody(w, r, &update) {
		return
	}

	user, err := h.services.UserService.UpdateProfile(r.Context(), userID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, user, http.StatusOK)
}
