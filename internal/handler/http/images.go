package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/service"
	"github.com/go-chi/chi/v5"
)

// maxImageUpload bounds uploads before they are decoded.
const maxImageUpload = 10 << 20

// uploadImage accepts either a multipart form with an "image" file field or
// the raw image bytes as the request body.
func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageUpload)

	data, err := readImage(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
			return
		}
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	image, err := h.services.ImageService.UploadImage(r.Context(), userID, data)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", image.URL)
	writeJSON(w, r, image, http.StatusCreated)
}

func readImage(r *http.Request) ([]byte, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return io.ReadAll(r.Body)
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}

// getImage redirects to a short-lived presigned link of the stored object.
func (h *Handler) getImage(w http.ResponseWriter, r *http.Request) {
	url, err := h.services.ImageService.GetImageURL(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}
