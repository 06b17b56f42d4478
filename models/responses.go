package models

// ValueResponse wraps a boolean answer such as "is this recipe a favorite".
type ValueResponse struct {
	Value bool `json:"value"`
}

// ImageResponse is returned after an image upload.
type ImageResponse struct {
	// Key is the object key inside the image bucket.
	Key string `json:"key"`

	// URL is the API path that redirects to a presigned download link.
	URL string `json:"url"`
}
