package main

import (
	"bytes"
	"fmt"
	"meama/internal/imaging"
	"net/http"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// storeReviewImage decides where a sanitized photo lives. With Cloudinary
// configured it is hosted and the sheet gets a URL; without it the JPEG
// travels inline as a data URL.
func (app *application) storeReviewImage(r *http.Request, baristaID string, img *imaging.Sanitized) (string, error) {
	if app.cld == nil {
		return img.DataURL(), nil
	}
	return app.uploadToCloudinaryWithID(r, img, fmt.Sprintf("review_%s_%s", baristaID, uuid.New().String()))
}

// uploadToCloudinaryWithID uploads a re-encoded review photo under a custom public ID.
func (app *application) uploadToCloudinaryWithID(r *http.Request, img *imaging.Sanitized, publicID string) (string, error) {
	resp, err := app.cld.Upload.Upload(
		r.Context(),
		bytes.NewReader(img.JPEG),
		uploader.UploadParams{
			Folder:    "reviews",
			PublicID:  publicID,
			Overwrite: api.Bool(false),
		},
	)

	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	return resp.SecureURL, nil
}
