package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"meama/internal/imaging"
	"meama/internal/sheet"
	"meama/internal/store"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type createReviewPayload struct {
	Rating   float64 `json:"rating" validate:"required,min=1,max=5"`
	Review   string  `json:"review" validate:"max=1000"`
	Username string  `json:"username" validate:"omitempty,username"`
}

// CreateReview godoc
//
//	@Summary		Submit a review
//	@Description	Appends a review row to the spreadsheet and returns the optimistically updated profile. One review per barista per device.
//	@Tags			Reviews
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			baristaID	path		string	true	"Barista ID"
//	@Param			review		formData	string	true	"Review details (JSON string with rating, review, username)"
//	@Param			image		formData	file	false	"Optional photo, max 5MB"
//	@Success		201			{object}	store.Barista	"Updated profile"
//	@Failure		400			{object}	error			"Invalid payload or image"
//	@Failure		404			{object}	error			"Barista not found"
//	@Failure		409			{object}	error			"Already rated from this device"
//	@Failure		502			{object}	error			"Spreadsheet submission failed"
//	@Router			/baristas/{baristaID}/reviews [post]
func (app *application) createReviewHandler(w http.ResponseWriter, r *http.Request) {
	baristaID := chi.URLParam(r, "baristaID")

	barista, err := app.store.Baristas.GetByID(baristaID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	payload, imageData, err := app.parseReviewForm(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	rated, err := app.hasRatedLocally(baristaID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if rated {
		app.conflictResponse(w, r, errors.New("you have already rated this barista"))
		return
	}

	customerID, err := app.identity.CustomerID()
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	username, err := app.identity.ResolveUsername(payload.Username)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	var imageURL string
	if len(imageData) > 0 {
		sanitized, err := imaging.Sanitize(imageData)
		if err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
		imageURL, err = app.storeReviewImage(r, baristaID, sanitized)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
	}

	submission := sheet.SubmissionPayload{
		BaristaID:  baristaID,
		Rating:     payload.Rating,
		Review:     sheet.SanitizeField(payload.Review),
		CustomerID: customerID,
		Username:   sheet.SanitizeField(username),
		Branch:     sheet.SanitizeField(barista.Branch),
		Image:      imageURL,
	}

	if err := app.sheet.SubmitReview(r.Context(), submission); err != nil {
		app.badGatewayResponse(w, r, err)
		return
	}

	// Optimistic update: the snapshot gets the review immediately under a
	// temporary id, the next sheet refresh replaces it with the real row.
	review := store.Review{
		ID:         app.tempReviewID(),
		BaristaID:  baristaID,
		CustomerID: customerID,
		Rating:     payload.Rating,
		Text:       payload.Review,
		Reviewer:   username,
		Date:       time.Now().Format("2006-01-02"),
		ImageURL:   imageURL,
	}

	updated, err := app.store.Baristas.AddReview(baristaID, review)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.identity.MarkRated(baristaID); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, updated); err != nil {
		app.internalServerError(w, r, err)
		return
	}
}

// parseReviewForm reads the multipart body: a "review" JSON part plus an
// optional "image" file.
func (app *application) parseReviewForm(r *http.Request) (createReviewPayload, []byte, error) {
	var payload createReviewPayload

	// sanitizer re-checks the exact ceiling; the extra meg covers the JSON part
	if err := r.ParseMultipartForm(imaging.MaxBytes + 1<<20); err != nil {
		return payload, nil, fmt.Errorf("invalid multipart form: %w", err)
	}

	reviewJSON := r.FormValue("review")
	if reviewJSON == "" {
		return payload, nil, errors.New("missing review field")
	}
	if err := json.Unmarshal([]byte(reviewJSON), &payload); err != nil {
		return payload, nil, fmt.Errorf("invalid review JSON: %w", err)
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return payload, nil, nil
		}
		return payload, nil, err
	}
	defer file.Close()

	if header.Size > imaging.MaxBytes {
		return payload, nil, imaging.ErrTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(file, imaging.MaxBytes+1))
	if err != nil {
		return payload, nil, err
	}
	if len(data) > imaging.MaxBytes {
		return payload, nil, imaging.ErrTooLarge
	}

	return payload, data, nil
}

// tempReviewID mints an id that cannot collide with the sheet's R-prefixed
// rows, so stale optimistic entries are recognizable until the next refresh.
func (app *application) tempReviewID() string {
	id, err := app.tempIDs.Encode([]int{int(time.Now().UnixMilli() % (1 << 40)), rand.Intn(1 << 16)})
	if err != nil {
		return fmt.Sprintf("tmp_%d", time.Now().UnixNano())
	}
	return "tmp_" + id
}

// GetBaristaReviews godoc
//
//	@Summary		List a barista's reviews
//	@Description	Reviews newest first, with the count and rounded average.
//	@Tags			Reviews
//	@Produce		json
//	@Param			baristaID	path		string			true	"Barista ID"
//	@Success		200			{object}	map[string]any	"Reviews with stats"
//	@Failure		404			{object}	error			"Barista not found"
//	@Failure		500			{object}	error			"Internal server error"
//	@Router			/baristas/{baristaID}/reviews [get]
func (app *application) getBaristaReviewsHandler(w http.ResponseWriter, r *http.Request) {
	baristaID := chi.URLParam(r, "baristaID")

	barista, err := app.store.Baristas.GetByID(baristaID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	response := map[string]interface{}{
		"reviews":       barista.Reviews,
		"total_reviews": len(barista.Reviews),
		"average":       math.Round(barista.AverageRating*10) / 10,
	}

	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
		return
	}
}
