package main

import (
	"errors"
	"math"
	"meama/internal/params"
	"meama/internal/store"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// baristaSummary is the directory card: profile fields plus computed rating
// info, no review bodies.
type baristaSummary struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Photo         string  `json:"photo"`
	Branch        string  `json:"branch"`
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
}

type baristaListResponse struct {
	Baristas   []baristaSummary  `json:"baristas"`
	Pagination params.Pagination `json:"pagination"`
	Source     string            `json:"source"`
	Notice     string            `json:"notice,omitempty"`
}

// ListBaristas godoc
//
//	@Summary		List baristas
//	@Description	Browse the directory with optional search, location filter, sorting and pagination.
//	@Tags			Baristas
//	@Produce		json
//	@Param			search		query		string	false	"Name search, Latin input matches transliterated Georgian names"
//	@Param			location	query		string	false	"Branch filter, omit or 'All' for every branch"
//	@Param			sort		query		string	false	"bestAverageRating | mostReviews | branchAZ | nameAZ"
//	@Param			page		query		int		false	"Page number"
//	@Param			limit		query		int		false	"Page size, max 48"
//	@Success		200			{object}	baristaListResponse	"Directory page"
//	@Failure		500			{object}	error				"Internal server error"
//	@Router			/baristas [get]
func (app *application) listBaristasHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := params.ParsePagination(q)

	baristas := app.store.Baristas.List(store.ListQuery{
		Search:   q.Get("search"),
		Location: q.Get("location"),
		Sort:     store.ParseSortOption(q.Get("sort")),
	})

	p.ComputeMeta(len(baristas))

	start := p.Offset
	if start > len(baristas) {
		start = len(baristas)
	}
	end := start + p.Limit
	if end > len(baristas) {
		end = len(baristas)
	}

	summaries := make([]baristaSummary, 0, end-start)
	for _, b := range baristas[start:end] {
		summaries = append(summaries, baristaSummary{
			ID:            b.ID,
			Name:          b.Name,
			Photo:         b.Photo,
			Branch:        b.Branch,
			AverageRating: math.Round(b.AverageRating*10) / 10,
			ReviewCount:   len(b.Reviews),
		})
	}

	source, notice := app.store.Baristas.Status()
	resp := baristaListResponse{
		Baristas:   summaries,
		Pagination: p,
		Source:     string(source),
		Notice:     notice,
	}

	if err := app.jsonResponse(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
		return
	}
}

type baristaProfileResponse struct {
	store.Barista
	HasRated bool `json:"has_rated"`
}

// GetBarista godoc
//
//	@Summary		Get a barista profile
//	@Description	Full profile with reviews, newest first, plus whether this device already rated them.
//	@Tags			Baristas
//	@Produce		json
//	@Param			baristaID	path		string					true	"Barista ID"
//	@Success		200			{object}	baristaProfileResponse	"Profile with reviews"
//	@Failure		404			{object}	error					"Barista not found"
//	@Failure		500			{object}	error					"Internal server error"
//	@Router			/baristas/{baristaID} [get]
func (app *application) getBaristaHandler(w http.ResponseWriter, r *http.Request) {
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

	hasRated, err := app.hasRatedLocally(baristaID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	resp := baristaProfileResponse{
		Barista:  *barista,
		HasRated: hasRated,
	}

	if err := app.jsonResponse(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
		return
	}
}

// ListLocations godoc
//
//	@Summary		List branch locations
//	@Description	Distinct branch names across the directory, sorted.
//	@Tags			Baristas
//	@Produce		json
//	@Success		200	{array}		string	"Branch names"
//	@Failure		500	{object}	error	"Internal server error"
//	@Router			/baristas/locations [get]
func (app *application) listLocationsHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.jsonResponse(w, http.StatusOK, app.store.Baristas.Locations()); err != nil {
		app.internalServerError(w, r, err)
		return
	}
}

// hasRatedLocally combines the device flag with the snapshot: a review from
// this customer already on the sheet backfills the local flag.
func (app *application) hasRatedLocally(baristaID string) (bool, error) {
	rated, err := app.identity.HasRated(baristaID)
	if err != nil || rated {
		return rated, err
	}

	customerID, err := app.identity.CustomerID()
	if err != nil {
		return false, err
	}

	has, err := app.store.Baristas.HasCustomerReview(baristaID, customerID)
	if err != nil || !has {
		return false, nil
	}

	if err := app.identity.MarkRated(baristaID); err != nil {
		return false, err
	}
	return true, nil
}
