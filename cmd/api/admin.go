package main

import (
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type CreateTokenPayload struct {
	Username string `json:"username" validate:"required,max=255"`
	Password string `json:"password" validate:"required,min=3,max=72"`
}

// TokenResponse represents the structure of the tokens in the response. made for swagger doc success output
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Role         string `json:"role"`
}

// Envelope is a wrapper for API responses.made for swagger doc success output
type Envelope struct {
	Data TokenResponse `json:"data"`
}

// createTokenHandler godoc
//
//	@Summary		Login to get admin tokens
//	@Description	Exchanges the operator credentials for access and refresh tokens.
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateTokenPayload	true	"Admin credentials"
//	@Success		200		{object}	Envelope			"Token pair"
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Failure		500		{object}	error
//	@Router			/admin/token [post]
func (app *application) createTokenHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateTokenPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	admin := app.config.auth.admin
	if admin.user == "" || admin.passwordHash == "" {
		app.unauthorizedErrorResponse(w, r, errors.New("admin credentials not configured"))
		return
	}

	if payload.Username != admin.user {
		app.unauthorizedErrorResponse(w, r, errors.New("invalid credentials"))
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.passwordHash), []byte(payload.Password)); err != nil {
		app.unauthorizedErrorResponse(w, r, errors.New("invalid credentials"))
		return
	}

	accessToken, refreshToken, err := app.authenticator.GenerateTokens(admin.user, "admin")
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := map[string]string{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"role":          "admin",
	}

	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

type RefreshTokenPayload struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// refreshTokenHandler godoc
//
//	@Summary		Refresh admin tokens
//	@Description	Exchanges a valid refresh token for a new token pair.
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		RefreshTokenPayload	true	"Refresh token"
//	@Success		200		{object}	Envelope			"New token pair"
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Failure		500		{object}	error
//	@Router			/admin/refresh [post]
func (app *application) refreshTokenHandler(w http.ResponseWriter, r *http.Request) {
	var payload RefreshTokenPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	jwtToken, err := app.authenticator.ValidateRefreshToken(payload.RefreshToken)
	if err != nil {
		app.unauthorizedErrorResponse(w, r, err)
		return
	}

	claims, ok := jwtToken.Claims.(jwt.MapClaims)
	if !ok {
		app.unauthorizedErrorResponse(w, r, errors.New("invalid token claims"))
		return
	}

	subject, _ := claims["sub"].(string)
	if subject == "" || subject != app.config.auth.admin.user {
		app.unauthorizedErrorResponse(w, r, errors.New("unknown subject"))
		return
	}

	accessToken, refreshToken, err := app.authenticator.GenerateTokens(subject, "admin")
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := map[string]string{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"role":          "admin",
	}

	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// refreshSheetHandler godoc
//
//	@Summary		Refresh the directory now
//	@Description	Forces an immediate re-fetch of the spreadsheet instead of waiting for the background interval.
//	@Tags			admin
//	@Produce		json
//	@Success		200	{object}	map[string]any	"Snapshot stats after the refresh"
//	@Failure		401	{object}	error
//	@Failure		502	{object}	error	"Fetch failed, previous snapshot kept"
//	@Security		ApiKeyAuth
//	@Router			/admin/sheet/refresh [post]
func (app *application) refreshSheetHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.refreshDirectory(r.Context()); err != nil {
		app.badGatewayResponse(w, r, err)
		return
	}

	source, notice := app.store.Baristas.Status()
	stats := app.store.Baristas.Stats()

	response := map[string]any{
		"source":   source,
		"notice":   notice,
		"baristas": stats.Baristas,
		"reviews":  stats.Reviews,
	}

	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
