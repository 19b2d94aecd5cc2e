package main

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"meama/internal/auth"
	"meama/internal/identity"
	"meama/internal/ratelimiter"
	"meama/internal/sheet"
	"meama/internal/store"

	"github.com/speps/go-hashids/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newTestApplication(t *testing.T, sheetEndpoint string) *application {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("adminpass"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := config{
		addr: ":0",
		env:  "test",
		auth: authConfig{
			basic: basicConfig{user: "ops", pass: "secret"},
			admin: adminConfig{user: "admin", passwordHash: string(hash)},
			token: tokenConfig{
				secret:          "test-secret",
				refreshSecret:   "test-refresh-secret",
				accessTokenExp:  time.Hour,
				refreshTokenExp: time.Hour,
				iss:             "Meama",
			},
		},
		rateLimiter: ratelimiter.Config{Enabled: false},
	}

	hd := hashids.NewData()
	hd.Salt = "test"
	hd.MinLength = 8
	tempIDs, err := hashids.NewWithData(hd)
	require.NoError(t, err)

	storage := store.NewStorage()
	storage.Baristas.Replace(store.SampleBaristas(), store.SourceSample, "")

	return &application{
		config:   cfg,
		logger:   zap.NewNop().Sugar(),
		store:    storage,
		sheet:    sheet.NewClient(sheetEndpoint, time.Second),
		identity: identity.New(identity.NewMemoryKV()),
		authenticator: auth.NewJWTAuthenticator(
			cfg.auth.token.secret,
			cfg.auth.token.refreshSecret,
			cfg.auth.token.iss,
			cfg.auth.token.iss,
			cfg.auth.token.accessTokenExp,
			cfg.auth.token.refreshTokenExp,
		),
		rateLimiter: ratelimiter.NewFixedWindowLimiter(100, time.Minute),
		tempIDs:     tempIDs,
	}
}

func execRequest(app *application, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	app.mount().ServeHTTP(rr, req)
	return rr
}

func TestHealthCheck_RequiresBasicAuth(t *testing.T) {
	app := newTestApplication(t, "")

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	rr := execRequest(app, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	req.SetBasicAuth("ops", "secret")
	rr = execRequest(app, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestListBaristas(t *testing.T) {
	app := newTestApplication(t, "")

	req := httptest.NewRequest(http.MethodGet, "/v1/baristas?limit=3", nil)
	rr := execRequest(app, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Data baristaListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))

	assert.Len(t, body.Data.Baristas, 3)
	assert.Equal(t, 6, body.Data.Pagination.Total)
	assert.True(t, body.Data.Pagination.HasNext)
	assert.Equal(t, "sample", body.Data.Source)

	// default sort puts the unrated barista on the last page, not here
	for _, b := range body.Data.Baristas {
		assert.NotZero(t, b.ReviewCount)
	}
}

func TestGetBarista(t *testing.T) {
	app := newTestApplication(t, "")

	req := httptest.NewRequest(http.MethodGet, "/v1/baristas/B0000001", nil)
	rr := execRequest(app, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Data baristaProfileResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "B0000001", body.Data.ID)
	assert.False(t, body.Data.HasRated)

	rr = execRequest(app, httptest.NewRequest(http.MethodGet, "/v1/baristas/B9999999", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListLocations(t *testing.T) {
	app := newTestApplication(t, "")

	rr := execRequest(app, httptest.NewRequest(http.MethodGet, "/v1/baristas/locations", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Data []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Contains(t, body.Data, "Vake Branch")
}

func reviewRequest(t *testing.T, baristaID, reviewJSON string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("review", reviewJSON))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/baristas/"+baristaID+"/reviews", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestCreateReview(t *testing.T) {
	// a stand-in for the Apps Script deployment
	var submitted sheet.SubmissionPayload
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&submitted))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer upstream.Close()

	app := newTestApplication(t, upstream.URL)

	req := reviewRequest(t, "B0000006", `{"rating":5,"review":"Great service","username":"Mari"}`)
	rr := execRequest(app, req)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var body struct {
		Data store.Barista `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))

	require.Len(t, body.Data.Reviews, 1)
	assert.Equal(t, "Mari", body.Data.Reviews[0].Reviewer)
	assert.InDelta(t, 5.0, body.Data.AverageRating, 1e-9)
	// optimistic insert carries a temporary id, not a sheet row id
	assert.NotRegexp(t, `^R\d{7}$`, body.Data.Reviews[0].ID)

	assert.Equal(t, "B0000006", submitted.BaristaID)
	assert.Equal(t, "Mari", submitted.Username)
	assert.NotEmpty(t, submitted.CustomerID)

	// same device rating the same barista again is a conflict
	req = reviewRequest(t, "B0000006", `{"rating":4,"review":"again","username":"Mari"}`)
	rr = execRequest(app, req)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestCreateReview_Validation(t *testing.T) {
	app := newTestApplication(t, "")

	rr := execRequest(app, reviewRequest(t, "B0000001", `{"rating":9}`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = execRequest(app, reviewRequest(t, "B0000001", `{"rating":5,"username":"!!"}`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// display names allow letters, digits, underscores and dots only
	rr = execRequest(app, reviewRequest(t, "B0000001", `{"rating":5,"username":"john doe"}`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = execRequest(app, reviewRequest(t, "B0000001", `not json`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateReview_UpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"error","error":"sheet is full"}`))
	}))
	defer upstream.Close()

	app := newTestApplication(t, upstream.URL)

	rr := execRequest(app, reviewRequest(t, "B0000001", `{"rating":5,"review":"x","username":"Mari"}`))
	assert.Equal(t, http.StatusBadGateway, rr.Code)
	// the script's own message reaches the submitter
	assert.Contains(t, rr.Body.String(), "sheet is full")

	// nothing was recorded, the device may retry
	barista, err := app.store.Baristas.GetByID("B0000001")
	require.NoError(t, err)
	for _, rev := range barista.Reviews {
		assert.NotEqual(t, "x", rev.Text)
	}
}

func TestAdminTokenFlow(t *testing.T) {
	app := newTestApplication(t, "")

	login := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/token", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		return execRequest(app, req)
	}

	rr := login(`{"username":"admin","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = login(`{"username":"admin","password":"adminpass"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data["access_token"])

	// sheet refresh is gated on the admin token
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/sheet/refresh", nil)
	rr = execRequest(app, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req = httptest.NewRequest(http.MethodPost, "/v1/admin/sheet/refresh", nil)
	req.Header.Set("Authorization", "Bearer "+body.Data["access_token"])
	rr = execRequest(app, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}
