package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"movieweekly/proj/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminToken(t *testing.T) string {
	t.Helper()
	return signTestToken(t, testAppSecret, jwt.MapClaims{
		"uid":  "admin-1",
		"name": "admin",
		"role": models.RoleAdmin,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
}

func userToken(t *testing.T, uid string) string {
	t.Helper()
	return signTestToken(t, testAppSecret, jwt.MapClaims{
		"uid": uid,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
}

func doRequest(t *testing.T, handler http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func decodeResponse(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	return decoded
}

func TestHealthcheck(t *testing.T) {
	app := NewTestApplication(t)
	recorder := doRequest(t, app.routes(), http.MethodGet, "/api/v1/healthcheck", "", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	decoded := decodeResponse(t, recorder)
	assert.Equal(t, "available", decoded["status"])
}

func TestMovieAndAwardLifecycle(t *testing.T) {
	app := NewTestApplication(t)
	router := app.routes()
	admin := adminToken(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/movies", admin,
		`{"imdbId": "tt9999991", "title": "Test Movie 1", "runtime": "111 min", "genre": "Drama"}`)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	recorder = doRequest(t, router, http.MethodPost, "/api/v1/awards", admin,
		`{"movieId": 9999991, "awardDate": "170512", "category": "M", "review": "Movie of the week", "displayOrder": 1}`)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	t.Run("view awards joins the pair", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodGet, "/api/v1/view-awards", "", "")
		require.Equal(t, http.StatusOK, recorder.Code)
		decoded := decodeResponse(t, recorder)
		rows := decoded["data"].(map[string]any)["viewAwards"].([]any)
		require.Len(t, rows, 1)
		row := rows[0].(map[string]any)
		assert.Equal(t, "Test Movie 1", row["title"])
		assert.Equal(t, "Movie of the week", row["review"])
	})
	t.Run("mutations require the admin role", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodPost, "/api/v1/movies", userToken(t, "u-1"),
			`{"imdbId": "tt1111111", "title": "Nope"}`)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
		recorder = doRequest(t, router, http.MethodDelete, "/api/v1/movies/9999991", "", "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
	t.Run("validation failures report every field", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodPost, "/api/v1/movies", admin, `{}`)
		require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		decoded := decodeResponse(t, recorder)
		fields := decoded["data"].(map[string]any)["errors"].(map[string]any)
		assert.Contains(t, fields, "imdbId")
		assert.Contains(t, fields, "title")
	})
	t.Run("update with mismatched id fails", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodPut, "/api/v1/movies/1234567", admin,
			`{"imdbId": "tt9999991", "title": "Renamed"}`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
	t.Run("user flags feed the view", func(t *testing.T) {
		token := userToken(t, "u-1")
		recorder := doRequest(t, router, http.MethodPut, "/api/v1/user-movies/9999991", token,
			`{"watched": true}`)
		require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

		recorder = doRequest(t, router, http.MethodGet, "/api/v1/view-awards?filterWatched=TRUE", token, "")
		require.Equal(t, http.StatusOK, recorder.Code)
		decoded := decodeResponse(t, recorder)
		rows := decoded["data"].(map[string]any)["viewAwards"].([]any)
		assert.Len(t, rows, 1)

		// Another user's view is unaffected by those flags.
		recorder = doRequest(t, router, http.MethodGet, "/api/v1/view-awards?filterWatched=TRUE", userToken(t, "u-2"), "")
		decoded = decodeResponse(t, recorder)
		otherRows, _ := decoded["data"].(map[string]any)["viewAwards"].([]any)
		assert.Empty(t, otherRows)
	})
	t.Run("flags for an unknown movie are rejected", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodPut, "/api/v1/user-movies/424242", userToken(t, "u-1"),
			`{"watched": true}`)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
	t.Run("delete is idempotent", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodDelete, "/api/v1/awards/9999991_170512_M", admin, "")
		require.Equal(t, http.StatusOK, recorder.Code)
		recorder = doRequest(t, router, http.MethodDelete, "/api/v1/awards/9999991_170512_M", admin, "")
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestPrefsEndpoints(t *testing.T) {
	app := NewTestApplication(t)
	router := app.routes()
	token := userToken(t, "u-1")

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/prefs", token, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	decoded := decodeResponse(t, recorder)
	prefs := decoded["data"].(map[string]any)["prefs"].(map[string]any)
	assert.Equal(t, "awardDate DESC", prefs["sortOrder"])

	recorder = doRequest(t, router, http.MethodPut, "/api/v1/prefs", token,
		`{"sortOrder": "title ASC", "filterGenre": "Drama"}`)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	recorder = doRequest(t, router, http.MethodGet, "/api/v1/prefs", token, "")
	decoded = decodeResponse(t, recorder)
	prefs = decoded["data"].(map[string]any)["prefs"].(map[string]any)
	assert.Equal(t, "title ASC", prefs["sortOrder"])
	assert.Equal(t, "Drama", prefs["filterGenre"])

	recorder = doRequest(t, router, http.MethodGet, "/api/v1/prefs", "", "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
