package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasgrid/user-atlas/internal/geocode"
	"github.com/atlasgrid/user-atlas/internal/model"
	"github.com/atlasgrid/user-atlas/internal/store/memory"
)

// providerFake simulates the weather provider: known ZIP prefixes resolve,
// "99999" is unknown, and the API key must match.
func providerFake(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("appid") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
			return
		}
		switch r.URL.Query().Get("zip") {
		case "10001,us":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"coord":{"lat":40.7505,"lon":-73.9934},"timezone":-18000}`))
		case "94103,us":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"coord":{"lat":37.7725,"lon":-122.4147},"timezone":-28800}`))
		case "99999,us":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestServer(t *testing.T, apiKey string) *httptest.Server {
	t.Helper()
	provider := providerFake(t)
	lookup := geocode.NewClient(provider.URL, apiKey, "us")
	router := NewRouter(memory.New(), lookup)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, payload interface{}) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

func doJSON(t *testing.T, method, url string, payload interface{}) *http.Response {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeUser(t *testing.T, resp *http.Response) model.User {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	var u model.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&u))
	return u
}

func TestCreateGetUpdateDeleteUser(t *testing.T) {
	srv := newTestServer(t, "test-key")

	// Create
	resp := postJSON(t, srv.URL+"/api/users", map[string]string{"name": "John Doe", "zipCode": "10001"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeUser(t, resp)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "John Doe", created.Name)
	assert.Equal(t, "10001", created.ZipCode)
	assert.Equal(t, 40.7505, created.Latitude)
	assert.Equal(t, -73.9934, created.Longitude)
	assert.Equal(t, "UTC-05:00", created.Timezone)
	assert.True(t, created.CreatedAt.Equal(created.UpdatedAt), "createdAt must equal updatedAt at creation")

	// Get
	resp, err := http.Get(srv.URL + "/api/users/" + created.ID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeUser(t, resp)
	assert.Equal(t, created, got)

	// List
	resp, err = http.Get(srv.URL + "/api/users")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listBody struct {
		Users []model.User `json:"users"`
		Count int          `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listBody))
	_ = resp.Body.Close()
	assert.Equal(t, 1, listBody.Count)

	// Update zip: geolocation replaced together with zip
	resp = doJSON(t, http.MethodPatch, srv.URL+"/api/users/"+created.ID, map[string]string{"zipCode": "94103"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeUser(t, resp)
	assert.Equal(t, "94103", updated.ZipCode)
	assert.Equal(t, 37.7725, updated.Latitude)
	assert.Equal(t, -122.4147, updated.Longitude)
	assert.Equal(t, "UTC-08:00", updated.Timezone)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))

	// Delete
	resp = doJSON(t, http.MethodDelete, srv.URL+"/api/users/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()

	// Get after delete
	resp, err = http.Get(srv.URL + "/api/users/" + created.ID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()

	// Second delete
	resp = doJSON(t, http.MethodDelete, srv.URL+"/api/users/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestCreateUser_ValidationErrors(t *testing.T) {
	srv := newTestServer(t, "test-key")

	cases := []map[string]string{
		{"name": "", "zipCode": "10001"},
		{"name": "John", "zipCode": "invalid"},
		{"name": "John", "zipCode": ""},
	}
	for _, payload := range cases {
		resp := postJSON(t, srv.URL+"/api/users", payload)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "payload %v", payload)
		_ = resp.Body.Close()
	}

	// Malformed body
	resp, err := http.Post(srv.URL+"/api/users", "application/json", bytes.NewReader([]byte("{")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestCreateUser_ZipExtension(t *testing.T) {
	srv := newTestServer(t, "test-key")

	// ZIP+4 passes format validation; the fake provider does not know it,
	// which surfaces as an upstream failure, not a validation failure.
	resp := postJSON(t, srv.URL+"/api/users", map[string]string{"name": "John", "zipCode": "10001-1234"})
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestCreateUser_ProviderErrors(t *testing.T) {
	srv := newTestServer(t, "test-key")

	// Unknown ZIP: client error with the provider message
	resp := postJSON(t, srv.URL+"/api/users", map[string]string{"name": "John", "zipCode": "99999"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var errBody struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	_ = resp.Body.Close()
	assert.Contains(t, errBody.Message, "99999")

	// Bad credentials: server error
	badKey := newTestServer(t, "wrong-key")
	resp = postJSON(t, badKey.URL+"/api/users", map[string]string{"name": "John", "zipCode": "10001"})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestUpdateUser_NotFound(t *testing.T) {
	srv := newTestServer(t, "test-key")

	resp := doJSON(t, http.MethodPatch, srv.URL+"/api/users/nope", map[string]string{"name": "X"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestValidateZip(t *testing.T) {
	srv := newTestServer(t, "test-key")

	// Valid ZIP: payload carries coordinates
	resp, err := http.Get(srv.URL + "/api/zipcodes/validate/10001")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var res model.ZipValidation
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	_ = resp.Body.Close()
	assert.True(t, res.Valid)
	require.NotNil(t, res.Latitude)
	assert.Equal(t, 40.7505, *res.Latitude)
	assert.Equal(t, "UTC-05:00", res.UTCOffset)

	// Unknown ZIP: still 200, invalidity in the payload
	resp, err = http.Get(srv.URL + "/api/zipcodes/validate/99999")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	_ = resp.Body.Close()
	assert.False(t, res.Valid)
	assert.Contains(t, res.Message, "99999")
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, "test-key")

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	_ = resp.Body.Close()
	assert.Contains(t, body, "status")
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, "test-key")

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/users", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestMethodRouting(t *testing.T) {
	srv := newTestServer(t, "test-key")

	// PUT on the collection is not routed
	resp := doJSON(t, http.MethodPut, srv.URL+"/api/users", map[string]string{})
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
