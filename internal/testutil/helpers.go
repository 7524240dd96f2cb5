package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/admybrand/dashboard-backend/internal/configstore"
	"github.com/admybrand/dashboard-backend/internal/models"
)

// MakeRequest creates a basic HTTP request. A string body is sent as-is so
// tests can post malformed JSON; anything else is marshalled.
func MakeRequest(t *testing.T, method, url string, body interface{}) *http.Request {
	t.Helper()

	var bodyReader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		bodyReader = strings.NewReader(b)
	default:
		bodyBytes, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, url, bodyReader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req
}

// AssertJSONResponse checks that the response has the expected status and decodes JSON
func AssertJSONResponse(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, v interface{}) {
	t.Helper()

	if rr.Code != expectedStatus {
		t.Errorf("Expected status %d, got %d. Body: %s", expectedStatus, rr.Code, rr.Body.String())
	}

	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Expected JSON content type, got %q", ct)
	}

	if v != nil && rr.Body.Len() > 0 {
		if err := json.NewDecoder(rr.Body).Decode(v); err != nil {
			t.Errorf("Failed to decode JSON response: %v. Body: %s", err, rr.Body.String())
		}
	}
}

// AssertErrorResponse checks the status and the {"error": ...} body
func AssertErrorResponse(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedError string) {
	t.Helper()

	var resp struct {
		Error string `json:"error"`
	}
	AssertJSONResponse(t, rr, expectedStatus, &resp)
	if resp.Error != expectedError {
		t.Errorf("Expected error %q, got %q", expectedError, resp.Error)
	}
}

// NewTestStore returns a store seeded with the built-in data and no remote
// source.
func NewTestStore(t *testing.T) *configstore.Store {
	t.Helper()
	return configstore.NewDefault(nil)
}

// NewConfigSource starts an httptest server that answers every request with
// status and body. It is closed when the test ends.
func NewConfigSource(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// RemoteConfig is a config that differs from the defaults in every section a
// test is likely to look at.
func RemoteConfig() models.AppConfig {
	cfg := models.DefaultAppConfig()
	cfg.Company.Name = "Remote Co"
	cfg.User = models.User{ID: 42, Name: "Remote User", Email: "remote@example.com", Role: "Admin", Plan: "Pro"}
	cfg.Kpis = cfg.Kpis[:1]
	return cfg
}

// MustJSON marshals v or fails the test.
func MustJSON(t *testing.T, v interface{}) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	return string(b)
}
