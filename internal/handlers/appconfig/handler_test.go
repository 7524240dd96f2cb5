package appconfig

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/admybrand/dashboard-backend/internal/configstore"
	"github.com/admybrand/dashboard-backend/internal/models"
	"github.com/admybrand/dashboard-backend/internal/reports"
	"github.com/admybrand/dashboard-backend/internal/testutil"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/config", h.GetConfig).Methods("GET")
	r.HandleFunc("/api/config", h.UpdateConfig).Methods("POST")
	r.HandleFunc("/api/config/refresh", h.RefreshConfig).Methods("POST")
	r.HandleFunc("/api/config/status", h.GetStatus).Methods("GET")
	r.HandleFunc("/api/kpis", h.GetKpis).Methods("GET")
	r.HandleFunc("/api/charts/{kind}", h.GetChart).Methods("GET")
	r.HandleFunc("/api/notifications", h.GetNotifications).Methods("GET")
	return r
}

func serve(t *testing.T, h *Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	newRouter(h).ServeHTTP(rr, req)
	return rr
}

func TestGetConfig(t *testing.T) {
	h := NewHandler(testutil.NewTestStore(t))

	var cfg models.AppConfig
	rr := serve(t, h, testutil.MakeRequest(t, "GET", "/api/config", nil))
	testutil.AssertJSONResponse(t, rr, http.StatusOK, &cfg)

	assert.Equal(t, "ADmyBRAND", cfg.Company.Name)
	assert.Equal(t, "John Doe", cfg.User.Name)
	assert.Len(t, cfg.Kpis, 4)
}

func TestUpdateConfig(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, resp UpdateResponse, store *configstore.Store)
	}{
		{
			name: "replaces user section only",
			body: map[string]interface{}{
				"user": map[string]interface{}{"id": 7, "name": "Priya", "email": "priya@example.com", "role": "Admin", "plan": "Pro"},
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp UpdateResponse, store *configstore.Store) {
				assert.True(t, resp.Success)
				assert.Equal(t, "Configuration updated successfully", resp.Message)
				require.NotNil(t, resp.Data)
				assert.Equal(t, "Priya", resp.Data.User.Name)
				assert.Equal(t, 7, store.User().ID)
				assert.Equal(t, "ADmyBRAND", store.Company().Name)
			},
		},
		{
			name:           "unknown sections are reported",
			body:           map[string]interface{}{"theme": "dark"},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp UpdateResponse, store *configstore.Store) {
				assert.True(t, resp.Success)
				assert.Equal(t, []string{"theme"}, resp.Ignored)
				assert.Equal(t, "John Doe", store.User().Name)
			},
		},
		{
			name:           "malformed json",
			body:           "{not json",
			expectedStatus: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, resp UpdateResponse, store *configstore.Store) {
				assert.False(t, resp.Success)
				assert.Equal(t, "Failed to update configuration", resp.Message)
				assert.Nil(t, resp.Data)
			},
		},
		{
			name:           "wrong section shape",
			body:           map[string]interface{}{"kpis": "lots"},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp UpdateResponse, store *configstore.Store) {
				assert.False(t, resp.Success)
				assert.Len(t, store.Kpis(), 4)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.NewTestStore(t)
			h := NewHandler(store)

			var resp UpdateResponse
			rr := serve(t, h, testutil.MakeRequest(t, "POST", "/api/config", tt.body))
			testutil.AssertJSONResponse(t, rr, tt.expectedStatus, &resp)
			tt.checkResponse(t, resp, store)
		})
	}
}

func TestUpdateConfigEmptyBodyDoesNotNotify(t *testing.T) {
	store := testutil.NewTestStore(t)
	h := NewHandler(store)
	notified := 0
	store.Subscribe(func(models.AppConfig) { notified++ })

	var resp UpdateResponse
	rr := serve(t, h, testutil.MakeRequest(t, "POST", "/api/config", map[string]interface{}{"user": nil}))
	testutil.AssertJSONResponse(t, rr, http.StatusOK, &resp)

	assert.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	assert.Equal(t, models.DefaultAppConfig(), *resp.Data)
	assert.Equal(t, 0, notified)
}

func TestRefreshConfig(t *testing.T) {
	t.Run("source failure keeps defaults", func(t *testing.T) {
		srv := testutil.NewConfigSource(t, http.StatusInternalServerError, `{"error":"boom"}`)
		store := configstore.NewDefault(configstore.NewHTTPFetcher(srv.URL, time.Second))
		h := NewHandler(store)

		var cfg models.AppConfig
		rr := serve(t, h, testutil.MakeRequest(t, "POST", "/api/config/refresh", nil))
		testutil.AssertJSONResponse(t, rr, http.StatusOK, &cfg)
		assert.Equal(t, "John Doe", cfg.User.Name)
		assert.Equal(t, 1, cfg.User.ID)

		var status configstore.LoadStatus
		rr = serve(t, h, testutil.MakeRequest(t, "GET", "/api/config/status", nil))
		testutil.AssertJSONResponse(t, rr, http.StatusOK, &status)
		assert.Equal(t, srv.URL, status.Source)
		assert.NotEmpty(t, status.LastError)
		assert.Nil(t, status.LastSuccess)
	})

	t.Run("source success replaces config", func(t *testing.T) {
		srv := testutil.NewConfigSource(t, http.StatusOK, testutil.MustJSON(t, testutil.RemoteConfig()))
		store := configstore.NewDefault(configstore.NewHTTPFetcher(srv.URL, time.Second))
		h := NewHandler(store)

		var cfg models.AppConfig
		rr := serve(t, h, testutil.MakeRequest(t, "POST", "/api/config/refresh", nil))
		testutil.AssertJSONResponse(t, rr, http.StatusOK, &cfg)
		assert.Equal(t, "Remote User", cfg.User.Name)
		assert.Equal(t, "Remote Co", store.Company().Name)
	})
}

func TestGetKpis(t *testing.T) {
	h := NewHandler(testutil.NewTestStore(t))

	var cards []reports.KpiCard
	rr := serve(t, h, testutil.MakeRequest(t, "GET", "/api/kpis?q=users", nil))
	testutil.AssertJSONResponse(t, rr, http.StatusOK, &cards)

	require.Len(t, cards, 1)
	assert.Equal(t, "Users", cards[0].Title)
	assert.Equal(t, reports.DirectionUp, cards[0].Direction)
}

func TestGetChart(t *testing.T) {
	h := NewHandler(testutil.NewTestStore(t))

	tests := []struct {
		kind           string
		expectedStatus int
	}{
		{kind: "lineChart", expectedStatus: http.StatusOK},
		{kind: "barChart", expectedStatus: http.StatusOK},
		{kind: "pieChart", expectedStatus: http.StatusOK},
		{kind: "areaChart", expectedStatus: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			rr := serve(t, h, testutil.MakeRequest(t, "GET", "/api/charts/"+tt.kind, nil))
			if tt.expectedStatus != http.StatusOK {
				testutil.AssertErrorResponse(t, rr, tt.expectedStatus, "Chart not found")
				return
			}
			var series []models.ChartData
			testutil.AssertJSONResponse(t, rr, tt.expectedStatus, &series)
			assert.NotEmpty(t, series)
		})
	}
}

func TestGetNotifications(t *testing.T) {
	h := NewHandler(testutil.NewTestStore(t))
	all := models.DefaultAppConfig().Notifications

	var prefs []models.NotificationPreference
	rr := serve(t, h, testutil.MakeRequest(t, "GET", "/api/notifications", nil))
	testutil.AssertJSONResponse(t, rr, http.StatusOK, &prefs)
	assert.Equal(t, all, prefs)

	prefs = nil
	rr = serve(t, h, testutil.MakeRequest(t, "GET", "/api/notifications?category=marketing", nil))
	testutil.AssertJSONResponse(t, rr, http.StatusOK, &prefs)
	require.NotEmpty(t, prefs)
	for _, p := range prefs {
		assert.Equal(t, models.NotificationMarketing, p.Category)
	}

	prefs = nil
	rr = serve(t, h, testutil.MakeRequest(t, "GET", "/api/notifications?category=marketing&q=zzz", nil))
	testutil.AssertJSONResponse(t, rr, http.StatusOK, &prefs)
	assert.Empty(t, prefs)
}
