package search

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/admybrand/dashboard-backend/internal/models"
	filter "github.com/admybrand/dashboard-backend/internal/search"
	"github.com/admybrand/dashboard-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T) *Handler {
	t.Helper()
	return NewHandler(testutil.NewTestStore(t), models.DefaultUsers(), models.DefaultReportSummary())
}

func resultIDs(results []filter.Result) []string {
	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestSearch(t *testing.T) {
	h := newHandler(t)

	tests := []struct {
		name         string
		url          string
		expectedPage filter.Page
		expectedIDs  []string
	}{
		{name: "default page", url: "/api/search?q=revenue", expectedPage: filter.PageDashboard, expectedIDs: []string{"revenue-kpi"}},
		{name: "reports page", url: "/api/search?q=revenue&page=reports", expectedPage: filter.PageReports, expectedIDs: []string{"revenue-report"}},
		{name: "settings path", url: "/api/search?q=billing&page=/setting", expectedPage: filter.PageSettings, expectedIDs: []string{"billing-settings"}},
		{name: "blank query", url: "/api/search?q=%20%20&page=dashboard", expectedPage: filter.PageDashboard, expectedIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.Search(rr, testutil.MakeRequest(t, "GET", tt.url, nil))

			var resp ResultsResponse
			testutil.AssertJSONResponse(t, rr, http.StatusOK, &resp)
			assert.Equal(t, tt.expectedPage, resp.Page)
			assert.Equal(t, tt.expectedIDs, resultIDs(resp.Results))
		})
	}
}

func TestSearchKpiContentIsLive(t *testing.T) {
	h := newHandler(t)

	rr := httptest.NewRecorder()
	h.Search(rr, testutil.MakeRequest(t, "GET", "/api/search?q=revenue", nil))

	var resp ResultsResponse
	testutil.AssertJSONResponse(t, rr, http.StatusOK, &resp)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Revenue: $24,500 (+12.3%)", resp.Results[0].Content)
	assert.Equal(t, "/", resp.Results[0].Path)
}

func TestSearchUnknownPage(t *testing.T) {
	rr := httptest.NewRecorder()
	newHandler(t).Search(rr, testutil.MakeRequest(t, "GET", "/api/search?q=x&page=billing", nil))
	testutil.AssertErrorResponse(t, rr, http.StatusBadRequest, "Unknown page")
}

func TestSections(t *testing.T) {
	h := newHandler(t)

	visible := func(v filter.PageVisibility) map[string]bool {
		out := make(map[string]bool, len(v.Sections))
		for _, s := range v.Sections {
			out[s.ID] = s.Visible
		}
		return out
	}

	t.Run("empty query shows everything", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.Sections(rr, testutil.MakeRequest(t, "GET", "/api/sections?page=reports", nil))

		var resp filter.PageVisibility
		testutil.AssertJSONResponse(t, rr, http.StatusOK, &resp)
		assert.False(t, resp.NoResults)
		for id, v := range visible(resp) {
			assert.True(t, v, id)
		}
	})

	t.Run("campaign data match", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.Sections(rr, testutil.MakeRequest(t, "GET", "/api/sections?page=reports&q=google", nil))

		var resp filter.PageVisibility
		testutil.AssertJSONResponse(t, rr, http.StatusOK, &resp)
		v := visible(resp)
		assert.True(t, v["campaign-table"])
		assert.True(t, v["channel-chart"])
		assert.False(t, v["funnel-table"])
		assert.False(t, resp.NoResults)
	})

	t.Run("user match on dashboard", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.Sections(rr, testutil.MakeRequest(t, "GET", "/api/sections?q=jane", nil))

		var resp filter.PageVisibility
		testutil.AssertJSONResponse(t, rr, http.StatusOK, &resp)
		v := visible(resp)
		assert.True(t, v["user-table"])
		assert.False(t, v["kpis"])
		assert.False(t, v["charts"])
	})

	t.Run("nothing matches", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.Sections(rr, testutil.MakeRequest(t, "GET", "/api/sections?page=reports&q=zzzz", nil))

		var resp filter.PageVisibility
		testutil.AssertJSONResponse(t, rr, http.StatusOK, &resp)
		assert.True(t, resp.NoResults)
		assert.NotEmpty(t, resp.Hint)
	})

	t.Run("settings page has no sections", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.Sections(rr, testutil.MakeRequest(t, "GET", "/api/sections?page=setting&q=x", nil))
		testutil.AssertErrorResponse(t, rr, http.StatusNotFound, "Page has no searchable sections")
	})
}
