package search

import (
	"fmt"
	"strings"

	"github.com/admybrand/dashboard-backend/internal/models"
)

// ResultType categorises a search result card
type ResultType string

const (
	ResultKpi     ResultType = "kpi"
	ResultChart   ResultType = "chart"
	ResultTable   ResultType = "table"
	ResultUser    ResultType = "user"
	ResultReport  ResultType = "report"
	ResultSetting ResultType = "setting"
)

// Result is a card in the global search dropdown
type Result struct {
	ID      string     `json:"id"`
	Type    ResultType `json:"type"`
	Title   string     `json:"title"`
	Content string     `json:"content"`
	Path    string     `json:"path"`
}

type resultRule struct {
	keywords []string
	result   Result
	// kpiTitle, when set, replaces Content with the live value of that KPI.
	kpiTitle string
}

var resultRules = map[Page][]resultRule{
	PageDashboard: {
		{keywords: []string{"revenue", "money", "dollar"}, kpiTitle: "Revenue",
			result: Result{ID: "revenue-kpi", Type: ResultKpi, Title: "Revenue KPI", Content: "Revenue: $24,500 (+12.3%)"}},
		{keywords: []string{"user", "people"}, kpiTitle: "Users",
			result: Result{ID: "users-kpi", Type: ResultKpi, Title: "Users KPI", Content: "Users: 3,200 (+3.1%)"}},
		{keywords: []string{"conversion", "check"}, kpiTitle: "Conversions",
			result: Result{ID: "conversions-kpi", Type: ResultKpi, Title: "Conversions KPI", Content: "Conversions: 875 (+7.5%)"}},
		{keywords: []string{"growth", "trend"}, kpiTitle: "Growth",
			result: Result{ID: "growth-kpi", Type: ResultKpi, Title: "Growth KPI", Content: "Growth: 18% (+5.4%)"}},
		{keywords: []string{"chart", "graph"},
			result: Result{ID: "charts", Type: ResultChart, Title: "Analytics Charts", Content: "Line Chart, Bar Chart, Pie Chart"}},
		{keywords: []string{"table", "data"},
			result: Result{ID: "user-table", Type: ResultTable, Title: "User Table", Content: "Data table with user information"}},
	},
	PageReports: {
		{keywords: []string{"campaign", "total"},
			result: Result{ID: "campaigns-report", Type: ResultReport, Title: "Total Campaigns", Content: "Campaign analytics and metrics"}},
		{keywords: []string{"impression", "view"},
			result: Result{ID: "impressions-report", Type: ResultReport, Title: "Impressions", Content: "View and impression metrics"}},
		{keywords: []string{"click", "interaction"},
			result: Result{ID: "clicks-report", Type: ResultReport, Title: "Clicks", Content: "Click-through rates and interactions"}},
		{keywords: []string{"revenue", "money"},
			result: Result{ID: "revenue-report", Type: ResultReport, Title: "Revenue", Content: "Revenue analytics and financial data"}},
	},
	PageSettings: {
		{keywords: []string{"profile", "user", "name"},
			result: Result{ID: "profile-settings", Type: ResultSetting, Title: "Profile Settings", Content: "Personal information and profile management"}},
		{keywords: []string{"notification", "alert"},
			result: Result{ID: "notification-settings", Type: ResultSetting, Title: "Notification Settings", Content: "Configure notification preferences"}},
		{keywords: []string{"preference", "setting"},
			result: Result{ID: "preferences-settings", Type: ResultSetting, Title: "User Preferences", Content: "Customize application settings"}},
		{keywords: []string{"billing", "payment", "subscription"},
			result: Result{ID: "billing-settings", Type: ResultSetting, Title: "Billing & Subscription", Content: "Manage subscription and payment methods"}},
	},
}

// Results returns the result cards for page whose trigger keywords appear in
// query. A blank query yields no results. KPI cards show the current value of
// the matching KPI from kpis when one is present.
func Results(page Page, query string, kpis []models.KpiData) []Result {
	if strings.TrimSpace(query) == "" {
		return []Result{}
	}
	q := Normalize(query)

	results := []Result{}
	for _, rule := range resultRules[page] {
		if !containsAnyKeyword(q, rule.keywords) {
			continue
		}
		r := rule.result
		r.Path = page.Path()
		if rule.kpiTitle != "" {
			if kpi, ok := findKpi(kpis, rule.kpiTitle); ok {
				r.Content = fmt.Sprintf("%s: %s (%s)", kpi.Title, kpi.Value, kpi.Trend)
			}
		}
		results = append(results, r)
	}
	return results
}

func containsAnyKeyword(q string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

func findKpi(kpis []models.KpiData, title string) (models.KpiData, bool) {
	for _, k := range kpis {
		if k.Title == title {
			return k, true
		}
	}
	return models.KpiData{}, false
}
