package search

import (
	"errors"
	"strconv"
	"strings"

	"github.com/admybrand/dashboard-backend/internal/models"
)

// ErrUnknownPage is returned for pages without a section table.
var ErrUnknownPage = errors.New("unknown page")

// Page identifies a dashboard route
type Page string

const (
	PageDashboard Page = "dashboard"
	PageReports   Page = "reports"
	PageSettings  Page = "setting"
)

// ParsePage accepts either a page name or its route path.
func ParsePage(s string) (Page, bool) {
	switch strings.Trim(strings.ToLower(s), "/") {
	case "", "dashboard":
		return PageDashboard, true
	case "reports":
		return PageReports, true
	case "setting", "settings":
		return PageSettings, true
	default:
		return "", false
	}
}

// Path returns the route the page is served on.
func (p Page) Path() string {
	if p == PageDashboard {
		return "/"
	}
	return "/" + string(p)
}

// Dataset is the data a page has loaded; sections with data dependencies
// become visible when the filtered result is non-empty.
type Dataset struct {
	Kpis      []models.KpiData
	Users     []models.User
	Campaigns []models.CampaignData
	Channels  []models.ChannelData
	Summary   *models.ReportSummary
}

// Data dependency names used in the section table.
const (
	DependsOnKpis      = "kpis"
	DependsOnUsers     = "users"
	DependsOnCampaigns = "campaigns"
	DependsOnChannels  = "channels"
	DependsOnSummary   = "summary"
)

// dependencyMatchers report whether the query, already normalized, selects
// anything from a data dependency.
var dependencyMatchers = map[string]func(Dataset, string) bool{
	DependsOnKpis: func(d Dataset, q string) bool {
		return len(FilterKpis(d.Kpis, q)) > 0
	},
	DependsOnUsers: func(d Dataset, q string) bool {
		return len(FilterUsers(d.Users, q)) > 0
	},
	DependsOnCampaigns: func(d Dataset, q string) bool {
		return len(FilterCampaigns(d.Campaigns, q)) > 0
	},
	DependsOnChannels: func(d Dataset, q string) bool {
		return len(FilterChannels(d.Channels, q)) > 0
	},
	DependsOnSummary: func(d Dataset, q string) bool {
		if d.Summary == nil {
			return false
		}
		return anyContains([]string{
			strconv.Itoa(d.Summary.TotalCampaigns),
			d.Summary.Impressions,
			d.Summary.Clicks,
			d.Summary.Revenue,
		}, q)
	},
}

// Section is one block of a page that can be hidden by a search.
type Section struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Keywords     []string `json:"keywords"`
	Dependencies []string `json:"dependencies"`
}

type pageSections struct {
	sections []Section
	hint     string
}

var sectionTable = map[Page]pageSections{
	PageDashboard: {
		sections: []Section{
			{ID: "kpis", Title: "Metrics", Dependencies: []string{DependsOnKpis}},
			{ID: "charts", Title: "Charts", Keywords: []string{"chart", "revenue", "sales", "user", "growth"}},
			{ID: "user-table", Title: "User Data", Keywords: []string{"user", "table"}, Dependencies: []string{DependsOnUsers}},
		},
		hint: "Try searching for: revenue, users, growth, sales, or user names",
	},
	PageReports: {
		sections: []Section{
			{ID: "kpis", Title: "Key Metrics", Keywords: []string{"campaign", "impression", "click", "revenue", "metric", "kpi"}, Dependencies: []string{DependsOnSummary}},
			{ID: "revenue-chart", Title: "Revenue Trends", Keywords: []string{"revenue", "trend", "growth", "chart", "analytics"}},
			{ID: "channel-chart", Title: "Channel Performance", Keywords: []string{"channel", "performance", "chart", "analytics"}, Dependencies: []string{DependsOnChannels}},
			{ID: "campaign-table", Title: "Campaign Performance", Keywords: []string{"campaign", "table", "analytics"}, Dependencies: []string{DependsOnCampaigns}},
			{ID: "funnel-table", Title: "Conversion Funnel", Keywords: []string{"funnel", "conversion", "table", "analytics"}},
		},
		hint: "Try searching for: campaign, revenue, channel, conversion, funnel, or chart",
	},
}

// Sections returns the section table of a page in display order.
func Sections(page Page) ([]Section, error) {
	ps, ok := sectionTable[page]
	if !ok {
		return nil, ErrUnknownPage
	}
	out := make([]Section, len(ps.sections))
	copy(out, ps.sections)
	return out, nil
}

// Visible reports whether a section is shown for query: always for an empty
// query, when the query contains one of its keywords, or when one of its data
// dependencies has a non-empty filtered result.
func Visible(section Section, query string, data Dataset) bool {
	q := Normalize(query)
	if q == "" {
		return true
	}
	if containsAnyKeyword(q, section.Keywords) {
		return true
	}
	for _, dep := range section.Dependencies {
		if match, ok := dependencyMatchers[dep]; ok && match(data, q) {
			return true
		}
	}
	return false
}

// SectionVisibility is the evaluated state of one section
type SectionVisibility struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Visible bool   `json:"visible"`
}

// PageVisibility is the evaluated section table of a page for one query
type PageVisibility struct {
	Page      Page                `json:"page"`
	Query     string              `json:"query"`
	Sections  []SectionVisibility `json:"sections"`
	NoResults bool                `json:"noResults"`
	Hint      string              `json:"hint,omitempty"`
}

// Evaluate runs Visible over every section of page. NoResults is set when a
// non-empty query hides every section, and Hint is only filled in that case.
func Evaluate(page Page, query string, data Dataset) (PageVisibility, error) {
	ps, ok := sectionTable[page]
	if !ok {
		return PageVisibility{}, ErrUnknownPage
	}

	q := Normalize(query)
	result := PageVisibility{
		Page:     page,
		Query:    q,
		Sections: make([]SectionVisibility, 0, len(ps.sections)),
	}

	anyVisible := false
	for _, s := range ps.sections {
		visible := Visible(s, q, data)
		anyVisible = anyVisible || visible
		result.Sections = append(result.Sections, SectionVisibility{ID: s.ID, Title: s.Title, Visible: visible})
	}

	if q != "" && !anyVisible {
		result.NoResults = true
		result.Hint = ps.hint
	}
	return result, nil
}
