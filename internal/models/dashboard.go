package models

// AppConfig is the aggregate served to every dashboard page.
type AppConfig struct {
	Company       Company                  `json:"company"`
	User          User                     `json:"user"`
	Kpis          []KpiData                `json:"kpis"`
	Charts        Charts                   `json:"charts"`
	Notifications []NotificationPreference `json:"notifications"`
	Billing       BillingInfo              `json:"billing"`
	Settings      SettingsOptions          `json:"settings"`
	Analytics     AnalyticsData            `json:"analytics"`
}

// Company identifies the tenant whose dashboard is being rendered
type Company struct {
	Name   string `json:"name"`
	Logo   string `json:"logo"`
	Domain string `json:"domain"`
}

// KpiData is a single pre-aggregated metric card. Value and Trend are
// already formatted for display.
type KpiData struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Trend string `json:"trend"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// ChartData is one point of a line, bar or pie chart.
type ChartData struct {
	Name  string   `json:"name"`
	Value *float64 `json:"value,omitempty"`
	Sales *float64 `json:"sales,omitempty"`
}

// ChartKind names one of the three chart series in Charts
type ChartKind string

const (
	ChartLine ChartKind = "lineChart"
	ChartBar  ChartKind = "barChart"
	ChartPie  ChartKind = "pieChart"
)

// Charts groups the dashboard chart series
type Charts struct {
	LineChart []ChartData `json:"lineChart"`
	BarChart  []ChartData `json:"barChart"`
	PieChart  []ChartData `json:"pieChart"`
}

// Series returns the series for kind and whether kind is known.
func (c Charts) Series(kind ChartKind) ([]ChartData, bool) {
	switch kind {
	case ChartLine:
		return c.LineChart, true
	case ChartBar:
		return c.BarChart, true
	case ChartPie:
		return c.PieChart, true
	default:
		return nil, false
	}
}

// NotificationCategory groups notification toggles on the settings page
type NotificationCategory string

const (
	NotificationEmail     NotificationCategory = "email"
	NotificationSystem    NotificationCategory = "system"
	NotificationMarketing NotificationCategory = "marketing"
)

// NotificationPreference is a single notification toggle
type NotificationPreference struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Enabled     bool                 `json:"enabled"`
	Category    NotificationCategory `json:"category"`
}

// Option is a code/name pair offered in a settings dropdown
type Option struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Theme is a selectable colour theme
type Theme struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SettingsOptions lists the choices available on the settings page
type SettingsOptions struct {
	Languages []Option `json:"languages"`
	Timezones []Option `json:"timezones"`
	Themes    []Theme  `json:"themes"`
}
