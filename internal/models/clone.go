package models

// Clone returns a deep copy so callers can hand the value out without
// sharing backing arrays with the store.
func (c AppConfig) Clone() AppConfig {
	out := c
	out.Kpis = cloneSlice(c.Kpis)
	out.Charts = c.Charts.Clone()
	out.Notifications = cloneSlice(c.Notifications)
	out.Billing = c.Billing.Clone()
	out.Settings = c.Settings.Clone()
	out.Analytics = c.Analytics.Clone()
	return out
}

// Clone returns a deep copy of the chart series.
func (c Charts) Clone() Charts {
	return Charts{
		LineChart: cloneChart(c.LineChart),
		BarChart:  cloneChart(c.BarChart),
		PieChart:  cloneChart(c.PieChart),
	}
}

// Clone returns a deep copy of the billing info.
func (b BillingInfo) Clone() BillingInfo {
	out := b
	out.BillingHistory = cloneSlice(b.BillingHistory)
	return out
}

// Clone returns a deep copy of the dropdown options.
func (s SettingsOptions) Clone() SettingsOptions {
	return SettingsOptions{
		Languages: cloneSlice(s.Languages),
		Timezones: cloneSlice(s.Timezones),
		Themes:    cloneSlice(s.Themes),
	}
}

// Clone returns a deep copy of the analytics collections.
func (a AnalyticsData) Clone() AnalyticsData {
	return AnalyticsData{
		Campaigns:        cloneSlice(a.Campaigns),
		RevenueData:      cloneSlice(a.RevenueData),
		ChannelData:      cloneSlice(a.ChannelData),
		ConversionFunnel: cloneSlice(a.ConversionFunnel),
	}
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func cloneChart(in []ChartData) []ChartData {
	out := cloneSlice(in)
	for i := range out {
		if out[i].Value != nil {
			v := *out[i].Value
			out[i].Value = &v
		}
		if out[i].Sales != nil {
			s := *out[i].Sales
			out[i].Sales = &s
		}
	}
	return out
}
