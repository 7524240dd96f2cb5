package models

func num(v float64) *float64 { return &v }

// DefaultAppConfig returns a fresh copy of the built-in dashboard data. It is
// what the store serves until a remote source provides something newer.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Company: Company{
			Name:   "ADmyBRAND",
			Logo:   "/logo.png",
			Domain: "admybrand.com",
		},
		User: User{
			ID:     1,
			Name:   "John Doe",
			Email:  "john@admybrand.com",
			Avatar: "https://i.pravatar.cc/150?img=32",
			Role:   "Administrator",
			Plan:   "Premium Plan",
			Status: UserStatusActive,
		},
		Kpis: []KpiData{
			{Title: "Revenue", Value: "$24,500", Trend: "+12.3%", Icon: "DollarSign", Color: "green"},
			{Title: "Users", Value: "3,200", Trend: "+3.1%", Icon: "Users", Color: "blue"},
			{Title: "Conversions", Value: "875", Trend: "+7.5%", Icon: "CheckCircle", Color: "purple"},
			{Title: "Growth", Value: "18%", Trend: "+5.4%", Icon: "TrendingUp", Color: "orange"},
		},
		Charts: Charts{
			LineChart: []ChartData{
				{Name: "Jan", Value: num(400)},
				{Name: "Feb", Value: num(300)},
				{Name: "Mar", Value: num(500)},
				{Name: "Apr", Value: num(700)},
				{Name: "May", Value: num(600)},
				{Name: "Jun", Value: num(800)},
			},
			BarChart: []ChartData{
				{Name: "Product A", Sales: num(1200), Value: num(1200)},
				{Name: "Product B", Sales: num(980), Value: num(980)},
				{Name: "Product C", Sales: num(650), Value: num(650)},
				{Name: "Product D", Sales: num(1430), Value: num(1430)},
				{Name: "Product E", Sales: num(890), Value: num(890)},
			},
			PieChart: []ChartData{
				{Name: "Free Users", Value: num(400)},
				{Name: "Premium Users", Value: num(300)},
				{Name: "Enterprise", Value: num(100)},
			},
		},
		Notifications: []NotificationPreference{
			{ID: "email-notifications", Title: "Email Notifications", Description: "Receive notifications via email", Enabled: true, Category: NotificationEmail},
			{ID: "push-notifications", Title: "Push Notifications", Description: "Receive push notifications on your device", Enabled: true, Category: NotificationSystem},
			{ID: "browser-notifications", Title: "Browser Notifications", Description: "Show notifications in your browser", Enabled: true, Category: NotificationSystem},
			{ID: "marketing-emails", Title: "Marketing Emails", Description: "Receive promotional and marketing content", Enabled: false, Category: NotificationMarketing},
			{ID: "weekly-reports", Title: "Weekly Reports", Description: "Get weekly summary reports", Enabled: true, Category: NotificationEmail},
			{ID: "monthly-reports", Title: "Monthly Reports", Description: "Get monthly detailed reports", Enabled: true, Category: NotificationEmail},
			{ID: "system-alerts", Title: "System Alerts", Description: "Important system updates and alerts", Enabled: true, Category: NotificationSystem},
			{ID: "security-alerts", Title: "Security Alerts", Description: "Security-related notifications", Enabled: true, Category: NotificationSystem},
		},
		Billing: BillingInfo{
			Plan:        "Premium Plan",
			Amount:      29.99,
			Currency:    "USD",
			NextBilling: "2024-02-15",
			Status:      BillingActive,
			PaymentMethod: PaymentMethod{
				Type:   "card",
				Brand:  "Visa",
				Last4:  "4242",
				Expiry: "12/25",
			},
			BillingHistory: []Invoice{
				{ID: "inv-001", Date: "2024-01-15", Amount: 29.99, Status: "paid"},
				{ID: "inv-002", Date: "2023-12-15", Amount: 29.99, Status: "paid"},
				{ID: "inv-003", Date: "2023-11-15", Amount: 29.99, Status: "paid"},
			},
		},
		Settings: SettingsOptions{
			Languages: []Option{
				{Code: "en", Name: "English"},
				{Code: "es", Name: "Spanish"},
				{Code: "fr", Name: "French"},
				{Code: "de", Name: "German"},
			},
			Timezones: []Option{
				{Code: "utc", Name: "UTC"},
				{Code: "est", Name: "Eastern Time"},
				{Code: "pst", Name: "Pacific Time"},
				{Code: "gmt", Name: "GMT"},
			},
			Themes: []Theme{
				{ID: "light", Name: "Light"},
				{ID: "dark", Name: "Dark"},
				{ID: "auto", Name: "Auto"},
			},
		},
		Analytics: defaultAnalytics(),
	}
}

func defaultAnalytics() AnalyticsData {
	return AnalyticsData{
		Campaigns: []CampaignData{
			{
				ID: "camp-001", Name: "Summer Sale Campaign", Status: CampaignActive,
				StartDate: "2024-01-01", EndDate: "2024-02-28",
				Budget: 50000, Spent: 35000, Impressions: 1250000, Clicks: 25000, Conversions: 1250,
				CTR: 2.0, CPC: 1.4, ROI: 285, Channel: "Google Ads",
			},
			{
				ID: "camp-002", Name: "Brand Awareness Drive", Status: CampaignCompleted,
				StartDate: "2023-12-01", EndDate: "2023-12-31",
				Budget: 30000, Spent: 28500, Impressions: 980000, Clicks: 19600, Conversions: 980,
				CTR: 2.0, CPC: 1.45, ROI: 245, Channel: "Facebook Ads",
			},
			{
				ID: "camp-003", Name: "Product Launch Campaign", Status: CampaignActive,
				StartDate: "2024-01-15", EndDate: "2024-03-15",
				Budget: 75000, Spent: 42000, Impressions: 1800000, Clicks: 36000, Conversions: 1800,
				CTR: 2.0, CPC: 1.17, ROI: 320, Channel: "LinkedIn Ads",
			},
			{
				ID: "camp-004", Name: "Retargeting Campaign", Status: CampaignPaused,
				StartDate: "2024-01-01", EndDate: "2024-01-31",
				Budget: 15000, Spent: 12000, Impressions: 450000, Clicks: 13500, Conversions: 675,
				CTR: 3.0, CPC: 0.89, ROI: 180, Channel: "Google Ads",
			},
			{
				ID: "camp-005", Name: "Holiday Special", Status: CampaignCompleted,
				StartDate: "2023-11-15", EndDate: "2023-12-25",
				Budget: 60000, Spent: 58000, Impressions: 2100000, Clicks: 42000, Conversions: 2100,
				CTR: 2.0, CPC: 1.38, ROI: 295, Channel: "Instagram Ads",
			},
		},
		RevenueData: []RevenueData{
			{Date: "2024-01-01", Revenue: 125000, Target: 120000, Growth: 4.2},
			{Date: "2024-01-02", Revenue: 132000, Target: 120000, Growth: 10.0},
			{Date: "2024-01-03", Revenue: 118000, Target: 120000, Growth: -1.7},
			{Date: "2024-01-04", Revenue: 145000, Target: 120000, Growth: 20.8},
			{Date: "2024-01-05", Revenue: 138000, Target: 120000, Growth: 15.0},
			{Date: "2024-01-06", Revenue: 155000, Target: 120000, Growth: 29.2},
			{Date: "2024-01-07", Revenue: 142000, Target: 120000, Growth: 18.3},
			{Date: "2024-01-08", Revenue: 148000, Target: 120000, Growth: 23.3},
			{Date: "2024-01-09", Revenue: 135000, Target: 120000, Growth: 12.5},
			{Date: "2024-01-10", Revenue: 162000, Target: 120000, Growth: 35.0},
		},
		ChannelData: []ChannelData{
			{Channel: "Google Ads", Impressions: 1700000, Clicks: 38500, Conversions: 1925, Revenue: 385000, CTR: 2.26, ConversionRate: 5.0, Cost: 47000, ROI: 719},
			{Channel: "Facebook Ads", Impressions: 980000, Clicks: 19600, Conversions: 980, Revenue: 196000, CTR: 2.0, ConversionRate: 5.0, Cost: 28500, ROI: 588},
			{Channel: "LinkedIn Ads", Impressions: 1800000, Clicks: 36000, Conversions: 1800, Revenue: 360000, CTR: 2.0, ConversionRate: 5.0, Cost: 42000, ROI: 757},
			{Channel: "Instagram Ads", Impressions: 2100000, Clicks: 42000, Conversions: 2100, Revenue: 420000, CTR: 2.0, ConversionRate: 5.0, Cost: 58000, ROI: 624},
			{Channel: "Email Marketing", Impressions: 500000, Clicks: 25000, Conversions: 1250, Revenue: 125000, CTR: 5.0, ConversionRate: 5.0, Cost: 8000, ROI: 1463},
		},
		ConversionFunnel: []ConversionFunnelData{
			{Stage: "Website Visitors", Visitors: 125000, Conversions: 125000, ConversionRate: 100.0, DropOffRate: 0.0},
			{Stage: "Product Page Views", Visitors: 87500, Conversions: 87500, ConversionRate: 70.0, DropOffRate: 30.0},
			{Stage: "Add to Cart", Visitors: 25000, Conversions: 25000, ConversionRate: 28.6, DropOffRate: 71.4},
			{Stage: "Checkout Started", Visitors: 15000, Conversions: 15000, ConversionRate: 60.0, DropOffRate: 40.0},
			{Stage: "Payment Completed", Visitors: 8055, Conversions: 8055, ConversionRate: 53.7, DropOffRate: 46.3},
		},
	}
}

// DefaultUsers is the mock listing behind the users table.
func DefaultUsers() []User {
	return []User{
		{ID: 1, Name: "Amit Raj", Email: "amit@example.com", Role: "Admin", Plan: "Premium"},
		{ID: 2, Name: "John Doe", Email: "john@example.com", Role: "User", Plan: "Basic"},
		{ID: 3, Name: "Jane Smith", Email: "jane@example.com", Role: "Manager", Plan: "Pro"},
	}
}

// DefaultReportSummary is the headline block of the reports page.
func DefaultReportSummary() ReportSummary {
	return ReportSummary{
		TotalCampaigns: 32,
		Impressions:    "1.2M",
		Clicks:         "85.2K",
		Revenue:        "₹3.8L",
	}
}
