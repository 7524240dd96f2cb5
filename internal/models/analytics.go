package models

// CampaignStatus is the lifecycle state of an ad campaign
type CampaignStatus string

const (
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
)

// CampaignData holds the performance numbers of one campaign
type CampaignData struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Status      CampaignStatus `json:"status"`
	StartDate   string         `json:"startDate"`
	EndDate     string         `json:"endDate"`
	Budget      float64        `json:"budget"`
	Spent       float64        `json:"spent"`
	Impressions int64          `json:"impressions"`
	Clicks      int64          `json:"clicks"`
	Conversions int64          `json:"conversions"`
	CTR         float64        `json:"ctr"`
	CPC         float64        `json:"cpc"`
	ROI         float64        `json:"roi"`
	Channel     string         `json:"channel"`
}

// RevenueData is one day of the revenue series
type RevenueData struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Target  float64 `json:"target"`
	Growth  float64 `json:"growth"`
}

// ChannelData aggregates performance per marketing channel
type ChannelData struct {
	Channel        string  `json:"channel"`
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	Conversions    int64   `json:"conversions"`
	Revenue        float64 `json:"revenue"`
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conversionRate"`
	Cost           float64 `json:"cost"`
	ROI            float64 `json:"roi"`
}

// ConversionFunnelData is one stage of the user journey. Stages are ordered
// front to back by their position in the slice.
type ConversionFunnelData struct {
	Stage          string  `json:"stage"`
	Visitors       int64   `json:"visitors"`
	Conversions    int64   `json:"conversions"`
	ConversionRate float64 `json:"conversionRate"`
	DropOffRate    float64 `json:"dropOffRate"`
}

// AnalyticsData backs the reports page
type AnalyticsData struct {
	Campaigns        []CampaignData         `json:"campaigns"`
	RevenueData      []RevenueData          `json:"revenueData"`
	ChannelData      []ChannelData          `json:"channelData"`
	ConversionFunnel []ConversionFunnelData `json:"conversionFunnel"`
}

// ReportSummary is the headline block of the reports page. The values are
// display strings except TotalCampaigns.
type ReportSummary struct {
	TotalCampaigns int    `json:"totalCampaigns"`
	Impressions    string `json:"impressions"`
	Clicks         string `json:"clicks"`
	Revenue        string `json:"revenue"`
}

// AnalyticsResponse wraps analytics data for the reports page
type AnalyticsResponse struct {
	Success bool           `json:"success"`
	Data    *AnalyticsData `json:"data"`
	Message string         `json:"message,omitempty"`
}
