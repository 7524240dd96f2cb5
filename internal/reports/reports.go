// Package reports computes the summary figures shown above the charts and
// tables of the reports page.
package reports

import (
	"strings"

	"github.com/admybrand/dashboard-backend/internal/models"
)

// RevenueSummary aggregates the revenue series
type RevenueSummary struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalTarget       float64 `json:"totalTarget"`
	AverageGrowth     float64 `json:"averageGrowth"`
	TargetAchievement float64 `json:"targetAchievement"`
	Days              int     `json:"days"`
}

// SummarizeRevenue totals the series. Averages of an empty series are zero.
func SummarizeRevenue(series []models.RevenueData) RevenueSummary {
	s := RevenueSummary{Days: len(series)}
	if len(series) == 0 {
		return s
	}

	var growth float64
	for _, d := range series {
		s.TotalRevenue += d.Revenue
		s.TotalTarget += d.Target
		growth += d.Growth
	}
	s.AverageGrowth = growth / float64(len(series))
	if s.TotalTarget != 0 {
		s.TargetAchievement = s.TotalRevenue / s.TotalTarget * 100
	}
	return s
}

// ChannelSummary aggregates channel performance
type ChannelSummary struct {
	TotalRevenue float64 `json:"totalRevenue"`
	BestChannel  string  `json:"bestChannel,omitempty"`
	BestROI      float64 `json:"bestRoi"`
	AverageROI   float64 `json:"averageRoi"`
	Channels     int     `json:"channels"`
}

// SummarizeChannels picks the first channel with the strictly highest ROI.
func SummarizeChannels(channels []models.ChannelData) ChannelSummary {
	s := ChannelSummary{Channels: len(channels)}
	if len(channels) == 0 {
		return s
	}

	best := channels[0]
	var roi float64
	for _, c := range channels {
		s.TotalRevenue += c.Revenue
		roi += c.ROI
		if c.ROI > best.ROI {
			best = c
		}
	}
	s.BestChannel = best.Channel
	s.BestROI = best.ROI
	s.AverageROI = roi / float64(len(channels))
	return s
}

// CampaignRow is a campaign with its budget utilisation
type CampaignRow struct {
	models.CampaignData
	BudgetUsed float64 `json:"budgetUsed"`
}

// BudgetUsed is spent as a percentage of budget, zero without a budget.
func BudgetUsed(c models.CampaignData) float64 {
	if c.Budget == 0 {
		return 0
	}
	return c.Spent / c.Budget * 100
}

// CampaignRows annotates campaigns with budget utilisation.
func CampaignRows(campaigns []models.CampaignData) []CampaignRow {
	rows := make([]CampaignRow, len(campaigns))
	for i, c := range campaigns {
		rows[i] = CampaignRow{CampaignData: c, BudgetUsed: BudgetUsed(c)}
	}
	return rows
}

// Direction is the sign of a KPI trend
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionFlat Direction = "flat"
)

// TrendDirection reads only the leading character of a pre-formatted trend.
func TrendDirection(trend string) Direction {
	switch {
	case strings.HasPrefix(trend, "+"):
		return DirectionUp
	case strings.HasPrefix(trend, "-"):
		return DirectionDown
	default:
		return DirectionFlat
	}
}

// KpiCard is a KPI with its trend direction
type KpiCard struct {
	models.KpiData
	Direction Direction `json:"direction"`
}

// KpiCards annotates KPIs with their trend direction.
func KpiCards(kpis []models.KpiData) []KpiCard {
	cards := make([]KpiCard, len(kpis))
	for i, k := range kpis {
		cards[i] = KpiCard{KpiData: k, Direction: TrendDirection(k.Trend)}
	}
	return cards
}
