package reports

import "github.com/admybrand/dashboard-backend/internal/models"

// FunnelSummary aggregates the conversion funnel
type FunnelSummary struct {
	Stages                int     `json:"stages"`
	TotalVisitors         int64   `json:"totalVisitors"`
	FinalConversions      int64   `json:"finalConversions"`
	OverallConversionRate float64 `json:"overallConversionRate"`
	TotalDropOffRate      float64 `json:"totalDropOffRate"`
	BiggestDropOffStage   string  `json:"biggestDropOffStage,omitempty"`
	BestConversionStage   string  `json:"bestConversionStage,omitempty"`
}

// SummarizeFunnel compares the last stage's conversions with the first
// stage's visitors. The stage pickers keep the earliest stage on ties.
func SummarizeFunnel(stages []models.ConversionFunnelData) FunnelSummary {
	s := FunnelSummary{Stages: len(stages)}
	if len(stages) == 0 {
		return s
	}

	first, last := stages[0], stages[len(stages)-1]
	s.TotalVisitors = first.Visitors
	s.FinalConversions = last.Conversions
	if first.Visitors != 0 {
		s.OverallConversionRate = float64(last.Conversions) / float64(first.Visitors) * 100
		s.TotalDropOffRate = float64(first.Visitors-last.Conversions) / float64(first.Visitors) * 100
	}

	biggestDrop, bestConversion := stages[0], stages[0]
	for _, st := range stages {
		if st.DropOffRate > biggestDrop.DropOffRate {
			biggestDrop = st
		}
		if st.ConversionRate > bestConversion.ConversionRate {
			bestConversion = st
		}
	}
	s.BiggestDropOffStage = biggestDrop.Stage
	s.BestConversionStage = bestConversion.Stage
	return s
}

// DeriveFunnel recomputes the rate columns from visitor and conversion counts:
// conversionRate of stage N is conversions(N) / visitors(0) and dropOffRate of
// stage N is the share of its visitors missing from stage N+1. The last stage
// has no successor and gets a drop-off of zero. The input is not modified.
func DeriveFunnel(stages []models.ConversionFunnelData) []models.ConversionFunnelData {
	out := make([]models.ConversionFunnelData, len(stages))
	copy(out, stages)
	if len(out) == 0 {
		return out
	}

	start := out[0].Visitors
	for i := range out {
		out[i].ConversionRate = 0
		if start != 0 {
			out[i].ConversionRate = float64(out[i].Conversions) / float64(start) * 100
		}

		out[i].DropOffRate = 0
		if i < len(out)-1 && out[i].Visitors != 0 {
			out[i].DropOffRate = float64(out[i].Visitors-out[i+1].Visitors) / float64(out[i].Visitors) * 100
		}
	}
	return out
}
