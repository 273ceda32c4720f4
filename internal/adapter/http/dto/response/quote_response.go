package response

import (
	"marblecraft/internal/domain/pricing"
	"marblecraft/internal/usecase"
)

type BreakdownResponse struct {
	BaseLabor        float64         `json:"base_labor"`
	DesignMultiplier float64         `json:"design_multiplier"`
	AreaTotal        float64         `json:"area_total"`
	Extras           []ExtraResponse `json:"extras"`
	ExtrasTotal      float64         `json:"extras_total"`
	PremiumTime      float64         `json:"premium_time"`
	Total            float64         `json:"total"`
}

type QuoteResponse struct {
	Service        ServiceResponse   `json:"service"`
	Design         DesignResponse    `json:"design"`
	Area           float64           `json:"area"`
	Breakdown      BreakdownResponse `json:"breakdown"`
	FormattedTotal string            `json:"formatted_total"`
	PricePerSqFt   string            `json:"price_per_sq_ft"`
	PriceCategory  string            `json:"price_category"`
	EstimatedHours int               `json:"estimated_hours"`
	Timeline       string            `json:"timeline"`
	Warning        string            `json:"warning,omitempty"`
	Summary        string            `json:"summary"`
	ShareText      string            `json:"share_text"`
	BookingURL     string            `json:"booking_url"`
	CalculatorURL  string            `json:"calculator_url"`
}

func FromQuote(q usecase.Quote) QuoteResponse {
	b := q.Breakdown
	return QuoteResponse{
		Service: FromService(q.Service),
		Design:  FromDesign(q.Design),
		Area:    q.Area,
		Breakdown: BreakdownResponse{
			BaseLabor:        b.BaseLabor,
			DesignMultiplier: b.DesignMultiplier,
			AreaTotal:        pricing.Round2(b.AreaTotal),
			Extras:           FromExtras(b.Extras),
			ExtrasTotal:      q.ExtrasTotal,
			PremiumTime:      pricing.Round2(b.PremiumTime),
			Total:            b.Total,
		},
		FormattedTotal: pricing.FormatPrice(b.Total),
		PricePerSqFt:   pricing.PricePerSqFt(b.Total, q.Area),
		PriceCategory:  q.PriceCategory,
		EstimatedHours: q.EstimatedHours,
		Timeline:       q.Timeline,
		Warning:        q.Warning,
		Summary:        q.Summary,
		ShareText:      q.ShareText,
		BookingURL:     q.BookingURL,
		CalculatorURL:  q.CalculatorURL,
	}
}
