package response

import (
	"marblecraft/internal/domain/catalog"
	"marblecraft/internal/domain/entities"
	"marblecraft/internal/domain/pricing"
	"marblecraft/internal/usecase"

	"github.com/samber/lo"
)

type ServiceResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	BasePrice       float64  `json:"base_price"`
	Category        string   `json:"category"`
	CategoryDisplay string   `json:"category_display"`
	Duration        float64  `json:"duration"`
	Image           string   `json:"image"`
	Features        []string `json:"features"`
	MinArea         float64  `json:"min_area"`
	Complexity      string   `json:"complexity"`
	Timeline        string   `json:"timeline"`
}

type DesignResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	Image           string  `json:"image"`
	Description     string  `json:"description"`
	PriceMultiplier float64 `json:"price_multiplier"`
	Color           string  `json:"color"`
	Pattern         string  `json:"pattern"`
	Origin          string  `json:"origin"`
	PriceCategory   string  `json:"price_category"`
}

type ExtraResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	Unit            string  `json:"unit"`
	LinearFootRatio float64 `json:"linear_foot_ratio,omitempty"`
	Selected        bool    `json:"selected"`
}

type FacetsResponse struct {
	Colors   []string `json:"colors"`
	Origins  []string `json:"origins"`
	Patterns []string `json:"patterns"`
}

// FromService fills the timeline for the service's own minimum area.
func FromService(s entities.Service) ServiceResponse {
	features := s.Features
	if features == nil {
		features = []string{}
	}
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		BasePrice:       s.BasePrice,
		Category:        string(s.Category),
		CategoryDisplay: s.Category.DisplayName(),
		Duration:        s.Duration,
		Image:           s.Image,
		Features:        features,
		MinArea:         s.MinArea,
		Complexity:      pricing.Complexity(s.Category),
		Timeline:        pricing.ProjectTimeline(s, s.MinArea),
	}
}

func FromServices(services []entities.Service) []ServiceResponse {
	return lo.Map(services, func(s entities.Service, _ int) ServiceResponse { return FromService(s) })
}

func FromDesign(d entities.MarbleDesign) DesignResponse {
	return DesignResponse{
		ID:              d.ID,
		Name:            d.Name,
		Type:            d.Type,
		Image:           d.Image,
		Description:     d.Description,
		PriceMultiplier: d.PriceMultiplier,
		Color:           d.Color,
		Pattern:         d.Pattern,
		Origin:          d.Origin,
		PriceCategory:   catalog.PriceCategory(d.PriceMultiplier),
	}
}

func FromDesigns(designs []entities.MarbleDesign) []DesignResponse {
	return lo.Map(designs, func(d entities.MarbleDesign, _ int) DesignResponse { return FromDesign(d) })
}

func FromExtra(e entities.PriceExtra) ExtraResponse {
	return ExtraResponse{
		ID:              e.ID,
		Name:            e.Name,
		Description:     e.Description,
		Price:           e.Price,
		Unit:            string(e.Kind.Unit),
		LinearFootRatio: e.Kind.LinearFootRatio,
		Selected:        e.Selected,
	}
}

func FromExtras(extras []entities.PriceExtra) []ExtraResponse {
	return lo.Map(extras, func(e entities.PriceExtra, _ int) ExtraResponse { return FromExtra(e) })
}

func FromFacets(f usecase.DesignFacets) FacetsResponse {
	return FacetsResponse{Colors: f.Colors, Origins: f.Origins, Patterns: f.Patterns}
}
