package catalog

import (
	"slices"
	"strings"

	"marblecraft/internal/domain/entities"

	"github.com/samber/lo"
)

const (
	budgetMultiplierMax  = 1.0
	premiumMultiplierMin = 1.5
)

// Display bands used by PriceCategory and the gallery filter. They are not the
// same thresholds as BudgetDesigns/PremiumDesigns.
const (
	bandBudgetMax   = 1.0
	bandStandardMax = 1.3
	bandPremiumMax  = 1.6
)

type PriceBand string

const (
	PriceBandBudget   PriceBand = "budget"
	PriceBandStandard PriceBand = "standard"
	PriceBandPremium  PriceBand = "premium"
	PriceBandLuxury   PriceBand = "luxury"
)

var priceBandLabels = map[PriceBand]string{
	PriceBandBudget:   "Budget-Friendly",
	PriceBandStandard: "Standard",
	PriceBandPremium:  "Premium",
	PriceBandLuxury:   "Luxury",
}

func (b PriceBand) IsValid() bool {
	_, ok := priceBandLabels[b]
	return ok
}

func (b PriceBand) Label() string {
	return priceBandLabels[b]
}

// BandOf maps a multiplier to its display band.
func BandOf(multiplier float64) PriceBand {
	switch {
	case multiplier <= bandBudgetMax:
		return PriceBandBudget
	case multiplier <= bandStandardMax:
		return PriceBandStandard
	case multiplier <= bandPremiumMax:
		return PriceBandPremium
	default:
		return PriceBandLuxury
	}
}

// PriceCategory returns the display label for a multiplier:
// Budget-Friendly, Standard, Premium or Luxury.
func PriceCategory(multiplier float64) string {
	return BandOf(multiplier).Label()
}

var popularDesignIDs = []string{"carrara_classic", "calacatta_gold", "emperador_dark", "nero_marquina"}

var recommendedDesignIDs = map[entities.ServiceCategory][]string{
	entities.CategoryFlooring:    {"carrara_classic", "botticino_classic", "gray_cloud", "turkish_cream"},
	entities.CategoryCountertops: {"calacatta_gold", "quartz_calacatta", "quartz_carrara", "thassos_pure"},
	entities.CategoryWalls:       {"nero_marquina", "rosso_verona", "verde_guatemala", "calacatta_gold"},
	entities.CategoryBathrooms:   {"thassos_pure", "carrara_classic", "quartz_carrara", "gray_cloud"},
}

// DesignByID reports false when no design has the id.
func (s *Store) DesignByID(id string) (entities.MarbleDesign, bool) {
	i, ok := s.designIndex[id]
	if !ok {
		return entities.MarbleDesign{}, false
	}
	return s.designs[i], true
}

// DesignsByType matches the type exactly.
func (s *Store) DesignsByType(designType string) []entities.MarbleDesign {
	return s.filterDesigns(func(d entities.MarbleDesign) bool {
		return d.Type == designType
	})
}

// DesignsByColor matches a case-insensitive substring of the color.
func (s *Store) DesignsByColor(color string) []entities.MarbleDesign {
	c := strings.ToLower(color)
	return s.filterDesigns(func(d entities.MarbleDesign) bool {
		return containsFold(d.Color, c)
	})
}

func (s *Store) BudgetDesigns() []entities.MarbleDesign {
	return s.filterDesigns(func(d entities.MarbleDesign) bool {
		return d.PriceMultiplier <= budgetMultiplierMax
	})
}

func (s *Store) PremiumDesigns() []entities.MarbleDesign {
	return s.filterDesigns(func(d entities.MarbleDesign) bool {
		return d.PriceMultiplier >= premiumMultiplierMin
	})
}

func (s *Store) PopularDesigns() []entities.MarbleDesign {
	return s.designsWithIDs(popularDesignIDs)
}

// RecommendedDesigns picks designs suited to a service category. Categories
// without a curated list (stairs, unknown values) get the popular designs.
func (s *Store) RecommendedDesigns(category string) []entities.MarbleDesign {
	ids, ok := recommendedDesignIDs[entities.ServiceCategory(strings.ToLower(category))]
	if !ok {
		return s.PopularDesigns()
	}
	return s.designsWithIDs(ids)
}

// SearchDesigns matches name, description, color and pattern,
// case-insensitively. An empty query matches everything.
func (s *Store) SearchDesigns(query string) []entities.MarbleDesign {
	q := strings.ToLower(query)
	return s.filterDesigns(func(d entities.MarbleDesign) bool {
		return containsFold(d.Name, q) ||
			containsFold(d.Description, q) ||
			containsFold(d.Color, q) ||
			containsFold(d.Pattern, q)
	})
}

// DesignFilter is the combined gallery filter. Zero fields do not filter.
type DesignFilter struct {
	Query     string
	Color     string
	Origin    string
	PriceBand PriceBand
	Limit     int
}

// FilterDesigns applies every non-empty criterion of f. Query matches name,
// description and color; Color is a substring; Origin is exact.
func (s *Store) FilterDesigns(f DesignFilter) []entities.MarbleDesign {
	q := strings.ToLower(f.Query)
	c := strings.ToLower(f.Color)
	out := s.filterDesigns(func(d entities.MarbleDesign) bool {
		matchesQuery := containsFold(d.Name, q) || containsFold(d.Description, q) || containsFold(d.Color, q)
		matchesColor := c == "" || containsFold(d.Color, c)
		matchesOrigin := f.Origin == "" || d.Origin == f.Origin
		matchesBand := f.PriceBand == "" || BandOf(d.PriceMultiplier) == f.PriceBand
		return matchesQuery && matchesColor && matchesOrigin && matchesBand
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}

func (s *Store) AllColors() []string {
	return s.distinct(func(d entities.MarbleDesign) string { return d.Color })
}

func (s *Store) AllOrigins() []string {
	return s.distinct(func(d entities.MarbleDesign) string { return d.Origin })
}

func (s *Store) AllPatterns() []string {
	return s.distinct(func(d entities.MarbleDesign) string { return d.Pattern })
}

func (s *Store) distinct(field func(entities.MarbleDesign) string) []string {
	values := lo.Uniq(lo.Map(s.designs, func(d entities.MarbleDesign, _ int) string { return field(d) }))
	slices.Sort(values)
	return values
}

func (s *Store) designsWithIDs(ids []string) []entities.MarbleDesign {
	return s.filterDesigns(func(d entities.MarbleDesign) bool {
		return lo.Contains(ids, d.ID)
	})
}

func (s *Store) filterDesigns(keep func(entities.MarbleDesign) bool) []entities.MarbleDesign {
	return lo.Filter(s.designs, func(d entities.MarbleDesign, _ int) bool { return keep(d) })
}
