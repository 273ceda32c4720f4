// Package pricing turns a service, a design, an area, a time slot and a set of
// extras into an itemized price breakdown.
//
// Calculate is pure: no I/O, no shared state, and it never fails. Degenerate
// areas (zero, negative, below a service's advertised minimum) are normalized by
// the global floors instead of being rejected; input validation belongs to the
// caller.
package pricing

import (
	"math"

	"marblecraft/internal/domain/entities"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const (
	// MinimumArea is the billing floor for every service. Service.MinArea is
	// advisory only and does not change the price.
	MinimumArea = 10.0
	// MinimumCharge is the floor applied to the design-adjusted area product.
	MinimumCharge = 250.0
	// PremiumTimeMultiplier applies to the subtotal for premium time slots.
	PremiumTimeMultiplier = 1.2
	// EdgeLinearFootRatio estimates linear feet of edge from the billed area.
	EdgeLinearFootRatio = 0.4
)

const (
	ExtraMaterialDelivery = "material_delivery"
	ExtraOldRemoval       = "old_removal"
	ExtraEdgeFinishing    = "edge_finishing"
	ExtraSealing          = "sealing"
	ExtraSameDay          = "same_day"
	ExtraWeekend          = "weekend"
)

var standardExtras = []entities.PriceExtra{
	{
		ID:          ExtraMaterialDelivery,
		Name:        "Material Delivery",
		Description: "Professional delivery and handling of marble materials",
		Price:       50,
		Kind:        entities.FlatFee(),
	},
	{
		ID:          ExtraOldRemoval,
		Name:        "Old Surface Removal",
		Description: "Removal and disposal of existing surface material",
		Price:       5,
		Kind:        entities.PerArea(),
	},
	{
		ID:          ExtraEdgeFinishing,
		Name:        "Premium Edge Finishing",
		Description: "Professional edge polishing and finishing",
		Price:       8,
		Kind:        entities.PerEstimatedLinearFoot(EdgeLinearFootRatio),
	},
	{
		ID:          ExtraSealing,
		Name:        "Protective Sealing",
		Description: "High-quality sealing for long-lasting protection",
		Price:       3,
		Kind:        entities.PerArea(),
	},
	{
		ID:          ExtraSameDay,
		Name:        "Same Day Service",
		Description: "Priority same-day service completion",
		Price:       100,
		Kind:        entities.FlatFee(),
	},
	{
		ID:          ExtraWeekend,
		Name:        "Weekend Service",
		Description: "Weekend or holiday service availability",
		Price:       75,
		Kind:        entities.FlatFee(),
	},
}

// StandardExtras returns a copy of the canonical extras, none selected.
func StandardExtras() []entities.PriceExtra {
	return append(make([]entities.PriceExtra, 0, len(standardExtras)), standardExtras...)
}

// EffectiveArea applies the global minimum area.
func EffectiveArea(area float64) float64 {
	return math.Max(area, MinimumArea)
}

// Calculate prices a project. timeSlot may be nil. Unknown extra ids are
// ignored.
func Calculate(
	service entities.Service,
	design entities.MarbleDesign,
	area float64,
	timeSlot *entities.TimeSlot,
	selectedExtraIDs []string,
) entities.PriceBreakdown {
	effectiveArea := EffectiveArea(area)

	laborWithDesign := service.BasePrice * design.PriceMultiplier
	areaProduct := laborWithDesign * effectiveArea
	subtotal := math.Max(areaProduct, MinimumCharge)

	extras := annotateExtras(selectedExtraIDs)
	extrasTotal := ExtrasTotal(extras, effectiveArea)

	premiumTime := 0.0
	if timeSlot != nil && timeSlot.Premium {
		premiumTime = subtotal * (PremiumTimeMultiplier - 1)
	}

	return entities.PriceBreakdown{
		BaseLabor:        service.BasePrice,
		DesignMultiplier: design.PriceMultiplier,
		AreaTotal:        subtotal,
		Extras:           extras,
		PremiumTime:      premiumTime,
		Total:            Round2(subtotal + extrasTotal + premiumTime),
	}
}

// ExtrasTotal sums the contributions of the selected extras.
func ExtrasTotal(extras []entities.PriceExtra, effectiveArea float64) float64 {
	total := 0.0
	for _, e := range extras {
		if e.Selected {
			total += e.Contribution(effectiveArea)
		}
	}
	return total
}

var (
	half    = decimal.NewFromFloat(0.5)
	hundred = decimal.NewFromInt(100)
)

// Round2 rounds to cents as floor(v*100 + 0.5) / 100: the scaling happens in
// float64 and ties go toward +Inf. Non-finite values pass through.
func Round2(v float64) float64 {
	scaled := v * 100
	if math.IsNaN(scaled) || math.IsInf(scaled, 0) {
		return v
	}
	return roundHalfUp(decimal.NewFromFloat(scaled)).Div(hundred).InexactFloat64()
}

// roundHalfUp rounds to an integer, ties toward +Inf.
func roundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Add(half).Floor()
}

func annotateExtras(selectedIDs []string) []entities.PriceExtra {
	extras := StandardExtras()
	for i := range extras {
		extras[i].Selected = lo.Contains(selectedIDs, extras[i].ID)
	}
	return extras
}
