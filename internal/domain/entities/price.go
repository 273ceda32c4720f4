package entities

import (
	"time"

	"github.com/samber/lo"
)

// ExtraUnit tells how an extra's price scales with the billed area.
type ExtraUnit string

const (
	ExtraUnitFlat                   ExtraUnit = "flat"
	ExtraUnitPerArea                ExtraUnit = "per_area"
	ExtraUnitPerEstimatedLinearFoot ExtraUnit = "per_estimated_linear_foot"
)

// ExtraKind is the pricing unit of an extra. For PerEstimatedLinearFoot the
// linear feet are estimated as effectiveArea * LinearFootRatio.
type ExtraKind struct {
	Unit            ExtraUnit `json:"unit"`
	LinearFootRatio float64   `json:"linear_foot_ratio,omitempty"`
}

func FlatFee() ExtraKind { return ExtraKind{Unit: ExtraUnitFlat} }

func PerArea() ExtraKind { return ExtraKind{Unit: ExtraUnitPerArea} }

func PerEstimatedLinearFoot(ratio float64) ExtraKind {
	return ExtraKind{Unit: ExtraUnitPerEstimatedLinearFoot, LinearFootRatio: ratio}
}

// Quantity is the number of billed units for the given effective area.
func (k ExtraKind) Quantity(effectiveArea float64) float64 {
	switch k.Unit {
	case ExtraUnitFlat:
		return 1
	case ExtraUnitPerArea:
		return effectiveArea
	case ExtraUnitPerEstimatedLinearFoot:
		return effectiveArea * k.LinearFootRatio
	default:
		return 0
	}
}

// PriceExtra is an optional add-on line item. Price is expressed in the unit
// given by Kind.
type PriceExtra struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Kind        ExtraKind `json:"kind"`
	Selected    bool      `json:"selected"`
}

func (e PriceExtra) Contribution(effectiveArea float64) float64 {
	return e.Price * e.Kind.Quantity(effectiveArea)
}

// TimeSlot describes when work would occur. Only Premium affects price.
type TimeSlot struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Available bool      `json:"available"`
	Premium   bool      `json:"premium"`
}

// PriceBreakdown is the output of the pricing engine.
//
// Field notes:
//   - AreaTotal is the subtotal after the design multiplier, area and the minimum
//     charge floor. It is not a raw area product.
//   - Extras holds every canonical extra, annotated with Selected for this quote.
//   - Total is rounded to 2 decimal places.
type PriceBreakdown struct {
	BaseLabor        float64      `json:"base_labor"`
	DesignMultiplier float64      `json:"design_multiplier"`
	AreaTotal        float64      `json:"area_total"`
	Extras           []PriceExtra `json:"extras"`
	PremiumTime      float64      `json:"premium_time"`
	Total            float64      `json:"total"`
}

func (b PriceBreakdown) SelectedExtras() []PriceExtra {
	return lo.Filter(b.Extras, func(e PriceExtra, _ int) bool { return e.Selected })
}
