package pricing

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"marblecraft/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func svc(basePrice, minArea float64) entities.Service {
	return entities.Service{ID: "svc", BasePrice: basePrice, MinArea: minArea, Duration: 6, Category: entities.CategoryFlooring}
}

func design(multiplier float64) entities.MarbleDesign {
	return entities.MarbleDesign{ID: "dsg", PriceMultiplier: multiplier}
}

var premiumSlot = &entities.TimeSlot{ID: "evening", Premium: true}

func TestCalculate_Scenarios(t *testing.T) {
	tests := []struct {
		name        string
		service     entities.Service
		design      entities.MarbleDesign
		area        float64
		slot        *entities.TimeSlot
		extras      []string
		areaTotal   float64
		premiumTime float64
		total       float64
	}{
		{
			name:      "plain project",
			service:   svc(25, 15),
			design:    design(1.2),
			area:      100,
			areaTotal: 3000,
			total:     3000,
		},
		{
			name:      "area below the global floor",
			service:   svc(25, 15),
			design:    design(1.2),
			area:      2,
			areaTotal: 300,
			total:     300,
		},
		{
			name:      "minimum charge",
			service:   svc(10, 15),
			design:    design(1.0),
			area:      5,
			areaTotal: 250,
			total:     250,
		},
		{
			name:      "flat and per-area extras",
			service:   svc(25, 15),
			design:    design(1.2),
			area:      100,
			extras:    []string{ExtraMaterialDelivery, ExtraOldRemoval},
			areaTotal: 3000,
			total:     3550,
		},
		{
			name:        "premium time slot",
			service:     svc(25, 15),
			design:      design(1.2),
			area:        100,
			slot:        premiumSlot,
			areaTotal:   3000,
			premiumTime: 600,
			total:       3600,
		},
		{
			name:      "edge finishing per estimated linear foot",
			service:   svc(25, 15),
			design:    design(1.0),
			area:      100,
			extras:    []string{ExtraEdgeFinishing},
			areaTotal: 2500,
			total:     2500 + 8*40,
		},
		{
			name:      "unknown extra ids are ignored",
			service:   svc(25, 15),
			design:    design(1.0),
			area:      100,
			extras:    []string{"gold_leaf", ExtraWeekend},
			areaTotal: 2500,
			total:     2575,
		},
		{
			name:      "negative area bills the floor",
			service:   svc(30, 12),
			design:    design(1.0),
			area:      -40,
			areaTotal: 300,
			total:     300,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.service, tt.design, tt.area, tt.slot, tt.extras)
			assert.Equal(t, tt.service.BasePrice, got.BaseLabor)
			assert.Equal(t, tt.design.PriceMultiplier, got.DesignMultiplier)
			assert.InDelta(t, tt.areaTotal, got.AreaTotal, 1e-9)
			assert.InDelta(t, tt.premiumTime, got.PremiumTime, 1e-9)
			assert.Equal(t, tt.total, got.Total)
		})
	}
}

func TestCalculate_ExtrasAnnotated(t *testing.T) {
	got := Calculate(svc(25, 15), design(1.2), 100, nil, []string{ExtraSealing, ExtraSealing})

	require.Len(t, got.Extras, 6)
	ids := make([]string, 0, len(got.Extras))
	for _, e := range got.Extras {
		ids = append(ids, e.ID)
		assert.Equal(t, e.ID == ExtraSealing, e.Selected, e.ID)
	}
	assert.Equal(t, []string{
		ExtraMaterialDelivery, ExtraOldRemoval, ExtraEdgeFinishing, ExtraSealing, ExtraSameDay, ExtraWeekend,
	}, ids)
	assert.Equal(t, 3300.0, got.Total)

	for _, e := range StandardExtras() {
		assert.False(t, e.Selected, "canonical extras must stay unselected")
	}
}

func TestCalculate_GlobalFloorIgnoresServiceMinimum(t *testing.T) {
	// The stairs-like service advertises 40 sq ft, billing still floors at 10.
	got := Calculate(svc(45, 40), design(1.0), 12, nil, nil)
	assert.Equal(t, 540.0, got.Total)
	assert.True(t, BelowServiceMinimum(svc(45, 40), 12))
}

func TestCalculate_Determinism(t *testing.T) {
	a := Calculate(svc(35, 8), design(1.7), 33.3, premiumSlot, []string{ExtraEdgeFinishing, ExtraSameDay})
	b := Calculate(svc(35, 8), design(1.7), 33.3, premiumSlot, []string{ExtraEdgeFinishing, ExtraSameDay})
	assert.Equal(t, a, b)
	assert.Equal(t, math.Float64bits(a.Total), math.Float64bits(b.Total))
}

func TestCalculate_Monotonic(t *testing.T) {
	prev := Calculate(svc(25, 15), design(1.1), 10, nil, nil).Total
	for area := 11.0; area <= 500; area += 7 {
		cur := Calculate(svc(25, 15), design(1.1), area, nil, nil).Total
		assert.Greater(t, cur, prev, "area %v", area)
		prev = cur
	}
}

func TestExtrasTotal_Additive(t *testing.T) {
	e1 := []string{ExtraMaterialDelivery, ExtraEdgeFinishing}
	e2 := []string{ExtraOldRemoval, ExtraSealing, ExtraWeekend}
	area := EffectiveArea(37.5)

	sum := func(ids []string) float64 {
		return ExtrasTotal(annotateExtras(ids), area)
	}
	assert.InDelta(t, sum(e1)+sum(e2), sum(append(append([]string{}, e1...), e2...)), 1e-9)
}

func TestCalculate_PremiumRatio(t *testing.T) {
	for _, area := range []float64{0, 9, 10, 55.5, 1234} {
		got := Calculate(svc(40, 20), design(0.8), area, premiumSlot, []string{ExtraSameDay})
		assert.InDelta(t, got.AreaTotal*0.2, got.PremiumTime, 1e-9)

		off := Calculate(svc(40, 20), design(0.8), area, &entities.TimeSlot{Premium: false}, nil)
		assert.Zero(t, off.PremiumTime)
	}
}

func TestCalculate_TotalHasAtMostTwoDecimals(t *testing.T) {
	for _, area := range []float64{10.333, 17.777, 99.999, 123.456} {
		got := Calculate(svc(35, 8), design(1.3), area, premiumSlot, []string{ExtraEdgeFinishing, ExtraSealing})
		s := strconv.FormatFloat(got.Total, 'f', -1, 64)
		if i := strings.IndexByte(s, '.'); i >= 0 {
			assert.LessOrEqual(t, len(s)-i-1, 2, s)
		}
	}
}

func TestRound2(t *testing.T) {
	// 10.275*100 scales to exactly 1027.5; 250.17499999999998*100 to 25017.5.
	assert.Equal(t, 10.28, Round2(10.275))
	assert.Equal(t, 250.18, Round2(250.17499999999998))
	assert.Equal(t, 0.13, Round2(0.125))
	assert.Equal(t, -0.12, Round2(-0.125))
	assert.Equal(t, 3000.0, Round2(3000))
	assert.Equal(t, -1.23, Round2(-1.234))
	assert.True(t, math.IsNaN(Round2(math.NaN())))
	assert.True(t, math.IsInf(Round2(math.Inf(1)), 1))
	assert.Equal(t, math.MaxFloat64, Round2(math.MaxFloat64))
}

func TestCalculate_TotalRoundsScaledCents(t *testing.T) {
	tests := []struct {
		area  float64
		total float64
	}{
		{10.007, 250.18},
		{10.017, 250.43},
		{10.027, 250.68},
		{10.087, 252.18},
		{10.097, 252.43},
	}
	for _, tt := range tests {
		got := Calculate(svc(25, 15), design(1.0), tt.area, nil, nil)
		assert.Equal(t, tt.total, got.Total, "area %v", tt.area)
	}
}

func TestExtraKind_Quantity(t *testing.T) {
	assert.Equal(t, 1.0, entities.FlatFee().Quantity(80))
	assert.Equal(t, 80.0, entities.PerArea().Quantity(80))
	assert.InDelta(t, 32.0, entities.PerEstimatedLinearFoot(0.4).Quantity(80), 1e-9)
	assert.Zero(t, entities.ExtraKind{}.Quantity(80))
}
