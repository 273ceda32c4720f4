package pricing

import (
	"fmt"
	"math"

	"marblecraft/internal/domain/entities"
)

const (
	durationBaseArea = 50.0
	hoursPerWorkDay  = 8.0
	areaPerExtraDay  = 100.0
)

// EstimatedDuration scales the service's base hours by area, using 50 sq ft as
// the base, and rounds up to whole hours.
func EstimatedDuration(service entities.Service, area float64) int {
	factor := math.Max(1, area/durationBaseArea)
	return int(math.Ceil(service.Duration * factor))
}

// ProjectTimeline describes how many days a project takes.
func ProjectTimeline(service entities.Service, area float64) string {
	baseDays := math.Ceil(service.Duration / hoursPerWorkDay)
	areaDays := math.Ceil(area / areaPerExtraDay)
	totalDays := int(math.Max(1, baseDays+areaDays))

	switch {
	case totalDays == 1:
		return "Same day completion"
	case totalDays <= 3:
		return fmt.Sprintf("%d days", totalDays)
	case totalDays <= 7:
		return fmt.Sprintf("%d days (1 week)", totalDays)
	}

	weeks := (totalDays + 6) / 7
	plural := ""
	if weeks > 1 {
		plural = "s"
	}
	return fmt.Sprintf("%d week%s (%d days)", weeks, plural, totalDays)
}

// Complexity is the installation difficulty shown next to a service.
func Complexity(category entities.ServiceCategory) string {
	switch category {
	case entities.CategoryCountertops, entities.CategoryFlooring:
		return "Simple"
	case entities.CategoryWalls:
		return "Moderate"
	default:
		return "Complex"
	}
}

// BelowServiceMinimum reports whether a positive area is under the service's
// advertised minimum. The price is unaffected: the engine bills with the global
// MinimumArea.
func BelowServiceMinimum(service entities.Service, area float64) bool {
	return area > 0 && area < service.MinArea
}

// MinimumAreaWarning is the advisory text for BelowServiceMinimum, empty when
// it does not apply.
func MinimumAreaWarning(service entities.Service, area float64) string {
	if !BelowServiceMinimum(service, area) {
		return ""
	}
	return fmt.Sprintf("Minimum area for this service is %s sq ft. Minimum charge of %s will apply.",
		formatArea(service.MinArea), FormatPrice(MinimumCharge))
}
