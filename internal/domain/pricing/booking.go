package pricing

import (
	"net/url"
	"strings"
)

const (
	DefaultBookingPath    = "/book"
	DefaultCalculatorPath = "/calculator"
)

// BookingURL encodes a quote selection as query parameters of the booking
// page, in the order service, design, area. Empty ids are left out.
func BookingURL(base, serviceID, designID string, area float64) string {
	return handoffURL(base, DefaultBookingPath, serviceID, designID, area)
}

// CalculatorURL is the shareable link that reopens the calculator with the
// same selection.
func CalculatorURL(base, serviceID, designID string, area float64) string {
	return handoffURL(base, DefaultCalculatorPath, serviceID, designID, area)
}

func handoffURL(base, fallback, serviceID, designID string, area float64) string {
	if base == "" {
		base = fallback
	}

	params := make([]string, 0, 3)
	if serviceID != "" {
		params = append(params, "service="+url.QueryEscape(serviceID))
	}
	if designID != "" {
		params = append(params, "design="+url.QueryEscape(designID))
	}
	params = append(params, "area="+url.QueryEscape(formatArea(area)))

	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + strings.Join(params, "&")
}
