package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"marblecraft/internal/domain/entities"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatPrice renders a whole-dollar amount with US grouping, e.g. $3,550.
// Cents are rounded away for display only.
func FormatPrice(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "$0"
	}
	dollars := decimal.NewFromFloat(amount).Round(0).IntPart()
	if dollars < 0 {
		return usPrinter.Sprintf("-$%d", -dollars)
	}
	return usPrinter.Sprintf("$%d", dollars)
}

// PricePerSqFt divides by the area, treating areas below 1 as 1.
func PricePerSqFt(total, area float64) string {
	return FormatPrice(total / math.Max(area, 1))
}

// GenerateQuote renders a breakdown as the multi-line summary shown to visitors.
func GenerateQuote(b entities.PriceBreakdown, area float64) string {
	var sb strings.Builder

	sb.WriteString("Price Breakdown:\n")
	fmt.Fprintf(&sb, "• Base Labor: %s per sq ft\n", FormatPrice(b.BaseLabor))

	if b.DesignMultiplier != 1 {
		fmt.Fprintf(&sb, "• Design Premium: %s%% additional\n", formatPercent((b.DesignMultiplier-1)*100))
	}

	fmt.Fprintf(&sb, "• Area Coverage: %s sq ft = %s\n", formatArea(area), FormatPrice(b.AreaTotal))

	if selected := b.SelectedExtras(); len(selected) > 0 {
		sb.WriteString("• Additional Services:\n")
		for _, e := range selected {
			fmt.Fprintf(&sb, "  - %s: %s\n", e.Name, FormatPrice(e.Price))
		}
	}

	if b.PremiumTime > 0 {
		fmt.Fprintf(&sb, "• Premium Time Slot: %s\n", FormatPrice(b.PremiumTime))
	}

	fmt.Fprintf(&sb, "\nTotal: %s (%s per sq ft)", FormatPrice(b.Total), PricePerSqFt(b.Total, area))

	return sb.String()
}

// ShareText is the message used when a visitor shares or copies a quote.
func ShareText(serviceName, designName, quote, pageURL string) string {
	return fmt.Sprintf("%s with %s\n\n%s\n\nGet your quote at: %s", serviceName, designName, quote, pageURL)
}

// formatPercent renders a whole percentage, ties toward +Inf.
func formatPercent(p float64) string {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return "0"
	}
	return roundHalfUp(decimal.NewFromFloat(p)).String()
}

func formatArea(area float64) string {
	return strconv.FormatFloat(area, 'f', -1, 64)
}
