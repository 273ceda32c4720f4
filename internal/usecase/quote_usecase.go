package usecase

import (
	"errors"
	"math"
	"strings"

	"marblecraft/internal/domain/catalog"
	"marblecraft/internal/domain/entities"
	"marblecraft/internal/domain/pricing"
)

var ErrInvalidArea = errors.New("invalid area")

// QuoteCommand is a visitor's project selection.
//
// Area is passed to the pricing engine as-is: zero, negative and
// below-minimum areas are normalized by the engine's floors, not rejected.
// TimeSlot wins over Premium when both are set.
type QuoteCommand struct {
	ServiceID string
	DesignID  string
	Area      float64
	Premium   bool
	TimeSlot  *entities.TimeSlot
	ExtraIDs  []string
}

// Quote is a priced selection plus everything the quote page renders. It is
// returned to the caller and never stored.
type Quote struct {
	Service        entities.Service
	Design         entities.MarbleDesign
	Area           float64
	Breakdown      entities.PriceBreakdown
	ExtrasTotal    float64
	PriceCategory  string
	EstimatedHours int
	Timeline       string
	Warning        string
	Summary        string
	ShareText      string
	BookingURL     string
	CalculatorURL  string
}

// IQuoteUseCase prices a selection by catalog ids.
type IQuoteUseCase interface {
	Calculate(cmd QuoteCommand) (Quote, error)
}

type QuoteUseCase struct {
	store          *catalog.Store
	bookingBase    string
	calculatorBase string
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(store *catalog.Store, bookingBase, calculatorBase string) *QuoteUseCase {
	return &QuoteUseCase{store: store, bookingBase: bookingBase, calculatorBase: calculatorBase}
}

func (u *QuoteUseCase) Calculate(cmd QuoteCommand) (Quote, error) {
	serviceID := strings.TrimSpace(cmd.ServiceID)
	if serviceID == "" {
		return Quote{}, ErrInvalidServiceID
	}
	designID := strings.TrimSpace(cmd.DesignID)
	if designID == "" {
		return Quote{}, ErrInvalidDesignID
	}
	if math.IsNaN(cmd.Area) || math.IsInf(cmd.Area, 0) {
		return Quote{}, ErrInvalidArea
	}

	service, ok := u.store.ServiceByID(serviceID)
	if !ok {
		return Quote{}, ErrServiceNotFound
	}
	design, ok := u.store.DesignByID(designID)
	if !ok {
		return Quote{}, ErrDesignNotFound
	}

	slot := cmd.TimeSlot
	if slot == nil && cmd.Premium {
		slot = &entities.TimeSlot{Premium: true}
	}

	breakdown := pricing.Calculate(service, design, cmd.Area, slot, cmd.ExtraIDs)
	summary := pricing.GenerateQuote(breakdown, cmd.Area)
	calculatorURL := pricing.CalculatorURL(u.calculatorBase, service.ID, design.ID, cmd.Area)

	return Quote{
		Service:        service,
		Design:         design,
		Area:           cmd.Area,
		Breakdown:      breakdown,
		ExtrasTotal:    pricing.Round2(pricing.ExtrasTotal(breakdown.Extras, pricing.EffectiveArea(cmd.Area))),
		PriceCategory:  catalog.PriceCategory(design.PriceMultiplier),
		EstimatedHours: pricing.EstimatedDuration(service, cmd.Area),
		Timeline:       pricing.ProjectTimeline(service, cmd.Area),
		Warning:        pricing.MinimumAreaWarning(service, cmd.Area),
		Summary:        summary,
		ShareText:      pricing.ShareText(service.Name, design.Name, summary, calculatorURL),
		BookingURL:     pricing.BookingURL(u.bookingBase, service.ID, design.ID, cmd.Area),
		CalculatorURL:  calculatorURL,
	}, nil
}
