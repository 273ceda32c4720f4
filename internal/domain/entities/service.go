package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidServiceRecord = errors.New("invalid service record")
	ErrInvalidDesignRecord  = errors.New("invalid design record")
)

// ServiceCategory is the closed set of installation categories offered.
type ServiceCategory string

const (
	CategoryFlooring    ServiceCategory = "flooring"
	CategoryCountertops ServiceCategory = "countertops"
	CategoryWalls       ServiceCategory = "walls"
	CategoryStairs      ServiceCategory = "stairs"
	CategoryBathrooms   ServiceCategory = "bathrooms"
)

var categoryDisplayNames = map[ServiceCategory]string{
	CategoryFlooring:    "Flooring",
	CategoryCountertops: "Countertops",
	CategoryWalls:       "Wall Cladding",
	CategoryStairs:      "Staircases",
	CategoryBathrooms:   "Bathroom Suites",
}

// AllCategories returns every category in declaration order.
func AllCategories() []ServiceCategory {
	return []ServiceCategory{
		CategoryFlooring,
		CategoryCountertops,
		CategoryWalls,
		CategoryStairs,
		CategoryBathrooms,
	}
}

func (c ServiceCategory) IsValid() bool {
	_, ok := categoryDisplayNames[c]
	return ok
}

// DisplayName falls back to the raw value for categories outside the enum.
func (c ServiceCategory) DisplayName() string {
	if name, ok := categoryDisplayNames[c]; ok {
		return name
	}
	return string(c)
}

// Service is a purchasable installation offering.
//
// Pricing notes:
//   - BasePrice is per square foot, before the design multiplier.
//   - MinArea is shown to visitors as the recommended minimum; billing uses the
//     global minimum area of the pricing engine instead.
//   - Duration is base labor hours.
type Service struct {
	ID          string          `json:"id" dynamodbav:"id"`
	Name        string          `json:"name" dynamodbav:"name"`
	Description string          `json:"description" dynamodbav:"description"`
	BasePrice   float64         `json:"base_price" dynamodbav:"base_price"`
	Category    ServiceCategory `json:"category" dynamodbav:"category"`
	Duration    float64         `json:"duration" dynamodbav:"duration"`
	Image       string          `json:"image" dynamodbav:"image"`
	Features    []string        `json:"features" dynamodbav:"features"`
	MinArea     float64         `json:"min_area" dynamodbav:"min_area"`
}

func (s Service) Validate() error {
	switch {
	case strings.TrimSpace(s.ID) == "":
		return fmt.Errorf("%w: empty id", ErrInvalidServiceRecord)
	case s.BasePrice <= 0:
		return fmt.Errorf("%w: %s: base price must be positive", ErrInvalidServiceRecord, s.ID)
	case s.MinArea <= 0:
		return fmt.Errorf("%w: %s: min area must be positive", ErrInvalidServiceRecord, s.ID)
	case s.Duration <= 0:
		return fmt.Errorf("%w: %s: duration must be positive", ErrInvalidServiceRecord, s.ID)
	case !s.Category.IsValid():
		return fmt.Errorf("%w: %s: unknown category %q", ErrInvalidServiceRecord, s.ID, s.Category)
	}
	return nil
}
