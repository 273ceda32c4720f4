package entities

import (
	"fmt"
	"strings"
)

// MarbleDesign is a finish/material option applied on top of a Service.
//
// Only PriceMultiplier affects price (1.0 = standard). Color, Pattern, Origin and
// Type exist for filtering and search.
type MarbleDesign struct {
	ID              string  `json:"id" dynamodbav:"id"`
	Name            string  `json:"name" dynamodbav:"name"`
	Type            string  `json:"type" dynamodbav:"type"`
	Image           string  `json:"image" dynamodbav:"image"`
	Description     string  `json:"description" dynamodbav:"description"`
	PriceMultiplier float64 `json:"price_multiplier" dynamodbav:"price_multiplier"`
	Color           string  `json:"color" dynamodbav:"color"`
	Pattern         string  `json:"pattern" dynamodbav:"pattern"`
	Origin          string  `json:"origin" dynamodbav:"origin"`
}

func (d MarbleDesign) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidDesignRecord)
	}
	if d.PriceMultiplier <= 0 {
		return fmt.Errorf("%w: %s: price multiplier must be positive", ErrInvalidDesignRecord, d.ID)
	}
	return nil
}
