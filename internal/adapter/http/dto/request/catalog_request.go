package request

import (
	"strings"

	"marblecraft/internal/domain/catalog"
)

type ListServicesQuery struct {
	Category string `form:"category" binding:"omitempty,catalog_category"`
	Query    string `form:"q"`
}

type ListDesignsQuery struct {
	Query  string `form:"q"`
	Color  string `form:"color"`
	Origin string `form:"origin"`
	Price  string `form:"price" binding:"omitempty,price_band"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (q ListDesignsQuery) ToFilter() catalog.DesignFilter {
	return catalog.DesignFilter{
		Query:     strings.TrimSpace(q.Query),
		Color:     strings.TrimSpace(q.Color),
		Origin:    strings.TrimSpace(q.Origin),
		PriceBand: catalog.PriceBand(strings.ToLower(strings.TrimSpace(q.Price))),
		Limit:     q.Limit,
	}
}
