package routes

import (
	"marblecraft/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServices = "/services"
	PathDesigns  = "/designs"
	PathExtras   = "/extras"
	PathQuotes   = "/quotes"
)

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	services := rg.Group(PathServices)
	{
		services.GET("", h.ListServices)
		services.GET("/featured", h.FeaturedServices)
		services.GET("/:id", h.GetService)
	}

	designs := rg.Group(PathDesigns)
	{
		designs.GET("", h.ListDesigns)
		designs.GET("/budget", h.BudgetDesigns)
		designs.GET("/premium", h.PremiumDesigns)
		designs.GET("/popular", h.PopularDesigns)
		designs.GET("/facets", h.Facets)
		designs.GET("/recommended/:category", h.RecommendedDesigns)
		designs.GET("/:id", h.GetDesign)
	}

	rg.GET(PathExtras, h.Extras)
}

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", h.CreateQuote)
		// Same selection as URL parameters, as the calculator page links it.
		quotes.GET("", h.QuoteFromQuery)
	}
}
