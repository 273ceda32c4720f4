package handlers

import (
	"errors"
	"net/http"

	request "marblecraft/internal/adapter/http/dto/request"
	response "marblecraft/internal/adapter/http/dto/response"
	"marblecraft/internal/infrastructure/logging"
	"marblecraft/internal/usecase"
	"marblecraft/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCatalogQuery = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid query parameters", http.StatusBadRequest)
)

// CatalogHandler serves the read-only service and design catalog.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
	log     *logging.Logger
}

func NewCatalogHandler(uc usecase.ICatalogUseCase, log *logging.Logger) *CatalogHandler {
	return &CatalogHandler{usecase: uc, log: log}
}

// ListServices godoc
// @Summary      List installation services
// @Tags         services
// @Produce      json
// @Param        category  query  string  false  "flooring, countertops, walls, stairs or bathrooms"
// @Param        q         query  string  false  "search in name, description and features"
// @Success      200  {array}   response.ServiceResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	var q request.ListServicesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidCatalogQuery.HTTPStatus, errInvalidCatalogQuery.ToHTTPError())
		return
	}

	services, err := h.usecase.ListServices(q.Category, q.Query)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServices(services))
}

// FeaturedServices godoc
// @Summary      Services highlighted on the home page
// @Tags         services
// @Produce      json
// @Success      200  {array}  response.ServiceResponse
// @Router       /services/featured [get]
func (h *CatalogHandler) FeaturedServices(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromServices(h.usecase.FeaturedServices()))
}

// GetService godoc
// @Summary      Get a service by id
// @Tags         services
// @Produce      json
// @Param        id   path      string  true  "service id"
// @Success      200  {object}  response.ServiceResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /services/{id} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	service, err := h.usecase.GetService(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromService(service))
}

// ListDesigns godoc
// @Summary      List marble designs
// @Tags         designs
// @Produce      json
// @Param        q       query  string   false  "search in name, description and color"
// @Param        color   query  string   false  "color substring"
// @Param        origin  query  string   false  "exact origin"
// @Param        price   query  string   false  "budget, standard, premium or luxury"
// @Param        limit   query  integer  false  "maximum number of designs"
// @Success      200  {array}   response.DesignResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /designs [get]
func (h *CatalogHandler) ListDesigns(c *gin.Context) {
	var q request.ListDesignsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidCatalogQuery.HTTPStatus, errInvalidCatalogQuery.ToHTTPError())
		return
	}

	designs, err := h.usecase.ListDesigns(q.ToFilter())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDesigns(designs))
}

// @Summary  Designs with a multiplier of at most 1.0
// @Tags     designs
// @Produce  json
// @Success  200  {array}  response.DesignResponse
// @Router   /designs/budget [get]
func (h *CatalogHandler) BudgetDesigns(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromDesigns(h.usecase.BudgetDesigns()))
}

// @Summary  Designs with a multiplier of at least 1.5
// @Tags     designs
// @Produce  json
// @Success  200  {array}  response.DesignResponse
// @Router   /designs/premium [get]
func (h *CatalogHandler) PremiumDesigns(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromDesigns(h.usecase.PremiumDesigns()))
}

// @Summary  Most requested designs
// @Tags     designs
// @Produce  json
// @Success  200  {array}  response.DesignResponse
// @Router   /designs/popular [get]
func (h *CatalogHandler) PopularDesigns(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromDesigns(h.usecase.PopularDesigns()))
}

// @Summary  Designs suited to a service category
// @Tags     designs
// @Produce  json
// @Param    category  path  string  true  "service category"
// @Success  200  {array}  response.DesignResponse
// @Router   /designs/recommended/{category} [get]
func (h *CatalogHandler) RecommendedDesigns(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromDesigns(h.usecase.RecommendedDesigns(c.Param("category"))))
}

// GetDesign godoc
// @Summary      Get a design by id
// @Tags         designs
// @Produce      json
// @Param        id   path      string  true  "design id"
// @Success      200  {object}  response.DesignResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /designs/{id} [get]
func (h *CatalogHandler) GetDesign(c *gin.Context) {
	design, err := h.usecase.GetDesign(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDesign(design))
}

// @Summary  Distinct colors, origins and patterns
// @Tags     designs
// @Produce  json
// @Success  200  {object}  response.FacetsResponse
// @Router   /designs/facets [get]
func (h *CatalogHandler) Facets(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromFacets(h.usecase.Facets()))
}

// @Summary  Optional add-on services
// @Tags     extras
// @Produce  json
// @Success  200  {array}  response.ExtraResponse
// @Router   /extras [get]
func (h *CatalogHandler) Extras(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromExtras(h.usecase.Extras()))
}

func (h *CatalogHandler) writeError(c *gin.Context, err error) {
	appErr := mapCatalogError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.log.Errorw("[catalog][handler] request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID), errors.Is(err, usecase.ErrInvalidDesignID),
		errors.Is(err, usecase.ErrInvalidCategory), errors.Is(err, usecase.ErrInvalidPriceBand):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDesignNotFound):
		return pkg.NewDomainErrorSimple("DESIGN_NOT_FOUND", "Design not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
