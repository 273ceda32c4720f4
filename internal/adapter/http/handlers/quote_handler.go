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
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler prices a selection. Quotes are computed per request and never
// stored.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
	log     *logging.Logger
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, log *logging.Logger) *QuoteHandler {
	return &QuoteHandler{usecase: uc, log: log}
}

// CreateQuote godoc
// @Summary      Price a project
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        payload  body      request.QuoteRequest  true  "selection"
// @Success      200      {object}  response.QuoteResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}
	h.respond(c, payload)
}

// QuoteFromQuery godoc
// @Summary      Price a project from calculator URL parameters
// @Tags         quotes
// @Produce      json
// @Param        service  query     string   true   "service id"
// @Param        design   query     string   true   "design id"
// @Param        area     query     number   true   "area in sq ft"
// @Param        extras   query     string   false  "comma separated extra ids"
// @Param        premium  query     boolean  false  "premium time slot"
// @Success      200      {object}  response.QuoteResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /quotes [get]
func (h *QuoteHandler) QuoteFromQuery(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindQuery(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}
	h.respond(c, payload)
}

func (h *QuoteHandler) respond(c *gin.Context, payload request.QuoteRequest) {
	cmd, err := payload.ToCommand()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.Calculate(cmd)
	if err != nil {
		appErr := mapQuoteError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.log.Errorw("[quote][handler] calculate failed", "error", err)
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.log.Debugw("[quote][handler] quote calculated",
		"service", quote.Service.ID, "design", quote.Design.ID, "area", quote.Area, "total", quote.Breakdown.Total)
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID), errors.Is(err, usecase.ErrInvalidDesignID), errors.Is(err, usecase.ErrInvalidArea):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDesignNotFound):
		return pkg.NewDomainErrorSimple("DESIGN_NOT_FOUND", "Design not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
