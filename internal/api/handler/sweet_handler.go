package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/inventory-api/internal/api/metrics"
	"github.com/sweetshop/inventory-api/internal/core/domain"
	"github.com/sweetshop/inventory-api/internal/core/ports"
)

// SweetHandler handles HTTP requests for catalog and stock operations.
type SweetHandler struct {
	service ports.InventoryService
}

func NewSweetHandler(service ports.InventoryService) *SweetHandler {
	return &SweetHandler{service: service}
}

// Create handles POST /sweets.
//
// @Summary      Create a catalog item
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sweetRequest  true  "Item fields"
// @Success      200   {object}  sweetResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /sweets [post]
func (h *SweetHandler) Create(c echo.Context) error {
	var req sweetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	sweet, err := h.service.Create(c.Request().Context(), toSweetInput(req))
	if err != nil {
		return err
	}

	metrics.SweetsCreatedTotal.Inc()
	return c.JSON(http.StatusOK, toSweetResponse(sweet))
}

// List handles GET /sweets.
//
// @Summary      List all catalog items
// @Tags         sweets
// @Produce      json
// @Success      200  {object}  listSweetsResponse
// @Router       /sweets [get]
func (h *SweetHandler) List(c echo.Context) error {
	sweets, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(sweets))
}

// Search handles GET /sweets/search. All provided filters are ANDed; absent
// filters impose no constraint.
//
// @Summary      Search catalog items
// @Tags         sweets
// @Produce      json
// @Param        name      query  string  false  "Name substring (case-insensitive)"
// @Param        category  query  string  false  "Category substring (case-insensitive)"
// @Param        minPrice  query  number  false  "Inclusive price lower bound"
// @Param        maxPrice  query  number  false  "Inclusive price upper bound"
// @Success      200  {object}  listSweetsResponse
// @Failure      400  {object}  errorResponse
// @Router       /sweets/search [get]
func (h *SweetHandler) Search(c echo.Context) error {
	filter := ports.SearchFilter{
		Name:     c.QueryParam("name"),
		Category: c.QueryParam("category"),
	}

	var err error
	if filter.MinPrice, err = parsePriceParam(c.QueryParam("minPrice")); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "minPrice must be a number"})
	}
	if filter.MaxPrice, err = parsePriceParam(c.QueryParam("maxPrice")); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "maxPrice must be a number"})
	}

	sweets, err := h.service.Search(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(sweets))
}

// Update handles PUT /sweets/:id as a full field replacement.
//
// @Summary      Replace a catalog item
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Item id"
// @Param        body  body      sweetRequest  true  "Item fields"
// @Success      200   {object}  sweetResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /sweets/{id} [put]
func (h *SweetHandler) Update(c echo.Context) error {
	var req sweetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	sweet, err := h.service.Update(c.Request().Context(), c.Param("id"), toSweetInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSweetResponse(sweet))
}

// Delete handles DELETE /sweets/:id. Admin only; deleting a missing id
// reports 404.
//
// @Summary      Delete a catalog item
// @Tags         sweets
// @Security     BearerAuth
// @Param        id  path  string  true  "Item id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /sweets/{id} [delete]
func (h *SweetHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Purchase handles POST /sweets/:id/purchase, atomically decrementing stock.
//
// @Summary      Purchase an item
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Param        id    path      string        true  "Item id"
// @Param        body  body      countRequest  true  "Units to purchase"
// @Success      200   {object}  sweetResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /sweets/{id}/purchase [post]
func (h *SweetHandler) Purchase(c echo.Context) error {
	var req countRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	start := time.Now()
	sweet, err := h.service.Purchase(c.Request().Context(), c.Param("id"), req.Count)
	metrics.StockAdjustDuration.WithLabelValues("purchase").Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.PurchasesTotal.WithLabelValues(adjustResult(err)).Inc()
		return err
	}

	metrics.PurchasesTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, toSweetResponse(sweet))
}

// Restock handles POST /sweets/:id/restock, atomically incrementing stock.
// Admin only.
//
// @Summary      Restock an item
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Item id"
// @Param        body  body      countRequest  true  "Units to add"
// @Success      200   {object}  sweetResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /sweets/{id}/restock [post]
func (h *SweetHandler) Restock(c echo.Context) error {
	var req countRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	start := time.Now()
	sweet, err := h.service.Restock(c.Request().Context(), c.Param("id"), req.Count)
	metrics.StockAdjustDuration.WithLabelValues("restock").Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.RestocksTotal.WithLabelValues(adjustResult(err)).Inc()
		return err
	}

	metrics.RestocksTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, toSweetResponse(sweet))
}

// adjustResult maps a stock-adjustment error to its metric label.
func adjustResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrSweetNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidCount):
		return "invalid_count"
	default:
		return "error"
	}
}

// parsePriceParam parses an optional decimal query parameter; empty means
// no constraint.
func parsePriceParam(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
