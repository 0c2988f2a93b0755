package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/redditart/commissioner/pkg/models"
	"github.com/redditart/commissioner/pkg/services"
)

// productForCommissionHandler handles GET /api/products/commission/:donation_id.
func (s *Server) productForCommissionHandler(c *echo.Context) error {
	donationID := c.Param("donation_id")
	if donationID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "donation id is required")
	}

	product, err := s.products.GetByDonationID(c.Request().Context(), donationID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, services.ProductSummary(product))
}

// productDonationsHandler handles GET /api/products/:task_id/donations:
// the donations linked to one pipeline run.
func (s *Server) productDonationsHandler(c *echo.Context) error {
	taskID := c.Param("task_id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	ctx := c.Request().Context()
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return mapServiceError(err)
	}

	linked := []models.DonationSummary{}
	if task.DonationID != nil {
		d, err := s.donations.GetByID(ctx, *task.DonationID)
		if err != nil {
			return mapServiceError(err)
		}
		linked = append(linked, services.Summary(d))
	}
	return c.JSON(http.StatusOK, linked)
}

// generatedProductsHandler handles GET /api/generated_products.
func (s *Server) generatedProductsHandler(c *echo.Context) error {
	limit := 20
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	offset := 0
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	products, total, err := s.products.List(c.Request().Context(), limit, offset)
	if err != nil {
		return mapServiceError(err)
	}

	resp := &ProductListResponse{Products: make([]models.ProductSummary, 0, len(products)), Total: total}
	for _, p := range products {
		resp.Products = append(resp.Products, services.ProductSummary(p))
	}
	return c.JSON(http.StatusOK, resp)
}
