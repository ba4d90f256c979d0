package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/acmecorp/invoicing-dashboard/internal/core/ports"
)

// DashboardHandler serves the overview cards and the customer dropdown.
type DashboardHandler struct {
	service ports.InvoiceService
}

func NewDashboardHandler(svc ports.InvoiceService) *DashboardHandler {
	return &DashboardHandler{service: svc}
}

// Overview handles GET /dashboard.
//
// @Summary      Dashboard overview
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  overviewResponse
// @Failure      500  {object}  errorResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) Overview(c echo.Context) error {
	result, err := h.service.Overview(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overviewResponse{
		InvoiceCount:  result.InvoiceCount,
		CustomerCount: result.CustomerCount,
		PaidCents:     result.PaidCents,
		PendingCents:  result.PendingCents,
		Latest:        toSummaryResponses(result.Latest),
	})
}

// Customers handles GET /dashboard/customers.
//
// @Summary      List customers for the invoice form
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}  customerResponse
// @Failure      500  {object}  errorResponse
// @Router       /dashboard/customers [get]
func (h *DashboardHandler) Customers(c echo.Context) error {
	customers, err := h.service.ListCustomers(c.Request().Context())
	if err != nil {
		return err
	}
	resp := make([]customerResponse, 0, len(customers))
	for _, cust := range customers {
		resp = append(resp, customerResponse{
			ID:       cust.ID,
			Name:     cust.Name,
			Email:    cust.Email,
			ImageURL: cust.ImageURL,
		})
	}
	return c.JSON(http.StatusOK, resp)
}
