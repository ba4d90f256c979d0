package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/acmecorp/invoicing-dashboard/internal/api/metrics"
	"github.com/acmecorp/invoicing-dashboard/internal/core/ports"
	"github.com/acmecorp/invoicing-dashboard/internal/core/service"
)

// InvoiceHandler handles HTTP requests for invoice operations. Listing
// responses are memoized in the view cache; mutations go straight through to
// the service, which invalidates that cache.
type InvoiceHandler struct {
	service ports.InvoiceService
	views   ports.ViewCache
}

func NewInvoiceHandler(svc ports.InvoiceService, views ports.ViewCache) *InvoiceHandler {
	return &InvoiceHandler{service: svc, views: views}
}

// List handles GET /dashboard/invoices?query=&page=.
//
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Param        query  query     string  false  "Search across customer, amount, date and status"
// @Param        page   query     int     false  "1-based page number"
// @Success      200    {object}  listInvoicesResponse
// @Failure      500    {object}  errorResponse
// @Router       /dashboard/invoices [get]
func (h *InvoiceHandler) List(c echo.Context) error {
	query := c.QueryParam("query")
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}

	variant := "query=" + query + "&page=" + strconv.Itoa(page)
	if payload, ok := h.views.Get(c.Request().Context(), service.ListingRoute, variant); ok {
		metrics.ViewCacheTotal.WithLabelValues("hit").Inc()
		return c.JSONBlob(http.StatusOK, payload)
	}
	metrics.ViewCacheTotal.WithLabelValues("miss").Inc()

	result, err := h.service.ListInvoices(c.Request().Context(), ports.ListInvoicesInput{
		Query: query,
		Page:  page,
	})
	if err != nil {
		return err
	}

	resp := listInvoicesResponse{
		Data: toSummaryResponses(result.Items),
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	h.views.Set(c.Request().Context(), service.ListingRoute, variant, payload)
	return c.JSONBlob(http.StatusOK, payload)
}

// Get handles GET /dashboard/invoices/:id (the edit form view).
//
// @Summary      Get an invoice by id
// @Tags         invoices
// @Produce      json
// @Param        id  path      string  true  "Invoice id"
// @Success      200 {object}  invoiceDetailResponse
// @Failure      404 {object}  errorResponse
// @Router       /dashboard/invoices/{id} [get]
func (h *InvoiceHandler) Get(c echo.Context) error {
	detail, err := h.service.GetInvoice(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoiceDetailResponse{
		ID:         detail.ID,
		CustomerID: detail.CustomerID,
		Amount:     detail.Amount,
		Status:     detail.Status,
	})
}

// Create handles POST /dashboard/invoices. A validation failure re-renders
// the form with the field-error mapping; success redirects to the listing.
//
// @Summary      Create an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body      invoiceFormRequest  true  "Invoice form fields"
// @Success      303
// @Failure      422   {object}  mutationErrorResponse
// @Failure      500   {object}  mutationErrorResponse
// @Router       /dashboard/invoices [post]
func (h *InvoiceHandler) Create(c echo.Context) error {
	var req invoiceFormRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	result, err := h.service.CreateInvoice(c.Request().Context(), ports.InvoiceFormInput{
		CustomerID: req.CustomerID,
		Amount:     req.Amount,
		Status:     req.Status,
	})
	if err != nil {
		return err
	}
	return h.mutationResponse(c, "create", result)
}

// Update handles PUT /dashboard/invoices/:id.
//
// @Summary      Update an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Invoice id"
// @Param        body  body      invoiceFormRequest  true  "Invoice form fields"
// @Success      303
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  mutationErrorResponse
// @Router       /dashboard/invoices/{id} [put]
func (h *InvoiceHandler) Update(c echo.Context) error {
	var req invoiceFormRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	result, err := h.service.UpdateInvoice(c.Request().Context(), c.Param("id"), ports.InvoiceFormInput{
		CustomerID: req.CustomerID,
		Amount:     req.Amount,
		Status:     req.Status,
	})
	if err != nil {
		return err
	}
	return h.mutationResponse(c, "update", result)
}

// Delete handles DELETE /dashboard/invoices/:id. Unlike create and update it
// never redirects; the caller stays on the listing route.
//
// @Summary      Delete an invoice
// @Tags         invoices
// @Produce      json
// @Param        id  path  string  true  "Invoice id"
// @Success      200 {object}  mutationErrorResponse
// @Failure      500 {object}  mutationErrorResponse
// @Router       /dashboard/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c echo.Context) error {
	result, err := h.service.DeleteInvoice(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if result.Outcome == ports.OutcomeDatabaseError {
		metrics.InvoiceMutationsTotal.WithLabelValues("delete", "database_error").Inc()
		return c.JSON(http.StatusInternalServerError, mutationErrorResponse{Message: result.Message})
	}
	metrics.InvoiceMutationsTotal.WithLabelValues("delete", "success").Inc()
	return c.JSON(http.StatusOK, mutationErrorResponse{Message: result.Message})
}

// mutationResponse maps a create/update outcome onto the wire: exactly one of
// a 422 field-error render, a 500 generic database-error render, or a 303
// redirect to the listing.
func (h *InvoiceHandler) mutationResponse(c echo.Context, operation string, result *ports.MutationResult) error {
	switch result.Outcome {
	case ports.OutcomeValidationError:
		metrics.InvoiceMutationsTotal.WithLabelValues(operation, "validation_error").Inc()
		return c.JSON(http.StatusUnprocessableEntity, mutationErrorResponse{
			Errors:  result.Errors,
			Message: result.Message,
		})
	case ports.OutcomeDatabaseError:
		metrics.InvoiceMutationsTotal.WithLabelValues(operation, "database_error").Inc()
		return c.JSON(http.StatusInternalServerError, mutationErrorResponse{Message: result.Message})
	default:
		metrics.InvoiceMutationsTotal.WithLabelValues(operation, "success").Inc()
		return c.Redirect(http.StatusSeeOther, result.RedirectTo)
	}
}

func toSummaryResponses(items []ports.InvoiceSummary) []invoiceSummaryResponse {
	out := make([]invoiceSummaryResponse, 0, len(items))
	for _, item := range items {
		out = append(out, invoiceSummaryResponse{
			ID:            item.ID,
			AmountCents:   item.AmountCents,
			Status:        item.Status,
			Date:          dateOnly(item.Date),
			CustomerName:  item.CustomerName,
			CustomerEmail: item.CustomerEmail,
			CustomerImage: item.CustomerImage,
		})
	}
	return out
}
