package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

// invoiceFormRequest carries the raw form fields of a create or update
// submission. Values stay strings here; coercion and validation are the
// service's job so the error mapping is produced in one place.
type invoiceFormRequest struct {
	CustomerID string `json:"customerId" form:"customerId"`
	Amount     string `json:"amount"     form:"amount"`
	Status     string `json:"status"     form:"status"`
}

// --- Response types ---

// mutationErrorResponse re-renders a failed form submission: a mapping of the
// failing fields to their messages plus one summary message.
type mutationErrorResponse struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message"`
}

type invoiceSummaryResponse struct {
	ID            string    `json:"id"`
	AmountCents   int64     `json:"amount"`
	Status        string    `json:"status"`
	Date          string    `json:"date"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CustomerImage string    `json:"customer_image_url"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listInvoicesResponse struct {
	Data       []invoiceSummaryResponse `json:"data"`
	Pagination paginationResponse       `json:"pagination"`
}

// invoiceDetailResponse is the edit-form view; amount is in major units.
type invoiceDetailResponse struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customer_id"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
}

type customerResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

type overviewResponse struct {
	InvoiceCount  int64                    `json:"invoice_count"`
	CustomerCount int64                    `json:"customer_count"`
	PaidCents     int64                    `json:"total_paid"`
	PendingCents  int64                    `json:"total_pending"`
	Latest        []invoiceSummaryResponse `json:"latest_invoices"`
}

// dateOnly renders an ISO 8601 calendar date.
func dateOnly(t time.Time) string {
	return t.Format("2006-01-02")
}
