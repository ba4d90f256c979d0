package ports

import (
	"context"
	"time"
)

// InvoiceFormInput carries the raw form field values of a create or update
// submission. Values arrive untyped; the service coerces and validates them.
type InvoiceFormInput struct {
	CustomerID string
	Amount     string
	Status     string
}

// FieldErrors maps a form field name to its validation messages. Fields that
// passed validation are absent from the map.
type FieldErrors map[string][]string

// MutationOutcome tags the single result shape of a mutation invocation.
// Delete completes in place; create and update navigate away.
type MutationOutcome int

const (
	// OutcomeValidationError: field errors present, nothing persisted.
	OutcomeValidationError MutationOutcome = iota
	// OutcomeDatabaseError: the persistence call failed; only the generic
	// message is surfaced, never the underlying cause.
	OutcomeDatabaseError
	// OutcomeCompletedStay: persisted and invalidated; the caller stays on
	// the current route (delete).
	OutcomeCompletedStay
	// OutcomeCompletedRedirect: persisted and invalidated; the caller
	// navigates to RedirectTo (create, update).
	OutcomeCompletedRedirect
)

// MutationResult is the single outcome of a create/update/delete invocation.
// Exactly one outcome occurs per call; an invocation never both reports an
// error and redirects.
type MutationResult struct {
	Outcome    MutationOutcome
	Errors     FieldErrors
	Message    string
	RedirectTo string
}

// Summary messages surfaced to the user. Raw persistence errors are never
// exposed; these stand in for them.
const (
	MsgCreateMissingFields = "Missing Fields. Failed to Create Invoice."
	MsgUpdateMissingFields = "Missing Fields. Failed to Update Invoice."
	MsgCreateDBError       = "Database Error: Failed to Create Invoice."
	MsgUpdateDBError       = "Database Error: Failed to Update Invoice."
	MsgDeleteDBError       = "Database Error: Failed to Delete Invoice."
	MsgInvoiceDeleted      = "Deleted Invoice."
)

// InvoiceDetail is the single-invoice view used by the edit form. Amount is in
// major currency units, converted back from stored cents.
type InvoiceDetail struct {
	ID         string
	CustomerID string
	Amount     float64
	Status     string
}

// ListInvoicesInput carries all parameters for the listing endpoint.
type ListInvoicesInput struct {
	Query string
	Page  int
}

// InvoiceSummary is a single listing row.
type InvoiceSummary struct {
	ID            string
	AmountCents   int64
	Status        string
	Date          time.Time
	CustomerName  string
	CustomerEmail string
	CustomerImage string
}

// ListInvoicesResult is returned by ListInvoices.
type ListInvoicesResult struct {
	Items      []InvoiceSummary
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// OverviewResult carries the dashboard summary cards and latest invoices.
type OverviewResult struct {
	InvoiceCount  int64
	CustomerCount int64
	PaidCents     int64
	PendingCents  int64
	Latest        []InvoiceSummary
}

// InvoiceService defines the use-case operations of the invoicing dashboard.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, input InvoiceFormInput) (*MutationResult, error)
	UpdateInvoice(ctx context.Context, id string, input InvoiceFormInput) (*MutationResult, error)
	DeleteInvoice(ctx context.Context, id string) (*MutationResult, error)
	GetInvoice(ctx context.Context, id string) (*InvoiceDetail, error)
	ListInvoices(ctx context.Context, input ListInvoicesInput) (*ListInvoicesResult, error)
	Overview(ctx context.Context) (*OverviewResult, error)
	ListCustomers(ctx context.Context) ([]CustomerOption, error)
}

// CustomerOption is a customer entry for the invoice form dropdown.
type CustomerOption struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}
