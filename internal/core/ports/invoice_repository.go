package ports

import (
	"context"
	"time"

	"github.com/acmecorp/invoicing-dashboard/internal/core/domain"
)

// ListInvoicesFilter carries all query parameters for listing invoices.
type ListInvoicesFilter struct {
	Query string // optional: partial match on customer name/email, amount, date or status
	Page  int    // 1-based
	Limit int    // max rows per page
}

// InvoiceWithCustomer is a listing row joined with its customer.
type InvoiceWithCustomer struct {
	ID            string
	AmountCents   int64
	Status        domain.InvoiceStatus
	Date          time.Time
	CustomerName  string
	CustomerEmail string
	CustomerImage string
}

// DashboardTotals aggregates the figures shown on the overview cards.
type DashboardTotals struct {
	InvoiceCount      int64
	CustomerCount     int64
	PaidCents         int64
	PendingCents      int64
}

// InvoiceRepository defines persistence operations for invoices. All
// implementations must use bound parameters, never interpolated values.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	// Update mutates customer, amount and status by id. Returns
	// domain.ErrInvoiceNotFound when no row matches.
	Update(ctx context.Context, inv *domain.Invoice) error
	// Delete removes the invoice by id. Deleting an absent id is not an error.
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.Invoice, error)
	// List returns a page of invoices matching filter and the total count.
	List(ctx context.Context, filter ListInvoicesFilter) ([]*InvoiceWithCustomer, int64, error)
	Latest(ctx context.Context, limit int) ([]*InvoiceWithCustomer, error)
	Totals(ctx context.Context) (*DashboardTotals, error)
}

// CustomerRepository exposes the read-only customer view used by invoice forms.
type CustomerRepository interface {
	List(ctx context.Context) ([]*domain.Customer, error)
}
