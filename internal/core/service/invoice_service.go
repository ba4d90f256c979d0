package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/acmecorp/invoicing-dashboard/internal/core/domain"
	"github.com/acmecorp/invoicing-dashboard/internal/core/ports"
)

// ListingRoute is the cached invoice listing view every mutation invalidates
// and every successful create/update redirects to.
const ListingRoute = "/dashboard/invoices"

const (
	itemsPerPage = 6
	latestLimit  = 5
)

// ViewInvalidator abstracts the memoized-view store (Redis). Only the
// invalidation signal is needed here; reads belong to the transport layer.
type ViewInvalidator interface {
	Invalidate(ctx context.Context, route string)
}

// InvoiceService implements the validated-mutation pipeline plus the read-side
// queries of the dashboard.
type InvoiceService struct {
	repo      ports.InvoiceRepository
	customers ports.CustomerRepository
	views     ViewInvalidator
	logger    zerolog.Logger
}

func NewInvoiceService(repo ports.InvoiceRepository, customers ports.CustomerRepository, views ViewInvalidator, logger zerolog.Logger) *InvoiceService {
	return &InvoiceService{repo: repo, customers: customers, views: views, logger: logger}
}

// CreateInvoice runs parse -> validate -> persist -> invalidate -> redirect.
// The creation date is the server's current UTC calendar date, never client
// input. Exactly one outcome shape is produced per invocation.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input ports.InvoiceFormInput) (*ports.MutationResult, error) {
	form, fieldErrs := parseInvoiceForm(input)
	if fieldErrs != nil {
		return &ports.MutationResult{Outcome: ports.OutcomeValidationError, Errors: fieldErrs, Message: ports.MsgCreateMissingFields}, nil
	}

	inv := &domain.Invoice{
		CustomerID:  form.CustomerID,
		AmountCents: form.AmountCents,
		Status:      form.Status,
		Date:        today(),
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		s.logger.Error().Err(err).Str("customer_id", form.CustomerID).Msg("failed to create invoice")
		return &ports.MutationResult{Outcome: ports.OutcomeDatabaseError, Message: ports.MsgCreateDBError}, nil
	}

	s.logger.Info().Str("invoice_id", inv.ID).Int64("amount_cents", inv.AmountCents).Msg("invoice created")
	s.views.Invalidate(ctx, ListingRoute)
	return &ports.MutationResult{Outcome: ports.OutcomeCompletedRedirect, RedirectTo: ListingRoute}, nil
}

// UpdateInvoice mutates customer, amount and status of an existing invoice.
// Id and date are immutable after creation. An id matching no row fails with
// domain.ErrInvoiceNotFound rather than silently succeeding.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, id string, input ports.InvoiceFormInput) (*ports.MutationResult, error) {
	form, fieldErrs := parseInvoiceForm(input)
	if fieldErrs != nil {
		return &ports.MutationResult{Outcome: ports.OutcomeValidationError, Errors: fieldErrs, Message: ports.MsgUpdateMissingFields}, nil
	}

	inv := &domain.Invoice{
		ID:          id,
		CustomerID:  form.CustomerID,
		AmountCents: form.AmountCents,
		Status:      form.Status,
	}
	if err := s.repo.Update(ctx, inv); err != nil {
		if errors.Is(err, domain.ErrInvoiceNotFound) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("invoice_id", id).Msg("failed to update invoice")
		return &ports.MutationResult{Outcome: ports.OutcomeDatabaseError, Message: ports.MsgUpdateDBError}, nil
	}

	s.views.Invalidate(ctx, ListingRoute)
	return &ports.MutationResult{Outcome: ports.OutcomeCompletedRedirect, RedirectTo: ListingRoute}, nil
}

// DeleteInvoice removes an invoice and refreshes the listing view. It never
// redirects: the caller is already on the listing route. Deleting an id twice
// leaves the same observable state, the row absent.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id string) (*ports.MutationResult, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("invoice_id", id).Msg("failed to delete invoice")
		return &ports.MutationResult{Outcome: ports.OutcomeDatabaseError, Message: ports.MsgDeleteDBError}, nil
	}

	s.views.Invalidate(ctx, ListingRoute)
	return &ports.MutationResult{Outcome: ports.OutcomeCompletedStay, Message: ports.MsgInvoiceDeleted}, nil
}

// GetInvoice returns the edit-form view of a single invoice, with the amount
// converted back to major units.
func (s *InvoiceService) GetInvoice(ctx context.Context, id string) (*ports.InvoiceDetail, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ports.InvoiceDetail{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     float64(inv.AmountCents) / 100,
		Status:     string(inv.Status),
	}, nil
}

// ListInvoices returns one page of the searchable invoice listing.
func (s *InvoiceService) ListInvoices(ctx context.Context, input ports.ListInvoicesInput) (*ports.ListInvoicesResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}

	rows, total, err := s.repo.List(ctx, ports.ListInvoicesFilter{
		Query: input.Query,
		Page:  page,
		Limit: itemsPerPage,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + itemsPerPage - 1) / itemsPerPage)
	return &ports.ListInvoicesResult{
		Items:      toSummaries(rows),
		Total:      total,
		Page:       page,
		Limit:      itemsPerPage,
		TotalPages: totalPages,
	}, nil
}

// Overview returns the dashboard cards and the most recent invoices.
func (s *InvoiceService) Overview(ctx context.Context) (*ports.OverviewResult, error) {
	totals, err := s.repo.Totals(ctx)
	if err != nil {
		return nil, err
	}
	latest, err := s.repo.Latest(ctx, latestLimit)
	if err != nil {
		return nil, err
	}
	return &ports.OverviewResult{
		InvoiceCount:  totals.InvoiceCount,
		CustomerCount: totals.CustomerCount,
		PaidCents:     totals.PaidCents,
		PendingCents:  totals.PendingCents,
		Latest:        toSummaries(latest),
	}, nil
}

// ListCustomers returns the dropdown options for the invoice form.
func (s *InvoiceService) ListCustomers(ctx context.Context) ([]ports.CustomerOption, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	options := make([]ports.CustomerOption, 0, len(customers))
	for _, c := range customers {
		options = append(options, ports.CustomerOption{
			ID:       c.ID,
			Name:     c.Name,
			Email:    c.Email,
			ImageURL: c.ImageURL,
		})
	}
	return options, nil
}

func toSummaries(rows []*ports.InvoiceWithCustomer) []ports.InvoiceSummary {
	items := make([]ports.InvoiceSummary, 0, len(rows))
	for _, r := range rows {
		items = append(items, ports.InvoiceSummary{
			ID:            r.ID,
			AmountCents:   r.AmountCents,
			Status:        string(r.Status),
			Date:          r.Date,
			CustomerName:  r.CustomerName,
			CustomerEmail: r.CustomerEmail,
			CustomerImage: r.CustomerImage,
		})
	}
	return items
}

// today returns the current UTC calendar date with the time component zeroed.
func today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}
