package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/acmecorp/invoicing-dashboard/internal/core/domain"
	"github.com/acmecorp/invoicing-dashboard/internal/core/ports"
)

// InvoiceRepository implements ports.InvoiceRepository over PostgreSQL.
// Every statement binds its values as parameters; nothing is interpolated.
type InvoiceRepository struct {
	db *sql.DB
}

func NewInvoiceRepository(db *sql.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	query := `
		INSERT INTO invoices (customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		inv.CustomerID, inv.AmountCents, string(inv.Status), inv.Date,
	).Scan(&inv.ID)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepository) Update(ctx context.Context, inv *domain.Invoice) error {
	query := `
		UPDATE invoices
		SET customer_id = $1, amount = $2, status = $3
		WHERE id = $4`

	res, err := r.db.ExecContext(ctx, query,
		inv.CustomerID, inv.AmountCents, string(inv.Status), inv.ID,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepository) FindByID(ctx context.Context, id string) (*domain.Invoice, error) {
	query := `
		SELECT id, customer_id, amount, status, date
		FROM invoices
		WHERE id = $1`

	inv := &domain.Invoice{}
	var status string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&inv.ID, &inv.CustomerID, &inv.AmountCents, &status, &inv.Date,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("find invoice: %w", err)
	}
	inv.Status = domain.InvoiceStatus(status)
	return inv, nil
}

// searchPredicate matches the listing search across the joined customer and
// the invoice's amount, date and status rendered as text.
const searchPredicate = `
	customers.name ILIKE $1 OR
	customers.email ILIKE $1 OR
	invoices.amount::text ILIKE $1 OR
	invoices.date::text ILIKE $1 OR
	invoices.status ILIKE $1`

func (r *InvoiceRepository) List(ctx context.Context, filter ports.ListInvoicesFilter) ([]*ports.InvoiceWithCustomer, int64, error) {
	pattern := "%" + filter.Query + "%"

	var total int64
	countQuery := `
		SELECT COUNT(*)
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE ` + searchPredicate
	if err := r.db.QueryRowContext(ctx, countQuery, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count invoices: %w", err)
	}

	query := `
		SELECT invoices.id, invoices.amount, invoices.status, invoices.date,
		       customers.name, customers.email, customers.image_url
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE ` + searchPredicate + `
		ORDER BY invoices.date DESC
		LIMIT $2 OFFSET $3`

	offset := (filter.Page - 1) * filter.Limit
	rows, err := r.db.QueryContext(ctx, query, pattern, filter.Limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	items, err := scanInvoiceRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *InvoiceRepository) Latest(ctx context.Context, limit int) ([]*ports.InvoiceWithCustomer, error) {
	query := `
		SELECT invoices.id, invoices.amount, invoices.status, invoices.date,
		       customers.name, customers.email, customers.image_url
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		ORDER BY invoices.date DESC
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("latest invoices: %w", err)
	}
	defer rows.Close()

	return scanInvoiceRows(rows)
}

func (r *InvoiceRepository) Totals(ctx context.Context) (*ports.DashboardTotals, error) {
	totals := &ports.DashboardTotals{}

	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0)
		FROM invoices`
	if err := r.db.QueryRowContext(ctx, query).Scan(
		&totals.InvoiceCount, &totals.PaidCents, &totals.PendingCents,
	); err != nil {
		return nil, fmt.Errorf("invoice totals: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers`).Scan(&totals.CustomerCount); err != nil {
		return nil, fmt.Errorf("customer count: %w", err)
	}

	return totals, nil
}

func scanInvoiceRows(rows *sql.Rows) ([]*ports.InvoiceWithCustomer, error) {
	var items []*ports.InvoiceWithCustomer
	for rows.Next() {
		item := &ports.InvoiceWithCustomer{}
		var status string
		if err := rows.Scan(
			&item.ID, &item.AmountCents, &status, &item.Date,
			&item.CustomerName, &item.CustomerEmail, &item.CustomerImage,
		); err != nil {
			return nil, fmt.Errorf("scan invoice row: %w", err)
		}
		item.Status = domain.InvoiceStatus(status)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invoice rows: %w", err)
	}
	return items, nil
}
