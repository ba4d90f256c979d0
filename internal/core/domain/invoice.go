package domain

import (
	"errors"
	"time"
)

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	StatusPending InvoiceStatus = "pending"
	StatusPaid    InvoiceStatus = "paid"
)

var ErrInvoiceNotFound = errors.New("invoice not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")

// IsValid reports whether s is one of the two permitted statuses.
func (s InvoiceStatus) IsValid() bool {
	return s == StatusPending || s == StatusPaid
}

// Invoice is the core aggregate. Amount is stored in integer cents so that
// monetary values never pass through floating point on the way to the database.
type Invoice struct {
	ID          string        `json:"id"`
	CustomerID  string        `json:"customer_id"`
	AmountCents int64         `json:"amount"`
	Status      InvoiceStatus `json:"status"`
	Date        time.Time     `json:"date"`
}

// Customer is referenced by invoices; owned and provisioned outside this core.
type Customer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}
