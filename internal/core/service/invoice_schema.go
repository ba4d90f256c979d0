package service

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/acmecorp/invoicing-dashboard/internal/core/domain"
	"github.com/acmecorp/invoicing-dashboard/internal/core/ports"
)

// invoiceForm is the declarative shape a submitted invoice must satisfy.
// Amount is coerced from its raw string before the struct is validated, so a
// non-numeric submission collapses to zero and fails the gt=0 constraint the
// same way a negative amount does.
type invoiceForm struct {
	CustomerID string  `validate:"required"`
	Amount     float64 `validate:"gt=0"`
	Status     string  `validate:"required,oneof=pending paid"`
}

var formValidator = validator.New()

// Form field names as they appear in submissions and in error mappings.
const (
	fieldCustomerID = "customerId"
	fieldAmount     = "amount"
	fieldStatus     = "status"
)

// validatedInvoice is the typed result of a successful parse. AmountCents is
// the canonical integer minor-units value persisted downstream.
type validatedInvoice struct {
	CustomerID  string
	AmountCents int64
	Status      domain.InvoiceStatus
}

// parseInvoiceForm validates raw form values and either returns the typed
// record or a mapping of every failing field to its messages. All fields are
// checked in a single pass; the mapping never reflects just the first failure.
func parseInvoiceForm(in ports.InvoiceFormInput) (validatedInvoice, ports.FieldErrors) {
	form := invoiceForm{
		CustomerID: strings.TrimSpace(in.CustomerID),
		Status:     strings.TrimSpace(in.Status),
	}
	if amount, err := strconv.ParseFloat(strings.TrimSpace(in.Amount), 64); err == nil {
		form.Amount = amount
	}

	if err := formValidator.Struct(form); err != nil {
		fieldErrs := make(ports.FieldErrors)
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			for _, fe := range ve {
				name, msg := invoiceFieldError(fe)
				fieldErrs[name] = append(fieldErrs[name], msg)
			}
		}
		return validatedInvoice{}, fieldErrs
	}

	return validatedInvoice{
		CustomerID:  form.CustomerID,
		AmountCents: int64(math.Round(form.Amount * 100)),
		Status:      domain.InvoiceStatus(form.Status),
	}, nil
}

// invoiceFieldError maps a single validator failure to its form field name and
// user-facing message.
func invoiceFieldError(fe validator.FieldError) (string, string) {
	switch fe.StructField() {
	case "CustomerID":
		return fieldCustomerID, "Please select a customer."
	case "Amount":
		return fieldAmount, "Please enter an amount greater than $0."
	default:
		return fieldStatus, "Please select an invoice status."
	}
}
