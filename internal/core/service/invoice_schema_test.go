package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/acmecorp/invoicing-dashboard/internal/core/domain"
	"github.com/acmecorp/invoicing-dashboard/internal/core/ports"
)

func TestParseInvoiceForm_Valid(t *testing.T) {
	form, fieldErrs := parseInvoiceForm(ports.InvoiceFormInput{
		CustomerID: "c1",
		Amount:     "45.50",
		Status:     "pending",
	})

	require.Nil(t, fieldErrs)
	require.Equal(t, "c1", form.CustomerID)
	require.Equal(t, int64(4550), form.AmountCents)
	require.Equal(t, domain.StatusPending, form.Status)
}

func TestParseInvoiceForm_RoundsToCents(t *testing.T) {
	form, fieldErrs := parseInvoiceForm(ports.InvoiceFormInput{
		CustomerID: "c1",
		Amount:     "19.999",
		Status:     "paid",
	})

	require.Nil(t, fieldErrs)
	require.Equal(t, int64(2000), form.AmountCents)
}

func TestParseInvoiceForm_AggregatesAllFieldErrors(t *testing.T) {
	_, fieldErrs := parseInvoiceForm(ports.InvoiceFormInput{
		CustomerID: "",
		Amount:     "-3",
		Status:     "overdue",
	})

	require.Len(t, fieldErrs, 3)
	require.Equal(t, []string{"Please select a customer."}, fieldErrs["customerId"])
	require.Equal(t, []string{"Please enter an amount greater than $0."}, fieldErrs["amount"])
	require.Equal(t, []string{"Please select an invoice status."}, fieldErrs["status"])
}

func TestParseInvoiceForm_InvalidAmountCoexistsWithOtherFailures(t *testing.T) {
	_, fieldErrs := parseInvoiceForm(ports.InvoiceFormInput{
		CustomerID: "",
		Amount:     "0",
		Status:     "paid",
	})

	require.Contains(t, fieldErrs, "amount")
	require.Contains(t, fieldErrs, "customerId")
	require.NotContains(t, fieldErrs, "status")
}

func TestParseInvoiceForm_NonNumericAmount(t *testing.T) {
	_, fieldErrs := parseInvoiceForm(ports.InvoiceFormInput{
		CustomerID: "c1",
		Amount:     "lots",
		Status:     "paid",
	})

	require.Equal(t, []string{"Please enter an amount greater than $0."}, fieldErrs["amount"])
	require.Len(t, fieldErrs, 1)
}

func TestParseInvoiceForm_MissingEverything(t *testing.T) {
	_, fieldErrs := parseInvoiceForm(ports.InvoiceFormInput{})

	require.Len(t, fieldErrs, 3)
}
