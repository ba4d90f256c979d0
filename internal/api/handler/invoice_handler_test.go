package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/acmecorp/invoicing-dashboard/internal/core/ports"
	"github.com/acmecorp/invoicing-dashboard/internal/core/service"
)

type stubInvoiceService struct {
	mutationResult *ports.MutationResult
	mutationErr    error
	lastInput      ports.InvoiceFormInput
	listCalls      int
	deletedIDs     []string
}

func (s *stubInvoiceService) CreateInvoice(_ context.Context, input ports.InvoiceFormInput) (*ports.MutationResult, error) {
	s.lastInput = input
	return s.mutationResult, s.mutationErr
}

func (s *stubInvoiceService) UpdateInvoice(_ context.Context, _ string, input ports.InvoiceFormInput) (*ports.MutationResult, error) {
	s.lastInput = input
	return s.mutationResult, s.mutationErr
}

func (s *stubInvoiceService) DeleteInvoice(_ context.Context, id string) (*ports.MutationResult, error) {
	s.deletedIDs = append(s.deletedIDs, id)
	return s.mutationResult, s.mutationErr
}

func (s *stubInvoiceService) GetInvoice(_ context.Context, id string) (*ports.InvoiceDetail, error) {
	return &ports.InvoiceDetail{ID: id, CustomerID: "c1", Amount: 45.50, Status: "pending"}, nil
}

func (s *stubInvoiceService) ListInvoices(_ context.Context, _ ports.ListInvoicesInput) (*ports.ListInvoicesResult, error) {
	s.listCalls++
	return &ports.ListInvoicesResult{Page: 1, Limit: 6}, nil
}

func (s *stubInvoiceService) Overview(_ context.Context) (*ports.OverviewResult, error) {
	return &ports.OverviewResult{}, nil
}

func (s *stubInvoiceService) ListCustomers(_ context.Context) ([]ports.CustomerOption, error) {
	return nil, nil
}

type stubViewCache struct {
	entries map[string][]byte
	sets    int
}

func newStubViewCache() *stubViewCache {
	return &stubViewCache{entries: make(map[string][]byte)}
}

func (s *stubViewCache) Get(_ context.Context, route, variant string) ([]byte, bool) {
	payload, ok := s.entries[route+"|"+variant]
	return payload, ok
}

func (s *stubViewCache) Set(_ context.Context, route, variant string, payload []byte) {
	s.sets++
	s.entries[route+"|"+variant] = payload
}

func (s *stubViewCache) Invalidate(_ context.Context, route string) {
	for k := range s.entries {
		if strings.HasPrefix(k, route+"|") {
			delete(s.entries, k)
		}
	}
}

func postForm(t *testing.T, h echo.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestInvoiceCreate_ValidationErrorsRenderForm(t *testing.T) {
	svc := &stubInvoiceService{mutationResult: &ports.MutationResult{
		Outcome: ports.OutcomeValidationError,
		Errors:  ports.FieldErrors{"customerId": {"Please select a customer."}},
		Message: ports.MsgCreateMissingFields,
	}}
	h := NewInvoiceHandler(svc, newStubViewCache())

	rec := postForm(t, h.Create, "/dashboard/invoices", "customerId=&amount=45.50&status=pending")

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	var resp mutationErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Message != ports.MsgCreateMissingFields {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if len(resp.Errors["customerId"]) != 1 {
		t.Fatalf("expected customerId errors, got %v", resp.Errors)
	}
	if svc.lastInput.Amount != "45.50" {
		t.Fatalf("raw amount must reach the service untouched, got %q", svc.lastInput.Amount)
	}
}

func TestInvoiceCreate_SuccessRedirectsToListing(t *testing.T) {
	svc := &stubInvoiceService{mutationResult: &ports.MutationResult{Outcome: ports.OutcomeCompletedRedirect, RedirectTo: service.ListingRoute}}
	h := NewInvoiceHandler(svc, newStubViewCache())

	rec := postForm(t, h.Create, "/dashboard/invoices", "customerId=c1&amount=45.50&status=pending")

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != service.ListingRoute {
		t.Fatalf("expected redirect to %s, got %q", service.ListingRoute, loc)
	}
}

func TestInvoiceCreate_DatabaseErrorHidesCause(t *testing.T) {
	svc := &stubInvoiceService{mutationResult: &ports.MutationResult{Outcome: ports.OutcomeDatabaseError, Message: ports.MsgCreateDBError}}
	h := NewInvoiceHandler(svc, newStubViewCache())

	rec := postForm(t, h.Create, "/dashboard/invoices", "customerId=c1&amount=45.50&status=pending")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), ports.MsgCreateDBError) {
		t.Fatalf("expected generic message, got %s", rec.Body.String())
	}
	if rec.Header().Get("Location") != "" {
		t.Fatalf("database error must not redirect")
	}
}

func TestInvoiceDelete_NoRedirect(t *testing.T) {
	svc := &stubInvoiceService{mutationResult: &ports.MutationResult{Outcome: ports.OutcomeCompletedStay, Message: ports.MsgInvoiceDeleted}}
	h := NewInvoiceHandler(svc, newStubViewCache())

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/dashboard/invoices/inv-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("inv-1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("Location") != "" {
		t.Fatalf("delete must not redirect")
	}
	if len(svc.deletedIDs) != 1 || svc.deletedIDs[0] != "inv-1" {
		t.Fatalf("unexpected deletes: %v", svc.deletedIDs)
	}
}

func TestInvoiceList_CachesRenderedView(t *testing.T) {
	svc := &stubInvoiceService{}
	views := newStubViewCache()
	h := NewInvoiceHandler(svc, views)

	e := echo.New()
	list := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/dashboard/invoices?query=rabbit&page=1", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if err := h.List(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		return rec
	}

	first := list()
	if first.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", first.Code)
	}
	if svc.listCalls != 1 || views.sets != 1 {
		t.Fatalf("miss must compute and store: calls=%d sets=%d", svc.listCalls, views.sets)
	}

	second := list()
	if svc.listCalls != 1 {
		t.Fatalf("hit must not recompute, got %d calls", svc.listCalls)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatalf("cached render differs from computed render")
	}
}

func TestInvoiceGet_ReturnsMajorUnits(t *testing.T) {
	h := NewInvoiceHandler(&stubInvoiceService{}, newStubViewCache())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/invoices/inv-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("inv-1")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp invoiceDetailResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Amount != 45.50 {
		t.Fatalf("expected 45.50, got %v", resp.Amount)
	}
}
