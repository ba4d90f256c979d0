package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/acmecorp/invoicing-dashboard/internal/api/middleware"
	"github.com/acmecorp/invoicing-dashboard/internal/core/domain"
)

type stubAuthService struct {
	token string
	err   error
}

func (s *stubAuthService) Login(_ context.Context, email, _ string) (string, *domain.User, error) {
	if s.err != nil {
		return "", nil, s.err
	}
	return s.token, &domain.User{ID: "u1", Email: email}, nil
}

func TestLogin_SuccessSetsCookieAndRedirects(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{token: "signed-token"}, time.Hour)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("email=user@nextmail.com&password=123456"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != domain.DashboardPrefix {
		t.Fatalf("expected redirect to %s, got %q", domain.DashboardPrefix, loc)
	}

	cookies := rec.Result().Cookies()
	var session *http.Cookie
	for _, ck := range cookies {
		if ck.Name == middleware.SessionCookie {
			session = ck
		}
	}
	if session == nil {
		t.Fatalf("session cookie not set")
	}
	if session.Value != "signed-token" {
		t.Fatalf("unexpected cookie value: %q", session.Value)
	}
	if !session.HttpOnly {
		t.Fatalf("session cookie must be HttpOnly")
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials}, time.Hour)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("email=user@nextmail.com&password=wrongpass"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("no cookie may be set on failure")
	}
}

func TestLogout_ClearsCookie(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, time.Hour)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}

	var session *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			session = ck
		}
	}
	if session == nil {
		t.Fatalf("expiring cookie not set")
	}
	if session.Value != "" || session.Expires.After(time.Now()) {
		t.Fatalf("cookie must be cleared, got %+v", session)
	}
}
