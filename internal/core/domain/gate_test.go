package domain

import "testing"

func TestDecideAccess(t *testing.T) {
	cases := []struct {
		name       string
		isLoggedIn bool
		path       string
		want       AccessVerdict
	}{
		{"anonymous on dashboard", false, "/dashboard/invoices", AccessDenyToLogin},
		{"logged in on dashboard", true, "/dashboard/invoices", AccessAllow},
		{"logged in on login page", true, "/login", AccessRedirectToDashboard},
		{"anonymous on login page", false, "/login", AccessAllow},
		{"anonymous on dashboard root", false, "/dashboard", AccessDenyToLogin},
		{"logged in on dashboard root", true, "/dashboard", AccessAllow},
		{"prefix must be a path segment", false, "/dashboard-public", AccessAllow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DecideAccess(tc.isLoggedIn, tc.path); got != tc.want {
				t.Fatalf("DecideAccess(%v, %q) = %v, want %v", tc.isLoggedIn, tc.path, got, tc.want)
			}
		})
	}
}

func TestInvoiceStatusIsValid(t *testing.T) {
	if !StatusPending.IsValid() || !StatusPaid.IsValid() {
		t.Fatalf("expected pending and paid to be valid")
	}
	if InvoiceStatus("overdue").IsValid() {
		t.Fatalf("expected unknown status to be invalid")
	}
}
