package domain

import "strings"

// DashboardPrefix is the protected route subtree; everything under it
// requires an authenticated session.
const DashboardPrefix = "/dashboard"

// AccessVerdict is the outcome of the per-request authorization decision.
type AccessVerdict int

const (
	// AccessAllow lets the request through to its handler.
	AccessAllow AccessVerdict = iota
	// AccessDenyToLogin rejects an unauthenticated request for a protected
	// path; the transport layer redirects to the login route.
	AccessDenyToLogin
	// AccessRedirectToDashboard bounces an already-authenticated caller off
	// public-only pages such as /login.
	AccessRedirectToDashboard
)

// DecideAccess is the route authorization gate. It is a pure function of the
// session state and the requested path and holds no per-request state.
func DecideAccess(isLoggedIn bool, path string) AccessVerdict {
	onDashboard := path == DashboardPrefix || strings.HasPrefix(path, DashboardPrefix+"/")
	if onDashboard {
		if isLoggedIn {
			return AccessAllow
		}
		return AccessDenyToLogin
	}
	if isLoggedIn {
		return AccessRedirectToDashboard
	}
	return AccessAllow
}
