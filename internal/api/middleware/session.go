package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/acmecorp/invoicing-dashboard/internal/core/domain"
)

// SessionCookie is the name of the HttpOnly cookie carrying the session JWT.
const SessionCookie = "invoicing_session"

const sessionContextKey = "session"

// Session is the per-request authentication state, derived from the cookie
// and passed explicitly to whatever needs it. Never stored between requests.
type Session struct {
	IsLoggedIn bool
	UserID     string
	Name       string
	Email      string
}

// Gate derives the session from the request cookie, stores it in the echo
// context and applies the route authorization verdict:
//
//	protected path, logged in      -> allow
//	protected path, anonymous      -> redirect to /login
//	public path, logged in         -> redirect to /dashboard
//	public path, anonymous         -> allow
func Gate(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := sessionFromRequest(c, jwtSecret)
			c.Set(sessionContextKey, sess)

			switch domain.DecideAccess(sess.IsLoggedIn, c.Request().URL.Path) {
			case domain.AccessDenyToLogin:
				return c.Redirect(http.StatusSeeOther, "/login")
			case domain.AccessRedirectToDashboard:
				return c.Redirect(http.StatusSeeOther, domain.DashboardPrefix)
			}
			return next(c)
		}
	}
}

// SessionFromContext returns the session injected by Gate. Requests that did
// not pass through Gate read as anonymous.
func SessionFromContext(c echo.Context) Session {
	sess, _ := c.Get(sessionContextKey).(Session)
	return sess
}

// sessionFromRequest parses and verifies the session cookie. Any missing,
// expired or tampered token yields the anonymous session.
func sessionFromRequest(c echo.Context, jwtSecret string) Session {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return Session{}
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return Session{}
	}

	userID, _ := claims["sub"].(string)
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)
	return Session{IsLoggedIn: true, UserID: userID, Name: name, Email: email}
}
