package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ellaquest/platform-api/internal/api/metrics"
	"github.com/ellaquest/platform-api/internal/core/token"
)

// identityKey is the echo context key the verified Identity is stored
// under. Request-scoped only; nothing is cached across requests.
const identityKey = "identity"

// Auth verifies the bearer token and attaches the decoded Identity to the
// request context. The three rejection reasons map to distinct messages
// so clients can tell a stale session from a bad credential.
func Auth(verifier *token.Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident, err := verifier.VerifyHeader(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues(rejectionReason(err)).Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, rejectionMessage(err))
			}

			c.Set(identityKey, ident)
			return next(c)
		}
	}
}

// IdentityFrom returns the Identity attached by Auth, or nil when the
// middleware has not run on this request.
func IdentityFrom(c echo.Context) *token.Identity {
	ident, _ := c.Get(identityKey).(*token.Identity)
	return ident
}

func rejectionReason(err error) string {
	switch err {
	case token.ErrMissing:
		return "missing"
	case token.ErrExpired:
		return "expired"
	default:
		return "invalid"
	}
}

func rejectionMessage(err error) string {
	switch err {
	case token.ErrMissing:
		return "missing or malformed authorization header"
	case token.ErrExpired:
		return "token expired, please log in again"
	default:
		return "invalid token"
	}
}
