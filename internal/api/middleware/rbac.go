package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ellaquest/platform-api/internal/api/metrics"
	"github.com/ellaquest/platform-api/internal/core/domain"
)

// RequireRoles gates a route by the identity's role. It must be chained
// after Auth; a request that reaches it without an identity is rejected
// outright. Denied iff the role is outside the allowed set.
func RequireRoles(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident := IdentityFrom(c)
			if ident == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if _, ok := allowed[ident.Role]; !ok {
				metrics.RoleDenialsTotal.WithLabelValues(c.Path(), string(ident.Role)).Inc()
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}
