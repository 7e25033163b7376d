package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/inventory-api/internal/core/domain"
)

// RBAC enforces role-based access control. The required roles are configured
// explicitly per route; the principal must hold at least one of them.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := c.Get("principal").(domain.Principal)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			for _, role := range allowedRoles {
				if principal.HasRole(role) {
					return next(c)
				}
			}
			// Rendered as 403 by the central error handler.
			return domain.ErrForbidden
		}
	}
}
