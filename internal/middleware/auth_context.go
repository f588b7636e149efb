package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/blogql/backend/internal/auth"
)

// AuthContext derives the caller identity from the Authorization header and
// stores it in the request context. It never rejects: a missing or invalid
// credential just leaves the request anonymous, and protected resolvers
// enforce authentication themselves.
func AuthContext(svc *auth.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(echo.HeaderAuthorization)
			if identity := svc.Identify(raw); identity != nil {
				req := c.Request()
				c.SetRequest(req.WithContext(auth.WithIdentity(req.Context(), identity)))
			}
			return next(c)
		}
	}
}
