package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/brightpixel/website-api/internal/core/domain"
	"github.com/brightpixel/website-api/internal/core/ports"
)

// AdminContextKey is the echo context key holding the authenticated admin.
const AdminContextKey = "admin"

// Auth validates the bearer token and resolves the admin it was issued to.
// Expired and tampered tokens fail with the same message; an admin deleted
// after issuance fails the same way. The resolved *domain.Admin is stored
// under AdminContextKey for downstream handlers.
func Auth(jwtSecret string, admins ports.AdminRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			email, _ := claims["sub"].(string)
			if email == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			admin, err := admins.FindByEmail(c.Request().Context(), email)
			if err != nil {
				if err == domain.ErrAdminNotFound {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
				return err
			}

			c.Set(AdminContextKey, admin)

			return next(c)
		}
	}
}
