package middleware

import (
	"slices"
	"strings"

	"pantry/internal/delivery/api/response"
	deliverycontext "pantry/internal/delivery/context"
	"pantry/internal/domain/entity"
	"pantry/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for access token authentication and role checks.
type AuthMiddleware struct {
	identityUC usecase.IdentityUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identityUC usecase.IdentityUsecase) *AuthMiddleware {
	return &AuthMiddleware{identityUC: identityUC}
}

// Authenticate resolves the bearer token into the caller identity and stores it on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		identity, err := m.identityUC.Authenticate(c.Request().Context(), tokenString)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the caller holds one of the given roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := make([]string, len(roles))
	for i, role := range roles {
		allowed[i] = role.String()
	}
	message := "Permission denied: require one of " + strings.Join(allowed, ", ")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := GetIdentity(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: identity missing")
			}

			if !slices.Contains(roles, identity.Role) {
				return response.Forbidden(c, "FORBIDDEN", message)
			}

			return next(c)
		}
	}
}

// GetIdentity returns the caller stored by Authenticate.
func GetIdentity(c echo.Context) (entity.Identity, bool) {
	return deliverycontext.GetIdentity(c)
}
