package middleware

import (
	"strings"

	"go-inventory-billing/internal/repository"
	"go-inventory-billing/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// Context keys set by RequireAuth. Handlers must take the tenant from these
// locals only, never from request input.
const (
	LocalUserID    = "user_id"
	LocalUsername  = "username"
	LocalCompanyID = "company_id"
)

func unauthorized(c *fiber.Ctx, msg string) error {
	c.Set("WWW-Authenticate", "Bearer")
	return c.Status(401).JSON(fiber.Map{"error": msg})
}

// RequireAuth validates the bearer token, resolves the identity against the
// database and binds the tenant into the request context. A token whose
// company claim no longer matches the stored user is rejected; that defends
// against stale tokens after a tenant reassignment.
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "Missing authorization token")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return unauthorized(c, "Invalid authorization format. Use: Bearer <token>")
		}

		claims, err := jwt.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			return unauthorized(c, "Invalid or expired token")
		}

		user, err := userRepo.FindByIDAny(claims.UserID)
		if err != nil {
			return unauthorized(c, "Invalid authentication credentials")
		}
		if user.CompanyID != claims.CompanyID {
			return unauthorized(c, "Invalid authentication credentials")
		}

		if !user.IsActive {
			return c.Status(400).JSON(fiber.Map{"error": "Inactive user"})
		}

		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalUsername, user.Username)
		c.Locals(LocalCompanyID, user.CompanyID)

		return c.Next()
	}
}
