package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"pantry/internal/apperror"
	"pantry/internal/models"
	"pantry/internal/services"
)

// Context keys for the authenticated caller.
const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
	LocalRole   = "role"
)

// AuthRequired is a Fiber middleware that checks for a valid bearer token
// and stores the caller's identity in the request context.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperror.Unauthorized("Token not provided. Please log in")
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return apperror.Unauthorized("Authorization header format must be 'Bearer <token>'")
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			return apperror.Unauthorized("Unauthorized access. Please authenticate to proceed")
		}

		userID, _ := claims["user_id"].(string)
		email, _ := claims["email"].(string)
		role, _ := claims["role"].(string)
		if userID == "" {
			return apperror.Unauthorized("Unauthorized access. Please authenticate to proceed")
		}

		c.Locals(LocalUserID, userID)
		c.Locals(LocalEmail, email)
		c.Locals(LocalRole, models.Role(role))

		return c.Next()
	}
}

// HasRole reports whether role is one of the allowed roles.
func HasRole(role models.Role, allowed ...models.Role) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// RequireRole is a Fiber middleware that restricts a route to callers
// holding one of the allowed roles. Must run after AuthRequired.
func RequireRole(allowed ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(LocalRole).(models.Role)
		if !ok || !HasRole(role, allowed...) {
			return apperror.Forbidden("Access forbidden. Unauthorised role")
		}
		return c.Next()
	}
}

// CallerID returns the authenticated caller's user id from the context.
func CallerID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalUserID).(string)
	return id
}

// CallerRole returns the authenticated caller's role from the context.
func CallerRole(c *fiber.Ctx) models.Role {
	role, _ := c.Locals(LocalRole).(models.Role)
	return role
}
