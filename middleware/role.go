package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRole returns a middleware that restricts a route to users carrying
// the given role claim. Runs after JWTMiddleware.
func RequireRole(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized: role not found", nil)
		}

		if role != requiredRole {
			return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
		}

		return c.Next()
	}
}

// RequireStudent gates the checkout routes to student accounts.
func RequireStudent(c *fiber.Ctx) error {
	return RequireRole("STUDENT")(c)
}
