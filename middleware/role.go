package middleware

import (
	"scholarhub/models"

	"github.com/gofiber/fiber/v2"
)

// requireRole returns a middleware that passes only when the resolved role
// matches exactly. Roles are disjoint capability sets: there is no hierarchy,
// so an admin does not satisfy a moderator gate or the other way around.
func (a *Auth) requireRole(required models.Role, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(models.Role)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing Authorization header!", nil)
		}
		if role != required {
			return JsonResponse(c, fiber.StatusForbidden, false, message, nil)
		}
		return c.Next()
	}
}

// RequireAdmin gates admin-only routes. Must run after Protect.
func (a *Auth) RequireAdmin() fiber.Handler {
	return a.requireRole(models.RoleAdmin, "Admin only actions!")
}

// RequireModerator gates moderator-only routes. Must run after Protect.
func (a *Auth) RequireModerator() fiber.Handler {
	return a.requireRole(models.RoleModerator, "Moderator only actions!")
}
