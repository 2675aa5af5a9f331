package dashboardValidator

import (
	"scholarhub/middleware"
	"scholarhub/models"

	"github.com/gofiber/fiber/v2"
)

type RoleRequest struct {
	Role string `json:"role"`

	ParsedRole models.Role `json:"-"`
}

// Role validator middleware for admin role changes
func Role() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RoleRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		role, err := models.ParseRole(reqData.Role)
		if err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"role": "Role must be one of student, moderator, admin!",
			})
		}
		reqData.ParsedRole = role

		c.Locals("roleRequest", reqData)
		return c.Next()
	}
}
