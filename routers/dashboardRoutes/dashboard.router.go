package dashboardRoutes

import (
	dashboardController "scholarhub/controllers/dashboard"
	"scholarhub/middleware"
	dashboardValidator "scholarhub/validators/dashboard"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App, auth *middleware.Auth, ctrl *dashboardController.DashboardController) {
	dashboardGroup := app.Group("/dashboard", auth.Protect, auth.RequireAdmin())

	dashboardGroup.Get("/users", ctrl.UserList)
	dashboardGroup.Patch("/users/:id/role", dashboardValidator.Role(), ctrl.UpdateUserRole)
	dashboardGroup.Delete("/users/:id", ctrl.DeleteUser)
	dashboardGroup.Get("/analytics", ctrl.Analytics)
}
