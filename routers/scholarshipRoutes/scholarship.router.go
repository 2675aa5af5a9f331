package scholarshipRoutes

import (
	scholarshipController "scholarhub/controllers/scholarship"
	"scholarhub/middleware"
	scholarshipValidator "scholarhub/validators/scholarship"

	"github.com/gofiber/fiber/v2"
)

func SetupScholarshipRoutes(app *fiber.App, auth *middleware.Auth, ctrl *scholarshipController.ScholarshipController) {
	scholarshipGroup := app.Group("/scholarships")

	scholarshipGroup.Get("/", ctrl.List)
	scholarshipGroup.Post("/", auth.Protect, scholarshipValidator.Create(), ctrl.Create)
	scholarshipGroup.Get("/:id", ctrl.Get)
	scholarshipGroup.Patch("/:id", auth.Protect, auth.RequireAdmin(), scholarshipValidator.Update(), ctrl.Update)
	scholarshipGroup.Delete("/:id", auth.Protect, auth.RequireAdmin(), ctrl.Delete)
}
