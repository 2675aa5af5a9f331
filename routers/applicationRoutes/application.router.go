package applicationRoutes

import (
	applicationController "scholarhub/controllers/application"
	"scholarhub/middleware"
	applicationValidator "scholarhub/validators/application"

	"github.com/gofiber/fiber/v2"
)

func SetupApplicationRoutes(app *fiber.App, auth *middleware.Auth, ctrl *applicationController.ApplicationController) {
	applicationGroup := app.Group("/applications")

	applicationGroup.Get("/", auth.Protect, ctrl.ListMine)
	applicationGroup.Post("/", auth.Protect, applicationValidator.Submit(), ctrl.Submit)
	// deliberately public lookup, see hardening notes
	applicationGroup.Get("/:id", ctrl.Get)
	applicationGroup.Patch("/:id/status", auth.Protect, auth.RequireModerator(), applicationValidator.Status(), ctrl.UpdateStatus)
	applicationGroup.Delete("/:id", auth.Protect, ctrl.Withdraw)

	moderatorGroup := app.Group("/moderator/applications", auth.Protect, auth.RequireModerator())

	moderatorGroup.Get("/", ctrl.ModeratorList)
	moderatorGroup.Patch("/:id", applicationValidator.Status(), ctrl.UpdateStatus)
}
