package reviewRoutes

import (
	reviewController "scholarhub/controllers/review"
	"scholarhub/middleware"
	reviewValidator "scholarhub/validators/review"

	"github.com/gofiber/fiber/v2"
)

func SetupReviewRoutes(app *fiber.App, auth *middleware.Auth, ctrl *reviewController.ReviewController) {
	reviewGroup := app.Group("/reviews", auth.Protect)

	reviewGroup.Get("/", ctrl.ListMine)
	reviewGroup.Post("/", reviewValidator.Create(), ctrl.Create)
	reviewGroup.Patch("/:id", reviewValidator.Update(), ctrl.Update)
	reviewGroup.Delete("/:id", ctrl.Delete)

	moderatorGroup := app.Group("/moderator/reviews", auth.Protect, auth.RequireModerator())

	moderatorGroup.Get("/", ctrl.ModeratorList)
	moderatorGroup.Delete("/:id", ctrl.ModeratorDelete)
}
