package authRoutes

import (
	authController "scholarhub/controllers/auth"
	authValidator "scholarhub/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, ctrl *authController.AuthController) {
	app.Post("/jwt", authValidator.IssueToken(), ctrl.IssueToken)

	userGroup := app.Group("/users")

	userGroup.Post("/", authValidator.Register(), ctrl.Register)
	// "/role" must be registered before the ":email" wildcard
	userGroup.Get("/role", ctrl.UserRole)
	userGroup.Get("/:email", ctrl.UserByEmail)
}
