package reviewValidator

import (
	"scholarhub/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateRequest struct {
	ApplicationID uint   `json:"applicationId" validate:"required,gt=0"`
	Rating        int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment       string `json:"comment"`
}

type UpdateRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Comment *string `json:"comment"`
}

// Create validator middleware
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			if verrs, ok := err.(validator.ValidationErrors); ok {
				for _, fe := range verrs {
					switch fe.Field() {
					case "ApplicationID":
						errors["applicationId"] = "Application id is required!"
					case "Rating":
						errors["rating"] = "Rating must be between 1 and 5!"
					}
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("reviewCreate", reqData)
		return c.Next()
	}
}

// Update validator middleware
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"rating": "Rating must be between 1 and 5!",
			})
		}

		c.Locals("reviewUpdate", reqData)
		return c.Next()
	}
}
