package applicationValidator

import (
	"scholarhub/middleware"
	"scholarhub/models"

	"github.com/gofiber/fiber/v2"
)

type SubmitRequest struct {
	ScholarshipID uint `json:"scholarshipId"`
}

type StatusRequest struct {
	Status   string `json:"status"`
	Feedback string `json:"feedback"`

	ParsedStatus models.ApplicationStatus `json:"-"`
}

// Submit validator middleware
func Submit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.ScholarshipID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"scholarshipId": "Scholarship id is required!",
			})
		}

		c.Locals("applicationSubmit", reqData)
		return c.Next()
	}
}

// Status validator middleware for moderator status updates
func Status() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(StatusRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		status, err := models.ParseApplicationStatus(reqData.Status)
		if err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be one of pending, approved, rejected!",
			})
		}
		reqData.ParsedStatus = status

		c.Locals("applicationStatus", reqData)
		return c.Next()
	}
}
