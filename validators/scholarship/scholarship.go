package scholarshipValidator

import (
	"encoding/json"
	"time"

	"scholarhub/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

var validate = validator.New()

type CreateRequest struct {
	ScholarshipName     string          `json:"scholarshipName" validate:"required"`
	UniversityName      string          `json:"universityName" validate:"required"`
	UniversityCity      string          `json:"universityCity"`
	UniversityCountry   string          `json:"universityCountry"`
	SubjectCategory     string          `json:"subjectCategory"`
	ScholarshipCategory string          `json:"scholarshipCategory"`
	Degree              string          `json:"degree"`
	TuitionFees         float64         `json:"tuitionFees" validate:"gte=0"`
	ApplicationFee      float64         `json:"applicationFee" validate:"gte=0"`
	ServiceCharge       float64         `json:"serviceCharge" validate:"gte=0"`
	PostDate            string          `json:"postDate" validate:"required"`
	Deadline            string          `json:"deadline" validate:"required"`
	Description         string          `json:"description"`
	Eligibility         json.RawMessage `json:"eligibility"`

	ParsedPostDate time.Time `json:"-"`
	ParsedDeadline time.Time `json:"-"`
}

type UpdateRequest struct {
	ScholarshipName     *string          `json:"scholarshipName"`
	UniversityName      *string          `json:"universityName"`
	UniversityCity      *string          `json:"universityCity"`
	UniversityCountry   *string          `json:"universityCountry"`
	SubjectCategory     *string          `json:"subjectCategory"`
	ScholarshipCategory *string          `json:"scholarshipCategory"`
	Degree              *string          `json:"degree"`
	TuitionFees         *float64         `json:"tuitionFees" validate:"omitempty,gte=0"`
	ApplicationFee      *float64         `json:"applicationFee" validate:"omitempty,gte=0"`
	ServiceCharge       *float64         `json:"serviceCharge" validate:"omitempty,gte=0"`
	PostDate            *string          `json:"postDate"`
	Deadline            *string          `json:"deadline"`
	Description         *string          `json:"description"`
	Eligibility         *json.RawMessage `json:"eligibility"`

	ParsedPostDate *time.Time `json:"-"`
	ParsedDeadline *time.Time `json:"-"`
}

func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			errors[fe.Field()] = "Invalid value for " + fe.Field() + "!"
		}
	} else {
		errors["body"] = "Invalid request body!"
	}
	return errors
}

// Create validator middleware
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		errors := make(map[string]string)

		postDate, err := time.Parse(dateLayout, reqData.PostDate)
		if err != nil {
			errors["postDate"] = "Invalid date, expected YYYY-MM-DD!"
		}
		deadline, err := time.Parse(dateLayout, reqData.Deadline)
		if err != nil {
			errors["deadline"] = "Invalid date, expected YYYY-MM-DD!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.ParsedPostDate = postDate
		reqData.ParsedDeadline = deadline

		c.Locals("scholarshipCreate", reqData)
		return c.Next()
	}
}

// Update validator middleware for partial scholarship updates
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		errors := make(map[string]string)

		if reqData.PostDate != nil {
			parsed, err := time.Parse(dateLayout, *reqData.PostDate)
			if err != nil {
				errors["postDate"] = "Invalid date, expected YYYY-MM-DD!"
			} else {
				reqData.ParsedPostDate = &parsed
			}
		}
		if reqData.Deadline != nil {
			parsed, err := time.Parse(dateLayout, *reqData.Deadline)
			if err != nil {
				errors["deadline"] = "Invalid date, expected YYYY-MM-DD!"
			} else {
				reqData.ParsedDeadline = &parsed
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("scholarshipUpdate", reqData)
		return c.Next()
	}
}
