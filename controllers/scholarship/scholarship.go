package scholarshipController

import (
	"scholarhub/middleware"
	"scholarhub/models"
	scholarshipValidator "scholarhub/validators/scholarship"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ScholarshipController struct {
	db *gorm.DB
}

func New(db *gorm.DB) *ScholarshipController {
	return &ScholarshipController{db: db}
}

// List returns scholarships matching the search/category filter, sorted and
// paginated, along with the total match count ignoring pagination
func (ctrl *ScholarshipController) List(c *fiber.Ctx) error {
	query := ListQuery{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
		Page:     c.QueryInt("page", 1),
		Limit:    c.QueryInt("limit", 10),
	}

	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = 10
	}

	var total int64
	query.Filter(ctrl.db.Model(&models.Scholarship{})).Count(&total)

	var scholarships []models.Scholarship
	if err := query.Order(query.Filter(ctrl.db.Model(&models.Scholarship{}))).
		Offset(query.Offset()).
		Limit(query.Limit).
		Find(&scholarships).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch scholarships!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Scholarships fetched.", fiber.Map{
		"scholarships": scholarships,
		"pagination": fiber.Map{
			"total": total,
			"page":  query.Page,
			"limit": query.Limit,
		},
	})
}

// Get returns a single scholarship by id
func (ctrl *ScholarshipController) Get(c *fiber.Ctx) error {
	scholarshipID, err := c.ParamsInt("id")
	if err != nil || scholarshipID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid scholarship id!", nil)
	}

	var scholarship models.Scholarship
	if err := ctrl.db.First(&scholarship, scholarshipID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Scholarship not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Scholarship found.", scholarship)
}

// Create stores a new scholarship offer. Any authenticated caller may post
// one; no ownership is recorded.
func (ctrl *ScholarshipController) Create(c *fiber.Ctx) error {
	reqData := c.Locals("scholarshipCreate").(*scholarshipValidator.CreateRequest)

	scholarship := models.Scholarship{
		ScholarshipName:     reqData.ScholarshipName,
		UniversityName:      reqData.UniversityName,
		UniversityCity:      reqData.UniversityCity,
		UniversityCountry:   reqData.UniversityCountry,
		SubjectCategory:     reqData.SubjectCategory,
		ScholarshipCategory: reqData.ScholarshipCategory,
		Degree:              reqData.Degree,
		TuitionFees:         reqData.TuitionFees,
		ApplicationFee:      reqData.ApplicationFee,
		ServiceCharge:       reqData.ServiceCharge,
		PostDate:            reqData.ParsedPostDate,
		Deadline:            reqData.ParsedDeadline,
		Description:         reqData.Description,
		Eligibility:         datatypes.JSON(reqData.Eligibility),
	}

	if err := ctrl.db.Create(&scholarship).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create scholarship!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Scholarship created successfully.", scholarship)
}

// Update applies a partial update to a scholarship (admin only)
func (ctrl *ScholarshipController) Update(c *fiber.Ctx) error {
	scholarshipID, err := c.ParamsInt("id")
	if err != nil || scholarshipID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid scholarship id!", nil)
	}

	reqData := c.Locals("scholarshipUpdate").(*scholarshipValidator.UpdateRequest)

	var scholarship models.Scholarship
	if err := ctrl.db.First(&scholarship, scholarshipID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Scholarship not found!", nil)
	}

	updates := make(map[string]interface{})
	if reqData.ScholarshipName != nil {
		updates["scholarship_name"] = *reqData.ScholarshipName
	}
	if reqData.UniversityName != nil {
		updates["university_name"] = *reqData.UniversityName
	}
	if reqData.UniversityCity != nil {
		updates["university_city"] = *reqData.UniversityCity
	}
	if reqData.UniversityCountry != nil {
		updates["university_country"] = *reqData.UniversityCountry
	}
	if reqData.SubjectCategory != nil {
		updates["subject_category"] = *reqData.SubjectCategory
	}
	if reqData.ScholarshipCategory != nil {
		updates["scholarship_category"] = *reqData.ScholarshipCategory
	}
	if reqData.Degree != nil {
		updates["degree"] = *reqData.Degree
	}
	if reqData.TuitionFees != nil {
		updates["tuition_fees"] = *reqData.TuitionFees
	}
	if reqData.ApplicationFee != nil {
		updates["application_fee"] = *reqData.ApplicationFee
	}
	if reqData.ServiceCharge != nil {
		updates["service_charge"] = *reqData.ServiceCharge
	}
	if reqData.ParsedPostDate != nil {
		updates["post_date"] = *reqData.ParsedPostDate
	}
	if reqData.ParsedDeadline != nil {
		updates["deadline"] = *reqData.ParsedDeadline
	}
	if reqData.Description != nil {
		updates["description"] = *reqData.Description
	}
	if reqData.Eligibility != nil {
		updates["eligibility"] = datatypes.JSON(*reqData.Eligibility)
	}

	if len(updates) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Nothing to update!", nil)
	}

	if err := ctrl.db.Model(&scholarship).Updates(updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update scholarship!", nil)
	}

	ctrl.db.First(&scholarship, scholarshipID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Scholarship updated successfully.", scholarship)
}

// Delete removes a scholarship (admin only)
func (ctrl *ScholarshipController) Delete(c *fiber.Ctx) error {
	scholarshipID, err := c.ParamsInt("id")
	if err != nil || scholarshipID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid scholarship id!", nil)
	}

	var scholarship models.Scholarship
	if err := ctrl.db.First(&scholarship, scholarshipID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Scholarship not found!", nil)
	}

	if err := ctrl.db.Delete(&scholarship).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete scholarship!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Scholarship deleted successfully.", nil)
}
