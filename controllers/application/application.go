package applicationController

import (
	"errors"
	"time"

	"scholarhub/middleware"
	"scholarhub/models"
	applicationValidator "scholarhub/validators/application"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ApplicationController struct {
	db *gorm.DB
}

func New(db *gorm.DB) *ApplicationController {
	return &ApplicationController{db: db}
}

// Submit creates an application for the caller against a scholarship. Status
// and payment status are forced to pending/unpaid regardless of the request
// body, and the fee and name fields are copied from the scholarship row.
func (ctrl *ApplicationController) Submit(c *fiber.Ctx) error {
	email := c.Locals("email").(string)
	name, _ := c.Locals("name").(string)

	reqData := c.Locals("applicationSubmit").(*applicationValidator.SubmitRequest)

	var scholarship models.Scholarship
	if err := ctrl.db.First(&scholarship, reqData.ScholarshipID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Scholarship not found!", nil)
	}

	// Friendly duplicate check; the composite unique index below is the
	// authority when two submissions race.
	var existing models.Application
	if err := ctrl.db.Where("scholarship_id = ? AND user_email = ?", scholarship.ID, email).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Already applied!", nil)
	}

	application := models.Application{
		ScholarshipID:       scholarship.ID,
		UserEmail:           email,
		UserName:            name,
		ScholarshipName:     scholarship.ScholarshipName,
		UniversityName:      scholarship.UniversityName,
		ScholarshipCategory: scholarship.ScholarshipCategory,
		SubjectCategory:     scholarship.SubjectCategory,
		Degree:              scholarship.Degree,
		ApplicationFee:      scholarship.ApplicationFee,
		ServiceCharge:       scholarship.ServiceCharge,
		Status:              models.ApplicationPending,
		PaymentStatus:       models.PaymentUnpaid,
		AppliedAt:           time.Now(),
	}

	if err := ctrl.db.Create(&application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Already applied!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit application!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Application submitted successfully.", application)
}

// ListMine returns the caller's applications. An explicit email query
// parameter must echo the token email.
func (ctrl *ApplicationController) ListMine(c *fiber.Ctx) error {
	email := c.Locals("email").(string)

	if requested := c.Query("email"); requested != "" && requested != email {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only view your own applications!", nil)
	}

	var applications []models.Application
	if err := ctrl.db.Where("user_email = ?", email).
		Order("created_at DESC").
		Find(&applications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch applications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applications fetched.", applications)
}

// Get returns a single application by id. The lookup is public; see the
// hardening notes before exposing this beyond an internal deployment.
func (ctrl *ApplicationController) Get(c *fiber.Ctx) error {
	applicationID, err := c.ParamsInt("id")
	if err != nil || applicationID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid application id!", nil)
	}

	var application models.Application
	if err := ctrl.db.First(&application, applicationID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Application found.", application)
}

// UpdateStatus sets the status and feedback of an application (moderator
// only). There is intentionally no guard against re-transitioning an already
// approved or rejected application; known gap, kept as observed behavior.
func (ctrl *ApplicationController) UpdateStatus(c *fiber.Ctx) error {
	applicationID, err := c.ParamsInt("id")
	if err != nil || applicationID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid application id!", nil)
	}

	reqData := c.Locals("applicationStatus").(*applicationValidator.StatusRequest)

	var application models.Application
	if err := ctrl.db.First(&application, applicationID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found!", nil)
	}

	application.Status = reqData.ParsedStatus
	application.Feedback = reqData.Feedback

	if err := ctrl.db.Save(&application).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update application!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Application status updated.", application)
}

// Withdraw deletes the caller's own application while it is still pending.
// The row is removed unscoped so the student can re-apply later.
func (ctrl *ApplicationController) Withdraw(c *fiber.Ctx) error {
	email := c.Locals("email").(string)

	applicationID, err := c.ParamsInt("id")
	if err != nil || applicationID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid application id!", nil)
	}

	var application models.Application
	if err := ctrl.db.First(&application, applicationID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found!", nil)
	}

	if application.UserEmail != email {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only withdraw your own application!", nil)
	}

	if application.Status != models.ApplicationPending {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only pending applications can be withdrawn!", nil)
	}

	if err := ctrl.db.Unscoped().Delete(&application).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to withdraw application!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Application withdrawn successfully.", nil)
}

// ModeratorList returns all applications with pagination and an optional
// status filter (moderator only)
func (ctrl *ApplicationController) ModeratorList(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	statusFilter := c.Query("status")

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := ctrl.db.Model(&models.Application{})
	if statusFilter != "" {
		status, err := models.ParseApplicationStatus(statusFilter)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid status filter!", nil)
		}
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var applications []models.Application
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&applications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch applications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applications fetched.", fiber.Map{
		"applications": applications,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
