package reviewController

import (
	"time"

	"scholarhub/middleware"
	"scholarhub/models"
	reviewValidator "scholarhub/validators/review"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ReviewController struct {
	db *gorm.DB
}

func New(db *gorm.DB) *ReviewController {
	return &ReviewController{db: db}
}

// Create stores a review against an approved application. The scholarship
// and university names come from the application row, not a fresh
// scholarship lookup, so the review reflects what the student applied to.
func (ctrl *ReviewController) Create(c *fiber.Ctx) error {
	email := c.Locals("email").(string)
	name, _ := c.Locals("name").(string)

	reqData := c.Locals("reviewCreate").(*reviewValidator.CreateRequest)

	var application models.Application
	if err := ctrl.db.First(&application, reqData.ApplicationID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found!", nil)
	}

	if application.Status != models.ApplicationApproved {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You cannot review before approval!", nil)
	}

	review := models.Review{
		ApplicationID:   application.ID,
		ScholarshipID:   application.ScholarshipID,
		ScholarshipName: application.ScholarshipName,
		UniversityName:  application.UniversityName,
		ReviewerName:    name,
		ReviewerEmail:   email,
		Rating:          reqData.Rating,
		Comment:         reqData.Comment,
		ReviewDate:      time.Now(),
	}

	if err := ctrl.db.Create(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review submitted successfully.", review)
}

// ListMine returns the caller's reviews. An explicit email query parameter
// must echo the token email.
func (ctrl *ReviewController) ListMine(c *fiber.Ctx) error {
	email := c.Locals("email").(string)

	if requested := c.Query("email"); requested != "" && requested != email {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only view your own reviews!", nil)
	}

	var reviews []models.Review
	if err := ctrl.db.Where("reviewer_email = ?", email).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched.", reviews)
}

// Update edits the caller's own review. The (id, reviewer_email) filter
// reports 404 for a missing review and for someone else's review alike, so
// existence is not leaked to other accounts.
func (ctrl *ReviewController) Update(c *fiber.Ctx) error {
	email := c.Locals("email").(string)

	reviewID, err := c.ParamsInt("id")
	if err != nil || reviewID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid review id!", nil)
	}

	reqData := c.Locals("reviewUpdate").(*reviewValidator.UpdateRequest)

	var review models.Review
	if err := ctrl.db.Where("id = ? AND reviewer_email = ?", reviewID, email).First(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	if reqData.Rating != nil {
		review.Rating = *reqData.Rating
	}
	if reqData.Comment != nil {
		review.Comment = *reqData.Comment
	}

	if err := ctrl.db.Save(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review updated successfully.", review)
}

// Delete removes the caller's own review, with the same 404 conflation as
// Update
func (ctrl *ReviewController) Delete(c *fiber.Ctx) error {
	email := c.Locals("email").(string)

	reviewID, err := c.ParamsInt("id")
	if err != nil || reviewID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid review id!", nil)
	}

	var review models.Review
	if err := ctrl.db.Where("id = ? AND reviewer_email = ?", reviewID, email).First(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	if err := ctrl.db.Delete(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review deleted successfully.", nil)
}

// ModeratorList returns all reviews with pagination (moderator only)
func (ctrl *ReviewController) ModeratorList(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	var total int64
	ctrl.db.Model(&models.Review{}).Count(&total)

	var reviews []models.Review
	if err := ctrl.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched.", fiber.Map{
		"reviews": reviews,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// ModeratorDelete removes any review by id (moderator only). Moderators can
// delete reviews but never create or edit them.
func (ctrl *ReviewController) ModeratorDelete(c *fiber.Ctx) error {
	reviewID, err := c.ParamsInt("id")
	if err != nil || reviewID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid review id!", nil)
	}

	var review models.Review
	if err := ctrl.db.First(&review, reviewID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	if err := ctrl.db.Delete(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review deleted successfully.", nil)
}
