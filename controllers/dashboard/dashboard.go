package dashboardController

import (
	"errors"

	"scholarhub/middleware"
	"scholarhub/models"
	dashboardValidator "scholarhub/validators/dashboard"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	db *gorm.DB
}

func New(db *gorm.DB) *DashboardController {
	return &DashboardController{db: db}
}

// UserList returns the user directory with pagination and an optional role
// filter
func (ctrl *DashboardController) UserList(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	roleFilter := c.Query("role")

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := ctrl.db.Model(&models.User{})
	if roleFilter != "" {
		role, err := models.ParseRole(roleFilter)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid role filter!", nil)
		}
		query = query.Where("role = ?", role)
	}

	var total int64
	query.Count(&total)

	var users []models.User
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user list!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User list.", fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// UpdateUserRole sets a user's role to one of the three known roles
func (ctrl *DashboardController) UpdateUserRole(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil || userID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	reqData := c.Locals("roleRequest").(*dashboardValidator.RoleRequest)

	var user models.User
	if err := ctrl.db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.Role = reqData.ParsedRole
	if err := ctrl.db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update role!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role updated successfully.", user)
}

// DeleteUser removes a user. The delete is unscoped so the email can
// register again later without tripping the unique constraint.
func (ctrl *DashboardController) DeleteUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil || userID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	var user models.User
	if err := ctrl.db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := ctrl.db.Unscoped().Delete(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully.", nil)
}

// Analytics returns collection counts, the application status breakdown and
// collected fees for the admin dashboard
func (ctrl *DashboardController) Analytics(c *fiber.Ctx) error {
	var userCount, scholarshipCount, applicationCount, reviewCount int64

	if err := errors.Join(
		ctrl.db.Model(&models.User{}).Count(&userCount).Error,
		ctrl.db.Model(&models.Scholarship{}).Count(&scholarshipCount).Error,
		ctrl.db.Model(&models.Application{}).Count(&applicationCount).Error,
		ctrl.db.Model(&models.Review{}).Count(&reviewCount).Error,
	); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute analytics!", nil)
	}

	statusBreakdown := make(map[string]int64)
	for _, status := range []models.ApplicationStatus{
		models.ApplicationPending,
		models.ApplicationApproved,
		models.ApplicationRejected,
	} {
		var n int64
		ctrl.db.Model(&models.Application{}).Where("status = ?", status).Count(&n)
		statusBreakdown[string(status)] = n
	}

	var collectedFees float64
	ctrl.db.Model(&models.Application{}).
		Where("payment_status = ?", models.PaymentPaid).
		Select("COALESCE(SUM(application_fee + service_charge), 0)").
		Scan(&collectedFees)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Analytics.", fiber.Map{
		"users":                userCount,
		"scholarships":         scholarshipCount,
		"applications":         applicationCount,
		"reviews":              reviewCount,
		"applicationsByStatus": statusBreakdown,
		"collectedFees":        collectedFees,
	})
}
