package authController

import (
	"errors"

	"scholarhub/middleware"
	"scholarhub/models"
	authValidator "scholarhub/validators/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AuthController struct {
	db   *gorm.DB
	auth *middleware.Auth
}

func New(db *gorm.DB, auth *middleware.Auth) *AuthController {
	return &AuthController{db: db, auth: auth}
}

// IssueToken mints a bearer token for the given email
func (ctrl *AuthController) IssueToken(c *fiber.Ctx) error {
	reqData := c.Locals("tokenRequest").(*authValidator.TokenRequest)

	token, err := ctrl.auth.GenerateJWT(reqData.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Token issued.", fiber.Map{
		"token": token,
	})
}

// Register creates a user record on first sight of an email. Re-registering
// an existing email is a no-op returning the stored record.
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	reqData := c.Locals("registerRequest").(*authValidator.RegisterRequest)

	var existing models.User
	err := ctrl.db.Where("email = ?", reqData.Email).First(&existing).Error
	if err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "User already exists.", existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to look up user!", nil)
	}

	// Role is always student on self-registration; only an admin changes it.
	newUser := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		PhotoURL: reqData.PhotoURL,
		Role:     models.RoleStudent,
	}

	if err := ctrl.db.Create(&newUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a race with a concurrent registration for the same email.
			ctrl.db.Where("email = ?", reqData.Email).First(&existing)
			return middleware.JsonResponse(c, fiber.StatusOK, true, "User already exists.", existing)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", newUser)
}

// UserRole returns the role for an email, defaulting to student when the
// email has no record
func (ctrl *AuthController) UserRole(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email query parameter is required!", nil)
	}

	role := models.RoleStudent

	var user models.User
	err := ctrl.db.Where("email = ?", email).First(&user).Error
	switch {
	case err == nil:
		role = user.Role
	case errors.Is(err, gorm.ErrRecordNotFound):
		// default role applies
	default:
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to look up role!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User role.", fiber.Map{
		"role": role,
	})
}

// UserByEmail returns the public user record for an email
func (ctrl *AuthController) UserByEmail(c *fiber.Ctx) error {
	email := c.Params("email")

	var user models.User
	if err := ctrl.db.Where("email = ?", email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User found.", user)
}
