package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"scholarhub/config"
	"scholarhub/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Auth verifies bearer tokens and resolves the caller's role from the user
// directory. It holds its dependencies explicitly instead of reading globals.
type Auth struct {
	db     *gorm.DB
	jwtKey []byte
	expiry time.Duration
}

func NewAuth(cfg *config.Config, db *gorm.DB) *Auth {
	return &Auth{
		db:     db,
		jwtKey: []byte(cfg.JWTKey),
		expiry: time.Duration(cfg.TokenExpiryMinutes) * time.Minute,
	}
}

// GenerateJWT issues a signed token carrying the caller's email claim
func (a *Auth) GenerateJWT(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"jti":   uuid.NewString(),
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(a.expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.jwtKey)
}

// Protect checks for a valid JWT token and resolves the caller's role.
// A missing Authorization header is 401; a header that is present but does
// not verify is 403. The two outcomes are deliberately distinct.
func (a *Auth) Protect(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing Authorization header!", nil)
	}

	// The token should be prefixed with "Bearer "
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return JsonResponse(c, fiber.StatusForbidden, false, "Invalid Authorization header format!", nil)
	}

	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.jwtKey, nil
	})
	if err != nil || !token.Valid {
		return JsonResponse(c, fiber.StatusForbidden, false, "Invalid or expired token!", nil)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return JsonResponse(c, fiber.StatusForbidden, false, "Invalid token payload!", nil)
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return JsonResponse(c, fiber.StatusForbidden, false, "Invalid token payload!", nil)
	}

	// Resolve the caller's role from the user directory. An email with no
	// record is still a valid caller with the default student role.
	name := ""
	role := models.RoleStudent

	var user models.User
	err = a.db.Where("email = ?", email).First(&user).Error
	switch {
	case err == nil:
		name = user.Name
		role = user.Role
	case errors.Is(err, gorm.ErrRecordNotFound):
		// default role applies
	default:
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to resolve user role!", nil)
	}

	c.Locals("email", email)
	c.Locals("name", name)
	c.Locals("role", role)

	return c.Next()
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", errors)
}
