package dashboardController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"scholarhub/config"
	dashboardController "scholarhub/controllers/dashboard"
	"scholarhub/database"
	"scholarhub/middleware"
	"scholarhub/models"
	dashboardRoutes "scholarhub/routers/dashboardRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupTest(t *testing.T) (*fiber.App, *gorm.DB, *middleware.Auth) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))

	cfg := &config.Config{JWTKey: "test-secret", TokenExpiryMinutes: 60}
	auth := middleware.NewAuth(cfg, db)

	app := fiber.New()
	dashboardRoutes.SetupDashboardRoutes(app, auth, dashboardController.New(db))
	return app, db, auth
}

func tokenFor(t *testing.T, auth *middleware.Auth, db *gorm.DB, email string, role models.Role) string {
	t.Helper()

	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err != nil {
		require.NoError(t, db.Create(&models.User{Name: "Test User", Email: email, Role: role}).Error)
	}
	token, err := auth.GenerateJWT(email)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func TestDashboardIsAdminOnly(t *testing.T) {
	app, db, auth := setupTest(t)
	studentToken := tokenFor(t, auth, db, "kid@example.com", models.RoleStudent)
	modToken := tokenFor(t, auth, db, "mod@example.com", models.RoleModerator)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/users", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodGet, "/dashboard/users", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// moderator is not admin; the gates are disjoint
	resp, _ = doRequest(t, app, http.MethodGet, "/dashboard/users", modToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestUserListPaginationAndRoleFilter(t *testing.T) {
	app, db, auth := setupTest(t)
	adminToken := tokenFor(t, auth, db, "admin@example.com", models.RoleAdmin)

	for i := 0; i < 5; i++ {
		require.NoError(t, db.Create(&models.User{
			Email: fmt.Sprintf("student%d@example.com", i),
			Role:  models.RoleStudent,
		}).Error)
	}

	resp, env := doRequest(t, app, http.MethodGet, "/dashboard/users?role=student&page=1&limit=3", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		Users      []models.User `json:"users"`
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.EqualValues(t, 5, data.Pagination.Total)
	assert.Len(t, data.Users, 3)
	for _, u := range data.Users {
		assert.Equal(t, models.RoleStudent, u.Role)
	}
}

func TestUpdateUserRoleValidatesAndLowercases(t *testing.T) {
	app, db, auth := setupTest(t)
	adminToken := tokenFor(t, auth, db, "admin@example.com", models.RoleAdmin)

	target := models.User{Email: "target@example.com", Role: models.RoleStudent}
	require.NoError(t, db.Create(&target).Error)

	path := fmt.Sprintf("/dashboard/users/%d/role", target.ID)

	resp, _ := doRequest(t, app, http.MethodPatch, path, adminToken, fiber.Map{"role": "superuser"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodPatch, path, adminToken, fiber.Map{"role": "MODERATOR"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.User
	require.NoError(t, db.First(&updated, target.ID).Error)
	assert.Equal(t, models.RoleModerator, updated.Role)

	resp, _ = doRequest(t, app, http.MethodPatch, "/dashboard/users/9999/role", adminToken, fiber.Map{"role": "admin"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteUserFreesEmail(t *testing.T) {
	app, db, auth := setupTest(t)
	adminToken := tokenFor(t, auth, db, "admin@example.com", models.RoleAdmin)

	target := models.User{Email: "target@example.com", Role: models.RoleStudent}
	require.NoError(t, db.Create(&target).Error)

	resp, _ := doRequest(t, app, http.MethodDelete, fmt.Sprintf("/dashboard/users/%d", target.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	db.Unscoped().Model(&models.User{}).Where("email = ?", "target@example.com").Count(&count)
	assert.EqualValues(t, 0, count)

	// deleting again is a 404
	resp, _ = doRequest(t, app, http.MethodDelete, fmt.Sprintf("/dashboard/users/%d", target.ID), adminToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAnalyticsCounts(t *testing.T) {
	app, db, auth := setupTest(t)
	adminToken := tokenFor(t, auth, db, "admin@example.com", models.RoleAdmin)

	scholarship := models.Scholarship{
		ScholarshipName: "Grant",
		UniversityName:  "U",
		ApplicationFee:  20,
		ServiceCharge:   5,
		PostDate:        time.Now(),
		Deadline:        time.Now().AddDate(0, 1, 0),
	}
	require.NoError(t, db.Create(&scholarship).Error)

	require.NoError(t, db.Create(&models.Application{
		ScholarshipID:  scholarship.ID,
		UserEmail:      "a@example.com",
		ApplicationFee: 20,
		ServiceCharge:  5,
		Status:         models.ApplicationApproved,
		PaymentStatus:  models.PaymentPaid,
		AppliedAt:      time.Now(),
	}).Error)
	require.NoError(t, db.Create(&models.Application{
		ScholarshipID: scholarship.ID,
		UserEmail:     "b@example.com",
		Status:        models.ApplicationPending,
		PaymentStatus: models.PaymentUnpaid,
		AppliedAt:     time.Now(),
	}).Error)

	resp, env := doRequest(t, app, http.MethodGet, "/dashboard/analytics", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		Users                int64            `json:"users"`
		Scholarships         int64            `json:"scholarships"`
		Applications         int64            `json:"applications"`
		Reviews              int64            `json:"reviews"`
		ApplicationsByStatus map[string]int64 `json:"applicationsByStatus"`
		CollectedFees        float64          `json:"collectedFees"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.EqualValues(t, 1, data.Users)
	assert.EqualValues(t, 1, data.Scholarships)
	assert.EqualValues(t, 2, data.Applications)
	assert.EqualValues(t, 0, data.Reviews)
	assert.EqualValues(t, 1, data.ApplicationsByStatus["pending"])
	assert.EqualValues(t, 1, data.ApplicationsByStatus["approved"])
	assert.InDelta(t, 25, data.CollectedFees, 0.001)
}
