package scholarshipController_test

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
	scholarshipController "scholarhub/controllers/scholarship"
	"scholarhub/database"
	"scholarhub/middleware"
	"scholarhub/models"
	scholarshipRoutes "scholarhub/routers/scholarshipRoutes"

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

type listData struct {
	Scholarships []models.Scholarship `json:"scholarships"`
	Pagination   struct {
		Total int64 `json:"total"`
		Page  int   `json:"page"`
		Limit int   `json:"limit"`
	} `json:"pagination"`
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
	scholarshipRoutes.SetupScholarshipRoutes(app, auth, scholarshipController.New(db))
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

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
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

func seedScholarship(t *testing.T, db *gorm.DB, name, university, degree, category string, fee float64, posted time.Time) models.Scholarship {
	t.Helper()

	scholarship := models.Scholarship{
		ScholarshipName:     name,
		UniversityName:      university,
		Degree:              degree,
		ScholarshipCategory: category,
		ApplicationFee:      fee,
		PostDate:            posted,
		Deadline:            posted.AddDate(0, 6, 0),
	}
	require.NoError(t, db.Create(&scholarship).Error)
	return scholarship
}

func TestListSearchMatchesAcrossFields(t *testing.T) {
	app, db, _ := setupTest(t)
	now := time.Now()

	seedScholarship(t, db, "MIT Presidential Grant", "Massachusetts Tech", "Masters", "full", 40, now)
	seedScholarship(t, db, "Opportunity Fund", "MIT", "Bachelors", "full", 25, now)
	seedScholarship(t, db, "Research Stipend", "State College", "Mitigation Science", "partial", 10, now)
	seedScholarship(t, db, "Unrelated Award", "Somewhere Else", "PhD", "partial", 5, now)

	resp, env := doRequest(t, app, http.MethodGet, "/scholarships?search=mit", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data listData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.EqualValues(t, 3, data.Pagination.Total)
	require.Len(t, data.Scholarships, 3)
	for _, s := range data.Scholarships {
		haystack := strings.ToLower(s.ScholarshipName + " " + s.UniversityName + " " + s.Degree)
		assert.Contains(t, haystack, "mit")
	}
}

func TestListPaginationAndTotal(t *testing.T) {
	app, db, _ := setupTest(t)
	now := time.Now()

	for i := 0; i < 8; i++ {
		seedScholarship(t, db, fmt.Sprintf("MIT Award %d", i), "MIT", "Masters", "full", float64(i), now)
	}

	resp, env := doRequest(t, app, http.MethodGet, "/scholarships?search=MIT&page=2&limit=6", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data listData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.EqualValues(t, 8, data.Pagination.Total)
	assert.Len(t, data.Scholarships, 2)
	assert.Equal(t, 2, data.Pagination.Page)
	assert.Equal(t, 6, data.Pagination.Limit)
}

func TestListSortOrders(t *testing.T) {
	app, db, _ := setupTest(t)
	now := time.Now()

	seedScholarship(t, db, "A", "U1", "Masters", "full", 30, now.AddDate(0, 0, -2))
	seedScholarship(t, db, "B", "U2", "Masters", "full", 10, now.AddDate(0, 0, -1))
	seedScholarship(t, db, "C", "U3", "Masters", "full", 20, now)

	resp, env := doRequest(t, app, http.MethodGet, "/scholarships?sort=feeAsc", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var data listData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Scholarships, 3)
	assert.Equal(t, []string{"B", "C", "A"}, namesOf(data.Scholarships))

	_, env = doRequest(t, app, http.MethodGet, "/scholarships?sort=feeDesc", "", nil)
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, []string{"A", "C", "B"}, namesOf(data.Scholarships))

	_, env = doRequest(t, app, http.MethodGet, "/scholarships?sort=newest", "", nil)
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, []string{"C", "B", "A"}, namesOf(data.Scholarships))
}

func namesOf(scholarships []models.Scholarship) []string {
	names := make([]string, len(scholarships))
	for i, s := range scholarships {
		names[i] = s.ScholarshipName
	}
	return names
}

func TestListCategoryFilter(t *testing.T) {
	app, db, _ := setupTest(t)
	now := time.Now()

	seedScholarship(t, db, "Full Ride", "U1", "Masters", "full", 30, now)
	seedScholarship(t, db, "Partial Aid", "U2", "Masters", "partial", 10, now)

	resp, env := doRequest(t, app, http.MethodGet, "/scholarships?category=partial", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data listData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Scholarships, 1)
	assert.Equal(t, "Partial Aid", data.Scholarships[0].ScholarshipName)
}

func TestCreateRequiresToken(t *testing.T) {
	app, _, _ := setupTest(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/scholarships", "", fiber.Map{
		"scholarshipName": "X", "universityName": "Y",
		"applicationFee": 10, "postDate": "2026-01-01", "deadline": "2026-06-01",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateAndGet(t *testing.T) {
	app, db, auth := setupTest(t)
	token := tokenFor(t, auth, db, "anyone@example.com", models.RoleStudent)

	resp, env := doRequest(t, app, http.MethodPost, "/scholarships", token, fiber.Map{
		"scholarshipName":     "New Grant",
		"universityName":      "Tech U",
		"scholarshipCategory": "full",
		"degree":              "Masters",
		"applicationFee":      15.5,
		"postDate":            "2026-01-10",
		"deadline":            "2026-07-01",
		"eligibility":         fiber.Map{"minGPA": 3.5},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Scholarship
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotZero(t, created.ID)

	resp, env = doRequest(t, app, http.MethodGet, fmt.Sprintf("/scholarships/%d", created.ID), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched models.Scholarship
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	assert.Equal(t, "New Grant", fetched.ScholarshipName)
	assert.InDelta(t, 15.5, fetched.ApplicationFee, 0.001)
}

func TestCreateRejectsBadDate(t *testing.T) {
	app, db, auth := setupTest(t)
	token := tokenFor(t, auth, db, "anyone@example.com", models.RoleStudent)

	resp, _ := doRequest(t, app, http.MethodPost, "/scholarships", token, fiber.Map{
		"scholarshipName": "X", "universityName": "Y",
		"applicationFee": 10, "postDate": "January 1st", "deadline": "2026-06-01",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMutationIsAdminOnly(t *testing.T) {
	app, db, auth := setupTest(t)
	scholarship := seedScholarship(t, db, "Grant", "U", "Masters", "full", 10, time.Now())

	studentToken := tokenFor(t, auth, db, "kid@example.com", models.RoleStudent)
	adminToken := tokenFor(t, auth, db, "admin@example.com", models.RoleAdmin)

	path := fmt.Sprintf("/scholarships/%d", scholarship.ID)

	resp, _ := doRequest(t, app, http.MethodPatch, path, studentToken, fiber.Map{"degree": "PhD"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodPatch, path, adminToken, fiber.Map{"degree": "PhD"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Scholarship
	require.NoError(t, db.First(&updated, scholarship.ID).Error)
	assert.Equal(t, "PhD", updated.Degree)

	resp, _ = doRequest(t, app, http.MethodDelete, path, studentToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodDelete, path, adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	db.Model(&models.Scholarship{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestGetNotFound(t *testing.T) {
	app, _, _ := setupTest(t)

	resp, _ := doRequest(t, app, http.MethodGet, "/scholarships/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
