package paymentController_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"lms/config"
	paymentController "lms/controllers/payment"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	paymentRoutes "lms/routers/paymentRoutes"
	"lms/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupPaymentApp(t *testing.T) (*fiber.App, *gorm.DB, string) {
	t.Helper()

	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&courseModels.Course{},
		&courseModels.Enrollment{},
		&courseModels.Payment{},
	))
	database.Database = database.DbInstance{Db: db}

	// Mock gateway without the processing delay
	paymentController.UseGateway(services.NewMockGateway("4000", 0))

	user := models.User{Name: "Student", Email: "student@example.com", Password: "x", Role: models.RoleStudent, Status: models.StatusActive}
	require.NoError(t, db.Create(&user).Error)
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)

	course := courseModels.Course{Title: "Premium Go Course", Description: "desc", InstructorID: 99, IsPremium: true, Price: 49.99}
	require.NoError(t, db.Create(&course).Error)

	app := fiber.New()
	paymentRoutes.SetupPaymentRoutes(app)
	return app, db, token
}

func checkout(t *testing.T, app *fiber.App, token string, payload interface{}) (map[string]interface{}, int) {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/payment/checkout", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result, resp.StatusCode
}

func cardPayload(cardNumber string) fiber.Map {
	return fiber.Map{
		"course_id":   1,
		"card_number": cardNumber,
		"expiry":      "12/27",
		"cvv":         "123",
		"holder_name": "Jane Doe",
	}
}

func TestCheckoutDeclined(t *testing.T) {
	app, db, token := setupPaymentApp(t)

	_, status := checkout(t, app, token, cardPayload("4000111122223333"))
	assert.Equal(t, fiber.StatusPaymentRequired, status)

	var payments, enrollments int64
	db.Model(&courseModels.Payment{}).Where("status = ?", courseModels.PaymentStatusFailed).Count(&payments)
	db.Model(&courseModels.Enrollment{}).Count(&enrollments)
	assert.EqualValues(t, 1, payments)
	assert.EqualValues(t, 0, enrollments)
}

func TestCheckoutSuccess(t *testing.T) {
	app, db, token := setupPaymentApp(t)

	result, status := checkout(t, app, token, cardPayload("4111111111111111"))
	require.Equal(t, fiber.StatusOK, status)

	data := result["data"].(map[string]interface{})
	payment := data["payment"].(map[string]interface{})
	assert.Equal(t, courseModels.PaymentStatusCompleted, payment["status"])
	assert.NotEmpty(t, payment["reference"])

	var payments, enrollments int64
	db.Model(&courseModels.Payment{}).Where("status = ?", courseModels.PaymentStatusCompleted).Count(&payments)
	db.Model(&courseModels.Enrollment{}).Count(&enrollments)
	assert.EqualValues(t, 1, payments)
	assert.EqualValues(t, 1, enrollments)
}

func TestCheckoutRetryAfterDecline(t *testing.T) {
	app, db, token := setupPaymentApp(t)

	_, status := checkout(t, app, token, cardPayload("4000111122223333"))
	require.Equal(t, fiber.StatusPaymentRequired, status)

	_, status = checkout(t, app, token, cardPayload("4111111111111111"))
	require.Equal(t, fiber.StatusOK, status)

	// Every attempt leaves an audit row
	var payments int64
	db.Model(&courseModels.Payment{}).Count(&payments)
	assert.EqualValues(t, 2, payments)
}

func TestCheckoutAlreadyEnrolled(t *testing.T) {
	app, _, token := setupPaymentApp(t)

	_, status := checkout(t, app, token, cardPayload("4111111111111111"))
	require.Equal(t, fiber.StatusOK, status)

	_, status = checkout(t, app, token, cardPayload("4111111111111111"))
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestCheckoutValidation(t *testing.T) {
	app, db, token := setupPaymentApp(t)

	payload := cardPayload("4111111111111111")
	payload["cvv"] = ""

	_, status := checkout(t, app, token, payload)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	// Requests that never reach the gateway write no audit row
	var payments int64
	db.Model(&courseModels.Payment{}).Count(&payments)
	assert.EqualValues(t, 0, payments)
}

func TestCheckoutFreeCourseRejected(t *testing.T) {
	app, db, token := setupPaymentApp(t)

	free := courseModels.Course{Title: "Free Course", Description: "desc", InstructorID: 99, Price: 0}
	require.NoError(t, db.Create(&free).Error)

	payload := cardPayload("4111111111111111")
	payload["course_id"] = free.ID

	_, status := checkout(t, app, token, payload)
	assert.Equal(t, fiber.StatusBadRequest, status)
}
