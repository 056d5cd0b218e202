package paymentController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"studynotion/config"
	"studynotion/middleware"
	"studynotion/models"
	paymentRoutes "studynotion/routers/paymentRoutes"
	"studynotion/services/enrollment"
	"studynotion/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:       "test-secret",
		AppName:      "StudyNotion",
		UPIID:        "studynotion@upi",
		MerchantID:   "merchant-1",
		GatewayName:  "example",
		CurrencyCode: "INR",
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Course{}, &models.CourseProgress{}))

	svc := enrollment.NewService(db, config.AppConfig, utils.NewGatewayClient(""))

	app := fiber.New()
	paymentRoutes.SetupPaymentRoutes(app, svc)
	return app, db
}

func seedStudent(t *testing.T, db *gorm.DB) (models.User, string) {
	t.Helper()

	user := models.User{
		Name:           "Priya",
		Email:          "priya@example.com",
		Role:           "STUDENT",
		Password:       "hashed",
		Courses:        datatypes.JSONSlice[uint]{},
		CourseProgress: datatypes.JSONSlice[uint]{},
	}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, "STUDENT", user.Email)
	require.NoError(t, err)

	return user, token
}

func seedCourse(t *testing.T, db *gorm.DB, price uint) models.Course {
	t.Helper()

	course := models.Course{
		CourseName:       "Learn Go",
		Price:            price,
		Status:           "ACTIVE",
		StudentsEnrolled: datatypes.JSONSlice[uint]{},
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func doRequest(t *testing.T, app *fiber.App, path, token string, body any) (int, map[string]any) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return resp.StatusCode, envelope
}

func TestGenerateQRRequiresAuth(t *testing.T) {
	app, _ := setupApp(t)

	status, envelope := doRequest(t, app, "/payment/generate-qr", "", fiber.Map{"courseId": 1})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, false, envelope["success"])
}

func TestGenerateQRRejectsNonStudent(t *testing.T) {
	app, db := setupApp(t)

	instructor := models.User{Name: "Ravi", Email: "ravi@example.com", Role: "INSTRUCTOR", Password: "hashed"}
	require.NoError(t, db.Create(&instructor).Error)
	token, err := middleware.GenerateJWT(instructor.ID, instructor.Name, "INSTRUCTOR", instructor.Email)
	require.NoError(t, err)

	status, _ := doRequest(t, app, "/payment/generate-qr", token, fiber.Map{"courseId": 1})
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestGenerateQRMissingCourseID(t *testing.T) {
	app, db := setupApp(t)
	_, token := seedStudent(t, db)

	status, envelope := doRequest(t, app, "/payment/generate-qr", token, fiber.Map{})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Please provide course ID", envelope["message"])
}

func TestGenerateQRCourseNotFound(t *testing.T) {
	app, db := setupApp(t)
	_, token := seedStudent(t, db)

	status, envelope := doRequest(t, app, "/payment/generate-qr", token, fiber.Map{"courseId": 9999})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Course not found", envelope["message"])
}

func TestGenerateQRSuccess(t *testing.T) {
	app, db := setupApp(t)
	_, token := seedStudent(t, db)
	course := seedCourse(t, db, 499)

	status, envelope := doRequest(t, app, "/payment/generate-qr", token, fiber.Map{"courseId": course.ID})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, envelope["success"])

	data := envelope["data"].(map[string]any)
	expected := fmt.Sprintf("upi://pay?pa=studynotion@upi&pn=StudyNotion&am=499&tn=Course-%d", course.ID)
	assert.Equal(t, expected, data["upiString"])
	assert.Equal(t, float64(499), data["amount"])
	assert.Equal(t, "Learn Go", data["course"])
	assert.True(t, strings.HasPrefix(data["qrCode"].(string), "data:image/png;base64,"))
}

func TestGooglePayIntentSuccess(t *testing.T) {
	app, db := setupApp(t)
	_, token := seedStudent(t, db)
	course := seedCourse(t, db, 1299)

	status, envelope := doRequest(t, app, "/payment/google-pay-intent", token, fiber.Map{"courseId": course.ID})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Payment intent created successfully", envelope["message"])

	data := envelope["data"].(map[string]any)
	assert.Equal(t, float64(2), data["apiVersion"])

	txnInfo := data["transactionInfo"].(map[string]any)
	assert.Equal(t, "1299", txnInfo["totalPrice"])
	assert.Equal(t, "INR", txnInfo["currencyCode"])

	merchantInfo := data["merchantInfo"].(map[string]any)
	assert.Equal(t, "merchant-1", merchantInfo["merchantId"])
	assert.Equal(t, "StudyNotion", merchantInfo["merchantName"])
}

func TestVerifyPaymentMissingFields(t *testing.T) {
	app, db := setupApp(t)
	_, token := seedStudent(t, db)
	course := seedCourse(t, db, 499)

	status, envelope := doRequest(t, app, "/payment/verify", token, fiber.Map{"courseId": course.ID})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Please provide all required fields", envelope["message"])
}

func TestVerifyPaymentEnrolls(t *testing.T) {
	app, db := setupApp(t)
	student, token := seedStudent(t, db)
	course := seedCourse(t, db, 499)

	status, envelope := doRequest(t, app, "/payment/verify", token, fiber.Map{
		"courseId":      course.ID,
		"transactionId": "tx123",
		"paymentMethod": "UPI_QR",
	})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Course enrollment successful", envelope["message"])

	data := envelope["data"].(map[string]any)
	assert.Equal(t, float64(course.ID), data["courseId"])
	assert.Equal(t, "Learn Go", data["courseName"])
	assert.Equal(t, "tx123", data["transactionId"])

	var freshUser models.User
	require.NoError(t, db.First(&freshUser, student.ID).Error)
	assert.Contains(t, []uint(freshUser.Courses), course.ID)

	var freshCourse models.Course
	require.NoError(t, db.First(&freshCourse, course.ID).Error)
	assert.Contains(t, []uint(freshCourse.StudentsEnrolled), student.ID)
}

func TestVerifyPaymentTwiceReturnsAlreadyEnrolled(t *testing.T) {
	app, db := setupApp(t)
	_, token := seedStudent(t, db)
	course := seedCourse(t, db, 499)

	status, _ := doRequest(t, app, "/payment/verify", token, fiber.Map{
		"courseId":      course.ID,
		"transactionId": "tx123",
		"paymentMethod": "UPI_QR",
	})
	require.Equal(t, fiber.StatusOK, status)

	status, envelope := doRequest(t, app, "/payment/verify", token, fiber.Map{
		"courseId":      course.ID,
		"transactionId": "tx456",
		"paymentMethod": "UPI_QR",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "You are already enrolled in this course", envelope["message"])

	var progressCount int64
	require.NoError(t, db.Model(&models.CourseProgress{}).Count(&progressCount).Error)
	assert.Equal(t, int64(1), progressCount)
}

func TestGenerateQRAfterEnrollmentRejected(t *testing.T) {
	app, db := setupApp(t)
	_, token := seedStudent(t, db)
	course := seedCourse(t, db, 499)

	status, _ := doRequest(t, app, "/payment/verify", token, fiber.Map{
		"courseId":      course.ID,
		"transactionId": "tx123",
		"paymentMethod": "UPI_QR",
	})
	require.Equal(t, fiber.StatusOK, status)

	status, envelope := doRequest(t, app, "/payment/generate-qr", token, fiber.Map{"courseId": course.ID})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "You are already enrolled in this course", envelope["message"])
}
