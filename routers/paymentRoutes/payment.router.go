package paymentRoutes

import (
	paymentController "studynotion/controllers/payment"
	"studynotion/middleware"
	"studynotion/services/enrollment"
	paymentValidator "studynotion/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes registers the checkout endpoints. All of them require an
// authenticated student.
func SetupPaymentRoutes(app *fiber.App, svc *enrollment.Service) {
	paymentGroup := app.Group("/payment", middleware.JWTMiddleware, middleware.RequireStudent)

	paymentGroup.Post("/generate-qr", paymentValidator.GenerateQR(), paymentController.GeneratePaymentQR(svc))
	paymentGroup.Post("/verify", paymentValidator.VerifyPayment(), paymentController.VerifyPayment(svc))
	paymentGroup.Post("/google-pay-intent", paymentValidator.GooglePayIntent(), paymentController.CreateGooglePayIntent(svc))
}
