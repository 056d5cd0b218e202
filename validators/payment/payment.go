package paymentValidator

import (
	"studynotion/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// GenerateQRRequest is the body of POST /payment/generate-qr and
// POST /payment/google-pay-intent.
type GenerateQRRequest struct {
	CourseID uint `json:"courseId" validate:"required"`
}

// VerifyPaymentRequest is the body of POST /payment/verify.
type VerifyPaymentRequest struct {
	CourseID      uint   `json:"courseId" validate:"required"`
	TransactionID string `json:"transactionId" validate:"required"`
	PaymentMethod string `json:"paymentMethod" validate:"required"`
}

// GenerateQR validates the QR generation request body
func GenerateQR() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(GenerateQRRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, "Invalid request body!")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, "Please provide course ID")
		}

		c.Locals("validatedGenerateQR", reqData)
		return c.Next()
	}
}

// VerifyPayment validates the payment verification request body
func VerifyPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(VerifyPaymentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, "Invalid request body!")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, "Please provide all required fields")
		}

		c.Locals("validatedVerifyPayment", reqData)
		return c.Next()
	}
}

// GooglePayIntent validates the payment intent request body
func GooglePayIntent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(GenerateQRRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, "Invalid request body!")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, "Please provide course ID")
		}

		c.Locals("validatedGooglePayIntent", reqData)
		return c.Next()
	}
}
