package paymentController

import (
	"errors"
	"log"

	"studynotion/middleware"
	"studynotion/services/enrollment"
	paymentValidator "studynotion/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// GeneratePaymentQR returns the UPI deep link and its QR rendering for a course.
func GeneratePaymentQR(svc *enrollment.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not authenticated", nil)
		}

		reqData, ok := c.Locals("validatedGenerateQR").(*paymentValidator.GenerateQRRequest)
		if !ok {
			return middleware.ValidationErrorResponse(c, "Invalid request data!")
		}

		quote, err := svc.RequestQuote(reqData.CourseID, userID, enrollment.MethodUPIQR)
		if err != nil {
			return respondPaymentError(c, err, "Failed to generate QR code")
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "QR Code generated successfully", fiber.Map{
			"qrCode":    quote.UPI.QRCode,
			"amount":    quote.UPI.Amount,
			"course":    quote.UPI.CourseName,
			"upiString": quote.UPI.UPIString,
		})
	}
}

// VerifyPayment records the payment the client reports and enrolls the student.
func VerifyPayment(svc *enrollment.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not authenticated", nil)
		}

		reqData, ok := c.Locals("validatedVerifyPayment").(*paymentValidator.VerifyPaymentRequest)
		if !ok {
			return middleware.ValidationErrorResponse(c, "Invalid request data!")
		}

		confirmation, err := svc.ConfirmEnrollment(reqData.CourseID, userID, reqData.TransactionID, reqData.PaymentMethod)
		if err != nil {
			return respondPaymentError(c, err, "Failed to verify payment")
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Course enrollment successful", confirmation)
	}
}

// CreateGooglePayIntent returns the wallet configuration descriptor for a course.
func CreateGooglePayIntent(svc *enrollment.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not authenticated", nil)
		}

		reqData, ok := c.Locals("validatedGooglePayIntent").(*paymentValidator.GenerateQRRequest)
		if !ok {
			return middleware.ValidationErrorResponse(c, "Invalid request data!")
		}

		quote, err := svc.RequestQuote(reqData.CourseID, userID, enrollment.MethodGooglePay)
		if err != nil {
			return respondPaymentError(c, err, "Failed to create payment intent")
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment intent created successfully", quote.GooglePay)
	}
}

// respondPaymentError maps service failure classes onto HTTP statuses.
func respondPaymentError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, enrollment.ErrValidation):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide all required fields", nil)
	case errors.Is(err, enrollment.ErrCourseNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	case errors.Is(err, enrollment.ErrUnauthenticated):
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not authenticated", nil)
	case errors.Is(err, enrollment.ErrAlreadyEnrolled):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You are already enrolled in this course", nil)
	case errors.Is(err, enrollment.ErrPaymentNotVerified):
		return middleware.JsonResponse(c, fiber.StatusPaymentRequired, false, "Payment could not be verified", nil)
	default:
		log.Printf("Payment error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, fallback, err)
	}
}
