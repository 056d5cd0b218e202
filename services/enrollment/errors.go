package enrollment

import "errors"

// Failure classes surfaced to the HTTP layer. Handlers map these to statuses
// with errors.Is; anything else is an unexpected failure (500).
var (
	ErrValidation         = errors.New("missing required field")
	ErrCourseNotFound     = errors.New("course not found")
	ErrUnauthenticated    = errors.New("user not authenticated")
	ErrAlreadyEnrolled    = errors.New("already enrolled in this course")
	ErrEncoding           = errors.New("failed to encode QR code")
	ErrPaymentNotVerified = errors.New("payment could not be verified")
)
