// Package enrollment implements the checkout core: quoting a payment for a
// course (UPI QR or Google Pay wallet intent) and recording a paid enrollment.
//
// Known limitation: unless a gateway verify URL is configured, the
// transaction id and payment method on ConfirmEnrollment are taken on the
// caller's word. There is no signed callback and no settlement step.
package enrollment

import (
	"errors"
	"fmt"
	"log"
	"slices"

	"studynotion/config"
	"studynotion/models"
	"studynotion/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Payment methods accepted by the checkout flow.
const (
	MethodUPIQR     = "UPI_QR"
	MethodGooglePay = "GOOGLE_PAY"
)

// UPIQuote is the QR-flow payment descriptor shown to the client.
type UPIQuote struct {
	QRCode     string `json:"qrCode"` // PNG data URI
	Amount     uint   `json:"amount"`
	CourseName string `json:"course"`
	UPIString  string `json:"upiString"`
}

// Quote is the result of RequestQuote; exactly one of the descriptor fields
// is set, matching the requested method.
type Quote struct {
	Method    string
	UPI       *UPIQuote
	GooglePay *utils.GooglePayIntent
}

// Confirmation is returned once an enrollment has been recorded.
type Confirmation struct {
	CourseID      uint   `json:"courseId"`
	CourseName    string `json:"courseName"`
	TransactionID string `json:"transactionId"`
}

// Service orchestrates payment quoting and the enrollment write. Merchant
// identity comes from the config handed in at construction, never from the
// process environment at call time.
type Service struct {
	db      *gorm.DB
	cfg     *config.Config
	gateway *utils.GatewayClient
}

func NewService(db *gorm.DB, cfg *config.Config, gateway *utils.GatewayClient) *Service {
	return &Service{db: db, cfg: cfg, gateway: gateway}
}

// RequestQuote validates the (course, caller) pair and builds the payment
// descriptor for the requested method. Never mutates state.
func (s *Service) RequestQuote(courseID, userID uint, method string) (*Quote, error) {
	if courseID == 0 {
		return nil, fmt.Errorf("%w: course ID", ErrValidation)
	}

	course, user, err := s.loadParticipants(courseID, userID)
	if err != nil {
		return nil, err
	}

	if isEnrolled(course, user) {
		return nil, ErrAlreadyEnrolled
	}

	switch method {
	case MethodUPIQR:
		upiString := utils.BuildUPIString(s.cfg.UPIID, s.cfg.AppName, course.Price, course.ID)
		qrCode, err := utils.GenerateQRDataURI(upiString)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
		}
		return &Quote{
			Method: MethodUPIQR,
			UPI: &UPIQuote{
				QRCode:     qrCode,
				Amount:     course.Price,
				CourseName: course.CourseName,
				UPIString:  upiString,
			},
		}, nil

	case MethodGooglePay:
		intent := utils.BuildGooglePayIntent(
			course.Price,
			s.cfg.MerchantID,
			s.cfg.AppName,
			s.cfg.GatewayName,
			s.cfg.CurrencyCode,
		)
		return &Quote{Method: MethodGooglePay, GooglePay: &intent}, nil

	default:
		return nil, fmt.Errorf("%w: unsupported payment method %q", ErrValidation, method)
	}
}

// ConfirmEnrollment records a paid enrollment: one CourseProgress record,
// the course id appended to the user's arrays and the user appended to the
// course roster, all in one transaction. Receipt emails go out after commit
// and never affect the result.
func (s *Service) ConfirmEnrollment(courseID, userID uint, transactionID, paymentMethod string) (*Confirmation, error) {
	if courseID == 0 || transactionID == "" || paymentMethod == "" {
		return nil, fmt.Errorf("%w: courseId, transactionId and paymentMethod are required", ErrValidation)
	}

	course, user, err := s.loadParticipants(courseID, userID)
	if err != nil {
		return nil, err
	}

	if isEnrolled(course, user) {
		return nil, ErrAlreadyEnrolled
	}

	if s.gateway.Enabled() {
		verified, err := s.gateway.VerifyTransaction(transactionID)
		if err != nil {
			// Fail open on gateway outages: the historical flow never had a
			// lookup at all, so an unreachable gateway must not block checkout.
			log.Printf("Gateway lookup error for transaction %s: %v", transactionID, err)
		} else if !verified {
			return nil, fmt.Errorf("%w: transaction %s", ErrPaymentNotVerified, transactionID)
		}
	}

	progress := models.CourseProgress{
		CourseID:        course.ID,
		UserID:          user.ID,
		CompletedVideos: datatypes.JSONSlice[uint]{},
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin enrollment transaction: %w", tx.Error)
	}

	if err := tx.Create(&progress).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create course progress: %w", err)
	}

	user.Courses = append(user.Courses, course.ID)
	user.CourseProgress = append(user.CourseProgress, progress.ID)
	if err := tx.Save(user).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update user enrollments: %w", err)
	}

	course.StudentsEnrolled = append(course.StudentsEnrolled, user.ID)
	if err := tx.Save(course).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update course roster: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit enrollment: %w", err)
	}

	utils.SendCourseEnrollmentEmail(user.Email, user.Name, course.CourseName)
	utils.SendPaymentSuccessEmail(user.Email, user.Name, course.CourseName, course.Price, transactionID, paymentMethod)

	return &Confirmation{
		CourseID:      course.ID,
		CourseName:    course.CourseName,
		TransactionID: transactionID,
	}, nil
}

// loadParticipants fetches the active course and the calling user. Only a
// genuinely missing record maps to the not-found/unauthenticated classes;
// storage failures stay unexpected errors.
func (s *Service) loadParticipants(courseID, userID uint) (*models.Course, *models.User, error) {
	var course models.Course
	if err := s.db.Where("id = ? AND is_deleted = ? AND status = ?", courseID, false, "ACTIVE").First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: id %d", ErrCourseNotFound, courseID)
		}
		return nil, nil, fmt.Errorf("failed to load course %d: %w", courseID, err)
	}

	var user models.User
	if err := s.db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrUnauthenticated
		}
		return nil, nil, fmt.Errorf("failed to load user %d: %w", userID, err)
	}

	return &course, &user, nil
}

func isEnrolled(course *models.Course, user *models.User) bool {
	return slices.Contains(user.Courses, course.ID) ||
		slices.Contains(course.StudentsEnrolled, user.ID)
}
