package services

import (
	"context"
	"errors"
	"strings"
	"time"

	courseModels "lms/models/course"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentStatus is the outcome kind of a payment attempt.
type PaymentStatus int

const (
	PaymentValidationFailed PaymentStatus = iota
	PaymentGatewayDeclined
	PaymentSuccess
)

// PaymentRequest carries everything the pipeline needs to charge a student
// for a course.
type PaymentRequest struct {
	CourseID   uint
	StudentID  uint
	Amount     float64
	Method     string
	CardNumber string
	Expiry     string
	CVV        string
	HolderName string
}

// PaymentOutcome reports the result of ProcessPayment. Fields tells the
// caller which card fields were missing when Status is
// PaymentValidationFailed. Payment is the audit row written for the attempt
// (nil only on validation failure); Enrollment is set only on success.
type PaymentOutcome struct {
	Status     PaymentStatus
	Fields     map[string]string
	Payment    *courseModels.Payment
	Enrollment *courseModels.Enrollment
}

// validateCard checks the presence of every card field. No Payment row is
// written for a request that never reached the gateway.
func validateCard(req PaymentRequest) map[string]string {
	fields := make(map[string]string)
	if strings.TrimSpace(req.CardNumber) == "" {
		fields["cardNumber"] = "Card number is required!"
	}
	if strings.TrimSpace(req.Expiry) == "" {
		fields["expiry"] = "Expiry date is required!"
	}
	if strings.TrimSpace(req.CVV) == "" {
		fields["cvv"] = "CVV is required!"
	}
	if strings.TrimSpace(req.HolderName) == "" {
		fields["holderName"] = "Card holder name is required!"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// ProcessPayment runs the payment pipeline: validate the card details, ask
// the gateway for a verdict, record the attempt, and on approval enroll the
// student. Exactly one Payment row is written per attempt that reaches the
// gateway, whatever the verdict. The Payment and Enrollment writes on the
// success path share one transaction so a paid-but-not-enrolled state cannot
// be observed.
func ProcessPayment(ctx context.Context, db *gorm.DB, gw Gateway, req PaymentRequest) (PaymentOutcome, error) {
	if fields := validateCard(req); fields != nil {
		return PaymentOutcome{Status: PaymentValidationFailed, Fields: fields}, nil
	}

	result, err := gw.Charge(ctx, ChargeRequest{
		Amount:     req.Amount,
		Method:     req.Method,
		CardNumber: req.CardNumber,
		Expiry:     req.Expiry,
		CVV:        req.CVV,
		HolderName: req.HolderName,
	})
	if err != nil {
		return PaymentOutcome{}, err
	}

	payment := courseModels.Payment{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		Amount:    req.Amount,
		Method:    req.Method,
		Reference: uuid.NewString(),
		PaidAt:    time.Now().UTC(),
	}

	if !result.Approved {
		payment.Status = courseModels.PaymentStatusFailed
		if err := db.Create(&payment).Error; err != nil {
			return PaymentOutcome{}, err
		}
		return PaymentOutcome{Status: PaymentGatewayDeclined, Payment: &payment}, nil
	}

	payment.Status = courseModels.PaymentStatusCompleted
	enrollment := courseModels.Enrollment{
		StudentID:        req.StudentID,
		CourseID:         req.CourseID,
		EnrollDate:       time.Now().UTC(),
		CompletionStatus: false,
		PaymentStatus:    courseModels.PaymentCompleted,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		return tx.Create(&enrollment).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			// Lost a race against a concurrent enrollment for the same pair.
			return PaymentOutcome{}, errors.New("student is already enrolled in this course")
		}
		return PaymentOutcome{}, err
	}

	return PaymentOutcome{Status: PaymentSuccess, Payment: &payment, Enrollment: &enrollment}, nil
}
