package services

import (
	"errors"
	"time"

	courseModels "lms/models/course"

	"gorm.io/gorm"
)

// EnrollStatus is the outcome kind of an enrollment request.
type EnrollStatus int

const (
	EnrollNotFound EnrollStatus = iota
	EnrollAlreadyEnrolled
	EnrollEnrolled
	EnrollRedirectToPayment
)

// EnrollOutcome reports the result of RequestEnroll. When Status is
// EnrollRedirectToPayment, Amount carries the price the payment pipeline
// must charge. When Status is EnrollEnrolled, Enrollment is the created row.
type EnrollOutcome struct {
	Status     EnrollStatus
	Amount     float64
	Enrollment *courseModels.Enrollment
}

// CourseIsFree decides the free-vs-paid branch. Price is the authoritative
// signal: a course with price 0 is free even when flagged premium, and a
// course with a positive price is payable even when the premium flag is off.
func CourseIsFree(c courseModels.Course) bool {
	return c.Price <= 0
}

// RequestEnroll enrolls the student in a free course, or hands a paid course
// off to the payment pipeline without creating anything. A second request
// for the same pair is reported as EnrollAlreadyEnrolled, never duplicated.
func RequestEnroll(db *gorm.DB, studentID, courseID uint) (EnrollOutcome, error) {
	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EnrollOutcome{Status: EnrollNotFound}, nil
		}
		return EnrollOutcome{}, err
	}

	enrolled, err := IsEnrolled(db, studentID, courseID)
	if err != nil {
		return EnrollOutcome{}, err
	}
	if enrolled {
		return EnrollOutcome{Status: EnrollAlreadyEnrolled}, nil
	}

	if !CourseIsFree(course) {
		// No enrollment row yet; the payment pipeline creates it on approval.
		return EnrollOutcome{Status: EnrollRedirectToPayment, Amount: course.Price}, nil
	}

	enrollment := courseModels.Enrollment{
		StudentID:        studentID,
		CourseID:         courseID,
		EnrollDate:       time.Now().UTC(),
		CompletionStatus: false,
		PaymentStatus:    courseModels.PaymentCompleted,
	}
	if err := db.Create(&enrollment).Error; err != nil {
		// The unique index is the authoritative duplicate guard; a concurrent
		// request that won the race surfaces here.
		if isUniqueViolation(err) {
			return EnrollOutcome{Status: EnrollAlreadyEnrolled}, nil
		}
		return EnrollOutcome{}, err
	}

	return EnrollOutcome{Status: EnrollEnrolled, Enrollment: &enrollment}, nil
}

// isUniqueViolation reports whether the error stems from the composite
// (student_id, course_id) unique index.
func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
