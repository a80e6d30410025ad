package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment payment states
const (
	PaymentCompleted = "Completed"
	PaymentPending   = "Pending"
	PaymentFailed    = "Failed"
)

// Enrollment tracks a student's registration in a course.
// The composite unique index is the authoritative guard against duplicate
// enrollments; application-level existence checks are a fast path only.
type Enrollment struct {
	gorm.Model
	StudentID        uint      `json:"student_id" gorm:"not null;uniqueIndex:idx_student_course"`
	CourseID         uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_student_course"`
	EnrollDate       time.Time `json:"enroll_date"`
	CompletionStatus bool      `json:"completion_status" gorm:"default:false"`
	PaymentStatus    string    `json:"payment_status" gorm:"default:'Completed'"` // Completed, Pending, Failed
	IsDeleted        bool      `json:"-" gorm:"default:false"`
}
