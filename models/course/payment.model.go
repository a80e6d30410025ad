package course

import (
	"time"

	"gorm.io/gorm"
)

// Payment record statuses
const (
	PaymentStatusCompleted = "Completed"
	PaymentStatusFailed    = "Failed"
)

// Payment is the audit record of a payment attempt. A row is written for
// every attempt, success or failure. Rows are append-only: never updated
// or deleted.
type Payment struct {
	gorm.Model
	StudentID uint      `json:"student_id" gorm:"index;not null"`
	CourseID  uint      `json:"course_id" gorm:"index;not null"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	Status    string    `json:"status"` // Completed, Failed
	Reference string    `json:"reference" gorm:"index"`
	PaidAt    time.Time `json:"paid_at"`
}
