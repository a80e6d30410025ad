package utils

import (
	"log"

	"lms/database"
	courseModels "lms/models/course"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events
func logScheduler(message string) {
	log.Printf("[REPORT-SCHEDULER] %s", message)
}

// runDailyReport logs yesterday-to-now enrollment and revenue aggregates.
// Operators watch these lines to spot stalled enrollment or payment flows.
func runDailyReport() {
	db := database.Database.Db
	dayStart := now.BeginningOfDay()

	var enrollments int64
	if err := db.Model(&courseModels.Enrollment{}).
		Where("is_deleted = ? AND enroll_date >= ?", false, dayStart).
		Count(&enrollments).Error; err != nil {
		logScheduler("Error counting enrollments: " + err.Error())
		return
	}

	var completed, failed int64
	db.Model(&courseModels.Payment{}).Where("status = ? AND paid_at >= ?", courseModels.PaymentStatusCompleted, dayStart).Count(&completed)
	db.Model(&courseModels.Payment{}).Where("status = ? AND paid_at >= ?", courseModels.PaymentStatusFailed, dayStart).Count(&failed)

	var revenue float64
	db.Model(&courseModels.Payment{}).
		Where("status = ? AND paid_at >= ?", courseModels.PaymentStatusCompleted, dayStart).
		Select("COALESCE(SUM(amount), 0)").Scan(&revenue)

	log.Printf("[REPORT-SCHEDULER] daily summary: enrollments=%d payments_completed=%d payments_failed=%d revenue=%.2f", enrollments, completed, failed, revenue)
}

// InitializeReportScheduler starts the nightly reporting job
func InitializeReportScheduler() *cron.Cron {
	c := cron.New()

	// Nightly at 23:55
	if _, err := c.AddFunc("55 23 * * *", runDailyReport); err != nil {
		logScheduler("Error scheduling daily report: " + err.Error())
	}

	c.Start()
	logScheduler("Report scheduler started")
	return c
}
