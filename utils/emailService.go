package utils

import (
	"fmt"
	"log"

	"lms/config"
	"lms/database"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends an HTML email through Sendgrid. Delivery failures are
// logged, never fatal: email is best-effort and must not fail the request
// that triggered it.
func SendEmail(toName, toEmail, subject, htmlBody string) {
	if config.AppConfig == nil || config.AppConfig.SendgridApiKey == "" {
		log.Printf("Email not sent (no Sendgrid key configured): %s -> %s", subject, toEmail)
		return
	}

	from := mail.NewEmail("LearnSphere", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return
	}
	if resp.StatusCode >= 400 {
		log.Printf("Sendgrid rejected email to %s: status %d body %s", toEmail, resp.StatusCode, resp.Body)
	}
}

// SendWelcomeEmail greets a freshly registered account
func SendWelcomeEmail(email, name string) {
	body := fmt.Sprintf(`
		<h2>Welcome to LearnSphere, %s!</h2>
		<p>Your account is ready. Browse the course catalog and start learning today.</p>
	`, name)
	SendEmail(name, email, "Welcome to LearnSphere", body)
}

// SendEnrollmentEmail confirms a course enrollment
func SendEnrollmentEmail(studentID, courseID uint) {
	db := database.Database.Db

	var user models.User
	if err := db.First(&user, studentID).Error; err != nil {
		log.Printf("Error loading user %d for enrollment email: %v", studentID, err)
		return
	}
	var course courseModels.Course
	if err := db.First(&course, courseID).Error; err != nil {
		log.Printf("Error loading course %d for enrollment email: %v", courseID, err)
		return
	}

	body := fmt.Sprintf(`
		<h2>You are enrolled!</h2>
		<p>Hi %s, you are now enrolled in <strong>%s</strong>. Head to My Courses to get started.</p>
	`, user.Name, course.Title)
	SendEmail(user.Name, user.Email, "Enrollment confirmed: "+course.Title, body)
}

// SendPaymentReceiptEmail sends a receipt for a completed payment
func SendPaymentReceiptEmail(studentID uint, courseTitle string, amount float64, reference string) {
	db := database.Database.Db

	var user models.User
	if err := db.First(&user, studentID).Error; err != nil {
		log.Printf("Error loading user %d for receipt email: %v", studentID, err)
		return
	}

	body := fmt.Sprintf(`
		<h2>Payment received</h2>
		<p>Hi %s, we received your payment of %.2f for <strong>%s</strong>.</p>
		<p>Reference: %s</p>
	`, user.Name, amount, courseTitle, reference)
	SendEmail(user.Name, user.Email, "Payment receipt: "+courseTitle, body)
}
