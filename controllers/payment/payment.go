package paymentController

import (
	"log"

	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	"lms/services"
	"lms/utils"
	paymentValidator "lms/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// gateway is the payment processor the checkout flow charges against.
// main wires the configured implementation; tests inject their own.
var gateway services.Gateway

// UseGateway sets the payment gateway implementation
func UseGateway(g services.Gateway) {
	gateway = g
}

// Checkout charges the calling student for a premium course and enrolls
// them on approval
func Checkout(c *fiber.Ctx) error {
	ident := middleware.IdentityFromCtx(c)

	reqData, ok := c.Locals("validatedCheckout").(*paymentValidator.CheckoutRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if services.CourseIsFree(course) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This course is free. You can enroll directly.", nil)
	}

	enrolled, err := services.IsEnrolled(db, ident.UserID, course.ID)
	if err != nil {
		log.Printf("Error checking enrollment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process payment!", nil)
	}
	if enrolled {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You are already enrolled in this course!", nil)
	}

	outcome, err := services.ProcessPayment(c.Context(), db, gateway, services.PaymentRequest{
		CourseID:   course.ID,
		StudentID:  ident.UserID,
		Amount:     course.Price,
		Method:     reqData.Method,
		CardNumber: reqData.CardNumber,
		Expiry:     reqData.Expiry,
		CVV:        reqData.CVV,
		HolderName: reqData.HolderName,
	})
	if err != nil {
		log.Printf("Error processing payment for user %d, course %d: %v", ident.UserID, course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process payment!", nil)
	}

	switch outcome.Status {
	case services.PaymentValidationFailed:
		return middleware.ValidationErrorResponse(c, outcome.Fields)
	case services.PaymentGatewayDeclined:
		return middleware.JsonResponse(c, fiber.StatusPaymentRequired, false, "Payment failed. Please check your payment details and try again.", fiber.Map{
			"payment": outcome.Payment,
		})
	}

	go utils.SendPaymentReceiptEmail(ident.UserID, course.Title, outcome.Payment.Amount, outcome.Payment.Reference)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment successful! You are now enrolled in the course.", fiber.Map{
		"payment":    outcome.Payment,
		"enrollment": outcome.Enrollment,
	})
}

// History returns the calling student's payment records
func History(c *fiber.Ctx) error {
	ident := middleware.IdentityFromCtx(c)

	var payments []courseModels.Payment
	if err := database.Database.Db.Where("student_id = ?", ident.UserID).Order("created_at desc").Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!", payments)
}
