package courseController

import (
	"errors"
	"log"

	"lms/database"
	"lms/middleware"
	"lms/services"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// Enroll enrolls the calling student in a course, or points them at the
// checkout flow when the course is payable
func Enroll(c *fiber.Ctx) error {
	ident := middleware.IdentityFromCtx(c)
	courseID := c.Locals("courseID").(int)

	outcome, err := services.RequestEnroll(database.Database.Db, ident.UserID, uint(courseID))
	if err != nil {
		log.Printf("Error enrolling user %d in course %d: %v", ident.UserID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	switch outcome.Status {
	case services.EnrollNotFound:
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	case services.EnrollAlreadyEnrolled:
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You are already enrolled in this course!", nil)
	case services.EnrollRedirectToPayment:
		return middleware.JsonResponse(c, fiber.StatusPaymentRequired, false, "This course requires payment.", fiber.Map{
			"course_id": courseID,
			"amount":    outcome.Amount,
			"checkout":  "/payment/checkout",
		})
	}

	go utils.SendEnrollmentEmail(ident.UserID, uint(courseID))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", outcome.Enrollment)
}

// SubmitQuiz grades the calling student's answers for a module
func SubmitQuiz(c *fiber.Ctx) error {
	ident := middleware.IdentityFromCtx(c)
	moduleID := c.Locals("moduleID").(int)

	answers, ok := c.Locals("validatedAnswers").(map[uint]string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	report, err := services.GradeSubmission(database.Database.Db, ident, uint(moduleID), answers)
	if err != nil {
		if errors.Is(err, services.ErrNotEnrolled) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You must be enrolled in this course to submit the quiz!", nil)
		}
		if errors.Is(err, services.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
		}
		if errors.Is(err, services.ErrBrokenAssociation) {
			log.Printf("Integrity error on module %d: %v", moduleID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Content is not linked to a valid course. Contact support.", nil)
		}
		log.Printf("Error grading submission: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to grade submission!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz graded successfully!", report)
}
