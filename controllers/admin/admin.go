package adminController

import (
	"log"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// DashboardStats returns platform-wide counts for the admin dashboard
func DashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var studentCount, instructorCount, courseCount, enrollmentCount int64
	db.Model(&models.User{}).Where("role = ? AND is_deleted = ?", models.RoleStudent, false).Count(&studentCount)
	db.Model(&models.User{}).Where("role = ? AND is_deleted = ?", models.RoleInstructor, false).Count(&instructorCount)
	db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Count(&courseCount)
	db.Model(&courseModels.Enrollment{}).Where("is_deleted = ?", false).Count(&enrollmentCount)

	// This month's activity
	monthStart := now.BeginningOfMonth()
	var monthEnrollments int64
	db.Model(&courseModels.Enrollment{}).Where("is_deleted = ? AND enroll_date >= ?", false, monthStart).Count(&monthEnrollments)

	var totalRevenue, monthRevenue float64
	db.Model(&courseModels.Payment{}).Where("status = ?", courseModels.PaymentStatusCompleted).
		Select("COALESCE(SUM(amount), 0)").Scan(&totalRevenue)
	db.Model(&courseModels.Payment{}).Where("status = ? AND paid_at >= ?", courseModels.PaymentStatusCompleted, monthStart).
		Select("COALESCE(SUM(amount), 0)").Scan(&monthRevenue)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"students":          studentCount,
		"instructors":       instructorCount,
		"courses":           courseCount,
		"enrollments":       enrollmentCount,
		"month_enrollments": monthEnrollments,
		"total_revenue":     totalRevenue,
		"month_revenue":     monthRevenue,
	})
}

// ListUsers returns all accounts
func ListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}
	for i := range users {
		users[i].Password = ""
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", users)
}

// SetUserStatus activates or deactivates an account
func SetUserStatus(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int)

	reqData := new(struct {
		Status string `json:"status"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.Status != models.StatusActive && reqData.Status != models.StatusDeactivated {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Status must be Active or Deactivated!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := db.Model(&user).Update("status", reqData.Status).Error; err != nil {
		log.Printf("Error updating user status: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user status!", nil)
	}

	user.Status = reqData.Status
	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User status updated successfully!", user)
}
