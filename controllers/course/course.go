package courseController

import (
	"errors"
	"log"

	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	"lms/services"

	"github.com/gofiber/fiber/v2"
)

// CreateCourse creates a course owned by the calling instructor
func CreateCourse(c *fiber.Ctx) error {
	ident := middleware.IdentityFromCtx(c)

	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		CategoryID  uint    `json:"category_id"`
		IsPremium   bool    `json:"is_premium"`
		Price       float64 `json:"price"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := courseModels.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		InstructorID: ident.UserID,
		CategoryID:   reqData.CategoryID,
		IsPremium:    reqData.IsPremium,
		Price:        reqData.Price,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse updates a course; only the owning instructor may
func UpdateCourse(c *fiber.Ctx) error {
	ident := middleware.IdentityFromCtx(c)
	courseID := c.Locals("courseID").(int)

	allowed, err := services.CanManageCourse(database.Database.Db, ident, uint(courseID))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		log.Printf("Error checking course ownership: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}
	if !allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only edit your own courses!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		CategoryID  *uint    `json:"category_id"`
		IsPremium   *bool    `json:"is_premium"`
		Price       *float64 `json:"price"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.CategoryID != nil {
		course.CategoryID = *reqData.CategoryID
	}
	if reqData.IsPremium != nil {
		course.IsPremium = *reqData.IsPremium
	}
	if reqData.Price != nil {
		course.Price = *reqData.Price
	}

	if err := db.Save(&course).Error; err != nil {
		log.Printf("Error updating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse soft-deletes a course and its modules, lessons and quizzes
func DeleteCourse(c *fiber.Ctx) error {
	ident := middleware.IdentityFromCtx(c)
	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	allowed, err := services.CanManageCourse(db, ident, uint(courseID))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		log.Printf("Error checking course ownership: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}
	if !allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only delete your own courses!", nil)
	}

	// Course exclusively owns its modules, which own lessons and quizzes
	tx := db.Begin()

	var moduleIDs []uint
	tx.Model(&courseModels.Module{}).Where("course_id = ?", courseID).Pluck("id", &moduleIDs)

	if len(moduleIDs) > 0 {
		if err := tx.Model(&courseModels.Lesson{}).Where("module_id IN ?", moduleIDs).Update("is_deleted", true).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
		}
		if err := tx.Model(&courseModels.Quiz{}).Where("module_id IN ?", moduleIDs).Update("is_deleted", true).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
		}
		if err := tx.Model(&courseModels.Module{}).Where("course_id = ?", courseID).Update("is_deleted", true).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
		}
	}

	if err := tx.Model(&courseModels.Course{}).Where("id = ?", courseID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// ListCourses returns all courses
func ListCourses(c *fiber.Ctx) error {
	var courses []courseModels.Course
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// CourseDetails returns one course with its modules
func CourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var modules []courseModels.Module
	db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("order_index asc, id asc").Find(&modules)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":  course,
		"modules": modules,
	})
}

// MyCourses returns the calling student's enrolled courses
func MyCourses(c *fiber.Ctx) error {
	ident := middleware.IdentityFromCtx(c)

	db := database.Database.Db

	var enrollments []courseModels.Enrollment
	if err := db.Where("student_id = ? AND is_deleted = ?", ident.UserID, false).Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	courseIDs := make([]uint, len(enrollments))
	for i, enr := range enrollments {
		courseIDs[i] = enr.CourseID
	}

	var courses []courseModels.Course
	if len(courseIDs) > 0 {
		db.Where("id IN ? AND is_deleted = ?", courseIDs, false).Find(&courses)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled courses fetched successfully!", fiber.Map{
		"enrollments": enrollments,
		"courses":     courses,
	})
}
