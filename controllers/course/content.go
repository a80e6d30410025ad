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

// manageModuleGate runs the strict authoring rule for a module and writes
// the error response itself. Returns true when the caller may proceed.
func manageModuleGate(c *fiber.Ctx, moduleID uint) bool {
	ident := middleware.IdentityFromCtx(c)

	allowed, err := services.CanManageModule(database.Database.Db, ident, moduleID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
			return false
		}
		if errors.Is(err, services.ErrBrokenAssociation) {
			log.Printf("Integrity error on module %d: %v", moduleID, err)
			middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Content is not linked to a valid course. Contact support.", nil)
			return false
		}
		log.Printf("Error checking module ownership: %v", err)
		middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
		return false
	}
	if !allowed {
		middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only manage content of your own courses!", nil)
		return false
	}
	return true
}

// CreateModule adds a module to a course owned by the calling instructor
func CreateModule(c *fiber.Ctx) error {
	ident := middleware.IdentityFromCtx(c)
	courseID := c.Locals("courseID").(int)

	allowed, err := services.CanManageCourse(database.Database.Db, ident, uint(courseID))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		log.Printf("Error checking course ownership: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}
	if !allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only manage content of your own courses!", nil)
	}

	reqData, ok := c.Locals("validatedModule").(*struct {
		Title      string `json:"title"`
		OrderIndex int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	module := courseModels.Module{
		CourseID:   uint(courseID),
		Title:      reqData.Title,
		OrderIndex: reqData.OrderIndex,
	}

	if err := database.Database.Db.Create(&module).Error; err != nil {
		log.Printf("Error creating module: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// UpdateModule updates a module of a course owned by the calling instructor
func UpdateModule(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	if !manageModuleGate(c, uint(moduleID)) {
		return nil
	}

	reqData, ok := c.Locals("validatedModuleUpdate").(*struct {
		Title      string `json:"title"`
		OrderIndex *int   `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var module courseModels.Module
	if err := db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	if reqData.Title != "" {
		module.Title = reqData.Title
	}
	if reqData.OrderIndex != nil {
		module.OrderIndex = *reqData.OrderIndex
	}

	if err := db.Save(&module).Error; err != nil {
		log.Printf("Error updating module: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module)
}

// DeleteModule soft-deletes a module along with its lessons and quizzes
func DeleteModule(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	if !manageModuleGate(c, uint(moduleID)) {
		return nil
	}

	tx := database.Database.Db.Begin()
	if err := tx.Model(&courseModels.Lesson{}).Where("module_id = ?", moduleID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}
	if err := tx.Model(&courseModels.Quiz{}).Where("module_id = ?", moduleID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}
	if err := tx.Model(&courseModels.Module{}).Where("id = ?", moduleID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}

// CreateLesson adds a lesson to a module of a course owned by the caller
func CreateLesson(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	if !manageModuleGate(c, uint(moduleID)) {
		return nil
	}

	reqData, ok := c.Locals("validatedLesson").(*struct {
		Title      string `json:"title"`
		ContentURL string `json:"content_url"`
		Type       string `json:"type"`
		OrderIndex int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson := courseModels.Lesson{
		ModuleID:   uint(moduleID),
		Title:      reqData.Title,
		ContentURL: reqData.ContentURL,
		Type:       reqData.Type,
		OrderIndex: reqData.OrderIndex,
	}

	if err := database.Database.Db.Create(&lesson).Error; err != nil {
		log.Printf("Error creating lesson: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

// UpdateLesson updates a lesson of a course owned by the calling instructor
func UpdateLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(int)

	db := database.Database.Db

	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if !manageModuleGate(c, lesson.ModuleID) {
		return nil
	}

	reqData, ok := c.Locals("validatedLessonUpdate").(*struct {
		Title      string `json:"title"`
		ContentURL string `json:"content_url"`
		Type       string `json:"type"`
		OrderIndex *int   `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		lesson.Title = reqData.Title
	}
	if reqData.ContentURL != "" {
		lesson.ContentURL = reqData.ContentURL
	}
	if reqData.Type != "" {
		lesson.Type = reqData.Type
	}
	if reqData.OrderIndex != nil {
		lesson.OrderIndex = *reqData.OrderIndex
	}

	if err := db.Save(&lesson).Error; err != nil {
		log.Printf("Error updating lesson: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

// DeleteLesson soft-deletes a lesson
func DeleteLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(int)

	db := database.Database.Db

	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if !manageModuleGate(c, lesson.ModuleID) {
		return nil
	}

	if err := db.Model(&lesson).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}

// CreateQuiz adds a quiz question to a module of a course owned by the caller
func CreateQuiz(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	if !manageModuleGate(c, uint(moduleID)) {
		return nil
	}

	reqData, ok := c.Locals("validatedQuiz").(*struct {
		Question      string `json:"question"`
		OptionA       string `json:"option_a"`
		OptionB       string `json:"option_b"`
		OptionC       string `json:"option_c"`
		OptionD       string `json:"option_d"`
		CorrectOption string `json:"correct_option"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	quiz := courseModels.Quiz{
		ModuleID:      uint(moduleID),
		Question:      reqData.Question,
		OptionA:       reqData.OptionA,
		OptionB:       reqData.OptionB,
		OptionC:       reqData.OptionC,
		OptionD:       reqData.OptionD,
		CorrectOption: reqData.CorrectOption, // validator uppercased it
	}

	if err := database.Database.Db.Create(&quiz).Error; err != nil {
		log.Printf("Error creating quiz: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", quiz)
}

// UpdateQuiz updates a quiz question of a course owned by the caller
func UpdateQuiz(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(int)

	db := database.Database.Db

	var quiz courseModels.Quiz
	if err := db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	if !manageModuleGate(c, quiz.ModuleID) {
		return nil
	}

	reqData, ok := c.Locals("validatedQuizUpdate").(*struct {
		Question      string `json:"question"`
		OptionA       string `json:"option_a"`
		OptionB       string `json:"option_b"`
		OptionC       string `json:"option_c"`
		OptionD       string `json:"option_d"`
		CorrectOption string `json:"correct_option"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Question != "" {
		quiz.Question = reqData.Question
	}
	if reqData.OptionA != "" {
		quiz.OptionA = reqData.OptionA
	}
	if reqData.OptionB != "" {
		quiz.OptionB = reqData.OptionB
	}
	if reqData.OptionC != "" {
		quiz.OptionC = reqData.OptionC
	}
	if reqData.OptionD != "" {
		quiz.OptionD = reqData.OptionD
	}
	if reqData.CorrectOption != "" {
		quiz.CorrectOption = reqData.CorrectOption
	}

	if err := db.Save(&quiz).Error; err != nil {
		log.Printf("Error updating quiz: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz updated successfully!", quiz)
}

// DeleteQuiz soft-deletes a quiz question
func DeleteQuiz(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(int)

	db := database.Database.Db

	var quiz courseModels.Quiz
	if err := db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	if !manageModuleGate(c, quiz.ModuleID) {
		return nil
	}

	if err := db.Model(&quiz).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz deleted successfully!", nil)
}

// GetLesson returns a lesson to an authorized viewer
func GetLesson(c *fiber.Ctx) error {
	ident := middleware.IdentityFromCtx(c)
	lessonID := c.Locals("lessonID").(int)

	db := database.Database.Db

	allowed, err := services.CanViewLesson(db, ident, uint(lessonID))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
		}
		if errors.Is(err, services.ErrBrokenAssociation) {
			log.Printf("Integrity error on lesson %d: %v", lessonID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Content is not linked to a valid course. Contact support.", nil)
		}
		log.Printf("Error checking lesson access: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lesson!", nil)
	}
	if !allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You must be enrolled in this course to view its content!", nil)
	}

	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", lesson)
}

// moduleQuizView is the quiz shape served to students: no correct option
type moduleQuizView struct {
	ID       uint   `json:"id"`
	Question string `json:"question"`
	OptionA  string `json:"option_a"`
	OptionB  string `json:"option_b"`
	OptionC  string `json:"option_c"`
	OptionD  string `json:"option_d"`
}

// GetModuleQuizzes returns a module's quiz questions to an authorized
// viewer, without the correct options
func GetModuleQuizzes(c *fiber.Ctx) error {
	ident := middleware.IdentityFromCtx(c)
	moduleID := c.Locals("moduleID").(int)

	db := database.Database.Db

	allowed, err := services.CanViewModule(db, ident, uint(moduleID))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
		}
		if errors.Is(err, services.ErrBrokenAssociation) {
			log.Printf("Integrity error on module %d: %v", moduleID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Content is not linked to a valid course. Contact support.", nil)
		}
		log.Printf("Error checking module access: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
	}
	if !allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You must be enrolled in this course to take the quiz!", nil)
	}

	var quizzes []courseModels.Quiz
	if err := db.Where("module_id = ? AND is_deleted = ?", moduleID, false).Order("id asc").Find(&quizzes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
	}

	views := make([]moduleQuizView, len(quizzes))
	for i, quiz := range quizzes {
		views[i] = moduleQuizView{
			ID:       quiz.ID,
			Question: quiz.Question,
			OptionA:  quiz.OptionA,
			OptionB:  quiz.OptionB,
			OptionC:  quiz.OptionC,
			OptionD:  quiz.OptionD,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully!", views)
}
