package courseValidator

import (
	"strconv"
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// parseIDParam parses a positive integer route parameter.
func parseIDParam(c *fiber.Ctx, name string) (int, bool) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// CourseID validates the :id route parameter and stores it as courseID
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		c.Locals("courseID", id)
		return c.Next()
	}
}

// ModuleID validates the :module_id route parameter
func ModuleID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "module_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}
		c.Locals("moduleID", id)
		return c.Next()
	}
}

// LessonID validates the :lesson_id route parameter
func LessonID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "lesson_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Lesson ID!", nil)
		}
		c.Locals("lessonID", id)
		return c.Next()
	}
}

// QuizID validates the :quiz_id route parameter
func QuizID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "quiz_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Quiz ID!", nil)
		}
		c.Locals("quizID", id)
		return c.Next()
	}
}

// CreateCourse validates a course creation request
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string  `json:"title"`
			Description string  `json:"description"`
			CategoryID  uint    `json:"category_id"`
			IsPremium   bool    `json:"is_premium"`
			Price       float64 `json:"price"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if reqData.Description == "" {
			errors["description"] = "Description is required!"
		} else if len(reqData.Description) < 5 {
			errors["description"] = "Description must be at least 5 characters long!"
		}

		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validates a course update request
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		c.Locals("courseID", id)

		reqData := new(struct {
			Title       string   `json:"title"`
			Description string   `json:"description"`
			CategoryID  *uint    `json:"category_id"`
			IsPremium   *bool    `json:"is_premium"`
			Price       *float64 `json:"price"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Title != "" && len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.Description != "" && len(reqData.Description) < 5 {
			errors["description"] = "Description must be at least 5 characters long!"
		}
		if reqData.Price != nil && *reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// CreateModule validates a module creation request
func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		c.Locals("courseID", id)

		reqData := new(struct {
			Title      string `json:"title"`
			OrderIndex int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// UpdateModule validates a module update request
func UpdateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "module_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}
		c.Locals("moduleID", id)

		reqData := new(struct {
			Title      string `json:"title"`
			OrderIndex *int   `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title != "" && len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModuleUpdate", reqData)
		return c.Next()
	}
}

// CreateLesson validates a lesson creation request
func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "module_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}
		c.Locals("moduleID", id)

		reqData := new(struct {
			Title      string `json:"title"`
			ContentURL string `json:"content_url"`
			Type       string `json:"type"`
			OrderIndex int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.ContentURL = strings.TrimSpace(reqData.ContentURL)
		reqData.Type = strings.ToLower(strings.TrimSpace(reqData.Type))

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.ContentURL == "" {
			errors["content_url"] = "Content URL is required!"
		}
		if reqData.Type != "video" && reqData.Type != "pdf" {
			errors["type"] = "Type must be video or pdf!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

// UpdateLesson validates a lesson update request
func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "lesson_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Lesson ID!", nil)
		}
		c.Locals("lessonID", id)

		reqData := new(struct {
			Title      string `json:"title"`
			ContentURL string `json:"content_url"`
			Type       string `json:"type"`
			OrderIndex *int   `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.ContentURL = strings.TrimSpace(reqData.ContentURL)
		reqData.Type = strings.ToLower(strings.TrimSpace(reqData.Type))

		if reqData.Type != "" && reqData.Type != "video" && reqData.Type != "pdf" {
			errors["type"] = "Type must be video or pdf!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLessonUpdate", reqData)
		return c.Next()
	}
}

// quizOptions is the set of valid answer keys
var quizOptions = map[string]bool{"A": true, "B": true, "C": true, "D": true}

// CreateQuiz validates a quiz creation request
func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "module_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}
		c.Locals("moduleID", id)

		reqData := new(struct {
			Question      string `json:"question"`
			OptionA       string `json:"option_a"`
			OptionB       string `json:"option_b"`
			OptionC       string `json:"option_c"`
			OptionD       string `json:"option_d"`
			CorrectOption string `json:"correct_option"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Question = strings.TrimSpace(reqData.Question)
		reqData.CorrectOption = strings.ToUpper(strings.TrimSpace(reqData.CorrectOption))

		if reqData.Question == "" {
			errors["question"] = "Question is required!"
		}
		if strings.TrimSpace(reqData.OptionA) == "" {
			errors["option_a"] = "Option A is required!"
		}
		if strings.TrimSpace(reqData.OptionB) == "" {
			errors["option_b"] = "Option B is required!"
		}
		if strings.TrimSpace(reqData.OptionC) == "" {
			errors["option_c"] = "Option C is required!"
		}
		if strings.TrimSpace(reqData.OptionD) == "" {
			errors["option_d"] = "Option D is required!"
		}
		if reqData.CorrectOption == "" {
			errors["correct_option"] = "Correct option is required!"
		} else if !quizOptions[reqData.CorrectOption] {
			errors["correct_option"] = "Correct option must be A, B, C, or D!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

// UpdateQuiz validates a quiz update request
func UpdateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "quiz_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Quiz ID!", nil)
		}
		c.Locals("quizID", id)

		reqData := new(struct {
			Question      string `json:"question"`
			OptionA       string `json:"option_a"`
			OptionB       string `json:"option_b"`
			OptionC       string `json:"option_c"`
			OptionD       string `json:"option_d"`
			CorrectOption string `json:"correct_option"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Question = strings.TrimSpace(reqData.Question)
		reqData.CorrectOption = strings.ToUpper(strings.TrimSpace(reqData.CorrectOption))

		if reqData.CorrectOption != "" && !quizOptions[reqData.CorrectOption] {
			errors["correct_option"] = "Correct option must be A, B, C, or D!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuizUpdate", reqData)
		return c.Next()
	}
}

// SubmitQuiz validates a quiz submission: a typed map of quiz ID to chosen
// option. The grading engine never sees raw form field names.
func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "module_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}
		c.Locals("moduleID", id)

		reqData := new(struct {
			Answers map[string]string `json:"answers"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		answers := make(map[uint]string, len(reqData.Answers))
		for rawID, option := range reqData.Answers {
			quizID, err := strconv.Atoi(rawID)
			if err != nil || quizID <= 0 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz ID in answers!", nil)
			}
			answers[uint(quizID)] = strings.TrimSpace(option)
		}

		c.Locals("validatedAnswers", answers)
		return c.Next()
	}
}
