package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	"lms/services"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up course, content and enrollment routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Catalog (public)
	courseGroup.Get("/list", controllers.ListCourses)
	courseGroup.Get("/my", middleware.JWTMiddleware, middleware.RequireRole(services.RoleStudent), controllers.MyCourses)
	courseGroup.Get("/:id", validators.CourseID(), controllers.CourseDetails)

	// Course authoring (instructors; ownership enforced in the handlers)
	courseGroup.Post("/create", middleware.JWTMiddleware, middleware.RequireRole(services.RoleInstructor), validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(services.RoleInstructor), validators.UpdateCourse(), controllers.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(services.RoleInstructor), validators.CourseID(), controllers.DeleteCourse)

	// Module, lesson and quiz authoring
	courseGroup.Post("/:id/module", middleware.JWTMiddleware, middleware.RequireRole(services.RoleInstructor), validators.CreateModule(), controllers.CreateModule)

	moduleGroup := app.Group("/module")
	moduleGroup.Put("/:module_id", middleware.JWTMiddleware, middleware.RequireRole(services.RoleInstructor), validators.UpdateModule(), controllers.UpdateModule)
	moduleGroup.Delete("/:module_id", middleware.JWTMiddleware, middleware.RequireRole(services.RoleInstructor), validators.ModuleID(), controllers.DeleteModule)
	moduleGroup.Post("/:module_id/lesson", middleware.JWTMiddleware, middleware.RequireRole(services.RoleInstructor), validators.CreateLesson(), controllers.CreateLesson)
	moduleGroup.Post("/:module_id/quiz", middleware.JWTMiddleware, middleware.RequireRole(services.RoleInstructor), validators.CreateQuiz(), controllers.CreateQuiz)

	// Content consumption
	moduleGroup.Get("/:module_id/quizzes", middleware.JWTMiddleware, validators.ModuleID(), controllers.GetModuleQuizzes)
	moduleGroup.Post("/:module_id/quiz/submit", middleware.JWTMiddleware, middleware.RequireRole(services.RoleStudent), validators.SubmitQuiz(), controllers.SubmitQuiz)

	lessonGroup := app.Group("/lesson")
	lessonGroup.Get("/:lesson_id", middleware.JWTMiddleware, validators.LessonID(), controllers.GetLesson)
	lessonGroup.Put("/:lesson_id", middleware.JWTMiddleware, middleware.RequireRole(services.RoleInstructor), validators.UpdateLesson(), controllers.UpdateLesson)
	lessonGroup.Delete("/:lesson_id", middleware.JWTMiddleware, middleware.RequireRole(services.RoleInstructor), validators.LessonID(), controllers.DeleteLesson)

	quizGroup := app.Group("/quiz")
	quizGroup.Put("/:quiz_id", middleware.JWTMiddleware, middleware.RequireRole(services.RoleInstructor), validators.UpdateQuiz(), controllers.UpdateQuiz)
	quizGroup.Delete("/:quiz_id", middleware.JWTMiddleware, middleware.RequireRole(services.RoleInstructor), validators.QuizID(), controllers.DeleteQuiz)

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, middleware.RequireRole(services.RoleStudent), validators.CourseID(), controllers.Enroll)
}
