package services

import (
	"errors"
	"fmt"

	courseModels "lms/models/course"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrBrokenAssociation indicates a lesson or quiz whose module no longer
	// resolves to a course. It is data corruption, not an authorization
	// denial, and is surfaced separately so operators can detect it.
	ErrBrokenAssociation = errors.New("broken module/course association")
)

// courseForModule resolves the owning course of a module. A module pointing
// at a missing course is reported as ErrBrokenAssociation.
func courseForModule(db *gorm.DB, moduleID uint) (courseModels.Course, error) {
	var module courseModels.Module
	if err := db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return courseModels.Course{}, ErrNotFound
		}
		return courseModels.Course{}, err
	}

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", module.CourseID, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return courseModels.Course{}, fmt.Errorf("module %d -> course %d: %w", module.ID, module.CourseID, ErrBrokenAssociation)
		}
		return courseModels.Course{}, err
	}
	return course, nil
}

// IsEnrolled reports whether the student has an enrollment in the course.
func IsEnrolled(db *gorm.DB, studentID, courseID uint) (bool, error) {
	var count int64
	err := db.Model(&courseModels.Enrollment{}).
		Where("student_id = ? AND course_id = ? AND is_deleted = ?", studentID, courseID, false).
		Count(&count).Error
	return count > 0, err
}

// canViewCourseContent applies the shared view rule: an instructor may view
// content of a course they own, a student may view content of a course they
// are enrolled in. Everyone else is denied.
func canViewCourseContent(db *gorm.DB, ident Identity, course courseModels.Course) (bool, error) {
	if ident.Anonymous() {
		return false, nil
	}
	switch ident.Role {
	case RoleInstructor:
		return course.InstructorID == ident.UserID, nil
	case RoleStudent:
		return IsEnrolled(db, ident.UserID, course.ID)
	}
	return false, nil
}

// CanViewModule decides whether the caller may view lessons and quizzes of
// the module.
func CanViewModule(db *gorm.DB, ident Identity, moduleID uint) (bool, error) {
	course, err := courseForModule(db, moduleID)
	if err != nil {
		return false, err
	}
	return canViewCourseContent(db, ident, course)
}

// CanViewLesson decides whether the caller may view the lesson.
func CanViewLesson(db *gorm.DB, ident Identity, lessonID uint) (bool, error) {
	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}
	return CanViewModule(db, ident, lesson.ModuleID)
}

// CanViewQuiz decides whether the caller may view the quiz.
func CanViewQuiz(db *gorm.DB, ident Identity, quizID uint) (bool, error) {
	var quiz courseModels.Quiz
	if err := db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}
	return CanViewModule(db, ident, quiz.ModuleID)
}

// CanManageCourse decides whether the caller may author content for the
// course (edit the course, create/edit/delete modules, lessons and quizzes).
// Only the owning instructor may; role alone is not enough.
func CanManageCourse(db *gorm.DB, ident Identity, courseID uint) (bool, error) {
	if ident.Anonymous() || ident.Role != RoleInstructor {
		return false, nil
	}
	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}
	return course.InstructorID == ident.UserID, nil
}

// CanManageModule is CanManageCourse resolved through the module's course.
func CanManageModule(db *gorm.DB, ident Identity, moduleID uint) (bool, error) {
	if ident.Anonymous() || ident.Role != RoleInstructor {
		return false, nil
	}
	course, err := courseForModule(db, moduleID)
	if err != nil {
		return false, err
	}
	return course.InstructorID == ident.UserID, nil
}
