package services

import (
	"testing"

	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanViewLessonOwnerInstructor(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, 1, 0, false)
	module := createModule(t, db, course.ID)
	lesson := createLesson(t, db, module.ID)

	allowed, err := CanViewLesson(db, Identity{Role: RoleInstructor, UserID: 1}, lesson.ID)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestCanViewLessonOtherInstructorDenied(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, 1, 0, false) // owned by instructor 1
	module := createModule(t, db, course.ID)
	lesson := createLesson(t, db, module.ID)

	allowed, err := CanViewLesson(db, Identity{Role: RoleInstructor, UserID: 2}, lesson.ID)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestCanViewLessonEnrolledStudent(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, 1, 0, false)
	module := createModule(t, db, course.ID)
	lesson := createLesson(t, db, module.ID)
	enrollStudent(t, db, 10, course.ID)

	allowed, err := CanViewLesson(db, Identity{Role: RoleStudent, UserID: 10}, lesson.ID)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestCanViewLessonUnenrolledStudentDenied(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, 1, 0, false)
	module := createModule(t, db, course.ID)
	lesson := createLesson(t, db, module.ID)

	allowed, err := CanViewLesson(db, Identity{Role: RoleStudent, UserID: 10}, lesson.ID)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestCanViewLessonAnonymousDenied(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, 1, 0, false)
	module := createModule(t, db, course.ID)
	lesson := createLesson(t, db, module.ID)

	allowed, err := CanViewLesson(db, Identity{}, lesson.ID)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestCanViewLessonMissing(t *testing.T) {
	db := newTestDB(t)

	_, err := CanViewLesson(db, Identity{Role: RoleStudent, UserID: 10}, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCanViewLessonBrokenAssociation(t *testing.T) {
	db := newTestDB(t)

	// Module points at a course that does not exist
	module := courseModels.Module{CourseID: 999, Title: "Orphaned"}
	require.NoError(t, db.Create(&module).Error)
	lesson := createLesson(t, db, module.ID)

	_, err := CanViewLesson(db, Identity{Role: RoleStudent, UserID: 10}, lesson.ID)
	assert.ErrorIs(t, err, ErrBrokenAssociation)
}

func TestCanViewQuizEnrolledStudent(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, 1, 0, false)
	module := createModule(t, db, course.ID)
	quiz := createQuiz(t, db, module.ID, "What is a goroutine?", "A")
	enrollStudent(t, db, 10, course.ID)

	allowed, err := CanViewQuiz(db, Identity{Role: RoleStudent, UserID: 10}, quiz.ID)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestCanManageCourseOwnershipRequired(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, 1, 0, false)

	allowed, err := CanManageCourse(db, Identity{Role: RoleInstructor, UserID: 1}, course.ID)
	require.NoError(t, err)
	assert.True(t, allowed)

	// Another instructor may not edit someone else's course
	allowed, err = CanManageCourse(db, Identity{Role: RoleInstructor, UserID: 2}, course.ID)
	require.NoError(t, err)
	assert.False(t, allowed)

	// Role alone never grants authoring rights
	allowed, err = CanManageCourse(db, Identity{Role: RoleStudent, UserID: 1}, course.ID)
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = CanManageCourse(db, Identity{Role: RoleAdmin, UserID: 1}, course.ID)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestCanManageModuleResolvesOwnership(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, 5, 0, false)
	module := createModule(t, db, course.ID)

	allowed, err := CanManageModule(db, Identity{Role: RoleInstructor, UserID: 5}, module.ID)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = CanManageModule(db, Identity{Role: RoleInstructor, UserID: 6}, module.ID)
	require.NoError(t, err)
	assert.False(t, allowed)
}
