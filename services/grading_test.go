package services

import (
	"testing"

	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradeSubmissionScoresAllQuizzes(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, 1, 0, false)
	module := createModule(t, db, course.ID)
	enrollStudent(t, db, 10, course.ID)

	q1 := createQuiz(t, db, module.ID, "q1", "A")
	q2 := createQuiz(t, db, module.ID, "q2", "B")
	q3 := createQuiz(t, db, module.ID, "q3", "C")
	createQuiz(t, db, module.ID, "q4", "D") // left unanswered

	report, err := GradeSubmission(db, Identity{Role: RoleStudent, UserID: 10}, module.ID, map[uint]string{
		q1.ID: "A",
		q2.ID: "B",
		q3.ID: "C",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, report.TotalCount)
	assert.Equal(t, 3, report.CorrectCount)
	assert.Equal(t, 75.0, report.Percentage)
	require.Len(t, report.Results, 4)

	// The unanswered question is reported with an empty chosen option
	last := report.Results[3]
	assert.Equal(t, "q4", last.Question)
	assert.Equal(t, "", last.ChosenOption)
	assert.False(t, last.IsCorrect)
	assert.Equal(t, "D", last.CorrectOption)
}

func TestGradeSubmissionCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, 1, 0, false)
	module := createModule(t, db, course.ID)
	enrollStudent(t, db, 10, course.ID)

	quiz := createQuiz(t, db, module.ID, "q1", "B")

	report, err := GradeSubmission(db, Identity{Role: RoleStudent, UserID: 10}, module.ID, map[uint]string{
		quiz.ID: "b",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.CorrectCount)
	assert.True(t, report.Results[0].IsCorrect)
}

func TestGradeSubmissionEmptyAnswers(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, 1, 0, false)
	module := createModule(t, db, course.ID)
	enrollStudent(t, db, 10, course.ID)

	createQuiz(t, db, module.ID, "q1", "A")
	createQuiz(t, db, module.ID, "q2", "B")

	report, err := GradeSubmission(db, Identity{Role: RoleStudent, UserID: 10}, module.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, report.TotalCount)
	assert.Equal(t, 0, report.CorrectCount)
	assert.Equal(t, 0.0, report.Percentage)
}

func TestGradeSubmissionModuleWithoutQuizzes(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, 1, 0, false)
	module := createModule(t, db, course.ID)
	enrollStudent(t, db, 10, course.ID)

	report, err := GradeSubmission(db, Identity{Role: RoleStudent, UserID: 10}, module.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, report.TotalCount)
	assert.Equal(t, 0.0, report.Percentage) // no division by zero
}

func TestGradeSubmissionRequiresEnrollment(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, 1, 0, false)
	module := createModule(t, db, course.ID)
	createQuiz(t, db, module.ID, "q1", "A")

	_, err := GradeSubmission(db, Identity{Role: RoleStudent, UserID: 10}, module.ID, nil)
	assert.ErrorIs(t, err, ErrNotEnrolled)
}

func TestGradeSubmissionStudentsOnly(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, 1, 0, false)
	module := createModule(t, db, course.ID)

	_, err := GradeSubmission(db, Identity{Role: RoleInstructor, UserID: 1}, module.ID, nil)
	assert.ErrorIs(t, err, ErrNotEnrolled)

	_, err = GradeSubmission(db, Identity{}, module.ID, nil)
	assert.ErrorIs(t, err, ErrNotEnrolled)
}

func TestGradeSubmissionIgnoresForeignQuizIDs(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, 1, 0, false)
	module := createModule(t, db, course.ID)
	other := createModule(t, db, course.ID)
	enrollStudent(t, db, 10, course.ID)

	quiz := createQuiz(t, db, module.ID, "q1", "A")
	foreign := createQuiz(t, db, other.ID, "other", "B")

	report, err := GradeSubmission(db, Identity{Role: RoleStudent, UserID: 10}, module.ID, map[uint]string{
		quiz.ID:    "A",
		foreign.ID: "B", // belongs to another module, not graded here
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.TotalCount)
	assert.Equal(t, 1, report.CorrectCount)
}

func TestGradeSubmissionSkipsDeletedQuizzes(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, 1, 0, false)
	module := createModule(t, db, course.ID)
	enrollStudent(t, db, 10, course.ID)

	createQuiz(t, db, module.ID, "q1", "A")
	deleted := createQuiz(t, db, module.ID, "q2", "B")
	require.NoError(t, db.Model(&courseModels.Quiz{}).Where("id = ?", deleted.ID).Update("is_deleted", true).Error)

	report, err := GradeSubmission(db, Identity{Role: RoleStudent, UserID: 10}, module.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, report.TotalCount)
}
