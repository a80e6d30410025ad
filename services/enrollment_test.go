package services

import (
	"testing"

	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func countEnrollments(t *testing.T, db *gorm.DB, studentID, courseID uint) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&courseModels.Enrollment{}).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Count(&count).Error)
	return count
}

func TestRequestEnrollFreeCourse(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, 1, 0, false)

	outcome, err := RequestEnroll(db, 10, course.ID)
	require.NoError(t, err)
	require.Equal(t, EnrollEnrolled, outcome.Status)
	require.NotNil(t, outcome.Enrollment)

	assert.Equal(t, courseModels.PaymentCompleted, outcome.Enrollment.PaymentStatus)
	assert.False(t, outcome.Enrollment.CompletionStatus)
	assert.False(t, outcome.Enrollment.EnrollDate.IsZero())
	assert.EqualValues(t, 1, countEnrollments(t, db, 10, course.ID))
}

func TestRequestEnrollPaidCourseRedirects(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, 1, 49.99, true)

	outcome, err := RequestEnroll(db, 10, course.ID)
	require.NoError(t, err)
	assert.Equal(t, EnrollRedirectToPayment, outcome.Status)
	assert.Equal(t, 49.99, outcome.Amount)

	// No enrollment row until payment succeeds
	assert.EqualValues(t, 0, countEnrollments(t, db, 10, course.ID))
}

func TestRequestEnrollIdempotent(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, 1, 0, false)

	first, err := RequestEnroll(db, 10, course.ID)
	require.NoError(t, err)
	require.Equal(t, EnrollEnrolled, first.Status)

	second, err := RequestEnroll(db, 10, course.ID)
	require.NoError(t, err)
	assert.Equal(t, EnrollAlreadyEnrolled, second.Status)

	assert.EqualValues(t, 1, countEnrollments(t, db, 10, course.ID))
}

func TestRequestEnrollCourseNotFound(t *testing.T) {
	db := newTestDB(t)

	outcome, err := RequestEnroll(db, 10, 999)
	require.NoError(t, err)
	assert.Equal(t, EnrollNotFound, outcome.Status)
}

// Price is the authoritative free-vs-paid signal; the premium flag is
// advisory and the two can disagree in historic data.
func TestRequestEnrollPriceBeatsPremiumFlag(t *testing.T) {
	db := newTestDB(t)

	// Premium flag set but price 0: free
	freePremium := createCourse(t, db, 1, 0, true)
	outcome, err := RequestEnroll(db, 10, freePremium.ID)
	require.NoError(t, err)
	assert.Equal(t, EnrollEnrolled, outcome.Status)

	// Premium flag unset but price positive: payable
	paidBasic := createCourse(t, db, 1, 19.99, false)
	outcome, err = RequestEnroll(db, 10, paidBasic.ID)
	require.NoError(t, err)
	assert.Equal(t, EnrollRedirectToPayment, outcome.Status)
}

func TestRequestEnrollDistinctStudentsShareCourse(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, 1, 0, false)

	for _, studentID := range []uint{10, 11, 12} {
		outcome, err := RequestEnroll(db, studentID, course.ID)
		require.NoError(t, err)
		assert.Equal(t, EnrollEnrolled, outcome.Status)
	}
}
