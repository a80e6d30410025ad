package services

import (
	"testing"
	"time"

	"lms/models"
	courseModels "lms/models/course"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&courseModels.Course{},
		&courseModels.Module{},
		&courseModels.Lesson{},
		&courseModels.Quiz{},
		&courseModels.Enrollment{},
		&courseModels.Payment{},
	))

	return db
}

func createCourse(t *testing.T, db *gorm.DB, instructorID uint, price float64, premium bool) courseModels.Course {
	t.Helper()
	course := courseModels.Course{
		Title:        "Go from Zero",
		Description:  "An introduction to Go",
		InstructorID: instructorID,
		IsPremium:    premium,
		Price:        price,
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func createModule(t *testing.T, db *gorm.DB, courseID uint) courseModels.Module {
	t.Helper()
	module := courseModels.Module{CourseID: courseID, Title: "Basics"}
	require.NoError(t, db.Create(&module).Error)
	return module
}

func createLesson(t *testing.T, db *gorm.DB, moduleID uint) courseModels.Lesson {
	t.Helper()
	lesson := courseModels.Lesson{
		ModuleID:   moduleID,
		Title:      "Hello World",
		ContentURL: "https://cdn.example.com/hello.mp4",
		Type:       courseModels.LessonTypeVideo,
	}
	require.NoError(t, db.Create(&lesson).Error)
	return lesson
}

func createQuiz(t *testing.T, db *gorm.DB, moduleID uint, question, correct string) courseModels.Quiz {
	t.Helper()
	quiz := courseModels.Quiz{
		ModuleID:      moduleID,
		Question:      question,
		OptionA:       "option a",
		OptionB:       "option b",
		OptionC:       "option c",
		OptionD:       "option d",
		CorrectOption: correct,
	}
	require.NoError(t, db.Create(&quiz).Error)
	return quiz
}

func enrollStudent(t *testing.T, db *gorm.DB, studentID, courseID uint) {
	t.Helper()
	enrollment := courseModels.Enrollment{
		StudentID:     studentID,
		CourseID:      courseID,
		EnrollDate:    time.Now().UTC(),
		PaymentStatus: courseModels.PaymentCompleted,
	}
	require.NoError(t, db.Create(&enrollment).Error)
}
