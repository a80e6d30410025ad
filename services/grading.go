package services

import (
	"errors"
	"strings"

	courseModels "lms/models/course"

	"gorm.io/gorm"
)

// QuizResult is the graded outcome of a single question.
type QuizResult struct {
	QuizID        uint   `json:"quiz_id"`
	Question      string `json:"question"`
	ChosenOption  string `json:"chosen_option"`
	CorrectOption string `json:"correct_option"`
	IsCorrect     bool   `json:"is_correct"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
}

// QuizReport aggregates a graded submission for one module.
type QuizReport struct {
	ModuleID     uint         `json:"module_id"`
	Results      []QuizResult `json:"results"`
	CorrectCount int          `json:"correct_count"`
	TotalCount   int          `json:"total_count"`
	Percentage   float64      `json:"percentage"`
}

// ErrNotEnrolled is returned when a student submits answers for a module of
// a course they are not enrolled in.
var ErrNotEnrolled = errors.New("student is not enrolled in this course")

// GradeSubmission grades a student's answers against every quiz in the
// module, enrolled students only. Unanswered questions count as wrong with
// an empty chosen option; comparison is case-insensitive. Grading is
// stateless: no attempt or score is persisted.
func GradeSubmission(db *gorm.DB, ident Identity, moduleID uint, answers map[uint]string) (QuizReport, error) {
	if ident.Anonymous() || ident.Role != RoleStudent {
		return QuizReport{}, ErrNotEnrolled
	}

	course, err := courseForModule(db, moduleID)
	if err != nil {
		return QuizReport{}, err
	}

	enrolled, err := IsEnrolled(db, ident.UserID, course.ID)
	if err != nil {
		return QuizReport{}, err
	}
	if !enrolled {
		return QuizReport{}, ErrNotEnrolled
	}

	var quizzes []courseModels.Quiz
	if err := db.Where("module_id = ? AND is_deleted = ?", moduleID, false).
		Order("id asc").Find(&quizzes).Error; err != nil {
		return QuizReport{}, err
	}

	report := QuizReport{
		ModuleID:   moduleID,
		Results:    make([]QuizResult, 0, len(quizzes)),
		TotalCount: len(quizzes),
	}

	for _, quiz := range quizzes {
		chosen := answers[quiz.ID]
		correct := chosen != "" && strings.EqualFold(chosen, quiz.CorrectOption)
		if correct {
			report.CorrectCount++
		}
		report.Results = append(report.Results, QuizResult{
			QuizID:        quiz.ID,
			Question:      quiz.Question,
			ChosenOption:  chosen,
			CorrectOption: quiz.CorrectOption,
			IsCorrect:     correct,
			OptionA:       quiz.OptionA,
			OptionB:       quiz.OptionB,
			OptionC:       quiz.OptionC,
			OptionD:       quiz.OptionD,
		})
	}

	if report.TotalCount > 0 {
		report.Percentage = float64(report.CorrectCount) / float64(report.TotalCount) * 100
	}

	return report, nil
}
