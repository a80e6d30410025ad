package course

import "gorm.io/gorm"

// Quiz represents a single multiple choice question within a module.
// CorrectOption is normalized to uppercase A-D on write.
type Quiz struct {
	gorm.Model
	ModuleID      uint   `json:"module_id" gorm:"index;not null"`
	Question      string `json:"question"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectOption string `json:"correct_option"` // A, B, C or D
	IsDeleted     bool   `json:"-" gorm:"default:false"`
}
