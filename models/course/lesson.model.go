package course

import "gorm.io/gorm"

// Lesson content types
const (
	LessonTypeVideo = "video"
	LessonTypePdf   = "pdf"
)

// Lesson represents a single piece of content within a module
type Lesson struct {
	gorm.Model
	ModuleID   uint   `json:"module_id" gorm:"index;not null"`
	Title      string `json:"title"`
	ContentURL string `json:"content_url"`
	Type       string `json:"type" gorm:"default:'video'"` // video, pdf
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `json:"-" gorm:"default:false"`
}
