package course

import "gorm.io/gorm"

// Course represents a learning course authored by an instructor
type Course struct {
	gorm.Model
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	InstructorID uint    `json:"instructor_id" gorm:"index"`
	CategoryID   uint    `json:"category_id" gorm:"index;default:0"`
	IsPremium    bool    `json:"is_premium" gorm:"default:false"`
	Price        float64 `json:"price" gorm:"default:0"` // 0 means free; Price is authoritative over IsPremium
	IsDeleted    bool    `json:"-" gorm:"default:false"`
}
