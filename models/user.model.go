package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles. Role is stored as a string but only these values are accepted
// at the boundary (see services.ParseRole).
const (
	RoleStudent    = "Student"
	RoleInstructor = "Instructor"
	RoleAdmin      = "Admin"
)

// User account statuses. Deactivated accounts cannot authenticate.
const (
	StatusActive      = "Active"
	StatusDeactivated = "Deactivated"
)

type User struct {
	gorm.Model
	Name      string     `json:"name" gorm:"default:''"`
	Email     string     `json:"email" gorm:"unique;not null"`
	Password  string     `json:"-" gorm:"not null"` // bcrypt hash, or legacy plaintext pending upgrade
	Role      string     `json:"role" gorm:"default:'Student'"`
	Status    string     `json:"status" gorm:"default:'Active'"`
	LastLogin *time.Time `json:"last_login"`
	IsDeleted bool       `json:"-" gorm:"default:false"`
}
