package services

import (
	"errors"
	"strings"

	"lms/models"
)

// Role is the closed set of account roles. The zero value is RoleUnknown
// so an unset identity never passes a role check by accident.
type Role int

const (
	RoleUnknown Role = iota
	RoleStudent
	RoleInstructor
	RoleAdmin
)

var ErrUnknownRole = errors.New("unknown role")

// ParseRole normalizes a stored role string into a Role. Historic data
// carries inconsistent casing and the plural "Admins"; both are accepted.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "student", "students":
		return RoleStudent, nil
	case "instructor", "instructors":
		return RoleInstructor, nil
	case "admin", "admins":
		return RoleAdmin, nil
	}
	return RoleUnknown, ErrUnknownRole
}

func (r Role) String() string {
	switch r {
	case RoleStudent:
		return models.RoleStudent
	case RoleInstructor:
		return models.RoleInstructor
	case RoleAdmin:
		return models.RoleAdmin
	}
	return "Unknown"
}

// Identity carries the authenticated caller through every core operation.
// The zero value is anonymous: role checks deny, they do not crash.
type Identity struct {
	Role   Role
	UserID uint
}

// Anonymous reports whether the identity carries no authenticated user.
func (id Identity) Anonymous() bool {
	return id.Role == RoleUnknown || id.UserID == 0
}
