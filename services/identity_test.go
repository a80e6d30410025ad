package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
	}{
		{"Student", RoleStudent},
		{"student", RoleStudent},
		{"Students", RoleStudent},
		{"Instructor", RoleInstructor},
		{"INSTRUCTOR", RoleInstructor},
		{"Admin", RoleAdmin},
		{"Admins", RoleAdmin}, // legacy plural
		{" admin ", RoleAdmin},
	}
	for _, tc := range cases {
		role, err := ParseRole(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, role, tc.in)
	}
}

func TestParseRoleRejectsUnknown(t *testing.T) {
	for _, in := range []string{"", "Superuser", "admin1", "moderator"} {
		role, err := ParseRole(in)
		assert.ErrorIs(t, err, ErrUnknownRole, in)
		assert.Equal(t, RoleUnknown, role, in)
	}
}

func TestIdentityAnonymous(t *testing.T) {
	assert.True(t, Identity{}.Anonymous())
	assert.True(t, Identity{Role: RoleStudent}.Anonymous())
	assert.True(t, Identity{UserID: 7}.Anonymous())
	assert.False(t, Identity{Role: RoleStudent, UserID: 7}.Anonymous())
}
