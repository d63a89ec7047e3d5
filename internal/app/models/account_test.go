package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input string
		want  Role
	}{
		{"STUDENT", RoleStudent},
		{"student", RoleStudent},
		{" Student ", RoleStudent},
		{"ADMIN", RoleAdmin},
		{"admin", RoleAdmin},
	}

	for _, tt := range tests {
		role, err := ParseRole(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, role)
	}
}

func TestParseRoleRejectsUnknown(t *testing.T) {
	for _, input := range []string{"", "TEACHER", "superadmin", "STUDENTS"} {
		_, err := ParseRole(input)
		assert.Error(t, err, input)
	}
}
