package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserValidator_ValidUsernames(t *testing.T) {
	validator := NewUserValidator()

	for _, username := range []string{"alice", "bob42", "jo.ann", "a_b-c", "X"} {
		assert.NoError(t, validator.ValidateUsername(username), "username %q", username)
	}
}

func TestUserValidator_InvalidUsernames(t *testing.T) {
	validator := NewUserValidator()

	tests := []struct {
		name     string
		username string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"contains space", "alice b"},
		{"contains slash", "alice/b"},
		{"contains at sign", "alice@example"},
		{"too long", strings.Repeat("a", 65)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateUsername(tt.username)
			assert.Error(t, err)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestUserValidator_GetValidUsernameTrims(t *testing.T) {
	validator := NewUserValidator()

	cleaned, err := validator.GetValidUsername("  alice  ")

	assert.NoError(t, err)
	assert.Equal(t, "alice", cleaned)
}

func TestUserValidator_ValidatePassword(t *testing.T) {
	validator := NewUserValidator()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"empty", "", true},
		{"too short", "12345", true},
		{"minimum length", "123456", false},
		{"normal", "correct horse battery", false},
		{"maximum length", strings.Repeat("a", 72), false},
		{"beyond bcrypt limit", strings.Repeat("a", 73), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
