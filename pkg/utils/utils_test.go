package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToNullString(t *testing.T) {
	assert.False(t, ToNullString("").Valid)

	ns := ToNullString("540")
	assert.True(t, ns.Valid)
	assert.Equal(t, "540", ns.String)
}

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"john.doe@example.com", "j***e@example.com"},
		{"a@example.com", "a@example.com"},
		{"ab@example.com", "a*b@example.com"},
		{"abc@example.com", "a***c@example.com"},
		{"not-an-email", "not-an-email"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaskEmail(tt.input))
		})
	}
}
