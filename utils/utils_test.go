package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+250 788 123 456", "+250788123456"},
		{"(+250) 788-123-456", "+250788123456"},
		{"0788 123 456", "0788123456"},
		{"  +49 151 000 1111 ", "+491510001111"},
		{"+", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePhone(tt.in), "input %q", tt.in)
	}
}

func TestValidatePhoneNumber(t *testing.T) {
	assert.True(t, ValidatePhoneNumber("+250788123456"))
	assert.True(t, ValidatePhoneNumber("1234567"))
	assert.False(t, ValidatePhoneNumber("123456"), "too short")
	assert.False(t, ValidatePhoneNumber("1234567890123456"), "too long")
	assert.False(t, ValidatePhoneNumber(""))
}

func TestValidateTimeOfDay(t *testing.T) {
	assert.True(t, ValidateTimeOfDay("15:00"))
	assert.True(t, ValidateTimeOfDay("00:00"))
	assert.False(t, ValidateTimeOfDay("25:00"))
	assert.False(t, ValidateTimeOfDay("15:60"))
	assert.False(t, ValidateTimeOfDay("3pm"))
	assert.False(t, ValidateTimeOfDay(""))
}
