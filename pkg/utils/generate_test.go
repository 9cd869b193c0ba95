package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOTP(t *testing.T) {
	otp := GenerateOTP(6)
	assert.Len(t, otp, 6)
	for _, c := range otp {
		assert.True(t, c >= '0' && c <= '9', "OTP must be all digits, got %q", otp)
	}
}

func TestGenerateOTP_DefaultLength(t *testing.T) {
	assert.Len(t, GenerateOTP(0), 6)
	assert.Len(t, GenerateOTP(-3), 6)
	assert.Len(t, GenerateOTP(4), 4)
}

func TestGenerateOrderCode(t *testing.T) {
	code := GenerateOrderCode()
	assert.True(t, strings.HasPrefix(code, "SK-"))
	assert.Greater(t, len(code), len("SK-"))
}
