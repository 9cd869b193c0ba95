package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// ==================== OTP ====================

// GenerateOTP creates a numeric OTP of the given length, each digit uniform.
func GenerateOTP(length int) string {
	if length <= 0 {
		length = 6
	}

	otp := ""
	for i := 0; i < length; i++ {
		otp += fmt.Sprintf("%d", rand.Intn(10))
	}

	return otp
}

// ==================== ORDER CODE ====================

// GenerateOrderCode creates the default client-visible order id.
// Format: SK-<unix-millis>
func GenerateOrderCode() string {
	return fmt.Sprintf("SK-%d", time.Now().UnixMilli())
}
