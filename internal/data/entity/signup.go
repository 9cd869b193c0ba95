package entity

import "time"

// SignupToken bridges signup-initiate and signup-verify: it holds the
// not-yet-created account's data plus the OTP and its expiry. At most one
// token per email is honored; a new initiate call supersedes older ones.
type SignupToken struct {
	BaseSimple
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password"`
	OTPCode      string    `db:"otp_code"`
	ExpiresAt    time.Time `db:"expires_at"`
}

func (t *SignupToken) Expired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
