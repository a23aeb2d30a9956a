package domain

import "errors"

// Account errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
)

// Token errors
var (
	ErrTokenNotFound  = errors.New("refresh token not found")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenMalformed = errors.New("malformed token")
)

// Verification errors
var (
	ErrVerificationMismatch    = errors.New("verification code mismatch")
	ErrVerificationNotFound    = errors.New("verification code not found")
	ErrVerificationMaxAttempts = errors.New("maximum verification attempts exceeded")
	ErrVerificationThrottled   = errors.New("verification resend throttled")
	ErrVerificationRequired    = errors.New("verification required before password reset")
)

// Upstream errors
var (
	ErrEmailDelivery = errors.New("email delivery failed")
	ErrUpstream      = errors.New("upstream service failure")
)

// Association errors
var (
	ErrTeamNotFound      = errors.New("team not found")
	ErrTeamSkillNotFound = errors.New("team skill link not found")
)
