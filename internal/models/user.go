package models

import (
	"errors"
	"time"
)

// OTPTTL is how long an issued OTP stays valid.
const OTPTTL = 10 * time.Minute

var (
	ErrOTPInvalid    = errors.New("invalid OTP")
	ErrOTPExpired    = errors.New("OTP has expired")
	ErrOTPUnverified = errors.New("OTP not verified yet")
)

// OTPState is the position of a user in the PIN-reset flow.
type OTPState int

const (
	OTPNone OTPState = iota
	OTPPending
	OTPVerified
	OTPExpired
)

func (s OTPState) String() string {
	switch s {
	case OTPPending:
		return "pending"
	case OTPVerified:
		return "verified"
	case OTPExpired:
		return "expired"
	default:
		return "none"
	}
}

// User is a registered account. Username is optional; Email is the login key.
type User struct {
	ID          int64
	Username    *string
	Email       string
	PINHash     string
	OTP         *string
	OTPExpiry   *time.Time
	OTPVerified bool
}

// NewUser creates a user with an already-hashed PIN.
func NewUser(username *string, email, pinHash string) *User {
	return &User{
		Username: username,
		Email:    email,
		PINHash:  pinHash,
	}
}

// IssueOTP stores a fresh code, overwriting any pending one. A previous
// verification is discarded so it cannot be paired with the new code.
func (u *User) IssueOTP(code string, now time.Time) {
	expiry := now.Add(OTPTTL).UTC()
	u.OTP = &code
	u.OTPExpiry = &expiry
	u.OTPVerified = false
}

// VerifyOTP checks code against the pending OTP and marks the user verified.
// The code itself stays stored until ConsumeVerification.
func (u *User) VerifyOTP(code string, now time.Time) error {
	if code == "" || u.OTP == nil || *u.OTP != code {
		return ErrOTPInvalid
	}
	if u.OTPExpiry == nil || now.After(*u.OTPExpiry) {
		return ErrOTPExpired
	}
	u.OTPVerified = true
	return nil
}

// ConsumeVerification spends a verified OTP. It succeeds once per verification.
func (u *User) ConsumeVerification() error {
	if !u.OTPVerified {
		return ErrOTPUnverified
	}
	u.OTP = nil
	u.OTPExpiry = nil
	u.OTPVerified = false
	return nil
}

// OTPState reports where the user is in the reset flow at time now.
func (u *User) OTPState(now time.Time) OTPState {
	switch {
	case u.OTPVerified:
		return OTPVerified
	case u.OTP == nil:
		return OTPNone
	case u.OTPExpiry == nil || now.After(*u.OTPExpiry):
		return OTPExpired
	default:
		return OTPPending
	}
}
