package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/Kousthubh02/Chillar/internal/auth"
	"github.com/Kousthubh02/Chillar/internal/mailer"
	"github.com/Kousthubh02/Chillar/internal/models"
	"github.com/Kousthubh02/Chillar/internal/storage"
)

// TokenPair is returned by a successful login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService handles signup, login and the PIN reset flow.
type AuthService struct {
	users   storage.UserStore
	tokens  *auth.TokenManager
	mailer  mailer.Sender
	logger  *slog.Logger
	now     func() time.Time
	otpFunc func() (string, error)
}

// NewAuthService creates a new authentication service.
func NewAuthService(users storage.UserStore, tokens *auth.TokenManager, sender mailer.Sender, logger *slog.Logger) *AuthService {
	return &AuthService{
		users:   users,
		tokens:  tokens,
		mailer:  sender,
		logger:  logger,
		now:     time.Now,
		otpFunc: auth.GenerateOTP,
	}
}

// Signup registers a user with a hashed PIN.
func (s *AuthService) Signup(ctx context.Context, username *string, email, pin string) (*models.User, error) {
	if email == "" || pin == "" {
		return nil, badRequest("Email and mPin are required")
	}
	if username != nil && strings.TrimSpace(*username) == "" {
		username = nil
	}

	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return nil, conflict("An account with this email already exists", nil)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, internal("creating account", err)
	}

	hash, err := auth.HashPIN(pin)
	if err != nil {
		return nil, internal("creating account", err)
	}

	user := models.NewUser(username, email, hash)
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			// email was checked above, so a race or a taken username
			return nil, conflict("An account with this email or username already exists", err)
		}
		return nil, internal("creating account", err)
	}

	s.logger.Info("User registered", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// Login checks the PIN and issues an access and a refresh token.
func (s *AuthService) Login(ctx context.Context, email, pin string) (*TokenPair, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, internal("logging in", err)
	}
	if user == nil || !auth.CheckPIN(user.PINHash, pin) {
		s.logger.Warn("Login failed", "email", email)
		return nil, unauthorized("Invalid email or PIN", nil)
	}

	access, err := s.tokens.GenerateAccess(user.ID)
	if err != nil {
		return nil, internal("logging in", err)
	}
	refresh, err := s.tokens.GenerateRefresh(user.ID)
	if err != nil {
		return nil, internal("logging in", err)
	}

	s.logger.Info("User logged in", "user_id", user.ID)
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh exchanges a refresh token for a new access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.Validate(refreshToken, auth.RefreshToken)
	if err != nil {
		return "", unauthorized("Invalid or expired refresh token", err)
	}
	userID, err := claims.UserID()
	if err != nil {
		return "", unauthorized("Invalid or expired refresh token", err)
	}

	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", unauthorized("User no longer exists", err)
		}
		return "", internal("refreshing token", err)
	}

	access, err := s.tokens.GenerateAccess(userID)
	if err != nil {
		return "", internal("refreshing token", err)
	}
	return access, nil
}

// Authenticate validates an access token and returns its user id.
func (s *AuthService) Authenticate(accessToken string) (int64, error) {
	claims, err := s.tokens.Validate(accessToken, auth.AccessToken)
	if err != nil {
		return 0, unauthorized("Invalid or expired token", err)
	}
	userID, err := claims.UserID()
	if err != nil {
		return 0, unauthorized("Invalid or expired token", err)
	}
	return userID, nil
}

// RequestOTP stores a fresh OTP for the user and mails it. The OTP is kept
// even when mailing fails.
func (s *AuthService) RequestOTP(ctx context.Context, email string) error {
	if email == "" {
		return badRequest("Email is required")
	}

	code, err := s.otpFunc()
	if err != nil {
		return internal("generating OTP", err)
	}

	_, err = s.users.UpdateUser(ctx, email, func(u *models.User) error {
		u.IssueOTP(code, s.now())
		return nil
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return notFound("No user found with this email")
		}
		return internal("requesting OTP", err)
	}

	if err := s.mailer.SendOTP(ctx, email, code); err != nil {
		s.logger.Error("Failed to send OTP mail", "email", email, "error", err)
	}
	s.logger.Info("OTP issued", "email", email)
	return nil
}

// VerifyOTP marks the user's pending OTP as verified.
func (s *AuthService) VerifyOTP(ctx context.Context, email, otp string) error {
	if email == "" || otp == "" {
		return badRequest("Email and OTP are required")
	}

	_, err := s.users.UpdateUser(ctx, email, func(u *models.User) error {
		return u.VerifyOTP(otp, s.now())
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrNotFound):
		return notFound("User not found")
	case errors.Is(err, models.ErrOTPInvalid):
		return badRequest("Invalid OTP")
	case errors.Is(err, models.ErrOTPExpired):
		return badRequest("OTP has expired")
	default:
		return internal("verifying OTP", err)
	}
}

// ResetMPIN replaces the PIN once per successful OTP verification.
func (s *AuthService) ResetMPIN(ctx context.Context, email, newPin string) error {
	if email == "" || newPin == "" {
		return badRequest("Email and new MPIN are required")
	}

	hash, err := auth.HashPIN(newPin)
	if err != nil {
		return internal("resetting MPIN", err)
	}

	_, err = s.users.UpdateUser(ctx, email, func(u *models.User) error {
		if err := u.ConsumeVerification(); err != nil {
			return err
		}
		u.PINHash = hash
		return nil
	})
	switch {
	case err == nil:
		s.logger.Info("MPIN reset", "email", email)
		return nil
	case errors.Is(err, storage.ErrNotFound):
		return notFound("User not found")
	case errors.Is(err, models.ErrOTPUnverified):
		return badRequest("OTP not verified yet")
	default:
		return internal("resetting MPIN", err)
	}
}
