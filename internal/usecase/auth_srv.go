package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shopkart/internal/data/entity"
	"shopkart/internal/data/repository"
	"shopkart/internal/dto/request"
	"shopkart/pkg/mailer"
	"shopkart/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthService drives the signup state machine
// (NoPendingSignup -> PendingVerification -> Verified | Expired | Superseded)
// plus password login. Sessions are stateless JWTs issued by the handler
// layer from the returned user.
type AuthService interface {
	InitiateSignup(ctx context.Context, req *request.InitiateSignupRequest) (string, error)
	VerifySignup(ctx context.Context, req *request.VerifySignupRequest) (*entity.User, error)
	Login(ctx context.Context, req *request.LoginRequest) (*entity.User, error)
}

type authService struct {
	repo   *repository.Repository
	mail   mailer.Mailer
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, mail mailer.Mailer, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		mail:   mail,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

// NormalizeEmail lower-cases and trims an email address. Every lookup keyed
// by email goes through this.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) InitiateSignup(ctx context.Context, req *request.InitiateSignupRequest) (string, error) {
	// 1. Validate input. The name is trimmed first so padding can't sneak a
	// too-short name past the length rule.
	req.Name = strings.TrimSpace(req.Name)
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Initiate signup validation failed", zap.Any("errors", errs))
		return "", fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	name := req.Name
	email := NormalizeEmail(req.Email)

	// 2. Reject if already registered
	existing, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", email))
		return "", fmt.Errorf("failed to check email")
	}
	if existing != nil {
		return "", fmt.Errorf("already registered")
	}

	// 3. Supersede any older pending tokens for this email
	if err := s.repo.Signup.DeleteByEmail(ctx, email); err != nil {
		s.log.Error("Failed to supersede signup tokens", zap.Error(err), zap.String("email", email))
		return "", fmt.Errorf("failed to start signup")
	}

	// 4. Hash the chosen password now; verify only copies it over
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return "", fmt.Errorf("failed to process password")
	}

	// 5. Persist the pending token
	expiry := time.Duration(s.config.OTP.ExpiryMinutes) * time.Minute
	otp := utils.GenerateOTP(s.config.OTP.Length)
	now := time.Now()

	token := &entity.SignupToken{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		OTPCode:      otp,
		ExpiresAt:    now.Add(expiry),
	}

	if err := s.repo.Signup.Create(ctx, token); err != nil {
		s.log.Error("Failed to save signup token", zap.Error(err), zap.String("email", email))
		return "", fmt.Errorf("failed to start signup")
	}

	// 6. Deliver the code. The signup cannot complete without it, so a send
	// failure surfaces to the caller.
	if err := s.mail.SendOTP(email, name, otp, expiry); err != nil {
		s.log.Error("Failed to send OTP email", zap.Error(err), zap.String("email", email))
		return "", fmt.Errorf("failed to send verification email")
	}

	s.log.Info("Signup initiated",
		zap.String("email", email),
		zap.Time("expires_at", token.ExpiresAt))

	return email, nil
}

func (s *authService) VerifySignup(ctx context.Context, req *request.VerifySignupRequest) (*entity.User, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Verify signup validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	email := NormalizeEmail(req.Email)
	otp := strings.TrimSpace(req.OTP)

	// 2. Find the pending token
	pending, err := s.repo.Signup.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find signup token", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to verify signup")
	}
	if pending == nil {
		return nil, fmt.Errorf("no pending sign-up")
	}

	// 3. Exact string match against the most recent code
	if pending.OTPCode != otp {
		s.log.Warn("Invalid OTP attempt", zap.String("email", email))
		return nil, fmt.Errorf("invalid OTP")
	}

	// 4. Expiry check; stale tokens are removed on detection
	if pending.Expired(time.Now()) {
		if err := s.repo.Signup.DeleteByEmail(ctx, email); err != nil {
			s.log.Warn("Failed to delete expired signup tokens",
				zap.Error(err), zap.String("email", email))
		}
		return nil, fmt.Errorf("OTP expired")
	}

	// 5. Create the user with an empty cart and no orders
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         pending.Name,
		Email:        email,
		PasswordHash: pending.PasswordHash,
		Gender:       entity.DefaultGender,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to create account")
	}

	// 6. Consume the token
	if err := s.repo.Signup.DeleteByEmail(ctx, email); err != nil {
		s.log.Warn("Failed to delete consumed signup tokens",
			zap.Error(err), zap.String("email", email))
		// account exists; continue
	}

	s.log.Info("Signup verified",
		zap.String("user_id", user.ID.String()),
		zap.String("email", email))

	return user, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*entity.User, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	email := NormalizeEmail(req.Email)

	// 2. Find user
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to find user")
	}

	// Unknown email and wrong password are indistinguishable to the client
	if user == nil {
		s.log.Warn("Login for unknown email", zap.String("email", email))
		return nil, fmt.Errorf("invalid credentials")
	}

	// 3. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("invalid credentials")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", email))

	return user, nil
}
