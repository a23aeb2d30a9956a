package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Jong-Youl/LINK/domain"
)

// AccountServiceImpl implements domain.AccountService
type AccountServiceImpl struct {
	userRepo    domain.UserRepository
	tokenRepo   domain.RefreshTokenRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	verifySvc   domain.VerificationService
	careerSvc   domain.CareerVerifier
	accessTTL   time.Duration
	refreshTTL  time.Duration
	logger      zerolog.Logger
}

// NewAccountService creates a new account service
func NewAccountService(
	userRepo domain.UserRepository,
	tokenRepo domain.RefreshTokenRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	verifySvc domain.VerificationService,
	careerSvc domain.CareerVerifier,
	accessTTL, refreshTTL time.Duration,
	logger zerolog.Logger,
) domain.AccountService {
	return &AccountServiceImpl{
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		verifySvc:   verifySvc,
		careerSvc:   careerSvc,
		accessTTL:   accessTTL,
		refreshTTL:  refreshTTL,
		logger:      logger,
	}
}

// Signup implements domain.AccountService
func (s *AccountServiceImpl) Signup(ctx context.Context, input domain.SignupInput) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err == nil && existingUser != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hashedPassword, err := s.passwordSvc.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := input.Role
	if role == "" {
		role = "user"
	}

	user := &domain.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Name:         input.Name,
		BirthDate:    input.BirthDate,
		PhoneNumber:  input.PhoneNumber,
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login implements domain.AccountService. Failures for unknown email and
// wrong password are indistinguishable to the caller.
func (s *AccountServiceImpl) Login(ctx context.Context, email, password string) (*domain.TokenPair, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issueTokenPair(ctx, user)
}

// Refresh implements domain.AccountService with rotation: the presented
// token is revoked before a new pair is issued, so a rotated token never
// validates again.
func (s *AccountServiceImpl) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	stored, err := s.tokenRepo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrTokenNotFound) || errors.Is(err, domain.ErrTokenExpired) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, stored.UserID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	if err := s.tokenRepo.Delete(ctx, refreshToken); err != nil && !errors.Is(err, domain.ErrTokenNotFound) {
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	return s.issueTokenPair(ctx, user)
}

// Logout implements domain.AccountService. Reports ErrTokenNotFound for an
// unknown token; the HTTP layer treats that as a benign no-op.
func (s *AccountServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenRepo.Delete(ctx, refreshToken)
}

// FindEmail implements domain.AccountService
func (s *AccountServiceImpl) FindEmail(ctx context.Context, name string, birthDate time.Time, phoneNumber string) (string, error) {
	user, err := s.userRepo.FindByNameBirthPhone(ctx, name, birthDate, phoneNumber)
	if err != nil {
		return "", err
	}
	return user.Email, nil
}

// SendVerificationEmail implements domain.AccountService
func (s *AccountServiceImpl) SendVerificationEmail(ctx context.Context, email string) error {
	if _, err := s.userRepo.FindByEmail(ctx, email); err != nil {
		return err
	}
	return s.verifySvc.Request(ctx, email)
}

// CompareVerificationKey implements domain.AccountService
func (s *AccountServiceImpl) CompareVerificationKey(ctx context.Context, code, email string) error {
	return s.verifySvc.Confirm(ctx, email, code)
}

// ResetPassword implements domain.AccountService. Requires a prior
// successful verification for the email; the confirmation is consumed here.
func (s *AccountServiceImpl) ResetPassword(ctx context.Context, email, newPassword, code string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	if err := s.verifySvc.ConsumeConfirmation(ctx, email, code); err != nil {
		return err
	}

	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	// Completing a reset proves control of the address
	if err := s.userRepo.MarkEmailVerified(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Uint("user_id", user.ID).Msg("failed to mark email verified")
	}

	s.logger.Info().Uint("user_id", user.ID).Msg("password reset completed")
	return nil
}

// CareerValidation implements domain.AccountService
func (s *AccountServiceImpl) CareerValidation(ctx context.Context, input domain.CareerValidationInput) (int, error) {
	return s.careerSvc.Validate(ctx, input)
}

// GetProfile implements domain.AccountService
func (s *AccountServiceImpl) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// issueTokenPair signs a fresh access token and persists a new opaque
// refresh token with the configured TTL.
func (s *AccountServiceImpl) issueTokenPair(ctx context.Context, user *domain.User) (*domain.TokenPair, error) {
	accessToken, err := s.tokenSvc.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := generateOpaqueToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	now := time.Now()
	if err := s.tokenRepo.Save(ctx, &domain.RefreshToken{
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: now.Add(s.refreshTTL),
		CreatedAt: now,
	}); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

// generateOpaqueToken returns a 64-hex-char random token
func generateOpaqueToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
