package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Jong-Youl/LINK/domain"
)

// VerificationServiceImpl implements domain.VerificationService using Redis
// persistence. Keys are namespaced per email: the pending code, an attempt
// counter, a resend throttle marker, and a one-shot confirmation marker
// written when a compare succeeds.
type VerificationServiceImpl struct {
	mailSvc     domain.MailService
	redisClient *redis.Client
	config      VerificationConfig
}

type VerificationConfig struct {
	Length       int
	TTL          time.Duration
	ConfirmTTL   time.Duration
	MaxAttempts  int
	ResendWindow time.Duration
}

// NewVerificationService creates a new Redis-based verification service
func NewVerificationService(mailSvc domain.MailService, redisClient *redis.Client, config VerificationConfig) domain.VerificationService {
	return &VerificationServiceImpl{
		mailSvc:     mailSvc,
		redisClient: redisClient,
		config:      config,
	}
}

func codeKey(email string) string     { return "verify:" + email }
func attemptsKey(email string) string { return "verify:att:" + email }
func resendKey(email string) string   { return "verify:res:" + email }
func confirmKey(email string) string  { return "verify:ok:" + email }

// Request generates a fresh code for the email, superseding any prior one,
// and dispatches it by mail. Redis state is rolled back if delivery fails.
func (s *VerificationServiceImpl) Request(ctx context.Context, email string) error {
	canResend, waitTime, err := s.CanResend(ctx, email)
	if err != nil {
		return err
	}
	if !canResend {
		return fmt.Errorf("%w: wait %d seconds", domain.ErrVerificationThrottled, waitTime)
	}

	code, err := s.generateSecureCode()
	if err != nil {
		return fmt.Errorf("failed to generate verification code: %w", err)
	}

	// SET overwrites any previous code, giving supersede semantics
	if err := s.redisClient.Set(ctx, codeKey(email), code, s.config.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store verification code: %w", err)
	}

	if err := s.redisClient.Set(ctx, attemptsKey(email), 0, s.config.TTL).Err(); err != nil {
		return fmt.Errorf("failed to initialize attempts counter: %w", err)
	}

	if err := s.redisClient.Set(ctx, resendKey(email), 1, s.config.ResendWindow).Err(); err != nil {
		return fmt.Errorf("failed to set resend throttle: %w", err)
	}

	subject := "LINK email verification"
	body := fmt.Sprintf("Your verification code is: %s. Valid for %d minutes.", code, int(s.config.TTL.Minutes()))
	if err := s.mailSvc.SendEmail(email, subject, body); err != nil {
		s.redisClient.Del(ctx, codeKey(email), attemptsKey(email), resendKey(email))
		return err
	}

	return nil
}

// Confirm compares the supplied code with the pending one. On success the
// pending code is invalidated and a confirmation marker holding the code is
// written, so neither the compare nor the subsequent reset can be replayed.
func (s *VerificationServiceImpl) Confirm(ctx context.Context, email, code string) error {
	attempts, err := s.redisClient.Incr(ctx, attemptsKey(email)).Result()
	if err != nil {
		return fmt.Errorf("failed to increment attempts: %w", err)
	}

	if attempts > int64(s.config.MaxAttempts) {
		s.redisClient.Del(ctx, codeKey(email), attemptsKey(email))
		return domain.ErrVerificationMaxAttempts
	}

	storedCode, err := s.redisClient.Get(ctx, codeKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return domain.ErrVerificationNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get verification code: %w", err)
	}

	if storedCode != code {
		return domain.ErrVerificationMismatch
	}

	if err := s.redisClient.Set(ctx, confirmKey(email), code, s.config.ConfirmTTL).Err(); err != nil {
		return fmt.Errorf("failed to store confirmation marker: %w", err)
	}
	s.redisClient.Del(ctx, codeKey(email), attemptsKey(email))

	return nil
}

// ConsumeConfirmation validates and consumes the one-shot confirmation
// marker written by Confirm. A second consume for the same email fails.
func (s *VerificationServiceImpl) ConsumeConfirmation(ctx context.Context, email, code string) error {
	confirmed, err := s.redisClient.Get(ctx, confirmKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return domain.ErrVerificationRequired
	}
	if err != nil {
		return fmt.Errorf("failed to get confirmation marker: %w", err)
	}

	if confirmed != code {
		return domain.ErrVerificationMismatch
	}

	s.redisClient.Del(ctx, confirmKey(email))
	return nil
}

// CanResend reports whether a new code may be requested for the email, and
// if not, how many seconds remain in the throttle window.
func (s *VerificationServiceImpl) CanResend(ctx context.Context, email string) (bool, int64, error) {
	ttl, err := s.redisClient.TTL(ctx, resendKey(email)).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to check resend TTL: %w", err)
	}

	if ttl <= 0 {
		return true, 0, nil
	}

	return false, int64(ttl.Seconds()), nil
}

// generateSecureCode generates a cryptographically secure numeric code
func (s *VerificationServiceImpl) generateSecureCode() (string, error) {
	digits := make([]byte, s.config.Length)

	for i := 0; i < s.config.Length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}

	return string(digits), nil
}
