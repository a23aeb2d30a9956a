package mocks

import (
	"context"

	"github.com/Jong-Youl/LINK/domain"
)

// MockPasswordService implements domain.PasswordService for testing
type MockPasswordService struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hashedPassword, password string) bool
}

func NewMockPasswordService() *MockPasswordService {
	return &MockPasswordService{}
}

func (m *MockPasswordService) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed_" + password, nil
}

func (m *MockPasswordService) Verify(hashedPassword, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	return hashedPassword == "hashed_"+password
}

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	GenerateAccessTokenFunc func(userID uint, role string) (string, error)
	ValidateAccessTokenFunc func(token string) (*domain.TokenClaims, error)
}

func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

func (m *MockTokenService) GenerateAccessToken(userID uint, role string) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(userID, role)
	}
	return "access_token", nil
}

func (m *MockTokenService) ValidateAccessToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateAccessTokenFunc != nil {
		return m.ValidateAccessTokenFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}

// MockVerificationService implements domain.VerificationService for testing
type MockVerificationService struct {
	RequestFunc             func(ctx context.Context, email string) error
	ConfirmFunc             func(ctx context.Context, email, code string) error
	ConsumeConfirmationFunc func(ctx context.Context, email, code string) error
	CanResendFunc           func(ctx context.Context, email string) (bool, int64, error)
}

func NewMockVerificationService() *MockVerificationService {
	return &MockVerificationService{}
}

func (m *MockVerificationService) Request(ctx context.Context, email string) error {
	if m.RequestFunc != nil {
		return m.RequestFunc(ctx, email)
	}
	return nil
}

func (m *MockVerificationService) Confirm(ctx context.Context, email, code string) error {
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(ctx, email, code)
	}
	return nil
}

func (m *MockVerificationService) ConsumeConfirmation(ctx context.Context, email, code string) error {
	if m.ConsumeConfirmationFunc != nil {
		return m.ConsumeConfirmationFunc(ctx, email, code)
	}
	return nil
}

func (m *MockVerificationService) CanResend(ctx context.Context, email string) (bool, int64, error) {
	if m.CanResendFunc != nil {
		return m.CanResendFunc(ctx, email)
	}
	return true, 0, nil
}

// MockMailService implements domain.MailService for testing
type MockMailService struct {
	SendEmailFunc func(to, subject, body string) error
	Sent          []SentEmail
}

// SentEmail records a delivered message for assertions
type SentEmail struct {
	To      string
	Subject string
	Body    string
}

func NewMockMailService() *MockMailService {
	return &MockMailService{}
}

func (m *MockMailService) SendEmail(to, subject, body string) error {
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(to, subject, body)
	}
	m.Sent = append(m.Sent, SentEmail{To: to, Subject: subject, Body: body})
	return nil
}

// MockCareerVerifier implements domain.CareerVerifier for testing
type MockCareerVerifier struct {
	ValidateFunc func(ctx context.Context, input domain.CareerValidationInput) (int, error)
}

func NewMockCareerVerifier() *MockCareerVerifier {
	return &MockCareerVerifier{}
}

func (m *MockCareerVerifier) Validate(ctx context.Context, input domain.CareerValidationInput) (int, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(ctx, input)
	}
	return 0, nil
}
