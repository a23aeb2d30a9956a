package mocks

import (
	"context"
	"time"

	"github.com/Jong-Youl/LINK/domain"
)

// MockAccountService implements domain.AccountService for handler testing
type MockAccountService struct {
	SignupFunc                func(ctx context.Context, input domain.SignupInput) (*domain.User, error)
	LoginFunc                 func(ctx context.Context, email, password string) (*domain.TokenPair, error)
	RefreshFunc               func(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	LogoutFunc                func(ctx context.Context, refreshToken string) error
	FindEmailFunc             func(ctx context.Context, name string, birthDate time.Time, phoneNumber string) (string, error)
	SendVerificationEmailFunc func(ctx context.Context, email string) error
	CompareVerificationFunc   func(ctx context.Context, code, email string) error
	ResetPasswordFunc         func(ctx context.Context, email, newPassword, code string) error
	CareerValidationFunc      func(ctx context.Context, input domain.CareerValidationInput) (int, error)
	GetProfileFunc            func(ctx context.Context, userID uint) (*domain.User, error)
}

func NewMockAccountService() *MockAccountService {
	return &MockAccountService{}
}

func (m *MockAccountService) Signup(ctx context.Context, input domain.SignupInput) (*domain.User, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, input)
	}
	return &domain.User{ID: 1, Email: input.Email}, nil
}

func (m *MockAccountService) Login(ctx context.Context, email, password string) (*domain.TokenPair, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return &domain.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil
}

func (m *MockAccountService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, refreshToken)
	}
	return nil, domain.ErrTokenNotFound
}

func (m *MockAccountService) Logout(ctx context.Context, refreshToken string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, refreshToken)
	}
	return nil
}

func (m *MockAccountService) FindEmail(ctx context.Context, name string, birthDate time.Time, phoneNumber string) (string, error) {
	if m.FindEmailFunc != nil {
		return m.FindEmailFunc(ctx, name, birthDate, phoneNumber)
	}
	return "", domain.ErrUserNotFound
}

func (m *MockAccountService) SendVerificationEmail(ctx context.Context, email string) error {
	if m.SendVerificationEmailFunc != nil {
		return m.SendVerificationEmailFunc(ctx, email)
	}
	return nil
}

func (m *MockAccountService) CompareVerificationKey(ctx context.Context, code, email string) error {
	if m.CompareVerificationFunc != nil {
		return m.CompareVerificationFunc(ctx, code, email)
	}
	return nil
}

func (m *MockAccountService) ResetPassword(ctx context.Context, email, newPassword, code string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, email, newPassword, code)
	}
	return nil
}

func (m *MockAccountService) CareerValidation(ctx context.Context, input domain.CareerValidationInput) (int, error) {
	if m.CareerValidationFunc != nil {
		return m.CareerValidationFunc(ctx, input)
	}
	return 0, nil
}

func (m *MockAccountService) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	return nil, domain.ErrUserNotFound
}
