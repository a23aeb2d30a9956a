package mocks

import (
	"context"

	"github.com/Jong-Youl/LINK/domain"
)

// MockRefreshTokenRepository implements domain.RefreshTokenRepository for testing
type MockRefreshTokenRepository struct {
	SaveFunc   func(ctx context.Context, token *domain.RefreshToken) error
	FindFunc   func(ctx context.Context, token string) (*domain.RefreshToken, error)
	DeleteFunc func(ctx context.Context, token string) error
}

func NewMockRefreshTokenRepository() *MockRefreshTokenRepository {
	return &MockRefreshTokenRepository{}
}

func (m *MockRefreshTokenRepository) Save(ctx context.Context, token *domain.RefreshToken) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, token)
	}
	return nil
}

func (m *MockRefreshTokenRepository) Find(ctx context.Context, token string) (*domain.RefreshToken, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, token)
	}
	return nil, domain.ErrTokenNotFound
}

func (m *MockRefreshTokenRepository) Delete(ctx context.Context, token string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, token)
	}
	return nil
}
