package mocks

import (
	"context"
	"time"

	"github.com/Jong-Youl/LINK/domain"
)

// MockUserRepository implements domain.UserRepository for testing
type MockUserRepository struct {
	CreateFunc               func(ctx context.Context, user *domain.User) error
	FindByEmailFunc          func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFunc             func(ctx context.Context, id uint) (*domain.User, error)
	FindByNameBirthPhoneFunc func(ctx context.Context, name string, birthDate time.Time, phoneNumber string) (*domain.User, error)
	UpdatePasswordFunc       func(ctx context.Context, userID uint, passwordHash string) error
	MarkEmailVerifiedFunc    func(ctx context.Context, userID uint) error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByNameBirthPhone(ctx context.Context, name string, birthDate time.Time, phoneNumber string) (*domain.User, error) {
	if m.FindByNameBirthPhoneFunc != nil {
		return m.FindByNameBirthPhoneFunc(ctx, name, birthDate, phoneNumber)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID uint, passwordHash string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, userID, passwordHash)
	}
	return nil
}

func (m *MockUserRepository) MarkEmailVerified(ctx context.Context, userID uint) error {
	if m.MarkEmailVerifiedFunc != nil {
		return m.MarkEmailVerifiedFunc(ctx, userID)
	}
	return nil
}
