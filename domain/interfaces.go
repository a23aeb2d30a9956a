package domain

import (
	"context"
	"time"
)

// UserRepository defines credential store operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByNameBirthPhone(ctx context.Context, name string, birthDate time.Time, phoneNumber string) (*User, error)
	UpdatePassword(ctx context.Context, userID uint, passwordHash string) error
	MarkEmailVerified(ctx context.Context, userID uint) error
}

// RefreshTokenRepository defines token store operations.
// Expiry is enforced by the backing store; absence means logged out.
type RefreshTokenRepository interface {
	Save(ctx context.Context, token *RefreshToken) error
	Find(ctx context.Context, token string) (*RefreshToken, error)
	Delete(ctx context.Context, token string) error
}

// TeamSkillRepository links skills to teams through explicit association rows
type TeamSkillRepository interface {
	FindTeam(ctx context.Context, teamID uint) (*Team, error)
	Link(ctx context.Context, teamID, skillID uint) error
	Unlink(ctx context.Context, teamID, skillID uint) error
	SkillsByTeam(ctx context.Context, teamID uint) ([]Skill, error)
}

// AccountService defines the account business logic
type AccountService interface {
	Signup(ctx context.Context, input SignupInput) (*User, error)
	Login(ctx context.Context, email, password string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	FindEmail(ctx context.Context, name string, birthDate time.Time, phoneNumber string) (string, error)
	SendVerificationEmail(ctx context.Context, email string) error
	CompareVerificationKey(ctx context.Context, code, email string) error
	ResetPassword(ctx context.Context, email, newPassword, code string) error
	CareerValidation(ctx context.Context, input CareerValidationInput) (int, error)
	GetProfile(ctx context.Context, userID uint) (*User, error)
}

// VerificationService manages email verification codes
type VerificationService interface {
	Request(ctx context.Context, email string) error
	Confirm(ctx context.Context, email, code string) error
	ConsumeConfirmation(ctx context.Context, email, code string) error
	CanResend(ctx context.Context, email string) (bool, int64, error)
}

// PasswordService defines password hashing operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines access-token operations
type TokenService interface {
	GenerateAccessToken(userID uint, role string) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}

// MailService delivers messages to account holders
type MailService interface {
	SendEmail(to, subject, body string) error
}

// CareerVerifier validates employment history against an external API
type CareerVerifier interface {
	Validate(ctx context.Context, input CareerValidationInput) (int, error)
}

// PolicyService defines authorization policy operations
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() [][]string
}

// TokenClaims represents JWT access-token claims
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	Role      string `json:"role"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// CasbinEnforcer is the subset of the Casbin enforcer used by the policy service
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
