package domain

import "time"

// User represents an account holder
type User struct {
	ID            uint
	Email         string
	PasswordHash  string `gorm:"column:password"`
	Name          string
	BirthDate     time.Time
	PhoneNumber   string
	Role          string
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SignupInput carries the fields required to create an account
type SignupInput struct {
	Email       string
	Password    string
	Name        string
	BirthDate   time.Time
	PhoneNumber string
	Role        string
}

// TokenPair is the transient result of login and refresh.
// AccessToken is self-describing; RefreshToken is the lookup key
// into the token store.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// RefreshToken is an opaque credential stored server-side for revocation
type RefreshToken struct {
	Token     string
	UserID    uint
	ExpiresAt time.Time
	CreatedAt time.Time
}

// CareerValidationInput is the payload forwarded to the career-verification upstream
type CareerValidationInput struct {
	Name        string
	BirthDate   string
	CompanyName string
	JoinedAt    string
	LeftAt      string
}

// Team is a project team that accumulates skills
type Team struct {
	ID        uint
	Name      string
	CreatedAt time.Time
}

// Skill is a technology tag linkable to teams
type Skill struct {
	ID   uint
	Name string
}
