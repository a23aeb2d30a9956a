package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Jong-Youl/LINK/domain"
)

const (
	refreshCookieName = "refreshToken"
	birthDateLayout   = "2006-01-02"
)

// AccountHandlers handles account HTTP requests
type AccountHandlers struct {
	accountSvc          domain.AccountService
	refreshCookieMaxAge int
	logger              zerolog.Logger
}

// NewAccountHandlers creates new account handlers
func NewAccountHandlers(accountSvc domain.AccountService, refreshTTL time.Duration, logger zerolog.Logger) *AccountHandlers {
	return &AccountHandlers{
		accountSvc:          accountSvc,
		refreshCookieMaxAge: int(refreshTTL.Seconds()),
		logger:              logger,
	}
}

// SignupRequest represents signup request
type SignupRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Name        string `json:"name" binding:"required"`
	BirthDate   string `json:"birthDate" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// FindEmailRequest represents identity recovery request
type FindEmailRequest struct {
	Name        string `json:"name" binding:"required"`
	BirthDate   string `json:"birthDate" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

// SendVerificationRequest represents verification mail request
type SendVerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VerificationRequest represents code comparison request
type VerificationRequest struct {
	VerificationKey string `json:"verificationKey" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
}

// PasswordResetRequest represents password reset request
type PasswordResetRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// CareerRequest represents career validation request
type CareerRequest struct {
	Name        string `json:"name" binding:"required"`
	BirthDate   string `json:"birthDate" binding:"required"`
	CompanyName string `json:"companyName" binding:"required"`
	JoinedAt    string `json:"joinedAt" binding:"required"`
	LeftAt      string `json:"leftAt"`
}

// Signup handles account creation
func (h *AccountHandlers) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	birthDate, err := time.Parse(birthDateLayout, req.BirthDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "birthDate must be formatted as YYYY-MM-DD"})
		return
	}

	_, err = h.accountSvc.Signup(c.Request.Context(), domain.SignupInput{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		BirthDate:   birthDate,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign up"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Signup completed"})
}

// Login handles login and delivers the token pair: access token in the
// Authorization header, refresh token in an HttpOnly cookie.
func (h *AccountHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := h.accountSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	h.setTokenPair(c, pair)
	c.Status(http.StatusOK)
}

// Refresh rotates the presented refresh token and issues a fresh pair
func (h *AccountHandlers) Refresh(c *gin.Context) {
	token, err := c.Cookie(refreshCookieName)
	if err != nil || token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token required"})
		return
	}

	pair, err := h.accountSvc.Refresh(c.Request.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenNotFound), errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token refresh failed"})
		}
		return
	}

	h.setTokenPair(c, pair)
	c.Status(http.StatusOK)
}

// Logout revokes the presented refresh token and clears the cookie. A
// missing or unknown token is treated as an already-logged-out no-op.
func (h *AccountHandlers) Logout(c *gin.Context) {
	token, err := c.Cookie(refreshCookieName)
	if err == nil && token != "" {
		if err := h.accountSvc.Logout(c.Request.Context(), token); err != nil && !errors.Is(err, domain.ErrTokenNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
			return
		}
	}

	// MaxAge < 0 serializes as Max-Age=0, expiring the cookie
	c.SetCookie(refreshCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// FindEmail handles identity recovery by exact profile match
func (h *AccountHandlers) FindEmail(c *gin.Context) {
	var req FindEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	birthDate, err := time.Parse(birthDateLayout, req.BirthDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "birthDate must be formatted as YYYY-MM-DD"})
		return
	}

	email, err := h.accountSvc.FindEmail(c.Request.Context(), req.Name, birthDate, req.PhoneNumber)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No matching account"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lookup failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": fmt.Sprintf("Your email is %s", email)})
}

// SendVerification handles verification mail requests
func (h *AccountHandlers) SendVerification(c *gin.Context) {
	var req SendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.accountSvc.SendVerificationEmail(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No account for that email"})
		case errors.Is(err, domain.ErrVerificationThrottled):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Verification recently sent, try again later"})
		case errors.Is(err, domain.ErrEmailDelivery):
			h.logger.Error().Err(err).Str("email", req.Email).Msg("verification mail delivery failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to deliver verification email"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send verification email"})
		}
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"message": "Check your email"})
}

// CompareVerification handles verification code comparison
func (h *AccountHandlers) CompareVerification(c *gin.Context) {
	var req VerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.accountSvc.CompareVerificationKey(c.Request.Context(), req.VerificationKey, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrVerificationNotFound),
			errors.Is(err, domain.ErrVerificationMismatch),
			errors.Is(err, domain.ErrVerificationMaxAttempts):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Verification code mismatch or expired"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification failed"})
		}
		return
	}

	c.JSON(http.StatusAccepted, true)
}

// ResetPassword handles password reset after a confirmed verification
func (h *AccountHandlers) ResetPassword(c *gin.Context) {
	var req PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.accountSvc.ResetPassword(c.Request.Context(), req.Email, req.NewPassword, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No account for that email"})
		case errors.Is(err, domain.ErrVerificationRequired), errors.Is(err, domain.ErrVerificationMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Verification required before password reset"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Password reset failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Password changed"})
}

// Career handles career validation against the external API
func (h *AccountHandlers) Career(c *gin.Context) {
	var req CareerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.accountSvc.CareerValidation(c.Request.Context(), domain.CareerValidationInput{
		Name:        req.Name,
		BirthDate:   req.BirthDate,
		CompanyName: req.CompanyName,
		JoinedAt:    req.JoinedAt,
		LeftAt:      req.LeftAt,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUpstream) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Career verification service unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Career validation failed"})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// Me handles getting the authenticated user's profile
func (h *AccountHandlers) Me(c *gin.Context) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	userID, err := strconv.ParseUint(userIDStr.(string), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	user, err := h.accountSvc.GetProfile(c.Request.Context(), uint(userID))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":             user.ID,
		"email":          user.Email,
		"name":           user.Name,
		"birthDate":      user.BirthDate.Format(birthDateLayout),
		"phoneNumber":    user.PhoneNumber,
		"role":           user.Role,
		"email_verified": user.EmailVerified,
		"created_at":     user.CreatedAt,
	})
}

// setTokenPair writes the access token into the Authorization header and
// the refresh token into an HttpOnly cookie scoped to the whole site.
func (h *AccountHandlers) setTokenPair(c *gin.Context, pair *domain.TokenPair) {
	c.Header("Authorization", "Bearer "+pair.AccessToken)
	c.SetCookie(refreshCookieName, pair.RefreshToken, h.refreshCookieMaxAge, "/", "", false, true)
}
