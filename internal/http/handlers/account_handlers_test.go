package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jong-Youl/LINK/domain"
	"github.com/Jong-Youl/LINK/internal/mocks"
)

func setupAccountTest(svc *mocks.MockAccountService) (*gin.Engine, *AccountHandlers) {
	gin.SetMode(gin.TestMode)
	h := NewAccountHandlers(svc, 7*24*time.Hour, zerolog.Nop())
	r := gin.New()
	r.POST("/api/users/signup", h.Signup)
	r.POST("/api/users/login", h.Login)
	r.POST("/api/users/refresh", h.Refresh)
	r.POST("/api/users/logout", h.Logout)
	r.GET("/api/users/email", h.FindEmail)
	r.POST("/api/users/email/verification", h.SendVerification)
	r.POST("/api/users/password/verification", h.CompareVerification)
	r.POST("/api/users/password", h.ResetPassword)
	r.POST("/api/users/career", h.Career)
	return r, h
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// getJSON issues a GET that carries a JSON body, which the email lookup
// endpoint expects.
func getJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func findCookie(res *http.Response, name string) *http.Cookie {
	for _, c := range res.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAccountHandlers_Signup(t *testing.T) {
	validBody := map[string]string{
		"email":       "kim@example.com",
		"password":    "supersecret",
		"name":        "Kim",
		"birthDate":   "1995-03-14",
		"phoneNumber": "010-1234-5678",
	}

	t.Run("created", func(t *testing.T) {
		svc := mocks.NewMockAccountService()
		var got domain.SignupInput
		svc.SignupFunc = func(ctx context.Context, input domain.SignupInput) (*domain.User, error) {
			got = input
			return &domain.User{ID: 1, Email: input.Email}, nil
		}
		r, _ := setupAccountTest(svc)

		w := postJSON(t, r, "/api/users/signup", validBody)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "kim@example.com", got.Email)
		assert.Equal(t, 1995, got.BirthDate.Year())
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := mocks.NewMockAccountService()
		svc.SignupFunc = func(ctx context.Context, input domain.SignupInput) (*domain.User, error) {
			return nil, domain.ErrEmailAlreadyExists
		}
		r, _ := setupAccountTest(svc)

		w := postJSON(t, r, "/api/users/signup", validBody)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("short password rejected", func(t *testing.T) {
		r, _ := setupAccountTest(mocks.NewMockAccountService())

		body := map[string]string{}
		for k, v := range validBody {
			body[k] = v
		}
		body["password"] = "short"
		w := postJSON(t, r, "/api/users/signup", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed birth date", func(t *testing.T) {
		r, _ := setupAccountTest(mocks.NewMockAccountService())

		body := map[string]string{}
		for k, v := range validBody {
			body[k] = v
		}
		body["birthDate"] = "14/03/1995"
		w := postJSON(t, r, "/api/users/signup", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAccountHandlers_Login(t *testing.T) {
	t.Run("success delivers token pair", func(t *testing.T) {
		svc := mocks.NewMockAccountService()
		svc.LoginFunc = func(ctx context.Context, email, password string) (*domain.TokenPair, error) {
			return &domain.TokenPair{AccessToken: "the-access-token", RefreshToken: "the-refresh-token"}, nil
		}
		r, _ := setupAccountTest(svc)

		w := postJSON(t, r, "/api/users/login", map[string]string{
			"email":    "kim@example.com",
			"password": "supersecret",
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Bearer the-access-token", w.Header().Get("Authorization"))

		cookie := findCookie(w.Result(), "refreshToken")
		require.NotNil(t, cookie, "refresh token cookie must be set")
		assert.Equal(t, "the-refresh-token", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, "/", cookie.Path)
		assert.Equal(t, int(7*24*time.Hour/time.Second), cookie.MaxAge)
	})

	t.Run("bad credentials", func(t *testing.T) {
		svc := mocks.NewMockAccountService()
		svc.LoginFunc = func(ctx context.Context, email, password string) (*domain.TokenPair, error) {
			return nil, domain.ErrInvalidCredentials
		}
		r, _ := setupAccountTest(svc)

		w := postJSON(t, r, "/api/users/login", map[string]string{
			"email":    "kim@example.com",
			"password": "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, w.Header().Get("Authorization"))
	})
}

func TestAccountHandlers_Refresh(t *testing.T) {
	t.Run("rotates token pair", func(t *testing.T) {
		svc := mocks.NewMockAccountService()
		var presented string
		svc.RefreshFunc = func(ctx context.Context, token string) (*domain.TokenPair, error) {
			presented = token
			return &domain.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil
		}
		r, _ := setupAccountTest(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/users/refresh", nil)
		req.AddCookie(&http.Cookie{Name: "refreshToken", Value: "old-refresh"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "old-refresh", presented)
		assert.Equal(t, "Bearer new-access", w.Header().Get("Authorization"))

		cookie := findCookie(w.Result(), "refreshToken")
		require.NotNil(t, cookie)
		assert.Equal(t, "new-refresh", cookie.Value)
	})

	t.Run("missing cookie", func(t *testing.T) {
		r, _ := setupAccountTest(mocks.NewMockAccountService())

		req := httptest.NewRequest(http.MethodPost, "/api/users/refresh", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("revoked token", func(t *testing.T) {
		svc := mocks.NewMockAccountService()
		svc.RefreshFunc = func(ctx context.Context, token string) (*domain.TokenPair, error) {
			return nil, domain.ErrTokenNotFound
		}
		r, _ := setupAccountTest(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/users/refresh", nil)
		req.AddCookie(&http.Cookie{Name: "refreshToken", Value: "revoked"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAccountHandlers_Logout(t *testing.T) {
	t.Run("revokes and clears cookie", func(t *testing.T) {
		svc := mocks.NewMockAccountService()
		var revoked string
		svc.LogoutFunc = func(ctx context.Context, token string) error {
			revoked = token
			return nil
		}
		r, _ := setupAccountTest(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/users/logout", nil)
		req.AddCookie(&http.Cookie{Name: "refreshToken", Value: "active-token"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "active-token", revoked)

		cookie := findCookie(w.Result(), "refreshToken")
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge, "parsed Max-Age=0 reads back as -1")
		assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
	})

	t.Run("no cookie is a no-op", func(t *testing.T) {
		svc := mocks.NewMockAccountService()
		svc.LogoutFunc = func(ctx context.Context, token string) error {
			t.Error("logout must not be called without a cookie")
			return nil
		}
		r, _ := setupAccountTest(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/users/logout", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown token still succeeds", func(t *testing.T) {
		svc := mocks.NewMockAccountService()
		svc.LogoutFunc = func(ctx context.Context, token string) error {
			return domain.ErrTokenNotFound
		}
		r, _ := setupAccountTest(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/users/logout", nil)
		req.AddCookie(&http.Cookie{Name: "refreshToken", Value: "long-gone"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAccountHandlers_FindEmail(t *testing.T) {
	body := map[string]string{
		"name":        "Kim",
		"birthDate":   "1995-03-14",
		"phoneNumber": "010-1234-5678",
	}

	t.Run("found", func(t *testing.T) {
		svc := mocks.NewMockAccountService()
		svc.FindEmailFunc = func(ctx context.Context, name string, birthDate time.Time, phone string) (string, error) {
			return "kim@example.com", nil
		}
		r, _ := setupAccountTest(svc)

		w := getJSON(t, r, "/api/users/email", body)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "kim@example.com")
	})

	t.Run("no match", func(t *testing.T) {
		svc := mocks.NewMockAccountService()
		svc.FindEmailFunc = func(ctx context.Context, name string, birthDate time.Time, phone string) (string, error) {
			return "", domain.ErrUserNotFound
		}
		r, _ := setupAccountTest(svc)

		w := getJSON(t, r, "/api/users/email", body)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAccountHandlers_SendVerification(t *testing.T) {
	body := map[string]string{"email": "kim@example.com"}

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"accepted", nil, http.StatusAccepted},
		{"unknown email", domain.ErrUserNotFound, http.StatusNotFound},
		{"throttled", domain.ErrVerificationThrottled, http.StatusTooManyRequests},
		{"delivery failure", domain.ErrEmailDelivery, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAccountService()
			svc.SendVerificationEmailFunc = func(ctx context.Context, email string) error {
				return tt.err
			}
			r, _ := setupAccountTest(svc)

			w := postJSON(t, r, "/api/users/email/verification", body)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestAccountHandlers_CompareVerification(t *testing.T) {
	body := map[string]string{
		"verificationKey": "482913",
		"email":           "kim@example.com",
	}

	t.Run("match returns bare true", func(t *testing.T) {
		svc := mocks.NewMockAccountService()
		svc.CompareVerificationFunc = func(ctx context.Context, code, email string) error {
			assert.Equal(t, "482913", code)
			assert.Equal(t, "kim@example.com", email)
			return nil
		}
		r, _ := setupAccountTest(svc)

		w := postJSON(t, r, "/api/users/password/verification", body)

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, "true", strings.TrimSpace(w.Body.String()))
	})

	t.Run("mismatch", func(t *testing.T) {
		svc := mocks.NewMockAccountService()
		svc.CompareVerificationFunc = func(ctx context.Context, code, email string) error {
			return domain.ErrVerificationMismatch
		}
		r, _ := setupAccountTest(svc)

		w := postJSON(t, r, "/api/users/password/verification", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAccountHandlers_ResetPassword(t *testing.T) {
	body := map[string]string{
		"email":       "kim@example.com",
		"code":        "482913",
		"newPassword": "brand-new-secret",
	}

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"changed", nil, http.StatusCreated},
		{"unknown email", domain.ErrUserNotFound, http.StatusNotFound},
		{"not verified", domain.ErrVerificationRequired, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAccountService()
			svc.ResetPasswordFunc = func(ctx context.Context, email, newPassword, code string) error {
				return tt.err
			}
			r, _ := setupAccountTest(svc)

			w := postJSON(t, r, "/api/users/password", body)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestAccountHandlers_Career(t *testing.T) {
	body := map[string]string{
		"name":        "Kim",
		"birthDate":   "1995-03-14",
		"companyName": "Acme",
		"joinedAt":    "2020-01-01",
	}

	t.Run("returns upstream result code", func(t *testing.T) {
		svc := mocks.NewMockAccountService()
		svc.CareerValidationFunc = func(ctx context.Context, input domain.CareerValidationInput) (int, error) {
			return 1, nil
		}
		r, _ := setupAccountTest(svc)

		w := postJSON(t, r, "/api/users/career", body)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "1", strings.TrimSpace(w.Body.String()))
	})

	t.Run("upstream unavailable", func(t *testing.T) {
		svc := mocks.NewMockAccountService()
		svc.CareerValidationFunc = func(ctx context.Context, input domain.CareerValidationInput) (int, error) {
			return 0, domain.ErrUpstream
		}
		r, _ := setupAccountTest(svc)

		w := postJSON(t, r, "/api/users/career", body)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestAccountHandlers_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := mocks.NewMockAccountService()
	svc.GetProfileFunc = func(ctx context.Context, userID uint) (*domain.User, error) {
		return &domain.User{
			ID:          userID,
			Email:       "kim@example.com",
			Name:        "Kim",
			BirthDate:   time.Date(1995, 3, 14, 0, 0, 0, 0, time.UTC),
			PhoneNumber: "010-1234-5678",
			Role:        "user",
		}, nil
	}
	h := NewAccountHandlers(svc, 7*24*time.Hour, zerolog.Nop())

	r := gin.New()
	r.GET("/api/users/me", func(c *gin.Context) {
		c.Set("user_id", "42")
		h.Me(c)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(42), resp["id"])
	assert.Equal(t, "kim@example.com", resp["email"])
	assert.Equal(t, "1995-03-14", resp["birthDate"])
}
