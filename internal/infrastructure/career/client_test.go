package career

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Jong-Youl/LINK/domain"
)

func TestClient_Validate(t *testing.T) {
	var got validateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected application/json, got %q", ct)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer api-key" {
			t.Errorf("unexpected authorization header %q", auth)
		}
		decodeJSONBody(t, r, &got)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":1}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "api-key", 5*time.Second)
	result, err := client.Validate(context.Background(), domain.CareerValidationInput{
		Name:        "Kim",
		BirthDate:   "1995-03-14",
		CompanyName: "Acme",
		JoinedAt:    "2020-01-01",
		LeftAt:      "2023-06-30",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != 1 {
		t.Errorf("expected result 1, got %d", result)
	}
	if got.CompanyName != "Acme" || got.LeftAt != "2023-06-30" {
		t.Errorf("unexpected payload: %+v", got)
	}
}

func TestClient_Validate_UpstreamFailure(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"rejected", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := NewClient(srv.URL, "", 5*time.Second)
			_, err := client.Validate(context.Background(), domain.CareerValidationInput{
				Name:      "Kim",
				BirthDate: "1995-03-14",
			})
			if !errors.Is(err, domain.ErrUpstream) {
				t.Errorf("expected ErrUpstream, got %v", err)
			}
		})
	}
}

func TestClient_Validate_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, "", time.Second)
	_, err := client.Validate(context.Background(), domain.CareerValidationInput{Name: "Kim"})
	if !errors.Is(err, domain.ErrUpstream) {
		t.Errorf("expected ErrUpstream, got %v", err)
	}
}

func decodeJSONBody(t *testing.T, r *http.Request, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode request body: %v", err)
	}
}
