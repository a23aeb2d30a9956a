package career

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Jong-Youl/LINK/domain"
)

// Client implements domain.CareerVerifier against the career-verification API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type validateRequest struct {
	Name        string `json:"name"`
	BirthDate   string `json:"birthDate"`
	CompanyName string `json:"companyName"`
	JoinedAt    string `json:"joinedAt"`
	LeftAt      string `json:"leftAt,omitempty"`
}

type validateResponse struct {
	Result int `json:"result"`
}

// Validate posts the employment record upstream and returns its integer
// result code. Any transport, encoding, or non-2xx failure is reported as
// domain.ErrUpstream.
func (c *Client) Validate(ctx context.Context, input domain.CareerValidationInput) (int, error) {
	payload, err := json.Marshal(validateRequest{
		Name:        input.Name,
		BirthDate:   input.BirthDate,
		CompanyName: input.CompanyName,
		JoinedAt:    input.JoinedAt,
		LeftAt:      input.LeftAt,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: encode request: %v", domain.ErrUpstream, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("%w: build request: %v", domain.ErrUpstream, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("%w: unexpected status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var out validateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("%w: decode response: %v", domain.ErrUpstream, err)
	}

	return out.Result, nil
}
