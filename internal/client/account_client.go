// Package client implements the login client: the component that
// collects credentials, calls the account service over HTTP, and drives
// session state and navigation from the outcome.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/vibank/account-system/internal/core/domain"
)

// Config holds the client-side settings.
type Config struct {
	BaseURL string `env:"BACKEND_API_URL, default=http://localhost:8000"`
}

// LoadConfig reads client configuration from environment variables.
func LoadConfig(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("client config: %w", err)
	}
	return &cfg, nil
}

// APIError carries the status code and server-supplied message of a
// non-2xx response. Msg is empty when the server sent no {msg}
// envelope (e.g. a bare 500).
type APIError struct {
	StatusCode int
	Msg        string
}

func (e *APIError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("account service returned %d", e.StatusCode)
	}
	return fmt.Sprintf("account service returned %d: %s", e.StatusCode, e.Msg)
}

// AccountAPI is the slice of the account service the login client
// consumes.
type AccountAPI interface {
	Login(ctx context.Context, email, password string) (domain.PublicUser, error)
}

// AccountClient calls the account service's HTTP API.
type AccountClient struct {
	baseURL string
	httpc   *http.Client
}

func NewAccountClient(baseURL string, httpc *http.Client) *AccountClient {
	if httpc == nil {
		httpc = &http.Client{Timeout: 15 * time.Second}
	}
	return &AccountClient{baseURL: baseURL, httpc: httpc}
}

type registerPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginByNamePayload struct {
	Name string `json:"name"`
}

type userEnvelope struct {
	User domain.PublicUser `json:"user"`
}

type msgEnvelope struct {
	Msg string `json:"msg"`
}

// Register creates an account and returns its public projection.
func (c *AccountClient) Register(ctx context.Context, name, email, password, role string) (domain.PublicUser, error) {
	return c.post(ctx, "/api/auth/register", registerPayload{
		Name: name, Email: email, Password: password, Role: role,
	})
}

// Login verifies credentials and returns the public projection.
func (c *AccountClient) Login(ctx context.Context, email, password string) (domain.PublicUser, error) {
	return c.post(ctx, "/api/auth/login", loginPayload{Email: email, Password: password})
}

// LoginByName resolves an agent by name without a password check.
func (c *AccountClient) LoginByName(ctx context.Context, name string) (domain.PublicUser, error) {
	return c.post(ctx, "/api/auth/login-by-name", loginByNamePayload{Name: name})
}

func (c *AccountClient) post(ctx context.Context, path string, payload any) (domain.PublicUser, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return domain.PublicUser{}, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return domain.PublicUser{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return domain.PublicUser{}, fmt.Errorf("call account service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var env msgEnvelope
		if json.NewDecoder(resp.Body).Decode(&env) == nil {
			apiErr.Msg = env.Msg
		}
		return domain.PublicUser{}, apiErr
	}

	var env userEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return domain.PublicUser{}, fmt.Errorf("decode response: %w", err)
	}
	return env.User, nil
}
