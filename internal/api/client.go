package api

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"foodnetwork/pkg/logger"
	"foodnetwork/pkg/models"
)

// ErrTransport marks failures where no HTTP response was received.
var ErrTransport = errors.New("transport failure")

// StatusError is returned when the account service answers with a non-2xx status.
type StatusError struct {
	Op         string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: API error (status %d)", e.Op, e.StatusCode)
}

// TransportConfig describes how the client reaches the account service.
// InsecureSkipVerify disables TLS certificate checks and must be set explicitly.
type TransportConfig struct {
	BaseURL            string
	InsecureSkipVerify bool
	Timeout            time.Duration
	UserAgent          string
}

// Client handles HTTP API communication with the account service
type Client struct {
	baseURL    string
	userAgent  string
	insecure   bool
	httpClient *http.Client
}

// NewClient creates a new API client
func NewClient(cfg TransportConfig) (*Client, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	u, err := url.Parse(base)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // explicit opt-in
		logger.Warnf("TLS certificate verification disabled for %s", base)
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "foodnet-cli"
	}

	return &Client{
		baseURL:   base,
		userAgent: userAgent,
		insecure:  cfg.InsecureSkipVerify,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}, nil
}

// Insecure reports whether TLS verification is disabled
func (c *Client) Insecure() bool {
	return c.insecure
}

// BaseURL returns the account service root
func (c *Client) BaseURL() string {
	return c.baseURL
}

type basicAuth struct {
	email    string
	password string
}

// doRequest performs an HTTP request with common handling
func (c *Client) doRequest(ctx context.Context, method, path string, form url.Values, auth *basicAuth) (*http.Response, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if auth != nil {
		req.SetBasicAuth(auth.email, auth.password)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.WithFields(map[string]interface{}{
			"method": method,
			"path":   path,
		}).Warn("request failed before a response was received")
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	logger.HTTP(method, path, resp.StatusCode, int(time.Since(start).Milliseconds()))

	return resp, nil
}

// decodeResponse decodes a JSON body into target after normalizing its keys
func decodeResponse(op string, resp *http.Response, target interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Op: op, StatusCode: resp.StatusCode}
	}

	var raw interface{}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", op, err)
	}

	normalized, err := json.Marshal(NormalizeKeys(raw))
	if err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", op, err)
	}
	if err := json.Unmarshal(normalized, target); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", op, err)
	}
	return nil
}

// Account endpoints

// CreateAccount registers a new account with a form-encoded email and password
func (c *Client) CreateAccount(ctx context.Context, email, password string) (*models.User, error) {
	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)

	resp, err := c.doRequest(ctx, http.MethodPost, "/sign-up", form, nil)
	if err != nil {
		return nil, err
	}

	var result models.UserResponse
	if err := decodeResponse("create account", resp, &result); err != nil {
		return nil, err
	}
	return &result.User, nil
}

// Authenticate logs in with basic auth; the user carries its API keys
func (c *Client) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/login", nil, &basicAuth{email, password})
	if err != nil {
		return nil, err
	}

	var result models.UserResponse
	if err := decodeResponse("authenticate", resp, &result); err != nil {
		return nil, err
	}
	return &result.User, nil
}

// Key endpoints

// CreateKey mints a new API key and returns its plaintext token
func (c *Client) CreateKey(ctx context.Context, email, password string) (string, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api-keys", nil, &basicAuth{email, password})
	if err != nil {
		return "", err
	}

	var issued models.IssuedKey
	if err := decodeResponse("create key", resp, &issued); err != nil {
		return "", err
	}
	if issued.Token == "" {
		return "", errors.New("create key: response did not include a token")
	}
	return issued.Token, nil
}

// DeleteAndReissueKey deletes keyID and returns the token of its replacement
func (c *Client) DeleteAndReissueKey(ctx context.Context, keyID, email, password string) (string, error) {
	if keyID == "" {
		return "", errors.New("delete key: empty key id")
	}

	path := "/api-keys/" + url.PathEscape(keyID)
	resp, err := c.doRequest(ctx, http.MethodDelete, path, nil, &basicAuth{email, password})
	if err != nil {
		return "", err
	}

	var issued models.IssuedKey
	if err := decodeResponse("rotate key", resp, &issued); err != nil {
		return "", err
	}
	if issued.Token == "" {
		return "", errors.New("rotate key: response did not include a token")
	}
	return issued.Token, nil
}
