package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client implements Directory against a GoTrue-compatible admin API
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		cl.httpClient.Timeout = d
	}
}

// NewClient creates a client for the identity service at baseURL, e.g.
// https://project.example.co. Requests go to baseURL + "/auth/v1".
func NewClient(baseURL, serviceKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/") + "/auth/v1",
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type listUsersResponse struct {
	Users []User `json:"users"`
}

// errorBody covers the error shapes GoTrue has used over time
type errorBody struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (b errorBody) text() string {
	for _, s := range []string{b.Msg, b.Message, b.ErrorDescription, b.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

// CreateUser implements Directory.CreateUser
func (c *Client) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	var u User
	if err := c.do(ctx, http.MethodPost, "/admin/users", c.serviceKey, params, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

// UpdateUserPassword implements Directory.UpdateUserPassword
func (c *Client) UpdateUserPassword(ctx context.Context, userID uuid.UUID, password string) (User, error) {
	var u User
	body := map[string]string{"password": password}
	if err := c.do(ctx, http.MethodPut, "/admin/users/"+userID.String(), c.serviceKey, body, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

// GetUserByToken implements Directory.GetUserByToken. The token is the
// caller's own access token, not the service credential.
func (c *Client) GetUserByToken(ctx context.Context, token string) (User, error) {
	if token == "" {
		return User{}, ErrInvalidToken
	}

	var u User
	err := c.do(ctx, http.MethodGet, "/user", token, nil, &u)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && (apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden) {
			return User{}, fmt.Errorf("%w: %s", ErrInvalidToken, apiErr.Message)
		}
		return User{}, err
	}
	if u.ID == uuid.Nil {
		return User{}, ErrInvalidToken
	}
	return u, nil
}

// ListUsers implements UserLister.ListUsers
func (c *Client) ListUsers(ctx context.Context, page, perPage int) ([]User, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))

	var resp listUsersResponse
	if err := c.do(ctx, http.MethodGet, "/admin/users?"+q.Encode(), c.serviceKey, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

func (c *Client) do(ctx context.Context, method, path, bearer string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("identity service request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read identity service response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var eb errorBody
		_ = json.Unmarshal(data, &eb)
		msg := eb.text()
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		slog.Debug("Identity service returned error", "method", method, "status", resp.StatusCode, "msg", msg)
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode identity service response: %w", err)
	}
	return nil
}
