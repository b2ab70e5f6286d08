// Package api is the client side of the eldercare REST contract.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/eldercare/internal/common"
)

type RegisterRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Profile struct {
	ID    int64   `json:"id"`
	Name  *string `json:"name"`
	Email string  `json:"email"`
	Role  string  `json:"role"`
}

type HealthStatus struct {
	OK bool `json:"ok"`
	DB int  `json:"db"`
}

// Client is the set of server calls the terminal client makes.
type Client interface {
	Register(ctx context.Context, req RegisterRequest) error
	Login(ctx context.Context, req LoginRequest) (string, error)
	Me(ctx context.Context, token string) (*Profile, error)
	Health(ctx context.Context) (*HealthStatus, error)
}

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient targets baseURL (e.g. "http://127.0.0.1:4000"). Each request
// is bounded by timeout. No retries are made.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/api/register", req, "", nil)
}

func (c *HTTPClient) Login(ctx context.Context, req LoginRequest) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/login", req, "", &out); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", &Error{Status: http.StatusOK, Message: "server returned no token"}
	}
	return out.Token, nil
}

func (c *HTTPClient) Me(ctx context.Context, token string) (*Profile, error) {
	var out struct {
		User *Profile `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/me", nil, token, &out); err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, &Error{Status: http.StatusOK, Message: "server returned no user"}
	}
	return out.User, nil
}

func (c *HTTPClient) Health(ctx context.Context) (*HealthStatus, error) {
	var out HealthStatus
	if err := c.do(ctx, http.MethodGet, "/api/healthcheck", nil, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do sends body as JSON and decodes a 2xx reply into out. A non-2xx reply is
// turned into *Error using the body's "error" field, or the status text when
// there is none.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, token string, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &Error{Message: fmt.Sprintf("encode request: %v", err)}
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerScheme+" "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Status: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &e) == nil && e.Error != "" {
			return &Error{Status: resp.StatusCode, Message: e.Error}
		}
		return &Error{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return &Error{Status: resp.StatusCode, Message: fmt.Sprintf("decode response: %v", err)}
		}
	}
	return nil
}
