package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/voidvault/voidvault-cli/internal/logging"
)

// RequestTimeout bounds every backend call. On expiry the in-flight request
// is aborted and the caller sees ErrTimeout instead of a generic transport
// error.
const RequestTimeout = 15 * time.Second

// CSRFCookieName is the httpOnly cookie the backend sets; its value is
// echoed back in CSRFHeaderName on every mutating request.
const (
	CSRFCookieName  = "vv_csrf"
	CSRFHeaderName  = "X-CSRF-Token"
	adminHeaderName = "X-Admin-Secret"
)

// TokenSource supplies the persisted bearer token used as a fallback
// authentication channel alongside the cookie session. An empty string means
// no token is attached.
type TokenSource interface {
	Token() string
}

// Client is the single chokepoint for all calls to the VoidVault backend.
// It owns a cookie jar so the backend's session and CSRF cookies round-trip
// the way browser credentials would.
type Client struct {
	baseURL     string
	http        *http.Client
	tokens      TokenSource
	adminSecret string
	log         logging.Logger
}

type noToken struct{}

func (noToken) Token() string { return "" }

// New constructs a Client for the given base URL. Trailing slashes are
// trimmed so paths can be joined naively. tokens may be nil when the caller
// has no persisted session.
func New(baseURL string, tokens TokenSource, log logging.Logger) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errors.New("api: base url is missing")
	}
	if _, err := url.Parse(trimmed); err != nil {
		return nil, fmt.Errorf("api: invalid base url: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("api: cookie jar: %w", err)
	}

	if tokens == nil {
		tokens = noToken{}
	}

	return &Client{
		baseURL: trimmed,
		http:    &http.Client{Jar: jar},
		tokens:  tokens,
		log:     log,
	}, nil
}

// SetAdminSecret arms every subsequent admin call with the given console
// secret. An empty value disarms it.
func (c *Client) SetAdminSecret(secret string) {
	c.adminSecret = secret
}

func (c *Client) buildURL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// csrfToken returns the current CSRF cookie value, or "" when the backend
// has not set one yet. The header is attached only when a value exists.
func (c *Client) csrfToken() string {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return ""
	}
	for _, cookie := range c.http.Jar.Cookies(u) {
		if cookie.Name == CSRFCookieName {
			return cookie.Value
		}
	}
	return ""
}

// do performs one JSON round-trip. body is marshalled only when non-nil;
// out is filled only when non-nil and the response carries a body.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path), reqBody)
	if err != nil {
		return fmt.Errorf("api: build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if isMutating(method) {
		if csrf := c.csrfToken(); csrf != "" {
			req.Header.Set(CSRFHeaderName, csrf)
		}
	}
	if c.adminSecret != "" && strings.HasPrefix(path, "/admin") {
		req.Header.Set(adminHeaderName, c.adminSecret)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.mapTransportError(ctx, method, path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.mapTransportError(ctx, method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, payload)
	}

	if out == nil || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("api: decode response: %w", err)
	}
	return nil
}

func (c *Client) mapTransportError(ctx context.Context, method, path string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		if c.log != nil {
			c.log.Warn(ctx, "request timed out", "method", method, "path", path)
		}
		return ErrTimeout
	}
	if c.log != nil {
		c.log.Error(ctx, "request failed", "method", method, "path", path, "error", err)
	}
	return fmt.Errorf("%w: %v", ErrNetwork, err)
}
