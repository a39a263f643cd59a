package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, handler http.Handler, tokens TokenSource) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, tokens, nil)
	require.NoError(t, err)
	return c, srv
}

func TestNew_RejectsEmptyBaseURL(t *testing.T) {
	_, err := New("   ", nil, nil)
	require.Error(t, err)
}

func TestNew_TrimsTrailingSlashes(t *testing.T) {
	c, err := New("http://example.test///", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "http://example.test/me", c.buildURL("me"))
	assert.Equal(t, "http://example.test/me", c.buildURL("/me"))
}

func TestDo_HeadersForGetWithoutBody(t *testing.T) {
	var got http.Header
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{}`))
	}), nil)

	require.NoError(t, c.do(context.Background(), http.MethodGet, "/me", nil, nil))
	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Empty(t, got.Get("Content-Type"), "no body means no content type")
	assert.Empty(t, got.Get("Authorization"), "no token source means no bearer header")
	assert.Empty(t, got.Get(CSRFHeaderName), "GET never carries the CSRF header")
}

func TestDo_BearerTokenAttachedWhenPresent(t *testing.T) {
	var got string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}), staticToken("tok-123"))

	require.NoError(t, c.do(context.Background(), http.MethodGet, "/me", nil, nil))
	assert.Equal(t, "Bearer tok-123", got)
}

func TestDo_CSRFHeaderOnlyWhenCookieExists(t *testing.T) {
	var seen []string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get(CSRFHeaderName))
		if r.URL.Path == "/login" {
			http.SetCookie(w, &http.Cookie{Name: CSRFCookieName, Value: "csrf-abc"})
		}
		w.Write([]byte(`{}`))
	}), nil)

	ctx := context.Background()

	// Before the backend set the cookie the header must be absent, not empty.
	require.NoError(t, c.do(ctx, http.MethodPost, "/login", map[string]string{"username": "x"}, nil))
	require.NoError(t, c.do(ctx, http.MethodPost, "/post", map[string]string{"content": "hi"}, nil))

	require.Len(t, seen, 2)
	assert.Empty(t, seen[0])
	assert.Equal(t, "csrf-abc", seen[1])
}

func TestDo_ContentTypeOnlyWithBody(t *testing.T) {
	var got http.Header
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{}`))
	}), nil)

	require.NoError(t, c.do(context.Background(), http.MethodPost, "/logout", nil, nil))
	assert.Empty(t, got.Get("Content-Type"))

	require.NoError(t, c.do(context.Background(), http.MethodPost, "/post", map[string]string{"a": "b"}, nil))
	assert.Equal(t, "application/json", got.Get("Content-Type"))
}

func TestDo_ServerErrorMessageSurfacedVerbatim(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"username already taken"}`))
	}), nil)

	err := c.do(context.Background(), http.MethodPost, "/register", map[string]string{}, nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "username already taken", apiErr.Message)
}

func TestDo_GenericMessageWhenBodyUnparseable(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>upstream sad</html>"))
	}), nil)

	err := c.do(context.Background(), http.MethodGet, "/feed", nil, nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "request failed (502)", apiErr.Message)
}

func TestDo_EmptyBodySuccessLeavesOutUntouched(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}), nil)

	out := map[string]string{"keep": "me"}
	require.NoError(t, c.do(context.Background(), http.MethodGet, "/me", nil, &out))
	assert.Equal(t, "me", out["keep"])
}

func TestDo_TimeoutMapsToErrTimeout(t *testing.T) {
	blocked := make(chan struct{})
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}), nil)
	defer close(blocked)

	// A parent deadline shorter than RequestTimeout triggers the same abort
	// path without waiting the full 15s.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := c.do(ctx, http.MethodGet, "/feed", nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTimeout), "got %v", err)
}

func TestDo_AdminSecretOnlyOnAdminPaths(t *testing.T) {
	headers := map[string]string{}
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers[r.URL.Path] = r.Header.Get("X-Admin-Secret")
		w.Write([]byte(`{}`))
	}), nil)

	c.SetAdminSecret("hunter2")
	ctx := context.Background()
	require.NoError(t, c.do(ctx, http.MethodGet, "/admin/overview", nil, nil))
	require.NoError(t, c.do(ctx, http.MethodGet, "/feed", nil, nil))

	assert.Equal(t, "hunter2", headers["/admin/overview"])
	assert.Empty(t, headers["/feed"])
}
