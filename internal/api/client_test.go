package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientHeaders(t *testing.T) {
	var got *http.Request
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(r.Context())
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", TokenFunc(func() string { return "tok-123" }))

	var out struct {
		OK bool `json:"ok"`
	}
	err := client.Post(context.Background(), "/thing", map[string]string{"name": "x"}, &out)
	require.NoError(t, err)

	assert.True(t, out.OK)
	assert.Equal(t, "/thing", got.URL.Path) // trailing slash on base URL trimmed
	assert.Equal(t, "Bearer tok-123", got.Header.Get("Authorization"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	assert.Equal(t, map[string]string{"name": "x"}, gotBody)
}

func TestClientNoToken(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	var out []int
	err := NewClient(srv.URL, nil).Get(context.Background(), "/list", &out)
	require.NoError(t, err)
	assert.Empty(t, auth)

	err = NewClient(srv.URL, TokenFunc(func() string { return "" })).Get(context.Background(), "/list", &out)
	require.NoError(t, err)
	assert.Empty(t, auth)
}

func TestClientErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantError   string
	}{
		{
			name:        "json message body",
			status:      http.StatusConflict,
			body:        `{"message": "Email already in use"}`,
			wantMessage: "Email already in use",
			wantError:   "Email already in use",
		},
		{
			name:      "non-json body falls back to status text",
			status:    http.StatusBadGateway,
			body:      "<html>oops</html>",
			wantError: "Bad Gateway",
		},
		{
			name:      "empty body",
			status:    http.StatusUnauthorized,
			body:      "",
			wantError: "Unauthorized",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := NewClient(srv.URL, nil).Get(context.Background(), "/x", nil)
			require.Error(t, err)

			var reqErr *RequestError
			require.ErrorAs(t, err, &reqErr)
			assert.Equal(t, tt.status, reqErr.Status)
			assert.Equal(t, tt.wantMessage, reqErr.Message)
			assert.Equal(t, tt.wantError, reqErr.Error())
		})
	}
}

func TestErrorHelpers(t *testing.T) {
	notFound := &RequestError{Status: http.StatusNotFound, Message: "No training materials found for this course"}
	assert.True(t, IsNotFound(notFound))
	assert.True(t, IsStatus(notFound, http.StatusNotFound))
	assert.False(t, IsStatus(notFound, http.StatusUnauthorized))

	assert.False(t, IsNotFound(context.Canceled))
	assert.False(t, IsStatus(context.Canceled, http.StatusNotFound))

	assert.Equal(t, "No training materials found for this course", ErrorMessage(notFound, "fallback"))
	assert.Equal(t, "fallback", ErrorMessage(&RequestError{Status: 500}, "fallback"))
	assert.Equal(t, "fallback", ErrorMessage(context.Canceled, "fallback"))
}

func TestClientDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	var out map[string]any
	err := NewClient(srv.URL, nil).Get(context.Background(), "/x", &out)
	assert.ErrorContains(t, err, "decode response body")

	// nil out ignores the body entirely.
	err = NewClient(srv.URL, nil).Get(context.Background(), "/x", nil)
	assert.NoError(t, err)
}
