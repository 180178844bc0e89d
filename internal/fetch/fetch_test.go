package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>results</body></html>"))
	}))
	defer server.Close()

	result, err := Page(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "results")
}

func TestPage_SendsUserAgentAndHeaders(t *testing.T) {
	var gotUA, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAuth = r.Header.Get("Authorization")
	}))
	defer server.Close()

	opts := DefaultOptions()
	opts.Headers = map[string]string{"Authorization": "Bearer key"}

	_, err := Page(context.Background(), server.URL, opts)
	require.NoError(t, err)
	assert.Equal(t, DefaultUserAgent, gotUA)
	assert.Equal(t, "Bearer key", gotAuth)
}

func TestPage_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	result, err := Page(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	// The body is still returned alongside the error.
	require.NotNil(t, result)
	assert.Equal(t, http.StatusTooManyRequests, result.StatusCode)
}

func TestPage_InvalidURL(t *testing.T) {
	tests := []string{
		"",
		"not-a-url",
		"://missing-scheme",
	}

	for _, url := range tests {
		t.Run(url, func(t *testing.T) {
			_, err := Page(context.Background(), url, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid URL")
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	fetchErr := &Error{URL: "https://example.com", Message: "boom", Cause: assert.AnError}
	assert.ErrorIs(t, fetchErr, assert.AnError)
	assert.Contains(t, fetchErr.Error(), "https://example.com")
}
