package httpclient

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborcrawl/crawler/internal/crawler"
)

func TestNew_Defaults(t *testing.T) {
	c := New(Config{})
	assert.Equal(t, DefaultUserAgent, c.userAgent)
	assert.EqualValues(t, DefaultMaxBodySize, c.maxBodySize)
	assert.Equal(t, DefaultTimeout, c.timeout)
}

func TestNew_CustomConfig(t *testing.T) {
	c := New(Config{
		Timeout:     5 * time.Second,
		UserAgent:   "CustomBot/1.0",
		MaxBodySize: 1024,
	})
	assert.Equal(t, "CustomBot/1.0", c.userAgent)
	assert.EqualValues(t, 1024, c.maxBodySize)
	assert.Equal(t, 5*time.Second, c.timeout)
}

func TestFetch_Success(t *testing.T) {
	var receivedUA string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprint(w, "test content")
	}))
	defer server.Close()

	c := New(Config{})
	contentType, body, err := c.Fetch(server.URL)
	require.NoError(t, err)

	assert.Equal(t, "test content", string(body))
	assert.Equal(t, "text/plain", contentType)
	assert.Equal(t, DefaultUserAgent, receivedUA)
}

func TestFetch_CustomUserAgent(t *testing.T) {
	var receivedUA string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
	}))
	defer server.Close()

	c := New(Config{UserAgent: "CustomBot/2.0"})
	_, _, err := c.Fetch(server.URL)
	require.NoError(t, err)
	assert.Equal(t, "CustomBot/2.0", receivedUA)
}

func TestFetch_Non2xxStatusReturnsHTTPError(t *testing.T) {
	for _, status := range []int{301, 403, 404, 500, 503} {
		t.Run(fmt.Sprint(status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))
			defer server.Close()

			c := New(Config{})
			_, _, err := c.Fetch(server.URL)
			require.Error(t, err)

			var httpErr *crawler.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, status, httpErr.StatusCode)
		})
	}
}

func TestFetch_MissingContentTypeIsRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "")
		fmt.Fprint(w, "body")
	}))
	defer server.Close()

	c := New(Config{})
	_, _, err := c.Fetch(server.URL)
	assert.ErrorIs(t, err, crawler.ErrContentType)
}

func TestFetch_BlacklistedContentTypeIsRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
	}))
	defer server.Close()

	c := New(Config{})
	_, _, err := c.Fetch(server.URL)
	assert.ErrorIs(t, err, crawler.ErrContentType)
}

func TestFetch_BodySizeLimit(t *testing.T) {
	largeBody := strings.Repeat("a", 2000)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprint(w, largeBody)
	}))
	defer server.Close()

	c := New(Config{MaxBodySize: 1000})
	_, body, err := c.Fetch(server.URL)
	require.NoError(t, err)
	assert.Len(t, body, 1000)
}

func TestFetch_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Header().Set("Content-Type", "text/plain")
	}))
	defer server.Close()

	c := New(Config{Timeout: 50 * time.Millisecond})
	_, _, err := c.Fetch(server.URL)
	assert.Error(t, err)
}

func TestFetch_InvalidURL(t *testing.T) {
	c := New(Config{})
	_, _, err := c.Fetch("://invalid-url")
	assert.Error(t, err)
}

func TestFetch_2xxStatusCodes(t *testing.T) {
	for _, status := range []int{200, 201, 204} {
		t.Run(fmt.Sprint(status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/plain")
				w.WriteHeader(status)
				fmt.Fprint(w, "success")
			}))
			defer server.Close()

			c := New(Config{})
			_, _, err := c.Fetch(server.URL)
			assert.NoError(t, err)
		})
	}
}

func TestFetch_EmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
	}))
	defer server.Close()

	c := New(Config{})
	_, body, err := c.Fetch(server.URL)
	require.NoError(t, err)
	assert.Len(t, body, 0)
}
