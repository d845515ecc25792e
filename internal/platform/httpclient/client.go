// Package httpclient implements the default Fetcher named as a boundary
// interface in spec §4.5/§6: an HTTP GET, status and Content-Type
// validation, and a blacklisted-content-type rejection, sharing one
// process-wide HTTP/2-capable client across every Client instance.
package httpclient

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/http2"

	"github.com/harborcrawl/crawler/internal/crawler"
)

const (
	// DefaultTimeout is the default per-request timeout.
	DefaultTimeout = 10 * time.Second
	// DefaultMaxBodySize caps how much of a response body is read.
	DefaultMaxBodySize = 8 * 1024 * 1024
	// DefaultUserAgent is the default User-Agent header.
	DefaultUserAgent = "harborcrawl/1.0"
)

var (
	sharedOnce   sync.Once
	sharedClient *http.Client
)

// shared returns the process-wide HTTP client, configured for HTTP/2 over
// its own zero-value http.Transport (not http.DefaultTransport) and
// initialized lazily on first use (§4.5/§9: "a
// process-wide singleton ... shared by all Fetchers of this type").
func shared() *http.Client {
	sharedOnce.Do(func() {
		transport := &http.Transport{}
		// Best-effort: if ALPN/h2 setup fails, the transport still works
		// over HTTP/1.1.
		_ = http2.ConfigureTransport(transport)
		sharedClient = &http.Client{Transport: transport}
	})
	return sharedClient
}

// Config configures a Client.
type Config struct {
	// Timeout is the per-request timeout (default: DefaultTimeout).
	Timeout time.Duration
	// UserAgent is the User-Agent header to send (default: DefaultUserAgent).
	UserAgent string
	// MaxBodySize caps the number of response bytes read (default: DefaultMaxBodySize).
	MaxBodySize int64
}

// Client is the default crawler.Fetcher: an HTTP GET against the shared
// process-wide client, rejecting non-2xx statuses, missing Content-Type
// headers, and blacklisted content types (§4.5).
type Client struct {
	userAgent   string
	timeout     time.Duration
	maxBodySize int64
	blacklist   []string
}

// New creates a Client from cfg.
func New(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.MaxBodySize == 0 {
		cfg.MaxBodySize = DefaultMaxBodySize
	}

	return &Client{
		userAgent:   cfg.UserAgent,
		timeout:     cfg.Timeout,
		maxBodySize: cfg.MaxBodySize,
		blacklist:   crawler.BlacklistTokens,
	}
}

// Fetch implements crawler.Fetcher.
func (c *Client) Fetch(url string) (string, []byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", nil, fmt.Errorf("%w: building request: %v", crawler.ErrFetch, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	client := *shared()
	client.Timeout = c.timeout

	resp, err := client.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", crawler.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", nil, &crawler.HTTPError{StatusCode: resp.StatusCode, URL: url}
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		return "", nil, fmt.Errorf("%w: missing Content-Type header", crawler.ErrContentType)
	}

	lower := strings.ToLower(contentType)
	for _, token := range c.blacklist {
		if strings.Contains(lower, token) {
			return "", nil, fmt.Errorf("%w: blacklisted content type %q", crawler.ErrContentType, contentType)
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize))
	if err != nil {
		return "", nil, fmt.Errorf("%w: reading body: %v", crawler.ErrFetch, err)
	}

	return contentType, body, nil
}
