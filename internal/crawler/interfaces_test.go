package crawler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPError_Error(t *testing.T) {
	err := &HTTPError{StatusCode: 404, URL: "https://example.com/test"}
	assert.Equal(t, "unexpected status 404 fetching https://example.com/test", err.Error())
}

func TestHTTPError_Category(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		want       string
	}{
		{"404 is a client error", 404, "client error"},
		{"403 is a client error", 403, "client error"},
		{"500 is a server error", 500, "server error"},
		{"503 is a server error", 503, "server error"},
		{"200 is unexpected here", 200, "unexpected status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &HTTPError{StatusCode: tt.statusCode, URL: "https://example.com/test"}
			assert.Equal(t, tt.want, err.Category())
		})
	}
}
