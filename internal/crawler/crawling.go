package crawler

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/harborcrawl/crawler/internal/platform/htmlparser"
)

// Kind classifies a fetched resource from its declared content type.
type Kind int

const (
	KindUnknown Kind = iota
	KindHTML
	KindPDF
)

// classify derives Kind from a MIME content-type string. It is a total
// function: it never fails, and unrecognized or empty strings classify as
// KindUnknown.
func classify(contentType string) Kind {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "html"):
		return KindHTML
	case strings.Contains(ct, "pdf"):
		return KindPDF
	default:
		return KindUnknown
	}
}

// Crawling is the in-memory record of one completed fetch: the source
// URL, its bytes, and its classified Kind. It knows how to extract
// outbound links (when HTML) and how to emit itself through a Persister.
type Crawling struct {
	URL       string
	Body      []byte
	Kind      Kind
	persister Persister
}

// NewCrawling builds a Crawling from a successful fetch.
func NewCrawling(pageURL, contentType string, body []byte, persister Persister) *Crawling {
	return &Crawling{
		URL:       pageURL,
		Body:      body,
		Kind:      classify(contentType),
		persister: persister,
	}
}

// FindURLs extracts outbound links, resolved against the page URL. Only
// HTML pages are scanned; PDFs and unknown kinds always report ok=false,
// regardless of their bytes.
func (c *Crawling) FindURLs() (links []string, ok bool) {
	if c.Kind != KindHTML {
		return nil, false
	}

	base, err := url.Parse(c.URL)
	if err != nil {
		return nil, false
	}

	links = htmlparser.ExtractLinks(c.Body, base)
	if len(links) == 0 {
		return nil, false
	}

	return links, true
}

// Write computes the content identifier "{domain}-{hash}{ext}" and
// persists the bytes through the Persister. It fails with ErrUnwritable
// when the page URL carries no host, or the Kind has no storable
// extension (KindUnknown): the spec names no on-disk representation for
// unclassified content.
func (c *Crawling) Write() (int, error) {
	u, err := url.Parse(c.URL)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnwritable, err)
	}

	domain := u.Hostname()
	if domain == "" {
		return 0, ErrUnwritable
	}

	var ext string
	switch c.Kind {
	case KindHTML:
		ext = ".html"
	case KindPDF:
		ext = ".pdf"
	default:
		return 0, ErrUnwritable
	}

	contentID := fmt.Sprintf("%s-%d%s", domain, xxhash.Sum64(c.Body), ext)

	n, err := c.persister.Persist(contentID, c.Body)
	if err != nil {
		return n, fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return n, nil
}
