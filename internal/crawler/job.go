package crawler

import "net/url"

// Job is a validated crawl intent: an absolute URL that passed the
// admissibility filter, paired with the Fetcher that will retrieve it.
// Two Jobs are equal iff their URLs are equal; Fetcher is not part of
// identity.
type Job struct {
	URL     string
	Fetcher Fetcher
}

// NewJob constructs a Job for rawURL against fetcher. It returns ok=false
// (never an error) when rawURL is not a syntactically valid absolute URL
// (an http or https scheme and a host required) or fails the
// admissibility filter (§4.3).
// Construction is idempotent: two successful calls for the same rawURL
// yield equal Jobs.
func NewJob(rawURL string, fetcher Fetcher) (job Job, ok bool) {
	if !Admissible(rawURL) {
		return Job{}, false
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Job{}, false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Job{}, false
	}
	if u.Host == "" {
		return Job{}, false
	}

	return Job{URL: u.String(), Fetcher: fetcher}, true
}

// key is the Frontier's deduplication identity for a Job: its URL.
func (j Job) key() string {
	return j.URL
}
