package crawler

import (
	"github.com/harborcrawl/crawler/internal/platform/logging"
)

// runWorker executes the worker task of §4.1 for a single Job: fetch,
// build a Crawling, persist it, extract child URLs, and construct child
// Jobs. It always returns (possibly nil); a failure at any stage is local
// to this Job. A fetch failure yields no children; a persistence failure
// is logged and link extraction still proceeds. It never
// panics: every stage that can fail reports an error value instead,
// mirroring the teacher's "exactly one outcome per item, even on failure"
// invariant without needing the teacher's recover scaffolding, since
// nothing here crosses a channel or goroutine boundary on its own.
func runWorker(job Job, persister Persister) (children []Job, fetchFailed bool) {
	contentType, body, err := job.Fetcher.Fetch(job.URL)
	if err != nil {
		logFetchError(job.URL, err)
		return nil, true
	}

	crawling := NewCrawling(job.URL, contentType, body, persister)
	if _, err := crawling.Write(); err != nil {
		// Persistence failure is logged, not fatal (§4.1 step 3). It is not
		// reported to the Coordinator, so its error count does not include it.
		logging.Warn("persist failed for %s: %v", job.URL, err)
	}

	urls, ok := crawling.FindURLs()
	if !ok {
		return nil, false
	}

	for _, u := range urls {
		if child, ok := NewJob(u, job.Fetcher); ok {
			children = append(children, child)
		}
	}
	return children, false
}

func logFetchError(url string, err error) {
	if httpErr, ok := err.(*HTTPError); ok {
		logging.Warn("failed to fetch %s: %s [%s]", url, httpErr.Error(), httpErr.Category())
		return
	}
	logging.Warn("failed to fetch %s: %v", url, err)
}
