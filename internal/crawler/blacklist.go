package crawler

import "strings"

// BlacklistTokens is the shared set of content tokens the crawler refuses
// to follow: it gates URL admissibility by extension (§4.3), and the
// default Fetcher reuses the same tokens to reject blacklisted
// Content-Type headers (§4.5). It is a process-wide immutable global, in
// the same spirit as the teacher's lazily-initialized HTTP client.
var BlacklistTokens = []string{
	"css", "js", "png", "jpg", "jpeg", "gif", "tiff", "ico", "svg",
	"json", "woff2", "csv", "xls", "xlsx", "xml",
}

// domainBlacklist is matched as a substring "{domain}." of the URL.
var domainBlacklist = []string{
	"google", "google-analytics", "googleapis", "yahoo", "bing", "facebook", "twitter",
}

// Admissible reports whether a URL string passes the extension and domain
// blacklists. It is a pure function of the string and the static
// blacklists: substring matching, not structural URL parsing, exactly as
// specified (over-matches things like "/path/foo.cssx/bar" — preserved
// verbatim, see DESIGN.md).
func Admissible(rawURL string) bool {
	for _, ext := range BlacklistTokens {
		if strings.Contains(rawURL, "."+ext) {
			return false
		}
	}
	for _, dom := range domainBlacklist {
		if strings.Contains(rawURL, dom+".") {
			return false
		}
	}
	return true
}
