// Package htmlparser implements the link-scanning half of §4.4: a
// process-wide, lazily-compiled regex scanner over raw page bytes, rather
// than a DOM walk. A real HTML parser (the teacher's original
// golang.org/x/net/html tree walk) normalizes single-quoted, double-quoted,
// and unquoted attribute values identically and so cannot reproduce the
// required quirk: only the double-quoted capture is ever read as a
// candidate link. That quirk is preserved verbatim (§9 open question 1),
// so extraction here is a direct regex scan instead.
package htmlparser

import (
	"net/url"
	"regexp"
	"strings"
	"sync"
)

// hrefPattern recognizes all three href quoting forms so the scanner does
// not get confused by single-quoted or unquoted attributes sitting next to
// a double-quoted one, but only the double-quoted form has a capturing
// group. Single-quoted and unquoted matches are consumed by the scanner
// and silently discarded, exactly as specified. It is compiled once, on
// first use.
var hrefPattern = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`(?is)\s*href\s*=\s*(?:"([^"]*)"|'[^']*'|[^'">\s]+)`)
})

// ExtractLinks scans content for href attributes and resolves each
// double-quoted candidate against base per RFC 3986. Candidates that are
// not syntactically valid, or that fail to resolve to an absolute URL,
// are dropped. content is treated as UTF-8, lossily substituting invalid
// byte sequences, per §4.4.
func ExtractLinks(content []byte, base *url.URL) []string {
	text := strings.ToValidUTF8(string(content), "�")

	// FindAllSubmatch (byte form) reports an unmatched group as a nil
	// slice, which is how we tell "double-quoted branch matched an
	// empty string" apart from "a different branch matched" — the
	// string-returning API cannot make that distinction.
	matches := hrefPattern().FindAllSubmatch([]byte(text), -1)

	var links []string
	for _, m := range matches {
		if m[1] == nil {
			// Single-quoted or unquoted form: recognized, not extracted.
			continue
		}

		ref, err := url.Parse(string(m[1]))
		if err != nil {
			continue
		}

		abs := base.ResolveReference(ref)
		if !abs.IsAbs() || abs.Host == "" {
			continue
		}

		links = append(links, abs.String())
	}

	return links
}
