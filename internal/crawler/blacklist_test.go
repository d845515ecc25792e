package crawler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdmissible_ExtensionBlacklist(t *testing.T) {
	for _, ext := range []string{"css", "png", "xlsx", "xml"} {
		t.Run(ext, func(t *testing.T) {
			assert.False(t, Admissible("http://example.com/foo."+ext))
		})
	}
}

func TestAdmissible_DomainBlacklist(t *testing.T) {
	for _, dom := range []string{"google", "facebook", "bing"} {
		t.Run(dom, func(t *testing.T) {
			assert.False(t, Admissible("http://"+dom+".com/anything"))
		})
	}
}

func TestAdmissible_OrdinaryURL(t *testing.T) {
	assert.True(t, Admissible("http://example.com/index.html"))
}

func TestAdmissible_SubstringOvermatch(t *testing.T) {
	// Preserved verbatim (§9 open question 2): substring matching, not
	// structural URL parsing, over-matches paths like this one.
	assert.False(t, Admissible("http://example.com/path/foo.cssx/bar"))
}
