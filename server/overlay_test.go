package server

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInjectOverlayBeforeClosingBody(t *testing.T) {
	doc := "<html><body><p>content</p></body></html>"

	out := injectOverlay(doc, "/p", "make it blue")

	assert.True(t, strings.HasPrefix(out, "<html><body><p>content</p>"))
	assert.True(t, strings.HasSuffix(out, "</body></html>"))
	assert.Contains(t, out, "build-overlay")
	assert.Contains(t, out, "make it blue")
}

func TestInjectOverlayCaseInsensitiveBodyTag(t *testing.T) {
	doc := "<HTML><BODY>x</BODY></HTML>"

	out := injectOverlay(doc, "/p", "")

	idx := strings.Index(out, "build-overlay")
	end := strings.Index(out, "</BODY>")
	assert.Greater(t, idx, 0)
	assert.Less(t, idx, end)
}

func TestInjectOverlayAppendsWhenNoBodyTag(t *testing.T) {
	doc := "<p>fragment only</p>"

	out := injectOverlay(doc, "/p", "")

	assert.True(t, strings.HasPrefix(out, doc))
	assert.Contains(t, out, "build-overlay")
}

func TestInjectOverlayEscapesPathAndPrompt(t *testing.T) {
	out := injectOverlay("<body></body>", `/a"b`, "<b>bold</b> & more")

	assert.Contains(t, out, "/a&#34;b", "displayed path is HTML-escaped")
	assert.Contains(t, out, `/a\"b`, "path in the generate call is JS-escaped")
	assert.Contains(t, out, "&lt;b&gt;bold&lt;/b&gt; &amp; more")
}

func TestJSEscape(t *testing.T) {
	assert.Equal(t, `a\"b\\c\nd`, jsEscape("a\"b\\c\nd"))
}
