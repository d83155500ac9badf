package builder

import (
	"path"
	"strings"
)

// Control routes that can never be page keys.
var reservedPrefixes = []string{"/api", "/static", "/metrics", "/healthz"}

// NormalizePath canonicalizes a page path: leading slash, dot segments
// and duplicate slashes collapsed, no trailing slash except the root.
func NormalizePath(raw string) string {
	return path.Clean("/" + strings.TrimSpace(raw))
}

// Reserved reports whether a normalized path collides with a control route.
func Reserved(p string) bool {
	for _, r := range reservedPrefixes {
		if p == r || strings.HasPrefix(p, r+"/") {
			return true
		}
	}
	return false
}
