package builder

import (
	"strings"

	"github.com/google/uuid"
)

// buildSession holds the state of one in-flight generation. It lives for
// a single Generate call and is never persisted; only its final
// concatenation reaches the store.
type buildSession struct {
	id           string
	path         string
	prompt       string
	priorContent string
	chunks       []string
}

func newBuildSession(path, prompt, priorContent string) *buildSession {
	return &buildSession{
		id:           uuid.NewString(),
		path:         path,
		prompt:       prompt,
		priorContent: priorContent,
	}
}

func (s *buildSession) append(chunk string) { s.chunks = append(s.chunks, chunk) }

func (s *buildSession) document() string { return strings.Join(s.chunks, "") }

// rebuild reports whether this run revises an existing page. Stored
// pages are never empty, so prior content is a sufficient signal.
func (s *buildSession) rebuild() bool { return s.priorContent != "" }
