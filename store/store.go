package store

import (
	"context"
	"time"
)

// Page is the persisted document for one normalized path.
type Page struct {
	Path          string    `json:"path"`
	Content       string    `json:"content"`
	PromptHistory []string  `json:"prompt_history"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// LastPrompt returns the most recent prompt used to build the page, or "".
func (p *Page) LastPrompt() string {
	if len(p.PromptHistory) == 0 {
		return ""
	}
	return p.PromptHistory[len(p.PromptHistory)-1]
}

// Store is the durable path-to-page mapping. Get returns nil, nil on a
// miss; errors are reserved for storage failures. Put upserts the page,
// appends prompt to its history and refreshes UpdatedAt. Writes must be
// atomic per key with respect to concurrent Gets; writes to different
// keys are independent.
type Store interface {
	Get(ctx context.Context, path string) (*Page, error)
	Put(ctx context.Context, path, content, prompt string) error
	Close() error
}
