package builder

import "errors"

var (
	// ErrInvalidRequest rejects a generate call before any side effect.
	ErrInvalidRequest = errors.New("prompt must not be empty")

	// ErrInvalidPath rejects paths that collide with reserved control routes.
	ErrInvalidPath = errors.New("path collides with a reserved route")

	// ErrGenerationFailed wraps any failure of the generation capability,
	// including timeouts. The store is never touched when it is returned.
	ErrGenerationFailed = errors.New("generation failed")
)
