package builder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"fromblank/store"
)

// Coordinator runs one generation per call: it resolves prior content,
// streams model output to the caller while accumulating it, and commits
// the finished document to the page store exactly once. Concurrent calls
// for the same path race at the commit; the last Put wins.
type Coordinator struct {
	store       store.Store
	llm         LLMClient
	timeout     time.Duration
	degradeMiss bool
	log         zerolog.Logger
}

// Options carries the coordinator's construction-time configuration.
type Options struct {
	// Timeout bounds the whole capability call; expiry is reported as a
	// generation failure.
	Timeout time.Duration
	// DegradeGetToMiss treats store read errors as cache misses instead
	// of failing the call.
	DegradeGetToMiss bool
}

func NewCoordinator(st store.Store, llm LLMClient, opts Options, log zerolog.Logger) (*Coordinator, error) {
	if st == nil {
		return nil, errors.New("page store is required")
	}
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 2 * time.Minute
	}
	return &Coordinator{
		store:       st,
		llm:         llm,
		timeout:     opts.Timeout,
		degradeMiss: opts.DegradeGetToMiss,
		log:         log,
	}, nil
}

// sinkError marks an error raised by the caller's sink (client went
// away), so it is not misreported as a capability failure.
type sinkError struct{ cause error }

func (e *sinkError) Error() string { return e.cause.Error() }
func (e *sinkError) Unwrap() error { return e.cause }

// Generate streams the document for pagePath described by prompt to
// sink, chunk by chunk in arrival order, and commits the concatenation
// to the store only after the capability reports completion. On any
// failure nothing is committed and the prior page, if any, stays
// authoritative.
func (c *Coordinator) Generate(ctx context.Context, pagePath, prompt string, sink func(chunk string) error) error {
	if strings.TrimSpace(prompt) == "" {
		return ErrInvalidRequest
	}
	pagePath = NormalizePath(pagePath)
	if Reserved(pagePath) {
		return fmt.Errorf("%w: %s", ErrInvalidPath, pagePath)
	}

	var priorContent string
	prior, err := c.store.Get(ctx, pagePath)
	switch {
	case err != nil && !c.degradeMiss:
		return err
	case err != nil:
		c.log.Warn().Err(err).Str("path", pagePath).Msg("store read failed, treating as miss")
	case prior != nil:
		priorContent = prior.Content
	}

	sess := newBuildSession(pagePath, prompt, priorContent)
	p := CreatePrompt(prompt)
	if sess.rebuild() {
		p = RebuildPrompt(prompt, priorContent)
	}

	log := c.log.With().
		Str("build_id", sess.id).
		Str("path", pagePath).
		Bool("rebuild", sess.rebuild()).
		Logger()
	log.Info().Msg("generation started")
	start := time.Now()

	genCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err = c.llm.Stream(genCtx, p, func(delta string) error {
		sess.append(delta)
		if err := sink(delta); err != nil {
			return &sinkError{cause: err}
		}
		return nil
	})
	if err != nil {
		var se *sinkError
		if errors.As(err, &se) {
			log.Info().Err(se.cause).Int("chunks", len(sess.chunks)).Msg("client went away, discarding build")
			return se.cause
		}
		log.Error().Err(err).Int("chunks", len(sess.chunks)).Msg("generation failed")
		return fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	doc := sess.document()
	if strings.TrimSpace(doc) == "" {
		log.Error().Msg("model produced an empty document")
		return fmt.Errorf("%w: empty document", ErrGenerationFailed)
	}

	// A client that hangs up between the last chunk and the commit must
	// not void a fully observed generation.
	if err := c.store.Put(context.WithoutCancel(ctx), pagePath, doc, prompt); err != nil {
		return err
	}
	log.Info().
		Dur("took", time.Since(start)).
		Int("bytes", len(doc)).
		Int("chunks", len(sess.chunks)).
		Msg("page committed")
	return nil
}
