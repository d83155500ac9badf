package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"fromblank/builder"
)

const failureMarker = "\n<!-- fromblank: generation failed, page not saved -->\n"

type generateRequest struct {
	Path   string `json:"path"`
	Prompt string `json:"prompt"`
}

// handleGenerate streams the generated document to the client as it is
// produced. Failures before the first byte map to proper status codes;
// once partial output is on the wire the stream is terminated with a
// marker comment instead.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	flusher, _ := w.(http.Flusher)
	wrote := false
	start := time.Now()

	err := s.coordinator.Generate(r.Context(), req.Path, req.Prompt, func(chunk string) error {
		if !wrote {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Header().Set("X-Accel-Buffering", "no")
			wrote = true
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		s.metrics.StreamedBytes.Add(float64(len(chunk)))
		if flusher != nil {
			flusher.Flush()
		}
		return nil
	})
	if err != nil {
		s.metrics.Generations.WithLabelValues(generationResult(err)).Inc()
		if wrote {
			_, _ = io.WriteString(w, failureMarker)
			return
		}
		switch {
		case errors.Is(err, builder.ErrInvalidRequest), errors.Is(err, builder.ErrInvalidPath):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, builder.ErrGenerationFailed):
			http.Error(w, "generation failed", http.StatusBadGateway)
		default:
			http.Error(w, "storage unavailable", http.StatusInternalServerError)
		}
		return
	}

	s.metrics.Generations.WithLabelValues("ok").Inc()
	s.metrics.GenerationDuration.Observe(time.Since(start).Seconds())
}

func generationResult(err error) string {
	switch {
	case errors.Is(err, builder.ErrInvalidRequest), errors.Is(err, builder.ErrInvalidPath):
		return "rejected"
	case errors.Is(err, builder.ErrGenerationFailed):
		return "failed"
	default:
		return "error"
	}
}
