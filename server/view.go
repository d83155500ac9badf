package server

import (
	"io"
	"net/http"

	"fromblank/builder"
	"fromblank/store"
)

// RenderKind enumerates the router's decision for a view request.
type RenderKind int

const (
	// RenderPage serves the stored document verbatim.
	RenderPage RenderKind = iota
	// RenderBlankShell serves the shell with the prompt input.
	RenderBlankShell
	// RenderOverlay layers the rebuild affordance over the page; with no
	// stored page the blank shell already is the build interface.
	RenderOverlay
)

// RenderDecision is the outcome of routing a view request.
type RenderDecision struct {
	Kind RenderKind
	Page *store.Page // set for RenderPage, and for RenderOverlay when the page exists
}

// Decide maps the stored state and the build intent onto a render mode.
func Decide(page *store.Page, buildIntent bool) RenderDecision {
	switch {
	case buildIntent:
		return RenderDecision{Kind: RenderOverlay, Page: page}
	case page != nil:
		return RenderDecision{Kind: RenderPage, Page: page}
	default:
		return RenderDecision{Kind: RenderBlankShell}
	}
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	pagePath := builder.NormalizePath(r.URL.Path)

	if blockedPath(pagePath) {
		s.metrics.PageViews.WithLabelValues("blocked").Inc()
		http.NotFound(w, r)
		return
	}

	page, err := s.store.Get(r.Context(), pagePath)
	if err != nil {
		if !s.degradeMiss {
			s.log.Error().Err(err).Str("path", pagePath).Msg("store read failed")
			http.Error(w, "storage unavailable", http.StatusInternalServerError)
			return
		}
		s.log.Warn().Err(err).Str("path", pagePath).Msg("store read failed, serving shell")
		page = nil
	}

	// Probes for config/backup file extensions 404 unless a page
	// actually exists at that path.
	if page == nil && blockedExtension(pagePath) {
		s.metrics.PageViews.WithLabelValues("blocked").Inc()
		http.NotFound(w, r)
		return
	}

	_, buildIntent := r.URL.Query()["build"]
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	switch d := Decide(page, buildIntent); d.Kind {
	case RenderPage:
		s.metrics.PageViews.WithLabelValues("page").Inc()
		_, _ = io.WriteString(w, d.Page.Content)
	case RenderOverlay:
		s.metrics.PageViews.WithLabelValues("overlay").Inc()
		if d.Page == nil {
			_, _ = w.Write(s.shell)
			return
		}
		_, _ = io.WriteString(w, injectOverlay(d.Page.Content, d.Page.Path, d.Page.LastPrompt()))
	default:
		s.metrics.PageViews.WithLabelValues("shell").Inc()
		_, _ = w.Write(s.shell)
	}
}
