package server

import (
	"embed"
	"errors"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"fromblank/builder"
	"fromblank/store"
)

//go:embed static
var staticFiles embed.FS

// Server routes page views and generate requests. It owns path
// normalization, so the store and the coordinator only ever see
// canonical keys.
type Server struct {
	store       store.Store
	coordinator *builder.Coordinator
	metrics     *Metrics
	log         zerolog.Logger
	degradeMiss bool
	shell       []byte
	staticFS    http.Handler
}

// New wires the server. A nil metrics recorder gets a private registry.
// degradeMiss controls whether store read failures fall back to the
// blank shell instead of a 500.
func New(st store.Store, co *builder.Coordinator, metrics *Metrics, degradeMiss bool, log zerolog.Logger) (*Server, error) {
	if st == nil {
		return nil, errors.New("page store required")
	}
	if co == nil {
		return nil, errors.New("build coordinator required")
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	shell, err := staticFiles.ReadFile("static/shell.html")
	if err != nil {
		return nil, err
	}
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, err
	}
	return &Server{
		store:       st,
		coordinator: co,
		metrics:     metrics,
		log:         log,
		degradeMiss: degradeMiss,
		shell:       shell,
		staticFS:    http.FileServer(http.FS(sub)),
	}, nil
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(securityHeaders)
	r.Use(s.requestLogger)

	r.Handle("/static/*", http.StripPrefix("/static/", s.staticFS))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{}))
	r.Post("/api/generate", s.handleGenerate)
	r.Get("/*", s.handleView)
	return r
}
