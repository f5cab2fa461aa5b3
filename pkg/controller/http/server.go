package http

import (
	"context"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/immersivevr/immersive/frontend"
	"github.com/immersivevr/immersive/pkg/domain/model"
	"github.com/immersivevr/immersive/pkg/utils/logging"
	"github.com/immersivevr/immersive/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

// CatalogUseCase is the read side of the catalog consumed by the HTTP API
type CatalogUseCase interface {
	ListModels(ctx context.Context) ([]*model.ModelRecord, error)
	GetModel(ctx context.Context, id int64) (*model.ModelRecord, error)
	Appearance(ctx context.Context, id int64) (model.Appearance, error)
}

type Server struct {
	router  *chi.Mux
	catalog CatalogUseCase
	metrics *Metrics
	static  fs.FS
}

type Options func(*Server)

// WithMetrics enables request metrics and the /metrics endpoint
func WithMetrics(m *Metrics) Options {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithStaticFS replaces the embedded SPA bundle
func WithStaticFS(fsys fs.FS) Options {
	return func(s *Server) {
		s.static = fsys
	}
}

func New(catalog CatalogUseCase, opts ...Options) (*Server, error) {
	if catalog == nil {
		return nil, goerr.New("catalog use case is required")
	}

	r := chi.NewRouter()

	s := &Server{
		router:  r,
		catalog: catalog,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)
	if s.metrics != nil {
		r.Use(s.metrics.Middleware)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/models", listModelsHandler(s.catalog))
		r.Get("/models/{id}", getModelHandler(s.catalog))
		r.Get("/models/{id}/appearance", appearanceHandler(s.catalog))
		r.Get("/appearance/default", defaultAppearanceHandler())
	})

	if s.metrics != nil {
		r.Handle("/metrics", s.metrics.Handler())
	}

	// Static file serving for SPA (catch-all, must be last)
	if s.static == nil {
		staticFS, err := fs.Sub(frontend.StaticFiles, "dist")
		if err != nil {
			return nil, goerr.Wrap(err, "failed to bind dist dir for static")
		}
		s.static = staticFS
	}

	r.Get("/*", spaHandler(s.static))

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// requestLogger puts a logger tagged with the request ID into the request context
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := logging.Default().With("request_id", middleware.GetReqID(r.Context()))
		next.ServeHTTP(w, r.WithContext(logging.With(r.Context(), logger)))
	})
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.From(r.Context()).Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

// spaHandler handles SPA routing by serving static files and falling back to index.html
func spaHandler(staticFS fs.FS) http.HandlerFunc {
	fileServer := http.FileServer(http.FS(staticFS))

	return func(w http.ResponseWriter, r *http.Request) {
		urlPath := strings.TrimPrefix(r.URL.Path, "/")
		if urlPath == "" {
			urlPath = "index.html"
		}

		file, err := staticFS.Open(urlPath)
		if err == nil {
			safe.Close(r.Context(), file)
			fileServer.ServeHTTP(w, r)
			return
		}

		// Unknown paths belong to the client side router
		indexFile, err := staticFS.Open("index.html")
		if err != nil {
			http.NotFound(w, r)
			return
		}
		defer safe.Close(r.Context(), indexFile)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		safe.Copy(r.Context(), w, indexFile)
	}
}
