package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"textmark/internal/handlers"
	"textmark/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	DocumentService   service.DocumentService
	LabelService      service.LabelService
	AnnotationService service.AnnotationService
	Renderer          handlers.Renderer
	DB                handlers.Pinger
	MaxUploadBytes    int64
	DefaultListLimit  int
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Request-scoped logger, then access log
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)

	// Add CORS middleware
	r.Use(CORS)

	documents := handlers.NewDocumentHandler(deps.DocumentService, deps.MaxUploadBytes, deps.DefaultListLimit)
	chunks := handlers.NewChunkHandler(deps.DocumentService, deps.AnnotationService, deps.Renderer)
	labels := handlers.NewLabelHandler(deps.LabelService)
	annotations := handlers.NewAnnotationHandler(deps.AnnotationService)
	health := handlers.NewHealthHandler(deps.DB)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", health)

		r.Route("/v1", func(r chi.Router) {
			r.Route("/documents", func(r chi.Router) {
				r.Get("/", documents.List)
				r.Post("/", documents.Create)
				r.Post("/upload", documents.Upload)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", documents.Get)
					r.Put("/", documents.Update)
					r.Delete("/", documents.Delete)
					r.Get("/chunks", chunks.Get)
					r.Get("/chunks/view", chunks.View)
				})
			})

			r.Route("/labels", func(r chi.Router) {
				r.Get("/", labels.List)
				r.Post("/", labels.Create)
				r.Get("/{id}", labels.Get)
				r.Put("/{id}", labels.Update)
				r.Delete("/{id}", labels.Delete)
			})

			r.Route("/annotations", func(r chi.Router) {
				r.Get("/", annotations.List)
				r.Post("/", annotations.Create)
				r.Get("/{id}", annotations.Get)
				r.Patch("/{id}", annotations.Update)
				r.Delete("/{id}", annotations.Delete)
			})
		})
	})

	return r
}
