package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"pressroom-backend/infrastructure/di"
	"pressroom-backend/interfaces/http/rest/handlers"
	"pressroom-backend/interfaces/http/rest/middleware"
	pkgerrors "pressroom-backend/pkg/errors"
	"pressroom-backend/pkg/utils"
)

// Router creates and configures the HTTP router
type Router struct {
	container *di.Container
	logger    *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(container *di.Container) *Router {
	return &Router{
		container: container,
		logger:    container.Logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()
	c := rt.container

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	router.Use(middleware.Identity())

	if c.Config.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "https://*.pressroom.app"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID", "X-User-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	errorHandler := pkgerrors.NewErrorHandler(rt.logger, c.Config.IsDevelopment())

	templateHandler := handlers.NewTemplateHandler(
		c.CreateTemplate,
		c.AddElement,
		c.AttachImage,
		c.CommandBus,
		c.QueryBus,
		c.TemplateService,
		c.Cache,
		errorHandler,
		rt.logger,
	)

	articleHandler := handlers.NewArticleHandler(
		c.CreateArticle,
		c.TransitionArticle,
		c.CommandBus,
		c.QueryBus,
		errorHandler,
		rt.logger,
	)

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/templates", func(r chi.Router) {
			r.Post("/", templateHandler.CreateTemplate)
			r.Get("/", templateHandler.ListTemplates)
			r.Get("/{templateID}", templateHandler.GetTemplate)
			r.Delete("/{templateID}", templateHandler.DeleteTemplate)

			r.Route("/{templateID}/elements", func(r chi.Router) {
				r.Post("/", templateHandler.AddElement)
				r.Put("/{elementID}", templateHandler.UpdateElement)
				r.Delete("/{elementID}", templateHandler.RemoveElement)
				r.Post("/{elementID}/image", templateHandler.AttachImage)
			})

			r.Put("/{templateID}/canvas", templateHandler.SetCanvas)
		})

		r.Route("/articles", func(r chi.Router) {
			r.Post("/", articleHandler.CreateArticle)
			r.Get("/", articleHandler.ListArticles)
			r.Get("/{articleID}", articleHandler.GetArticle)
			r.Delete("/{articleID}", articleHandler.DeleteArticle)
			r.Get("/{articleID}/skeleton", articleHandler.GetSkeleton)
			r.Put("/{articleID}/content", articleHandler.SaveContent)
			r.Post("/{articleID}/transitions", articleHandler.Transition)
			r.Post("/{articleID}/restore", articleHandler.RestoreArticle)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","time":"` + utils.NowRFC3339() + `"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
