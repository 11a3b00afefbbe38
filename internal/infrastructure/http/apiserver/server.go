// Package apiserver provides the JSON API HTTP server
package apiserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/miambidi/mealplan/internal/infrastructure/config"
	"github.com/miambidi/mealplan/internal/infrastructure/http/handlers"
	"github.com/miambidi/mealplan/internal/infrastructure/http/middleware"
	"github.com/miambidi/mealplan/internal/infrastructure/monitoring"
	"github.com/miambidi/mealplan/internal/ports/inbound"
	"github.com/miambidi/mealplan/pkg/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// APIServer serves the meal-planning JSON API
type APIServer struct {
	config                *config.Config
	logger                *zap.Logger
	server                *http.Server
	router                *chi.Mux
	health                *healthcheck.HealthCheck
	metrics               *monitoring.MetricsCollector
	pantryService         inbound.PantryService
	recipeService         inbound.RecipeService
	recommendationService inbound.RecommendationService
	conversionService     inbound.ConversionService
}

// NewAPIServer creates a new API server instance
func NewAPIServer(
	cfg *config.Config,
	log *zap.Logger,
	health *healthcheck.HealthCheck,
	metrics *monitoring.MetricsCollector,
	pantryService inbound.PantryService,
	recipeService inbound.RecipeService,
	recommendationService inbound.RecommendationService,
	conversionService inbound.ConversionService,
) *APIServer {
	server := &APIServer{
		config:                cfg,
		logger:                log,
		health:                health,
		metrics:               metrics,
		pantryService:         pantryService,
		recipeService:         recipeService,
		recommendationService: recommendationService,
		conversionService:     conversionService,
	}

	server.router = server.setupRoutes()
	server.server = &http.Server{
		Addr:           fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:        server.router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	return server
}

// setupRoutes configures the JSON API routes
func (s *APIServer) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	if s.config.Server.EnableCORS {
		r.Use(middleware.CORS(s.config.Server.AllowedOrigins))
	}
	if s.config.RateLimit.Enable {
		r.Use(middleware.RateLimit(s.config.RateLimit.RequestsPerMin, s.config.RateLimit.BurstSize))
	}
	if s.config.Monitoring.EnableMetrics {
		r.Use(middleware.Metrics(s.metrics))
	}

	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(chimiddleware.Compress(5))

	// Operational endpoints stay outside the JSON-only group
	r.Get(s.config.Monitoring.HealthCheckPath, s.health.Handler())
	r.Get(s.config.Monitoring.ReadinessPath, s.health.ReadinessHandler())
	r.Get("/live", s.health.LivenessHandler())
	if s.config.Monitoring.EnableMetrics {
		r.Handle(s.config.Monitoring.MetricsPath, promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{}))
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.JSONOnly())
		s.setupAPIV1Routes(r)
	})

	return r
}

// setupAPIV1Routes configures API v1 endpoints
func (s *APIServer) setupAPIV1Routes(r chi.Router) {
	pantryH := handlers.NewPantryHandlers(s.pantryService, s.logger)
	recipeH := handlers.NewRecipeHandlers(s.recipeService, s.logger)
	recoH := handlers.NewRecommendationHandlers(s.recommendationService, s.logger)
	convH := handlers.NewConversionHandlers(s.conversionService, s.logger)

	// Pantry routes
	r.Route("/pantry", func(r chi.Router) {
		r.Get("/", pantryH.ListItems)
		r.Post("/", pantryH.AddItem)
		r.Get("/{id}", pantryH.GetItem)
		r.Put("/{id}", pantryH.UpdateItem)
		r.Delete("/{id}", pantryH.RemoveItem)
	})

	// Recipe routes
	r.Route("/recipes", func(r chi.Router) {
		r.Get("/", recipeH.ListRecipes)
		r.Get("/search", recipeH.SearchRecipes)
		r.Post("/", recipeH.CreateRecipe)
		r.Get("/{id}", recipeH.GetRecipe)
		r.Put("/{id}", recipeH.UpdateRecipe)
		r.Delete("/{id}", recipeH.DeleteRecipe)
		r.Post("/{id}/rating", recipeH.RateRecipe)
	})

	// Recommendation routes
	r.Get("/recommendations", recoH.GetRecommendations)

	// Conversion routes
	r.Post("/conversions", convH.Convert)
	r.Get("/ingredients/{name}/equivalences", convH.ListEquivalences)
}

// Start starts the API HTTP server
func (s *APIServer) Start() error {
	s.logger.Info("Starting JSON API server",
		zap.String("address", s.server.Addr),
	)

	return s.server.ListenAndServe()
}

// Server returns the underlying HTTP server instance
func (s *APIServer) Server() *http.Server {
	return s.server
}

// Router returns the configured router, used by tests
func (s *APIServer) Router() http.Handler {
	return s.router
}

// Shutdown gracefully shuts down the API server
func (s *APIServer) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")
	return s.server.Shutdown(ctx)
}
