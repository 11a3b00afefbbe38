// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"fmt"

	"github.com/miambidi/mealplan/internal/application/conversion"
	"github.com/miambidi/mealplan/internal/application/pantry"
	"github.com/miambidi/mealplan/internal/application/recipe"
	"github.com/miambidi/mealplan/internal/application/recommendation"
	"github.com/miambidi/mealplan/internal/infrastructure/config"
	"github.com/miambidi/mealplan/internal/infrastructure/http/apiserver"
	"github.com/miambidi/mealplan/internal/infrastructure/monitoring"
	gormRepo "github.com/miambidi/mealplan/internal/infrastructure/persistence/gorm"
	"github.com/miambidi/mealplan/internal/infrastructure/persistence/memory"
	"github.com/miambidi/mealplan/internal/infrastructure/persistence/postgres"
	redisRepo "github.com/miambidi/mealplan/internal/infrastructure/persistence/redis"
	"github.com/miambidi/mealplan/internal/infrastructure/persistence/sqlite"
	"github.com/miambidi/mealplan/internal/ports/outbound"
	"github.com/miambidi/mealplan/pkg/healthcheck"
	"github.com/miambidi/mealplan/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MonitoringModule,
	DatabaseModule,
	CacheModule,
	RepositoryModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// MonitoringModule provides metrics collection
var MonitoringModule = fx.Provide(
	monitoring.NewMetricsCollector,
	func(cfg *config.Config, log *zap.Logger) *healthcheck.HealthCheck {
		return healthcheck.New(cfg.App.Version, log)
	},
)

// DatabaseModule provides the database connection for the configured driver
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		if cfg.Database.Driver == "postgres" {
			db, err := postgres.Connect(cfg, log)
			if err != nil {
				return nil, err
			}
			if cfg.Database.AutoMigrate {
				if err := db.AutoMigrate(&gormRepo.PantryItemModel{}, &gormRepo.RecipeModel{}); err != nil {
					return nil, fmt.Errorf("failed to migrate database: %w", err)
				}
			}
			return db, nil
		}

		logLevel := gormLogger.Warn
		if cfg.App.Debug {
			logLevel = gormLogger.Info
		}

		db, err := sqlite.SetupDatabase(cfg.Database.Database, logLevel)
		if err != nil {
			return nil, fmt.Errorf("failed to setup SQLite database: %w", err)
		}

		if cfg.Database.Seed {
			if err := sqlite.SeedDatabase(db); err != nil {
				log.Warn("Failed to seed database", zap.Error(err))
			}
		}

		log.Info("Connected to SQLite database",
			zap.String("path", cfg.Database.Database),
		)

		return db, nil
	},
)

// CacheModule provides the cache backend for the configured driver
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (outbound.CacheRepository, error) {
		if cfg.Cache.Backend == "redis" {
			client, err := redisRepo.NewClient(cfg, log)
			if err != nil {
				return nil, err
			}
			return redisRepo.NewCacheRepository(client, log), nil
		}

		log.Info("Using in-memory cache")
		return memory.NewCacheRepository(), nil
	},
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormRepo.NewPantryRepository,
	gormRepo.NewRecipeRepository,
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	pantry.NewPantryService,
	recipe.NewRecipeService,
	recommendation.NewRecommendationService,
	conversion.NewConversionService,
)

// HTTPModule provides the API server
var HTTPModule = fx.Provide(
	apiserver.NewAPIServer,
)

// LifecycleModule registers lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterHealthChecks,
	RegisterLifecycleHooks,
)

// RegisterHealthChecks wires dependency checks into the health endpoint
func RegisterHealthChecks(
	health *healthcheck.HealthCheck,
	db *gorm.DB,
	cache outbound.CacheRepository,
) {
	health.Register("database", healthcheck.DatabaseChecker(db))
	health.Register("cache", healthcheck.CacheChecker(cache))
}

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	server *apiserver.APIServer,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting MiamBidi meal planner",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := server.Start(); err != nil {
					log.Error("HTTP server stopped", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down MiamBidi meal planner")

			if err := server.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			sqlDB, err := db.DB()
			if err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("Failed to close database connection", zap.Error(err))
				}
			}

			_ = log.Sync()

			return nil
		},
	})
}
