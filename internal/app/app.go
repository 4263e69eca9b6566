package app

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"
	"time"

	"github.com/heptiolabs/healthcheck"
	redisClient "github.com/redis/go-redis/v9"

	"github.com/sm8ta/motodash/internal/adapter/handler/http"
	"github.com/sm8ta/motodash/internal/adapter/logger"
	"github.com/sm8ta/motodash/internal/adapter/memory"
	"github.com/sm8ta/motodash/internal/adapter/prometheus"
	"github.com/sm8ta/motodash/internal/adapter/redis"
	"github.com/sm8ta/motodash/internal/adapter/sqlite"
	"github.com/sm8ta/motodash/internal/config"
	"github.com/sm8ta/motodash/internal/core/domain"
	"github.com/sm8ta/motodash/internal/core/ports"
	"github.com/sm8ta/motodash/internal/core/services"
)

type App struct {
	Config       *config.Container
	Logger       *logger.LoggerAdapter
	DB           *sql.DB
	RedisClient  *redisClient.Client
	CacheAdapter ports.CachePort
	HTTPRouter   *http.Router
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app": cfg.App.Name,
		"env": cfg.App.Env,
	})

	// Connect DB
	db, err := sqlite.Open(cfg.DB.Path)
	if err != nil {
		return nil, err
	}

	// Migrate DB
	if err := sqlite.Migrate(db, cfg.DB.MigrationsDir); err != nil {
		db.Close()
		return nil, err
	}

	// Set cache
	var (
		redisConn    *redisClient.Client
		cacheAdapter ports.CachePort
	)
	if cfg.Redis.Enabled() {
		redisConn, err = redis.Connect(ctx, cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		cacheAdapter = redis.NewRedisAdapter(redisConn)
		loggerAdapter.Info("Using Redis cache", map[string]interface{}{
			"addr": cfg.Redis.Address,
		})
	} else {
		cacheAdapter = memory.NewCacheAdapter(cfg.Cache.TTL)
	}

	// Validate
	validate := services.NewValidator()

	// Observability
	metrics := prometheus.NewPrometheusAdapter()

	health := healthcheck.NewHandler()
	health.AddLivenessCheck("goroutine-threshold", healthcheck.GoroutineCountCheck(100*runtime.NumCPU()+1000))
	health.AddReadinessCheck("database", healthcheck.DatabasePingCheck(db, time.Second))

	// Repositories
	bikeRepo := sqlite.NewRepository[domain.Bike](db, domain.BikeSchema)
	fuelRepo := sqlite.NewRepository[domain.FuelEntry](db, domain.FuelSchema)
	maintenanceRepo := sqlite.NewRepository[domain.MaintenanceEntry](db, domain.MaintenanceSchema)
	partRepo := sqlite.NewRepository[domain.Part](db, domain.PartSchema)
	tourRepo := sqlite.NewRepository[domain.Tour](db, domain.TourSchema)

	// Services
	bikeService := services.NewBikeService(bikeRepo, loggerAdapter, validate, cacheAdapter)
	fuelService := services.NewFuelService(fuelRepo, loggerAdapter, validate, cacheAdapter)
	maintenanceService := services.NewMaintenanceService(maintenanceRepo, loggerAdapter, validate, cacheAdapter)
	partService := services.NewPartService(partRepo, loggerAdapter, validate, cacheAdapter)
	tourService := services.NewTourService(tourRepo, loggerAdapter, validate, cacheAdapter)
	for _, svc := range []interface{ SetCacheTTL(time.Duration) }{
		bikeService, fuelService, maintenanceService, partService, tourService,
	} {
		svc.SetCacheTTL(cfg.Cache.TTL)
	}

	// HTTP Handlers
	bikeHandler := http.NewResourceHandler[domain.Bike, *domain.BikeInput](bikeService, loggerAdapter, metrics)
	fuelHandler := http.NewResourceHandler[domain.FuelEntry, *domain.FuelInput](fuelService, loggerAdapter, metrics)
	maintenanceHandler := http.NewResourceHandler[domain.MaintenanceEntry, *domain.MaintenanceInput](maintenanceService, loggerAdapter, metrics)
	partHandler := http.NewResourceHandler[domain.Part, *domain.PartInput](partService, loggerAdapter, metrics)
	tourHandler := http.NewResourceHandler[domain.Tour, *domain.TourInput](tourService, loggerAdapter, metrics)

	// Init HTTP router
	router, err := http.NewRouter(
		cfg.HTTP,
		loggerAdapter.Zap(),
		metrics.Handler(),
		health,
		bikeHandler,
		fuelHandler,
		maintenanceHandler,
		partHandler,
		tourHandler,
	)
	if err != nil {
		db.Close()
		if redisConn != nil {
			redisConn.Close()
		}
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}

	return &App{
		Config:       cfg,
		Logger:       loggerAdapter,
		DB:           db,
		RedisClient:  redisConn,
		CacheAdapter: cacheAdapter,
		HTTPRouter:   router,
	}, nil
}

// Runs all services
func (a *App) Run() error {
	listenAddr := a.Config.HTTP.Addr()
	a.Logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": listenAddr,
	})

	if err := a.HTTPRouter.Serve(listenAddr); err != nil {
		a.Logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// Stops all services
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)

	var firstErr error

	// Stop HTTP server
	if err := a.HTTPRouter.Shutdown(ctx); err != nil {
		a.Logger.Error("HTTP server shutdown error", map[string]interface{}{
			"error": err.Error(),
		})
		firstErr = err
	}

	// Close database
	if err := a.DB.Close(); err != nil {
		a.Logger.Error("Database close error", map[string]interface{}{
			"error": err.Error(),
		})
		if firstErr == nil {
			firstErr = err
		}
	}

	// Close Redis
	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Logger.Error("Redis close error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	a.Logger.Info("Application stopped successfully", nil)
	_ = a.Logger.Sync()
	return firstErr
}
