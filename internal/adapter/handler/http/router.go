package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/heptiolabs/healthcheck"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/sm8ta/motodash/docs"
	"github.com/sm8ta/motodash/internal/config"
)

// Routes is implemented by every resource handler.
type Routes interface {
	Register(r gin.IRouter)
}

type Router struct {
	router *gin.Engine

	mu     sync.Mutex
	server *http.Server
	closed bool
}

func NewRouter(
	cfg *config.HTTP,
	logger *zap.Logger,
	metrics http.Handler,
	health healthcheck.Handler,
	resources ...Routes,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Access log and panic recovery
	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(logger, true))

	// CORS
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	origins := splitOrigins(cfg.AllowedOrigins)
	if len(origins) == 0 || origins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
		corsConfig.AllowCredentials = true
	}
	router.Use(cors.New(corsConfig))

	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.Use(SecurityHeaders())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics))
	}

	// Health check
	router.GET("/health", getHealth)
	if health != nil {
		router.GET("/live", gin.WrapH(health))
		router.GET("/ready", gin.WrapH(health))
	}

	// Resource routes
	for _, resource := range resources {
		resource.Register(router)
	}

	return &Router{router: router}, nil
}

// Serve blocks until the server fails or Shutdown is called.
func (r *Router) Serve(addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           r.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.server = server
	r.mu.Unlock()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (r *Router) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	server := r.server
	r.closed = true
	r.mu.Unlock()

	if server == nil {
		return nil
	}
	return server.Shutdown(ctx)
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}

// @Summary Проверка состояния
// @Tags health
// @Produce json
// @Success 200 {object} healthResponse
// @Router /health [get]
func getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

func splitOrigins(value string) []string {
	var origins []string
	for _, origin := range strings.Split(value, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
