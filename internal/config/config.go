package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort       = "4000"
	defaultOrigins        = "*"
	defaultDatabasePath   = "data/moto-dash.db"
	defaultMigrationsDir  = "./internal/adapter/sqlite/migrations"
	defaultCacheTTL       = 15 * time.Minute
	defaultAppName        = "motodash"
	defaultAppEnvironment = "development"
)

type (
	Container struct {
		App   *App
		DB    *DB
		HTTP  *HTTP
		Redis *Redis
		Cache *Cache
	}

	App struct {
		Name string
		Env  string
	}

	DB struct {
		Path          string
		MigrationsDir string
	}

	HTTP struct {
		Env            string
		Port           string
		AllowedOrigins string
		URL            string
	}

	// Redis is optional. An empty Address selects the in-process cache.
	Redis struct {
		Address  string
		Password string
		DB       int
	}

	Cache struct {
		TTL time.Duration
	}
)

func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	app := &App{
		Name: getEnv("APP_NAME", defaultAppName),
		Env:  getEnv("APP_ENV", defaultAppEnvironment),
	}

	db := &DB{
		Path:          getEnv("DATABASE_PATH", defaultDatabasePath),
		MigrationsDir: getEnv("MIGRATIONS_DIR", defaultMigrationsDir),
	}

	http := &HTTP{
		Port:           getEnv("HTTP_PORT", defaultHTTPPort),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", defaultOrigins),
		URL:            os.Getenv("HTTP_URL"),
		Env:            app.Env,
	}

	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	redis := &Redis{
		Address:  os.Getenv("REDIS_ADDRESS"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       redisDB,
	}

	ttl, err := getEnvDuration("CACHE_TTL", defaultCacheTTL)
	if err != nil {
		return nil, err
	}

	return &Container{
		App:   app,
		DB:    db,
		HTTP:  http,
		Redis: redis,
		Cache: &Cache{TTL: ttl},
	}, nil
}

// Addr is the listen address built from HTTP_URL and HTTP_PORT.
func (h *HTTP) Addr() string {
	return h.URL + ":" + h.Port
}

func (r *Redis) Enabled() bool {
	return r.Address != ""
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.New("invalid " + key + ": " + value)
	}
	return n, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, errors.New("invalid " + key + ": " + value)
	}
	return d, nil
}
