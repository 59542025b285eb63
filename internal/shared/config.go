package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultAdminPassword matches the password the site shipped with; keeping it
// as the fallback means a fresh dev checkout behaves like production did,
// but running with it in prod earns a startup warning.
const DefaultAdminPassword = "admin123"

type Config struct {
	AppEnv        string
	HTTPAddr      string
	MetricsAddr   string
	StaticDir     string
	StoreBackend  string // file | sqlite
	DataFile      string
	SQLitePath    string
	AdminPassword string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	CacheTTL      time.Duration
	MutationRPS   int
	MutationBurst int
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	appEnv := env("APP_ENV", "prod")

	// The built SPA lands in dist/public; a production image copies it to
	// public next to the binary.
	staticDef := "public"
	if appEnv == "dev" || appEnv == "development" {
		staticDef = "dist/public"
	}

	c := Config{
		AppEnv:        appEnv,
		HTTPAddr:      env("HTTP_ADDR", ":3000"),
		MetricsAddr:   env("METRICS_ADDR", ""),
		StaticDir:     env("STATIC_DIR", staticDef),
		StoreBackend:  env("STORE_BACKEND", "file"),
		DataFile:      env("DATA_FILE", "reviews.json"),
		SQLitePath:    env("SQLITE_PATH", "reviews.db"),
		AdminPassword: env("ADMIN_PASSWORD", DefaultAdminPassword),
		RedisAddr:     env("REDIS_ADDR", ""),
		RedisPass:     env("REDIS_PASSWORD", ""),
		RedisDB:       atoi("REDIS_DB", 0),
		CacheTTL:      time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,
		MutationRPS:   atoi("MUTATION_RPS", 2),
		MutationBurst: atoi("MUTATION_BURST", 5),
	}
	// PORT wins over HTTP_ADDR for platform compatibility.
	if p := os.Getenv("PORT"); p != "" {
		c.HTTPAddr = ":" + p
	}
	if c.AdminPassword == DefaultAdminPassword {
		log.Warn().Msg("ADMIN_PASSWORD not set; using the default secret")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
