package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBDSN    string
	RedisURL string

	AlgoliaAppID  string
	AlgoliaAPIKey string
	AlgoliaIndex  string

	MarketplaceURL string
	JWTSecret      string
	CurrencyFile   string
	LogDir         string
	CORSOrigins    []string

	SearchCacheTTL time.Duration
}

// LoadEnv reads .env (when present) and the process environment.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[CONFIG] action=load_dotenv request_id= msg=%v", err)
	}

	env := Env{
		AppAddr:        getenv("APP_ADDR", ":8080"),
		GinMode:        getenv("GIN_MODE", ""),
		DBDSN:          getenv("DB_DSN", "root:@tcp(127.0.0.1:3306)/resale"),
		RedisURL:       getenv("REDIS_URL", ""),
		AlgoliaAppID:   getenv("ALGOLIA_APP_ID", ""),
		AlgoliaAPIKey:  getenv("ALGOLIA_API_KEY", ""),
		AlgoliaIndex:   getenv("ALGOLIA_INDEX", "products"),
		MarketplaceURL: getenv("MARKETPLACE_API_URL", "http://localhost:9000/api/"),
		JWTSecret:      getenv("JWT_SECRET", ""),
		CurrencyFile:   getenv("CURRENCY_FILE", "config/currencies.yml"),
		LogDir:         getenv("LOG_DIR", ""),
		SearchCacheTTL: 5 * time.Minute,
	}

	if raw := getenv("SEARCH_CACHE_TTL", ""); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d >= 0 {
			env.SearchCacheTTL = d
		} else {
			log.Printf("[CONFIG] action=parse_ttl request_id= msg=invalid SEARCH_CACHE_TTL %q, using %s", raw, env.SearchCacheTTL)
		}
	}

	if raw := getenv("CORS_ALLOWED_ORIGINS", ""); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				env.CORSOrigins = append(env.CORSOrigins, o)
			}
		}
	}

	return env
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
