package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string
	DatabaseURL string

	// EnforceVenueCapacity makes booking creation reject requests that
	// would push the pending+confirmed ticket total of an event past its
	// venue capacity. Off by default. Even when on, the check-then-insert
	// is only as safe as the datastore's transaction isolation.
	EnforceVenueCapacity bool

	// RequestTimeout bounds every request context so datastore calls
	// cannot hang past it.
	RequestTimeout time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		Addr:                 getEnv("ADDR", ":8080"),
		DatabaseURL:          getEnv("DATABASE_URL", "tickets.db"),
		EnforceVenueCapacity: getEnvBool("ENFORCE_VENUE_CAPACITY", false),
		RequestTimeout:       getEnvDuration("REQUEST_TIMEOUT", 5*time.Second),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %v", key, v, def)
		return def
	}
	return b
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %v", key, v, def)
		return def
	}
	return d
}
