package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultMapsBaseURL = "https://maps.googleapis.com/maps/api"

// Config holds the server configuration, read from environment variables.
type Config struct {
	Port          int
	MongoURI      string
	MongoDatabase string
	MapsAPIKey    string
	MapsBaseURL   string
	MetricsAddr   string
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present.
func Load() (*Config, error) {
	// Load .env into environment (ignore if missing)
	_ = godotenv.Load()

	cfg := &Config{}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 {
			return nil, fmt.Errorf("invalid PORT: %q", v)
		}
		cfg.Port = port
	} else {
		cfg.Port = 5000
	}

	cfg.MongoURI = os.Getenv("MONGO_URI")
	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI must be set")
	}
	cfg.MongoDatabase = getenvDefault("MONGO_DATABASE", "metrosync")

	cfg.MapsAPIKey = os.Getenv("MAPS_API_KEY")
	if cfg.MapsAPIKey == "" {
		return nil, errors.New("MAPS_API_KEY must be set")
	}
	cfg.MapsBaseURL = getenvDefault("MAPS_BASE_URL", defaultMapsBaseURL)

	// Metrics listen address (e.g. ":9102"). Empty disables the metrics server.
	cfg.MetricsAddr = os.Getenv("METRICS_ADDR")

	return cfg, nil
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
