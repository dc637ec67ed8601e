package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port             string
	DBPath           string
	RasterDir        string
	RasterPublicPath string

	SentinelClientID     string
	SentinelClientSecret string
	SentinelTokenURL     string
	SentinelStatsURL     string
	SentinelProcessURL   string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:                 get("PORT", "8080"),
		DBPath:               get("DB_PATH", "landanalysis.db"),
		RasterDir:            get("RASTER_DIR", "storage/rasters"),
		RasterPublicPath:     get("RASTER_PUBLIC_PATH", "rasters"),
		SentinelClientID:     get("SENTINEL_CLIENT_ID", ""),
		SentinelClientSecret: get("SENTINEL_CLIENT_SECRET", ""),
		SentinelTokenURL:     get("SENTINEL_TOKEN_URL", "https://services.sentinel-hub.com/oauth/token"),
		SentinelStatsURL:     get("SENTINEL_STATS_URL", "https://services.sentinel-hub.com/api/v1/statistics"),
		SentinelProcessURL:   get("SENTINEL_PROCESS_URL", "https://services.sentinel-hub.com/api/v1/process"),
	}
	log.Printf("[cfg] port=%s db=%s rasters=%s", cfg.Port, cfg.DBPath, cfg.RasterDir)
	return cfg
}
