package initializers

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/Kariqs/bites-api/store"
	"github.com/joho/godotenv"
)

type Config struct {
	HotelName     string
	SeedCatalog   bool
	AdminUsername string
	AdminPassword string
	JWTSecret     string
	CorsOrigins   []string
	LogMode       string
	LogFile       string
	S3Bucket      string
}

// LoadEnv reads .env into the process environment. A missing file is not
// fatal; the caller logs the returned error once the logger is up.
func LoadEnv() error {
	return godotenv.Load()
}

const devJWTSecret = "change-me"

// LoadConfig reads the application settings from the environment, falling
// back to defaults suitable for a local run. Production mode refuses to fall
// back to the development JWT secret; the returned Config is still usable
// for logger setup when that error is reported.
func LoadConfig() (Config, error) {
	cfg := Config{
		HotelName:     getEnv("HOTEL_NAME", store.DefaultHotelName),
		SeedCatalog:   getEnvBool("SEED_CATALOG", true),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		CorsOrigins:   strings.Split(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:8080"), ","),
		LogMode:       getEnv("LOG_MODE", "development"),
		LogFile:       os.Getenv("LOG_FILE"),
		S3Bucket:      os.Getenv("AWS_S3_BUCKET"),
	}
	if cfg.JWTSecret == "" {
		if cfg.LogMode == "production" {
			return cfg, errors.New("JWT_SECRET must be set when LOG_MODE is production")
		}
		cfg.JWTSecret = devJWTSecret
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}
