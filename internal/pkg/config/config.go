package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/fieldops/towtrack/internal/pkg/models"
)

// InitConfig loads configuration from a .env file in local environments and
// from environment variables everywhere else.
func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 0)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 0)
	configs.Server.APIKey = GetEnv("SERVER_API_KEY", "")

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 0)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 0)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 0)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "")

	// Services config
	configs.Services.JobsServiceURL = GetEnv("JOBS_SERVICE_URL", "http://localhost:9981")
	configs.Services.TrackingServiceURL = GetEnv("TRACKING_SERVICE_URL", "http://localhost:9982")
	configs.Services.APIKey = GetEnv("SERVICES_API_KEY", "")

	// Maps config
	configs.Maps.APIKey = GetEnv("MAPS_API_KEY", "")
	configs.Maps.RequestTimeout = GetEnvAsInt("MAPS_REQUEST_TIMEOUT", 10)

	// Storage config
	configs.Storage.Endpoint = GetEnv("STORAGE_ENDPOINT", "")
	configs.Storage.AccessKey = GetEnv("STORAGE_ACCESS_KEY", "")
	configs.Storage.SecretKey = GetEnv("STORAGE_SECRET_KEY", "")
	configs.Storage.Bucket = GetEnv("STORAGE_BUCKET", "completion-photos")
	configs.Storage.UseSSL = GetEnvAsBool("STORAGE_USE_SSL", false)

	// Tracking config
	configs.Tracking.FlushIntervalSec = GetEnvAsInt("TRACKING_FLUSH_INTERVAL", 5)
	configs.Tracking.PollIntervalSec = GetEnvAsInt("TRACKING_POLL_INTERVAL", 5)

	// Device config
	configs.Device.GPSPort = GetEnv("DEVICE_GPS_PORT", "/dev/ttyUSB0")
	configs.Device.GPSBaudRate = GetEnvAsInt("DEVICE_GPS_BAUD_RATE", 9600)
	configs.Device.ProbeTimeout = GetEnvAsInt("DEVICE_PROBE_TIMEOUT", 8)
	configs.Device.PhotoMaxDim = GetEnvAsInt("DEVICE_PHOTO_MAX_DIM", 1280)
	configs.Device.PhotoQuality = GetEnvAsInt("DEVICE_PHOTO_QUALITY", 70)
	configs.Device.WakeLockEnable = GetEnvAsBool("DEVICE_WAKE_LOCK", true)

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
