package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Services ServicesConfig
	Maps     MapsConfig
	Storage  StorageConfig
	Tracking TrackingConfig
	Device   DeviceConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
	APIKey          string
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// ServicesConfig contains URLs for the other services
type ServicesConfig struct {
	JobsServiceURL     string
	TrackingServiceURL string
	APIKey             string
}

// MapsConfig contains directions/geocoding service configuration
type MapsConfig struct {
	APIKey         string
	RequestTimeout int // in seconds
}

// StorageConfig contains object storage configuration for completion photos
type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// TrackingConfig contains position reporting and reconciliation tuning
type TrackingConfig struct {
	FlushIntervalSec int // fallback flush cadence for the reporter
	PollIntervalSec  int // dispatcher view reconciliation cadence
}

// DeviceConfig contains provider device capability configuration
type DeviceConfig struct {
	GPSPort        string
	GPSBaudRate    int
	ProbeTimeout   int // seconds for the single-shot fix during finalize
	PhotoMaxDim    int // bounding box for photo downscaling, in pixels
	PhotoQuality   int // JPEG re-encode quality
	WakeLockEnable bool
}
