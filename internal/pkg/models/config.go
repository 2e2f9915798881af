package models

// Config holds all configuration for the application
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	APIKey   APIKeyConfig
	Dispatch DispatchConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig holds NATS configuration
type NATSConfig struct {
	URL string
}

// JWTConfig holds JWT configuration for the dispatcher console guard
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// APIKeyConfig holds API keys for internal route protection
type APIKeyConfig struct {
	DispatchService string
}

// DispatchConfig holds the tunables of the ride lifecycle engine.
// Defaults are set by the config loader.
type DispatchConfig struct {
	OfferTimeoutSec    int
	MaxOffers          int
	MinPaymentPct      float64
	ActivityAccept     int
	ActivityDecline    int
	ActivityComplete   int
	PresenceTTLSec     int
	ProximityRadiusKm  float64
	TransactionRetries int
	SweepIntervalSec   int
}

// NewRelicConfig holds New Relic configuration
type NewRelicConfig struct {
	LicenseKey string
	AppName    string
	Enabled    bool
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
