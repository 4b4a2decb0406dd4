package models

// Config represents application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	NATS     NATSConfig     `mapstructure:"nats"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Twilio   TwilioConfig   `mapstructure:"twilio"`
	Maps     MapsConfig     `mapstructure:"maps"`
	LLM      LLMConfig      `mapstructure:"llm"`
	NewRelic NewRelicConfig `mapstructure:"newrelic"`
	Logger   LoggerConfig   `mapstructure:"logger"`
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
	Version     string `mapstructure:"version"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	Database  string `mapstructure:"database"`
	SSLMode   string `mapstructure:"ssl_mode"`
	MaxConns  int    `mapstructure:"max_conns"`
	IdleConns int    `mapstructure:"idle_conns"`
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string `mapstructure:"url"`
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret            string `mapstructure:"secret"`
	Issuer            string `mapstructure:"issuer"`
	ExpirationMinutes int    `mapstructure:"expiration_minutes"`
	RefreshExpiryDays int    `mapstructure:"refresh_expiry_days"`
}

// TwilioConfig contains the SMS gateway account configuration
type TwilioConfig struct {
	AccountSID  string `mapstructure:"account_sid"`
	AuthToken   string `mapstructure:"auth_token"`
	PhoneNumber string `mapstructure:"phone_number"`
	BaseURL     string `mapstructure:"base_url"`
}

// MapsConfig contains the maps provider configuration
type MapsConfig struct {
	BaseURL       string `mapstructure:"base_url"`
	APIKey        string `mapstructure:"api_key"`
	ClientID      string `mapstructure:"client_id"`
	CacheTTLSecs  int    `mapstructure:"cache_ttl_secs"`
	DefaultRadius int    `mapstructure:"default_radius"`
}

// LLMConfig contains the route-safety commentary model configuration
type LLMConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// NewRelicConfig contains observability configuration
type NewRelicConfig struct {
	LicenseKey  string `mapstructure:"license_key"`
	AppName     string `mapstructure:"app_name"`
	Enabled     bool   `mapstructure:"enabled"`
	ForwardLogs bool   `mapstructure:"forward_logs"`
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	FilePath string `mapstructure:"file_path"`
}
