package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"

	"github.com/codeforher/backend/internal/pkg/models"
)

// InitConfig loads configuration from an optional config file plus the
// environment. Environment variables override file values and use the
// section-prefixed form, e.g. DATABASE_HOST, JWT_SECRET, TWILIO_AUTH_TOKEN.
func InitConfig(configPath string) *models.Config {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath("./config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Printf("config file not loaded, relying on environment: %v", err)
	}

	configs := &models.Config{}
	if err := v.Unmarshal(configs); err != nil {
		log.Fatalf("failed to unmarshal config: %v", err)
	}

	return configs
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "codeforher-backend")
	v.SetDefault("app.environment", "local")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "dev")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 15)
	v.SetDefault("server.shutdown_timeout", 10)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.idle_conns", 2)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("nats.url", "nats://localhost:4222")

	v.SetDefault("jwt.issuer", "codeforher")
	v.SetDefault("jwt.expiration_minutes", 30)
	v.SetDefault("jwt.refresh_expiry_days", 7)

	v.SetDefault("twilio.base_url", "https://api.twilio.com")

	v.SetDefault("maps.base_url", "https://api.olamaps.io")
	v.SetDefault("maps.cache_ttl_secs", 300)
	v.SetDefault("maps.default_radius", 5000)

	v.SetDefault("llm.model", "gpt-4o")

	v.SetDefault("logger.level", "info")
}
