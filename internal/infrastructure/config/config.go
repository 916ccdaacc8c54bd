package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds the settings for the console API service.
type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	TokenTTL  int    `env:"TOKEN_TTL_HOURS, default=24"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=crm_console"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// ClientConfig holds the settings for the terminal console client.
// API and hub origins are selected by environment at start time; they are
// not switchable at runtime.
type ClientConfig struct {
	APIBaseURL     string `env:"CRM_API_URL, default=http://localhost:8080/api"`
	HubURL         string `env:"CRM_HUB_URL, default=ws://localhost:8080/ws/notifications"`
	CredentialFile string `env:"CRM_CREDENTIAL_FILE, default=.crm-token"`
	LogLevel       string `env:"LOG_LEVEL,   default=info"`
}

// Load reads service configuration from environment variables.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// LoadClient reads client configuration from environment variables.
func LoadClient() *ClientConfig {
	var cfg ClientConfig
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load client configuration: %v", err))
	}
	return &cfg
}
