package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "campusguard/internal/shared/config"
)

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server"`
	Database  sharedConfig.DatabaseConfig  `mapstructure:"database"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger"`
	Auth      sharedConfig.AuthConfig      `mapstructure:"auth"`
	Redis     sharedConfig.RedisConfig     `mapstructure:"redis"`
	Storage   sharedConfig.StorageConfig   `mapstructure:"storage"`
	Evidence  sharedConfig.EvidenceConfig  `mapstructure:"evidence"`
	RateLimit sharedConfig.RateLimitConfig `mapstructure:"rate_limit"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("CAMPUSGUARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Allow env parameter to override server mode if provided
	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")

	// Database defaults
	viper.SetDefault("database.driver", "mysql")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "root")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.database", "campusguard_dev")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// Auth defaults
	viper.SetDefault("auth.password.bcrypt_cost", 12)
	viper.SetDefault("auth.jwt.secret", "change-me-in-production")
	viper.SetDefault("auth.jwt.access_exp_hours", 24)

	// Redis defaults
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Storage defaults (empty by default, must be configured)
	viper.SetDefault("storage.endpoint", "")
	viper.SetDefault("storage.region", "us-east-1")
	viper.SetDefault("storage.bucket", "campusguard-evidence")
	viper.SetDefault("storage.access_key", "")
	viper.SetDefault("storage.secret_key", "")
	viper.SetDefault("storage.public_url", "")

	// Evidence defaults
	viper.SetDefault("evidence.max_file_bytes", 2*1024*1024)

	// Rate limit defaults
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.login_per_minute", 10)
	viper.SetDefault("rate_limit.login_per_hour", 100)
	viper.SetDefault("rate_limit.register_per_minute", 5)
}
