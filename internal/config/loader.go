package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. LIFE_SERVER_PORT
const EnvPrefix = "LIFE"

var (
	globalConfig *Config
	once         sync.Once
)

// LoadConfig loads the configuration once and caches it
func LoadConfig(configFile string) (*Config, error) {
	var err error

	once.Do(func() {
		var cfg *Config
		cfg, err = loadConfigFromFile(configFile)
		if err == nil {
			globalConfig = cfg
		}
	})

	return globalConfig, err
}

// loadConfigFromFile reads .env, the YAML file and LIFE_* environment overrides
func loadConfigFromFile(configFile string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// loadDotEnv loads path into the process environment when it exists
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// setDefaults registers every key so that environment overrides apply even when the file omits it
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 18080)
	v.SetDefault("server.production_mode", false)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 15)

	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.path", "./database/life.db")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)

	v.SetDefault("redis_service.enabled", false)
	v.SetDefault("redis_service.host", "localhost")
	v.SetDefault("redis_service.port", 6379)
	v.SetDefault("redis_service.db", 0)
	v.SetDefault("redis_service.password", "")

	v.SetDefault("rate_limit.requests", 120)
	v.SetDefault("rate_limit.window_seconds", 60)

	v.SetDefault("jwt.secret_key", "")
	v.SetDefault("jwt.algorithm", "HS256")
	v.SetDefault("jwt.expire_minutes", 1440)

	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password", "")

	v.SetDefault("cors.origins", []string{})
	v.SetDefault("cors.allow_credentials", false)
	v.SetDefault("cors.allow_methods", []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allow_headers", []string{"Content-Type", "Authorization", "X-Request-ID"})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("life.default_life_expectancy", 80)
}

// validateConfig checks the loaded values and prepares the sqlite directory
func validateConfig(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}

	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key must not be empty")
	}

	if cfg.Admin.Password == "" {
		return fmt.Errorf("admin.password must not be empty")
	}

	if cfg.Life.DefaultLifeExpectancy < 0 {
		return fmt.Errorf("life.default_life_expectancy must not be negative")
	}

	switch cfg.Database.Driver {
	case DriverSQLite:
		dbDir := filepath.Dir(cfg.Database.Path)
		if _, err := os.Stat(dbDir); os.IsNotExist(err) {
			if err := os.MkdirAll(dbDir, 0755); err != nil {
				return fmt.Errorf("create database directory: %w", err)
			}
		}
	case DriverPostgres:
		if cfg.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported database driver: %q", cfg.Database.Driver)
	}

	return nil
}
