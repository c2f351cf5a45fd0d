// Package config provides configuration management using viper.
// It supports loading from YAML files and environment variable overrides.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

// Config holds all application configuration.
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
	Daily   DailyConfig   `mapstructure:"daily"`
	Spin    SpinConfig    `mapstructure:"spin"`
}

// StorageConfig selects and configures the key-value backend.
type StorageConfig struct {
	Driver   string         `mapstructure:"driver"`
	StateKey string         `mapstructure:"state_key"`
	ClaimKey string         `mapstructure:"claim_key"`
	SQLite   SQLiteConfig   `mapstructure:"sqlite"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Database DatabaseConfig `mapstructure:"database"`
}

// SQLiteConfig holds the local database file location.
type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	URL       string `mapstructure:"url"`
	PoolSize  int    `mapstructure:"pool_size"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

// DatabaseConfig holds PostgreSQL connection configuration.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	PoolSize        int           `mapstructure:"pool_size"`
	ConnectTimeout  time.Duration `mapstructure:"connect_timeout"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `mapstructure:"max_conn_idle_time"`
}

// LogConfig holds logger configuration. An empty File logs to stderr.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// DailyConfig holds daily reward configuration.
type DailyConfig struct {
	Reward        int64 `mapstructure:"reward"`
	CooldownHours int   `mapstructure:"cooldown_hours"`
}

// Cooldown returns the claim window as a duration.
func (d DailyConfig) Cooldown() time.Duration {
	return time.Duration(d.CooldownHours) * time.Hour
}

// SpinConfig holds the cosmetic reveal sequence of each mini-game.
type SpinConfig struct {
	Reels      AnimationConfig `mapstructure:"reels"`
	ColorWheel AnimationConfig `mapstructure:"colorwheel"`
	GridMatch  AnimationConfig `mapstructure:"gridmatch"`
}

// AnimationConfig is a fixed countdown of ticks.
type AnimationConfig struct {
	Ticks    int           `mapstructure:"ticks"`
	Interval time.Duration `mapstructure:"interval"`
}

// ForGame returns the animation settings for a game command.
func (s SpinConfig) ForGame(command string) AnimationConfig {
	switch command {
	case "reels":
		return s.Reels
	case "colorwheel":
		return s.ColorWheel
	case "gridmatch":
		return s.GridMatch
	}
	return AnimationConfig{}
}

// DSN returns the PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		d.User, d.Password, d.Host, d.Port, d.Name,
	)
}

// Load reads configuration from file and environment variables.
// It looks for config.yaml in the given directory.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// e.g. STORAGE_DRIVER, DAILY_REWARD, LOG_LEVEL
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values viper cannot constrain on its own.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverSQLite, DriverPostgres, DriverRedis, DriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Storage.StateKey == "" || c.Storage.ClaimKey == "" {
		return fmt.Errorf("storage keys must not be empty")
	}
	if c.Storage.StateKey == c.Storage.ClaimKey {
		return fmt.Errorf("state_key and claim_key must differ")
	}
	if c.Daily.Reward <= 0 {
		return fmt.Errorf("daily reward must be positive, got %d", c.Daily.Reward)
	}
	if c.Daily.CooldownHours <= 0 {
		return fmt.Errorf("daily cooldown must be positive, got %d", c.Daily.CooldownHours)
	}
	return nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.driver", DriverSQLite)
	v.SetDefault("storage.state_key", "userData")
	v.SetDefault("storage.claim_key", "lastDailyClaim")
	v.SetDefault("storage.sqlite.path", "casslot.db")
	v.SetDefault("storage.redis.url", "redis://localhost:6379")
	v.SetDefault("storage.redis.pool_size", 10)
	v.SetDefault("storage.redis.key_prefix", "casslot")

	v.SetDefault("storage.database.host", "localhost")
	v.SetDefault("storage.database.port", 5432)
	v.SetDefault("storage.database.user", "casslot")
	v.SetDefault("storage.database.name", "casslot")
	v.SetDefault("storage.database.pool_size", 4)
	v.SetDefault("storage.database.connect_timeout", "10s")
	v.SetDefault("storage.database.max_conn_lifetime", "1h")
	v.SetDefault("storage.database.max_conn_idle_time", "30m")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)

	v.SetDefault("daily.reward", 100)
	v.SetDefault("daily.cooldown_hours", 24)

	v.SetDefault("spin.reels.ticks", 15)
	v.SetDefault("spin.reels.interval", "100ms")
	v.SetDefault("spin.colorwheel.ticks", 20)
	v.SetDefault("spin.colorwheel.interval", "100ms")
	v.SetDefault("spin.gridmatch.ticks", 15)
	v.SetDefault("spin.gridmatch.interval", "150ms")
}
