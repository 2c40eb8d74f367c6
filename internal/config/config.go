package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	ESI       ESIConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type ESIConfig struct {
	BaseURL           string
	Timeout           time.Duration
	CompatibilityDate string
	UserAgent         string
}

type RateLimitConfig struct {
	Enabled   bool
	PerMinute int
	PerHour   int
	Storage   string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// .env is optional: in containers all values come from the environment
	if err := viper.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		ESI: ESIConfig{
			BaseURL:           viper.GetString("ESI_BASE_URL"),
			Timeout:           time.Duration(viper.GetInt("ESI_TIMEOUT")) * time.Second,
			CompatibilityDate: viper.GetString("ESI_COMPATIBILITY_DATE"),
			UserAgent:         viper.GetString("ESI_USER_AGENT"),
		},
		RateLimit: RateLimitConfig{
			// enabled unless explicitly set to "false"
			Enabled:   viper.GetString("RATE_LIMIT_ENABLED") != "false",
			PerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
			PerHour:   viper.GetInt("RATE_LIMIT_PER_HOUR"),
			Storage:   viper.GetString("RATE_LIMIT_STORAGE"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.ESI.BaseURL == "" {
		cfg.ESI.BaseURL = "https://esi.evetech.net/latest"
	}
	if cfg.ESI.Timeout == 0 {
		cfg.ESI.Timeout = 10 * time.Second
	}
	if cfg.ESI.CompatibilityDate == "" {
		cfg.ESI.CompatibilityDate = "2026-02-02"
	}
	if cfg.ESI.UserAgent == "" {
		cfg.ESI.UserAgent = "WizardLightYearsCalculator, Username=Dusty Meg"
	}
	if cfg.RateLimit.PerMinute == 0 {
		cfg.RateLimit.PerMinute = 60
	}
	if cfg.RateLimit.PerHour == 0 {
		cfg.RateLimit.PerHour = 1000
	}
	if cfg.RateLimit.Storage == "" {
		cfg.RateLimit.Storage = "memory"
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
