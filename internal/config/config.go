package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/HSB-ReservationService/internal/domain"
)

var (
	// ErrInvalidConfig возвращается при некорректной конфигурации
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config корневая конфигурация сервиса
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Backend BackendConfig `toml:"backend"`
	Redis   RedisConfig   `toml:"redis"`
	Auth    AuthConfig    `toml:"auth"`
	Policy  PolicyConfig  `toml:"policy"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BackendConfig настройки клиента Saha API
type BackendConfig struct {
	URL            string  `toml:"url"`
	Timeout        int     `toml:"timeout"` // секунды, на один запрос
	RateLimitRPS   float64 `toml:"rate_limit_rps"`
	RateLimitBurst int     `toml:"rate_limit_burst"`
}

// RedisConfig настройки кеша
type RedisConfig struct {
	Addr           string `toml:"addr"`
	Password       string `toml:"-"` // только из окружения, REDIS_PASSWORD
	DB             int    `toml:"db"`
	FieldTTL       int    `toml:"field_ttl"`       // секунды
	ReservationTTL int    `toml:"reservation_ttl"` // секунды
	ReviewTTL      int    `toml:"review_ttl"`      // секунды
}

// AuthConfig настройки разбора bearer-токенов
type AuthConfig struct {
	JWTSecret string `toml:"-"` // только из окружения, JWT_SECRET
}

// PolicyConfig бизнес-пороги, вынесенные из кода
type PolicyConfig struct {
	Timezone              string  `toml:"timezone"`
	CancelNoticeHours     int     `toml:"cancel_notice_hours"`
	EditNoticeHours       int     `toml:"edit_notice_hours"`
	PremiumPriceThreshold float64 `toml:"premium_price_threshold"`
}

// Load читает конфигурацию из TOML файла и дополняет её значениями
// из окружения (секреты) и дефолтами.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	// Секреты берём только из окружения
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	cfg.Auth.JWTSecret = os.Getenv("JWT_SECRET")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "hsb-reservation-service",
		},
		Backend: BackendConfig{
			Timeout:        10,
			RateLimitRPS:   50,
			RateLimitBurst: 100,
		},
		Redis: RedisConfig{
			Addr:           "localhost:6379",
			FieldTTL:       300,
			ReservationTTL: 600,
			ReviewTTL:      1800,
		},
		Policy: PolicyConfig{
			Timezone:              domain.DefaultTimezone,
			CancelNoticeHours:     domain.DefaultCancelNoticeHours,
			EditNoticeHours:       domain.DefaultEditNoticeHours,
			PremiumPriceThreshold: domain.DefaultPremiumPriceThreshold,
		},
	}
}

func (c *Config) validate() error {
	if c.Backend.URL == "" {
		return fmt.Errorf("%w: backend.url is required", ErrInvalidConfig)
	}
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("%w: server.http_port must be positive", ErrInvalidConfig)
	}
	if c.Policy.CancelNoticeHours < 0 || c.Policy.EditNoticeHours < 0 {
		return fmt.Errorf("%w: policy notice hours must be non-negative", ErrInvalidConfig)
	}
	if _, err := time.LoadLocation(c.Policy.Timezone); err != nil {
		return fmt.Errorf("%w: unknown policy.timezone %q", ErrInvalidConfig, c.Policy.Timezone)
	}
	return nil
}

// Location возвращает загруженную таймзону политики слотов.
// Валидность проверена в Load.
func (c *PolicyConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
