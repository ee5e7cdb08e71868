package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const defaultCORSOrigins = "http://localhost:5173,http://localhost:5174"

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Generator GeneratorConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Metrics   MetricsConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host            string
	Port            int
	Env             string
	ShutdownTimeout time.Duration
	// ProxyHeader - заголовок с IP клиента за reverse proxy (например X-Real-IP)
	ProxyHeader string
}

type CORSConfig struct {
	AllowOrigins []string
	// Rejected - записи CORS_ORIGIN, не являющиеся origin (scheme://host[:port])
	Rejected []string
}

type GeneratorConfig struct {
	Seed int64
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	Enabled           bool
	ReferenceCacheTTL time.Duration
}

type MetricsConfig struct {
	Enabled bool
}

type LogConfig struct {
	Level string
}

// Load читает конфигурацию из .env (если файл есть) и переменных окружения
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:            v.GetString("API_HOST"),
			Port:            v.GetInt("PORT"),
			Env:             v.GetString("API_ENV"),
			ShutdownTimeout: time.Duration(v.GetInt("SHUTDOWN_TIMEOUT")) * time.Second,
			ProxyHeader:     v.GetString("PROXY_HEADER"),
		},
		CORS: parseOrigins(v.GetString("CORS_ORIGIN")),
		Generator: GeneratorConfig{
			Seed: v.GetInt64("RNG_SEED"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			Enabled:           v.GetBool("CACHE_ENABLED"),
			ReferenceCacheTTL: time.Duration(v.GetInt("REFERENCE_CACHE_TTL")) * time.Second,
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("METRICS_ENABLED"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	// Пустой CORS_ORIGIN означает список по умолчанию
	if len(cfg.CORS.AllowOrigins) == 0 {
		cfg.CORS.AllowOrigins = parseList(defaultCORSOrigins)
	}
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_HOST", "")
	v.SetDefault("API_ENV", "development")
	v.SetDefault("SHUTDOWN_TIMEOUT", 10)
	v.SetDefault("PROXY_HEADER", "")
	v.SetDefault("CORS_ORIGIN", defaultCORSOrigins)
	v.SetDefault("RNG_SEED", 42)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_ENABLED", false)
	v.SetDefault("REFERENCE_CACHE_TTL", 3600)
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("LOG_LEVEL", "info")
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound)
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// parseOrigins разбирает CORS_ORIGIN, отбрасывая записи, которые fiber cors не примет
func parseOrigins(s string) CORSConfig {
	var cfg CORSConfig
	for _, origin := range parseList(s) {
		if origin == "*" || validOrigin(origin) {
			cfg.AllowOrigins = append(cfg.AllowOrigins, origin)
		} else {
			cfg.Rejected = append(cfg.Rejected, origin)
		}
	}
	for _, origin := range cfg.AllowOrigins {
		if origin == "*" {
			cfg.AllowOrigins = []string{"*"}
			break
		}
	}
	return cfg
}

// validOrigin - scheme://host[:port], допускается поддомен-шаблон scheme://*.host
func validOrigin(origin string) bool {
	if i := strings.Index(origin, "://*."); i != -1 {
		origin = origin[:i+3] + origin[i+4:]
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if u.Scheme == "" || u.Host == "" || strings.Contains(u.Host, "*") {
		return false
	}
	return (u.Path == "" || u.Path == "/") && u.RawQuery == "" && u.Fragment == ""
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
