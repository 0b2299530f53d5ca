package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv   string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
	Server   struct {
		Port            string        `mapstructure:"port"`
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
		CORSOrigins     []string      `mapstructure:"cors_origins"`
	} `mapstructure:"server"`
	Database struct {
		Host           string `mapstructure:"host"`
		Port           string `mapstructure:"port"`
		User           string `mapstructure:"user"`
		Password       string `mapstructure:"password"`
		Name           string `mapstructure:"name"`
		SSLMode        string `mapstructure:"sslmode"`
		MigrateOnStart bool   `mapstructure:"migrate_on_start"`
	} `mapstructure:"database"`
	JWT struct {
		Secret string        `mapstructure:"secret"`
		TTL    time.Duration `mapstructure:"ttl"`
	} `mapstructure:"jwt"`
	News struct {
		BaseURL string        `mapstructure:"base_url"`
		APIKey  string        `mapstructure:"api_key"`
		Lang    string        `mapstructure:"lang"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"news"`
}

// DSN builds the lib/pq connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host, c.Database.Port, c.Database.User, c.Database.Password, c.Database.Name, c.Database.SSLMode)
}

// MigrateURL builds the postgres:// URL golang-migrate expects.
func (c *Config) MigrateURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name, c.Database.SSLMode)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", "production")
	v.SetDefault("log_level", "info")

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("server.cors_origins", []string{"http://localhost:3000"})

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "fitness")
	v.SetDefault("database.password", "fitness")
	v.SetDefault("database.name", "fitness_club")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.migrate_on_start", true)

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.ttl", 24*time.Hour)

	v.SetDefault("news.base_url", "https://gnews.io/api/v4")
	v.SetDefault("news.api_key", "")
	v.SetDefault("news.lang", "ru")
	v.SetDefault("news.timeout", 10*time.Second)
}

// LoadConfig reads .env (if any), then an optional config.yml under path, then the environment.
// Env names are the nested keys upper-cased with "_" in place of ".", e.g. DATABASE_HOST, JWT_SECRET.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.AppEnv = normalizeEnv(cfg.AppEnv)

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return &cfg, nil
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "test", "testing":
		return "test"
	default:
		return "production"
	}
}
