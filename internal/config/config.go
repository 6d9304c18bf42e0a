package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config carries everything the process needs, resolved once at startup.
type Config struct {
	Port       string
	LogLevel   string
	DBPath     string
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

const (
	defaultPort       = "8080"
	defaultLogLevel   = "info"
	defaultDBPath     = "bookmarks.db"
	defaultTokenTTL   = time.Hour
	defaultBcryptCost = 12
)

// Load reads configs/config.yml and applies BOOKMARKS_* environment overrides
// (e.g. BOOKMARKS_JWT_SECRET). A missing config file is fine as long as the
// required values arrive from the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.AddConfigPath("configs") // configs/config.yml
	v.SetConfigName("config")

	v.SetDefault("port", defaultPort)
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("db.path", defaultDBPath)
	v.SetDefault("jwt.ttl", defaultTokenTTL)
	v.SetDefault("auth.bcrypt_cost", defaultBcryptCost)

	v.SetEnvPrefix("bookmarks")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{
		Port:       v.GetString("port"),
		LogLevel:   v.GetString("log.level"),
		DBPath:     v.GetString("db.path"),
		JWTSecret:  v.GetString("jwt.secret"),
		TokenTTL:   v.GetDuration("jwt.ttl"),
		BcryptCost: v.GetInt("auth.bcrypt_cost"),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt.secret is required (config file or BOOKMARKS_JWT_SECRET)")
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}
	return cfg, nil
}
