package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Auth     *AuthConfig     `mapstructure:"auth"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
}

type APIConfig struct {
	Environment           string   `mapstructure:"environment"`
	BaseURL               string   `mapstructure:"base_url"`
	Port                  string   `mapstructure:"port"`
	AllowedCORSDomains    []string `mapstructure:"allowed_cors_domains"`
	JWTSigningKey         string   `mapstructure:"jwt_signing_key"`
	JWTExpiryHours        int      `mapstructure:"jwt_expiry_hours"`
	RequestTimeoutSeconds int      `mapstructure:"request_timeout_seconds"`
}

type AuthConfig struct {
	// AdminSignupCode gates signup with the admin role. Injected here so it
	// is never compared as an inline literal.
	AdminSignupCode string `mapstructure:"admin_signup_code"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

func Load(configPath string) (*AppConfig, error) {
	viper.SetConfigFile(configPath)

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	config := &AppConfig{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		if err := viper.Unmarshal(config); err != nil {
			zap.L().Error("failed to reload config", zap.String("file", e.Name), zap.Error(err))
			return
		}
		zap.L().Info("config reloaded", zap.String("file", e.Name))
	})
	viper.WatchConfig()

	return config, nil
}
