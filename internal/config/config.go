package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Env         string        `mapstructure:"ENV"`
	Port        string        `mapstructure:"PORT"`
	LogLevel    string        `mapstructure:"LOG_LEVEL"`
	CORSAllowed string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	AdminKey    string        `mapstructure:"ADMIN_KEY"`
	Timezone    string        `mapstructure:"TIMEZONE" validate:"required"`
	RosterFile  string        `mapstructure:"ROSTER_FILE" validate:"required"`
	HTTPTimeout time.Duration `mapstructure:"HTTP_TIMEOUT"`

	// W2W_TOKEN is sent as-is, so it keeps any "Bearer " prefix the tenant
	// expects. EN_TOKEN is a bare token; the EN client adds the prefix.
	W2WBaseURL string `mapstructure:"W2W_BASE_URL" validate:"required,url"`
	W2WToken   string `mapstructure:"W2W_TOKEN" validate:"required"`
	ENBaseURL  string `mapstructure:"EN_BASE_URL" validate:"required,url"`
	ENToken    string `mapstructure:"EN_TOKEN" validate:"required"`
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	_ = v.ReadInConfig()

	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("TIMEZONE", "America/Chicago")
	v.SetDefault("ROSTER_FILE", "roster.yaml")
	v.SetDefault("HTTP_TIMEOUT", "60s")
	v.SetDefault("W2W_BASE_URL", "https://www4.whentowork.com/cgi-bin/w2wD.dll/api")
	v.SetDefault("EN_BASE_URL", "https://app.emergencynetworking.com/department-api")
	// Empty defaults register the env-only keys so Unmarshal sees them;
	// validation rejects them when they stay empty.
	v.SetDefault("W2W_TOKEN", "")
	v.SetDefault("EN_TOKEN", "")
	v.SetDefault("ADMIN_KEY", "")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
