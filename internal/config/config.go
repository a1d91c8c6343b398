package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "APP"

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Push     *PushConfig     `mapstructure:"push"`
	Orders   *OrdersConfig   `mapstructure:"orders"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
	JWTSigningKey      string   `mapstructure:"jwt_signing_key"`
	// ClientURL is the customer ordering app that table links point to.
	ClientURL string `mapstructure:"client_url"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

type PushConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// CredentialsBase64 is the Firebase service account JSON, base64 encoded.
	CredentialsBase64 string `mapstructure:"credentials_base64"`
	Concurrency       int    `mapstructure:"concurrency"`
}

type OrdersConfig struct {
	// TimeZone is the IANA zone used for day and month order listings.
	TimeZone string `mapstructure:"time_zone"`
}

// Load reads the YAML file at path. Every key can be overridden by an
// environment variable such as APP_API_PORT for api.port.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("push.credentials_base64", envPrefix+"_PUSH_CREDENTIALS_BASE64", "FIREBASE_SERVICE_ACCOUNT_BASE64"); err != nil {
		return nil, fmt.Errorf("v.BindEnv -> %w", err)
	}
	if err := v.BindEnv("api.port", envPrefix+"_API_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("v.BindEnv -> %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if err := conf.validate(); err != nil {
		return nil, err
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Warn("config file changed, restart to apply",
			zap.String("file", e.Name),
			zap.String("op", e.Op.String()))
	})
	v.WatchConfig()

	return conf, nil
}

func (c *AppConfig) validate() error {
	if c.API == nil || c.Gin == nil || c.Postgres == nil {
		return fmt.Errorf("config is missing one of the api, gin or postgres sections")
	}
	if c.API.JWTSigningKey == "" {
		return fmt.Errorf("api.jwt_signing_key must be set")
	}
	if c.Push == nil {
		c.Push = &PushConfig{}
	}
	if c.Orders == nil {
		c.Orders = &OrdersConfig{}
	}

	return nil
}
