// Package config reads the backend configuration from the environment,
// an optional .env file and an optional config file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrAPIURLMissing     = errors.New("environment variable API_URL must be set")
	ErrAuthSecretMissing = errors.New("environment variable AUTH_SECRET must be set")
)

type Config struct {
	APIURL           *url.URL
	GinMode          string
	LogFormat        string
	CORSAllowOrigins []string
	EnablePprof      bool
	DBPath           string
	AuthSecret       string
	AuthTokenTTL     time.Duration
	Locale           string
	Port             int
}

// Load reads the configuration.
//
// Values from the environment take precedence over the config file. If
// path is empty, "config.yaml" in the working directory is read if it exists.
// A .env file in the working directory is loaded into the environment
// first, it never overrides variables that are already set.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("gin_mode", "release")
	v.SetDefault("db_path", "data/ledgerbook.db")
	v.SetDefault("auth_token_ttl", "8h")
	v.SetDefault("locale", "th")
	v.SetDefault("port", 8080)
	v.AutomaticEnv()

	if path == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	c := Config{
		GinMode:          v.GetString("gin_mode"),
		LogFormat:        v.GetString("log_format"),
		CORSAllowOrigins: strings.Fields(v.GetString("cors_allow_origins")),
		EnablePprof:      v.GetBool("enable_pprof"),
		DBPath:           v.GetString("db_path"),
		AuthSecret:       v.GetString("auth_secret"),
		AuthTokenTTL:     v.GetDuration("auth_token_ttl"),
		Locale:           v.GetString("locale"),
		Port:             v.GetInt("port"),
	}

	apiURL := v.GetString("api_url")
	if apiURL == "" {
		return Config{}, ErrAPIURLMissing
	}

	u, err := url.Parse(apiURL)
	if err != nil {
		return Config{}, fmt.Errorf("environment variable API_URL must be a valid URL: %w", err)
	}
	c.APIURL = u

	if c.GinMode != "debug" && c.GinMode != "release" && c.GinMode != "test" {
		return Config{}, fmt.Errorf("GIN_MODE must be one of debug, release or test, got '%s'", c.GinMode)
	}

	if c.AuthSecret == "" {
		return Config{}, ErrAuthSecretMissing
	}

	if c.AuthTokenTTL <= 0 {
		return Config{}, fmt.Errorf("AUTH_TOKEN_TTL must be a positive duration, got '%s'", v.GetString("auth_token_ttl"))
	}

	return c, nil
}
