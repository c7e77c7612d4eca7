package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		Driver string
		DSN    string
	}
	API struct {
		// BaseURL is the root the submission client posts to, e.g.
		// "https://theimpacts.agency/api".
		BaseURL string
		Timeout time.Duration
	}
	Log struct {
		Level  string
		Format string
	}
	CORSOrigins     []string
	SessionLifetime time.Duration
	InsecureCookies bool
	PrefsPath       string
}

// Load reads config from environment (IMPACTS_ prefix) and optional impacts.yaml.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("IMPACTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("impacts")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("db.driver", "sqlite3")
	v.SetDefault("db.dsn", "impacts.db")
	v.SetDefault("api.base_url", "http://localhost:8080/api")
	v.SetDefault("api.timeout", "15s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("cors.origins", []string{"https://theimpacts.agency", "https://www.theimpacts.agency"})
	v.SetDefault("session.lifetime", "24h")
	v.SetDefault("prefs.path", defaultPrefsPath())

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.API.BaseURL = strings.TrimRight(v.GetString("api.base_url"), "/")
	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Format = v.GetString("log.format")
	cfg.CORSOrigins = v.GetStringSlice("cors.origins")
	cfg.InsecureCookies = v.GetBool("insecure_cookies")
	cfg.PrefsPath = v.GetString("prefs.path")

	timeout, err := time.ParseDuration(v.GetString("api.timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid IMPACTS_API_TIMEOUT: %w", err)
	}
	cfg.API.Timeout = timeout

	lifetime, err := time.ParseDuration(v.GetString("session.lifetime"))
	if err != nil {
		return nil, fmt.Errorf("invalid IMPACTS_SESSION_LIFETIME: %w", err)
	}
	cfg.SessionLifetime = lifetime

	switch cfg.DB.Driver {
	case "sqlite3", "mysql", "postgres":
	default:
		return nil, fmt.Errorf("IMPACTS_DB_DRIVER must be sqlite3, mysql, or postgres (got %q)", cfg.DB.Driver)
	}
	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("IMPACTS_DB_DSN is required")
	}
	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("IMPACTS_API_BASE_URL is required")
	}
	if !strings.HasPrefix(cfg.API.BaseURL, "http://") && !strings.HasPrefix(cfg.API.BaseURL, "https://") {
		return nil, fmt.Errorf("IMPACTS_API_BASE_URL must be an http(s) URL (got %q)", cfg.API.BaseURL)
	}

	return cfg, nil
}

func defaultPrefsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "impacts-prefs.db"
	}
	return filepath.Join(dir, "impacts", "prefs.db")
}
