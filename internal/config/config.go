package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the improvdex configuration.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Catalog     CatalogConfig     `yaml:"catalog"`
	Cache       CacheConfig       `yaml:"cache"`
	Preferences PreferencesConfig `yaml:"preferences"`
	Auth        AuthConfig        `yaml:"auth"`
	CORS        CORSConfig        `yaml:"cors"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error (default: determined by env)
	Format string `yaml:"format"` // json, console (default: determined by env)
}

// AuthConfig holds API authentication settings. No keys disables auth.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
	Scope   string   `yaml:"scope"` // writes (default), all
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int    `yaml:"port"`
	ReadTimeoutSec  int    `yaml:"read_timeout_sec"`
	WriteTimeoutSec int    `yaml:"write_timeout_sec"`
	ShutdownSec     int    `yaml:"shutdown_timeout_sec"`
	StaticDir       string `yaml:"static_dir"` // optional browser client served at /
}

// CatalogConfig holds catalog source settings.
type CatalogConfig struct {
	Source      string `yaml:"source"` // file path or http(s) URL
	Format      string `yaml:"format"` // json, yaml (default: from extension)
	Watch       bool   `yaml:"watch"`  // reload on file change, file sources only
	DebounceMS  int    `yaml:"debounce_ms"`
	CacheTTLSec int    `yaml:"cache_ttl_sec"` // TTL of the cached document, 0 = no caching
}

// CacheConfig holds key-value store connection settings.
type CacheConfig struct {
	Driver           string   `yaml:"driver"` // none, valkey, redis (default: none)
	Addrs            []string `yaml:"addrs"`
	Username         string   `yaml:"username"`
	Password         string   `yaml:"password"`
	DB               int      `yaml:"db"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// PreferencesConfig holds theme preference settings.
type PreferencesConfig struct {
	CookieName string `yaml:"cookie_name"`
	TTLDays    int    `yaml:"ttl_days"`
}

// CORSConfig holds cross-origin settings for the browser client.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
	MaxAgeSec      int      `yaml:"max_age_sec"`
}

// Cache drivers.
const (
	DriverNone   = "none"
	DriverValkey = "valkey"
	DriverRedis  = "redis"
)

// Auth scopes.
const (
	AuthScopeWrites = "writes"
	AuthScopeAll    = "all"
)

// IsRemote reports whether the catalog is fetched over HTTP.
func (c CatalogConfig) IsRemote() bool {
	return strings.HasPrefix(c.Source, "http://") || strings.HasPrefix(c.Source, "https://")
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Catalog.DebounceMS <= 0 {
		c.Catalog.DebounceMS = 250
	}
	if c.Cache.Driver == "" {
		c.Cache.Driver = DriverNone
	}
	if c.Cache.ReadinessTimeout <= 0 {
		c.Cache.ReadinessTimeout = 10
	}
	if c.Preferences.CookieName == "" {
		c.Preferences.CookieName = "improvdex_client"
	}
	if c.Preferences.TTLDays <= 0 {
		c.Preferences.TTLDays = 365
	}
	if c.Auth.Scope == "" {
		c.Auth.Scope = AuthScopeWrites
	}
	if c.CORS.MaxAgeSec <= 0 {
		c.CORS.MaxAgeSec = 300
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if strings.TrimSpace(c.Catalog.Source) == "" {
		return fmt.Errorf("catalog.source is required")
	}
	switch c.Catalog.Format {
	case "", "json", "yaml":
	default:
		return fmt.Errorf("catalog.format must be \"json\" or \"yaml\", got %q", c.Catalog.Format)
	}
	if c.Catalog.Watch && c.Catalog.IsRemote() {
		return fmt.Errorf("catalog.watch is only supported for file sources")
	}
	if c.Catalog.CacheTTLSec < 0 {
		return fmt.Errorf("catalog.cache_ttl_sec must not be negative, got %d", c.Catalog.CacheTTLSec)
	}
	switch c.Cache.Driver {
	case DriverNone:
	case DriverValkey, DriverRedis:
		if len(c.Cache.Addrs) == 0 {
			return fmt.Errorf("cache.addrs is required for driver %q", c.Cache.Driver)
		}
	default:
		return fmt.Errorf("cache.driver must be \"none\", \"valkey\" or \"redis\", got %q", c.Cache.Driver)
	}
	switch c.Auth.Scope {
	case AuthScopeWrites, AuthScopeAll:
	default:
		return fmt.Errorf("auth.scope must be \"writes\" or \"all\", got %q", c.Auth.Scope)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
