package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvSupabaseURL            = "SUPABASE_URL"
	EnvSupabaseServiceRoleKey = "SUPABASE_SERVICE_ROLE_KEY"
)

// Source looks up configuration values by name.
type Source interface {
	Lookup(name string) (string, bool)
}

// EnvSource reads from the process environment.
type EnvSource struct{}

func (EnvSource) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// MapSource is a fixed set of values, handy in tests.
type MapSource map[string]string

func (m MapSource) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// LoadDotenv loads .env files into the process environment if they exist.
// Variables that are already set win over file values.
func LoadDotenv(paths ...string) {
	// Missing files are fine, the environment may be set by the deployment
	_ = godotenv.Load(paths...)
}

// ReadDotenv parses a dotenv file without touching the process environment.
func ReadDotenv(path string) (MapSource, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dotenv file %s: %w", path, err)
	}
	return MapSource(values), nil
}

// Get returns the value of a required variable. Unset and empty values are
// both reported as *MissingConfigurationError. The value is returned as is.
func Get(src Source, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("config: variable name must not be empty")
	}
	v, ok := src.Lookup(name)
	if !ok || v == "" {
		return "", &MissingConfigurationError{Name: name}
	}
	return v, nil
}

// GetOr returns the value of an optional variable or fallback when it is unset or empty.
func GetOr(src Source, name, fallback string) string {
	if v, ok := src.Lookup(name); ok && v != "" {
		return v
	}
	return fallback
}

type Config struct {
	ServerPort       string
	CORSAllowOrigins []string

	Log struct {
		Level  string
		Format string
	}

	Supabase struct {
		URL            string
		ServiceRoleKey string
	}
}

func Load(src Source) (*Config, error) {
	cfg := &Config{}

	supabaseURL, err := Get(src, EnvSupabaseURL)
	if err != nil {
		return nil, err
	}
	serviceRoleKey, err := Get(src, EnvSupabaseServiceRoleKey)
	if err != nil {
		return nil, err
	}
	cfg.Supabase.URL = supabaseURL
	cfg.Supabase.ServiceRoleKey = serviceRoleKey

	cfg.ServerPort = GetOr(src, "SERVER_PORT", "8080")
	cfg.CORSAllowOrigins = splitList(GetOr(src, "CORS_ALLOW_ORIGINS", "http://localhost:3000"))

	cfg.Log.Level = GetOr(src, "LOG_LEVEL", "info")
	cfg.Log.Format = GetOr(src, "LOG_FORMAT", "text")
	if cfg.Log.Format != "text" && cfg.Log.Format != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.Log.Format)
	}

	return cfg, nil
}

// String describes the config without the service role key.
func (c *Config) String() string {
	return fmt.Sprintf("port=%s supabase_url=%s cors=%v log_level=%s log_format=%s",
		c.ServerPort, c.Supabase.URL, c.CORSAllowOrigins, c.Log.Level, c.Log.Format)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
