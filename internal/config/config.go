package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Gemini    GeminiConfig    `yaml:"gemini"`
	Auth      AuthConfig      `yaml:"auth"`
	Database  DatabaseConfig  `yaml:"database"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type GeminiConfig struct {
	APIKey  string   `yaml:"api_key"`
	BaseURL string   `yaml:"base_url"`
	Models  []string `yaml:"models"`
}

type AuthConfig struct {
	// Tokens maps bearer tokens to user identifiers.
	Tokens map[string]string `yaml:"tokens"`
}

// DatabaseConfig is optional; when Host is empty the generation audit
// log is disabled and the server runs storage-free.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// Enabled reports whether a database is configured.
func (d DatabaseConfig) Enabled() bool {
	return d.Host != ""
}

// DSN returns a PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	sslmode := d.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, sslmode)
}

// Load reads config from a YAML file, then applies environment variable
// overrides. Env vars use the prefix SKILLMAX_ and underscore-separated
// paths:
//
//	SKILLMAX_SERVER_HOST, SKILLMAX_SERVER_PORT,
//	SKILLMAX_GEMINI_API_KEY, SKILLMAX_GEMINI_BASE_URL, SKILLMAX_GEMINI_MODELS,
//	SKILLMAX_DB_HOST, SKILLMAX_DB_PORT, SKILLMAX_DB_NAME,
//	SKILLMAX_DB_USER, SKILLMAX_DB_PASSWORD, SKILLMAX_DB_SSLMODE,
//	SKILLMAX_TS_ENABLED, SKILLMAX_TS_HOSTNAME, SKILLMAX_TS_STATE_DIR
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SKILLMAX_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("SKILLMAX_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("SKILLMAX_GEMINI_API_KEY"); v != "" {
		cfg.Gemini.APIKey = v
	}
	if v := os.Getenv("SKILLMAX_GEMINI_BASE_URL"); v != "" {
		cfg.Gemini.BaseURL = v
	}
	if v := os.Getenv("SKILLMAX_GEMINI_MODELS"); v != "" {
		var models []string
		for _, m := range strings.Split(v, ",") {
			if m = strings.TrimSpace(m); m != "" {
				models = append(models, m)
			}
		}
		cfg.Gemini.Models = models
	}
	if v := os.Getenv("SKILLMAX_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("SKILLMAX_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("SKILLMAX_DB_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("SKILLMAX_DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("SKILLMAX_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("SKILLMAX_DB_SSLMODE"); v != "" {
		cfg.Database.SSLMode = v
	}
	if v := os.Getenv("SKILLMAX_TS_ENABLED"); v != "" {
		cfg.Tailscale.Enabled = v == "true" || v == "1"
	}
	if v := os.Getenv("SKILLMAX_TS_HOSTNAME"); v != "" {
		cfg.Tailscale.Hostname = v
	}
	if v := os.Getenv("SKILLMAX_TS_STATE_DIR"); v != "" {
		cfg.Tailscale.StateDir = v
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 && !c.Tailscale.Enabled {
		return fmt.Errorf("server.port is required")
	}
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("gemini.api_key is required")
	}
	if len(c.Auth.Tokens) == 0 {
		return fmt.Errorf("auth.tokens is required")
	}
	if c.Database.Enabled() {
		if c.Database.Port == 0 {
			return fmt.Errorf("database.port is required")
		}
		if c.Database.Name == "" {
			return fmt.Errorf("database.name is required")
		}
		if c.Database.User == "" {
			return fmt.Errorf("database.user is required")
		}
	}
	return nil
}
