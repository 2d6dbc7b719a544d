package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	ierrors "github.com/seidr-ui/seidr/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "seidr.json"

	// DefaultHost is the default server bind host.
	DefaultHost = "127.0.0.1"

	// DefaultPort is the default server port.
	DefaultPort = 8080

	// DefaultLivePath is the default WebSocket endpoint path.
	DefaultLivePath = "/live"

	// DefaultMetricsPath is the default Prometheus endpoint path.
	DefaultMetricsPath = "/metrics"
)

// Config is the seidr.json schema.
type Config struct {
	// Name is the project name, used for logging only.
	Name string `json:"name,omitempty"`

	// Server configures the HTTP listener.
	Server ServerConfig `json:"server,omitempty"`

	// Live configures the WebSocket update stream.
	Live LiveConfig `json:"live,omitempty"`

	// Metrics configures the Prometheus endpoint.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// configPath records where the config was loaded from, empty for
	// defaults.
	configPath string
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host string `json:"host,omitempty"`
	Port int    `json:"port,omitempty"`
}

// LiveConfig configures the WebSocket update stream.
type LiveConfig struct {
	// Enabled controls whether the live endpoint is mounted.
	Enabled *bool  `json:"enabled,omitempty"`
	Path    string `json:"path,omitempty"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled *bool  `json:"enabled,omitempty"`
	Path    string `json:"path,omitempty"`
}

// Default returns the default configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ierrors.Newf(ierrors.CategoryConfig, "reading %s", path).Wrap(err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, ierrors.Newf(ierrors.CategoryConfig, "parsing %s", path).
			Wrap(err).
			WithSuggestion("Check seidr.json for JSON syntax errors")
	}

	cfg.configPath = path
	cfg.applyDefaults()
	cfg.applyEnv()
	return &cfg, nil
}

// LoadFromWorkingDir loads seidr.json from the current directory. A missing
// file is not an error; defaults are returned instead.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, ierrors.Newf(ierrors.CategoryConfig, "resolving working directory").Wrap(err)
	}

	path := filepath.Join(wd, ConfigFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		cfg.applyEnv()
		return cfg, nil
	}
	return Load(path)
}

// Path returns the file the config was loaded from, or empty for defaults.
func (c *Config) Path() string {
	return c.configPath
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// LiveEnabled reports whether the live endpoint should be mounted.
func (c *Config) LiveEnabled() bool {
	return c.Live.Enabled == nil || *c.Live.Enabled
}

// MetricsEnabled reports whether the metrics endpoint should be mounted.
func (c *Config) MetricsEnabled() bool {
	return c.Metrics.Enabled == nil || *c.Metrics.Enabled
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Live.Path == "" {
		c.Live.Path = DefaultLivePath
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
}

// applyEnv applies environment overrides. SEIDR_HOST and SEIDR_PORT take
// precedence over both the file and the defaults.
func (c *Config) applyEnv() {
	if host := os.Getenv("SEIDR_HOST"); host != "" {
		c.Server.Host = host
	}
	if port := os.Getenv("SEIDR_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil && p > 0 {
			c.Server.Port = p
		}
	}
}
