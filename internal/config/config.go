package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Transport names accepted by the server configuration.
const (
	TransportStreamableHTTP = "streamable-http"
	TransportSSE            = "sse"
	TransportStdio          = "stdio"
)

// Config is the top-level configuration for stackmcp. Credentials are not
// part of it; they are resolved separately and never written to disk by
// this program.
type Config struct {
	Server ServerConfig `yaml:"server"`
}

// ServerConfig configures the MCP serving surface.
type ServerConfig struct {
	Host       string `yaml:"host,omitempty" env:"STACKMCP_HOST"`
	Port       int    `yaml:"port,omitempty" env:"STACKMCP_PORT"`
	Transport  string `yaml:"transport,omitempty" env:"STACKMCP_TRANSPORT"`
	ToolPrefix string `yaml:"toolPrefix,omitempty" env:"STACKMCP_TOOL_PREFIX"`
	BaseURL    string `yaml:"baseURL,omitempty" env:"STACKMCP_BASE_URL"`
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:       "localhost",
			Port:       8587,
			Transport:  TransportStreamableHTTP,
			ToolPrefix: "stackhost_",
		},
	}
}

// Load builds the effective configuration: defaults, overridden by the
// yaml file at path (ignored when path is empty or the file is absent),
// overridden by environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// Missing file falls back to defaults.
		default:
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg.Server); err != nil {
		return Config{}, fmt.Errorf("parsing environment overrides: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Server.Transport {
	case TransportStreamableHTTP, TransportSSE, TransportStdio:
	default:
		return fmt.Errorf("unknown transport %q", c.Server.Transport)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	return nil
}
