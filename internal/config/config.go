package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"jiramcp/internal/logging"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const APP_NAME = "jiramcp" // application name used for config directory

// Supported jira-cli authentication types.
const (
	AuthBearer   = "bearer"
	AuthBasic    = "basic"
	AuthPassword = "password"
)

// DefaultTimeout bounds every jira-cli invocation.
const DefaultTimeout = 20 * time.Second

// Config is the configuration value object built once at startup and passed
// by reference into the executor. Credentials are read from the environment
// and never written back to disk; the jira-cli config file itself is owned
// entirely by jira-cli.
type Config struct {
	// APIToken is the Jira credential forwarded to jira-cli via the
	// process environment.
	APIToken string
	// AuthType is one of bearer, basic or password.
	AuthType string
	// CLIPath is the jira-cli executable, a bare name resolved on PATH or
	// an absolute path.
	CLIPath string
	// Timeout bounds a single jira-cli invocation.
	Timeout time.Duration
}

// fileConfig is the optional YAML file at the XDG config path. It only holds
// non-secret operational settings; tokens stay in the environment.
type fileConfig struct {
	CLIPath        string `yaml:"cli_path"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// ConfigPath returns the standard config file path for the current platform
func ConfigPath() string {
	return filepath.Join(xdg.ConfigHome, APP_NAME, "config.yaml")
}

// Load assembles the configuration from, in increasing precedence: built-in
// defaults, the optional YAML file, the optional .env file, and environment
// variables. It fails when the credential or auth type is missing or invalid
// so the server refuses to start misconfigured rather than failing on the
// first tool call.
func Load(logger *logging.AppLogger) (*Config, error) {
	// A .env file next to the working directory is a convenience for hosts
	// that launch the server without an environment of their own.
	if err := godotenv.Load(); err == nil {
		logger.Debug("Loaded environment from .env file")
	}

	cfg := &Config{
		CLIPath: "jira",
		Timeout: DefaultTimeout,
	}

	if path := ConfigPath(); fileExists(path) {
		fc, err := loadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if fc.CLIPath != "" {
			cfg.CLIPath = fc.CLIPath
		}
		if fc.TimeoutSeconds > 0 {
			cfg.Timeout = time.Duration(fc.TimeoutSeconds) * time.Second
		}
		logger.Debug("Applied config file", "path", path)
	}

	// jira-cli's own environment variable wins; JIRA_API_KEY is accepted as
	// an alias for hosts configured with the older name.
	cfg.APIToken = os.Getenv("JIRA_API_TOKEN")
	if cfg.APIToken == "" {
		cfg.APIToken = os.Getenv("JIRA_API_KEY")
	}
	cfg.AuthType = strings.ToLower(os.Getenv("JIRA_AUTH_TYPE"))
	if p := os.Getenv("JIRA_CLI_PATH"); p != "" {
		cfg.CLIPath = p
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("Configuration loaded", "cli_path", cfg.CLIPath, "auth_type", cfg.AuthType, "timeout", cfg.Timeout)
	return cfg, nil
}

// Validate checks the fields the server cannot run without.
func (c *Config) Validate() error {
	if c.APIToken == "" {
		return fmt.Errorf("JIRA_API_TOKEN must be set for jira-cli, the dependent tool this MCP server uses; see the README for setup instructions")
	}
	switch c.AuthType {
	case AuthBearer, AuthBasic, AuthPassword:
	case "":
		return fmt.Errorf("JIRA_AUTH_TYPE must be set to one of: bearer, basic, password")
	default:
		return fmt.Errorf("unsupported JIRA_AUTH_TYPE %q, expected one of: bearer, basic, password", c.AuthType)
	}
	if c.CLIPath == "" {
		return fmt.Errorf("jira-cli path cannot be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("command timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

func loadFile(path string) (*fileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	var fc fileConfig
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &fc, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
