package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"jiramcp/internal/logging"

	"github.com/adrg/xdg"
)

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir()) // keep any real .env out of the test
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()

	t.Setenv("JIRA_API_TOKEN", "secret-token")
	t.Setenv("JIRA_AUTH_TYPE", "bearer")
	t.Setenv("JIRA_CLI_PATH", "/opt/jira-cli/bin/jira")

	logger, _ := logging.NewTestLogger()
	cfg, err := Load(logger)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.APIToken != "secret-token" {
		t.Errorf("APIToken mismatch: got %q", cfg.APIToken)
	}
	if cfg.AuthType != AuthBearer {
		t.Errorf("AuthType mismatch: got %q", cfg.AuthType)
	}
	if cfg.CLIPath != "/opt/jira-cli/bin/jira" {
		t.Errorf("CLIPath mismatch: got %q", cfg.CLIPath)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout mismatch: got %s", cfg.Timeout)
	}
}

func TestLoadAPIKeyAlias(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()

	t.Setenv("JIRA_API_TOKEN", "")
	t.Setenv("JIRA_API_KEY", "aliased-token")
	t.Setenv("JIRA_AUTH_TYPE", "basic")

	logger, _ := logging.NewTestLogger()
	cfg, err := Load(logger)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.APIToken != "aliased-token" {
		t.Errorf("Expected JIRA_API_KEY to be accepted as alias, got %q", cfg.APIToken)
	}
}

func TestLoadMissingCredentials(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()

	t.Setenv("JIRA_API_TOKEN", "")
	t.Setenv("JIRA_API_KEY", "")
	t.Setenv("JIRA_AUTH_TYPE", "bearer")

	logger, _ := logging.NewTestLogger()
	_, err := Load(logger)
	if err == nil {
		t.Fatal("Expected error when JIRA_API_TOKEN is unset")
	}
	if !strings.Contains(err.Error(), "JIRA_API_TOKEN") {
		t.Errorf("Expected error to name the missing variable, got: %v", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	xdg.Reload()

	configDir := filepath.Join(configHome, APP_NAME)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	content := "cli_path: /usr/local/bin/jira\ntimeout_seconds: 45\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv("JIRA_API_TOKEN", "tok")
	t.Setenv("JIRA_AUTH_TYPE", "password")
	t.Setenv("JIRA_CLI_PATH", "")

	logger, _ := logging.NewTestLogger()
	cfg, err := Load(logger)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.CLIPath != "/usr/local/bin/jira" {
		t.Errorf("Expected cli_path from file, got %q", cfg.CLIPath)
	}
	if cfg.Timeout != 45*time.Second {
		t.Errorf("Expected 45s timeout from file, got %s", cfg.Timeout)
	}
}

func TestEnvOverridesConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	xdg.Reload()

	configDir := filepath.Join(configHome, APP_NAME)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("cli_path: /from/file/jira\n"), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv("JIRA_API_TOKEN", "tok")
	t.Setenv("JIRA_AUTH_TYPE", "bearer")
	t.Setenv("JIRA_CLI_PATH", "/from/env/jira")

	logger, _ := logging.NewTestLogger()
	cfg, err := Load(logger)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.CLIPath != "/from/env/jira" {
		t.Errorf("Expected environment to win over config file, got %q", cfg.CLIPath)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid bearer",
			cfg:  Config{APIToken: "t", AuthType: AuthBearer, CLIPath: "jira", Timeout: DefaultTimeout},
		},
		{
			name: "valid basic",
			cfg:  Config{APIToken: "t", AuthType: AuthBasic, CLIPath: "jira", Timeout: DefaultTimeout},
		},
		{
			name: "valid password",
			cfg:  Config{APIToken: "t", AuthType: AuthPassword, CLIPath: "jira", Timeout: DefaultTimeout},
		},
		{
			name:    "missing token",
			cfg:     Config{AuthType: AuthBearer, CLIPath: "jira", Timeout: DefaultTimeout},
			wantErr: "JIRA_API_TOKEN",
		},
		{
			name:    "missing auth type",
			cfg:     Config{APIToken: "t", CLIPath: "jira", Timeout: DefaultTimeout},
			wantErr: "JIRA_AUTH_TYPE",
		},
		{
			name:    "unsupported auth type",
			cfg:     Config{APIToken: "t", AuthType: "oauth", CLIPath: "jira", Timeout: DefaultTimeout},
			wantErr: "unsupported JIRA_AUTH_TYPE",
		},
		{
			name:    "empty cli path",
			cfg:     Config{APIToken: "t", AuthType: AuthBearer, Timeout: DefaultTimeout},
			wantErr: "path cannot be empty",
		},
		{
			name:    "zero timeout",
			cfg:     Config{APIToken: "t", AuthType: AuthBearer, CLIPath: "jira"},
			wantErr: "timeout must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected valid config, got error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	xdg.Reload()

	path := ConfigPath()
	if path != "/custom/config/jiramcp/config.yaml" {
		t.Errorf("Expected /custom/config/jiramcp/config.yaml, got %s", path)
	}
}
