package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// clearEnv blanks every key Load reads. Empty values count as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{KeyDiscordToken, KeyGuildID, KeyRPCPath, KeyLogLevel, KeyMetricsAddr, KeyPublishConcurrency, KeyStateDir} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := Default(tmpDir)

	if cfg.StateDir != tmpDir {
		t.Errorf("StateDir = %v, want %v", cfg.StateDir, tmpDir)
	}
	if want := filepath.Join(tmpDir, "botimint.log"); cfg.LogPath != want {
		t.Errorf("LogPath = %v, want %v", cfg.LogPath, want)
	}
	if want := filepath.Join(tmpDir, "startup-report.json"); cfg.ReportPath != want {
		t.Errorf("ReportPath = %v, want %v", cfg.ReportPath, want)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.PublishConcurrency != DefaultPublishConcurrency {
		t.Errorf("PublishConcurrency = %v, want %v", cfg.PublishConcurrency, DefaultPublishConcurrency)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config passes",
			setup:   func(c *Config) {},
			wantErr: false,
		},
		{
			name: "missing rpc path fails",
			setup: func(c *Config) {
				c.RPCPath = ""
			},
			wantErr: true,
		},
		{
			name: "unknown log level fails",
			setup: func(c *Config) {
				c.LogLevel = "verbose"
			},
			wantErr: true,
		},
		{
			name: "zero publish concurrency fails",
			setup: func(c *Config) {
				c.PublishConcurrency = 0
			},
			wantErr: true,
		},
		{
			name: "excessive publish concurrency fails",
			setup: func(c *Config) {
				c.PublishConcurrency = MaxPublishConcurrency + 1
			},
			wantErr: true,
		},
		{
			name: "missing token is fine outside run",
			setup: func(c *Config) {
				c.DiscordToken = ""
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default(t.TempDir())
			cfg.RPCPath = "/run/lightning/lightning-rpc"
			tt.setup(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateForRunRequiresToken(t *testing.T) {
	cfg := Default(t.TempDir())
	cfg.RPCPath = "/run/lightning/lightning-rpc"

	err := cfg.ValidateForRun()
	if err == nil || !strings.Contains(err.Error(), KeyDiscordToken) {
		t.Fatalf("ValidateForRun() error = %v, want mention of %s", err, KeyDiscordToken)
	}

	cfg.DiscordToken = "token"
	if err := cfg.ValidateForRun(); err != nil {
		t.Errorf("ValidateForRun() error = %v", err)
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := strings.Join([]string{
		KeyDiscordToken + "=file-token",
		KeyGuildID + "=1234",
		KeyRPCPath + "=/from/file",
		KeyLogLevel + "=DEBUG",
		KeyStateDir + "=" + dir,
	}, "\n") + "\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(envFile, true)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DiscordToken != "file-token" {
		t.Errorf("DiscordToken = %q, want %q", cfg.DiscordToken, "file-token")
	}
	if cfg.GuildID != "1234" {
		t.Errorf("GuildID = %q, want %q", cfg.GuildID, "1234")
	}
	if cfg.RPCPath != "/from/file" {
		t.Errorf("RPCPath = %q, want %q", cfg.RPCPath, "/from/file")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.StateDir != dir {
		t.Errorf("StateDir = %q, want %q", cfg.StateDir, dir)
	}
	if cfg.PublishConcurrency != DefaultPublishConcurrency {
		t.Errorf("PublishConcurrency = %d, want default", cfg.PublishConcurrency)
	}
}

func TestLoadEnvironmentWinsOverFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte(KeyRPCPath+"=/from/file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(KeyRPCPath, "/from/env")
	t.Setenv(KeyPublishConcurrency, "8")

	cfg, err := Load(envFile, true)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.RPCPath != "/from/env" {
		t.Errorf("RPCPath = %q, want %q", cfg.RPCPath, "/from/env")
	}
	if cfg.PublishConcurrency != 8 {
		t.Errorf("PublishConcurrency = %d, want 8", cfg.PublishConcurrency)
	}
}

func TestLoadMissingEnvFile(t *testing.T) {
	clearEnv(t)
	missing := filepath.Join(t.TempDir(), "nope.env")

	if _, err := Load(missing, false); err != nil {
		t.Errorf("Load(optional) error = %v, want nil", err)
	}
	if _, err := Load(missing, true); err == nil {
		t.Error("Load(required) error = nil, want error")
	}
}

func TestDefaultStateDir(t *testing.T) {
	t.Run("explicit env wins", func(t *testing.T) {
		t.Setenv(KeyStateDir, "/custom/state")
		if got := DefaultStateDir(); got != "/custom/state" {
			t.Errorf("DefaultStateDir() = %q, want %q", got, "/custom/state")
		}
	})

	t.Run("xdg state home", func(t *testing.T) {
		t.Setenv(KeyStateDir, "")
		t.Setenv("XDG_STATE_HOME", "/xdg")
		if got := DefaultStateDir(); got != filepath.Join("/xdg", "botimint") {
			t.Errorf("DefaultStateDir() = %q, want %q", got, filepath.Join("/xdg", "botimint"))
		}
	})
}
