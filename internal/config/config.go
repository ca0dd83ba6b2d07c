package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Kodylow/botimint/internal/util"
)

// Environment keys. The same names are accepted in the .env file.
const (
	KeyDiscordToken       = "DISCORD_CLIENT_TOKEN"
	KeyGuildID            = "GUILD_ID"
	KeyRPCPath            = "CLN_RPC_PATH"
	KeyLogLevel           = "BOTIMINT_LOG_LEVEL"
	KeyMetricsAddr        = "BOTIMINT_METRICS_ADDR"
	KeyPublishConcurrency = "BOTIMINT_PUBLISH_CONCURRENCY"
	KeyStateDir           = "BOTIMINT_STATE_DIR"
)

const (
	DefaultLogLevel           = "info"
	DefaultPublishConcurrency = 4
	DefaultEnvFile            = ".env"

	MaxPublishConcurrency = 32
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

type Config struct {
	DiscordToken       string
	GuildID            string
	RPCPath            string
	StateDir           string
	LogPath            string
	ReportPath         string
	LogLevel           string
	MetricsAddr        string
	PublishConcurrency int
}

func Default(baseDir string) *Config {
	if baseDir == "" {
		baseDir = DefaultStateDir()
	}
	return &Config{
		StateDir:           baseDir,
		LogPath:            filepath.Join(baseDir, "botimint.log"),
		ReportPath:         filepath.Join(baseDir, "startup-report.json"),
		LogLevel:           DefaultLogLevel,
		PublishConcurrency: DefaultPublishConcurrency,
	}
}

// Load builds a Config from the environment and an optional dotenv file.
// Process environment wins over the file. A missing envFile is ignored
// unless required is set.
func Load(envFile string, required bool) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyPublishConcurrency, DefaultPublishConcurrency)

	if envFile != "" {
		if util.FileExists(envFile) {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read %s: %w", envFile, err)
			}
		} else if required {
			return nil, fmt.Errorf("env file %s: not found", envFile)
		}
	}

	cfg := Default(v.GetString(KeyStateDir))
	cfg.DiscordToken = v.GetString(KeyDiscordToken)
	cfg.GuildID = v.GetString(KeyGuildID)
	cfg.RPCPath = v.GetString(KeyRPCPath)
	cfg.LogLevel = strings.ToLower(v.GetString(KeyLogLevel))
	cfg.MetricsAddr = v.GetString(KeyMetricsAddr)
	cfg.PublishConcurrency = v.GetInt(KeyPublishConcurrency)
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.RPCPath == "" {
		return fmt.Errorf("%s is required", KeyRPCPath)
	}
	if c.StateDir == "" {
		return errors.New("state directory is required")
	}
	if c.LogPath == "" {
		return errors.New("log path is required")
	}
	if !validLogLevel(c.LogLevel) {
		return fmt.Errorf("invalid log level %q: want one of %s", c.LogLevel, strings.Join(validLogLevels, ", "))
	}
	if c.PublishConcurrency < 1 || c.PublishConcurrency > MaxPublishConcurrency {
		return fmt.Errorf("publish concurrency must be in range 1-%d", MaxPublishConcurrency)
	}
	return nil
}

// ValidateForRun also requires the chat credentials needed to start the bot.
func (c *Config) ValidateForRun() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DiscordToken == "" {
		return fmt.Errorf("%s is required", KeyDiscordToken)
	}
	return nil
}

func validLogLevel(level string) bool {
	for _, l := range validLogLevels {
		if l == level {
			return true
		}
	}
	return false
}

// DefaultStateDir returns the XDG-compliant state directory for botimint.
// Precedence: BOTIMINT_STATE_DIR > XDG_STATE_HOME/botimint > ~/.local/state/botimint
func DefaultStateDir() string {
	if d := os.Getenv(KeyStateDir); d != "" {
		return d
	}
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "botimint")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".local", "state", "botimint")
	}
	return filepath.Join(home, ".local", "state", "botimint")
}
