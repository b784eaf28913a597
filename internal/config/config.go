package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".ignite-timer"
	envPrefix  = "IGNITE"

	KeyStateFormat  = "state.format"
	KeyStateDir     = "state.dir"
	KeyStatePath    = "state.path"
	KeyTickInterval = "tick.interval"
	KeyLogLevel     = "log.level"
)

type StateFormat string

const (
	StateFormatJSON StateFormat = "json"
	StateFormatTOML StateFormat = "toml"
)

type Config struct {
	StateFormat  StateFormat
	StateDir     string
	StatePath    string
	TickInterval time.Duration
	LogLevel     slog.Level
}

// Load reads ~/.ignite-timer/config.toml (when present) and IGNITE_*
// environment variables into cfg and returns the resolved settings.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	baseDir := filepath.Join(homeDir, configDir)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(baseDir)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(KeyStateFormat, string(StateFormatJSON))
	cfg.SetDefault(KeyStateDir, baseDir)
	cfg.SetDefault(KeyTickInterval, time.Second)
	cfg.SetDefault(KeyLogLevel, "warn")

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	format := StateFormat(strings.ToLower(strings.TrimSpace(cfg.GetString(KeyStateFormat))))
	switch format {
	case StateFormatJSON, StateFormatTOML:
	default:
		return Config{}, fmt.Errorf("unsupported state format %q", format)
	}

	stateDir := cfg.GetString(KeyStateDir)
	if stateDir == "" {
		return Config{}, errors.New("state dir is empty")
	}

	interval := cfg.GetDuration(KeyTickInterval)
	if interval <= 0 {
		return Config{}, fmt.Errorf("tick interval must be positive, got %s", interval)
	}

	level, err := parseLevel(cfg.GetString(KeyLogLevel))
	if err != nil {
		return Config{}, err
	}

	statePath := cfg.GetString(KeyStatePath)
	if statePath == "" && format == StateFormatTOML {
		statePath = filepath.Join(stateDir, "cycles-state.toml")
		cfg.Set(KeyStatePath, statePath)
	}

	return Config{
		StateFormat:  format,
		StateDir:     stateDir,
		StatePath:    statePath,
		TickInterval: interval,
		LogLevel:     level,
	}, nil
}

func parseLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return 0, fmt.Errorf("parse log level %q: %w", raw, err)
	}

	return level, nil
}
