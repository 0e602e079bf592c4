// Package config loads tickseq CLI settings from a config file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. TICKSEQ_LOG_LEVEL.
const EnvPrefix = "TICKSEQ"

// ErrUnknownFormat is returned for a log format other than console or json.
var ErrUnknownFormat = errors.New("config: unknown log format")

// Config holds CLI configuration.
type Config struct {
	Log      LogConfig
	Output   OutputConfig
	Sequence SequenceConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// OutputConfig holds where serialized sequences are written.
type OutputConfig struct {
	Dir string
}

// SequenceConfig holds defaults for scripts that leave them out.
type SequenceConfig struct {
	Default string
}

// DefaultPath is ~/.config/tickseq/config.toml.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "tickseq", "config.toml")
}

// Load reads configuration from path, or from TICKSEQ_CONFIG, or from the
// default location when both are empty. A missing default file is not an
// error; a missing explicit file is.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("output.dir", ".")
	v.SetDefault("sequence.default", "STAND_TALL")

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigType("toml")
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes cfg to path, or to DefaultPath when path is empty, creating
// the directory if needed. The format follows the file extension.
func Save(path string, cfg Config) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.format", cfg.Log.Format)
	v.Set("output.dir", cfg.Output.Dir)
	v.Set("sequence.default", cfg.Sequence.Default)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Logger builds a zerolog logger writing to w in the configured format.
func (c LogConfig) Logger(w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}
	switch c.Format {
	case "", "console":
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	case "json":
	default:
		return zerolog.Nop(), fmt.Errorf("%w %q", ErrUnknownFormat, c.Format)
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
