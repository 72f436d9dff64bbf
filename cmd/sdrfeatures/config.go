package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sdrkit/sdrfeatures"
	"github.com/spf13/viper"
)

// Config holds the host-level settings the detector needs. Precedence:
// defaults < config file (~/.config/sdrfeatures/config.yaml or ./config.yaml)
// < SDRFEATURES_* environment.
type Config struct {
	// TempDir is the scratch working directory for probed commands.
	TempDir string `mapstructure:"temp_dir"`
	// CodecServer is the codecserver address for the AMBE check. An
	// address containing a path separator is treated as a unix socket.
	CodecServer string `mapstructure:"codec_server"`
	// ProbeTimeout is the wait window of the probe kill protocol.
	ProbeTimeout time.Duration `mapstructure:"probe_timeout"`
	// CacheTTL is how long probe results are trusted.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
}

func loadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("temp_dir", os.TempDir())
	v.SetDefault("probe_timeout", sdrfeatures.DefaultProbeTimeout)
	v.SetDefault("cache_ttl", sdrfeatures.DefaultCacheTTL)
	v.SetDefault("log_level", "info")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "sdrfeatures"))
	}
	v.AddConfigPath(".")
	v.SetEnvPrefix("SDRFEATURES")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// detectorOptions translates the config into detector options.
func (c Config) detectorOptions(logger *log.Logger) []sdrfeatures.Option {
	opts := []sdrfeatures.Option{
		sdrfeatures.WithTempDir(c.TempDir),
		sdrfeatures.WithProbeTimeout(c.ProbeTimeout),
		sdrfeatures.WithLogger(logger),
		sdrfeatures.WithCache(sdrfeatures.NewCache(sdrfeatures.WithTTL(c.CacheTTL))),
	}
	if c.CodecServer != "" {
		opts = append(opts, sdrfeatures.WithCodecServer(c.CodecServer))
	}
	return opts
}

func newLogger(cfg Config) *log.Logger {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
}
