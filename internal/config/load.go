package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is given explicitly.
const DefaultPath = "muxflow.yaml"

// Environment variables that override file values.
const (
	EnvSource   = "MUXFLOW_SOURCE"
	EnvOutput   = "MUXFLOW_OUTPUT"
	EnvFFmpeg   = "MUXFLOW_FFMPEG"
	EnvLanguage = "MUXFLOW_LANGUAGE"
	EnvLogLevel = "MUXFLOW_LOG_LEVEL"
)

// Load reads and parses a YAML config file. Validation is left to the
// caller so flag overrides can be applied first.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// LoadOptional behaves like Load but returns an empty Config when path is
// the default and does not exist.
func LoadOptional(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	cfg, err := Load(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv loads envFile (if present) into the process environment and
// copies MUXFLOW_* variables over cfg. Existing environment wins over the
// file.
func ApplyEnv(cfg *Config, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load env file: %w", err)
		}
	}

	overrides := []struct {
		key string
		dst *string
	}{
		{EnvSource, &cfg.Paths.Source},
		{EnvOutput, &cfg.Paths.Output},
		{EnvFFmpeg, &cfg.FFmpeg.BinaryPath},
		{EnvLanguage, &cfg.FFmpeg.Language},
		{EnvLogLevel, &cfg.Logging.Level},
	}
	for _, o := range overrides {
		if v, ok := os.LookupEnv(o.key); ok && v != "" {
			*o.dst = v
		}
	}

	return nil
}
