package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/mux-flow/internal/language"
)

type Config struct {
	Paths   PathsConfig   `yaml:"paths"`
	FFmpeg  FFmpegConfig  `yaml:"ffmpeg"`
	Logging LoggingConfig `yaml:"logging"`
	Watch   WatchConfig   `yaml:"watch"`

	// DryRun is set from the command line only.
	DryRun bool `yaml:"-"`
}

type PathsConfig struct {
	Source string `yaml:"source"`
	Output string `yaml:"output"`
}

type FFmpegConfig struct {
	BinaryPath    string `yaml:"binary_path"`
	Language      string `yaml:"language"`
	SubtitleCodec string `yaml:"subtitle_codec"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type WatchConfig struct {
	Settle time.Duration `yaml:"settle"`
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Paths.Source) == "" {
		return fmt.Errorf("paths.source is required")
	}
	if c.Watch.Settle < 0 {
		return fmt.Errorf("watch.settle must not be negative")
	}

	if c.Paths.Output == "" {
		c.Paths.Output = c.Paths.Source
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.Language == "" {
		c.FFmpeg.Language = "eng"
	}
	if c.FFmpeg.SubtitleCodec == "" {
		c.FFmpeg.SubtitleCodec = "mov_text"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Watch.Settle == 0 {
		c.Watch.Settle = 2 * time.Second
	}

	lang, err := language.ToISO3(c.FFmpeg.Language)
	if err != nil {
		return fmt.Errorf("ffmpeg.language: %w", err)
	}
	c.FFmpeg.Language = lang

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}

	return nil
}

// ValidateWatch checks the extra constraints of watch mode. Muxed files must
// land outside the watched directory or they would be picked up again.
func (c *Config) ValidateWatch() error {
	src, err := filepath.Abs(c.Paths.Source)
	if err != nil {
		return fmt.Errorf("resolve paths.source: %w", err)
	}
	out, err := filepath.Abs(c.Paths.Output)
	if err != nil {
		return fmt.Errorf("resolve paths.output: %w", err)
	}
	if src == out {
		return fmt.Errorf("watch mode requires paths.output to differ from paths.source")
	}
	return nil
}

// InPlace reports whether muxed files are written next to their sources.
func (c *Config) InPlace() bool {
	return filepath.Clean(c.Paths.Source) == filepath.Clean(c.Paths.Output)
}
