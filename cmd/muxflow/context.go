package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/mux-flow/internal/config"
	"github.com/nguyentantai21042004/mux-flow/internal/logger"
	"github.com/nguyentantai21042004/mux-flow/pkg/executor"
)

const defaultConfigHint = config.DefaultPath + " if present"

// commandContext carries persistent flag values and builds the objects
// shared by subcommands.
type commandContext struct {
	configPath string
	envFile    string
	dir        string
	output     string
	ffmpeg     string
	language   string
	logLevel   string
}

// loadConfig layers defaults, file, environment and flags, then validates.
func (c *commandContext) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOptional(c.configPath)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(cfg, c.envFile); err != nil {
		return nil, err
	}

	overrides := []struct {
		flag string
		dst  *string
	}{
		{c.dir, &cfg.Paths.Source},
		{c.output, &cfg.Paths.Output},
		{c.ffmpeg, &cfg.FFmpeg.BinaryPath},
		{c.language, &cfg.FFmpeg.Language},
		{c.logLevel, &cfg.Logging.Level},
	}
	for _, o := range overrides {
		if o.flag != "" {
			*o.dst = o.flag
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

func withNewRunID(ctx context.Context) context.Context {
	return logger.WithRunID(ctx, uuid.NewString()[:8])
}

// checkFFmpeg fails fast when the configured binary cannot be resolved.
func checkFFmpeg(exec executor.Executor, cfg *config.Config) (string, error) {
	path, err := exec.LookPath(cfg.FFmpeg.BinaryPath)
	if err != nil {
		return "", fmt.Errorf("ffmpeg not available: %w", err)
	}
	return path, nil
}
