package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/mux-flow/internal/config"
	"github.com/nguyentantai21042004/mux-flow/internal/lock"
	"github.com/nguyentantai21042004/mux-flow/internal/logger"
	"github.com/nguyentantai21042004/mux-flow/internal/media"
	"github.com/nguyentantai21042004/mux-flow/internal/processor"
	"github.com/nguyentantai21042004/mux-flow/internal/scanner"
	"github.com/nguyentantai21042004/mux-flow/internal/watcher"
	"github.com/nguyentantai21042004/mux-flow/pkg/executor"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the directory and mux pairs as they arrive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.ValidateWatch(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			log := logger.New(cfg.Logging.Level)
			watchCtx, cancel := signalContext(cmd.Context())
			defer cancel()

			err = watchDir(watchCtx, cfg, executor.New(), log, func(report media.Report) {
				fmt.Fprintln(cmd.OutOrStdout(), renderReport(report))
			})
			if errors.Is(err, context.Canceled) {
				log.Info(watchCtx, "Shutdown signal received")
				return nil
			}
			return err
		},
	}
}

// watchDir holds the directory lock for the whole session and runs the
// processor whenever the watcher settles.
func watchDir(ctx context.Context, cfg *config.Config, exec executor.Executor, log logger.Logger, onReport func(media.Report)) error {
	fail := func(err error) error {
		log.Error(ctx, "%v. Exiting...", err)
		return &reportedError{err: err}
	}

	if _, err := checkFFmpeg(exec, cfg); err != nil {
		return fail(err)
	}

	dirLock := lock.New(cfg.Paths.Source)
	if err := dirLock.Acquire(); err != nil {
		return fail(err)
	}
	defer func() {
		if err := dirLock.Release(); err != nil {
			log.Warn(ctx, "Failed to release lock: %v", err)
		}
	}()

	proc := processor.New(cfg, exec, log)
	handler := func(ctx context.Context, dir string) error {
		runCtx := withNewRunID(ctx)
		report, err := proc.Process(runCtx, dir)
		if len(report.Outcomes) > 0 && onReport != nil {
			onReport(report)
		}
		if errors.Is(err, scanner.ErrCountMismatch) {
			log.Info(runCtx, "Waiting for matching files: %v", err)
			return nil
		}
		return err
	}

	w, err := watcher.New(cfg.Paths.Source, handler, log, cfg.Watch.Settle)
	if err != nil {
		return fail(err)
	}
	defer w.Stop()

	if err := w.Start(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fail(err)
	}
	return nil
}
