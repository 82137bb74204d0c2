package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/mux-flow/internal/config"
	"github.com/nguyentantai21042004/mux-flow/internal/lock"
	"github.com/nguyentantai21042004/mux-flow/internal/logger"
	"github.com/nguyentantai21042004/mux-flow/internal/processor"
	"github.com/nguyentantai21042004/mux-flow/pkg/executor"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Mux every video/subtitle pair in the directory once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.loadConfig()
			if err != nil {
				return err
			}
			cfg.DryRun = dryRun

			log := logger.New(cfg.Logging.Level)
			runCtx, cancel := signalContext(cmd.Context())
			defer cancel()

			return runOnce(withNewRunID(runCtx), cfg, executor.New(), log, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Log the planned renames and commands without running them")
	return cmd
}

// runOnce performs one locked pass over the source directory and prints the
// summary table. Errors are logged here and returned as reportedError.
func runOnce(ctx context.Context, cfg *config.Config, exec executor.Executor, log logger.Logger, out io.Writer) error {
	fail := func(err error) error {
		log.Error(ctx, "%v. Exiting...", err)
		return &reportedError{err: err}
	}

	if !cfg.DryRun {
		ffmpegPath, err := checkFFmpeg(exec, cfg)
		if err != nil {
			return fail(err)
		}
		log.Debug(ctx, "Using ffmpeg at %s", ffmpegPath)

		dirLock := lock.New(cfg.Paths.Source)
		if err := dirLock.Acquire(); err != nil {
			return fail(err)
		}
		defer func() {
			if err := dirLock.Release(); err != nil {
				log.Warn(ctx, "Failed to release lock: %v", err)
			}
		}()
	}

	report, err := processor.New(cfg, exec, log).Process(ctx, cfg.Paths.Source)
	if len(report.Outcomes) > 0 {
		fmt.Fprintln(out, renderReport(report))
	}
	if err != nil {
		return fail(err)
	}
	return nil
}
