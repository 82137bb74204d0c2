package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/mux-flow/internal/language"
	"github.com/nguyentantai21042004/mux-flow/pkg/executor"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate configuration and locate ffmpeg",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.loadConfig()
			if err != nil {
				return err
			}

			path, err := checkFFmpeg(executor.New(), cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Setting", "Value"},
				[][]string{
					{"source", cfg.Paths.Source},
					{"output", cfg.Paths.Output},
					{"ffmpeg", path},
					{"language", fmt.Sprintf("%s (%s)", cfg.FFmpeg.Language, language.DisplayName(cfg.FFmpeg.Language))},
					{"subtitle codec", cfg.FFmpeg.SubtitleCodec},
					{"log level", cfg.Logging.Level},
					{"watch settle", cfg.Watch.Settle.String()},
				},
			))
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "muxflow "+version)
		},
	}
}
