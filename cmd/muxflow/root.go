package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "muxflow",
		Short:         "Mux video and subtitle pairs with ffmpeg",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&ctx.configPath, "config", "c", "", "Configuration file path (default "+defaultConfigHint+")")
	flags.StringVar(&ctx.envFile, "env-file", ".env", "Environment file with MUXFLOW_* overrides")
	flags.StringVarP(&ctx.dir, "dir", "d", "", "Directory containing the video and subtitle files")
	flags.StringVarP(&ctx.output, "output", "o", "", "Directory for muxed files (default: same as --dir)")
	flags.StringVar(&ctx.ffmpeg, "ffmpeg", "", "ffmpeg binary to run")
	flags.StringVar(&ctx.language, "language", "", "Language tag for the audio and subtitle tracks")
	flags.StringVar(&ctx.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newRunCommand(ctx))
	rootCmd.AddCommand(newWatchCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
