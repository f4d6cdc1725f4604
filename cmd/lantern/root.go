package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	ctx := newCommandContext()

	rootCmd := &cobra.Command{
		Use:           "lantern",
		Short:         "Render structured log events for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if ctx.logFlag == "" {
				ctx.logFlag = os.Getenv("LANTERN_LOG")
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&ctx.quietFlag, "quiet", "q", "Decrease logging verbosity; repeatable")
	flags.CountVarP(&ctx.verboseFlag, "verbose", "v", "Increase logging verbosity; repeatable")
	flags.StringVarP(&ctx.logFlag, "log", "l", "", "Logging filters in env_logger format (env LANTERN_LOG)")
	flags.StringVarP(&ctx.configFlag, "config", "c", "", "Configuration file path")
	flags.StringVar(&ctx.colorFlag, "color", "", "Color output: auto, always, or never")

	rootCmd.AddCommand(newDemoCommand(ctx))
	rootCmd.AddCommand(newLevelsCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
