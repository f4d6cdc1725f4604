package main

import (
	"time"

	"github.com/spf13/cobra"

	"lantern/internal/logging"
)

func newDemoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Emit sample events through the formatting pipeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, registry, decision, err := ctx.setupLogging()
			if err != nil {
				return err
			}
			if decision.Explicit() {
				logger.Info("filter expression active", logging.F("filter", decision.Filter))
			}

			logger.Info("starting up", logging.F("pid", 4242))

			startup := registry.Start("startup", "")
			logger.Debug("loading configuration", logging.F("path", "~/.config/lantern/config.toml"))

			scan := registry.Start("scan", startup.ID)
			logger.Trace("walking tree", logging.F("dir", "/var/lib/lantern"))
			logger.Warn("skipping unreadable entry",
				logging.F("path", "/var/lib/lantern/locked"),
				logging.F("elapsed", 120*time.Millisecond))
			registry.End(scan.ID)
			registry.End(startup.ID)

			logger.Error("demo failure", logging.F("attempts", 3))
			return nil
		},
	}
}
