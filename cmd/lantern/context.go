package main

import (
	"fmt"

	"lantern/internal/config"
	"lantern/internal/logging"
	"lantern/internal/spans"
)

// commandContext carries flag values and lazily-built collaborators
// shared across subcommands.
type commandContext struct {
	quietFlag   int
	verboseFlag int
	logFlag     string
	configFlag  string
	colorFlag   string

	cfg *config.Config
}

func newCommandContext() *commandContext {
	return &commandContext{}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, _, _, err := config.Load(c.configFlag)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	return cfg, nil
}

// verbosity folds the parsed flags into resolver options. The explicit
// filter comes from --log, LANTERN_LOG, or the config file, in that
// order.
func (c *commandContext) verbosity() logging.VerbosityOptions {
	filter := c.logFlag
	if filter == "" && c.cfg != nil {
		filter = c.cfg.Logging.Filter
	}
	return logging.VerbosityOptions{
		Quiet:   uint(max(c.quietFlag, 0)),
		Verbose: uint(max(c.verboseFlag, 0)),
		Filter:  filter,
	}
}

func (c *commandContext) colorMode() (logging.ColorMode, error) {
	value := c.colorFlag
	if value == "" && c.cfg != nil {
		value = c.cfg.Output.Color
	}
	mode, ok := logging.ParseColorMode(value)
	if !ok {
		return mode, fmt.Errorf("color: unsupported value %q", value)
	}
	return mode, nil
}

// setupLogging resolves verbosity once and installs the formatter over
// stderr, backed by a fresh span registry.
func (c *commandContext) setupLogging() (*logging.Logger, *spans.Registry, logging.Decision, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, logging.Decision{}, err
	}
	mode, err := c.colorMode()
	if err != nil {
		return nil, nil, logging.Decision{}, err
	}

	registry := spans.NewRegistry()
	logger, decision := logging.Setup(logging.SetupOptions{
		Root:      cfg.Logging.RootModule,
		Verbosity: c.verbosity(),
		Color:     mode,
		Spans:     registry,
		Current:   registry.CurrentChain,
	})
	return logger, registry, decision, nil
}
