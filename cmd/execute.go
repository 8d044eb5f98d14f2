// Package cmd implements the echo command line: flag parsing, help output,
// and the run that ties config, transformer, logger and output together.
package cmd

import (
	"io"

	"caseecho/internal/config"
	"caseecho/internal/log"
	"caseecho/internal/output"
	"caseecho/internal/transform"

	"github.com/spf13/cobra"
)

func runEcho(cmd *cobra.Command, cfg *config.Config, args []string) error {
	cfg.SetText(args)

	if err := cfg.Validate(); err != nil {
		return err
	}

	return executeEcho(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func executeEcho(cfg *config.Config, stdout, stderr io.Writer) error {
	logger := log.NewLogger(cfg, stderr)
	logger.LogConfig()

	engine := transform.NewEngine(cfg.Tag())
	result, err := engine.Apply(cfg.Text, cfg.Transformations())
	if err != nil {
		return err
	}
	logger.LogResult(result)

	return output.NewWriter(stdout).WriteLine(result.Output)
}
