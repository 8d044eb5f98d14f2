package cmd

import (
	"fmt"
	"io"
	"os"

	"caseecho/internal/config"
	"caseecho/internal/errors"
	"caseecho/internal/transform"

	"github.com/spf13/cobra"
)

// Exit codes returned by the echo command.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// Execute runs the root command against the process arguments and exits
// with a non-zero status on failure.
func Execute() {
	if code := execute(os.Args[1:], os.Stdout, os.Stderr); code != exitOK {
		os.Exit(code)
	}
}

// execute builds a fresh command for args and reports any error. Usage and
// configuration errors go to stdout after the synopsis; anything else goes
// to stderr.
func execute(args []string, stdout, stderr io.Writer) int {
	cfg := &config.Config{}
	rootCmd := newRootCmd(cfg)

	split := splitArgs(rootCmd, args)
	rootCmd.SetFlagErrorFunc(flagErrorFunc(split.help))
	rootCmd.SetArgs(split.args())
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		if errors.IsUsage(err) {
			fmt.Fprintln(stdout, synopsis)
			fmt.Fprintf(stdout, "echo: error: %s\n", errors.Message(err))
			return exitUsage
		}
		fmt.Fprintf(stderr, "Error: %s\n", err.Error())
		return exitFailure
	}
	return exitOK
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "echo [-h] [-l] [-u] [-t] [-v] [--lang TAG] text",
		Short: "Perform transformation on input text",
		Long: `Echo joins its arguments into one line of text and prints it, applying
the requested case transformations in the order their flags are given.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEcho(cmd, cfg, args)
		},
	}

	flags := rootCmd.Flags()
	addCaseFlag(flags, cfg, transform.Lower, "l", "convert text to lowercase")
	addCaseFlag(flags, cfg, transform.Upper, "u", "convert text to uppercase")
	addCaseFlag(flags, cfg, transform.Title, "t", "convert text to titlecase")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "log each transformation to stderr")
	flags.StringVar(&cfg.Language, "lang", config.DefaultLanguage, "language used for case mapping")

	rootCmd.SetHelpFunc(printHelp)
	rootCmd.SetUsageFunc(printUsage)
	rootCmd.SetFlagErrorFunc(flagErrorFunc(false))

	return rootCmd
}

func usageError(err error) error {
	return errors.NewUsageError(err.Error(), err)
}
