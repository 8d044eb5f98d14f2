package cmd

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

//go:embed usage.txt
var usageText string

// synopsis is the first line of the help text, printed ahead of usage errors.
var synopsis = strings.SplitN(usageText, "\n", 2)[0]

func printHelp(cmd *cobra.Command, _ []string) {
	fmt.Fprint(cmd.OutOrStdout(), usageText)
}

func printUsage(cmd *cobra.Command) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), synopsis)
	return err
}
