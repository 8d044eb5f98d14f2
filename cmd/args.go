package cmd

import (
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// negativeNumber matches tokens that read as negative numbers rather than
// shorthand flags, such as -5 or -.5.
var negativeNumber = regexp.MustCompile(`^-\d+$|^-\d*\.\d+$`)

// argv is an invocation split into flag tokens and text tokens.
type argv struct {
	flags []string
	text  []string
	help  bool
}

// splitArgs separates flag tokens from text tokens, keeping the relative
// order within each group, and notes whether help was asked for. Text never
// reaches cobra's command lookup, so a word like __complete is echoed
// instead of running cobra's hidden completion command.
func splitArgs(rootCmd *cobra.Command, args []string) argv {
	rootCmd.InitDefaultHelpFlag()
	flags := rootCmd.Flags()

	var a argv
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			a.text = append(a.text, args[i+1:]...)
			return a
		case !isFlagToken(arg):
			a.text = append(a.text, arg)
		default:
			a.flags = append(a.flags, arg)
			help, takesValue := inspectFlag(flags, arg)
			a.help = a.help || help
			if takesValue && i+1 < len(args) {
				i++
				a.flags = append(a.flags, args[i])
			}
		}
	}
	return a
}

// args rebuilds the invocation with every text token after "--".
func (a argv) args() []string {
	out := make([]string, 0, len(a.flags)+len(a.text)+1)
	out = append(out, a.flags...)
	out = append(out, "--")
	return append(out, a.text...)
}

func isFlagToken(arg string) bool {
	return len(arg) > 1 && arg[0] == '-' && !negativeNumber.MatchString(arg)
}

// inspectFlag reports whether arg requests help and whether it consumes the
// following token as its value. Unknown flags consume nothing; pflag
// reports them when the flags are parsed.
func inspectFlag(flags *pflag.FlagSet, arg string) (help, takesValue bool) {
	if strings.HasPrefix(arg, "--") {
		name, _, hasValue := strings.Cut(arg[2:], "=")
		if name == "help" {
			return true, false
		}
		f := flags.Lookup(name)
		return false, !hasValue && f != nil && f.NoOptDefVal == ""
	}

	shorthands := arg[1:]
	for i := 0; i < len(shorthands); i++ {
		if shorthands[i] == '=' {
			return help, false
		}
		f := flags.ShorthandLookup(shorthands[i : i+1])
		if f == nil {
			continue
		}
		if f.Name == "help" {
			help = true
		}
		if f.NoOptDefVal == "" {
			// The rest of the token, or the next one, is this flag's value.
			return help, i == len(shorthands)-1
		}
	}
	return help, false
}

// flagErrorFunc turns pflag errors into usage errors, unless help was
// requested anywhere on the command line, in which case help wins.
func flagErrorFunc(help bool) func(*cobra.Command, error) error {
	return func(_ *cobra.Command, err error) error {
		if help {
			return pflag.ErrHelp
		}
		return usageError(err)
	}
}
