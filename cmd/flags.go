package cmd

import (
	"strconv"

	"caseecho/internal/config"
	"caseecho/internal/transform"

	"github.com/spf13/pflag"
)

// caseFlag is a bool flag that reports every Set to the config, so the
// config sees case flags in the order they were typed. pflag calls Set for
// each letter of a bundled short form like -ult, left to right.
type caseFlag struct {
	cfg   *config.Config
	name  transform.Name
	value bool
}

func (f *caseFlag) String() string {
	return strconv.FormatBool(f.value)
}

func (f *caseFlag) Set(v string) error {
	on, err := strconv.ParseBool(v)
	if err != nil {
		return err
	}
	f.value = on
	f.cfg.Record(f.name, on)
	return nil
}

func (f *caseFlag) Type() string {
	return "bool"
}

func addCaseFlag(flags *pflag.FlagSet, cfg *config.Config, name transform.Name, shorthand, usage string) {
	flag := flags.VarPF(&caseFlag{cfg: cfg, name: name}, string(name), shorthand, usage)
	flag.NoOptDefVal = "true"
}
