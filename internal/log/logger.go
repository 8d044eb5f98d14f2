// Package log provides diagnostic logging for echo runs. Records go to
// stderr so they never mix with the echoed line on stdout.
package log

import (
	"io"
	"unicode/utf8"

	"caseecho/internal/config"
	"caseecho/internal/transform"

	charmlog "github.com/charmbracelet/log"
)

// Summary provides aggregate statistics for one transformation run.
// Lengths count runes, since case mappings like ß to SS change them.
type Summary struct {
	Steps        int
	InputLength  int
	OutputLength int
}

// Logger reports transformation steps at debug level and a run summary
// at info level. Without --verbose only warnings and above are shown.
type Logger struct {
	config  *config.Config
	log     *charmlog.Logger
	summary Summary
}

// NewLogger creates a Logger writing to w with its level taken from cfg.
// Verbose runs log at debug level; otherwise only warnings and errors pass,
// which keeps stderr empty for ordinary runs.
func NewLogger(cfg *config.Config, w io.Writer) *Logger {
	level := charmlog.WarnLevel
	if cfg.Verbose {
		level = charmlog.DebugLevel
	}

	return &Logger{
		config: cfg,
		log: charmlog.NewWithOptions(w, charmlog.Options{
			Prefix: "echo",
			Level:  level,
		}),
	}
}

// LogConfig records the parsed options at debug level, including the
// order the case flags were typed in.
func (l *Logger) LogConfig() {
	order := l.config.Transformations()
	names := make([]string, len(order))
	for i, name := range order {
		names[i] = string(name)
	}

	l.log.Debug("parsed options",
		"lower", l.config.Lower,
		"upper", l.config.Upper,
		"title", l.config.Title,
		"order", names,
		"lang", l.config.Language,
	)
}

// LogResult records every step of result at debug level, then updates
// the summary and logs it at info level.
func (l *Logger) LogResult(result *transform.Result) {
	for _, step := range result.Steps {
		l.log.Debug("applied transformation", "step", string(step.Name), "output", step.Output)
	}

	l.summary = Summary{
		Steps:        len(result.Steps),
		InputLength:  utf8.RuneCountInString(result.Input),
		OutputLength: utf8.RuneCountInString(result.Output),
	}

	l.log.Info("transformed text",
		"steps", l.summary.Steps,
		"input_len", l.summary.InputLength,
		"output_len", l.summary.OutputLength,
	)
}

// Summary returns the statistics of the last logged result.
func (l *Logger) Summary() Summary {
	return l.summary
}
