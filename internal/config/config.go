// Package config holds the options parsed from one invocation and the
// validation that runs before any text is transformed.
package config

import (
	"slices"
	"strings"

	"caseecho/internal/errors"
	"caseecho/internal/transform"

	"golang.org/x/text/language"
)

// DefaultLanguage is the tag used for case mapping when --lang is not given.
const DefaultLanguage = "und"

// Config holds the runtime options for a single echo invocation.
// Command-line parsing fills it in; after Validate it is only read.
// The case flags are plain bools for inspection, while the order they were
// typed in lives alongside them and decides how the text is transformed.
type Config struct {
	Text     string
	Lower    bool
	Upper    bool
	Title    bool
	Verbose  bool
	Language string

	order   []transform.Name
	hasText bool
	tag     language.Tag
}

// Record notes that the named case flag was set or cleared. It is called
// from the flag values as pflag parses them, so calls arrive in the order
// the flags were typed, including each letter of a bundle like -ult.
// A flag keeps the position of its first occurrence; clearing it with
// --flag=false drops it from the order. Unknown names only touch the order.
func (c *Config) Record(name transform.Name, on bool) {
	if flag := c.flagFor(name); flag != nil {
		*flag = on
	}

	i := slices.Index(c.order, name)
	switch {
	case on && i < 0:
		c.order = append(c.order, name)
	case !on && i >= 0:
		c.order = slices.Delete(c.order, i, i+1)
	}
}

func (c *Config) flagFor(name transform.Name) *bool {
	switch name {
	case transform.Lower:
		return &c.Lower
	case transform.Upper:
		return &c.Upper
	case transform.Title:
		return &c.Title
	default:
		return nil
	}
}

// SetText joins positional arguments with single spaces into the text to
// echo. An explicit empty argument counts as text and echoes an empty line;
// no arguments at all leaves the config without text, which Validate
// rejects as a usage error.
func (c *Config) SetText(args []string) {
	c.Text = strings.Join(args, " ")
	c.hasText = len(args) > 0
}

// Transformations returns the case transformations in the order their
// flags first appeared on the command line. The slice is a copy, so callers
// cannot reorder the config's own record.
func (c *Config) Transformations() []transform.Name {
	return slices.Clone(c.order)
}

// Tag returns the language tag parsed by Validate. Before Validate runs it
// is the zero tag, which the case mappings treat as undetermined.
func (c *Config) Tag() language.Tag {
	return c.tag
}

// Validate checks that there is text to echo and that the language tag
// parses. It must succeed before the config is handed to the transformer.
func (c *Config) Validate() error {
	if err := c.validateText(); err != nil {
		return err
	}

	if err := c.validateLanguage(); err != nil {
		return err
	}

	return nil
}

func (c *Config) validateText() error {
	if !c.hasText {
		return errors.NewUsageError("the following arguments are required: text", nil)
	}
	return nil
}

func (c *Config) validateLanguage() error {
	if c.Language == "" {
		c.Language = DefaultLanguage
	}

	tag, err := language.Parse(c.Language)
	if err != nil {
		return errors.NewConfigErrorWithSubject("--lang", "invalid language tag: "+c.Language, err)
	}
	c.tag = tag
	return nil
}
