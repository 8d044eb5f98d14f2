// Package transform applies named case transformations to text.
// An Engine holds a fixed table of transformations bound to one language;
// callers pick steps by name and the engine runs them in the order given.
package transform

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"caseecho/internal/errors"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Name identifies a transformation in the engine's table.
// Command-line flags map one-to-one onto names, so the order of names
// handed to Apply is the order the user typed the flags.
type Name string

// Built-in transformation names.
const (
	Lower Name = "lower"
	Upper Name = "upper"
	Title Name = "title"
)

// Func transforms a whole string. Functions in the table are applied to
// the output of the previous step and must not depend on any other state.
type Func func(string) string

// Step records the outcome of one applied transformation.
// The diagnostic logger reports steps one by one when --verbose is set.
type Step struct {
	Name   Name
	Output string
}

// Result is the outcome of running a sequence of transformations.
// Output equals the Output of the last step, or Input when no step ran.
type Result struct {
	Input  string
	Output string
	Steps  []Step
}

// Engine resolves transformation names against its table and applies them.
// The table is built once from a language tag and stays fixed unless a
// caller registers more. Casers hold internal state, so an Engine must not
// be shared between goroutines.
type Engine struct {
	tag    language.Tag
	lower  cases.Caser
	upper  cases.Caser
	titler cases.Caser
	funcs  map[Name]Func
}

// NewEngine creates an engine with the lower, upper and title
// transformations using the full Unicode case mappings for tag.
// Language-specific rules apply, e.g. Turkish maps i to İ.
func NewEngine(tag language.Tag) *Engine {
	engine := &Engine{
		tag:    tag,
		lower:  cases.Lower(tag),
		upper:  cases.Upper(tag),
		titler: cases.Title(tag),
		funcs:  make(map[Name]Func),
	}

	engine.Register(Lower, engine.lower.String)
	engine.Register(Upper, engine.upper.String)
	engine.Register(Title, engine.title)

	return engine
}

// Register adds or replaces a transformation in the table.
// Registering an existing name swaps its function for every later Apply,
// which lets callers and tests extend or override the built-in set.
func (e *Engine) Register(name Name, fn Func) {
	e.funcs[name] = fn
}

// Has reports whether name is in the table.
func (e *Engine) Has(name Name) bool {
	_, ok := e.funcs[name]
	return ok
}

// Language returns the tag the engine's case mappings use.
func (e *Engine) Language() language.Tag {
	return e.tag
}

// Apply runs the named transformations over text, each one on the result
// of the previous. An empty order returns text unchanged. A name missing
// from the table fails the whole run with a TransformError and no result.
func (e *Engine) Apply(text string, order []Name) (*Result, error) {
	result := &Result{
		Input:  text,
		Output: text,
		Steps:  make([]Step, 0, len(order)),
	}

	for _, name := range order {
		fn, ok := e.funcs[name]
		if !ok {
			return nil, errors.NewTransformError(string(name), "unknown transformation", nil)
		}
		result.Output = fn(result.Output)
		result.Steps = append(result.Steps, Step{Name: name, Output: result.Output})
	}

	return result, nil
}

// title capitalises every whitespace-separated word and lowercases the rest
// of it. Whitespace is copied through untouched.
func (e *Engine) title(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	start := -1
	for i, r := range s {
		if unicode.IsSpace(r) {
			if start >= 0 {
				b.WriteString(e.titleWord(s[start:i]))
				start = -1
			}
			b.WriteRune(r)
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		b.WriteString(e.titleWord(s[start:]))
	}

	return b.String()
}

// titleWord title-cases the first rune after any leading punctuation, so a
// quoted word like "hello" becomes "Hello". The rune goes through the title
// mapping rather than the upper one: ß becomes Ss and ǆ becomes ǅ.
func (e *Engine) titleWord(word string) string {
	i := strings.IndexFunc(word, func(r rune) bool { return !unicode.IsPunct(r) })
	if i < 0 {
		return word
	}
	_, size := utf8.DecodeRuneInString(word[i:])
	return word[:i] + e.titler.String(word[i:i+size]) + e.lower.String(word[i+size:])
}
