package transform

import (
	"errors"
	"strings"
	"testing"

	echoerrors "caseecho/internal/errors"

	"golang.org/x/text/language"
)

func TestEngineApply(t *testing.T) {
	engine := NewEngine(language.Und)

	tests := []struct {
		name     string
		text     string
		order    []Name
		expected string
	}{
		{
			name:     "no transformations is identity",
			text:     "Was soll die ganze Aufregung?",
			order:    nil,
			expected: "Was soll die ganze Aufregung?",
		},
		{
			name:     "lower",
			text:     "HELLO WORLD",
			order:    []Name{Lower},
			expected: "hello world",
		},
		{
			name:     "upper",
			text:     "hello world",
			order:    []Name{Upper},
			expected: "HELLO WORLD",
		},
		{
			name:     "title",
			text:     "hello world",
			order:    []Name{Title},
			expected: "Hello World",
		},
		{
			name:     "upper lower title yields title case",
			text:     "hello world",
			order:    []Name{Upper, Lower, Title},
			expected: "Hello World",
		},
		{
			name:     "title then upper ends upper",
			text:     "hello world",
			order:    []Name{Title, Upper},
			expected: "HELLO WORLD",
		},
		{
			name:     "title then lower ends lower",
			text:     "hello world",
			order:    []Name{Title, Lower},
			expected: "hello world",
		},
		{
			name:     "non-ascii letters fold",
			text:     "ÄRGER über Öl",
			order:    []Name{Lower},
			expected: "ärger über öl",
		},
		{
			name:     "empty text",
			text:     "",
			order:    []Name{Upper, Title},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Apply(tt.text, tt.order)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Output != tt.expected {
				t.Errorf("Apply(%q, %v) = %q, expected %q", tt.text, tt.order, result.Output, tt.expected)
			}
			if result.Input != tt.text {
				t.Errorf("expected input %q, got %q", tt.text, result.Input)
			}
			if len(result.Steps) != len(tt.order) {
				t.Errorf("expected %d steps, got %d", len(tt.order), len(result.Steps))
			}
		})
	}
}

func TestEngineApplyRecordsSteps(t *testing.T) {
	engine := NewEngine(language.Und)

	result, err := engine.Apply("hello world", []Name{Upper, Lower, Title})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []Step{
		{Name: Upper, Output: "HELLO WORLD"},
		{Name: Lower, Output: "hello world"},
		{Name: Title, Output: "Hello World"},
	}
	for i, step := range expected {
		if result.Steps[i] != step {
			t.Errorf("step %d: expected %+v, got %+v", i, step, result.Steps[i])
		}
	}
}

func TestEngineApplyUnknown(t *testing.T) {
	engine := NewEngine(language.Und)

	result, err := engine.Apply("hello", []Name{Upper, "rot13"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if result != nil {
		t.Errorf("expected nil result, got %+v", result)
	}
	if !errors.Is(err, &echoerrors.EchoError{Type: echoerrors.ErrTypeTransform}) {
		t.Errorf("expected transform error, got %v", err)
	}
	if !strings.Contains(err.Error(), "rot13") {
		t.Errorf("expected error to name the transformation, got %q", err.Error())
	}
}

func TestEngineRegister(t *testing.T) {
	engine := NewEngine(language.Und)

	if engine.Has("reverse") {
		t.Fatal("reverse should not be registered by default")
	}

	engine.Register("reverse", func(s string) string {
		runes := []rune(s)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return string(runes)
	})

	result, err := engine.Apply("abc", []Name{"reverse", Upper})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Output != "CBA" {
		t.Errorf("expected %q, got %q", "CBA", result.Output)
	}
}

func TestTitle(t *testing.T) {
	engine := NewEngine(language.Und)

	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"hello", "Hello"},
		{"hello world", "Hello World"},
		{"HELLO WORLD", "Hello World"},
		{"hELLO wORLD", "Hello World"},
		{"  leading and  double  spaces ", "  Leading And  Double  Spaces "},
		{"tabs\tand\nnewlines", "Tabs\tAnd\nNewlines"},
		{"\"quoted\" words", "\"Quoted\" Words"},
		{"don't stop", "Don't Stop"},
		{"1st place", "1st Place"},
		{"...", "..."},
		{"élan vital", "Élan Vital"},
		{"ßa", "Ssa"},
		{"ǆemal bijedić", "ǅemal Bijedić"},
		{"STRASSE ßtraße", "Strasse Sstraße"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := engine.title(tt.input); got != tt.expected {
				t.Errorf("title(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLanguageSpecificCasing(t *testing.T) {
	tests := []struct {
		name     string
		tag      language.Tag
		text     string
		order    []Name
		expected string
	}{
		{
			name:     "default upper",
			tag:      language.Und,
			text:     "istanbul",
			order:    []Name{Upper},
			expected: "ISTANBUL",
		},
		{
			name:     "turkish upper uses dotted capital i",
			tag:      language.Turkish,
			text:     "istanbul",
			order:    []Name{Upper},
			expected: "İSTANBUL",
		},
		{
			name:     "turkish title uses dotted capital i",
			tag:      language.Turkish,
			text:     "izmir",
			order:    []Name{Title},
			expected: "İzmir",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewEngine(tt.tag)
			if engine.Language() != tt.tag {
				t.Errorf("expected language %v, got %v", tt.tag, engine.Language())
			}
			result, err := engine.Apply(tt.text, tt.order)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Output != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result.Output)
			}
		})
	}
}
