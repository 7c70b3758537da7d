package core

import (
	"errors"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestValidateNameAccepts(t *testing.T) {
	names := []string{
		"serde",
		"my-cool-crate",
		"my_cool_crate",
		"crate2",
		"a",
		strings.Repeat("a", 64),
	}

	for _, name := range names {
		if err := ValidateName(name); err != nil {
			t.Errorf("ValidateName(%q) = %v, want nil", name, err)
		}
	}
}

func TestValidateNameRejects(t *testing.T) {
	tests := []struct {
		name   string
		reason string
	}{
		{"", "empty"},
		{strings.Repeat("a", 65), "too long"},
		{"123crate", "leading digit"},
		{"-my-crate", "leading dash"},
		{"_my_crate", "leading underscore"},
		{"my crate", "space"},
		{"my-crate!", "punctuation"},
		{"sérde", "non-ASCII"},
	}

	for _, tt := range tests {
		t.Run(tt.reason, func(t *testing.T) {
			err := ValidateName(tt.name)
			if err == nil {
				t.Fatalf("ValidateName(%q) = nil, want error (%s)", tt.name, tt.reason)
			}
			var invalidErr *InvalidNameError
			if !errors.As(err, &invalidErr) {
				t.Errorf("ValidateName(%q) returned %T, want *InvalidNameError", tt.name, err)
			}
		})
	}
}

func TestValidateNameProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("alphabetic names up to 64 chars are accepted", prop.ForAll(
		func(s string) bool {
			if s == "" {
				return true
			}
			if len(s) > 64 {
				s = s[:64]
			}
			return ValidateName(s) == nil
		},
		gen.AlphaString(),
	))

	properties.Property("inserting a disallowed character rejects the name", prop.ForAll(
		func(s string, pos int) bool {
			if s == "" {
				return true
			}
			if len(s) > 60 {
				s = s[:60]
			}
			pos = pos % (len(s) + 1)
			if pos < 0 {
				pos = -pos
			}
			mutated := s[:pos] + "!" + s[pos:]
			return ValidateName(mutated) != nil
		},
		gen.AlphaString(),
		gen.Int(),
	))

	properties.Property("names longer than 64 chars are rejected", prop.ForAll(
		func(extra int) bool {
			if extra < 0 {
				extra = -extra
			}
			name := strings.Repeat("a", 65+extra%32)
			return ValidateName(name) != nil
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}
