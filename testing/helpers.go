// Package testing provides test utilities for dataclass.
package testing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/zoobzio/dataclass"
)

// Data classes shared by tests.
var (
	NotSecretData = dataclass.NewDataClass("Not Secret", dataclass.Clear)
	SecretData    = dataclass.NewDataClass("Secret", dataclass.DefaultRedact)
)

// Person is a test type that owns its redaction: initials only.
type Person struct {
	First string
	Last  string
}

// String renders the full name.
func (p Person) String() string {
	return p.First + " " + p.Last
}

// Redacted implements dataclass.Redactable.
func (p Person) Redacted() string {
	return initial(p.First) + ". " + initial(p.Last) + "."
}

func initial(s string) string {
	for _, r := range s {
		return string(r)
	}
	return "?"
}

// Hostname is a test type that gets its redaction from a registered rule.
type Hostname string

// RegisterRules registers the rules for the test types and clears the
// registry when the test ends.
func RegisterRules(tb testing.TB) {
	tb.Helper()
	dataclass.Reset()
	tb.Cleanup(dataclass.Reset)

	err := dataclass.RegisterRule(func(h Hostname) string {
		labels := strings.Split(string(h), ".")
		if len(labels) < 2 {
			return dataclass.DefaultRedactedValue
		}
		return "***." + strings.Join(labels[1:], ".")
	})
	if err != nil {
		tb.Fatalf("RegisterRule() error: %v", err)
	}
}

// AssertRendered fails the test if v does not print as want.
func AssertRendered(tb testing.TB, v any, want string) {
	tb.Helper()
	if got := fmt.Sprint(v); got != want {
		tb.Errorf("Sprint(%T) = %q, want %q", v, got, want)
	}
}
