package testing

import (
	"testing"

	"github.com/zoobzio/dataclass"
)

func TestDataClasses(t *testing.T) {
	if SecretData.Behavior() != dataclass.DefaultRedact {
		t.Errorf("SecretData behavior = %q, want %q", SecretData.Behavior(), dataclass.DefaultRedact)
	}
	if NotSecretData.Behavior() != dataclass.Clear {
		t.Errorf("NotSecretData behavior = %q, want %q", NotSecretData.Behavior(), dataclass.Clear)
	}
}

func TestPerson(t *testing.T) {
	p := Person{First: "Firstname", Last: "Lastname"}

	AssertRendered(t, p, "Firstname Lastname")
	if got := p.Redacted(); got != "F. L." {
		t.Errorf("Redacted() = %q, want %q", got, "F. L.")
	}
	if got := (Person{}).Redacted(); got != "?. ?." {
		t.Errorf("Redacted() of empty person = %q, want %q", got, "?. ?.")
	}
}

func TestRegisterRules(t *testing.T) {
	RegisterRules(t)

	if !dataclass.HasRule[Hostname]() {
		t.Fatal("RegisterRules() should register the Hostname rule")
	}

	tests := []struct {
		input Hostname
		want  string
	}{
		{"db.internal.example.com", "***.internal.example.com"},
		{"localhost", "***"},
	}

	for _, tt := range tests {
		if got := dataclass.Redacted(tt.input); got != tt.want {
			t.Errorf("Redacted(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
