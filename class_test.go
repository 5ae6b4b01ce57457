package dataclass

import "testing"

func TestNewDataClass(t *testing.T) {
	c := NewDataClass("Secret", DefaultRedact)

	if c.Name() != "Secret" {
		t.Errorf("Name() = %q, want %q", c.Name(), "Secret")
	}
	if c.Behavior() != DefaultRedact {
		t.Errorf("Behavior() = %q, want %q", c.Behavior(), DefaultRedact)
	}
	if c.String() != "Secret" {
		t.Errorf("String() = %q, want %q", c.String(), "Secret")
	}
}

func TestDataClass_Identity(t *testing.T) {
	a := NewDataClass("Secret", DefaultRedact)
	b := NewDataClass("Secret", DefaultRedact)

	// Names are not enforced to be unique, each call is its own descriptor.
	if a == b {
		t.Error("NewDataClass() should return distinct descriptors")
	}
	if Classify(a, 1).Class != a {
		t.Error("classified values should reference the descriptor they were given")
	}
}

func TestDataClass_Redacts(t *testing.T) {
	tests := []struct {
		name  string
		class *DataClass
		want  bool
	}{
		{"clear", NewDataClass("c", Clear), false},
		{"redact", NewDataClass("r", DefaultRedact), true},
		{"unknown", NewDataClass("u", "other"), true},
		{"nil", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.class.redacts(); got != tt.want {
				t.Errorf("redacts() = %v, want %v", got, tt.want)
			}
		})
	}
}
