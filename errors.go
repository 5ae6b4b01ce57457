package dataclass

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrUnknownBehavior indicates a display behavior name is not recognized.
	ErrUnknownBehavior = errors.New("unknown display behavior")

	// ErrNilRule indicates a nil redaction rule was registered.
	ErrNilRule = errors.New("nil redaction rule")

	// ErrRuleExists indicates a type already has a registered redaction rule.
	ErrRuleExists = errors.New("redaction rule already registered")

	// ErrInvalidRuleType indicates a rule was registered for a type that can
	// never be the dynamic type of a value, such as an interface.
	ErrInvalidRuleType = errors.New("invalid rule type")
)

// RuleError represents a redaction rule registration error.
// It wraps a sentinel error with the type the rule was registered for.
type RuleError struct {
	Err  error        // Underlying sentinel error (ErrNilRule, etc.)
	Type reflect.Type // Type the rule was registered for
}

func (e *RuleError) Error() string {
	if e.Type != nil {
		return fmt.Sprintf("%s for type %s", e.Err.Error(), e.Type)
	}
	return e.Err.Error()
}

func (e *RuleError) Unwrap() error {
	return e.Err
}

// BehaviorError represents a display behavior that could not be parsed.
type BehaviorError struct {
	Value string // Input that failed to parse
}

func (e *BehaviorError) Error() string {
	return fmt.Sprintf("%s %q", ErrUnknownBehavior.Error(), e.Value)
}

func (e *BehaviorError) Unwrap() error {
	return ErrUnknownBehavior
}

// newRuleError creates a RuleError for a failed registration.
func newRuleError(sentinel error, typ reflect.Type) error {
	return &RuleError{
		Err:  sentinel,
		Type: typ,
	}
}

// newBehaviorError creates a BehaviorError for an unparseable behavior name.
func newBehaviorError(value string) error {
	return &BehaviorError{Value: value}
}
