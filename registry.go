package dataclass

import (
	"context"
	"reflect"
	"sync"
)

// rule is a type-erased redaction rule. The value passed in always has the
// dynamic type the rule was registered for.
type rule func(v any) string

var (
	rules   = make(map[reflect.Type]rule)
	rulesMu sync.RWMutex
)

// RegisterRule registers a redaction rule for values of type T.
// The rule takes precedence over the builtin address rules and the default
// mask, but not over a Redactable implementation on T itself.
//
// Rules are keyed by exact type: a rule for T does not apply to named types
// derived from T. Register rules during start-up, before values are rendered.
func RegisterRule[T any](fn func(T) string) error {
	typ := reflect.TypeFor[T]()
	err := registerRule(typ, fn)
	emitRuleRegistered(context.Background(), typ.String(), err)
	return err
}

func registerRule[T any](typ reflect.Type, fn func(T) string) error {
	if fn == nil {
		return newRuleError(ErrNilRule, typ)
	}
	if typ.Kind() == reflect.Interface {
		return newRuleError(ErrInvalidRuleType, typ)
	}

	rulesMu.Lock()
	defer rulesMu.Unlock()

	if _, ok := rules[typ]; ok {
		return newRuleError(ErrRuleExists, typ)
	}

	rules[typ] = func(v any) string {
		return fn(v.(T))
	}
	return nil
}

// MustRegisterRule is like RegisterRule but panics on error.
// It is intended for use in init functions.
func MustRegisterRule[T any](fn func(T) string) {
	if err := RegisterRule(fn); err != nil {
		panic(err)
	}
}

// HasRule reports whether a rule is registered for type T.
func HasRule[T any]() bool {
	_, ok := lookupRule(reflect.TypeFor[T]())
	return ok
}

// lookupRule returns the rule registered for typ.
func lookupRule(typ reflect.Type) (rule, bool) {
	rulesMu.RLock()
	defer rulesMu.RUnlock()
	r, ok := rules[typ]
	return r, ok
}

// Reset clears the rule registry.
// This is primarily useful for test isolation.
func Reset() {
	rulesMu.Lock()
	defer rulesMu.Unlock()
	rules = make(map[reflect.Type]rule)
}
