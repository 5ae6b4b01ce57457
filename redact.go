package dataclass

import "reflect"

var redactableType = reflect.TypeFor[Redactable]()

// Redacted returns a display-safe rendering of v.
//
// The most specific rule wins: a Redactable implementation on v or on a
// pointer to v, then a rule registered for v's type, then the builtin address
// rules. Everything else,
// including nil, renders as DefaultRedactedValue. Non-nil pointers without a
// match of their own are dereferenced once and resolved again.
//
// Redacted never fails. A panicking rule yields DefaultRedactedValue.
func Redacted(v any) (out string) {
	defer func() {
		if recover() != nil {
			out = DefaultRedactedValue
		}
	}()
	return redact(v, true)
}

func redact(v any, deref bool) string {
	if v == nil {
		return DefaultRedactedValue
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return DefaultRedactedValue
	}

	if r, ok := v.(Redactable); ok {
		return r.Redacted()
	}

	// Redacted declared on *T still applies to a T.
	if rv.Kind() != reflect.Pointer && reflect.PointerTo(rv.Type()).Implements(redactableType) {
		p := reflect.New(rv.Type())
		p.Elem().Set(rv)
		return p.Interface().(Redactable).Redacted()
	}

	if r, ok := lookupRule(rv.Type()); ok {
		return r(v)
	}

	if s, ok := redactAddress(v); ok {
		return s
	}

	if deref && rv.Kind() == reflect.Pointer {
		return redact(rv.Elem().Interface(), false)
	}

	return DefaultRedactedValue
}
