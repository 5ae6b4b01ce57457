package dataclass

import "fmt"

// Classified pairs a value with the data class it belongs to.
//
// Classification governs display only. Class and Value are exported and the
// raw value stays reachable through Value or Unwrap.
type Classified[T any] struct {
	Class *DataClass
	Value T
}

// Classify wraps value in the given data class. It never fails and does not
// inspect value.
func Classify[T any](class *DataClass, value T) Classified[T] {
	return Classified[T]{
		Class: class,
		Value: value,
	}
}

// Unwrap returns the original value.
func (c Classified[T]) Unwrap() T {
	return c.Value
}

// DataClass implements Classification.
func (c Classified[T]) DataClass() *DataClass {
	return c.Class
}

// ClassName returns the name of the value's data class, or "" without one.
func (c Classified[T]) ClassName() string {
	if c.Class == nil {
		return ""
	}
	return c.Class.name
}

// Redacted implements Redactable by redacting the inner value, regardless of
// the class's display behavior.
func (c Classified[T]) Redacted() string {
	return Redacted(c.Value)
}

// Format implements fmt.Formatter.
//
// For Clear classes the verb and flags are applied to the inner value as if it
// had been passed to fmt directly. Otherwise the output of Redacted is printed:
// %q quotes it and every other verb prints it as a string, so %#v and %+v do
// not reveal the inner value.
func (c Classified[T]) Format(f fmt.State, verb rune) {
	if !c.Class.redacts() {
		fmt.Fprintf(f, fmt.FormatString(f, verb), c.Value)
		return
	}

	if verb != 'q' {
		verb = 's'
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), Redacted(c.Value))
}

// String implements fmt.Stringer.
func (c Classified[T]) String() string {
	if !c.Class.redacts() {
		return fmt.Sprint(c.Value)
	}
	return Redacted(c.Value)
}
