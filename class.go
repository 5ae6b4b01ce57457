package dataclass

import "context"

// DataClass describes a category of data and how its values are displayed.
//
// A DataClass is immutable once created and is meant to live for the whole
// process as a package-level variable. Classified values hold a pointer to it,
// never a copy. Names are consumer-managed keys; two classes may share a name.
type DataClass struct {
	name     string
	behavior DisplayBehavior
}

// NewDataClass creates a data class with the given name and display behavior.
// An unknown behavior is kept as given and redacts when rendered.
func NewDataClass(name string, behavior DisplayBehavior) *DataClass {
	c := &DataClass{
		name:     name,
		behavior: behavior,
	}
	emitClassDefined(context.Background(), name, behavior)
	return c
}

// Name returns the key that distinguishes this class from others.
func (c *DataClass) Name() string {
	return c.name
}

// Behavior returns what happens when values of this class are displayed.
func (c *DataClass) Behavior() DisplayBehavior {
	return c.behavior
}

// String returns the class name.
func (c *DataClass) String() string {
	return c.name
}

// redacts reports whether values of this class render redacted.
// A nil class redacts.
func (c *DataClass) redacts() bool {
	return c == nil || c.behavior.redacts()
}
