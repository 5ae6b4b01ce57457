package dataclass

// Redactable lets a type own its redaction.
// When a value implements this interface, Redacted calls the method instead of
// consulting the rule registry or the builtin address rules.
//
// A method on either receiver covers both T and *T:
//
//	func (n FullName) Redacted() string {
//	    return n.First[:1] + ". " + n.Last[:1] + "."
//	}
type Redactable interface {
	// Redacted returns a display-safe rendering of the receiver.
	// It must not return the receiver's sensitive content.
	Redacted() string
}
