package dataclass

import "strings"

// DisplayBehavior decides how values of a data class are rendered.
type DisplayBehavior string

const (
	// Clear renders values unmodified.
	Clear DisplayBehavior = "clear"

	// DefaultRedact renders values through Redacted.
	DefaultRedact DisplayBehavior = "redact"
)

// validDisplayBehaviors contains all known display behaviors.
var validDisplayBehaviors = map[DisplayBehavior]bool{
	Clear:         true,
	DefaultRedact: true,
}

// IsValidDisplayBehavior returns true if b is a known display behavior.
func IsValidDisplayBehavior(b DisplayBehavior) bool {
	return validDisplayBehaviors[b]
}

// ParseDisplayBehavior converts a name such as "clear" or "redact" into a
// DisplayBehavior. Matching is case-insensitive and ignores surrounding space.
func ParseDisplayBehavior(s string) (DisplayBehavior, error) {
	b := DisplayBehavior(strings.ToLower(strings.TrimSpace(s)))
	if !IsValidDisplayBehavior(b) {
		return "", newBehaviorError(s)
	}
	return b, nil
}

// String returns the behavior name.
func (b DisplayBehavior) String() string {
	return string(b)
}

// redacts reports whether values with this behavior must go through the
// redaction engine. Unknown behaviors redact.
func (b DisplayBehavior) redacts() bool {
	return b != Clear
}
