// Package dataclass marks values as belonging to a named data class and
// controls how they render as text.
//
// The package offers a Classified wrapper that pairs any value with a shared,
// immutable DataClass descriptor. When the wrapper is formatted through fmt,
// the descriptor's DisplayBehavior decides whether the value is printed in the
// clear or passed through the redaction engine.
//
// # Data Classes
//
// Data classes are defined by consumers, once, at start-up:
//
//	var (
//	    NotSecret = dataclass.NewDataClass("Not Secret", dataclass.Clear)
//	    Secret    = dataclass.NewDataClass("Secret", dataclass.DefaultRedact)
//	)
//
// # Basic Usage
//
//	token := dataclass.Classify(Secret, "s3cr3t")
//	user := dataclass.Classify(NotSecret, "alice")
//
//	fmt.Printf("user=%v token=%v\n", user, token) // user=alice token=***
//
//	// Classification is advisory, the raw value is always reachable.
//	raw := token.Unwrap()
//
// # Redaction
//
// Redacted renders a display-safe form of any value. Resolution picks the most
// specific rule available:
//
//  1. The value, or a pointer to it, implements Redactable.
//  2. A rule was registered for the value's type with RegisterRule.
//  3. The value is an IP address (net.IP, netip.Addr, *net.IPAddr).
//  4. Everything else renders as DefaultRedactedValue.
//
// Builtin address rules:
//
//   - IPv4: 192.168.1.100 → 192.168.1.xxx
//   - IPv6: 2001:db8::1 → ***
//
// # Override Interfaces
//
// Types can own their redaction by implementing Redactable:
//
//	func (n FullName) Redacted() string {
//	    return n.First[:1] + ". " + n.Last[:1] + "."
//	}
//
// Types defined elsewhere get a rule through the registry instead:
//
//	func init() {
//	    dataclass.MustRegisterRule(func(u *url.URL) string { return u.Scheme + "://***" })
//	}
package dataclass

import "reflect"

// Classification is implemented by every Classified value regardless of its
// inner type, so callers can inspect the class without knowing T.
type Classification interface {
	// DataClass returns the descriptor the value was classified with.
	DataClass() *DataClass
}

// ClassOf returns the data class of v if v is a classified value.
func ClassOf(v any) (*DataClass, bool) {
	c, ok := v.(Classification)
	if !ok {
		return nil, false
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, false
	}
	class := c.DataClass()
	return class, class != nil
}
