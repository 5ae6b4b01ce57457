package benchmarks

import (
	"fmt"
	"net/netip"
	"testing"

	"github.com/zoobzio/dataclass"
	classtest "github.com/zoobzio/dataclass/testing"
)

func BenchmarkRedacted_Default(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = dataclass.Redacted("foofoo")
	}
}

func BenchmarkRedacted_IPv4(b *testing.B) {
	addr := netip.MustParseAddr("192.168.1.100")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dataclass.Redacted(addr)
	}
}

func BenchmarkRedacted_Method(b *testing.B) {
	p := classtest.Person{First: "Ada", Last: "Lovelace"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dataclass.Redacted(p)
	}
}

func BenchmarkRedacted_Rule(b *testing.B) {
	classtest.RegisterRules(b)
	h := classtest.Hostname("db.internal.example.com")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dataclass.Redacted(h)
	}
}

func BenchmarkClassified_Clear(b *testing.B) {
	c := dataclass.Classify(classtest.NotSecretData, "barbar")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fmt.Sprint(c)
	}
}

func BenchmarkClassified_Redact(b *testing.B) {
	c := dataclass.Classify(classtest.SecretData, "foofoo")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fmt.Sprint(c)
	}
}
