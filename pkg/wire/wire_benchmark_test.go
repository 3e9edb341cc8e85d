package wire_test

import (
	"testing"
	"time"

	"github.com/dmitrymomot/webgrant/pkg/signer"
	"github.com/dmitrymomot/webgrant/pkg/wire"
)

func BenchmarkEncode(b *testing.B) {
	s, _, err := signer.GenerateKeyPair()
	if err != nil {
		b.Fatal(err)
	}
	expiry := time.Now().Add(time.Hour)

	for b.Loop() {
		_, err := wire.Encode(wire.Version1, expiry, 3, "SITE1", s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	s, v, err := signer.GenerateKeyPair()
	if err != nil {
		b.Fatal(err)
	}
	header, err := wire.Encode(wire.Version1, time.Now().Add(time.Hour), 3, "SITE1", s)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for b.Loop() {
		if _, err := wire.Decode(header, v); err != nil {
			b.Fatal(err)
		}
	}
}
