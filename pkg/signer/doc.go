// Package signer defines the asymmetric sign/verify capability used by the
// wire codec and provides an ed25519 implementation of it.
//
// The codec never touches key material directly: it signs and verifies
// through the Signer and Verifier interfaces, so hosts can substitute an
// HSM-backed or remote implementation without changing the wire format.
//
// # Usage
//
//	import "github.com/dmitrymomot/webgrant/pkg/signer"
//
//	s, v, err := signer.GenerateKeyPair()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sig, _ := s.Sign(payload)
//	ok := v.Verify(payload, sig) // true
//
// Nonce exposes the secure-random capability used for the token's
// uniqueness salt.
package signer
