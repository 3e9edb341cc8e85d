package signer

import (
	"crypto/ed25519"
	"crypto/rand"
)

// Signer produces a detached signature over raw payload bytes.
type Signer interface {
	Sign(data []byte) ([]byte, error)
}

// Verifier reports whether sig is a valid detached signature over data.
// Implementations must treat any malformed signature as a mismatch rather
// than an error; verification is a pure boolean capability.
type Verifier interface {
	Verify(data, sig []byte) bool
}

// Ed25519Signer signs payloads with an ed25519 private key.
type Ed25519Signer struct {
	key ed25519.PrivateKey
}

// NewEd25519Signer validates the key length and wraps the private key.
func NewEd25519Signer(key ed25519.PrivateKey) (Ed25519Signer, error) {
	if len(key) != ed25519.PrivateKeySize {
		return Ed25519Signer{}, ErrInvalidPrivateKey
	}
	return Ed25519Signer{key: key}, nil
}

func (s Ed25519Signer) Sign(data []byte) ([]byte, error) {
	return ed25519.Sign(s.key, data), nil
}

// Ed25519Verifier verifies payload signatures with an ed25519 public key.
type Ed25519Verifier struct {
	key ed25519.PublicKey
}

// NewEd25519Verifier validates the key length and wraps the public key.
func NewEd25519Verifier(key ed25519.PublicKey) (Ed25519Verifier, error) {
	if len(key) != ed25519.PublicKeySize {
		return Ed25519Verifier{}, ErrInvalidPublicKey
	}
	return Ed25519Verifier{key: key}, nil
}

func (v Ed25519Verifier) Verify(data, sig []byte) bool {
	if len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(v.key, data, sig)
}

// GenerateKeyPair creates a fresh ed25519 key pair wrapped in the package's
// signer and verifier types. Intended for tests and developer-token issuance.
func GenerateKeyPair() (Ed25519Signer, Ed25519Verifier, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return Ed25519Signer{}, Ed25519Verifier{}, err
	}
	return Ed25519Signer{key: priv}, Ed25519Verifier{key: pub}, nil
}

// Nonce returns n cryptographically random bytes.
func Nonce(n int) ([]byte, error) {
	if n <= 0 {
		return nil, ErrInvalidNonceSize
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}
