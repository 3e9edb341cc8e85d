package site

import (
	"crypto/ed25519"
	"encoding/base64"

	"github.com/dmitrymomot/webgrant/pkg/entitlement"
	"github.com/dmitrymomot/webgrant/pkg/signer"
)

// wellKnownPublicKey is the base64url-encoded production verification
// key. Every issued token verifies against it unless a site overrides
// the key for developer tokens.
const wellKnownPublicKey = "cG0-al2DX-dZuNwIZ8-kWE08bT8OhOkk1qI4orzK3ao"

// Config declares a site's identity and feature participation.
type Config struct {
	// ClientID identifies the site; developer tokens scope to it.
	ClientID string `env:"WEBGRANT_CLIENT_ID"`

	// Features lists the protocol features this site supports, by name
	// (e.g. "CLEAN_WEB,CONTENT_PASS").
	Features []entitlement.Feature `env:"WEBGRANT_FEATURES"`

	// PublicKey optionally overrides the well-known verification key
	// with a base64url-encoded ed25519 public key, for developer tokens.
	PublicKey string `env:"WEBGRANT_PUBLIC_KEY"`

	// CacheBypass disables cache consultation for this site's parses.
	CacheBypass bool `env:"WEBGRANT_CACHE_BYPASS" envDefault:"false"`
}

// verifier resolves the configured verification key.
func (c Config) verifier() (signer.Verifier, error) {
	encoded := c.PublicKey
	if encoded == "" {
		encoded = wellKnownPublicKey
	}
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil || len(raw) != ed25519.PublicKeySize {
		return nil, ErrInvalidPublicKey
	}
	v, err := signer.NewEd25519Verifier(raw)
	if err != nil {
		return nil, ErrInvalidPublicKey
	}
	return v, nil
}
