package site

import "errors"

var (
	// ErrMissingClientID indicates a configuration without a client id.
	ErrMissingClientID = errors.New("site: client id is required")

	// ErrInvalidPublicKey indicates a public key override that is not a
	// base64url-encoded 32-byte ed25519 key.
	ErrInvalidPublicKey = errors.New("site: invalid public key")

	// ErrMalformedServerHeader indicates a server header value the
	// counterpart decoder cannot parse.
	ErrMalformedServerHeader = errors.New("site: malformed server header")
)
