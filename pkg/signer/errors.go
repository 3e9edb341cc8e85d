package signer

import "errors"

var (
	ErrInvalidPrivateKey = errors.New("signer: private key must be 64 bytes (ed25519)")
	ErrInvalidPublicKey  = errors.New("signer: public key must be 32 bytes (ed25519)")
	ErrInvalidNonceSize  = errors.New("signer: nonce size must be positive")
)
