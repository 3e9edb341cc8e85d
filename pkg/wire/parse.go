package wire

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/dmitrymomot/webgrant/pkg/signer"
)

// Decode validates a raw header value and returns its typed payload.
//
// The checks run in wire-contract order: presence, separator, base64,
// signature, version, length, fields. Signature verification happens
// before the version and length checks so that a forgery is detected even
// when the payload is otherwise garbage. The nonce bytes are carried but
// never inspected; the short token lifetime stands in for replay defence.
func Decode(header string, v signer.Verifier) (DecodedClientHeader, error) {
	if header == "" {
		return DecodedClientHeader{}, ErrAbsent
	}

	data64, sig64, found := strings.Cut(header, ".")
	if !found {
		return DecodedClientHeader{}, ErrMalformed
	}

	payload, err := encoding.DecodeString(data64)
	if err != nil {
		return DecodedClientHeader{}, ErrMalformed
	}
	sig, err := encoding.DecodeString(sig64)
	if err != nil {
		return DecodedClientHeader{}, ErrMalformed
	}

	if !v.Verify(payload, sig) {
		return DecodedClientHeader{}, ErrForged
	}

	if len(payload) == 0 || payload[0] != Version1 {
		return DecodedClientHeader{}, ErrUnsupportedVersion
	}
	if len(payload) < minPayload {
		return DecodedClientHeader{}, ErrTruncated
	}

	decoded := DecodedClientHeader{
		Version:   payload[0],
		ExpiresAt: time.UnixMilli(int64(binary.LittleEndian.Uint32(payload[expiryOffset:])) * 1000),
		Flags:     binary.LittleEndian.Uint32(payload[flagsOffset:]),
	}
	if len(payload) > minPayload {
		decoded.ClientID = string(payload[minPayload:])
	}

	return decoded, nil
}
