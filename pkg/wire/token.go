package wire

import (
	"encoding/base64"
	"encoding/binary"
	"time"

	"github.com/dmitrymomot/webgrant/pkg/signer"
)

// Version1 is the only token version currently defined.
const Version1 uint8 = 1

const (
	nonceSize    = 4
	expiryOffset = 5
	flagsOffset  = 9
	minPayload   = 13 // version + nonce + expiry + flags
)

// encoding is the base64 alphabet shared by payload and signature halves.
// Raw URL encoding keeps the header free of padding and reserved
// characters; strict mode rejects non-canonical trailing bits so no two
// distinct header strings decode to the same payload.
var encoding = base64.RawURLEncoding.Strict()

// DecodedClientHeader is the typed view of a verified version 1 payload.
// It is immutable once produced; ClientID is empty when the optional tail
// was not present.
type DecodedClientHeader struct {
	Version   uint8
	ExpiresAt time.Time
	Flags     uint32
	ClientID  string
}

// Expired reports whether the token's expiry lies strictly before now.
// A token expiring exactly at now is still valid.
func (d DecodedClientHeader) Expired(now time.Time) bool {
	return now.After(d.ExpiresAt)
}

// Encode serializes and signs a version 1 token. The expiry is truncated
// to whole seconds on the wire; flags is the pre-combined feature bitmask.
// An empty clientID omits the optional tail entirely.
func Encode(version uint8, expiresAt time.Time, flags uint32, clientID string, s signer.Signer) (string, error) {
	if version != Version1 {
		return "", ErrUnencodableVersion
	}

	nonce, err := signer.Nonce(nonceSize)
	if err != nil {
		return "", err
	}

	payload := make([]byte, 0, minPayload+len(clientID))
	payload = append(payload, version)
	payload = append(payload, nonce...)
	payload = binary.LittleEndian.AppendUint32(payload, uint32(expiresAt.Unix()))
	payload = binary.LittleEndian.AppendUint32(payload, flags)
	payload = append(payload, clientID...)

	sig, err := s.Sign(payload)
	if err != nil {
		return "", err
	}

	return encoding.EncodeToString(payload) + "." + encoding.EncodeToString(sig), nil
}
