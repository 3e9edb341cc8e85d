package site

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/webgrant/pkg/entitlement"
)

// serverHeaderVersion prefixes the participation header so the format can
// evolve independently of the client token version.
const serverHeaderVersion = "1"

// EncodeServerHeader builds the participation-advertisement header value:
// version, hex feature mask, and the client id as the free-form tail.
// It carries no signature; it is an advertisement, not a security
// boundary.
func EncodeServerHeader(clientID string, features []entitlement.Feature) string {
	mask := strconv.FormatUint(uint64(entitlement.Mask(features)), 16)
	return serverHeaderVersion + ":" + mask + ":" + clientID
}

// DecodeServerHeader parses a participation header back into its client
// id and feature mask. The client id tail may itself contain colons.
func DecodeServerHeader(value string) (clientID string, mask uint32, err error) {
	parts := strings.SplitN(value, ":", 3)
	if len(parts) != 3 || parts[0] != serverHeaderVersion {
		return "", 0, ErrMalformedServerHeader
	}
	m, err := strconv.ParseUint(parts[1], 16, 32)
	if err != nil {
		return "", 0, ErrMalformedServerHeader
	}
	return parts[2], uint32(m), nil
}
