// Package wire implements the version 1 binary layout of the client
// entitlement token and its header-string encoding.
//
// Token format: base64url(payload).base64url(signature)
//
// The payload is a fixed little-endian layout:
//
//	offset 0   u8     version (only 1 supported)
//	offset 1   4B     random nonce (uniqueness salt, not validated on decode)
//	offset 5   u32LE  expiry, unix seconds
//	offset 9   u32LE  feature flag bitmask
//	offset 13  ...    optional UTF-8 client id (present iff payload > 13 bytes)
//
// The signature is detached and covers the full payload byte sequence.
// Field order and endianness are the binding wire contract for version 1;
// any layout change requires a new version byte.
//
// # Usage
//
//	import "github.com/dmitrymomot/webgrant/pkg/wire"
//
//	header, err := wire.Encode(wire.Version1, expiry, flags, "", privSigner)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	decoded, err := wire.Decode(header, pubVerifier)
//	if err != nil {
//	    // sentinel errors: ErrAbsent, ErrMalformed, ErrForged,
//	    // ErrUnsupportedVersion, ErrTruncated
//	}
//
// Decode never panics and never reports partial results: it either returns
// a fully populated DecodedClientHeader or one of the sentinel errors.
package wire
