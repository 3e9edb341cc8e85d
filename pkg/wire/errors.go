package wire

import "errors"

var (
	// ErrAbsent indicates an empty header value.
	ErrAbsent = errors.New("wire: token absent")

	// ErrMalformed indicates a structurally invalid header: missing
	// separator or a base64 half that does not decode.
	ErrMalformed = errors.New("wire: malformed token")

	// ErrForged indicates the signature does not verify over the payload.
	ErrForged = errors.New("wire: signature verification failed")

	// ErrUnsupportedVersion indicates a version byte other than 1.
	ErrUnsupportedVersion = errors.New("wire: unsupported token version")

	// ErrTruncated indicates a payload shorter than the version 1 minimum.
	ErrTruncated = errors.New("wire: truncated payload")

	// ErrUnencodableVersion is returned by Encode for versions it cannot
	// produce.
	ErrUnencodableVersion = errors.New("wire: cannot encode unknown token version")
)
