package auth

import "errors"

// Authentication failure modes, ordered from malformed request to valid but
// unrecognised credential.
var (
	// ErrMissingToken indicates the request carried no credential at all.
	ErrMissingToken = errors.New("missing API token")

	// ErrMalformedHeader indicates an Authorization header without the
	// Bearer scheme.
	ErrMalformedHeader = errors.New("malformed authorization header")

	// ErrInvalidToken indicates a well-formed credential that matches no
	// configured token.
	ErrInvalidToken = errors.New("invalid API token")
)
