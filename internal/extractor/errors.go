package extractor

import "errors"

var (
	// ErrMalformedResponse means the backend answered but its payload is not
	// valid JSON or is missing required keys. Retrying rarely helps.
	ErrMalformedResponse = errors.New("backend returned malformed response")

	// ErrBackendTransport covers timeouts and connection failures before a
	// usable response was received. Callers may retry or fall back.
	ErrBackendTransport = errors.New("backend request failed")
)
