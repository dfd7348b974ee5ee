package middleware

// HTTP header names
const (
	// HeaderRequestID carries the request ID in both directions
	HeaderRequestID = "X-Request-ID"
)

// MaxRequestIDLength bounds a caller-supplied request ID. Longer or
// non-printable IDs are replaced with a generated one.
const MaxRequestIDLength = 128
