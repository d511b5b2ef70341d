package geolocation

import "errors"

var (
	// ErrLookupFailed is the single error returned when every provider failed.
	ErrLookupFailed = errors.New("Lookup failed across providers. Please try again later.") //nolint:stylecheck,revive

	ErrTooManyRequests = errors.New("too many requests sent")
	ErrBadHTTPStatus   = errors.New("bad HTTP status received")

	// errNoMatch is returned by a normalizer when the provider payload
	// signals the address could not be looked up.
	errNoMatch = errors.New("provider returned no match")
)
