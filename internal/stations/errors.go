package stations

import "errors"

var (
	// ErrMalformedFeed means a feed batch held no usable records at all.
	// Individually malformed records are skipped and counted instead.
	ErrMalformedFeed = errors.New("malformed feed")

	// ErrUnknownPredicate means the caller named an eligibility rule the
	// engine does not implement.
	ErrUnknownPredicate = errors.New("unknown predicate")

	// ErrInvalidLimit means a non-positive result limit was requested.
	ErrInvalidLimit = errors.New("invalid limit")
)
