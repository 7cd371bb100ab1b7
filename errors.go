package timewords

import "errors"

// ErrMissingInput is returned when no duration value was supplied.
var ErrMissingInput = errors.New("no duration supplied")

// ErrInvalidInput is returned when a duration is not a finite number
// after coercion (NaN, ±Inf, or a value that cannot be read as one).
var ErrInvalidInput = errors.New("duration is not a finite number")

// ErrUnknownBucket is returned when a renderer is asked for a bucket
// outside the fixed set. It indicates a classifier/renderer mismatch,
// a programming error rather than a recoverable condition.
var ErrUnknownBucket = errors.New("unknown phrase bucket")
