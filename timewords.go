// Package timewords renders time durations as short human-readable
// approximations such as "about 5 hours" or "almost 2 years", the kind
// of text shown next to relative timestamps ("posted 3 days ago").
//
// The core is Classify, a pure function that maps a number of seconds
// onto one of eleven phrase buckets via an ordered threshold table.
// Rendering is separate: a Renderer turns a bucket and count into
// text, defaulting to a built-in English table. The locale subpackage
// loads substitute tables for other languages from YAML files.
//
// Everything here is stateless and safe for concurrent use.
package timewords

import "time"

type options struct {
	includeSeconds bool
	renderer       Renderer
	clock          Clock
}

// Option adjusts how a duration is classified and rendered.
type Option func(*options)

// WithIncludeSeconds enables second-level granularity for durations
// under about a minute ("less than 10 seconds", "half a minute").
// Without it the whole sub-minute range reads "less than a minute".
func WithIncludeSeconds() Option {
	return func(o *options) { o.includeSeconds = true }
}

// WithRenderer substitutes the renderer used to produce text, e.g. a
// locale.Table loaded for another language.
func WithRenderer(r Renderer) Option {
	return func(o *options) { o.renderer = r }
}

// WithClock substitutes the time source used by Since, Until, and
// Epoch inputs.
func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

func buildOptions(opts []Option) options {
	o := options{
		renderer: English(),
		clock:    RealClock{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// InWords formats a duration in seconds as an approximate phrase. The
// sign of the duration is ignored. Non-finite input returns
// ErrInvalidInput.
func InWords(seconds float64, opts ...Option) (string, error) {
	o := buildOptions(opts)
	ph, err := Classify(seconds, o.includeSeconds)
	if err != nil {
		return "", err
	}
	return o.renderer.Render(ph.Bucket, ph.Count)
}

// Between formats the distance between two instants.
func Between(from, to time.Time, opts ...Option) (string, error) {
	return InWords(to.Sub(from).Seconds(), opts...)
}

// Since formats how long ago t was, read against the configured clock.
func Since(t time.Time, opts ...Option) (string, error) {
	o := buildOptions(opts)
	return Between(t, o.clock.Now(), opts...)
}

// Until formats how far away t is, read against the configured clock.
// Since classification ignores sign this matches Since for the same
// instant; it exists so call sites read correctly.
func Until(t time.Time, opts ...Option) (string, error) {
	o := buildOptions(opts)
	return Between(o.clock.Now(), t, opts...)
}
