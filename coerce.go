package timewords

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
)

// Input is a duration-like value that can yield a signed number of
// seconds. The set of implementations is closed: Seconds, Epoch,
// Calendar, and Any. Coercion happens entirely outside Classify; the
// classifier only ever sees the resolved number.
type Input interface {
	durationSeconds(now time.Time) (float64, error)
}

// Seconds is a plain signed seconds count.
type Seconds float64

func (s Seconds) durationSeconds(time.Time) (float64, error) {
	return float64(s), nil
}

// Epoch is an instant in time; it resolves to the seconds elapsed
// between it and the clock's current time.
type Epoch time.Time

func (e Epoch) durationSeconds(now time.Time) (float64, error) {
	return now.Sub(time.Time(e)).Seconds(), nil
}

// Calendar is a duration given as calendar components. Months count as
// exactly 30 days; like the 365-day year in the classifier, this is a
// deliberate approximation.
type Calendar struct {
	Months  int
	Days    int
	Minutes int
	Seconds int
}

func (c Calendar) durationSeconds(time.Time) (float64, error) {
	secs := c.Months*30*86400 + c.Days*86400 + c.Minutes*60 + c.Seconds
	return float64(secs), nil
}

// Any wraps an arbitrary value treated directly as a numeric seconds
// count. Strings and every numeric type cast cleanly; anything else is
// rejected with ErrInvalidInput. A nil value is ErrMissingInput.
type Any struct {
	Value any
}

func (a Any) durationSeconds(time.Time) (float64, error) {
	if a.Value == nil {
		return 0, ErrMissingInput
	}
	f, err := cast.ToFloat64E(a.Value)
	if err != nil {
		return 0, fmt.Errorf("coerce %v: %w", a.Value, ErrInvalidInput)
	}
	return f, nil
}

// Resolve extracts a signed number of seconds from a duration-like
// input. The clock option matters only for Epoch inputs.
func Resolve(in Input, opts ...Option) (float64, error) {
	if in == nil {
		return 0, ErrMissingInput
	}
	o := buildOptions(opts)
	return in.durationSeconds(o.clock.Now())
}

// InWordsOf resolves a duration-like input and formats it, composing
// Resolve and InWords.
func InWordsOf(in Input, opts ...Option) (string, error) {
	secs, err := Resolve(in, opts...)
	if err != nil {
		return "", err
	}
	return InWords(secs, opts...)
}
