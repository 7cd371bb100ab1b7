package timewords

import (
	"fmt"
	"strings"
)

// Renderer turns a classified bucket and count into display text.
// Implementations must cover every bucket returned by Buckets and
// select the correct singular or plural wording where the bucket
// varies by count. The locale subpackage provides a pluggable,
// locale-file backed implementation; the built-in English renderer is
// the default.
type Renderer interface {
	Render(b Bucket, count int) (string, error)
}

// englishPhrases holds the built-in English wording. The "one" form is
// used for a count of exactly 1, "other" for everything else. Forms
// without a %d verb ignore the count.
var englishPhrases = map[Bucket]struct{ one, other string }{
	LessThanXSeconds: {"less than 1 second", "less than %d seconds"},
	HalfAMinute:      {"half a minute", "half a minute"},
	LessThanXMinutes: {"less than a minute", "less than %d minutes"},
	XMinutes:         {"1 minute", "%d minutes"},
	AboutXHours:      {"about 1 hour", "about %d hours"},
	XDays:            {"1 day", "%d days"},
	AboutXMonths:     {"about 1 month", "about %d months"},
	XMonths:          {"1 month", "%d months"},
	AboutXYears:      {"about 1 year", "about %d years"},
	OverXYears:       {"over 1 year", "over %d years"},
	AlmostXYears:     {"almost 1 year", "almost %d years"},
}

type englishRenderer struct{}

// English returns the built-in English renderer.
func English() Renderer { return englishRenderer{} }

func (englishRenderer) Render(b Bucket, count int) (string, error) {
	p, ok := englishPhrases[b]
	if !ok {
		return "", fmt.Errorf("render %q: %w", b, ErrUnknownBucket)
	}
	if count == 1 {
		return p.one, nil
	}
	if strings.Contains(p.other, "%d") {
		return fmt.Sprintf(p.other, count), nil
	}
	return p.other, nil
}
