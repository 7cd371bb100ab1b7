package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"

	"github.com/zjrosen/timewords"
)

// Forms holds the wording for one bucket across CLDR plural
// categories. Other is required; the rest apply only when the
// language's plural rules select them.
type Forms struct {
	Zero  string `yaml:"zero,omitempty"`
	One   string `yaml:"one,omitempty"`
	Two   string `yaml:"two,omitempty"`
	Few   string `yaml:"few,omitempty"`
	Many  string `yaml:"many,omitempty"`
	Other string `yaml:"other"`
}

// pick selects the form for count under tag's cardinal plural rules,
// falling back to Other when the selected category has no wording.
func (f Forms) pick(tag language.Tag, count int) string {
	var form string
	switch plural.Cardinal.MatchPlural(tag, count, 0, 0, 0, 0) {
	case plural.Zero:
		form = f.Zero
	case plural.One:
		form = f.One
	case plural.Two:
		form = f.Two
	case plural.Few:
		form = f.Few
	case plural.Many:
		form = f.Many
	}
	if form == "" {
		form = f.Other
	}
	return form
}

// Table is a phrase table for a single language. It implements
// timewords.Renderer and is immutable after construction, so it may
// be shared freely across concurrent callers.
type Table struct {
	tag     language.Tag
	entries map[timewords.Bucket]Forms
}

// Tag reports the language this table renders.
func (t *Table) Tag() language.Tag { return t.tag }

// Render produces the phrase for a bucket and count. A bucket outside
// the fixed set returns timewords.ErrUnknownBucket.
func (t *Table) Render(b timewords.Bucket, count int) (string, error) {
	forms, ok := t.entries[b]
	if !ok {
		return "", fmt.Errorf("locale %s: render %q: %w", t.tag, b, timewords.ErrUnknownBucket)
	}
	form := forms.pick(t.tag, count)
	if strings.Contains(form, "%d") {
		return fmt.Sprintf(form, count), nil
	}
	return form, nil
}
