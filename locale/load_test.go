package locale

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

const frenchLocale = `
tag: fr
distance_in_words:
  less_than_x_seconds:
    one: moins d'une seconde
    other: moins de %d secondes
  half_a_minute:
    other: une demi-minute
  less_than_x_minutes:
    one: moins d'une minute
    other: moins de %d minutes
  x_minutes:
    one: 1 minute
    other: "%d minutes"
  about_x_hours:
    one: environ 1 heure
    other: environ %d heures
  x_days:
    one: 1 jour
    other: "%d jours"
  about_x_months:
    one: environ 1 mois
    other: environ %d mois
  x_months:
    one: 1 mois
    other: "%d mois"
  about_x_years:
    one: environ 1 an
    other: environ %d ans
  over_x_years:
    one: plus d'1 an
    other: plus de %d ans
  almost_x_years:
    one: presque 1 an
    other: presque %d ans
`

func TestParse(t *testing.T) {
	tbl, err := Parse([]byte(frenchLocale))
	require.NoError(t, err)
	require.Equal(t, language.French, tbl.Tag())

	got, err := tbl.Render("about_x_hours", 5)
	require.NoError(t, err)
	require.Equal(t, "environ 5 heures", got)
}

func TestParse_Errors(t *testing.T) {
	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("tag: [broken"))
		require.Error(t, err)
	})

	t.Run("bad language tag", func(t *testing.T) {
		_, err := Parse([]byte("tag: not a tag\ndistance_in_words: {}"))
		require.Error(t, err)
	})

	t.Run("missing bucket", func(t *testing.T) {
		// A table without x_minutes cannot cover the classifier's
		// output and must be rejected at load time.
		_, err := Parse([]byte(`
tag: de
distance_in_words:
  about_x_hours:
    other: etwa %d Stunden
`))
		require.Error(t, err)
		require.Contains(t, err.Error(), "missing phrase")
	})

	t.Run("bucket without other form", func(t *testing.T) {
		_, err := Parse([]byte(`
tag: de
distance_in_words:
  x_minutes:
    one: 1 Minute
`))
		require.Error(t, err)
	})
}

func TestParse_IgnoresExtraKeys(t *testing.T) {
	// Files copied from larger message catalogs may carry entries for
	// phrases this library never produces.
	extra := frenchLocale + `
  x_seconds:
    one: 1 seconde
    other: "%d secondes"
`
	tbl, err := Parse([]byte(extra))
	require.NoError(t, err)

	_, err = tbl.Render("x_seconds", 3)
	require.Error(t, err, "extra keys are dropped, not served")
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/fr.yml": &fstest.MapFile{Data: []byte(frenchLocale)},
	}

	tbl, err := Load(fsys, "locales/fr.yml")
	require.NoError(t, err)
	require.Equal(t, language.French, tbl.Tag())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "locales/nope.yml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "locales/nope.yml")
}

func TestBuiltinEnglishFileParses(t *testing.T) {
	tbl, err := Load(builtin, "locales/en.yml")
	require.NoError(t, err)
	require.Equal(t, language.English, tbl.Tag())
}
