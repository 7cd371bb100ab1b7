package locale

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/zjrosen/timewords"
)

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Lookup(language.English)
	require.False(t, ok, "empty registry matches nothing")

	fr, err := Parse([]byte(frenchLocale))
	require.NoError(t, err)
	r.Register(fr)

	got, ok := r.Lookup(language.French)
	require.True(t, ok)
	require.Equal(t, fr, got)

	// Regional variants resolve to the base language.
	got, ok = r.Lookup(language.MustParse("fr-CA"))
	require.True(t, ok)
	require.Equal(t, fr, got)
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	r := NewRegistry()

	first, err := Parse([]byte(frenchLocale))
	require.NoError(t, err)
	r.Register(first)

	second, err := Parse([]byte(frenchLocale))
	require.NoError(t, err)
	r.Register(second)

	got, ok := r.Lookup(language.French)
	require.True(t, ok)
	require.Same(t, second, got)
}

func TestDefault_HasEnglish(t *testing.T) {
	tbl, ok := Default.Lookup(language.English)
	require.True(t, ok)
	require.Equal(t, language.English, tbl.Tag())

	got, err := tbl.Render(timewords.AboutXHours, 5)
	require.NoError(t, err)
	require.Equal(t, "about 5 hours", got)
}

func TestFor(t *testing.T) {
	t.Run("regional variant of english", func(t *testing.T) {
		require.Equal(t, language.English, For("en-GB").Tag())
	})

	t.Run("unregistered language falls back to english", func(t *testing.T) {
		require.Equal(t, language.English, For("zu").Tag())
	})

	t.Run("garbage tag falls back to english", func(t *testing.T) {
		require.Equal(t, language.English, For("!!").Tag())
	})
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	fr, err := Parse([]byte(frenchLocale))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			r.Register(fr)
		}()
		go func() {
			defer wg.Done()
			r.Lookup(language.French)
		}()
	}
	wg.Wait()

	_, ok := r.Lookup(language.French)
	require.True(t, ok)
}
