package locale

import (
	"embed"
	"sync"

	"golang.org/x/text/language"
)

//go:embed locales/*.yml
var builtin embed.FS

// Registry is a concurrency-safe set of phrase tables keyed by
// language tag. Lookups go through a language matcher, so a request
// for a regional variant finds the base language's table. It is
// read-mostly: tables are registered at startup and shared across
// callers afterwards.
type Registry struct {
	mu      sync.RWMutex
	tables  map[language.Tag]*Table
	tags    []language.Tag
	matcher language.Matcher
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[language.Tag]*Table)}
}

// Register adds or replaces the table for its language.
func (r *Registry) Register(t *Table) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tables[t.tag]; !exists {
		r.tags = append(r.tags, t.tag)
	}
	r.tables[t.tag] = t
	r.matcher = language.NewMatcher(r.tags)
}

// Lookup finds the best table for tag. It reports false when no
// registered language matches at all.
func (r *Registry) Lookup(tag language.Tag) (*Table, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.matcher == nil {
		return nil, false
	}
	_, idx, conf := r.matcher.Match(tag)
	if conf == language.No {
		return nil, false
	}
	return r.tables[r.tags[idx]], true
}

// Default is the package-level registry, preloaded with the built-in
// English table.
var Default = func() *Registry {
	r := NewRegistry()
	tbl, err := Load(builtin, "locales/en.yml")
	if err != nil {
		panic("locale: built-in locale is broken: " + err.Error())
	}
	r.Register(tbl)
	return r
}()

// English returns the built-in English table from Default.
func English() *Table {
	tbl, ok := Default.Lookup(language.English)
	if !ok {
		panic("locale: English table missing from default registry")
	}
	return tbl
}

// For resolves a BCP-47 tag against Default, falling back to English
// when the language has no registered table.
func For(tag string) *Table {
	parsed, err := language.Parse(tag)
	if err != nil {
		return English()
	}
	if tbl, ok := Default.Lookup(parsed); ok {
		return tbl
	}
	return English()
}
