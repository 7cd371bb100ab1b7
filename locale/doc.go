// Package locale renders classified duration buckets as phrases in a
// chosen language.
//
// A Table maps each phrase bucket to a set of plural forms and
// implements timewords.Renderer, so it plugs straight into
// timewords.WithRenderer. The form used for a given count is selected
// with CLDR cardinal plural rules for the table's language, which is
// what lets languages with richer plural systems than English (few,
// many, ...) supply correct wording without any classifier changes.
//
// # Locale files
//
// Tables are plain YAML data, one file per language:
//
//	tag: en
//	distance_in_words:
//	  about_x_hours:
//	    one: about 1 hour
//	    other: about %d hours
//	  half_a_minute:
//	    other: half a minute
//
// Every bucket needs at least an "other" form; the remaining CLDR
// categories (zero, one, two, few, many) are optional and used when
// the language's plural rules select them. The count is interpolated
// at a %d verb; forms without one ignore the count. Keys that are not
// phrase buckets are ignored, so files carrying extra entries load
// fine.
//
// # Registry
//
// A Registry holds loaded tables keyed by BCP-47 tag and resolves
// requests through a language matcher, so asking for "en-GB" finds an
// "en" table. The package-level Default registry ships with English
// preloaded; For never fails, falling back to English for languages
// with no registered table.
package locale
