package locale

import (
	"fmt"
	"io/fs"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/timewords"
)

// localeFile is the root structure of a locale YAML file.
type localeFile struct {
	Tag             string           `yaml:"tag"`               // BCP-47 tag, e.g. "en", "pt-BR"
	DistanceInWords map[string]Forms `yaml:"distance_in_words"` // bucket id -> plural forms
}

// Parse builds a Table from raw locale-file YAML. Every phrase bucket
// must carry at least an "other" form; entries under keys that are not
// buckets are dropped.
func Parse(data []byte) (*Table, error) {
	var file localeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse locale: %w", err)
	}

	tag, err := language.Parse(file.Tag)
	if err != nil {
		return nil, fmt.Errorf("parse locale tag %q: %w", file.Tag, err)
	}

	entries := make(map[timewords.Bucket]Forms, len(file.DistanceInWords))
	for _, b := range timewords.Buckets() {
		forms, ok := file.DistanceInWords[string(b)]
		if !ok || forms.Other == "" {
			return nil, fmt.Errorf("locale %s: missing phrase for bucket %q", file.Tag, b)
		}
		entries[b] = forms
	}

	return &Table{tag: tag, entries: entries}, nil
}

// Load reads and parses a locale file from fsys.
func Load(fsys fs.FS, path string) (*Table, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	tbl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tbl, nil
}
