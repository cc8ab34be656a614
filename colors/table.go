// Package colors holds the language -> color table GitHub uses on its own pages.
//
// The embedded colors.json follows the github-colors format and is refreshed by hand
// from upstream. A local file (.json or .toml) can be merged over it.
package colors

import (
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DefaultFallback is used when neither the table nor the caller provides a color
const DefaultFallback = "#cccccc"

//go:embed colors.json
var embeddedColors []byte

// Entry is a single language of the table. Color is nil for languages GitHub never colored.
type Entry struct {
	Color *string `json:"color" toml:"color"`
	URL   string  `json:"url" toml:"url"`
}

// Table is read-only once built, so it can be shared between containers
type Table struct {
	entries  map[string]Entry
	fallback string
}

// Default returns the embedded table
func Default() *Table {
	table, err := Parse(embeddedColors)
	if err != nil {
		// the embedded file is part of the build, it can only be broken by a bad refresh
		panic(errors.Wrap(err, "embedded colors.json"))
	}

	return table
}

// Parse decodes a github-colors JSON document
func Parse(data []byte) (*Table, error) {
	entries := make(map[string]Entry)

	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrap(err, "unable to decode colors table")
	}

	return &Table{entries: entries, fallback: DefaultFallback}, nil
}

// Load reads a color table from a .json or .toml file
func Load(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		entries := make(map[string]Entry)
		if _, err := toml.DecodeFile(path, &entries); err != nil {
			return nil, errors.Wrapf(err, "unable to decode colors table %s", path)
		}

		return &Table{entries: entries, fallback: DefaultFallback}, nil

	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to read colors table %s", path)
		}

		return Parse(data)

	default:
		return nil, errors.Errorf("unsupported colors table format %q", filepath.Ext(path))
	}
}

// LoadWithOverride returns the embedded table, merged with the override file when one is given
func LoadWithOverride(overrideFile, fallback string) (*Table, error) {
	table := Default()

	if overrideFile != "" {
		override, err := Load(overrideFile)
		if err != nil {
			return nil, err
		}

		log.WithFields(log.Fields{
			"file":      overrideFile,
			"languages": len(override.entries),
		}).Debug("merging colors override over the embedded table")

		table = table.Merge(override)
	}

	return table.WithFallback(fallback), nil
}

// Merge returns a new table where the entries of other replace the ones of t
func (t *Table) Merge(other *Table) *Table {
	merged := make(map[string]Entry, len(t.entries)+len(other.entries))

	for language, entry := range t.entries {
		merged[language] = entry
	}

	for language, entry := range other.entries {
		merged[language] = entry
	}

	return &Table{entries: merged, fallback: t.fallback}
}

// WithFallback returns a copy of the table using color for unknown languages.
// An empty color keeps the current fallback.
func (t *Table) WithFallback(color string) *Table {
	if color == "" {
		color = t.fallback
	}

	return &Table{entries: t.entries, fallback: color}
}

// Fallback is the color used for languages missing from the table
func (t *Table) Fallback() string {
	return t.fallback
}

// Lookup returns the color of language, false when the language is unknown or has no color
func (t *Table) Lookup(language string) (string, bool) {
	entry, found := t.entries[language]
	if !found || entry.Color == nil || *entry.Color == "" {
		return "", false
	}

	return *entry.Color, true
}

// ColorFor never fails: languages GitHub reports but the table misses get the fallback color
func (t *Table) ColorFor(language string) string {
	if color, found := t.Lookup(language); found {
		return color
	}

	log.WithField("language", language).Debug("language missing from colors table, using fallback color")
	return t.fallback
}

// Languages returns the languages of the table, sorted
func (t *Table) Languages() []string {
	languages := make([]string, 0, len(t.entries))

	for language := range t.entries {
		languages = append(languages, language)
	}

	sort.Strings(languages)
	return languages
}

// Entries returns a copy of the table content
func (t *Table) Entries() map[string]Entry {
	entries := make(map[string]Entry, len(t.entries))

	for language, entry := range t.entries {
		entries[language] = entry
	}

	return entries
}

// Len is the number of languages in the table
func (t *Table) Len() int {
	return len(t.entries)
}
