// Package bibtex parses BibTeX bibliography files into keyed entries.
//
// The parser is deliberately simple: it recognizes @type{key, ...} entries
// and single-line "name = {value}," fields. Field values spanning multiple
// lines are not reconstructed; that is the supported contract, not a bug.
// It does not handle cross-references, string macros, or accent commands.
package bibtex

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// Entry is one bibliography entry: its type (article, book, ...) and its
// fields keyed by lower-cased field name.
type Entry struct {
	Type   string
	Fields map[string]string
}

// Get returns the named field or the empty string if absent.
func (e Entry) Get(name string) string {
	return e.Fields[name]
}

// entryStartPattern matches the head of an entry: @type{key,
var entryStartPattern = regexp.MustCompile(`@(\w+)\s*\{\s*([^,]+),`)

// fieldPattern matches a single-line field: name = {value} with an
// optional trailing comma. Values with embedded newlines do not match.
var fieldPattern = regexp.MustCompile(`^(\w+)\s*=\s*\{(.*)\},?$`)

// ParseFile reads and parses a bibliography file. A missing or unreadable
// file is an error naming the path; everything past that degrades to
// warnings on warn (entries that yield no fields are dropped).
func ParseFile(path string, warn io.Writer) (map[string]Entry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("bib file not found at '%s'", path)
		}
		return nil, fmt.Errorf("could not read bib file '%s': %w", path, err)
	}
	return Parse(string(content), warn), nil
}

// Parse parses bibliography text into a map from citation key to entry.
// Later entries with a duplicate key overwrite earlier ones. Entries whose
// body yields no parseable fields are excluded from the result and reported
// on warn; warn may be nil to suppress diagnostics.
func Parse(content string, warn io.Writer) map[string]Entry {
	entries := make(map[string]Entry)

	for _, match := range entryStartPattern.FindAllStringSubmatchIndex(content, -1) {
		entryType := strings.ToLower(content[match[2]:match[3]])
		citeKey := strings.TrimSpace(content[match[4]:match[5]])

		body := entryBody(content, match[1])
		fields := parseFields(body)

		if len(fields) == 0 {
			if warn != nil {
				fmt.Fprintf(warn, "Warning: Could not parse fields for entry '%s'\n", citeKey)
			}
			continue
		}
		entries[citeKey] = Entry{Type: entryType, Fields: fields}
	}

	return entries
}

// entryBody extracts the entry content following the header match, using
// brace-depth counting. The opening brace was consumed by the header, so
// scanning starts at depth 1 and stops when depth returns to zero. Nested
// braces are not regular, so this cannot be a regex.
func entryBody(content string, start int) string {
	depth := 1
	for i := start; i < len(content); i++ {
		switch content[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return content[start:i]
			}
		}
	}
	// Unterminated entry: take everything to EOF.
	return content[start:]
}

// parseFields extracts name = {value} fields from an entry body, one field
// per line. Field names are lower-cased; the delimiting braces and any
// remaining brace characters are stripped from values (one nesting level
// of braces is supported).
func parseFields(body string) map[string]string {
	fields := make(map[string]string)

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := fieldPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(m[1]))
		value := strings.TrimSpace(m[2])
		value = strings.ReplaceAll(value, "{", "")
		value = strings.ReplaceAll(value, "}", "")
		fields[name] = value
	}

	return fields
}
