package cite

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/trondarild/local-tools/internal/bibtex"
	"github.com/trondarild/local-tools/internal/style"
)

// Result is the outcome of resolving one document: the text with markers
// rewritten to bracketed numbers, and the formatted reference list in
// number order. References is empty when no cited key had a usable entry.
type Result struct {
	Text       string
	References []string
}

// Section assembles the final document: the rewritten text followed by a
// "## References" heading and the references joined by "; ", separated
// from the body by two blank lines. With no references the text is
// returned unchanged.
func (r Result) Section() string {
	if len(r.References) == 0 {
		return r.Text
	}
	return r.Text + "\n\n\n## References\n" + strings.Join(r.References, "; ")
}

// Resolver rewrites citation markers into numbered references and builds
// the formatted reference list. It owns the parsed bibliography and the
// style registry; inputs and derived maps are never mutated, so a Resolver
// can run over any number of documents.
type Resolver struct {
	entries map[string]bibtex.Entry
	styles  *style.Registry
	warn    io.Writer
}

// NewResolver creates a resolver over the given bibliography entries.
// Warnings about unresolvable keys go to warn; pass nil to discard them.
func NewResolver(entries map[string]bibtex.Entry, styles *style.Registry, warn io.Writer) *Resolver {
	if warn == nil {
		warn = io.Discard
	}
	return &Resolver{entries: entries, styles: styles, warn: warn}
}

// Styles returns the resolver's style registry.
func (r *Resolver) Styles() *style.Registry {
	return r.styles
}

// Resolve rewrites every \cite{...} marker in document to bracketed
// numbers and renders the reference list in the named style. Keys without
// a usable bibliography entry render as "?" inline, produce a warning per
// occurrence, and are omitted from the reference list without renumbering
// the rest.
func (r *Resolver) Resolve(document, styleName string) (Result, error) {
	formatter, err := r.styles.Get(styleName)
	if err != nil {
		return Result{}, err
	}

	// Numbering is fixed before any substitution happens.
	order := Scan(document)

	text := markerPattern.ReplaceAllStringFunc(document, func(marker string) string {
		keys := splitKeys(markerPattern.FindStringSubmatch(marker)[1])
		numbers := make([]string, len(keys))
		for i, key := range keys {
			if _, ok := r.entries[key]; !ok {
				fmt.Fprintf(r.warn, "Warning: Citation key '%s' not found in bib file.\n", key)
				numbers[i] = "?"
				continue
			}
			numbers[i] = strconv.Itoa(order.Numbers[key])
		}
		return "[" + strings.Join(numbers, ", ") + "]"
	})

	return Result{Text: text, References: r.formatReferences(order, formatter)}, nil
}

// ForKeys renders references for an explicit key list, numbered 1-based in
// list order. Duplicate keys keep the number of their first occurrence and
// are rendered only once. Keys without a usable entry warn and keep their
// number, as in document resolution.
func (r *Resolver) ForKeys(keys []string, styleName string) ([]string, error) {
	formatter, err := r.styles.Get(styleName)
	if err != nil {
		return nil, err
	}

	order := Order{Numbers: make(map[string]int)}
	for _, key := range keys {
		if _, seen := order.Numbers[key]; seen {
			continue
		}
		order.Keys = append(order.Keys, key)
		order.Numbers[key] = len(order.Keys)
	}

	for _, key := range order.Keys {
		if _, ok := r.entries[key]; !ok {
			fmt.Fprintf(r.warn, "Warning: Citation key '%s' not found in bib file.\n", key)
		}
	}

	return r.formatReferences(order, formatter), nil
}

// formatReferences renders one reference per resolvable key, in number
// order. Absent keys keep their number but produce no reference; the
// warning was already emitted during marker replacement.
func (r *Resolver) formatReferences(order Order, formatter style.Formatter) []string {
	var references []string
	for i, key := range order.Keys {
		entry, ok := r.entries[key]
		if !ok {
			continue
		}
		references = append(references, formatter.Format(entry, i+1))
	}
	return references
}
