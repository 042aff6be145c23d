// Package style renders bibliography entries as display strings.
//
// Each style is a Formatter keyed by name in a Registry. New styles plug in
// without touching the citation scanner or resolver.
package style

import (
	"fmt"
	"sort"

	"github.com/trondarild/local-tools/internal/bibtex"
)

// Formatter renders one bibliography entry plus its assigned citation
// number into a display string.
type Formatter interface {
	Format(entry bibtex.Entry, number int) string
}

// FormatterFunc adapts a plain function to the Formatter interface.
type FormatterFunc func(entry bibtex.Entry, number int) string

// Format implements Formatter.
func (f FormatterFunc) Format(entry bibtex.Entry, number int) string {
	return f(entry, number)
}

// Registry maps style names to formatters. Each resolver owns its own
// registry, so concurrent runs in one process cannot observe one
// another's registered styles.
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry returns a registry with the built-in styles registered.
func NewRegistry() *Registry {
	r := &Registry{formatters: make(map[string]Formatter)}
	r.Register("numbered", FormatterFunc(FormatNumbered))
	return r
}

// Register adds or replaces a style.
func (r *Registry) Register(name string, f Formatter) {
	r.formatters[name] = f
}

// Get returns the formatter for name, or an error listing the known styles.
func (r *Registry) Get(name string) (Formatter, error) {
	f, ok := r.formatters[name]
	if !ok {
		return nil, fmt.Errorf("unknown style %q (available: %v)", name, r.Names())
	}
	return f, nil
}

// Names returns the registered style names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
