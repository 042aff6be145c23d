// Package cite resolves LaTeX-style \cite{...} markers in a document
// against a bibliography, numbering keys by first appearance.
package cite

import (
	"regexp"
	"strings"
)

// markerPattern matches a citation marker: \cite{key1,key2,...}
var markerPattern = regexp.MustCompile(`\\cite\{([^}]+)\}`)

// Order holds the citation numbering for one document: the distinct cited
// keys in first-appearance order and the 1-based number assigned to each.
// It is built once, over the original text, before any substitution.
type Order struct {
	Keys    []string
	Numbers map[string]int
}

// Scan finds every citation marker in the document and assigns each
// distinct key a number by first appearance, scanning left to right, top
// to bottom. A marker with several keys contributes them in marker order.
// Repeat citations keep their original number.
func Scan(document string) Order {
	order := Order{Numbers: make(map[string]int)}

	for _, match := range markerPattern.FindAllStringSubmatch(document, -1) {
		for _, key := range splitKeys(match[1]) {
			if _, seen := order.Numbers[key]; seen {
				continue
			}
			order.Keys = append(order.Keys, key)
			order.Numbers[key] = len(order.Keys)
		}
	}

	return order
}

// splitKeys splits a marker's comma-separated key list, trimming
// surrounding whitespace. Quote characters are left alone; quote stripping
// belongs to the newline-delimited key-list mode, not to markers.
func splitKeys(list string) []string {
	parts := strings.Split(list, ",")
	keys := make([]string, len(parts))
	for i, part := range parts {
		keys[i] = strings.TrimSpace(part)
	}
	return keys
}
