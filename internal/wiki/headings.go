// Package wiki converts Markdown headings to MediaWiki headings.
package wiki

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// headingPattern matches a Markdown heading: one or more '#' at the start
// of a line, optional whitespace, then the heading text.
var headingPattern = regexp.MustCompile(`^(#+)\s*(.*)`)

// ConvertLine converts a single Markdown heading line to MediaWiki form
// ("## Title" becomes "== Title =="). Non-heading lines are returned
// unchanged, and the second result reports whether a conversion happened.
func ConvertLine(line string) (string, bool) {
	m := headingPattern.FindStringSubmatch(line)
	if m == nil {
		return line, false
	}

	level := strings.Repeat("=", len(m[1]))
	text := strings.TrimSpace(m[2])
	return level + " " + text + " " + level, true
}

// Convert rewrites Markdown headings to MediaWiki headings line by line,
// copying everything else through untouched.
func Convert(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line, _ := ConvertLine(scanner.Text())
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}
