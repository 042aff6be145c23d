// Package keylist reads newline-delimited citation key lists.
package keylist

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Read parses a newline-delimited key list: one key per line, surrounding
// whitespace trimmed, then surrounding double and single quote characters
// stripped (shell-quoted lists are common when keys are piped in). Blank
// lines are skipped. This quote stripping applies only to this mode, never
// to \cite{...} markers.
func Read(r io.Reader) ([]string, error) {
	var keys []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key := strings.TrimSpace(scanner.Text())
		key = strings.Trim(key, `"`)
		key = strings.Trim(key, `'`)
		if key == "" {
			continue
		}
		keys = append(keys, key)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading key list: %w", err)
	}

	return keys, nil
}
