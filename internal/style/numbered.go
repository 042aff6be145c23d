package style

import (
	"fmt"
	"strings"

	"github.com/trondarild/local-tools/internal/bibtex"
)

// FormatNumbered renders an entry in the "numbered" style: a bold bracketed
// number, APA-like authors, year, title, italicized journal, volume(number),
// and pages. Optional fields are silently omitted; author and year fall back
// to "N/A".
//
// Example: **[1]** Smith, J., Doe, J. (2020). A Study. *Journal of X*. 5(2), pp. 10–20
func FormatNumbered(entry bibtex.Entry, number int) string {
	authors := FormatAuthors(entry.Get("author"))

	year := entry.Get("year")
	if year == "" {
		year = "N/A"
	}
	title := entry.Get("title")
	if title == "" {
		title = "N/A"
	}

	parts := []string{
		fmt.Sprintf("**[%d]**", number),
		authors,
		fmt.Sprintf("(%s).", year),
		title + ".",
	}

	if journal := entry.Get("journal"); journal != "" {
		parts = append(parts, "*"+journal+"*.")
	}

	issueInfo := entry.Get("volume")
	if num := entry.Get("number"); num != "" {
		issueInfo += "(" + num + ")"
	}
	if issueInfo != "" {
		parts = append(parts, issueInfo+",")
	}

	if pages := entry.Get("pages"); pages != "" {
		// En-dash for page ranges
		parts = append(parts, "pp. "+strings.ReplaceAll(pages, "--", "–"))
	}

	return strings.Join(parts, " ")
}

// FormatAuthors converts a raw BibTeX author field into APA-like form:
// "Albert Einstein and Isaac Newton" becomes "Einstein, A., Newton, I.".
// The last whitespace-separated token of each name is the surname; the
// rest collapse to initials. An empty field yields "N/A".
func FormatAuthors(raw string) string {
	if raw == "" {
		return "N/A"
	}

	var formatted []string
	for _, author := range strings.Split(raw, " and ") {
		parts := strings.Fields(strings.TrimSpace(author))
		if len(parts) == 0 {
			continue
		}

		surname := parts[len(parts)-1]
		initials := make([]string, 0, len(parts)-1)
		for _, part := range parts[:len(parts)-1] {
			initials = append(initials, string([]rune(part)[0])+".")
		}

		formatted = append(formatted, surname+", "+strings.Join(initials, " "))
	}

	return strings.Join(formatted, ", ")
}
