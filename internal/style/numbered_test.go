package style

import (
	"strings"
	"testing"

	"github.com/trondarild/local-tools/internal/bibtex"
)

func TestFormatAuthors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", "N/A"},
		{"single", "Albert Einstein", "Einstein, A."},
		{"two", "Albert Einstein and Isaac Newton", "Einstein, A., Newton, I."},
		{"middle names", "John Ronald Reuel Tolkien", "Tolkien, J. R. R."},
		{"mononym", "Plato", "Plato, "},
		{"extra whitespace", "  Albert   Einstein  ", "Einstein, A."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAuthors(tt.raw); got != tt.want {
				t.Errorf("FormatAuthors(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFormatNumbered_FullEntry(t *testing.T) {
	entry := bibtex.Entry{Type: "article", Fields: map[string]string{
		"author":  "John Smith and Jane Doe",
		"year":    "2020",
		"title":   "A Study",
		"journal": "Journal of X",
		"volume":  "5",
		"number":  "2",
		"pages":   "10--20",
	}}

	got := FormatNumbered(entry, 1)
	want := "**[1]** Smith, J., Doe, J. (2020). A Study. *Journal of X*. 5(2), pp. 10–20"
	if got != want {
		t.Errorf("FormatNumbered() = %q, want %q", got, want)
	}
}

func TestFormatNumbered_MissingFieldsDefault(t *testing.T) {
	entry := bibtex.Entry{Type: "misc", Fields: map[string]string{}}

	got := FormatNumbered(entry, 3)
	want := "**[3]** N/A (N/A). N/A."
	if got != want {
		t.Errorf("FormatNumbered() = %q, want %q", got, want)
	}
}

func TestFormatNumbered_OptionalFieldOmission(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
		want   string
	}{
		{
			"no journal",
			map[string]string{"author": "A B", "year": "2000", "title": "T", "pages": "7"},
			"**[1]** B, A. (2000). T. pp. 7",
		},
		{
			"volume only",
			map[string]string{"author": "A B", "year": "2000", "title": "T", "volume": "12"},
			"**[1]** B, A. (2000). T. 12,",
		},
		{
			"number only",
			map[string]string{"author": "A B", "year": "2000", "title": "T", "number": "4"},
			"**[1]** B, A. (2000). T. (4),",
		},
		{
			"single page",
			map[string]string{"author": "A B", "year": "2000", "title": "T", "pages": "42"},
			"**[1]** B, A. (2000). T. pp. 42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := bibtex.Entry{Type: "article", Fields: tt.fields}
			if got := FormatNumbered(entry, 1); got != tt.want {
				t.Errorf("FormatNumbered() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatNumbered_PageRangeEnDash(t *testing.T) {
	entry := bibtex.Entry{Type: "article", Fields: map[string]string{
		"author": "A B", "year": "2000", "title": "T", "pages": "100--200",
	}}

	got := FormatNumbered(entry, 1)
	if want := "pp. 100–200"; !strings.Contains(got, want) {
		t.Errorf("FormatNumbered() = %q, want it to contain %q", got, want)
	}
}
