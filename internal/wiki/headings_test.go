package wiki

import (
	"bytes"
	"strings"
	"testing"
)

func TestConvertLine(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		want      string
		converted bool
	}{
		{"h1", "# Title", "= Title =", true},
		{"h2", "## Section", "== Section ==", true},
		{"h4", "#### Deep", "==== Deep ====", true},
		{"no space after hashes", "##Tight", "== Tight ==", true},
		{"trailing whitespace trimmed", "## Padded   ", "== Padded ==", true},
		{"plain text", "Just a sentence.", "Just a sentence.", false},
		{"hash mid-line", "see issue #42", "see issue #42", false},
		{"empty heading", "##", "==  ==", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, converted := ConvertLine(tt.line)
			if got != tt.want || converted != tt.converted {
				t.Errorf("ConvertLine(%q) = (%q, %v), want (%q, %v)",
					tt.line, got, converted, tt.want, tt.converted)
			}
		})
	}
}

func TestConvert(t *testing.T) {
	input := "# Paper\n\nBody text.\n\n## Methods\nMore text.\n"
	var out bytes.Buffer

	if err := Convert(strings.NewReader(input), &out); err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	want := "= Paper =\n\nBody text.\n\n== Methods ==\nMore text.\n"
	if out.String() != want {
		t.Errorf("Convert() = %q, want %q", out.String(), want)
	}
}
