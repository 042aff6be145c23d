package keylist

import (
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain keys", "smith2020\ndoe2021\n", []string{"smith2020", "doe2021"}},
		{"blank lines skipped", "a\n\n\nb\n", []string{"a", "b"}},
		{"whitespace trimmed", "  a  \n\tb\t\n", []string{"a", "b"}},
		{"double quotes stripped", "\"smith2020\"\n", []string{"smith2020"}},
		{"single quotes stripped", "'doe2021'\n", []string{"doe2021"}},
		{"no trailing newline", "last", []string{"last"}},
		{"empty input", "", nil},
		{"quotes only", "\"\"\n''\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Read() error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Read(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRead_InteriorQuotesKept(t *testing.T) {
	got, err := Read(strings.NewReader("o'brien1999\n"))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	// Only surrounding quotes are stripped; interior apostrophes stay.
	if len(got) != 1 || got[0] != "o'brien1999" {
		t.Errorf("Read() = %v, want [o'brien1999]", got)
	}
}
