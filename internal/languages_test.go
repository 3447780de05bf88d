package internal

import (
	"slices"
	"strings"
	"testing"
)

func TestParseLanguages(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want []string
	}{
		{
			name: "fallback appended",
			csv:  "de,fr",
			want: []string{"de", "fr", "en"},
		},
		{
			name: "no duplicate fallback",
			csv:  "en,de",
			want: []string{"en", "de"},
		},
		{
			name: "single tag",
			csv:  "en",
			want: []string{"en"},
		},
		{
			name: "empty input",
			csv:  "",
			want: []string{"en"},
		},
		{
			name: "whitespace trimmed",
			csv:  " de , fr ",
			want: []string{"de", "fr", "en"},
		},
		{
			name: "empty entries dropped",
			csv:  "de,,fr,",
			want: []string{"de", "fr", "en"},
		},
		{
			name: "duplicates kept",
			csv:  "de,de,fr",
			want: []string{"de", "de", "fr", "en"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLanguages(tt.csv)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ParseLanguages(%q) = %v, want %v", tt.csv, got, tt.want)
			}
		})
	}
}

func TestParseLanguagesCap(t *testing.T) {
	csv := strings.Join([]string{"aa", "bb", "cc", "dd", "ee", "ff", "gg", "hh", "ii", "jj", "kk", "ll"}, ",")
	got := ParseLanguages(csv)
	if len(got) != maxLanguages {
		t.Fatalf("ParseLanguages returned %d entries, want %d", len(got), maxLanguages)
	}
	if got[0] != "aa" || got[maxLanguages-1] != "jj" {
		t.Errorf("ParseLanguages cap kept wrong entries: %v", got)
	}
}
