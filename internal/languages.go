package internal

import (
	"slices"
	"strings"
)

// maxLanguages caps how many language tags are forwarded to the caption
// service in one request.
const maxLanguages = 10

// ParseLanguages turns a comma-separated list of language tags into an
// ordered preference list, most preferred first. Tags are trimmed, empty
// entries dropped, "en" is appended as a fallback when not already present,
// and the result is capped at maxLanguages. Duplicates are kept as given.
func ParseLanguages(csv string) []string {
	var languages []string
	for _, tag := range strings.Split(csv, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		languages = append(languages, tag)
	}

	if !slices.Contains(languages, "en") {
		languages = append(languages, "en")
	}

	if len(languages) > maxLanguages {
		languages = languages[:maxLanguages]
	}

	return languages
}
