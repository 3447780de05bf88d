package internal

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// maxArgLength caps the input handed to the extraction patterns. Anything
// longer is rejected before any regex runs.
const maxArgLength = 500

// Ordered extraction patterns: watch/short URLs (v= or path segment),
// embed URLs, then a bare 11-character ID. First match wins.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`embed/([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`^([0-9A-Za-z_-]{11})$`),
}

// strictVideoID re-validates a captured group end to end, so a loose pattern
// can never smuggle trailing garbage through.
var strictVideoID = regexp.MustCompile(`^[0-9A-Za-z_-]{11}$`)

// ExtractVideoID pulls the 11-character video ID out of a YouTube URL, or
// returns the input itself when it already is a bare ID.
func ExtractVideoID(arg string) (string, error) {
	if n := utf8.RuneCountInString(arg); n > maxArgLength {
		return "", fmt.Errorf("input too long (%d characters)", n)
	}

	for _, pattern := range videoIDPatterns {
		match := pattern.FindStringSubmatch(arg)
		if match == nil {
			continue
		}
		if strictVideoID.MatchString(match[1]) {
			return match[1], nil
		}
	}

	return "", fmt.Errorf("no video ID found in %q", arg)
}

// IsValidVideoID reports whether a string is exactly an 11-character
// YouTube video ID.
func IsValidVideoID(id string) bool {
	return strictVideoID.MatchString(id)
}
