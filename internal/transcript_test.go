package internal

import (
	"errors"
	"fmt"
	"testing"
)

func TestFetchErrorReportsCategoryOnly(t *testing.T) {
	cause := errors.New("HTTP 403 from https://example.com/timedtext?key=secret")
	err := NewFetchError(FetchErrTranscriptsDisabled, cause)

	if err.Error() != "TranscriptsDisabled" {
		t.Errorf("Error() = %q, want %q", err.Error(), "TranscriptsDisabled")
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap() should expose the underlying cause")
	}
}

func TestFetchErrorKindNames(t *testing.T) {
	tests := []struct {
		kind FetchErrorKind
		want string
	}{
		{FetchErrTranscriptsDisabled, "TranscriptsDisabled"},
		{FetchErrNoTranscriptFound, "NoTranscriptFound"},
		{FetchErrVideoUnavailable, "VideoUnavailable"},
		{FetchErrInvalidVideoID, "InvalidVideoId"},
		{FetchErrOther, "FetchFailed"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("FetchErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestClassifyFetchError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want FetchErrorKind
	}{
		{
			name: "captions disabled",
			err:  errors.New("subtitles are disabled for this video"),
			want: FetchErrTranscriptsDisabled,
		},
		{
			name: "no transcript",
			err:  errors.New("no transcript found for requested languages"),
			want: FetchErrNoTranscriptFound,
		},
		{
			name: "subtitles missing",
			err:  errors.New("yt-dlp: no subtitle files for dQw4w9WgXcQ"),
			want: FetchErrNoTranscriptFound,
		},
		{
			name: "video unavailable",
			err:  errors.New("ERROR: Video unavailable"),
			want: FetchErrVideoUnavailable,
		},
		{
			name: "private video",
			err:  errors.New("this is a private video"),
			want: FetchErrVideoUnavailable,
		},
		{
			name: "invalid id",
			err:  errors.New("invalid video id"),
			want: FetchErrInvalidVideoID,
		},
		{
			name: "invalid video url",
			err:  errors.New("invalid video URL"),
			want: FetchErrInvalidVideoID,
		},
		{
			name: "unrelated invalid message",
			err:  errors.New("ERROR: invalid proxy URL"),
			want: FetchErrOther,
		},
		{
			name: "anything else",
			err:  errors.New("connection reset by peer"),
			want: FetchErrOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyFetchError(tt.err)
			if got.Kind != tt.want {
				t.Errorf("ClassifyFetchError(%v).Kind = %s, want %s", tt.err, got.Kind, tt.want)
			}
		})
	}
}

func TestClassifyFetchErrorPassthrough(t *testing.T) {
	if ClassifyFetchError(nil) != nil {
		t.Error("ClassifyFetchError(nil) should be nil")
	}

	original := NewFetchError(FetchErrVideoUnavailable, fmt.Errorf("gone"))
	if got := ClassifyFetchError(original); got != original {
		t.Error("ClassifyFetchError should return an existing FetchError unchanged")
	}
}
