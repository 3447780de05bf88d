package internal

import (
	"context"
	"strings"
)

// TranscriptFetcher retrieves caption lines for a video from the captioning
// service, honoring the language preference order.
type TranscriptFetcher interface {
	Fetch(ctx context.Context, videoID string, languages []string) ([]string, error)
}

// FetchErrorKind is the closed set of failure categories the captioning
// service can surface. Only the category name ever reaches the user; raw
// service errors stay internal.
type FetchErrorKind int

const (
	FetchErrOther FetchErrorKind = iota
	FetchErrTranscriptsDisabled
	FetchErrNoTranscriptFound
	FetchErrVideoUnavailable
	FetchErrInvalidVideoID
)

// String returns the category name for the error kind.
func (k FetchErrorKind) String() string {
	switch k {
	case FetchErrTranscriptsDisabled:
		return "TranscriptsDisabled"
	case FetchErrNoTranscriptFound:
		return "NoTranscriptFound"
	case FetchErrVideoUnavailable:
		return "VideoUnavailable"
	case FetchErrInvalidVideoID:
		return "InvalidVideoId"
	default:
		return "FetchFailed"
	}
}

// FetchError wraps a service failure with its category. Error() reports the
// category name only, so implementation details and anything sensitive in
// the underlying error never leak into diagnostics.
type FetchError struct {
	Kind  FetchErrorKind
	cause error
}

func (e *FetchError) Error() string { return e.Kind.String() }

// Unwrap exposes the underlying service error for verbose logging.
func (e *FetchError) Unwrap() error { return e.cause }

// NewFetchError builds a FetchError of the given kind.
func NewFetchError(kind FetchErrorKind, cause error) *FetchError {
	return &FetchError{Kind: kind, cause: cause}
}

// ClassifyFetchError maps a raw captioning-service error onto the closed
// category set. Both the Go caption client and yt-dlp report failures as
// plain text, so classification goes by message content.
func ClassifyFetchError(err error) *FetchError {
	if err == nil {
		return nil
	}
	if fe, ok := err.(*FetchError); ok {
		return fe
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "disabled"):
		return NewFetchError(FetchErrTranscriptsDisabled, err)
	case strings.Contains(msg, "no transcript"),
		strings.Contains(msg, "not available"),
		strings.Contains(msg, "no subtitle"),
		strings.Contains(msg, "not found"):
		return NewFetchError(FetchErrNoTranscriptFound, err)
	case strings.Contains(msg, "unavailable"),
		strings.Contains(msg, "private video"),
		strings.Contains(msg, "removed"):
		return NewFetchError(FetchErrVideoUnavailable, err)
	case strings.Contains(msg, "invalid video"),
		strings.Contains(msg, "invalid id"):
		return NewFetchError(FetchErrInvalidVideoID, err)
	default:
		return NewFetchError(FetchErrOther, err)
	}
}
