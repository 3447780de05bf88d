package internal

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript_models"
)

type fakeTranscriptAPI struct {
	transcripts []yt_transcript_models.Transcript
	err         error
	delay       time.Duration
}

func (f *fakeTranscriptAPI) GetTranscripts(videoID string, languages []string) ([]yt_transcript_models.Transcript, error) {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.transcripts, f.err
}

func track(lines ...string) yt_transcript_models.Transcript {
	var transcript yt_transcript_models.Transcript
	for _, line := range lines {
		transcript.Lines = append(transcript.Lines, yt_transcript_models.TranscriptLine{Text: line})
	}
	return transcript
}

func TestCaptionClientFetch(t *testing.T) {
	client := &CaptionClient{api: &fakeTranscriptAPI{
		transcripts: []yt_transcript_models.Transcript{track("Hello", "world")},
	}}

	lines, err := client.Fetch(context.Background(), "dQw4w9WgXcQ", []string{"en"})
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if !slices.Equal(lines, []string{"Hello", "world"}) {
		t.Errorf("Fetch = %v, want [Hello world]", lines)
	}
}

func TestCaptionClientSkipsEmptyTracks(t *testing.T) {
	client := &CaptionClient{api: &fakeTranscriptAPI{
		transcripts: []yt_transcript_models.Transcript{track(), track("fallback")},
	}}

	lines, err := client.Fetch(context.Background(), "dQw4w9WgXcQ", []string{"de", "en"})
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if !slices.Equal(lines, []string{"fallback"}) {
		t.Errorf("Fetch = %v, want [fallback]", lines)
	}
}

func TestCaptionClientClassifiesErrors(t *testing.T) {
	client := &CaptionClient{api: &fakeTranscriptAPI{
		err: errors.New("transcripts are disabled for video dQw4w9WgXcQ"),
	}}

	_, err := client.Fetch(context.Background(), "dQw4w9WgXcQ", []string{"en"})
	var fe *FetchError
	if !errors.As(err, &fe) || fe.Kind != FetchErrTranscriptsDisabled {
		t.Errorf("Fetch error = %v, want TranscriptsDisabled", err)
	}
}

func TestCaptionClientEmptyResultIsNoTranscript(t *testing.T) {
	client := &CaptionClient{api: &fakeTranscriptAPI{}}

	_, err := client.Fetch(context.Background(), "dQw4w9WgXcQ", []string{"en"})
	var fe *FetchError
	if !errors.As(err, &fe) || fe.Kind != FetchErrNoTranscriptFound {
		t.Errorf("Fetch error = %v, want NoTranscriptFound", err)
	}
}

func TestCaptionClientHonorsContext(t *testing.T) {
	client := &CaptionClient{api: &fakeTranscriptAPI{
		delay:       time.Second,
		transcripts: []yt_transcript_models.Transcript{track("late")},
	}}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := client.Fetch(ctx, "dQw4w9WgXcQ", []string{"en"})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Fetch error = %v, want context deadline", err)
	}
}
