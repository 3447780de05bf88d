package internal

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

// fakeFetcher is a canned TranscriptFetcher for orchestration tests.
type fakeFetcher struct {
	lines     []string
	err       error
	calls     int
	languages []string
}

func (f *fakeFetcher) Fetch(ctx context.Context, videoID string, languages []string) ([]string, error) {
	f.calls++
	f.languages = languages
	if f.err != nil {
		return nil, f.err
	}
	return f.lines, nil
}

func testConfig() *Config {
	return &Config{Languages: "en", Quiet: true}
}

func TestDownloadWritesToStdout(t *testing.T) {
	fetcher := &fakeFetcher{lines: []string{"Hello", "world"}}
	var stdout bytes.Buffer
	app := NewApp(testConfig(), WithFetcher(fetcher), WithStdout(&stdout))

	err := app.Download(context.Background(), "dQw4w9WgXcQ", []string{"en"}, "")
	if err != nil {
		t.Fatalf("Download returned error: %v", err)
	}

	if got := stdout.String(); got != "Hello\nworld\n" {
		t.Errorf("stdout = %q, want %q", got, "Hello\nworld\n")
	}
	if fetcher.calls != 1 {
		t.Errorf("fetcher called %d times, want 1", fetcher.calls)
	}
}

func TestDownloadWritesFileWithTrailingNewline(t *testing.T) {
	orig := guardOutputPath
	guardOutputPath = func(string) error { return nil }
	defer func() { guardOutputPath = orig }()

	fetcher := &fakeFetcher{lines: []string{"Hello", "world"}}
	app := NewApp(testConfig(), WithFetcher(fetcher))

	path := filepath.Join(t.TempDir(), "transcript.txt")
	if err := app.Download(context.Background(), "dQw4w9WgXcQ", []string{"en"}, path); err != nil {
		t.Fatalf("Download returned error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	if string(content) != "Hello\nworld\n" {
		t.Errorf("file content = %q, want %q", content, "Hello\nworld\n")
	}
}

func TestDownloadWriteFailureIsCategoryOnly(t *testing.T) {
	orig := guardOutputPath
	guardOutputPath = func(string) error { return nil }
	defer func() { guardOutputPath = orig }()

	fetcher := &fakeFetcher{lines: []string{"Hello"}}
	app := NewApp(testConfig(), WithFetcher(fetcher))

	// Writing to a directory path fails at the OS level.
	err := app.Download(context.Background(), "dQw4w9WgXcQ", []string{"en"}, t.TempDir())
	if err == nil {
		t.Fatal("Download succeeded writing to a directory")
	}
	if !errors.Is(err, ErrWriteFailed) {
		t.Errorf("error = %v, want ErrWriteFailed", err)
	}
	if err.Error() != "WriteFailed" {
		t.Errorf("error = %q, want category name only", err.Error())
	}
	if strings.Contains(err.Error(), "directory") || strings.Contains(err.Error(), string(os.PathSeparator)) {
		t.Errorf("error %q leaks OS detail", err.Error())
	}
}

func TestDownloadRejectsInvalidOutputPathBeforeFetching(t *testing.T) {
	fetcher := &fakeFetcher{lines: []string{"Hello"}}
	var stdout bytes.Buffer
	app := NewApp(testConfig(), WithFetcher(fetcher), WithStdout(&stdout))

	err := app.Download(context.Background(), "dQw4w9WgXcQ", []string{"en"}, "/etc/passwd")
	if err == nil {
		t.Fatal("Download accepted /etc/passwd as output path")
	}
	if err.Error() != "invalid output path" {
		t.Errorf("error = %q, want %q", err.Error(), "invalid output path")
	}
	if fetcher.calls != 0 {
		t.Errorf("fetcher called %d times before path validation, want 0", fetcher.calls)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
}

func TestDownloadReportsFetchCategory(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("subtitles are disabled for this video")}
	var stdout bytes.Buffer
	app := NewApp(testConfig(), WithFetcher(fetcher), WithStdout(&stdout))

	err := app.Download(context.Background(), "dQw4w9WgXcQ", []string{"en"}, "")
	if err == nil {
		t.Fatal("Download succeeded on fetch failure")
	}
	if err.Error() != "TranscriptsDisabled" {
		t.Errorf("error = %q, want category name only", err.Error())
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty on failure", stdout.String())
	}
}

type fakeMetadata struct {
	metadata *VideoMetadata
}

func (f *fakeMetadata) Metadata(ctx context.Context, videoID string) (*VideoMetadata, error) {
	return f.metadata, nil
}

func TestMetadataUsesProvider(t *testing.T) {
	provider := &fakeMetadata{metadata: &VideoMetadata{Title: "Never Gonna Give You Up", HasCaptions: true}}
	app := NewApp(testConfig(), WithFetcher(&fakeFetcher{}), WithMetadataProvider(provider))

	metadata, err := app.Metadata(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Metadata returned error: %v", err)
	}
	if metadata.Title != "Never Gonna Give You Up" || !metadata.HasCaptions {
		t.Errorf("Metadata = %+v, want provider result", metadata)
	}
}

func TestTranscriptPassesLanguagePreference(t *testing.T) {
	fetcher := &fakeFetcher{lines: []string{"hallo"}}
	app := NewApp(testConfig(), WithFetcher(fetcher))

	languages := []string{"de", "fr", "en"}
	text, err := app.Transcript(context.Background(), "dQw4w9WgXcQ", languages)
	if err != nil {
		t.Fatalf("Transcript returned error: %v", err)
	}
	if text != "hallo" {
		t.Errorf("transcript = %q, want %q", text, "hallo")
	}
	if !slices.Equal(fetcher.languages, languages) {
		t.Errorf("fetcher got languages %v, want %v", fetcher.languages, languages)
	}
}
