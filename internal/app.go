package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// App holds the application state and dependencies
type App struct {
	config   *Config
	fetcher  TranscriptFetcher
	metadata MetadataProvider
	ui       UIManager
	stdout   io.Writer
}

// MetadataProvider fetches video metadata.
type MetadataProvider interface {
	Metadata(ctx context.Context, videoID string) (*VideoMetadata, error)
}

// guardOutputPath validates output destinations. It is a variable so tests
// can write into temp directories the fixed deny-list would reject.
var guardOutputPath = ValidateOutputPath

// ErrWriteFailed is the category-only error surfaced when an output sink
// cannot be written. The underlying cause stays in verbose diagnostics.
var ErrWriteFailed = errors.New("WriteFailed")

// NewApp initializes the application
func NewApp(config *Config, options ...AppOption) *App {
	app := &App{
		config: config,
		ui:     NewUIManager(config.Verbose, config.Quiet),
		stdout: os.Stdout,
	}

	// Apply any custom options
	for _, option := range options {
		option(app)
	}

	if app.fetcher == nil {
		// Cookie-based fetching only works through yt-dlp; everything else
		// goes straight to the captioning endpoint.
		if config.Cookies != "" {
			app.fetcher = NewYtdlpFetcher(config)
		} else {
			app.fetcher = NewCaptionClient(config)
		}
	}

	return app
}

// AppOption customizes App creation
type AppOption func(*App)

// WithFetcher sets a custom transcript fetcher
func WithFetcher(fetcher TranscriptFetcher) AppOption {
	return func(a *App) {
		a.fetcher = fetcher
	}
}

// WithMetadataProvider sets a custom metadata provider
func WithMetadataProvider(provider MetadataProvider) AppOption {
	return func(a *App) {
		a.metadata = provider
	}
}

// WithStdout redirects transcript output, used by tests
func WithStdout(w io.Writer) AppOption {
	return func(a *App) {
		a.stdout = w
	}
}

// Transcript fetches the caption track for videoID and returns it as plain
// text, one caption entry per line.
func (app *App) Transcript(ctx context.Context, videoID string, languages []string) (string, error) {
	spinner := app.ui.NewSpinner("Fetching transcript...")
	defer spinner.Finish()

	app.ui.Verbose("Fetching transcript for %s (languages: %s)\n", videoID, strings.Join(languages, ", "))

	lines, err := app.fetcher.Fetch(ctx, videoID, languages)
	if err != nil {
		return "", ClassifyFetchError(err)
	}

	return strings.Join(lines, "\n"), nil
}

// Download performs the full fetch-and-emit flow: validate the output path
// if one was given, fetch the transcript, and write it to the file or to
// stdout. The output file gets a trailing newline.
func (app *App) Download(ctx context.Context, videoID string, languages []string, outputPath string) error {
	if outputPath != "" {
		if err := guardOutputPath(outputPath); err != nil {
			app.ui.Verbose("Output path rejected: %v\n", err)
			return fmt.Errorf("invalid output path")
		}
	}

	text, err := app.Transcript(ctx, videoID, languages)
	if err != nil {
		return err
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(text+"\n"), 0644); err != nil {
			app.ui.Verbose("Write failed: %v\n", err)
			return ErrWriteFailed
		}
		app.ui.Verbose("Transcript written to %s\n", outputPath)
		return nil
	}

	fmt.Fprintln(app.stdout, text)
	return nil
}

// Metadata fetches video metadata, constructing the yt-dlp provider on
// first use so plain transcript fetches never touch the yt-dlp binary.
func (app *App) Metadata(ctx context.Context, videoID string) (*VideoMetadata, error) {
	if app.metadata == nil {
		app.metadata = NewYtdlpFetcher(app.config)
	}
	return app.metadata.Metadata(ctx, videoID)
}
