package internal

import (
	"context"
	"fmt"
	"os"

	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript"
	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript_models"
)

// transcriptAPI is the slice of the caption client this tool relies on.
type transcriptAPI interface {
	GetTranscripts(videoID string, languages []string) ([]yt_transcript_models.Transcript, error)
}

// CaptionClient fetches caption tracks straight from YouTube's captioning
// endpoint. This is the default fetch path; videos that need cookies go
// through the yt-dlp fetcher instead.
type CaptionClient struct {
	api transcriptAPI
}

// NewCaptionClient creates the caption-service client. Proxy URLs are
// exported once into the standard proxy environment, which the client's
// HTTP transport honors; their contents are not interpreted here.
func NewCaptionClient(config *Config) *CaptionClient {
	if config.ProxyHTTP != "" {
		os.Setenv("HTTP_PROXY", config.ProxyHTTP)
	}
	if config.ProxyHTTPS != "" {
		os.Setenv("HTTPS_PROXY", config.ProxyHTTPS)
	}

	return &CaptionClient{api: yt_transcript.NewClient()}
}

// Fetch retrieves the caption track for videoID in the most preferred
// available language and returns its text lines.
func (c *CaptionClient) Fetch(ctx context.Context, videoID string, languages []string) ([]string, error) {
	type result struct {
		transcripts []yt_transcript_models.Transcript
		err         error
	}

	resultCh := make(chan result, 1)

	// The client call blocks with no context support, so race it against ctx.
	go func() {
		transcripts, err := c.api.GetTranscripts(videoID, languages)
		resultCh <- result{transcripts, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-resultCh:
		if res.err != nil {
			return nil, ClassifyFetchError(res.err)
		}
		return transcriptLines(res.transcripts)
	}
}

// transcriptLines returns the text lines of the first non-empty track. The
// client already ordered candidates by the language preference list, so the
// first hit is the most preferred one.
func transcriptLines(transcripts []yt_transcript_models.Transcript) ([]string, error) {
	for _, transcript := range transcripts {
		if len(transcript.Lines) == 0 {
			continue
		}
		lines := make([]string, 0, len(transcript.Lines))
		for _, line := range transcript.Lines {
			lines = append(lines, line.Text)
		}
		return lines, nil
	}
	return nil, NewFetchError(FetchErrNoTranscriptFound, fmt.Errorf("empty transcript"))
}
