package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/lrstanley/go-ytdlp"
)

// VideoMetadata contains YouTube video information
type VideoMetadata struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Channel     string         `json:"channel"`
	Uploader    string         `json:"uploader"`
	Duration    float64        `json:"duration"`
	Categories  []string       `json:"categories"`
	Tags        []string       `json:"tags"`
	Chapters    []VideoChapter `json:"chapters"`
	HasCaptions bool           `json:"has_captions"`
}

// VideoChapter represents a video chapter marker
type VideoChapter struct {
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
	Title     string  `json:"title"`
}

// YtdlpFetcher fetches captions through yt-dlp. It is the fetch path used
// when a cookies file is configured (age-restricted videos), since yt-dlp
// takes the cookies file and proxy URL as-is without this tool reading them.
type YtdlpFetcher struct {
	cookies string
	proxy   string
	verbose bool
}

// NewYtdlpFetcher creates a yt-dlp backed transcript fetcher and makes sure
// the yt-dlp binary is available.
func NewYtdlpFetcher(config *Config) *YtdlpFetcher {
	ytdlp.MustInstall(context.Background(), nil)

	proxy := config.ProxyHTTPS
	if proxy == "" {
		proxy = config.ProxyHTTP
	}

	return &YtdlpFetcher{
		cookies: config.Cookies,
		proxy:   proxy,
		verbose: config.Verbose,
	}
}

// WatchURL builds the canonical watch URL for a video ID.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

// Fetch downloads the caption track as SRT into a scratch directory and
// reduces it to plain text lines.
func (f *YtdlpFetcher) Fetch(ctx context.Context, videoID string, languages []string) ([]string, error) {
	if f.verbose {
		fmt.Println("Downloading subtitles via yt-dlp...")
	}

	scratchDir, err := os.MkdirTemp(filepath.Join(xdg.CacheHome, "ytt"), "subs-*")
	if err != nil {
		// XDG cache root may not exist yet; fall back to the system temp dir.
		scratchDir, err = os.MkdirTemp("", "ytt-subs-*")
		if err != nil {
			return nil, fmt.Errorf("creating scratch directory: %w", err)
		}
	}
	defer func() {
		if err := os.RemoveAll(scratchDir); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to remove scratch directory %s: %v\n", scratchDir, err)
		}
	}()

	dl := ytdlp.New().
		WriteSubs().
		WriteAutoSubs().
		SubLangs(strings.Join(languages, ",")).
		ConvertSubs("srt").
		SkipDownload().
		Output(filepath.Join(scratchDir, "%(id)s.%(ext)s"))

	if f.cookies != "" {
		dl = dl.Cookies(f.cookies)
	}
	if f.proxy != "" {
		dl = dl.Proxy(f.proxy)
	}

	result, err := dl.Run(ctx, WatchURL(videoID))
	if err != nil {
		if f.verbose && result != nil {
			fmt.Printf("Subtitle download error: %v\n", err)
			fmt.Printf("Stderr: %s\n", result.Stderr)
		}
		if result != nil && result.Stderr != "" {
			return nil, ClassifyFetchError(fmt.Errorf("yt-dlp: %s", result.Stderr))
		}
		return nil, ClassifyFetchError(err)
	}

	subtitleFile, err := findSubtitleFile(scratchDir, videoID, languages)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(subtitleFile)
	if err != nil {
		return nil, fmt.Errorf("reading subtitle file: %w", err)
	}

	lines := removeDuplicates(parseSRT(string(content)))
	if len(lines) == 0 {
		return nil, NewFetchError(FetchErrNoTranscriptFound, fmt.Errorf("empty subtitle file"))
	}

	return lines, nil
}

// findSubtitleFile picks the downloaded .srt matching the most preferred
// language, falling back to whatever track yt-dlp produced.
func findSubtitleFile(dir, videoID string, languages []string) (string, error) {
	for _, lang := range languages {
		candidate := filepath.Join(dir, fmt.Sprintf("%s.%s.srt", videoID, lang))
		if FileExists(candidate) {
			return candidate, nil
		}
	}

	pattern := filepath.Join(dir, videoID+"*.srt")
	files, err := filepath.Glob(pattern)
	if err != nil || len(files) == 0 {
		return "", NewFetchError(FetchErrNoTranscriptFound, fmt.Errorf("no subtitle files for %s", videoID))
	}
	return files[0], nil
}

// Metadata fetches video details using yt-dlp.
func (f *YtdlpFetcher) Metadata(ctx context.Context, videoID string) (*VideoMetadata, error) {
	if f.verbose {
		fmt.Println("Extracting video metadata...")
	}

	dl := ytdlp.New().
		DumpSingleJSON().
		NoPlaylist().
		SkipDownload()

	if f.cookies != "" {
		dl = dl.Cookies(f.cookies)
	}
	if f.proxy != "" {
		dl = dl.Proxy(f.proxy)
	}

	result, err := dl.Run(ctx, WatchURL(videoID))
	if err != nil {
		if f.verbose && result != nil {
			fmt.Printf("Metadata extraction error: %v\n", err)
			fmt.Printf("Stderr: %s\n", result.Stderr)
		}
		return nil, fmt.Errorf("extracting video metadata: %w", err)
	}

	// Parse into a raw map first to pick up subtitle availability.
	var rawData map[string]any
	if err := json.Unmarshal([]byte(result.Stdout), &rawData); err != nil {
		return nil, fmt.Errorf("parsing video metadata: %w", err)
	}

	var metadata VideoMetadata
	if err := json.Unmarshal([]byte(result.Stdout), &metadata); err != nil {
		return nil, fmt.Errorf("parsing video metadata: %w", err)
	}

	metadata.HasCaptions = extractSubtitleInfo(rawData)

	if f.verbose {
		fmt.Println("Metadata extraction completed successfully")
		fmt.Printf("Title: %s\n", metadata.Title)
		fmt.Printf("Channel: %s\n", metadata.Channel)
		fmt.Printf("Duration: %.2f seconds\n", metadata.Duration)
	}

	return &metadata, nil
}

// parseSRT extracts text content from SRT format
func parseSRT(content string) []string {
	var lines []string

	for block := range strings.SplitSeq(content, "\n\n") {
		blockLines := strings.Split(block, "\n")
		if len(blockLines) >= 3 {
			// Skip sequence number and timestamp, get text lines
			for i := 2; i < len(blockLines); i++ {
				if strings.TrimSpace(blockLines[i]) != "" {
					lines = append(lines, strings.TrimSpace(blockLines[i]))
				}
			}
		}
	}

	return lines
}

// removeDuplicates eliminates consecutive repeated lines
func removeDuplicates(lines []string) []string {
	result := make([]string, 0, len(lines))
	prevLine := ""

	for _, line := range lines {
		isDuplicate := prevLine != "" && (strings.Contains(line, prevLine) || strings.Contains(prevLine, line))
		if !isDuplicate {
			result = append(result, line)
		}
		prevLine = line
	}

	return result
}

// extractSubtitleInfo extracts subtitle availability from yt-dlp JSON output
func extractSubtitleInfo(rawData map[string]any) bool {
	if subtitles, ok := rawData["subtitles"].(map[string]any); ok && len(subtitles) > 0 {
		return true
	}
	if autoCaptions, ok := rawData["automatic_captions"].(map[string]any); ok && len(autoCaptions) > 0 {
		return true
	}
	return false
}
