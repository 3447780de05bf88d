package internal

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// MCPServer wraps the MCP server and application dependencies
type MCPServer struct {
	app       *App
	mcpServer *server.MCPServer
}

// NewMCPServer creates a new MCP server instance
func NewMCPServer(app *App) *MCPServer {
	mcpServer := server.NewMCPServer(
		"ytt-server",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	s := &MCPServer{
		app:       app,
		mcpServer: mcpServer,
	}

	// Register tools
	s.registerTools()

	return s
}

// registerTools registers all available MCP tools
func (s *MCPServer) registerTools() {
	// get_youtube_transcript tool
	s.mcpServer.AddTool(mcp.NewTool("get_youtube_transcript",
		mcp.WithDescription("Fetch the caption track of a YouTube video as plain text. Only works for videos that have captions."),
		mcp.WithString("url",
			mcp.Description("YouTube video URL or 11-character video ID"),
			mcp.Required(),
		),
		mcp.WithString("languages",
			mcp.Description("Comma-separated language preference, most preferred first (default: en)"),
		),
	), s.handleGetTranscript)

	// get_youtube_metadata tool
	s.mcpServer.AddTool(mcp.NewTool("get_youtube_metadata",
		mcp.WithDescription("Extract video metadata including caption availability. Check 'Has Captions' before requesting a transcript."),
		mcp.WithString("url",
			mcp.Description("YouTube video URL or 11-character video ID"),
			mcp.Required(),
		),
	), s.handleGetMetadata)
}

// handleGetTranscript implements the get_youtube_transcript tool
func (s *MCPServer) handleGetTranscript(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := request.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError("url parameter is required and must be a string"), nil
	}

	videoID, err := ExtractVideoID(url)
	if err != nil {
		MCPLogError("invalid video reference: %v", err)
		return mcp.NewToolResultError("invalid video URL or ID"), nil
	}

	languages := ParseLanguages(request.GetString("languages", s.app.config.Languages))

	MCPLogInfo("fetching transcript for %s", videoID)
	transcript, err := s.app.Transcript(ctx, videoID, languages)
	if err != nil {
		MCPLogError("transcript fetch for %s failed: %v", videoID, err)
		return mcp.NewToolResultErrorFromErr("transcript fetch failed", err), nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(transcript)},
	}, nil
}

// handleGetMetadata implements the get_youtube_metadata tool
func (s *MCPServer) handleGetMetadata(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := request.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError("url parameter is required and must be a string"), nil
	}

	videoID, err := ExtractVideoID(url)
	if err != nil {
		MCPLogError("invalid video reference: %v", err)
		return mcp.NewToolResultError("invalid video URL or ID"), nil
	}

	MCPLogInfo("fetching metadata for %s", videoID)
	metadata, err := s.app.Metadata(ctx, videoID)
	if err != nil {
		MCPLogError("metadata fetch for %s failed: %v", videoID, err)
		return mcp.NewToolResultErrorFromErr("metadata error", err), nil
	}

	// Format metadata as text
	var buf strings.Builder
	buf.WriteString(fmt.Sprintf("Title: %s\n", metadata.Title))
	buf.WriteString(fmt.Sprintf("Channel: %s\n", metadata.Channel))
	buf.WriteString(fmt.Sprintf("Duration: %.0f seconds\n", metadata.Duration))
	buf.WriteString(fmt.Sprintf("Description: %s\n", metadata.Description))
	buf.WriteString(fmt.Sprintf("Has Captions: %t\n", metadata.HasCaptions))

	if len(metadata.Tags) > 0 {
		buf.WriteString(fmt.Sprintf("Tags: %s\n", strings.Join(metadata.Tags, ", ")))
	}
	if len(metadata.Categories) > 0 {
		buf.WriteString(fmt.Sprintf("Categories: %s\n", strings.Join(metadata.Categories, ", ")))
	}
	for _, ch := range metadata.Chapters {
		buf.WriteString(fmt.Sprintf("Chapter (%.0f-%.0f): %s\n", ch.StartTime, ch.EndTime, ch.Title))
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(buf.String())},
	}, nil
}

// Start starts the MCP server using the specified transport
func (s *MCPServer) Start(ctx context.Context, transport string, port int) error {
	if transport == "http" {
		httpServer := server.NewStreamableHTTPServer(s.mcpServer)
		addr := fmt.Sprintf(":%d", port)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return httpServer.Start(addr)
	}

	// Default to stdio transport
	return server.ServeStdio(s.mcpServer)
}
