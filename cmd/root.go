package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rtzll/ytt/internal"
)

var (
	config *internal.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ytt [YouTube URL or ID]",
	Short: "Download YouTube video transcripts as plain text",
	Long: `ytt fetches the caption track for a YouTube video and prints it
as plain text, one caption entry per line.

Output goes to stdout by default, or to a file with --output. Language
preference is a comma-separated list, most preferred first; "en" is always
kept as a fallback.

Environment variables:
  YOUTUBE_COOKIES       Path to cookies file for age-restricted videos
  YOUTUBE_PROXY_HTTP    HTTP proxy URL
  YOUTUBE_PROXY_HTTPS   HTTPS proxy URL (falls back to the HTTP value)`,
	Example: `  # Print a transcript to stdout
  ytt "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
  ytt dQw4w9WgXcQ

  # Save transcript to a file
  ytt dQw4w9WgXcQ -o transcript.txt

  # Prefer German, then French captions
  ytt -l de,fr dQw4w9WgXcQ`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return internal.HandleVerboseFlag(cmd, config)
	},
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Validate argument before processing
		arg := args[0]
		if internal.IsLikelyCommand(arg) {
			// Check if it's similar to any available commands
			availableCommands := []string{"cp", "mcp", "metadata", "version", "paths", "help"}
			var suggestions []string
			for _, cmdName := range availableCommands {
				if strings.Contains(cmdName, arg) || (len(arg) <= len(cmdName) && strings.Contains(arg, cmdName[:len(arg)])) {
					suggestions = append(suggestions, cmdName)
				}
			}

			if len(suggestions) > 0 {
				return fmt.Errorf("'%s' doesn't look like a YouTube URL or video ID. Did you mean: %s?", arg, strings.Join(suggestions, ", "))
			}
			return fmt.Errorf("'%s' doesn't look like a YouTube URL or video ID. Use --help to see available commands", arg)
		}

		videoID, err := internal.ExtractVideoID(arg)
		if err != nil {
			return fmt.Errorf("invalid video URL or ID")
		}

		languages := internal.LanguagesFromFlags(cmd, config)
		outputPath, _ := cmd.Flags().GetString("output")

		app := internal.NewApp(config)
		return app.Download(cmd.Context(), videoID, languages, outputPath)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	// Create a cancellable context for the entire application
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize configuration with Viper
	config = internal.InitConfig()

	// Ensure XDG directories exist
	if err := internal.EnsureDirs(config.ConfigDir, config.CacheDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating XDG directories: %v\n", err)
		os.Exit(1)
	}

	// Ensure default config exists in XDG config directory
	if err := internal.EnsureDefaultConfig(config.ConfigDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to ensure default config: %v\n", err)
	}

	// Cancel the context on interrupt so the in-flight fetch stops cleanly
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Set context on root command
	rootCmd.SetContext(ctx)

	return rootCmd.Execute()
}

func init() {
	internal.AddLanguageFlag(rootCmd)
	internal.AddOutputFlag(rootCmd)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for debugging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress status output")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}
