package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/rtzll/ytt/internal"
)

// errClipboardFailed is the category-only error for clipboard failures; the
// underlying cause stays in verbose diagnostics.
var errClipboardFailed = errors.New("ClipboardFailed")

// cpCmd copies the transcript to the system clipboard instead of printing to stdout.
var cpCmd = &cobra.Command{
	Use:   "cp [YouTube URL or ID]",
	Short: "Copy transcript from YouTube to the clipboard",
	Example: `  # Copy transcript to the clipboard
  ytt cp "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
  ytt cp dQw4w9WgXcQ

  # Prefer German captions
  ytt cp -l de dQw4w9WgXcQ`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		videoID, err := internal.ExtractVideoID(args[0])
		if err != nil {
			return fmt.Errorf("invalid video URL or ID")
		}

		app := internal.NewApp(config)
		transcript, err := app.Transcript(cmd.Context(), videoID, internal.LanguagesFromFlags(cmd, config))
		if err != nil {
			return err
		}

		if err := clipboard.WriteAll(transcript); err != nil {
			if config.Verbose {
				fmt.Fprintf(os.Stderr, "Clipboard write failed: %v\n", err)
			}
			return errClipboardFailed
		}

		internal.NewUIManager(config.Verbose, config.Quiet).Println("Transcript copied to clipboard")

		return nil
	},
}

func init() {
	internal.AddLanguageFlag(cpCmd)
	rootCmd.AddCommand(cpCmd)
}
