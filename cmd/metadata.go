package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rtzll/ytt/internal"
)

// metadataCmd represents the metadata command
var metadataCmd = &cobra.Command{
	Use:   "metadata [YouTube URL or ID]",
	Short: "Get metadata from YouTube video",
	Example: `  # Get metadata from YouTube video
  ytt metadata "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
  ytt metadata dQw4w9WgXcQ

  # Save metadata to file
  ytt metadata dQw4w9WgXcQ -o metadata.json

  # Format output as pretty JSON
  ytt metadata dQw4w9WgXcQ --pretty`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		videoID, err := internal.ExtractVideoID(args[0])
		if err != nil {
			return fmt.Errorf("invalid video URL or ID")
		}

		app := internal.NewApp(config)
		metadata, err := app.Metadata(cmd.Context(), videoID)
		if err != nil {
			return err
		}

		// Convert metadata to JSON
		var jsonData []byte
		pretty, _ := cmd.Flags().GetBool("pretty")
		if pretty {
			jsonData, err = json.MarshalIndent(metadata, "", "  ")
		} else {
			jsonData, err = json.Marshal(metadata)
		}
		if err != nil {
			return fmt.Errorf("error converting metadata to JSON: %w", err)
		}

		// Handle output flag
		outputPath, _ := cmd.Flags().GetString("output")
		if outputPath != "" {
			if err := internal.ValidateOutputPath(outputPath); err != nil {
				return fmt.Errorf("invalid output path")
			}
			if err := os.WriteFile(outputPath, append(jsonData, '\n'), 0644); err != nil {
				if config.Verbose {
					fmt.Fprintf(os.Stderr, "Write failed: %v\n", err)
				}
				return internal.ErrWriteFailed
			}
			return nil
		}

		fmt.Println(string(jsonData))

		return nil
	},
}

func init() {
	internal.AddOutputFlag(metadataCmd)
	metadataCmd.Flags().Bool("pretty", false, "Format output as pretty JSON")
	rootCmd.AddCommand(metadataCmd)
}
