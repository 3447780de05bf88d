package internal

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AddLanguageFlag adds the language preference flag shared by commands that
// fetch transcripts.
func AddLanguageFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("lang", "l", "", "Preferred language(s), comma-separated (default: en)")
}

// AddOutputFlag adds the output destination flag.
func AddOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
}

// LanguagesFromFlags resolves the effective language preference list from
// the --lang flag, falling back to the configured default.
func LanguagesFromFlags(cmd *cobra.Command, config *Config) []string {
	csv, _ := cmd.Flags().GetString("lang")
	if csv == "" {
		csv = config.Languages
	}
	return ParseLanguages(csv)
}

// HandleVerboseFlag processes the --verbose and --quiet flags to update config
func HandleVerboseFlag(cmd *cobra.Command, config *Config) error {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	config.Verbose = verbose
	config.Quiet = quiet
	return nil
}
