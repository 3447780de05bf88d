package internal

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// UIManager handles user interface concerns (status spinner, verbose output)
type UIManager interface {
	NewSpinner(description string) Spinner
	Verbose(format string, args ...any)
	Println(args ...any)
}

// Spinner abstracts the fetch status indicator
type Spinner interface {
	Describe(description string)
	Finish()
}

// StandardUIManager handles normal UI operations
type StandardUIManager struct {
	verbose bool
	quiet   bool
}

func NewUIManager(verbose, quiet bool) UIManager {
	return &StandardUIManager{verbose: verbose, quiet: quiet}
}

// NewSpinner starts a status spinner on stderr. It stays silent when quiet
// is set or stderr is not a terminal, so piped output is never polluted.
func (ui *StandardUIManager) NewSpinner(description string) Spinner {
	if ui.quiet || !isatty.IsTerminal(os.Stderr.Fd()) {
		return &silentSpinner{}
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	return &visibleSpinner{bar: bar}
}

func (ui *StandardUIManager) Verbose(format string, args ...any) {
	if ui.verbose {
		fmt.Printf(format, args...)
	}
}

// Println prints a status line unless quiet is set.
func (ui *StandardUIManager) Println(args ...any) {
	if !ui.quiet {
		fmt.Println(args...)
	}
}

// visibleSpinner wraps the actual progress bar
type visibleSpinner struct {
	bar *progressbar.ProgressBar
}

func (s *visibleSpinner) Describe(description string) {
	s.bar.Describe(description)
}

func (s *visibleSpinner) Finish() {
	_ = s.bar.Finish()
}

// silentSpinner implements a no-op spinner
type silentSpinner struct{}

func (s *silentSpinner) Describe(string) {}
func (s *silentSpinner) Finish()         {}
