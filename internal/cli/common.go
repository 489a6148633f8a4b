package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/morristai/iceberg-mcp/pkg/logging"
)

var (
	successColor = color.New(color.FgGreen).SprintFunc()
	failureColor = color.New(color.FgRed).SprintFunc()
	warningColor = color.New(color.FgYellow).SprintFunc()
)

// FormatError formats an error message for CLI output
func FormatError(err error) string {
	return failureColor(fmt.Sprintf("✗ %v", err))
}

// FormatSuccess formats a success message for CLI output
func FormatSuccess(msg string) string {
	return successColor(fmt.Sprintf("✓ %s", msg))
}

// FormatWarning formats a warning message for CLI output
func FormatWarning(msg string) string {
	return warningColor(fmt.Sprintf("⚠ %s", msg))
}

// Spin runs fn while a spinner with the given suffix is shown on stderr.
// With quiet set, or while debug logs are written, fn runs without a
// spinner.
func Spin(quiet bool, suffix string, fn func() error) error {
	return spin(quiet, os.Stderr, suffix, fn)
}

func showSpinner(quiet bool) bool {
	return !quiet && !logging.Enabled(logging.LevelDebug)
}

func spin(quiet bool, w io.Writer, suffix string, fn func() error) error {
	if !showSpinner(quiet) {
		return fn()
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + suffix
	s.Start()
	err := fn()
	s.Stop()
	return err
}
