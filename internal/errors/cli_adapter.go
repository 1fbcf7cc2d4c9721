package errors

import (
	"fmt"
	"log/slog"
)

// CLIErrorAdapter handles error presentation and exit code determination for the CLI.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	if de, ok := err.(*DocsifyError); ok {
		return a.exitCodeFromDocsify(de)
	}

	return 1
}

// exitCodeFromDocsify maps DocsifyError to exit codes.
func (a *CLIErrorAdapter) exitCodeFromDocsify(err *DocsifyError) int {
	switch err.Category {
	case CategoryValidation:
		return 2 // Invalid usage
	case CategoryConfig:
		return 7 // Configuration error
	case CategoryFileSystem, CategoryRender:
		return 11 // Build error
	case CategoryServer:
		return 12 // Runtime error
	case CategoryModel:
		return 13 // Model-shape error
	case CategoryInternal:
		return 10 // Internal error
	default:
		return 1 // General error
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	if de, ok := err.(*DocsifyError); ok {
		return a.formatDocsify(de)
	}

	return fmt.Sprintf("Error: %v", err)
}

// formatDocsify formats a DocsifyError for display.
func (a *CLIErrorAdapter) formatDocsify(err *DocsifyError) string {
	if a.verbose {
		return err.Error()
	}

	msg := err.Message
	if path, ok := err.Context["path"]; ok {
		msg = fmt.Sprintf("%s: %v", msg, path)
	} else if target, ok := err.Context["target"]; ok {
		msg = fmt.Sprintf("%s: %v", msg, target)
	}
	if err.Cause != nil {
		msg = fmt.Sprintf("%s (%v)", msg, err.Cause)
	}
	return "Error: " + msg
}
