package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"moviesearch/internal/domain"
	"moviesearch/internal/ui/views"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // The search did not produce results (no response, bad body)
	ExitCommandError = 2 // Command error (bad flags, unreadable config)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// Results is one page of search results.
type Results struct {
	Page    int            `json:"page"`
	HasNext bool           `json:"hasNext"`
	Movies  []domain.Movie `json:"movies"`
}

// WriteResults prints results as plain text or as a JSON document.
// Movies are written exactly as the backend sent them in JSON mode.
func WriteResults(w io.Writer, format string, r Results, showScores bool) error {
	if format == "json" {
		if r.Movies == nil {
			r.Movies = []domain.Movie{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	if _, err := fmt.Fprintf(w, "Page %d: %d movies\n", r.Page, len(r.Movies)); err != nil {
		return err
	}
	for i, movie := range r.Movies {
		if _, err := fmt.Fprintln(w, textLine(i+1, movie.Summary(), showScores)); err != nil {
			return err
		}
	}
	if r.HasNext {
		if _, err := fmt.Fprintf(w, "More results: --page %d\n", r.Page+1); err != nil {
			return err
		}
	}
	return nil
}

func textLine(rank int, m domain.MovieSummary, showScores bool) string {
	line := fmt.Sprintf("%2d. %s", rank, m.DisplayTitle())
	if m.Year != 0 {
		line += fmt.Sprintf(" (%d)", m.Year)
	}
	if showScores {
		if m.CriticScore != nil {
			line += "  critic " + views.FormatScore(*m.CriticScore)
		}
		if m.UserScore != nil {
			line += "  user " + views.FormatScore(*m.UserScore)
		}
	}
	return line
}
