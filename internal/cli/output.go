package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"

	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/domain"
	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/render"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Unexpected failure
	ExitCommandError = 2 // Command error (bad flags, unreadable or invalid markup)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
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
// Returns ExitFailure (1) if the error is not an ExitError.
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

// CLIResponse is the envelope for structured (json/yaml) output.
type CLIResponse struct {
	Status string      `json:"status" yaml:"status"`
	Data   interface{} `json:"data,omitempty" yaml:"data,omitempty"`
}

// OutputFormatter writes a built lister in the selected format.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Diagnostics go here so structured output stays parseable
	Verbose   bool
}

// Block writes a built lister. html decorates root in place and prints it;
// json and yaml print the card view.
func (f *OutputFormatter) Block(root *html.Node, b *domain.Block) error {
	if b.Diagnostic != nil {
		fmt.Fprintf(f.errWriter(), "warning: products could not be loaded: %v\n", b.Diagnostic)
	}

	switch f.Format {
	case "json":
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(CLIResponse{Status: "ok", Data: render.NewView(b)})
	case "yaml":
		enc := yaml.NewEncoder(f.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(CLIResponse{Status: "ok", Data: render.NewView(b)}); err != nil {
			return err
		}
		return enc.Close()
	default:
		render.Decorate(root, b)
		out, err := render.String(root)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(f.Writer, out)
		return err
	}
}

// VerboseLog outputs a message only if verbose mode is enabled.
func (f *OutputFormatter) VerboseLog(format string, args ...interface{}) {
	if !f.Verbose {
		return
	}
	fmt.Fprintf(f.errWriter(), format+"\n", args...)
}

func (f *OutputFormatter) errWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}
