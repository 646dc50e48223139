package errors

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"os"
)

// Category represents the type of error.
type Category string

const (
	CategoryRuntime  Category = "runtime"
	CategoryLayout   Category = "layout"
	CategoryConfig   Category = "config"
	CategoryProtocol Category = "protocol"
	CategoryExport   Category = "export"
	CategoryCLI      Category = "cli"
)

// Location represents a position in a source or configuration file.
type Location struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column,omitempty"`
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// KViewError is a structured error with a registry code, hints and an
// optional file location.
type KViewError struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location points into the file that caused the error, if any.
	Location *Location

	// Context contains the lines surrounding Location.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *KViewError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *KViewError) Unwrap() error {
	return e.Wrapped
}

// Is matches another KViewError with the same code.
func (e *KViewError) Is(target error) bool {
	t, ok := target.(*KViewError)
	return ok && t.Code != "" && t.Code == e.Code
}

// WithLocation adds a file location to the error.
func (e *KViewError) WithLocation(file string, line, column int) *KViewError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context = readContextLines(file, line, 5)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *KViewError) WithSuggestion(s string) *KViewError {
	e.Suggestion = s
	return e
}

// WithDetail replaces the detailed explanation.
func (e *KViewError) WithDetail(d string) *KViewError {
	e.Detail = d
	return e
}

// WithDetailf replaces the detailed explanation with a formatted string.
func (e *KViewError) WithDetailf(format string, args ...any) *KViewError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *KViewError) Wrap(err error) *KViewError {
	e.Wrapped = err
	return e
}

// readContextLines reads lines around the specified line number from a file.
func readContextLines(filename string, targetLine, contextSize int) []string {
	file, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := targetLine - contextSize/2
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines
}

// New creates a KViewError from a registered error code.
func New(code string) *KViewError {
	template, ok := registry[code]
	if !ok {
		return &KViewError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &KViewError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new KViewError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *KViewError {
	return &KViewError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a KViewError.
func FromError(err error, code string) *KViewError {
	if err == nil {
		return nil
	}
	var ke *KViewError
	if stderrors.As(err, &ke) {
		return ke
	}
	return New(code).Wrap(err)
}

// HasCode reports whether err is or wraps a KViewError with the given code.
func HasCode(err error, code string) bool {
	var ke *KViewError
	for err != nil {
		if stderrors.As(err, &ke) {
			if ke.Code == code {
				return true
			}
			err = ke.Wrapped
			continue
		}
		return false
	}
	return false
}
