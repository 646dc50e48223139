package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"strings"
)

// Style selects how Fprint renders an error.
type Style struct {
	// Color enables ANSI escapes.
	Color bool

	// JSON writes one JSON object per error instead of the report.
	JSON bool
}

type palette struct{ on bool }

func (p palette) paint(code, s string) string {
	if !p.on {
		return s
	}
	return code + s + "\033[0m"
}

func (p palette) code(s string) string  { return p.paint("\033[1;31m", s) }
func (p palette) title(s string) string { return p.paint("\033[1m", s) }
func (p palette) where(s string) string { return p.paint("\033[36m", s) }
func (p palette) label(s string) string { return p.paint("\033[33m", s) }
func (p palette) dim(s string) string   { return p.paint("\033[90m", s) }

// Fprint writes err to w. A KViewError anywhere in the chain gets the
// full report: code, message, location with surrounding lines, detail,
// cause, hint and documentation link. Other errors get one line.
func Fprint(w io.Writer, err error, style Style) error {
	if err == nil {
		return nil
	}
	if style.JSON {
		return writeJSON(w, err)
	}
	var ke *KViewError
	if !stderrors.As(err, &ke) {
		p := palette{style.Color}
		_, werr := fmt.Fprintf(w, "%s %s\n", p.code("error:"), err)
		return werr
	}
	_, werr := io.WriteString(w, ke.report(palette{style.Color}))
	return werr
}

// Format returns the plain-text report of e.
func (e *KViewError) Format() string {
	return e.report(palette{})
}

func (e *KViewError) report(p palette) string {
	var b strings.Builder

	head := e.Message
	if e.Code != "" {
		head = p.code(e.Code) + " " + p.title(e.Message)
	} else {
		head = p.title(head)
	}
	b.WriteString(head)
	b.WriteByte('\n')

	if e.Location != nil {
		fmt.Fprintf(&b, "  at %s\n", p.where(e.Location.String()))
		e.writeContext(&b, p)
	}
	for _, line := range wrapText(e.Detail, 72) {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if e.Wrapped != nil {
		fmt.Fprintf(&b, "  %s %s\n", p.label("cause:"), e.Wrapped)
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "  %s %s\n", p.label("hint:"), e.Suggestion)
	}
	if e.DocURL != "" {
		fmt.Fprintf(&b, "  %s\n", p.dim("see "+e.DocURL))
	}
	return b.String()
}

// writeContext prints the lines around the location, marking the failing
// line and, when known, the column.
func (e *KViewError) writeContext(b *strings.Builder, p palette) {
	if len(e.Context) == 0 {
		return
	}
	first := e.Location.Line - len(e.Context)/2
	for i, line := range e.Context {
		n := first + i
		marker := "  "
		if n == e.Location.Line {
			marker = p.code("> ")
		}
		fmt.Fprintf(b, "  %s%s %s\n", marker, p.dim(fmt.Sprintf("%4d |", n)), line)
		if n == e.Location.Line && e.Location.Column > 0 {
			fmt.Fprintf(b, "         %s %s%s\n", p.dim("|"), strings.Repeat(" ", e.Location.Column-1), p.code("^"))
		}
	}
}

// jsonError is the machine-readable form written by Fprint.
type jsonError struct {
	Code       string    `json:"code,omitempty"`
	Category   Category  `json:"category,omitempty"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	Location   *Location `json:"location,omitempty"`
	Cause      string    `json:"cause,omitempty"`
	Suggestion string    `json:"suggestion,omitempty"`
	DocURL     string    `json:"docUrl,omitempty"`
}

func writeJSON(w io.Writer, err error) error {
	out := jsonError{Message: err.Error()}
	var ke *KViewError
	if stderrors.As(err, &ke) {
		out = jsonError{
			Code:       ke.Code,
			Category:   ke.Category,
			Message:    ke.Message,
			Detail:     ke.Detail,
			Location:   ke.Location,
			Suggestion: ke.Suggestion,
			DocURL:     ke.DocURL,
		}
		if ke.Wrapped != nil {
			out.Cause = ke.Wrapped.Error()
		}
	}
	return json.NewEncoder(w).Encode(out)
}

// wrapText splits text into lines of at most width bytes, breaking on
// spaces. Words longer than width get a line of their own.
func wrapText(text string, width int) []string {
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(text) {
		if cur.Len() > 0 && cur.Len()+1+len(word) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
