// Package ui formats what the CLI tells the user. Styling comes from
// lipgloss renderers bound to each output stream, so colors only appear
// when that stream is a terminal.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the styles used for one output stream.
type Theme struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Heading lipgloss.Style
	Muted   lipgloss.Style
}

func newTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A")),
		Error:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#e53935")),
		Warning: r.NewStyle().Foreground(lipgloss.Color("#FFC107")),
		Heading: r.NewStyle().Bold(true),
		Muted:   r.NewStyle().Faint(true),
	}
}

// Printer writes user-facing messages: reports to out, problems to errOut.
type Printer struct {
	out      io.Writer
	errOut   io.Writer
	outTheme Theme
	errTheme Theme
}

// NewPrinter returns a Printer styling each stream for its own terminal.
func NewPrinter(out, errOut io.Writer) *Printer {
	return &Printer{
		out:      out,
		errOut:   errOut,
		outTheme: newTheme(lipgloss.NewRenderer(out)),
		errTheme: newTheme(lipgloss.NewRenderer(errOut)),
	}
}

// Success prints the confirmation line.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.out, p.outTheme.Success.Render("✅ "+fmt.Sprintf(format, args...)))
}

// List prints indented entries under a heading.
func (p *Printer) List(heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintln(p.out, p.outTheme.Heading.Render(heading))
	for _, item := range items {
		fmt.Fprintf(p.out, "  %s\n", item)
	}
}

// Steps prints numbered next steps.
func (p *Printer) Steps(steps []string) {
	if len(steps) == 0 {
		return
	}
	fmt.Fprintln(p.out, "\n"+p.outTheme.Heading.Render("Next steps:"))
	for i, s := range steps {
		fmt.Fprintf(p.out, "  %d. %s\n", i+1, s)
	}
}

// Warnings prints non-fatal problems to the error stream.
func (p *Printer) Warnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintln(p.errOut, p.errTheme.Warning.Render("Warnings:"))
	for _, w := range warnings {
		fmt.Fprintf(p.errOut, "  - %s\n", w)
	}
}

// Error prints a failure to the error stream.
func (p *Printer) Error(err error) {
	fmt.Fprintln(p.errOut, p.errTheme.Error.Render("Error: ")+err.Error())
}

// Hint prints a muted explanatory line to the error stream.
func (p *Printer) Hint(format string, args ...any) {
	fmt.Fprintln(p.errOut, p.errTheme.Muted.Render(fmt.Sprintf(format, args...)))
}

// Usage prints the usage line to the error stream.
func (p *Printer) Usage(usage string) {
	fmt.Fprintln(p.errOut, "Usage: "+usage)
}
