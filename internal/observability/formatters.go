// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/cv-generator/internal/pipeline"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResult outputs a human-readable summary of a completed render.
func (p *Printer) PrintResult(result *pipeline.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Output:   %s\n", result.Filename))
	sb.WriteString(fmt.Sprintf("Blocks:   %d\n", result.BlockCount))
	sb.WriteString(fmt.Sprintf("Duration: %s\n", result.Duration.Round(time.Millisecond)))
	if result.HiddenText {
		sb.WriteString("Hidden text layer: enabled\n")
	}
	sb.WriteString("\n")

	if len(result.Sections) > 0 {
		sb.WriteString("Sections rendered:\n")
		for _, section := range result.Sections {
			sb.WriteString(fmt.Sprintf("  • %s (%d blocks)\n", section.ID, section.Blocks))
		}
	}

	if len(result.Warnings) > 0 {
		sb.WriteString("\nMarkup warnings (recovered):\n")
		for _, warning := range result.Warnings {
			sb.WriteString(fmt.Sprintf("  • %s\n", warning))
		}
	}

	p.printBox(fmt.Sprintf("Render %s", result.RunID), strings.TrimRight(sb.String(), "\n"))
}

// PrintProgress writes a single progress line in verbose mode.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintProgress(event pipeline.ProgressEvent) {
	fmt.Fprintf(p.out, "[%s] %s\n", event.Step, event.Message)
}
