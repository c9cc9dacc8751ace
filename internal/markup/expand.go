// Package markup expands the lightweight inline emphasis vocabulary
// used in free-text CV fields (**bold**, *italic*) into styled runs for
// the document encoder.
package markup

import (
	"fmt"
	"strings"
)

// Run is a span of text with uniform emphasis flags.
type Run struct {
	Text   string `json:"text"`
	Bold   bool   `json:"bold,omitempty"`
	Italic bool   `json:"italic,omitempty"`
}

// Warning records a recovered markup anomaly. Warnings never abort
// generation; the offending markers are emitted literally so no source
// content is lost.
type Warning struct {
	Position int    // byte offset of the marker in the source string
	Marker   string // the literal marker text
}

func (w Warning) String() string {
	return fmt.Sprintf("unbalanced %q marker at offset %d treated literally", w.Marker, w.Position)
}

// Plain wraps text in a single unstyled run. Empty text yields no runs.
func Plain(text string) []Run {
	if text == "" {
		return nil
	}
	return []Run{{Text: text}}
}

// Italicize wraps text in a single italic run. Empty text yields no runs.
func Italicize(text string) []Run {
	if text == "" {
		return nil
	}
	return []Run{{Text: text, Italic: true}}
}

// Expand converts marked-up text into runs. "**" pairs mark bold spans
// and "*" pairs mark italic spans; a bold span may contain an italic
// span and vice versa. Markers of the same kind do not nest: while a
// span is open, the next marker of its kind closes it. A marker with no
// matching closer is emitted as literal text and reported as a Warning.
// Every character of the source appears in the output; empty runs are
// never emitted.
func Expand(text string) ([]Run, []Warning) {
	var (
		runs     []Run
		warnings []Warning
		buf      strings.Builder
		bold     bool
		italic   bool
	)

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		runs = append(runs, Run{Text: buf.String(), Bold: bold, Italic: italic})
		buf.Reset()
	}

	i := 0
	for i < len(text) {
		if strings.HasPrefix(text[i:], "**") {
			if bold || hasCloser(text[i+2:], "**") {
				flush()
				bold = !bold
			} else {
				warnings = append(warnings, Warning{Position: i, Marker: "**"})
				buf.WriteString("**")
			}
			i += 2
			continue
		}
		if text[i] == '*' {
			if italic || hasCloser(text[i+1:], "*") {
				flush()
				italic = !italic
			} else {
				warnings = append(warnings, Warning{Position: i, Marker: "*"})
				buf.WriteByte('*')
			}
			i++
			continue
		}
		buf.WriteByte(text[i])
		i++
	}
	flush()

	return runs, warnings
}

// hasCloser reports whether rest contains a closing occurrence of the
// given marker. A single-star search must not match the first half of a
// "**" pair, so "**" occurrences are skipped when looking for "*".
func hasCloser(rest, marker string) bool {
	if marker == "**" {
		return strings.Contains(rest, "**")
	}
	for j := 0; j < len(rest); j++ {
		if rest[j] != '*' {
			continue
		}
		if j+1 < len(rest) && rest[j+1] == '*' {
			j++ // part of a bold marker
			continue
		}
		return true
	}
	return false
}

// Text joins the plain text of runs, discarding emphasis.
func Text(runs []Run) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}
