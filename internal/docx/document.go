// Package docx encodes a rendered block stream as a minimal OOXML
// word-processing package. The output is deliberately austere:
// single-column body, direct run formatting, no tables, images,
// headers, or footers, because ATS parsers handle plain paragraph
// streams most reliably.
package docx

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-generator/internal/markup"
	"github.com/jonathan/cv-generator/internal/rendering"
	"github.com/jonathan/cv-generator/internal/types"
)

const (
	// bulletGlyph is the single plain bullet used for all bullet
	// blocks. No custom symbols, no nested levels.
	bulletGlyph = "• "

	// hiddenColor matches the page background so hidden runs render no
	// visible glyphs while staying in the character stream.
	hiddenColor = "FFFFFF"
	// hiddenSize is 1pt in half-points, the minimum Word accepts.
	hiddenSize = 2

	// Twentieths of a point: page size (US Letter) and 1-inch margins.
	pageWidth  = 12240
	pageHeight = 15840
	pageMargin = 1440

	// Paragraph spacing in twentieths of a point: 6pt after headings,
	// 3pt after body text (matches the document's compact CV layout).
	headingSpaceAfter = 120
	bodySpaceAfter    = 60

	bulletIndent = 360
)

// headingStep maps heading level to the point-size increase over the
// configured base size.
var headingStep = map[int]int{1: 8, 2: 4, 3: 2}

// buildDocumentXML renders word/document.xml from the block stream.
func buildDocumentXML(blocks []rendering.Block, cfg *types.RenderConfig) string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	for _, block := range blocks {
		writeBlock(&sb, block, cfg)
	}

	fmt.Fprintf(&sb,
		`<w:sectPr><w:pgSz w:w="%d" w:h="%d"/><w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="720" w:footer="720" w:gutter="0"/><w:cols w:space="720"/></w:sectPr>`,
		pageWidth, pageHeight, pageMargin, pageMargin, pageMargin, pageMargin)
	sb.WriteString(`</w:body></w:document>`)
	return sb.String()
}

func writeBlock(sb *strings.Builder, block rendering.Block, cfg *types.RenderConfig) {
	switch block.Kind {
	case rendering.BlockSpacer:
		sb.WriteString(`<w:p/>`)
	case rendering.BlockHeading:
		writeHeading(sb, block, cfg)
	case rendering.BlockBullet:
		writeBullet(sb, block, cfg)
	case rendering.BlockParagraph:
		writeParagraph(sb, block, cfg)
	}
}

func writeHeading(sb *strings.Builder, block rendering.Block, cfg *types.RenderConfig) {
	size := cfg.FontSize + headingStep[block.Level]
	sb.WriteString(`<w:p><w:pPr>`)
	if block.Centered {
		sb.WriteString(`<w:jc w:val="center"/>`)
	}
	fmt.Fprintf(sb, `<w:spacing w:after="%d"/>`, headingSpaceAfter)
	sb.WriteString(`</w:pPr>`)
	writeRun(sb, markup.Run{Text: block.Text(), Bold: true}, cfg.FontFamily, size*2, "")
	sb.WriteString(`</w:p>`)
}

func writeBullet(sb *strings.Builder, block rendering.Block, cfg *types.RenderConfig) {
	sb.WriteString(`<w:p><w:pPr>`)
	fmt.Fprintf(sb, `<w:ind w:left="%d"/>`, bulletIndent)
	fmt.Fprintf(sb, `<w:spacing w:after="%d"/>`, bodySpaceAfter)
	sb.WriteString(`</w:pPr>`)
	writeRun(sb, markup.Run{Text: bulletGlyph}, cfg.FontFamily, cfg.FontSize*2, "")
	for _, run := range block.Runs {
		writeRun(sb, run, cfg.FontFamily, cfg.FontSize*2, "")
	}
	sb.WriteString(`</w:p>`)
}

func writeParagraph(sb *strings.Builder, block rendering.Block, cfg *types.RenderConfig) {
	sb.WriteString(`<w:p><w:pPr>`)
	if block.Centered {
		sb.WriteString(`<w:jc w:val="center"/>`)
	}
	fmt.Fprintf(sb, `<w:spacing w:after="%d"/>`, bodySpaceAfter)
	sb.WriteString(`</w:pPr>`)

	size := cfg.FontSize * 2
	color := ""
	if block.Hidden {
		size = hiddenSize
		color = hiddenColor
	}
	for _, run := range block.Runs {
		writeRun(sb, run, cfg.FontFamily, size, color)
	}
	sb.WriteString(`</w:p>`)
}

// writeRun emits one run with direct formatting. size is in
// half-points; color is an RRGGBB hex string or empty for automatic.
func writeRun(sb *strings.Builder, run markup.Run, font string, size int, color string) {
	if run.Text == "" {
		return
	}
	sb.WriteString(`<w:r><w:rPr>`)
	fmt.Fprintf(sb, `<w:rFonts w:ascii="%s" w:hAnsi="%s"/>`, escapeXML(font), escapeXML(font))
	if run.Bold {
		sb.WriteString(`<w:b/>`)
	}
	if run.Italic {
		sb.WriteString(`<w:i/>`)
	}
	if color != "" {
		fmt.Fprintf(sb, `<w:color w:val="%s"/>`, color)
	}
	fmt.Fprintf(sb, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, size, size)
	sb.WriteString(`</w:rPr>`)
	fmt.Fprintf(sb, `<w:t xml:space="preserve">%s</w:t>`, escapeXML(run.Text))
	sb.WriteString(`</w:r>`)
}

// escapeXML escapes the five XML special characters.
func escapeXML(s string) string {
	return xmlReplacer.Replace(s)
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)
