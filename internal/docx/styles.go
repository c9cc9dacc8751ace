package docx

import (
	"fmt"

	"github.com/jonathan/cv-generator/internal/types"
)

// buildStylesXML renders word/styles.xml with the document defaults:
// the configured font family and base size apply to every run that does
// not override them.
func buildStylesXML(cfg *types.RenderConfig) string {
	font := escapeXML(cfg.FontFamily)
	size := cfg.FontSize * 2
	return xmlHeader + fmt.Sprintf(
		`<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`+
			`<w:docDefaults><w:rPrDefault><w:rPr>`+
			`<w:rFonts w:ascii="%s" w:hAnsi="%s" w:cs="%s"/>`+
			`<w:sz w:val="%d"/><w:szCs w:val="%d"/>`+
			`</w:rPr></w:rPrDefault><w:pPrDefault/></w:docDefaults>`+
			`<w:style w:type="paragraph" w:default="1" w:styleId="Normal">`+
			`<w:name w:val="Normal"/><w:qFormat/>`+
			`</w:style>`+
			`</w:styles>`,
		font, font, font, size, size)
}

// buildFontTableXML renders word/fontTable.xml declaring the single
// body font.
func buildFontTableXML(cfg *types.RenderConfig) string {
	font := escapeXML(cfg.FontFamily)
	return xmlHeader + fmt.Sprintf(
		`<w:fonts xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`+
			`<w:font w:name="%s"/>`+
			`</w:fonts>`,
		font)
}
