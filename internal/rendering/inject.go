package rendering

import (
	"github.com/jonathan/cv-generator/internal/markup"
)

// InjectHiddenText appends the steganographic payload paragraph to the
// block stream. The block carries the Hidden flag; the encoder styles
// it with the page background color at minimal size, so text extraction
// sees the payload while a rendered view shows nothing. The block is
// always structurally last so it cannot corrupt the reading order of
// visible content. Empty payload is a no-op.
func InjectHiddenText(stream []Block, payload string) []Block {
	if payload == "" {
		return stream
	}
	return append(stream, Block{
		Kind:   BlockParagraph,
		Runs:   markup.Plain(payload),
		Hidden: true,
	})
}
