// Package rendering transforms a validated profile record into the
// ordered block stream that the document encoder consumes.
package rendering

import (
	"github.com/jonathan/cv-generator/internal/markup"
)

// BlockKind enumerates the tagged Block variants.
type BlockKind int

const (
	// BlockHeading is a section or entry heading (levels 1-3).
	BlockHeading BlockKind = iota
	// BlockParagraph is body text composed of emphasis runs.
	BlockParagraph
	// BlockBullet is a single-level bullet line.
	BlockBullet
	// BlockSpacer is vertical whitespace between sections and entries.
	BlockSpacer
)

// Block is one atomic unit of rendered document content. The format
// deliberately has no table, image, text box, or header/footer variant:
// such constructs are unreliably parsed by ATS software.
type Block struct {
	Kind     BlockKind
	Level    int // heading level, 1-3
	Runs     []markup.Run
	Centered bool
	// Hidden marks the invisible-text paragraph: present in the
	// character stream but styled to be visually imperceptible.
	Hidden bool
}

// Text returns the plain text of the block, emphasis discarded.
func (b Block) Text() string {
	return markup.Text(b.Runs)
}

// Heading constructs a heading block at the given level.
func Heading(level int, text string) Block {
	return Block{Kind: BlockHeading, Level: level, Runs: markup.Plain(text)}
}

// Paragraph constructs a paragraph block from pre-built runs.
func Paragraph(runs []markup.Run) Block {
	return Block{Kind: BlockParagraph, Runs: runs}
}

// PlainParagraph constructs a paragraph block from unstyled text.
func PlainParagraph(text string) Block {
	return Block{Kind: BlockParagraph, Runs: markup.Plain(text)}
}

// Bullet constructs a bullet block from pre-built runs.
func Bullet(runs []markup.Run) Block {
	return Block{Kind: BlockBullet, Runs: runs}
}

// Spacer constructs a spacer block.
func Spacer() Block {
	return Block{Kind: BlockSpacer}
}
