package rendering

import (
	"github.com/jonathan/cv-generator/internal/markup"
	"github.com/jonathan/cv-generator/internal/types"
)

// customRenderer renders a pass-through section that was not recognized
// by the validator. The raw key becomes the heading; scalar content
// renders as paragraphs and sequence content as bullets.
type customRenderer struct {
	section types.CustomSection
}

func (r customRenderer) ID() string { return r.section.Key }

func (r customRenderer) Render(_ *types.ProfileRecord, _ *types.RenderConfig) ([]Block, []markup.Warning) {
	if len(r.section.Items) == 0 {
		return nil, nil
	}

	blocks := []Block{Heading(2, TitleLabel(r.section.Key))}
	var warnings []markup.Warning

	for _, item := range r.section.Items {
		if item == "" {
			continue
		}
		runs, w := markup.Expand(item)
		warnings = append(warnings, w...)
		if r.section.Bulleted {
			blocks = append(blocks, Bullet(runs))
		} else {
			blocks = append(blocks, Paragraph(runs))
		}
	}
	if len(blocks) == 1 {
		// Heading only: all items were empty.
		return nil, warnings
	}
	return blocks, warnings
}
