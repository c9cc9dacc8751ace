package rendering

import (
	"github.com/jonathan/cv-generator/internal/markup"
	"github.com/jonathan/cv-generator/internal/types"
)

// SectionReport records how many blocks a rendered section produced.
type SectionReport struct {
	ID     string
	Blocks int
}

// SectionWarning ties a recovered markup anomaly to the section it
// occurred in.
type SectionWarning struct {
	Section string
	Warning markup.Warning
}

// Diagnostics is the result object threaded through the pipeline in
// place of global logging. It is returned to the caller alongside the
// block stream.
type Diagnostics struct {
	Sections []SectionReport
	Warnings []SectionWarning
}

// WarningStrings returns the warnings in display form.
func (d *Diagnostics) WarningStrings() []string {
	out := make([]string, 0, len(d.Warnings))
	for _, sw := range d.Warnings {
		out = append(out, sw.Section+": "+sw.Warning.String())
	}
	return out
}

// Compose resolves the configured section order and assembles the
// final block stream. Hidden sections are skipped; an identifier with
// neither a registered renderer nor a matching custom section aborts
// with UnknownSectionError. A spacer is inserted between non-empty
// sections only, so an empty section never leaves dangling whitespace.
func Compose(record *types.ProfileRecord, cfg *types.RenderConfig, reg *Registry) ([]Block, *Diagnostics, error) {
	var stream []Block
	diags := &Diagnostics{}

	for _, id := range cfg.SectionOrder {
		if cfg.IsHidden(id) {
			continue
		}

		renderer, ok := reg.Lookup(id)
		if !ok {
			renderer, ok = lookupCustom(record, id)
		}
		if !ok {
			return nil, nil, &UnknownSectionError{Section: id}
		}

		blocks, warnings := renderer.Render(record, cfg)
		for _, w := range warnings {
			diags.Warnings = append(diags.Warnings, SectionWarning{Section: id, Warning: w})
		}
		if len(blocks) == 0 {
			continue
		}

		if len(stream) > 0 {
			stream = append(stream, Spacer())
		}
		stream = append(stream, blocks...)
		diags.Sections = append(diags.Sections, SectionReport{ID: id, Blocks: len(blocks)})
	}

	return stream, diags, nil
}

// lookupCustom finds a pass-through section by its raw key.
func lookupCustom(record *types.ProfileRecord, id string) (SectionRenderer, bool) {
	for _, section := range record.Custom {
		if section.Key == id {
			return customRenderer{section: section}, true
		}
	}
	return nil, false
}
