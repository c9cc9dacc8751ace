package rendering

import (
	"strings"

	"github.com/jonathan/cv-generator/internal/markup"
	"github.com/jonathan/cv-generator/internal/types"
)

// experienceRenderer renders work history. Each engagement gets a
// bullet-free header paragraph ("Engineer, Acme — Jan 2022 – Present"),
// an optional description, achievement bullets, and an italic
// technologies line.
type experienceRenderer struct{}

func (experienceRenderer) ID() string { return types.SectionExperience }

func (experienceRenderer) Render(record *types.ProfileRecord, _ *types.RenderConfig) ([]Block, []markup.Warning) {
	if len(record.Experience) == 0 {
		return nil, nil
	}

	blocks := []Block{Heading(2, "Experience")}
	var warnings []markup.Warning

	for i, eng := range record.Experience {
		if i > 0 {
			blocks = append(blocks, Spacer())
		}

		header := PlainParagraph(engagementHeader(eng))
		blocks = append(blocks, header)

		if eng.Description != "" {
			runs, w := markup.Expand(eng.Description)
			warnings = append(warnings, w...)
			blocks = append(blocks, Paragraph(runs))
		}
		for _, achievement := range eng.Achievements {
			runs, w := markup.Expand(achievement)
			warnings = append(warnings, w...)
			blocks = append(blocks, Bullet(runs))
		}
		if len(eng.Technologies) > 0 {
			blocks = append(blocks, Paragraph(markup.Italicize("Technologies: "+strings.Join(eng.Technologies, ", "))))
		}
	}
	return blocks, warnings
}

// engagementHeader builds the "Role, Company (Location) — Start – End"
// display line. An open-ended engagement always renders the end token
// as "Present" regardless of how the sentinel was spelled in the input.
func engagementHeader(eng types.Engagement) string {
	var sb strings.Builder
	switch {
	case eng.Role != "" && eng.Company != "":
		sb.WriteString(eng.Role + ", " + eng.Company)
	case eng.Role != "":
		sb.WriteString(eng.Role)
	default:
		sb.WriteString(eng.Company)
	}
	if eng.Location != "" {
		sb.WriteString(" (" + eng.Location + ")")
	}
	if !eng.Start.IsZero() {
		sb.WriteString(" — " + eng.Start.Display() + " – " + eng.End.Display())
	}
	return sb.String()
}
