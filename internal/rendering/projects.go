package rendering

import (
	"strings"

	"github.com/jonathan/cv-generator/internal/markup"
	"github.com/jonathan/cv-generator/internal/types"
)

// projectsRenderer renders project entries.
type projectsRenderer struct{}

func (projectsRenderer) ID() string { return types.SectionProjects }

func (projectsRenderer) Render(record *types.ProfileRecord, _ *types.RenderConfig) ([]Block, []markup.Warning) {
	if len(record.Projects) == 0 {
		return nil, nil
	}

	blocks := []Block{Heading(2, "Projects")}
	var warnings []markup.Warning

	for i, project := range record.Projects {
		if i > 0 {
			blocks = append(blocks, Spacer())
		}

		blocks = append(blocks, Heading(3, project.Name))
		if project.Description != "" {
			runs, w := markup.Expand(project.Description)
			warnings = append(warnings, w...)
			blocks = append(blocks, Paragraph(runs))
		}
		if len(project.Technologies) > 0 {
			blocks = append(blocks, Paragraph(markup.Italicize("Technologies: "+strings.Join(project.Technologies, ", "))))
		}
		if project.URL != "" {
			blocks = append(blocks, PlainParagraph("URL: "+project.URL))
		}
		if !project.Date.IsZero() {
			blocks = append(blocks, PlainParagraph(project.Date.Display()))
		}
	}
	return blocks, warnings
}
