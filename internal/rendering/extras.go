package rendering

import (
	"strings"

	"github.com/jonathan/cv-generator/internal/markup"
	"github.com/jonathan/cv-generator/internal/types"
)

// languagesRenderer renders spoken languages as one line per entry.
type languagesRenderer struct{}

func (languagesRenderer) ID() string { return types.SectionLanguages }

func (languagesRenderer) Render(record *types.ProfileRecord, _ *types.RenderConfig) ([]Block, []markup.Warning) {
	if len(record.Languages) == 0 {
		return nil, nil
	}

	blocks := []Block{Heading(2, "Languages")}
	for _, lang := range record.Languages {
		line := lang.Name
		if lang.Proficiency != "" {
			line += " - " + lang.Proficiency
		}
		blocks = append(blocks, PlainParagraph(line))
	}
	return blocks, nil
}

// volunteerRenderer renders volunteer experience entries.
type volunteerRenderer struct{}

func (volunteerRenderer) ID() string { return types.SectionVolunteer }

func (volunteerRenderer) Render(record *types.ProfileRecord, _ *types.RenderConfig) ([]Block, []markup.Warning) {
	if len(record.Volunteer) == 0 {
		return nil, nil
	}

	blocks := []Block{Heading(2, "Volunteer Experience")}
	var warnings []markup.Warning

	for i, vol := range record.Volunteer {
		if i > 0 {
			blocks = append(blocks, Spacer())
		}

		var sb strings.Builder
		switch {
		case vol.Role != "" && vol.Organization != "":
			sb.WriteString(vol.Role + ", " + vol.Organization)
		case vol.Role != "":
			sb.WriteString(vol.Role)
		default:
			sb.WriteString(vol.Organization)
		}
		if vol.Duration != "" {
			sb.WriteString(" (" + vol.Duration + ")")
		}
		blocks = append(blocks, PlainParagraph(sb.String()))

		if vol.Description != "" {
			runs, w := markup.Expand(vol.Description)
			warnings = append(warnings, w...)
			blocks = append(blocks, Paragraph(runs))
		}
	}
	return blocks, warnings
}

// publicationsRenderer renders publication entries.
type publicationsRenderer struct{}

func (publicationsRenderer) ID() string { return types.SectionPublications }

func (publicationsRenderer) Render(record *types.ProfileRecord, _ *types.RenderConfig) ([]Block, []markup.Warning) {
	if len(record.Publications) == 0 {
		return nil, nil
	}

	blocks := []Block{Heading(2, "Publications")}
	for i, pub := range record.Publications {
		if i > 0 {
			blocks = append(blocks, Spacer())
		}

		var sb strings.Builder
		sb.WriteString(pub.Title)
		if pub.Venue != "" {
			sb.WriteString(" - " + pub.Venue)
		}
		if !pub.Date.IsZero() {
			sb.WriteString(" (" + pub.Date.Display() + ")")
		}
		blocks = append(blocks, PlainParagraph(sb.String()))

		if pub.URL != "" {
			blocks = append(blocks, PlainParagraph("URL: "+pub.URL))
		}
	}
	return blocks, nil
}
