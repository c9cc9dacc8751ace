package rendering

import (
	"github.com/jonathan/cv-generator/internal/markup"
	"github.com/jonathan/cv-generator/internal/types"
)

// identityRenderer renders the name heading and contact lines. Each
// contact channel gets its own centered line; ATS parsers handle one
// value per line far more reliably than delimiter-joined contact rows.
type identityRenderer struct{}

func (identityRenderer) ID() string { return types.SectionIdentity }

func (identityRenderer) Render(record *types.ProfileRecord, _ *types.RenderConfig) ([]Block, []markup.Warning) {
	id := record.Identity
	if id.Name == "" {
		return nil, nil
	}

	name := Heading(1, id.Name)
	name.Centered = true
	blocks := []Block{name}

	contactLines := []string{}
	if id.Email != "" {
		contactLines = append(contactLines, id.Email)
	}
	if id.Phone != "" {
		contactLines = append(contactLines, id.Phone)
	}
	if id.Location != "" {
		contactLines = append(contactLines, id.Location)
	}
	if id.LinkedIn != "" {
		contactLines = append(contactLines, "LinkedIn: "+id.LinkedIn)
	}
	if id.Website != "" {
		contactLines = append(contactLines, "Website: "+id.Website)
	}
	if id.GitHub != "" {
		contactLines = append(contactLines, "GitHub: "+id.GitHub)
	}

	for _, line := range contactLines {
		p := PlainParagraph(line)
		p.Centered = true
		blocks = append(blocks, p)
	}
	return blocks, nil
}
