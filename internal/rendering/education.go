package rendering

import (
	"strings"

	"github.com/jonathan/cv-generator/internal/markup"
	"github.com/jonathan/cv-generator/internal/types"
)

// educationRenderer renders education credentials.
type educationRenderer struct{}

func (educationRenderer) ID() string { return types.SectionEducation }

func (educationRenderer) Render(record *types.ProfileRecord, _ *types.RenderConfig) ([]Block, []markup.Warning) {
	if len(record.Education) == 0 {
		return nil, nil
	}

	blocks := []Block{Heading(2, "Education")}
	for i, cred := range record.Education {
		if i > 0 {
			blocks = append(blocks, Spacer())
		}

		blocks = append(blocks, PlainParagraph(credentialHeader(cred)))
		if !cred.Graduated.IsZero() {
			blocks = append(blocks, Paragraph(markup.Italicize("Graduated: "+cred.Graduated.Display())))
		}
		if cred.GPA != "" {
			blocks = append(blocks, PlainParagraph("GPA: "+cred.GPA))
		}
		if cred.Honors != "" {
			blocks = append(blocks, PlainParagraph("Honors: "+cred.Honors))
		}
		if len(cred.Coursework) > 0 {
			blocks = append(blocks, PlainParagraph("Relevant Coursework: "+strings.Join(cred.Coursework, ", ")))
		}
	}
	return blocks, nil
}

func credentialHeader(cred types.Credential) string {
	var sb strings.Builder
	switch {
	case cred.Degree != "" && cred.Institution != "":
		sb.WriteString(cred.Degree + ", " + cred.Institution)
	case cred.Degree != "":
		sb.WriteString(cred.Degree)
	default:
		sb.WriteString(cred.Institution)
	}
	if cred.Location != "" {
		sb.WriteString(" (" + cred.Location + ")")
	}
	return sb.String()
}
