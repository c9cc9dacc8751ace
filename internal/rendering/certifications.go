package rendering

import (
	"strings"

	"github.com/jonathan/cv-generator/internal/markup"
	"github.com/jonathan/cv-generator/internal/types"
)

// certificationsRenderer renders professional certifications.
type certificationsRenderer struct{}

func (certificationsRenderer) ID() string { return types.SectionCertifications }

func (certificationsRenderer) Render(record *types.ProfileRecord, _ *types.RenderConfig) ([]Block, []markup.Warning) {
	if len(record.Certifications) == 0 {
		return nil, nil
	}

	blocks := []Block{Heading(2, "Certifications")}
	for _, cert := range record.Certifications {
		var sb strings.Builder
		sb.WriteString(cert.Name)
		if cert.Issuer != "" {
			sb.WriteString(" - " + cert.Issuer)
		}
		if !cert.Date.IsZero() {
			sb.WriteString(" (" + cert.Date.Display() + ")")
		}
		blocks = append(blocks, PlainParagraph(sb.String()))

		if cert.CredentialID != "" {
			blocks = append(blocks, Paragraph(markup.Italicize("Credential ID: "+cert.CredentialID)))
		}
	}
	return blocks, nil
}
