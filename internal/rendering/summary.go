package rendering

import (
	"strings"

	"github.com/jonathan/cv-generator/internal/markup"
	"github.com/jonathan/cv-generator/internal/types"
)

// summaryRenderer renders the free-text professional summary.
type summaryRenderer struct{}

func (summaryRenderer) ID() string { return types.SectionSummary }

func (summaryRenderer) Render(record *types.ProfileRecord, _ *types.RenderConfig) ([]Block, []markup.Warning) {
	text := strings.TrimSpace(record.Summary)
	if text == "" {
		return nil, nil
	}
	runs, warnings := markup.Expand(text)
	return []Block{
		Heading(2, "Summary"),
		Paragraph(runs),
	}, warnings
}
