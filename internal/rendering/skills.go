package rendering

import (
	"strings"

	"github.com/jonathan/cv-generator/internal/markup"
	"github.com/jonathan/cv-generator/internal/types"
)

// skillsRenderer renders skill categories in their declared order.
// Declaration order reflects user priority and is never re-sorted.
type skillsRenderer struct{}

func (skillsRenderer) ID() string { return types.SectionSkills }

func (skillsRenderer) Render(record *types.ProfileRecord, _ *types.RenderConfig) ([]Block, []markup.Warning) {
	nonEmpty := 0
	for _, cat := range record.Skills {
		if len(cat.Skills) > 0 {
			nonEmpty++
		}
	}
	if nonEmpty == 0 {
		return nil, nil
	}

	blocks := []Block{Heading(2, "Skills")}
	for _, cat := range record.Skills {
		if len(cat.Skills) == 0 {
			continue
		}
		blocks = append(blocks, Heading(3, TitleLabel(cat.Label)))
		blocks = append(blocks, PlainParagraph(strings.Join(cat.Skills, ", ")))
	}
	return blocks, nil
}

// TitleLabel formats a raw mapping key for display: underscores become
// spaces and each word is capitalized ("programming_languages" →
// "Programming Languages").
func TitleLabel(key string) string {
	words := strings.FieldsFunc(key, func(r rune) bool {
		return r == '_' || r == ' '
	})
	for i, word := range words {
		runes := []rune(word)
		words[i] = strings.ToUpper(string(runes[0])) + string(runes[1:])
	}
	return strings.Join(words, " ")
}
