package rendering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-generator/internal/types"
)

func TestExperienceRenderer_HeaderFormat(t *testing.T) {
	record := &types.ProfileRecord{
		Experience: []types.Engagement{{
			Company: "Acme",
			Role:    "Engineer",
			Start:   types.Period{Year: 2022, Month: time.January},
		}},
	}

	blocks, warnings := experienceRenderer{}.Render(record, types.DefaultRenderConfig())
	require.Empty(t, warnings)
	require.Len(t, blocks, 2)

	assert.Equal(t, BlockHeading, blocks[0].Kind)
	assert.Equal(t, "Experience", blocks[0].Text())

	// The engagement header is a bullet-free paragraph.
	assert.Equal(t, BlockParagraph, blocks[1].Kind)
	assert.Equal(t, "Engineer, Acme — Jan 2022 – Present", blocks[1].Text())
}

func TestExperienceRenderer_FullEntry(t *testing.T) {
	record := &types.ProfileRecord{
		Experience: []types.Engagement{{
			Company:      "Acme",
			Role:         "Engineer",
			Location:     "Remote",
			Start:        types.Period{Year: 2020, Month: time.March},
			End:          types.Period{Year: 2023, Month: time.June},
			Description:  "Owned the billing platform",
			Achievements: []string{"Cut costs by 30%", "Led migration to Go"},
			Technologies: []string{"Go", "Postgres"},
		}},
	}

	blocks, _ := experienceRenderer{}.Render(record, types.DefaultRenderConfig())
	require.Len(t, blocks, 6)

	assert.Equal(t, "Engineer, Acme (Remote) — Mar 2020 – Jun 2023", blocks[1].Text())
	assert.Equal(t, BlockParagraph, blocks[2].Kind)
	assert.Equal(t, BlockBullet, blocks[3].Kind)
	assert.Equal(t, BlockBullet, blocks[4].Kind)
	assert.Equal(t, "Technologies: Go, Postgres", blocks[5].Text())
	assert.True(t, blocks[5].Runs[0].Italic)
}

func TestExperienceRenderer_SpacerBetweenEngagements(t *testing.T) {
	record := &types.ProfileRecord{
		Experience: []types.Engagement{
			{Company: "Acme", Role: "Engineer"},
			{Company: "Globex", Role: "Lead"},
		},
	}

	blocks, _ := experienceRenderer{}.Render(record, types.DefaultRenderConfig())
	spacers := 0
	for _, b := range blocks {
		if b.Kind == BlockSpacer {
			spacers++
		}
	}
	assert.Equal(t, 1, spacers)
	assert.NotEqual(t, BlockSpacer, blocks[len(blocks)-1].Kind)
}

func TestExperienceRenderer_Empty(t *testing.T) {
	blocks, warnings := experienceRenderer{}.Render(&types.ProfileRecord{}, types.DefaultRenderConfig())
	assert.Empty(t, blocks)
	assert.Empty(t, warnings)
}

func TestIdentityRenderer_CenteredContactLines(t *testing.T) {
	record := &types.ProfileRecord{
		Identity: types.Identity{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "+1 555 0100",
			LinkedIn: "linkedin.com/in/janedoe",
		},
	}

	blocks, _ := identityRenderer{}.Render(record, types.DefaultRenderConfig())
	require.Len(t, blocks, 4)

	assert.Equal(t, BlockHeading, blocks[0].Kind)
	assert.Equal(t, 1, blocks[0].Level)
	assert.Equal(t, "Jane Doe", blocks[0].Text())

	for _, block := range blocks {
		assert.True(t, block.Centered)
	}
	assert.Equal(t, "LinkedIn: linkedin.com/in/janedoe", blocks[3].Text())
}

func TestSkillsRenderer_DeclaredOrderNeverSorted(t *testing.T) {
	record := &types.ProfileRecord{
		Skills: []types.SkillCategory{
			{Label: "zeta_tools", Skills: []string{"Terraform"}},
			{Label: "alpha_languages", Skills: []string{"Go", "Rust"}},
		},
	}

	blocks, _ := skillsRenderer{}.Render(record, types.DefaultRenderConfig())
	require.Len(t, blocks, 5)

	assert.Equal(t, "Skills", blocks[0].Text())
	assert.Equal(t, "Zeta Tools", blocks[1].Text())
	assert.Equal(t, "Terraform", blocks[2].Text())
	assert.Equal(t, "Alpha Languages", blocks[3].Text())
	assert.Equal(t, "Go, Rust", blocks[4].Text())
}

func TestSkillsRenderer_AllCategoriesEmpty(t *testing.T) {
	record := &types.ProfileRecord{
		Skills: []types.SkillCategory{{Label: "empty", Skills: nil}},
	}
	blocks, _ := skillsRenderer{}.Render(record, types.DefaultRenderConfig())
	assert.Empty(t, blocks, "no heading may be emitted for an empty section")
}

func TestEducationRenderer(t *testing.T) {
	record := &types.ProfileRecord{
		Education: []types.Credential{{
			Degree:      "BSc Computer Science",
			Institution: "State University",
			Location:    "Springfield",
			Graduated:   types.Period{Year: 2018, Month: time.May},
			GPA:         "3.9",
			Honors:      "Magna Cum Laude",
			Coursework:  []string{"Algorithms", "Databases"},
		}},
	}

	blocks, _ := educationRenderer{}.Render(record, types.DefaultRenderConfig())
	require.Len(t, blocks, 6)
	assert.Equal(t, "Education", blocks[0].Text())
	assert.Equal(t, "BSc Computer Science, State University (Springfield)", blocks[1].Text())
	assert.Equal(t, "Graduated: May 2018", blocks[2].Text())
	assert.Equal(t, "GPA: 3.9", blocks[3].Text())
	assert.Equal(t, "Honors: Magna Cum Laude", blocks[4].Text())
	assert.Equal(t, "Relevant Coursework: Algorithms, Databases", blocks[5].Text())
}

func TestCertificationsRenderer(t *testing.T) {
	record := &types.ProfileRecord{
		Certifications: []types.Certification{{
			Name:         "CKA",
			Issuer:       "CNCF",
			Date:         types.Period{Year: 2023, Month: time.June},
			CredentialID: "abc-123",
		}},
	}

	blocks, _ := certificationsRenderer{}.Render(record, types.DefaultRenderConfig())
	require.Len(t, blocks, 3)
	assert.Equal(t, "Certifications", blocks[0].Text())
	assert.Equal(t, "CKA - CNCF (Jun 2023)", blocks[1].Text())
	assert.Equal(t, "Credential ID: abc-123", blocks[2].Text())
}

func TestProjectsRenderer(t *testing.T) {
	record := &types.ProfileRecord{
		Projects: []types.Project{{
			Name:         "cv-generator",
			Description:  "Renders **ATS-friendly** documents",
			Technologies: []string{"Go"},
			URL:          "https://example.com/cv",
		}},
	}

	blocks, warnings := projectsRenderer{}.Render(record, types.DefaultRenderConfig())
	require.Empty(t, warnings)
	require.Len(t, blocks, 5)
	assert.Equal(t, "Projects", blocks[0].Text())
	assert.Equal(t, "cv-generator", blocks[1].Text())
	assert.Equal(t, "Renders ATS-friendly documents", blocks[2].Text())
	assert.True(t, blocks[2].Runs[1].Bold)
	assert.Equal(t, "URL: https://example.com/cv", blocks[4].Text())
}

func TestLanguagesRenderer(t *testing.T) {
	record := &types.ProfileRecord{
		Languages: []types.Language{{Name: "English", Proficiency: "Native"}},
	}
	blocks, _ := languagesRenderer{}.Render(record, types.DefaultRenderConfig())
	require.Len(t, blocks, 2)
	assert.Equal(t, "Languages", blocks[0].Text())
	assert.Equal(t, "English - Native", blocks[1].Text())
}

func TestVolunteerRenderer(t *testing.T) {
	record := &types.ProfileRecord{
		Volunteer: []types.Volunteer{{
			Role:         "Mentor",
			Organization: "Code Club",
			Duration:     "2019-2021",
			Description:  "Taught weekly sessions",
		}},
	}
	blocks, _ := volunteerRenderer{}.Render(record, types.DefaultRenderConfig())
	require.Len(t, blocks, 3)
	assert.Equal(t, "Volunteer Experience", blocks[0].Text())
	assert.Equal(t, "Mentor, Code Club (2019-2021)", blocks[1].Text())
}

func TestPublicationsRenderer(t *testing.T) {
	record := &types.ProfileRecord{
		Publications: []types.Publication{{
			Title: "Scaling Queues",
			Venue: "SRE Weekly",
			Date:  types.Period{Year: 2021, Month: time.February},
			URL:   "https://example.com/queues",
		}},
	}
	blocks, _ := publicationsRenderer{}.Render(record, types.DefaultRenderConfig())
	require.Len(t, blocks, 3)
	assert.Equal(t, "Publications", blocks[0].Text())
	assert.Equal(t, "Scaling Queues - SRE Weekly (Feb 2021)", blocks[1].Text())
	assert.Equal(t, "URL: https://example.com/queues", blocks[2].Text())
}

func TestTitleLabel(t *testing.T) {
	assert.Equal(t, "Programming Languages", TitleLabel("programming_languages"))
	assert.Equal(t, "Awards", TitleLabel("awards"))
	assert.Equal(t, "Side Projects", TitleLabel("side projects"))
}

func TestInjectHiddenText(t *testing.T) {
	stream := []Block{Heading(1, "Jane Doe")}

	injected := InjectHiddenText(stream, "kubernetes terraform")
	require.Len(t, injected, 2)

	last := injected[len(injected)-1]
	assert.Equal(t, BlockParagraph, last.Kind)
	assert.True(t, last.Hidden)
	assert.Equal(t, "kubernetes terraform", last.Text())
}

func TestInjectHiddenText_EmptyPayloadIsNoOp(t *testing.T) {
	stream := []Block{Heading(1, "Jane Doe")}
	assert.Equal(t, stream, InjectHiddenText(stream, ""))
}
