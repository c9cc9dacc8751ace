package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-generator/internal/types"
)

func identityOnlyRecord() *types.ProfileRecord {
	return &types.ProfileRecord{
		Identity: types.Identity{
			Name:  "Jane Doe",
			Email: "jane@example.com",
		},
	}
}

func TestCompose_IdentityOnly(t *testing.T) {
	record := identityOnlyRecord()
	cfg := types.DefaultRenderConfig()

	stream, diags, err := Compose(record, cfg, NewRegistry())
	require.NoError(t, err)

	// Exactly one non-empty section, and no spacer anywhere: empty
	// sections never trigger spacer insertion.
	require.Len(t, diags.Sections, 1)
	assert.Equal(t, types.SectionIdentity, diags.Sections[0].ID)
	for _, block := range stream {
		assert.NotEqual(t, BlockSpacer, block.Kind)
	}
}

func TestCompose_SpacerOnlyBetweenNonEmptySections(t *testing.T) {
	record := identityOnlyRecord()
	record.Summary = "Experienced engineer"
	record.Skills = []types.SkillCategory{{Label: "languages", Skills: []string{"Go"}}}
	cfg := types.DefaultRenderConfig()

	stream, diags, err := Compose(record, cfg, NewRegistry())
	require.NoError(t, err)
	require.Len(t, diags.Sections, 3)

	spacers := 0
	for _, block := range stream {
		if block.Kind == BlockSpacer {
			spacers++
		}
	}
	// Three non-empty sections, two gaps.
	assert.Equal(t, 2, spacers)

	// No leading or trailing spacer.
	assert.NotEqual(t, BlockSpacer, stream[0].Kind)
	assert.NotEqual(t, BlockSpacer, stream[len(stream)-1].Kind)
}

func TestCompose_HiddenSectionRemovedWithoutShiftingOrder(t *testing.T) {
	record := identityOnlyRecord()
	record.Experience = []types.Engagement{{Company: "Acme", Role: "Engineer"}}
	record.Skills = []types.SkillCategory{
		{Label: "backend", Skills: []string{"Go", "Postgres"}},
		{Label: "frontend", Skills: []string{"TypeScript"}},
	}
	cfg := types.DefaultRenderConfig()
	cfg.SectionOrder = []string{types.SectionSkills, types.SectionExperience}
	cfg.HiddenSections = []string{types.SectionExperience}

	stream, diags, err := Compose(record, cfg, NewRegistry())
	require.NoError(t, err)

	require.Len(t, diags.Sections, 1)
	assert.Equal(t, types.SectionSkills, diags.Sections[0].ID)

	var headings []string
	for _, block := range stream {
		if block.Kind == BlockHeading {
			headings = append(headings, block.Text())
		}
	}
	// Skills in declared category order, no Experience heading anywhere.
	assert.Equal(t, []string{"Skills", "Backend", "Frontend"}, headings)
	for _, h := range headings {
		assert.NotEqual(t, "Experience", h)
	}
}

func TestCompose_UnknownSectionIsError(t *testing.T) {
	record := identityOnlyRecord()
	cfg := types.DefaultRenderConfig()
	cfg.SectionOrder = []string{types.SectionIdentity, "experiense"}

	_, _, err := Compose(record, cfg, NewRegistry())
	require.Error(t, err)

	var uerr *UnknownSectionError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "experiense", uerr.Section)
}

func TestCompose_CustomSectionRenderedByKey(t *testing.T) {
	record := identityOnlyRecord()
	record.Custom = []types.CustomSection{
		{Key: "awards", Items: []string{"Best Hack 2021"}, Bulleted: true},
	}
	cfg := types.DefaultRenderConfig()
	cfg.SectionOrder = append(cfg.SectionOrder, "awards")

	stream, diags, err := Compose(record, cfg, NewRegistry())
	require.NoError(t, err)
	require.Len(t, diags.Sections, 2)

	var foundHeading, foundBullet bool
	for _, block := range stream {
		if block.Kind == BlockHeading && block.Text() == "Awards" {
			foundHeading = true
		}
		if block.Kind == BlockBullet && block.Text() == "Best Hack 2021" {
			foundBullet = true
		}
	}
	assert.True(t, foundHeading)
	assert.True(t, foundBullet)
}

func TestCompose_DeterministicForSameInputs(t *testing.T) {
	record := identityOnlyRecord()
	record.Summary = "Builds **reliable** systems"
	cfg := types.DefaultRenderConfig()

	first, _, err := Compose(record, cfg, NewRegistry())
	require.NoError(t, err)
	second, _, err := Compose(record, cfg, NewRegistry())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCompose_CollectsMarkupWarnings(t *testing.T) {
	record := identityOnlyRecord()
	record.Summary = "dangling **marker"
	cfg := types.DefaultRenderConfig()

	stream, diags, err := Compose(record, cfg, NewRegistry())
	require.NoError(t, err)
	require.NotEmpty(t, stream)

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, types.SectionSummary, diags.Warnings[0].Section)
	assert.Contains(t, diags.WarningStrings()[0], "summary")
}
