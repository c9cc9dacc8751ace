package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Section identifiers understood by the layout orchestrator. Custom
// sections use their own raw key as the identifier.
const (
	SectionIdentity       = "identity"
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionCertifications = "certifications"
	SectionProjects       = "projects"
	SectionLanguages      = "languages"
	SectionVolunteer      = "volunteer"
	SectionPublications   = "publications"
	// SectionHiddenPayload is not a renderer; listing it under
	// hidden_sections disables the invisible-text layer.
	SectionHiddenPayload = "hidden_payload"
)

// DefaultSectionOrder is the render order used when the configuration
// does not provide one.
var DefaultSectionOrder = []string{
	SectionIdentity,
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionCertifications,
	SectionProjects,
	SectionLanguages,
	SectionVolunteer,
	SectionPublications,
}

// RenderConfig controls document styling, section ordering, and output
// naming. Font choices are restricted to an ATS-safe allow-list.
type RenderConfig struct {
	FontFamily       string   `json:"font_family" validate:"required,oneof=Arial Calibri Georgia"`
	FontSize         int      `json:"font_size" validate:"required,gt=0"`
	SectionOrder     []string `json:"section_order" validate:"required,min=1"`
	HiddenSections   []string `json:"hidden_sections"`
	FilenamePrefix   string   `json:"filename_prefix"`
	IncludeTimestamp bool     `json:"include_timestamp"`
}

// DefaultRenderConfig returns the configuration used when the input
// record carries no cv_config mapping.
func DefaultRenderConfig() *RenderConfig {
	order := make([]string, len(DefaultSectionOrder))
	copy(order, DefaultSectionOrder)
	return &RenderConfig{
		FontFamily:       "Arial",
		FontSize:         11,
		SectionOrder:     order,
		IncludeTimestamp: true,
	}
}

// Validate validates the RenderConfig using the validator.
func (c *RenderConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			first := errs[0]
			switch first.Field() {
			case "FontFamily":
				return fmt.Errorf("font_family %q is not ATS-safe (allowed: Arial, Calibri, Georgia)", c.FontFamily)
			case "FontSize":
				return fmt.Errorf("font_size must be a positive integer, got %d", c.FontSize)
			case "SectionOrder":
				return fmt.Errorf("section_order must list at least one section")
			}
		}
		return err
	}
	return nil
}

// IsHidden reports whether the given section identifier is suppressed.
func (c *RenderConfig) IsHidden(section string) bool {
	for _, s := range c.HiddenSections {
		if s == section {
			return true
		}
	}
	return false
}
