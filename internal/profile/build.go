package profile

import (
	"fmt"

	"github.com/jonathan/cv-generator/internal/schemas"
	"github.com/jonathan/cv-generator/internal/types"
)

// reservedKeys are top-level keys with dedicated handling; any other
// key becomes a custom section and is passed through untouched.
var reservedKeys = map[string]bool{
	"identity":       true,
	"summary":        true,
	"experience":     true,
	"education":      true,
	"skills":         true,
	"certifications": true,
	"projects":       true,
	"languages":      true,
	"volunteer":      true,
	"publications":   true,
	"hidden_payload": true,
	"cv_config":      true,
}

// Load decodes, validates, and normalizes a YAML profile record.
// It returns the immutable record and render configuration used for a
// single render invocation. Validation is two-pass: a structural schema
// pass over the raw tree, then required-field and invariant checks that
// report dotted field paths.
func Load(data []byte) (*types.ProfileRecord, *types.RenderConfig, error) {
	raw, err := decode(data)
	if err != nil {
		return nil, nil, err
	}

	if err := schemas.ValidateRecord(raw.tree); err != nil {
		return nil, nil, err
	}

	record, err := buildRecord(raw)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := buildConfig(raw, record)
	if err != nil {
		return nil, nil, err
	}

	return record, cfg, nil
}

// buildRecord normalizes the raw tree into a ProfileRecord. Absent
// optional collections become empty slices, never errors.
func buildRecord(raw *rawRecord) (*types.ProfileRecord, error) {
	record := &types.ProfileRecord{}

	identity, ok := raw.tree["identity"].(map[string]interface{})
	if !ok {
		return nil, &ValidationError{Path: "identity", Message: "required section is missing"}
	}
	record.Identity = types.Identity{
		Name:     getString(identity, "name"),
		Email:    getString(identity, "email"),
		Phone:    getString(identity, "phone"),
		Location: getString(identity, "location"),
		LinkedIn: getString(identity, "linkedin"),
		Website:  getString(identity, "website"),
		GitHub:   getString(identity, "github"),
	}
	if record.Identity.Name == "" {
		return nil, &ValidationError{Path: "identity.name", Message: "required field is missing"}
	}
	if !record.Identity.HasContactChannel() {
		return nil, &ValidationError{Path: "identity", Message: "at least one contact channel (email, phone, linkedin, website, github) is required"}
	}

	record.Summary = getString(raw.tree, "summary")
	record.HiddenPayload = getString(raw.tree, "hidden_payload")

	if err := buildExperience(raw, record); err != nil {
		return nil, err
	}
	buildEducation(raw, record)
	buildSkills(raw, record)
	buildCertifications(raw, record)
	buildProjects(raw, record)
	buildExtras(raw, record)
	buildCustom(raw, record)

	return record, nil
}

func buildExperience(raw *rawRecord, record *types.ProfileRecord) error {
	record.Experience = []types.Engagement{}
	for i, entry := range getMapSlice(raw.tree, "experience") {
		start, err := types.ParsePeriod(getString(entry, "start_date"))
		if err != nil {
			return &ValidationError{Path: fmt.Sprintf("experience[%d].start_date", i), Message: "malformed period", Cause: err}
		}
		end, err := types.ParsePeriod(getString(entry, "end_date"))
		if err != nil {
			return &ValidationError{Path: fmt.Sprintf("experience[%d].end_date", i), Message: "malformed period", Cause: err}
		}
		if !start.IsZero() && !end.IsZero() && end.Before(start) {
			return &ValidationError{
				Path:    fmt.Sprintf("experience[%d].end_date", i),
				Message: fmt.Sprintf("end period %s precedes start period %s", end.Display(), start.Display()),
			}
		}
		record.Experience = append(record.Experience, types.Engagement{
			Company:      getString(entry, "company"),
			Role:         getString(entry, "role"),
			Location:     getString(entry, "location"),
			Start:        start,
			End:          end,
			Description:  getString(entry, "description"),
			Achievements: getStringSlice(entry, "achievements"),
			Technologies: getStringSlice(entry, "technologies"),
		})
	}
	return nil
}

func buildEducation(raw *rawRecord, record *types.ProfileRecord) {
	record.Education = []types.Credential{}
	for _, entry := range getMapSlice(raw.tree, "education") {
		graduated, err := types.ParsePeriod(getString(entry, "graduation_date"))
		if err != nil {
			// A malformed graduation date is tolerated as absent; the
			// entry itself still renders.
			graduated = types.Period{}
		}
		record.Education = append(record.Education, types.Credential{
			Degree:      getString(entry, "degree"),
			Institution: getString(entry, "institution"),
			Location:    getString(entry, "location"),
			Graduated:   graduated,
			GPA:         getString(entry, "gpa"),
			Honors:      getString(entry, "honors"),
			Coursework:  getStringSlice(entry, "relevant_coursework"),
		})
	}
}

func buildSkills(raw *rawRecord, record *types.ProfileRecord) {
	record.Skills = []types.SkillCategory{}
	categories, ok := raw.tree["skills"].(map[string]interface{})
	if !ok {
		return
	}
	for _, label := range raw.skillsOrder {
		seq, ok := categories[label].([]interface{})
		if !ok {
			continue
		}
		skills := make([]string, 0, len(seq))
		for _, item := range seq {
			if s, ok := scalarString(item); ok {
				skills = append(skills, s)
			}
		}
		record.Skills = append(record.Skills, types.SkillCategory{Label: label, Skills: skills})
	}
}

func buildCertifications(raw *rawRecord, record *types.ProfileRecord) {
	record.Certifications = []types.Certification{}
	for _, entry := range getMapSlice(raw.tree, "certifications") {
		date, err := types.ParsePeriod(getString(entry, "date"))
		if err != nil {
			date = types.Period{}
		}
		record.Certifications = append(record.Certifications, types.Certification{
			Name:         getString(entry, "name"),
			Issuer:       getString(entry, "issuer"),
			Date:         date,
			CredentialID: getString(entry, "credential_id"),
		})
	}
}

func buildProjects(raw *rawRecord, record *types.ProfileRecord) {
	record.Projects = []types.Project{}
	for _, entry := range getMapSlice(raw.tree, "projects") {
		date, err := types.ParsePeriod(getString(entry, "date"))
		if err != nil {
			date = types.Period{}
		}
		record.Projects = append(record.Projects, types.Project{
			Name:         getString(entry, "name"),
			Description:  getString(entry, "description"),
			Technologies: getStringSlice(entry, "technologies"),
			URL:          getString(entry, "url"),
			Date:         date,
		})
	}
}

func buildExtras(raw *rawRecord, record *types.ProfileRecord) {
	record.Languages = []types.Language{}
	for _, entry := range getMapSlice(raw.tree, "languages") {
		record.Languages = append(record.Languages, types.Language{
			Name:        getString(entry, "language"),
			Proficiency: getString(entry, "proficiency"),
		})
	}

	record.Volunteer = []types.Volunteer{}
	for _, entry := range getMapSlice(raw.tree, "volunteer") {
		record.Volunteer = append(record.Volunteer, types.Volunteer{
			Role:         getString(entry, "role"),
			Organization: getString(entry, "organization"),
			Duration:     getString(entry, "duration"),
			Description:  getString(entry, "description"),
		})
	}

	record.Publications = []types.Publication{}
	for _, entry := range getMapSlice(raw.tree, "publications") {
		date, err := types.ParsePeriod(getString(entry, "date"))
		if err != nil {
			date = types.Period{}
		}
		record.Publications = append(record.Publications, types.Publication{
			Title: getString(entry, "title"),
			Venue: getString(entry, "publication"),
			Date:  date,
			URL:   getString(entry, "url"),
		})
	}
}

// buildCustom collects unrecognized top-level sections in declaration
// order. Scalar content becomes a single paragraph; sequence content
// becomes bullet lines. Content is never dropped.
func buildCustom(raw *rawRecord, record *types.ProfileRecord) {
	record.Custom = []types.CustomSection{}
	for _, key := range raw.topKeys {
		if reservedKeys[key] {
			continue
		}
		value := raw.tree[key]
		section := types.CustomSection{Key: key}
		switch v := value.(type) {
		case []interface{}:
			section.Bulleted = true
			for _, item := range v {
				if s, ok := scalarString(item); ok {
					section.Items = append(section.Items, s)
				} else {
					section.Items = append(section.Items, fmt.Sprintf("%v", item))
				}
			}
		default:
			if s, ok := scalarString(v); ok {
				section.Items = []string{s}
			} else {
				section.Items = []string{fmt.Sprintf("%v", v)}
			}
		}
		record.Custom = append(record.Custom, section)
	}
}

// buildConfig extracts the render configuration, applying defaults for
// anything the cv_config mapping omits. The default filename prefix and
// section order are derived from the record: absent section_order means
// the canonical order plus any custom sections in declaration order.
func buildConfig(raw *rawRecord, record *types.ProfileRecord) (*types.RenderConfig, error) {
	cfg := types.DefaultRenderConfig()
	for _, custom := range record.Custom {
		cfg.SectionOrder = append(cfg.SectionOrder, custom.Key)
	}

	cc, ok := raw.tree["cv_config"].(map[string]interface{})
	if ok {
		if v := getString(cc, "font_family"); v != "" {
			cfg.FontFamily = v
		}
		if v := getInt(cc, "font_size"); v != 0 {
			cfg.FontSize = v
		}
		if order := getStringSlice(cc, "section_order"); order != nil {
			cfg.SectionOrder = order
		}
		if hidden := getStringSlice(cc, "hidden_sections"); hidden != nil {
			cfg.HiddenSections = hidden
		}
		if v := getString(cc, "filename_prefix"); v != "" {
			cfg.FilenamePrefix = v
		}
		if v, present := getBool(cc, "include_timestamp"); present {
			cfg.IncludeTimestamp = v
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, &ValidationError{Path: "cv_config", Message: "invalid render configuration", Cause: err}
	}
	return cfg, nil
}
