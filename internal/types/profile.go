package types

// ProfileRecord is the root of the validated data model. It is built
// once per render invocation by the profile package and is immutable
// during rendering.
type ProfileRecord struct {
	Identity       Identity        `json:"identity"`
	Summary        string          `json:"summary,omitempty"`
	Experience     []Engagement    `json:"experience,omitempty"`
	Education      []Credential    `json:"education,omitempty"`
	Skills         []SkillCategory `json:"skills,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	Projects       []Project       `json:"projects,omitempty"`
	Languages      []Language      `json:"languages,omitempty"`
	Volunteer      []Volunteer     `json:"volunteer,omitempty"`
	Publications   []Publication   `json:"publications,omitempty"`
	HiddenPayload  string          `json:"hidden_payload,omitempty"`
	Custom         []CustomSection `json:"custom,omitempty"`
}

// Identity holds the mandatory name and the contact channels. At least
// one contact channel must be present.
type Identity struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// HasContactChannel reports whether at least one contact channel is set.
// Location is descriptive, not a channel.
func (id *Identity) HasContactChannel() bool {
	return id.Email != "" || id.Phone != "" || id.LinkedIn != "" || id.Website != "" || id.GitHub != ""
}

// Engagement represents a single work experience entry. A zero End
// period means the engagement is current.
type Engagement struct {
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	Location     string   `json:"location,omitempty"`
	Start        Period   `json:"start_date"`
	End          Period   `json:"end_date"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// Credential represents an education entry.
type Credential struct {
	Degree      string   `json:"degree"`
	Institution string   `json:"institution"`
	Location    string   `json:"location,omitempty"`
	Graduated   Period   `json:"graduation_date"`
	GPA         string   `json:"gpa,omitempty"`
	Honors      string   `json:"honors,omitempty"`
	Coursework  []string `json:"relevant_coursework,omitempty"`
}

// Certification represents a professional certification entry.
type Certification struct {
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	Date         Period `json:"date"`
	CredentialID string `json:"credential_id,omitempty"`
}

// Project represents a personal or professional project entry.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
	Date         Period   `json:"date"`
}

// SkillCategory groups skills under a user-declared category label.
// Categories keep the order they were declared in; that order reflects
// user priority and is never re-sorted.
type SkillCategory struct {
	Label  string   `json:"label"`
	Skills []string `json:"skills"`
}

// Language represents a spoken language and proficiency level.
type Language struct {
	Name        string `json:"language"`
	Proficiency string `json:"proficiency,omitempty"`
}

// Volunteer represents a volunteer experience entry.
type Volunteer struct {
	Role         string `json:"role"`
	Organization string `json:"organization"`
	Duration     string `json:"duration,omitempty"`
	Description  string `json:"description,omitempty"`
}

// Publication represents a publication entry.
type Publication struct {
	Title string `json:"title"`
	Venue string `json:"publication,omitempty"`
	Date  Period `json:"date"`
	URL   string `json:"url,omitempty"`
}

// CustomSection carries an unrecognized top-level section through the
// pipeline untouched. Items are either free-text paragraphs (scalar
// input) or bullet lines (sequence input).
type CustomSection struct {
	Key   string   `json:"key"`
	Items []string `json:"items"`
	// Bulleted is true when the source was a sequence, in which case
	// each item renders as a bullet instead of a paragraph.
	Bulleted bool `json:"bulleted"`
}
