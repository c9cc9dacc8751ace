package rendering

import (
	"github.com/jonathan/cv-generator/internal/markup"
	"github.com/jonathan/cv-generator/internal/types"
)

// SectionRenderer renders one logical section of the profile record
// into blocks. A renderer given an empty section returns zero blocks
// and no heading. Warnings carry recovered markup anomalies.
type SectionRenderer interface {
	ID() string
	Render(record *types.ProfileRecord, cfg *types.RenderConfig) ([]Block, []markup.Warning)
}

// Registry maps section identifiers to their renderers. New section
// kinds are added by registering an implementation, not by branching
// inside the orchestrator.
type Registry struct {
	renderers map[string]SectionRenderer
}

// NewRegistry returns a registry with all built-in section renderers.
func NewRegistry() *Registry {
	r := &Registry{renderers: make(map[string]SectionRenderer)}
	r.Register(identityRenderer{})
	r.Register(summaryRenderer{})
	r.Register(experienceRenderer{})
	r.Register(educationRenderer{})
	r.Register(skillsRenderer{})
	r.Register(certificationsRenderer{})
	r.Register(projectsRenderer{})
	r.Register(languagesRenderer{})
	r.Register(volunteerRenderer{})
	r.Register(publicationsRenderer{})
	return r
}

// Register adds or replaces the renderer for its section identifier.
func (r *Registry) Register(sr SectionRenderer) {
	r.renderers[sr.ID()] = sr
}

// Lookup returns the renderer registered for the identifier.
func (r *Registry) Lookup(id string) (SectionRenderer, bool) {
	sr, ok := r.renderers[id]
	return sr, ok
}
