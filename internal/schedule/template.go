package schedule

import (
	"fmt"
	"sort"

	apperrors "maternal-care-backend/internal/errors"
)

// Domain identifies which care schedule a template describes
type Domain string

const (
	DomainVaccination        Domain = "vaccination"
	DomainPrenatalCheckup    Domain = "prenatal_checkup"
	DomainPregnancyMilestone Domain = "pregnancy_milestone"
)

// IsValid checks if the Domain is valid
func (d Domain) IsValid() bool {
	switch d {
	case DomainVaccination, DomainPrenatalCheckup, DomainPregnancyMilestone:
		return true
	}
	return false
}

// Gestational returns true for domains whose offsets are weeks of gestation
// counted from the estimated conception date. Vaccination offsets are months
// of age counted from the date of birth.
func (d Domain) Gestational() bool {
	return d == DomainPrenatalCheckup || d == DomainPregnancyMilestone
}

// OffsetUnit returns the unit milestone offsets are expressed in
func (d Domain) OffsetUnit() string {
	if d.Gestational() {
		return "weeks"
	}
	return "months"
}

// MilestoneDef is a single scheduled item within a template: a vaccine dose,
// a prenatal visit or a pregnancy landmark at a fixed offset from the
// schedule's reference date.
type MilestoneDef struct {
	ID          string `json:"milestone_id" yaml:"milestone_id" validate:"required"`
	Offset      int    `json:"offset" yaml:"offset" validate:"min=0"`
	Label       string `json:"label" yaml:"label" validate:"required"`
	ShortLabel  string `json:"short_label,omitempty" yaml:"short_label,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Template is the static, versioned milestone definition for one domain.
// Templates are seed data, validated once at load time and never mutated.
type Template struct {
	Domain     Domain         `json:"domain" yaml:"domain"`
	Version    int            `json:"version" yaml:"version"`
	Milestones []MilestoneDef `json:"milestones" yaml:"milestones"`
}

// Validate checks template invariants: a known domain, unique milestone ids
// and non-negative offsets. Declared order is not required to be sorted; the
// evaluator orders by offset itself.
func (t *Template) Validate() error {
	if !t.Domain.IsValid() {
		return &apperrors.InvalidTemplateError{
			Domain: string(t.Domain),
			Reason: "unknown domain",
		}
	}
	if len(t.Milestones) == 0 {
		return &apperrors.InvalidTemplateError{
			Domain: string(t.Domain),
			Reason: "template has no milestones",
		}
	}
	seen := make(map[string]struct{}, len(t.Milestones))
	for _, m := range t.Milestones {
		if m.ID == "" {
			return &apperrors.InvalidTemplateError{
				Domain: string(t.Domain),
				Reason: "milestone with empty id",
			}
		}
		if _, dup := seen[m.ID]; dup {
			return &apperrors.InvalidTemplateError{
				Domain: string(t.Domain),
				Reason: fmt.Sprintf("duplicate milestone id %q", m.ID),
			}
		}
		seen[m.ID] = struct{}{}
		if m.Offset < 0 {
			return &apperrors.InvalidTemplateError{
				Domain: string(t.Domain),
				Reason: fmt.Sprintf("milestone %q has negative offset %d", m.ID, m.Offset),
			}
		}
	}
	return nil
}

// Milestone returns the definition for the given milestone id
func (t *Template) Milestone(id string) (MilestoneDef, bool) {
	for _, m := range t.Milestones {
		if m.ID == id {
			return m, true
		}
	}
	return MilestoneDef{}, false
}

// sortedMilestones returns a copy of the milestones in ascending offset
// order. The sort is stable so declared order breaks ties between milestones
// sharing an offset.
func (t *Template) sortedMilestones() []MilestoneDef {
	out := make([]MilestoneDef, len(t.Milestones))
	copy(out, t.Milestones)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Offset < out[j].Offset
	})
	return out
}
