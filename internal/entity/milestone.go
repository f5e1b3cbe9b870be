package entity

import (
	"github.com/pipetrak/pipetrak/constants"
)

// Milestone is one step of a component's (or weld's) progression, in
// sequence order.
type Milestone struct {
	Name     string                  `json:"name"`
	Weight   int                     `json:"weight"`
	Kind     constants.MilestoneKind `json:"kind"`
	Complete bool                    `json:"complete"`
	// Percent is only meaningful for PARTIAL milestones (0-100).
	Percent int `json:"percent,omitempty"`
}

// MilestoneState is the ordered milestone sequence stored on a component or
// field weld. Order is completion order and never varies per type.
type MilestoneState []Milestone

// PercentComplete returns earned credit across the sequence, 0-100.
func (s MilestoneState) PercentComplete() int {
	total := 0
	for _, m := range s {
		switch {
		case m.Complete:
			total += m.Weight
		case m.Kind == constants.MilestonePartial && m.Percent > 0:
			total += m.Weight * m.Percent / 100
		}
	}
	return total
}

// IsComplete reports whether every milestone in the sequence is complete.
func (s MilestoneState) IsComplete() bool {
	for _, m := range s {
		if !m.Complete {
			return false
		}
	}
	return true
}

// MilestoneComplete reports whether the named milestone is complete.
func (s MilestoneState) MilestoneComplete(name string) bool {
	for _, m := range s {
		if m.Name == name {
			return m.Complete
		}
	}
	return false
}
