package importer

import (
	"fmt"

	"github.com/pipetrak/pipetrak/constants"
	"github.com/pipetrak/pipetrak/internal/entity"
)

// InitialState builds a fresh milestone state for a component type from its
// progression template: every milestone present, in sequence order, nothing
// complete. Seeding in template order means the sequencing invariant holds
// trivially at creation time.
func InitialState(ct constants.ComponentType) entity.MilestoneState {
	return stateFromTemplate(constants.MilestoneTemplate(ct))
}

// WeldInitialState builds a fresh milestone state for a field weld.
func WeldInitialState() entity.MilestoneState {
	return stateFromTemplate(constants.WeldMilestoneTemplate())
}

func stateFromTemplate(tpl []constants.MilestoneDef) entity.MilestoneState {
	state := make(entity.MilestoneState, len(tpl))
	for i, def := range tpl {
		state[i] = entity.Milestone{
			Name:   def.Name,
			Weight: def.Weight,
			Kind:   def.Kind,
		}
	}
	return state
}

// CompletePrefix returns a copy of state with the first n milestones marked
// complete. n is clamped to the sequence length. Completing a prefix can
// never violate sequencing.
func CompletePrefix(state entity.MilestoneState, n int) entity.MilestoneState {
	if n > len(state) {
		n = len(state)
	}
	out := make(entity.MilestoneState, len(state))
	copy(out, state)
	for i := 0; i < n; i++ {
		out[i].Complete = true
		if out[i].Kind == constants.MilestonePartial {
			out[i].Percent = 100
		}
	}
	return out
}

// SetPercent returns a copy of state with the named partial milestone set to
// pct. It fails if any earlier milestone is incomplete, preserving the
// sequencing invariant.
func SetPercent(state entity.MilestoneState, name string, pct int) (entity.MilestoneState, error) {
	if pct < 0 || pct > 100 {
		return nil, fmt.Errorf("percent %d out of range", pct)
	}
	out := make(entity.MilestoneState, len(state))
	copy(out, state)
	for i := range out {
		if out[i].Name != name {
			continue
		}
		if out[i].Kind != constants.MilestonePartial {
			return nil, fmt.Errorf("milestone %q is not partial", name)
		}
		for j := 0; j < i; j++ {
			if !out[j].Complete {
				return nil, fmt.Errorf("milestone %q cannot progress before %q is complete", name, out[j].Name)
			}
		}
		out[i].Percent = pct
		out[i].Complete = pct == 100
		return out, nil
	}
	return nil, fmt.Errorf("milestone %q not in sequence", name)
}

// CheckSequencing verifies the strict prefix invariant: no milestone may be
// complete, or partially complete, while an earlier one is incomplete.
func CheckSequencing(state entity.MilestoneState) error {
	for i, m := range state {
		if !m.Complete && m.Percent == 0 {
			continue
		}
		for j := 0; j < i; j++ {
			if !state[j].Complete {
				return fmt.Errorf("milestone %q has progress but %q is incomplete", m.Name, state[j].Name)
			}
		}
	}
	return nil
}
