package constants

// MilestoneKind distinguishes checkbox milestones from percent-entry ones.
type MilestoneKind string

const (
	// MilestoneDiscrete is complete or not (checkbox).
	MilestoneDiscrete MilestoneKind = "DISCRETE"
	// MilestonePartial carries a 0-100 percent value (e.g. footage installed).
	MilestonePartial MilestoneKind = "PARTIAL"
)

// MilestoneDef is one step of a progression template. Order within the
// template is the completion order: a later milestone may not be complete
// (or partially complete) while any earlier one is incomplete.
type MilestoneDef struct {
	Name   string
	Weight int // credit toward overall percent; weights in a template sum to 100
	Kind   MilestoneKind
}

// Progression templates. Keyed by the milestone set a component type uses,
// not per type, since most non-spool types share the reduced set.
var (
	fullTemplate = []MilestoneDef{
		{Name: "Receive", Weight: 5, Kind: MilestoneDiscrete},
		{Name: "Erect", Weight: 30, Kind: MilestoneDiscrete},
		{Name: "Connect", Weight: 30, Kind: MilestoneDiscrete},
		{Name: "Support", Weight: 15, Kind: MilestoneDiscrete},
		{Name: "Punch", Weight: 5, Kind: MilestoneDiscrete},
		{Name: "Test", Weight: 10, Kind: MilestoneDiscrete},
		{Name: "Restore", Weight: 5, Kind: MilestoneDiscrete},
	}

	footageTemplate = []MilestoneDef{
		{Name: "Receive", Weight: 5, Kind: MilestoneDiscrete},
		{Name: "Erect", Weight: 30, Kind: MilestonePartial},
		{Name: "Connect", Weight: 30, Kind: MilestonePartial},
		{Name: "Support", Weight: 15, Kind: MilestonePartial},
		{Name: "Punch", Weight: 5, Kind: MilestoneDiscrete},
		{Name: "Test", Weight: 10, Kind: MilestoneDiscrete},
		{Name: "Restore", Weight: 5, Kind: MilestoneDiscrete},
	}

	reducedTemplate = []MilestoneDef{
		{Name: "Receive", Weight: 10, Kind: MilestoneDiscrete},
		{Name: "Install", Weight: 60, Kind: MilestoneDiscrete},
		{Name: "Punch", Weight: 10, Kind: MilestoneDiscrete},
		{Name: "Test", Weight: 15, Kind: MilestoneDiscrete},
		{Name: "Restore", Weight: 5, Kind: MilestoneDiscrete},
	}

	weldTemplate = []MilestoneDef{
		{Name: "Fit-up", Weight: 10, Kind: MilestoneDiscrete},
		{Name: "Weld", Weight: 60, Kind: MilestoneDiscrete},
		{Name: "Punch", Weight: 10, Kind: MilestoneDiscrete},
		{Name: "Test", Weight: 15, Kind: MilestoneDiscrete},
		{Name: "Restore", Weight: 5, Kind: MilestoneDiscrete},
	}
)

// MilestoneTemplate returns the progression template for a component type.
// The returned slice is shared; callers must not mutate it.
func MilestoneTemplate(ct ComponentType) []MilestoneDef {
	switch ct {
	case Spool:
		return fullTemplate
	case Piping:
		return footageTemplate
	case FieldWeld:
		return weldTemplate
	default:
		return reducedTemplate
	}
}

// WeldMilestoneTemplate is the progression for field welds created outside
// the component path (the field_welds table).
func WeldMilestoneTemplate() []MilestoneDef {
	return weldTemplate
}
