package constants

import (
	"strings"
)

type ComponentType string

const (
	Spool      ComponentType = "SPOOL"
	Piping     ComponentType = "PIPING"
	Valve      ComponentType = "VALVE"
	Fitting    ComponentType = "FITTING"
	Flange     ComponentType = "FLANGE"
	Support    ComponentType = "SUPPORT"
	Instrument ComponentType = "INSTRUMENT"
	FieldWeld  ComponentType = "FIELD_WELD"
	Misc       ComponentType = "MISC"
)

var supportedTypes = []ComponentType{
	Spool,
	Piping,
	Valve,
	Fitting,
	Flange,
	Support,
	Instrument,
	FieldWeld,
	Misc,
}

func SupportedTypes() []string {
	result := make([]string, len(supportedTypes))
	for i, ct := range supportedTypes {
		result[i] = string(ct)
	}
	return result
}

// CanonicalizeType maps a free-form TYPE cell to a supported component type.
// The second return is false when the value is not a supported type.
func CanonicalizeType(input string) (ComponentType, bool) {
	if input == "" {
		return "", false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]ComponentType{
		"pipe":            Piping,
		"pipe spool":      Spool,
		"spool piece":     Spool,
		"piping footage":  Piping,
		"ftg":             Fitting,
		"elbow":           Fitting,
		"tee":             Fitting,
		"reducer":         Fitting,
		"flg":             Flange,
		"hanger":          Support,
		"pipe support":    Support,
		"inst":            Instrument,
		"instrumentation": Instrument,
		"weld":            FieldWeld,
		"field weld":      FieldWeld,
		"fw":              FieldWeld,
		"miscellaneous":   Misc,
	}

	if ct, ok := synonyms[normalized]; ok {
		return ct, true
	}

	for _, ct := range supportedTypes {
		if normalized == strings.ToLower(string(ct)) {
			return ct, true
		}
		// allow underscores to be written as spaces
		if normalized == strings.ReplaceAll(strings.ToLower(string(ct)), "_", " ") {
			return ct, true
		}
	}

	return "", false
}
