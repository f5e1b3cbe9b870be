package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeType(t *testing.T) {
	tests := []struct {
		in   string
		want ComponentType
		ok   bool
	}{
		{"VALVE", Valve, true},
		{"valve", Valve, true},
		{" Field Weld ", FieldWeld, true},
		{"FIELD_WELD", FieldWeld, true},
		{"fw", FieldWeld, true},
		{"pipe", Piping, true},
		{"pipe spool", Spool, true},
		{"hanger", Support, true},
		{"elbow", Fitting, true},
		{"GASKET", "", false},
		{"", "", false},
		{"widget", "", false},
	}
	for _, tt := range tests {
		got, ok := CanonicalizeType(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestImportJobStatuses_Closed(t *testing.T) {
	assert.Len(t, ImportJobStatuses, 6)
	assert.Contains(t, ImportJobStatuses, string(ImportAwaiting))
}
