package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipetrak/pipetrak/constants"
)

func TestMilestoneTemplates_WeightsSumTo100(t *testing.T) {
	types := []constants.ComponentType{
		constants.Spool, constants.Piping, constants.Valve, constants.Fitting,
		constants.Flange, constants.Support, constants.Instrument,
		constants.FieldWeld, constants.Misc,
	}
	for _, ct := range types {
		total := 0
		for _, def := range constants.MilestoneTemplate(ct) {
			total += def.Weight
		}
		assert.Equal(t, 100, total, "type %s", ct)
	}

	total := 0
	for _, def := range constants.WeldMilestoneTemplate() {
		total += def.Weight
	}
	assert.Equal(t, 100, total, "weld template")
}

func TestInitialState_FreshAndOrdered(t *testing.T) {
	state := InitialState(constants.Spool)

	require.Len(t, state, 7)
	assert.Equal(t, "Receive", state[0].Name)
	assert.Equal(t, "Restore", state[6].Name)
	assert.Zero(t, state.PercentComplete())
	assert.False(t, state.IsComplete())
	assert.NoError(t, CheckSequencing(state))
}

func TestCompletePrefix(t *testing.T) {
	state := InitialState(constants.Spool)

	done := CompletePrefix(state, 2)
	assert.Equal(t, 35, done.PercentComplete()) // Receive 5 + Erect 30
	assert.True(t, done.MilestoneComplete("Erect"))
	assert.False(t, done.MilestoneComplete("Connect"))
	assert.NoError(t, CheckSequencing(done))

	// clamped, never panics
	all := CompletePrefix(state, 99)
	assert.Equal(t, 100, all.PercentComplete())
	assert.True(t, all.IsComplete())

	// input state is untouched
	assert.Zero(t, state.PercentComplete())
}

func TestSetPercent_PartialProgress(t *testing.T) {
	state := InitialState(constants.Piping)
	state = CompletePrefix(state, 1) // Receive done

	state, err := SetPercent(state, "Erect", 50)
	require.NoError(t, err)
	assert.Equal(t, 20, state.PercentComplete()) // 5 + 30*0.5
	assert.False(t, state.MilestoneComplete("Erect"))

	state, err = SetPercent(state, "Erect", 100)
	require.NoError(t, err)
	assert.True(t, state.MilestoneComplete("Erect"))
}

func TestSetPercent_EnforcesSequencing(t *testing.T) {
	state := InitialState(constants.Piping)

	// Erect cannot progress while Receive is incomplete
	_, err := SetPercent(state, "Erect", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Receive")
}

func TestSetPercent_RejectsDiscreteAndUnknown(t *testing.T) {
	state := CompletePrefix(InitialState(constants.Piping), 4)

	_, err := SetPercent(state, "Punch", 50)
	assert.Error(t, err, "Punch is discrete")

	_, err = SetPercent(state, "Hydrotest", 50)
	assert.Error(t, err, "unknown milestone")

	_, err = SetPercent(state, "Erect", 120)
	assert.Error(t, err, "percent out of range")
}

func TestCheckSequencing_DetectsGaps(t *testing.T) {
	state := InitialState(constants.Valve)
	state[2].Complete = true // Punch done while Receive and Install are not

	err := CheckSequencing(state)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Punch")
}
