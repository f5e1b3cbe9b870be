package importer

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverMetadata(t *testing.T) {
	existingArea := uuid.New()
	store := newFakeMetadataStore()
	store.seed(RefArea, "B-68", existingArea)

	rows := []ComponentRow{
		{Area: "B-68", System: "CS-101", TestPackage: "TP-001"},
		{Area: "B-72", System: "CS-101"},
		{Area: "B-68"},
		{},
	}

	plan, err := DiscoverMetadata(context.Background(), store, uuid.New(), rows)
	require.NoError(t, err)

	assert.Equal(t, []string{"B-68", "B-72"}, plan.Names(RefArea), "deduplicated and sorted")
	assert.Equal(t, []string{"CS-101"}, plan.Names(RefSystem))
	assert.Equal(t, []string{"TP-001"}, plan.Names(RefTestPackage))

	assert.Equal(t, 1, plan.WillCreateCount[RefArea], "B-68 already exists")
	assert.Equal(t, 1, plan.WillCreateCount[RefSystem])
	assert.Equal(t, 1, plan.WillCreateCount[RefTestPackage])

	areas := plan.ByType[RefArea]
	require.Len(t, areas, 2)
	assert.True(t, areas[0].Exists)
	require.NotNil(t, areas[0].RecordID)
	assert.Equal(t, existingArea, *areas[0].RecordID)
	assert.False(t, areas[1].Exists)
	assert.Nil(t, areas[1].RecordID)

	assert.Zero(t, store.created, "discovery never writes")
	assert.Equal(t, 3, store.lookups, "one batch lookup per reference type")
}

func TestDiscoverMetadata_NoReferences(t *testing.T) {
	store := newFakeMetadataStore()
	plan, err := DiscoverMetadata(context.Background(), store, uuid.New(), []ComponentRow{{Area: ""}})
	require.NoError(t, err)

	for _, rt := range ReferenceTypes {
		assert.Empty(t, plan.Names(rt))
		assert.Zero(t, plan.WillCreateCount[rt])
	}
	assert.Zero(t, store.lookups, "empty name sets skip the lookup entirely")
}
