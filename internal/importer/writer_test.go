package importer

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipetrak/pipetrak/constants"
	"github.com/pipetrak/pipetrak/internal/entity"
)

type writerFixture struct {
	metadata   *fakeMetadataStore
	drawings   *fakeDrawingStore
	components *fakeComponentStore
	welds      *fakeWeldStore
	welders    *fakeWelderStore
	writer     *BulkWriter
}

func newWriterFixture() *writerFixture {
	f := &writerFixture{
		metadata:   newFakeMetadataStore(),
		drawings:   newFakeDrawingStore(),
		components: newFakeComponentStore(),
		welds:      newFakeWeldStore(),
		welders:    &fakeWelderStore{},
	}
	f.writer = NewBulkWriter(f.metadata, f.drawings, f.components, f.welds, f.welders, nil)
	return f
}

func valveRow(n int, drawing string, seq int) ComponentRow {
	norm := NormalizeDrawing(drawing)
	return ComponentRow{
		RowNumber:     n,
		Type:          constants.Valve,
		Key:           StandardKey{Type: constants.Valve, DrawingNorm: norm, CommodityCode: "VLV-1", Size: "2\"", Seq: seq},
		DrawingNumber: drawing,
		DrawingNorm:   norm,
		CommodityCode: "VLV-1",
		Size:          "2\"",
		Quantity:      1,
		Seq:           seq,
		Area:          "B-68",
		System:        "CS-101",
	}
}

func weldRow(n int, drawing, weldNo string) ComponentRow {
	norm := NormalizeDrawing(drawing)
	return ComponentRow{
		RowNumber:     n,
		Type:          constants.FieldWeld,
		Key:           WeldKey{DrawingNorm: norm, WeldNumber: weldNo},
		DrawingNumber: drawing,
		DrawingNorm:   norm,
		Quantity:      1,
		Seq:           1,
		WeldNumber:    weldNo,
	}
}

func TestBulkWriter_FreshImport(t *testing.T) {
	f := newWriterFixture()
	rows := []ComponentRow{
		valveRow(1, "P-1001-01", 1),
		valveRow(2, "P-1001-01", 2),
		valveRow(3, "P-1002-01", 1),
		weldRow(4, "P-1001-01", "FW-001"),
	}

	result, err := f.writer.Write(context.Background(), uuid.New(), rows)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 2, result.DrawingsCreated)
	assert.Equal(t, 3, result.ComponentsCreated)
	assert.Equal(t, map[string]int{"VALVE": 3}, result.ComponentsByType)
	assert.Equal(t, 1, result.WeldsCreated)
	assert.Equal(t, 1, result.Metadata.Areas)
	assert.Equal(t, 1, result.Metadata.Systems)
	assert.Zero(t, result.Metadata.TestPackages)
	assert.Empty(t, result.Details)
	assert.GreaterOrEqual(t, result.DurationMS, int64(0))
}

func TestBulkWriter_ComponentsGetFreshMilestones(t *testing.T) {
	f := newWriterFixture()
	_, err := f.writer.Write(context.Background(), uuid.New(), []ComponentRow{valveRow(1, "P-1001-01", 1)})
	require.NoError(t, err)

	require.Len(t, f.components.byKey, 1)
	for _, comp := range f.components.byKey {
		require.NotEmpty(t, comp.Milestones)
		assert.Zero(t, comp.Milestones.PercentComplete())
		assert.Equal(t, "Receive", comp.Milestones[0].Name)
		require.NotNil(t, comp.DrawingID, "component links to its drawing")
		require.NotNil(t, comp.AreaID)
		require.NotNil(t, comp.SystemID)
	}
}

func TestBulkWriter_RerunCreatesNothing(t *testing.T) {
	f := newWriterFixture()
	projectID := uuid.New()
	rows := []ComponentRow{
		valveRow(1, "P-1001-01", 1),
		valveRow(2, "P-1002-01", 1),
		weldRow(3, "P-1001-01", "FW-001"),
	}

	first, err := f.writer.Write(context.Background(), projectID, rows)
	require.NoError(t, err)
	require.Equal(t, 2, first.ComponentsCreated)

	second, err := f.writer.Write(context.Background(), projectID, rows)
	require.NoError(t, err)
	assert.True(t, second.Success)
	assert.Zero(t, second.DrawingsCreated)
	assert.Zero(t, second.ComponentsCreated)
	assert.Zero(t, second.WeldsCreated)
	assert.Zero(t, second.Metadata.Areas+second.Metadata.Systems+second.Metadata.TestPackages)
}

func TestBulkWriter_ResumesPartialImport(t *testing.T) {
	f := newWriterFixture()
	projectID := uuid.New()

	all := make([]ComponentRow, 0, 200)
	for i := 0; i < 200; i++ {
		all = append(all, valveRow(i+1, fmt.Sprintf("P-%04d-01", 1000+i/10), i%10+1))
	}

	// first attempt dies after 150 components
	first, err := f.writer.Write(context.Background(), projectID, all[:150])
	require.NoError(t, err)
	require.Equal(t, 150, first.ComponentsCreated)

	// retrying the full batch writes only the missing remainder
	second, err := f.writer.Write(context.Background(), projectID, all)
	require.NoError(t, err)
	assert.Equal(t, 50, second.ComponentsCreated)
	assert.Len(t, f.components.byKey, 200, "no duplicates across attempts")
}

func TestBulkWriter_ManySupportsResolveDrawings(t *testing.T) {
	f := newWriterFixture()

	rows := make([]ComponentRow, 0, 80)
	for i := 0; i < 80; i++ {
		drawing := fmt.Sprintf("P-%04d-01", 2000+i/4)
		norm := NormalizeDrawing(drawing)
		rows = append(rows, ComponentRow{
			RowNumber:     i + 1,
			Type:          constants.Support,
			Key:           StandardKey{Type: constants.Support, DrawingNorm: norm, CommodityCode: "SUP-HD", Size: "4\"", Seq: i%4 + 1},
			DrawingNumber: drawing,
			DrawingNorm:   norm,
			CommodityCode: "SUP-HD",
			Size:          "4\"",
			Quantity:      1,
			Seq:           i%4 + 1,
		})
	}

	result, err := f.writer.Write(context.Background(), uuid.New(), rows)
	require.NoError(t, err)

	assert.Equal(t, 80, result.ComponentsCreated)
	assert.Equal(t, 20, result.DrawingsCreated)
	for _, comp := range f.components.byKey {
		require.NotNil(t, comp.DrawingID)
		assert.Equal(t, f.drawings.byNorm[comp.IdentityKey[:9]], *comp.DrawingID,
			"every support resolves to its own drawing")
	}
}

func TestBulkWriter_WeldWithoutDrawingIsReported(t *testing.T) {
	f := newWriterFixture()
	orphan := weldRow(1, "", "FW-001")
	orphan.DrawingNorm = ""

	result, err := f.writer.Write(context.Background(), uuid.New(), []ComponentRow{
		valveRow(2, "P-1001-01", 1),
		orphan,
	})
	require.NoError(t, err, "an unresolvable weld is reported, not fatal")

	assert.True(t, result.Success)
	assert.Zero(t, result.WeldsCreated)
	require.Len(t, result.Details, 1)
	assert.Equal(t, 1, result.Details[0].Row)
	assert.Contains(t, result.Details[0].Issue, "FW-001")
}

func TestBulkWriter_AssignsWeldersRoundRobin(t *testing.T) {
	f := newWriterFixture()
	w1 := entity.Welder{ID: uuid.New(), Stencil: "W-01"}
	w2 := entity.Welder{ID: uuid.New(), Stencil: "W-02"}
	// listed out of stencil order on purpose
	f.welders.welders = []entity.Welder{w2, w1}

	rows := make([]ComponentRow, 0, 4)
	for i := 0; i < 4; i++ {
		row := weldRow(i+1, "P-1001-01", fmt.Sprintf("FW-%03d", i+1))
		row.Milestones = CompletePrefix(WeldInitialState(), 2) // Fit-up + Weld done
		rows = append(rows, row)
	}

	result, err := f.writer.Write(context.Background(), uuid.New(), rows)
	require.NoError(t, err)
	require.Equal(t, 4, result.WeldersAssigned)

	// welds sorted by (drawing, number), welders by stencil: alternating
	byNumber := make(map[string]uuid.UUID)
	for _, weld := range f.welds.byKey {
		byNumber[weld.WeldNumber] = f.welds.assignments[weld.ID]
	}
	assert.Equal(t, w1.ID, byNumber["FW-001"])
	assert.Equal(t, w2.ID, byNumber["FW-002"])
	assert.Equal(t, w1.ID, byNumber["FW-003"])
	assert.Equal(t, w2.ID, byNumber["FW-004"])
}

func TestBulkWriter_RosterComesFromWelderColumn(t *testing.T) {
	f := newWriterFixture()
	projectID := uuid.New()

	rows := make([]ComponentRow, 0, 4)
	for i := 0; i < 4; i++ {
		row := weldRow(i+1, "P-1001-01", fmt.Sprintf("FW-%03d", i+1))
		row.Welder = []string{"w-02 ", "W-01", "w-02 ", "W-01"}[i] // messy casing and spacing
		row.Milestones = CompletePrefix(WeldInitialState(), 2)
		rows = append(rows, row)
	}

	result, err := f.writer.Write(context.Background(), projectID, rows)
	require.NoError(t, err)

	assert.Equal(t, 2, result.WeldersCreated, "stencils normalized and deduplicated")
	assert.Equal(t, 4, result.WeldersAssigned, "the new roster feeds assignment in the same run")
	require.Len(t, f.welders.welders, 2)
	assert.Equal(t, "W-01", f.welders.welders[0].Stencil)
	assert.Equal(t, "W-02", f.welders.welders[1].Stencil)

	// a rerun finds the roster already in place
	second, err := f.writer.Write(context.Background(), projectID, rows)
	require.NoError(t, err)
	assert.Zero(t, second.WeldersCreated)
	assert.Len(t, f.welders.welders, 2, "no duplicate welders across attempts")
}

func TestBulkWriter_NoWelderColumnLeavesRosterAlone(t *testing.T) {
	f := newWriterFixture()
	_, err := f.writer.Write(context.Background(), uuid.New(), []ComponentRow{
		valveRow(1, "P-1001-01", 1),
		weldRow(2, "P-1001-01", "FW-001"),
	})
	require.NoError(t, err)
	assert.Empty(t, f.welders.welders)
}

func TestBulkWriter_PersistsWeldType(t *testing.T) {
	f := newWriterFixture()
	bw := weldRow(1, "P-1001-01", "FW-001")
	bw.WeldType = "BW"
	plain := weldRow(2, "P-1001-01", "FW-002")

	_, err := f.writer.Write(context.Background(), uuid.New(), []ComponentRow{bw, plain})
	require.NoError(t, err)

	byNumber := make(map[string]entity.FieldWeld)
	for _, weld := range f.welds.byKey {
		byNumber[weld.WeldNumber] = weld
	}
	require.NotNil(t, byNumber["FW-001"].WeldType)
	assert.Equal(t, "BW", *byNumber["FW-001"].WeldType)
	assert.Nil(t, byNumber["FW-002"].WeldType)
}

func TestBulkWriter_FreshWeldsAreNotAssigned(t *testing.T) {
	f := newWriterFixture()
	f.welders.welders = []entity.Welder{{ID: uuid.New(), Stencil: "W-01"}}

	result, err := f.writer.Write(context.Background(), uuid.New(), []ComponentRow{
		weldRow(1, "P-1001-01", "FW-001"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.WeldsCreated)
	assert.Zero(t, result.WeldersAssigned, "a fresh weld has no Weld milestone complete")
	assert.Empty(t, f.welds.assignments)
}

func TestBulkWriter_RejectsBrokenSequencing(t *testing.T) {
	f := newWriterFixture()
	row := valveRow(1, "P-1001-01", 1)
	state := InitialState(constants.Valve)
	state[2].Complete = true // out-of-order progress
	row.Milestones = state

	result, err := f.writer.Write(context.Background(), uuid.New(), []ComponentRow{row})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "milestones")
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
	assert.Empty(t, f.components.byKey, "nothing written when sequencing fails upfront")
}

func TestBulkWriter_PreSeededMilestonesSurvive(t *testing.T) {
	f := newWriterFixture()
	row := valveRow(1, "P-1001-01", 1)
	row.Milestones = CompletePrefix(InitialState(constants.Valve), 2)

	_, err := f.writer.Write(context.Background(), uuid.New(), []ComponentRow{row})
	require.NoError(t, err)

	for _, comp := range f.components.byKey {
		assert.Equal(t, 70, comp.Milestones.PercentComplete()) // Receive 10 + Install 60
	}
}
