package imports

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/pipetrak/pipetrak/constants"
	"github.com/pipetrak/pipetrak/gen/ent"
	"github.com/pipetrak/pipetrak/internal/async"
	"github.com/pipetrak/pipetrak/internal/entity"
	"github.com/pipetrak/pipetrak/internal/importer"
)

// --- fakes -----------------------------------------------------------------

type fakeProjects struct {
	known map[uuid.UUID]bool
}

func (f *fakeProjects) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.known[id], nil
}

func (f *fakeProjects) GetOrCreateByName(_ context.Context, _ string) (*ent.Project, error) {
	return nil, fmt.Errorf("not used in tests")
}

type fakeJobs struct {
	jobs map[uuid.UUID]*entity.ImportJob
}

func newFakeJobs() *fakeJobs {
	return &fakeJobs{jobs: make(map[uuid.UUID]*entity.ImportJob)}
}

func (f *fakeJobs) Create(_ context.Context, projectID uuid.UUID, filename string) (*entity.ImportJob, error) {
	job := &entity.ImportJob{
		ID:        uuid.New(),
		ProjectID: projectID,
		Filename:  filename,
		Status:    constants.ImportQueued,
		CreatedAt: time.Now(),
	}
	f.jobs[job.ID] = job
	return job, nil
}

func (f *fakeJobs) GetByID(_ context.Context, id uuid.UUID) (*entity.ImportJob, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, fmt.Errorf("job %s not found", id)
	}
	return job, nil
}

func (f *fakeJobs) MarkStarted(_ context.Context, id uuid.UUID, s constants.ImportJobStatus) error {
	now := time.Now()
	f.jobs[id].Status = s
	f.jobs[id].StartedAt = &now
	return nil
}

func (f *fakeJobs) SetCounts(_ context.Context, id uuid.UUID, total, valid, skipped, errored int) error {
	job := f.jobs[id]
	job.TotalRows, job.ValidRows, job.SkippedRows, job.ErrorRows = total, valid, skipped, errored
	return nil
}

func (f *fakeJobs) MarkCompleted(_ context.Context, id uuid.UUID, result json.RawMessage) error {
	now := time.Now()
	f.jobs[id].Status = constants.ImportCompleted
	f.jobs[id].Result = result
	f.jobs[id].FinishedAt = &now
	return nil
}

func (f *fakeJobs) MarkFailed(_ context.Context, id uuid.UUID, message string) error {
	now := time.Now()
	f.jobs[id].Status = constants.ImportFailed
	f.jobs[id].ErrorMessage = &message
	f.jobs[id].FinishedAt = &now
	return nil
}

type memMetadata struct {
	refs map[importer.ReferenceType]map[string]uuid.UUID
}

func newMemMetadata() *memMetadata {
	return &memMetadata{refs: make(map[importer.ReferenceType]map[string]uuid.UUID)}
}

func (m *memMetadata) LookupByName(_ context.Context, _ uuid.UUID, rt importer.ReferenceType, names []string) (map[string]uuid.UUID, error) {
	out := make(map[string]uuid.UUID)
	for _, n := range names {
		if id, ok := m.refs[rt][n]; ok {
			out[n] = id
		}
	}
	return out, nil
}

func (m *memMetadata) CreateMissing(_ context.Context, _ uuid.UUID, rt importer.ReferenceType, names []string) (map[string]uuid.UUID, error) {
	if m.refs[rt] == nil {
		m.refs[rt] = make(map[string]uuid.UUID)
	}
	out := make(map[string]uuid.UUID)
	for _, n := range names {
		id := uuid.New()
		m.refs[rt][n] = id
		out[n] = id
	}
	return out, nil
}

type memDrawings struct{ byNorm map[string]uuid.UUID }

func (m *memDrawings) LookupByNorm(_ context.Context, _ uuid.UUID, norms []string) (map[string]uuid.UUID, error) {
	out := make(map[string]uuid.UUID)
	for _, n := range norms {
		if id, ok := m.byNorm[n]; ok {
			out[n] = id
		}
	}
	return out, nil
}

func (m *memDrawings) CreateBatch(_ context.Context, drawings []entity.Drawing) (map[string]uuid.UUID, error) {
	out := make(map[string]uuid.UUID)
	for _, d := range drawings {
		id := uuid.New()
		m.byNorm[d.NormNumber] = id
		out[d.NormNumber] = id
	}
	return out, nil
}

type memComponents struct{ keys map[string]struct{} }

func (m *memComponents) ExistingKeys(_ context.Context, _ uuid.UUID, ct constants.ComponentType, keys []string) (map[string]struct{}, error) {
	out := make(map[string]struct{})
	for _, k := range keys {
		if _, ok := m.keys[string(ct)+"|"+k]; ok {
			out[k] = struct{}{}
		}
	}
	return out, nil
}

func (m *memComponents) CreateBatch(_ context.Context, comps []entity.Component) ([]entity.Component, error) {
	for i := range comps {
		comps[i].ID = uuid.New()
		m.keys[string(comps[i].Type)+"|"+comps[i].IdentityKey] = struct{}{}
	}
	return comps, nil
}

type memWelds struct{}

func (memWelds) ExistingWelds(_ context.Context, _ []uuid.UUID) (map[string]struct{}, error) {
	return map[string]struct{}{}, nil
}

func (memWelds) CreateBatch(_ context.Context, welds []entity.FieldWeld) ([]entity.FieldWeld, error) {
	for i := range welds {
		welds[i].ID = uuid.New()
	}
	return welds, nil
}

func (memWelds) AssignWelders(_ context.Context, _ map[uuid.UUID]uuid.UUID) error { return nil }

type memWelders struct{ stencils []string }

func (m *memWelders) ListActive(_ context.Context, _ uuid.UUID) ([]entity.Welder, error) {
	out := make([]entity.Welder, 0, len(m.stencils))
	for _, s := range m.stencils {
		out = append(out, entity.Welder{ID: uuid.New(), Name: s, Stencil: s, Active: true})
	}
	return out, nil
}

func (m *memWelders) EnsureStencils(_ context.Context, _ uuid.UUID, stencils []string) (int, error) {
	known := make(map[string]struct{}, len(m.stencils))
	for _, s := range m.stencils {
		known[s] = struct{}{}
	}
	created := 0
	for _, s := range stencils {
		if _, ok := known[s]; ok {
			continue
		}
		m.stencils = append(m.stencils, s)
		created++
	}
	return created, nil
}

// --- fixture ---------------------------------------------------------------

type fixture struct {
	projectID uuid.UUID
	jobs      *fakeJobs
	svc       *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	projectID := uuid.New()
	jobs := newFakeJobs()
	logger := slog.New(slog.DiscardHandler)

	metadata := newMemMetadata()
	writer := importer.NewBulkWriter(
		metadata,
		&memDrawings{byNorm: make(map[string]uuid.UUID)},
		&memComponents{keys: make(map[string]struct{})},
		memWelds{},
		&memWelders{},
		logger,
	)

	svc := NewService(&fakeProjects{known: map[uuid.UUID]bool{projectID: true}}, jobs, metadata, writer, 0, logger)
	return &fixture{projectID: projectID, jobs: jobs, svc: svc}
}

func csvRequest(f *fixture, body string) Request {
	return Request{ProjectID: f.projectID.String(), Filename: "takeoff.csv", Payload: []byte(body)}
}

const goodCSV = "DRAWING,TYPE,QTY,COMMODITY CODE,AREA\n" +
	"P-1001-01,VALVE,1,VLV-1,B-68\n" +
	"P-1001-01,SUPPORT,2,SUP-HD,B-68\n" +
	"P-1002-01,GASKET,1,GSK-1,B-68\n" // skipped: unsupported type

// --- tests -----------------------------------------------------------------

func TestPreviewImport(t *testing.T) {
	f := newFixture(t)

	p, err := f.svc.PreviewImport(context.Background(), csvRequest(f, goodCSV))
	require.NoError(t, err)

	assert.False(t, p.Blocked)
	assert.True(t, p.Mapping.HasAllRequiredFields)
	require.NotNil(t, p.Summary)
	assert.Equal(t, 3, p.Summary.TotalRows)
	assert.Equal(t, 2, p.Summary.ValidCount)
	assert.Equal(t, 1, p.Summary.SkippedCount)
	assert.True(t, p.Summary.CanImport)
	require.NotNil(t, p.Discovery)
	assert.Equal(t, 1, p.Discovery.WillCreateCount[importer.RefArea])

	assert.Empty(t, f.jobs.jobs, "preview never creates a job")
}

func TestPreviewImport_MissingRequiredColumns(t *testing.T) {
	f := newFixture(t)

	p, err := f.svc.PreviewImport(context.Background(), csvRequest(f, "DRAWING,QTY\nP-1,1\n"))
	require.NoError(t, err)

	assert.True(t, p.Blocked)
	assert.Equal(t, constants.CategoryMissingRequiredColumns, p.BlockReason)
	assert.Nil(t, p.Summary, "row validation never ran")
	assert.Nil(t, p.Discovery)
}

func TestExecuteImport(t *testing.T) {
	f := newFixture(t)

	result, job, err := f.svc.ExecuteImport(context.Background(), csvRequest(f, goodCSV))
	require.NoError(t, err)

	require.NotNil(t, result)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.ComponentsCreated)
	assert.Equal(t, 1, result.DrawingsCreated, "both valid rows share one drawing")

	require.NotNil(t, job)
	assert.Equal(t, constants.ImportCompleted, job.Status)
	assert.Equal(t, 3, job.TotalRows)
	assert.Equal(t, 2, job.ValidRows)
	assert.Equal(t, 1, job.SkippedRows)
	assert.NotEmpty(t, job.Result, "stored result document")
}

func TestExecuteImport_WelderColumnBuildsRoster(t *testing.T) {
	f := newFixture(t)
	body := "DRAWING,TYPE,QTY,COMMODITY CODE,WELD ID,WELDER\n" +
		"P-1001-01,FIELD WELD,1,PIPE-CS,FW-001,W-07\n" +
		"P-1001-01,FIELD WELD,1,PIPE-CS,FW-002,W-03\n" +
		"P-1001-01,FIELD WELD,1,PIPE-CS,FW-003,W-07\n"

	result, _, err := f.svc.ExecuteImport(context.Background(), csvRequest(f, body))
	require.NoError(t, err)

	assert.Equal(t, 3, result.WeldsCreated)
	assert.Equal(t, 2, result.WeldersCreated, "stencils from the sheet land on the roster")
	assert.Zero(t, result.WeldersAssigned, "fresh welds stay unassigned")
}

func TestExecuteImport_ErrorRowsBlock(t *testing.T) {
	f := newFixture(t)
	bad := "DRAWING,TYPE,QTY,COMMODITY CODE\n,VALVE,1,VLV-1\n"

	_, _, err := f.svc.ExecuteImport(context.Background(), csvRequest(f, bad))
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Contains(t, err.Error(), "rows have errors")
	assert.Empty(t, f.jobs.jobs, "a blocked import creates no job")
}

func TestExecuteImport_NothingImportable(t *testing.T) {
	f := newFixture(t)
	allSkipped := "DRAWING,TYPE,QTY,COMMODITY CODE\nP-1,GASKET,1,GSK-1\nP-1,VALVE,0,VLV-1\n"

	_, _, err := f.svc.ExecuteImport(context.Background(), csvRequest(f, allSkipped))
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Contains(t, err.Error(), "no importable rows")
}

func TestExecuteImport_UnknownProject(t *testing.T) {
	f := newFixture(t)
	req := csvRequest(f, goodCSV)
	req.ProjectID = uuid.New().String()

	_, _, err := f.svc.ExecuteImport(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestExecuteImport_OversizedPayload(t *testing.T) {
	f := newFixture(t)
	req := csvRequest(f, "")
	req.Payload = make([]byte, (5<<20)+1)

	_, _, err := f.svc.ExecuteImport(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Contains(t, err.Error(), "size limit")
}

func TestSubmitImport(t *testing.T) {
	f := newFixture(t)
	queue := async.NewImportQueue(f.svc, slog.New(slog.DiscardHandler), async.WithWorkers(1))
	f.svc.AttachQueue(queue)
	defer queue.Shutdown(context.Background())

	job, handle, err := f.svc.SubmitImport(context.Background(), csvRequest(f, goodCSV))
	require.NoError(t, err)
	require.NotNil(t, handle)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := handle.Wait(ctx)
	require.NoError(t, err)
	assert.True(t, result.Success)

	stored, err := f.svc.GetJob(context.Background(), job.ID.String())
	require.NoError(t, err)
	assert.Equal(t, constants.ImportCompleted, stored.Status)
}

func TestSubmitImport_NoQueue(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.svc.SubmitImport(context.Background(), csvRequest(f, goodCSV))
	require.Error(t, err)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestGetJob_BadID(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetJob(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestParseEnvelopePath(t *testing.T) {
	f := newFixture(t)
	payload := []byte(`{
		"columns": ["DRAWING", "TYPE", "QTY", "COMMODITY CODE"],
		"rows": [{"DRAWING": "P-1", "TYPE": "VALVE", "QTY": "1", "COMMODITY CODE": "VLV-1"}]
	}`)

	p, err := f.svc.PreviewImport(context.Background(), Request{
		ProjectID: f.projectID.String(),
		Filename:  "takeoff.json",
		Payload:   payload,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, p.Summary.ValidCount)
}
