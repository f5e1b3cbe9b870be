package importer

import (
	"context"

	"github.com/google/uuid"
	"github.com/pipetrak/pipetrak/constants"
	"github.com/pipetrak/pipetrak/internal/entity"
)

// In-memory store fakes. They mimic the repository layer's contract
// (lookups by natural key, insert-what's-missing creates) without a
// database, and count calls so tests can assert batching behavior.

type fakeMetadataStore struct {
	refs    map[ReferenceType]map[string]uuid.UUID
	lookups int
	created int
}

func newFakeMetadataStore() *fakeMetadataStore {
	return &fakeMetadataStore{refs: make(map[ReferenceType]map[string]uuid.UUID)}
}

func (f *fakeMetadataStore) seed(rt ReferenceType, name string, id uuid.UUID) {
	if f.refs[rt] == nil {
		f.refs[rt] = make(map[string]uuid.UUID)
	}
	f.refs[rt][name] = id
}

func (f *fakeMetadataStore) LookupByName(_ context.Context, _ uuid.UUID, rt ReferenceType, names []string) (map[string]uuid.UUID, error) {
	f.lookups++
	out := make(map[string]uuid.UUID)
	for _, name := range names {
		if id, ok := f.refs[rt][name]; ok {
			out[name] = id
		}
	}
	return out, nil
}

func (f *fakeMetadataStore) CreateMissing(_ context.Context, _ uuid.UUID, rt ReferenceType, names []string) (map[string]uuid.UUID, error) {
	out := make(map[string]uuid.UUID)
	for _, name := range names {
		if _, ok := f.refs[rt][name]; ok {
			continue
		}
		id := uuid.New()
		f.seed(rt, name, id)
		out[name] = id
		f.created++
	}
	return out, nil
}

type fakeDrawingStore struct {
	byNorm map[string]uuid.UUID
}

func newFakeDrawingStore() *fakeDrawingStore {
	return &fakeDrawingStore{byNorm: make(map[string]uuid.UUID)}
}

func (f *fakeDrawingStore) LookupByNorm(_ context.Context, _ uuid.UUID, norms []string) (map[string]uuid.UUID, error) {
	out := make(map[string]uuid.UUID)
	for _, n := range norms {
		if id, ok := f.byNorm[n]; ok {
			out[n] = id
		}
	}
	return out, nil
}

func (f *fakeDrawingStore) CreateBatch(_ context.Context, drawings []entity.Drawing) (map[string]uuid.UUID, error) {
	out := make(map[string]uuid.UUID)
	for _, d := range drawings {
		id := uuid.New()
		f.byNorm[d.NormNumber] = id
		out[d.NormNumber] = id
	}
	return out, nil
}

type fakeComponentStore struct {
	byKey map[string]entity.Component // "type\x00identity_key"
}

func newFakeComponentStore() *fakeComponentStore {
	return &fakeComponentStore{byKey: make(map[string]entity.Component)}
}

func (f *fakeComponentStore) storeKey(ct constants.ComponentType, key string) string {
	return string(ct) + "\x00" + key
}

func (f *fakeComponentStore) ExistingKeys(_ context.Context, _ uuid.UUID, ct constants.ComponentType, keys []string) (map[string]struct{}, error) {
	out := make(map[string]struct{})
	for _, k := range keys {
		if _, ok := f.byKey[f.storeKey(ct, k)]; ok {
			out[k] = struct{}{}
		}
	}
	return out, nil
}

func (f *fakeComponentStore) CreateBatch(_ context.Context, comps []entity.Component) ([]entity.Component, error) {
	created := make([]entity.Component, 0, len(comps))
	for _, c := range comps {
		c.ID = uuid.New()
		f.byKey[f.storeKey(c.Type, c.IdentityKey)] = c
		created = append(created, c)
	}
	return created, nil
}

type fakeWeldStore struct {
	byKey       map[string]entity.FieldWeld
	assignments map[uuid.UUID]uuid.UUID
}

func newFakeWeldStore() *fakeWeldStore {
	return &fakeWeldStore{
		byKey:       make(map[string]entity.FieldWeld),
		assignments: make(map[uuid.UUID]uuid.UUID),
	}
}

func (f *fakeWeldStore) ExistingWelds(_ context.Context, drawingIDs []uuid.UUID) (map[string]struct{}, error) {
	inScope := make(map[uuid.UUID]struct{}, len(drawingIDs))
	for _, id := range drawingIDs {
		inScope[id] = struct{}{}
	}
	out := make(map[string]struct{})
	for k, w := range f.byKey {
		if _, ok := inScope[w.DrawingID]; ok {
			out[k] = struct{}{}
		}
	}
	return out, nil
}

func (f *fakeWeldStore) CreateBatch(_ context.Context, welds []entity.FieldWeld) ([]entity.FieldWeld, error) {
	created := make([]entity.FieldWeld, 0, len(welds))
	for _, w := range welds {
		w.ID = uuid.New()
		f.byKey[weldLookupKey(w.DrawingID, w.WeldNumber)] = w
		created = append(created, w)
	}
	return created, nil
}

func (f *fakeWeldStore) AssignWelders(_ context.Context, assignments map[uuid.UUID]uuid.UUID) error {
	for weldID, welderID := range assignments {
		f.assignments[weldID] = welderID
	}
	return nil
}

type fakeWelderStore struct {
	welders []entity.Welder
}

func (f *fakeWelderStore) ListActive(_ context.Context, _ uuid.UUID) ([]entity.Welder, error) {
	return f.welders, nil
}

func (f *fakeWelderStore) EnsureStencils(_ context.Context, _ uuid.UUID, stencils []string) (int, error) {
	known := make(map[string]struct{}, len(f.welders))
	for _, w := range f.welders {
		known[w.Stencil] = struct{}{}
	}
	created := 0
	for _, s := range stencils {
		if _, ok := known[s]; ok {
			continue
		}
		f.welders = append(f.welders, entity.Welder{ID: uuid.New(), Name: s, Stencil: s, Active: true})
		created++
	}
	return created, nil
}
