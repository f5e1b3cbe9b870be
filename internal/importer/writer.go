package importer

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pipetrak/pipetrak/constants"
	"github.com/pipetrak/pipetrak/internal/entity"
)

// BulkWriter persists the valid rows of an import in dependency order:
// reference entities, then drawings, then components, then field welds, then
// the welder roster and welder assignment. Every stage is individually
// idempotent: existing rows are looked up by natural key and only the
// missing remainder is inserted, so retrying a partially completed import
// converges without duplicating records. The storage layer's uniqueness
// constraints are the backstop for two imports racing on the same key.
type BulkWriter struct {
	metadata   MetadataStore
	drawings   DrawingStore
	components ComponentStore
	welds      WeldStore
	welders    WelderStore
	logger     *slog.Logger
}

func NewBulkWriter(metadata MetadataStore, drawings DrawingStore, components ComponentStore, welds WeldStore, welders WelderStore, logger *slog.Logger) *BulkWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &BulkWriter{
		metadata:   metadata,
		drawings:   drawings,
		components: components,
		welds:      welds,
		welders:    welders,
		logger:     logger,
	}
}

// Write runs the write stages against a project. A failure partway through
// leaves earlier stages' writes intact; the returned result reports what did
// commit so the caller can retry the whole invocation safely.
func (w *BulkWriter) Write(ctx context.Context, projectID uuid.UUID, rows []ComponentRow) (*ImportResult, error) {
	start := time.Now()
	result := &ImportResult{ComponentsByType: make(map[string]int)}
	finish := func() *ImportResult {
		result.DurationMS = time.Since(start).Milliseconds()
		return result
	}
	fail := func(stage string, err error) (*ImportResult, error) {
		w.logger.Error("bulk write failed", "stage", stage, "project_id", projectID, "error", err)
		result.Error = err.Error()
		return finish(), fmt.Errorf("%s: %w", stage, err)
	}

	for _, row := range rows {
		if row.Milestones != nil {
			if err := CheckSequencing(row.Milestones); err != nil {
				return fail("milestones", fmt.Errorf("row %d: %w", row.RowNumber, err))
			}
		}
	}

	rc := NewResolutionContext()

	if err := w.writeMetadata(ctx, projectID, rows, rc, result); err != nil {
		return fail("metadata", err)
	}
	if err := w.writeDrawings(ctx, projectID, rows, rc, result); err != nil {
		return fail("drawings", err)
	}
	if err := w.writeComponents(ctx, projectID, rows, rc, result); err != nil {
		return fail("components", err)
	}
	createdWelds, err := w.writeFieldWelds(ctx, projectID, rows, rc, result)
	if err != nil {
		return fail("field welds", err)
	}
	if err := w.writeRoster(ctx, projectID, rows, result); err != nil {
		return fail("welder roster", err)
	}
	if err := w.assignWelders(ctx, projectID, createdWelds, result); err != nil {
		return fail("welder assignment", err)
	}

	result.Success = true
	w.logger.Info("bulk write completed",
		"project_id", projectID,
		"drawings_created", result.DrawingsCreated,
		"components_created", result.ComponentsCreated,
		"welds_created", result.WeldsCreated,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return finish(), nil
}

// writeMetadata creates missing reference entities and fills the resolution
// context with both pre-existing and newly created ids.
func (w *BulkWriter) writeMetadata(ctx context.Context, projectID uuid.UUID, rows []ComponentRow, rc *ResolutionContext, result *ImportResult) error {
	for _, rt := range ReferenceTypes {
		names := referenceNames(rows, rt)
		if len(names) == 0 {
			continue
		}
		existing, err := w.metadata.LookupByName(ctx, projectID, rt, names)
		if err != nil {
			return err
		}
		rc.Merge(rt, existing)

		missing := make([]string, 0)
		for _, name := range names {
			if _, ok := existing[name]; !ok {
				missing = append(missing, name)
			}
		}
		if len(missing) == 0 {
			continue
		}
		created, err := w.metadata.CreateMissing(ctx, projectID, rt, missing)
		if err != nil {
			return err
		}
		rc.Merge(rt, created)
		switch rt {
		case RefArea:
			result.Metadata.Areas += len(created)
		case RefSystem:
			result.Metadata.Systems += len(created)
		case RefTestPackage:
			result.Metadata.TestPackages += len(created)
		}
	}
	return nil
}

// writeDrawings creates or reuses drawings keyed by normalized number and
// records their ids in the resolution context.
func (w *BulkWriter) writeDrawings(ctx context.Context, projectID uuid.UUID, rows []ComponentRow, rc *ResolutionContext, result *ImportResult) error {
	byNorm := make(map[string]entity.Drawing)
	norms := make([]string, 0)
	for _, row := range rows {
		if row.DrawingNorm == "" {
			continue
		}
		if _, seen := byNorm[row.DrawingNorm]; seen {
			continue
		}
		byNorm[row.DrawingNorm] = entity.Drawing{
			ProjectID:  projectID,
			Number:     row.DrawingNumber,
			NormNumber: row.DrawingNorm,
			AreaID:     rc.Resolve(RefArea, row.Area),
			SystemID:   rc.Resolve(RefSystem, row.System),
		}
		norms = append(norms, row.DrawingNorm)
	}
	if len(norms) == 0 {
		return nil
	}
	sort.Strings(norms)

	existing, err := w.drawings.LookupByNorm(ctx, projectID, norms)
	if err != nil {
		return err
	}
	for norm, id := range existing {
		rc.Drawings[norm] = id
	}

	missing := make([]entity.Drawing, 0)
	for _, norm := range norms {
		if _, ok := existing[norm]; !ok {
			missing = append(missing, byNorm[norm])
		}
	}
	if len(missing) == 0 {
		return nil
	}
	created, err := w.drawings.CreateBatch(ctx, missing)
	if err != nil {
		return err
	}
	for norm, id := range created {
		rc.Drawings[norm] = id
	}
	result.DrawingsCreated = len(created)
	return nil
}

// writeComponents bulk-inserts components per type, skipping identity keys
// already present in the store.
func (w *BulkWriter) writeComponents(ctx context.Context, projectID uuid.UUID, rows []ComponentRow, rc *ResolutionContext, result *ImportResult) error {
	byType := make(map[constants.ComponentType][]ComponentRow)
	types := make([]constants.ComponentType, 0)
	for _, row := range rows {
		if row.Type == constants.FieldWeld {
			continue // welds are written to their own table
		}
		if _, seen := byType[row.Type]; !seen {
			types = append(types, row.Type)
		}
		byType[row.Type] = append(byType[row.Type], row)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	for _, ct := range types {
		typeRows := byType[ct]
		keys := make([]string, 0, len(typeRows))
		for _, row := range typeRows {
			keys = append(keys, row.Key.String())
		}
		existing, err := w.components.ExistingKeys(ctx, projectID, ct, keys)
		if err != nil {
			return err
		}

		payload := make([]entity.Component, 0, len(typeRows))
		for _, row := range typeRows {
			key := row.Key.String()
			if _, present := existing[key]; present {
				continue // already written by a prior attempt
			}
			milestones := row.Milestones
			if milestones == nil {
				milestones = InitialState(ct)
			}
			comp := entity.Component{
				ProjectID:     projectID,
				Type:          ct,
				IdentityKey:   key,
				DrawingID:     rc.ResolveDrawing(row.DrawingNorm),
				AreaID:        rc.Resolve(RefArea, row.Area),
				SystemID:      rc.Resolve(RefSystem, row.System),
				TestPackageID: rc.Resolve(RefTestPackage, row.TestPackage),
				CommodityCode: row.CommodityCode,
				Spec:          row.Spec,
				Description:   row.Description,
				Size:          row.Size,
				Quantity:      row.Quantity,
				Seq:           row.Seq,
				Attributes:    row.Attributes,
				Milestones:    milestones,
			}
			if row.Comments != "" {
				c := row.Comments
				comp.Comments = &c
			}
			payload = append(payload, comp)
		}
		if len(payload) == 0 {
			continue
		}
		created, err := w.components.CreateBatch(ctx, payload)
		if err != nil {
			return err
		}
		result.ComponentsCreated += len(created)
		result.ComponentsByType[string(ct)] += len(created)
	}
	return nil
}

// writeFieldWelds bulk-inserts welds, resolving their drawing through the
// context. Returns the created welds for the assignment stage.
func (w *BulkWriter) writeFieldWelds(ctx context.Context, projectID uuid.UUID, rows []ComponentRow, rc *ResolutionContext, result *ImportResult) ([]entity.FieldWeld, error) {
	weldRows := make([]ComponentRow, 0)
	drawingIDSet := make(map[uuid.UUID]struct{})
	for _, row := range rows {
		if row.Type != constants.FieldWeld {
			continue
		}
		drawingID := rc.ResolveDrawing(row.DrawingNorm)
		if drawingID == nil {
			result.Details = append(result.Details, RowIssue{
				Row:   row.RowNumber,
				Issue: fmt.Sprintf("weld %s: drawing %s not resolved", row.WeldNumber, row.DrawingNumber),
			})
			continue
		}
		drawingIDSet[*drawingID] = struct{}{}
		weldRows = append(weldRows, row)
	}
	if len(weldRows) == 0 {
		return nil, nil
	}

	drawingIDs := make([]uuid.UUID, 0, len(drawingIDSet))
	for id := range drawingIDSet {
		drawingIDs = append(drawingIDs, id)
	}
	existing, err := w.welds.ExistingWelds(ctx, drawingIDs)
	if err != nil {
		return nil, err
	}

	payload := make([]entity.FieldWeld, 0, len(weldRows))
	for _, row := range weldRows {
		drawingID := *rc.ResolveDrawing(row.DrawingNorm)
		weldNo := row.WeldNumber
		if weldNo == "" {
			if wk, ok := row.Key.(WeldKey); ok {
				weldNo = wk.WeldNumber
			}
		}
		if _, present := existing[weldLookupKey(drawingID, weldNo)]; present {
			continue
		}
		milestones := row.Milestones
		if milestones == nil {
			milestones = WeldInitialState()
		}
		weld := entity.FieldWeld{
			ProjectID:  projectID,
			DrawingID:  drawingID,
			WeldNumber: weldNo,
			Milestones: milestones,
		}
		if row.WeldType != "" {
			wt := row.WeldType
			weld.WeldType = &wt
		}
		if row.Material != "" {
			m := row.Material
			weld.Material = &m
		}
		payload = append(payload, weld)
	}
	if len(payload) == 0 {
		return nil, nil
	}
	created, err := w.welds.CreateBatch(ctx, payload)
	if err != nil {
		return nil, err
	}
	result.WeldsCreated = len(created)
	return created, nil
}

// weldLookupKey is the composite key used for batch existence checks.
func weldLookupKey(drawingID uuid.UUID, weldNumber string) string {
	return drawingID.String() + "|" + weldNumber
}

// writeRoster puts the stencils named in the WELDER column on the project's
// roster, so the assignment stage has someone to assign. Known stencils are
// reused, same as every other natural key.
func (w *BulkWriter) writeRoster(ctx context.Context, projectID uuid.UUID, rows []ComponentRow, result *ImportResult) error {
	seen := make(map[string]struct{})
	stencils := make([]string, 0)
	for _, row := range rows {
		s := strings.ToUpper(strings.TrimSpace(row.Welder))
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		stencils = append(stencils, s)
	}
	if len(stencils) == 0 {
		return nil
	}
	sort.Strings(stencils)

	created, err := w.welders.EnsureStencils(ctx, projectID, stencils)
	if err != nil {
		return err
	}
	result.WeldersCreated = created
	return nil
}

// assignWelders distributes welds whose Weld milestone is complete across the
// project's active welders with a deterministic round-robin: welds sorted by
// (drawing, weld number), welders sorted by stencil. Same input, same
// assignment.
func (w *BulkWriter) assignWelders(ctx context.Context, projectID uuid.UUID, welds []entity.FieldWeld, result *ImportResult) error {
	eligible := make([]entity.FieldWeld, 0)
	for _, weld := range welds {
		if weld.Milestones.MilestoneComplete("Weld") {
			eligible = append(eligible, weld)
		}
	}
	if len(eligible) == 0 {
		return nil
	}

	welders, err := w.welders.ListActive(ctx, projectID)
	if err != nil {
		return err
	}
	if len(welders) == 0 {
		w.logger.Warn("welds eligible for assignment but project has no active welders",
			"project_id", projectID, "eligible", len(eligible))
		return nil
	}
	sort.Slice(welders, func(i, j int) bool { return welders[i].Stencil < welders[j].Stencil })
	sort.Slice(eligible, func(i, j int) bool {
		if eligible[i].DrawingID != eligible[j].DrawingID {
			return eligible[i].DrawingID.String() < eligible[j].DrawingID.String()
		}
		return eligible[i].WeldNumber < eligible[j].WeldNumber
	})

	assignments := make(map[uuid.UUID]uuid.UUID, len(eligible))
	for i, weld := range eligible {
		assignments[weld.ID] = welders[i%len(welders)].ID
	}
	if err := w.welds.AssignWelders(ctx, assignments); err != nil {
		return err
	}
	result.WeldersAssigned = len(assignments)
	return nil
}
