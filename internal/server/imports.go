package server

import (
	"context"
	"encoding/json"
	"time"

	"log/slog"

	"github.com/pipetrak/pipetrak/constants"
	v1 "github.com/pipetrak/pipetrak/gen/proto/pipetrak/v1"
	"github.com/pipetrak/pipetrak/internal/common"
	"github.com/pipetrak/pipetrak/internal/entity"
	"github.com/pipetrak/pipetrak/internal/importer"
	"github.com/pipetrak/pipetrak/internal/services/imports"
)

type ImportService struct {
	v1.UnimplementedImportServiceServer
	svc    *imports.Service
	logger *slog.Logger
}

func NewImportService(svc *imports.Service, logger *slog.Logger) *ImportService {
	return &ImportService{svc: svc, logger: logger}
}

// validateImportRequest checks the identifying fields shared by the three
// import entry points. Payload contents are the service's problem.
func validateImportRequest(projectID, filename string) error {
	v := common.NewValidator().
		Field("project_id", projectID, common.Required, common.UUID).
		Field("filename", filename, common.Required)
	return common.ValidateAndReturnError(v)
}

// PreviewImport implements v1.ImportServiceServer
func (s *ImportService) PreviewImport(ctx context.Context, req *v1.PreviewImportRequest) (*v1.PreviewImportResponse, error) {
	if err := validateImportRequest(req.GetProjectId(), req.GetFilename()); err != nil {
		return nil, err
	}
	s.logger.Info("preview import", "project_id", req.GetProjectId(), "filename", req.GetFilename(), "bytes", len(req.GetPayload()))
	p, err := s.svc.PreviewImport(ctx, imports.Request{
		ProjectID: req.GetProjectId(),
		Filename:  req.GetFilename(),
		Payload:   req.GetPayload(),
	})
	if err != nil {
		return nil, err
	}
	return previewToProto(p), nil
}

// ExecuteImport implements v1.ImportServiceServer
func (s *ImportService) ExecuteImport(ctx context.Context, req *v1.ExecuteImportRequest) (*v1.ExecuteImportResponse, error) {
	if err := validateImportRequest(req.GetProjectId(), req.GetFilename()); err != nil {
		return nil, err
	}
	s.logger.Info("execute import", "project_id", req.GetProjectId(), "filename", req.GetFilename(), "bytes", len(req.GetPayload()))
	result, job, err := s.svc.ExecuteImport(ctx, imports.Request{
		ProjectID: req.GetProjectId(),
		Filename:  req.GetFilename(),
		Payload:   req.GetPayload(),
	})
	if err != nil {
		return nil, err
	}
	resp := &v1.ExecuteImportResponse{Job: jobToProto(job)}
	if result != nil {
		if data, merr := json.Marshal(result); merr == nil {
			resp.ResultJson = string(data)
		}
	}
	return resp, nil
}

// SubmitImport implements v1.ImportServiceServer
func (s *ImportService) SubmitImport(ctx context.Context, req *v1.SubmitImportRequest) (*v1.SubmitImportResponse, error) {
	if err := validateImportRequest(req.GetProjectId(), req.GetFilename()); err != nil {
		return nil, err
	}
	s.logger.Info("submit import", "project_id", req.GetProjectId(), "filename", req.GetFilename(), "bytes", len(req.GetPayload()))
	job, _, err := s.svc.SubmitImport(ctx, imports.Request{
		ProjectID: req.GetProjectId(),
		Filename:  req.GetFilename(),
		Payload:   req.GetPayload(),
	})
	if err != nil {
		return nil, err
	}
	return &v1.SubmitImportResponse{Job: jobToProto(job)}, nil
}

// GetImportJob implements v1.ImportServiceServer
func (s *ImportService) GetImportJob(ctx context.Context, req *v1.GetImportJobRequest) (*v1.GetImportJobResponse, error) {
	job, err := s.svc.GetJob(ctx, req.GetJobId())
	if err != nil {
		return nil, err
	}
	return &v1.GetImportJobResponse{Job: jobToProto(job)}, nil
}

func previewToProto(p *imports.Preview) *v1.PreviewImportResponse {
	resp := &v1.PreviewImportResponse{
		Mapping:     mappingToProto(p.Mapping),
		Blocked:     p.Blocked,
		BlockReason: string(p.BlockReason),
	}
	if p.Summary != nil {
		resp.Validation = summaryToProto(p.Summary)
	}
	if p.Discovery != nil {
		resp.Discovery = discoveryToProto(p.Discovery)
	}
	return resp
}

func mappingToProto(m importer.MappingResult) *v1.MappingSummary {
	out := &v1.MappingSummary{
		UnmappedColumns:      m.UnmappedColumns,
		HasAllRequiredFields: m.HasAllRequiredFields,
	}
	for _, cm := range m.Mappings {
		out.Mappings = append(out.Mappings, &v1.ColumnMapping{
			InputColumn:   cm.InputColumn,
			ExpectedField: string(cm.Field),
			Confidence:    int32(cm.Confidence),
			MatchTier:     string(cm.Tier),
		})
	}
	for _, f := range m.MissingRequired {
		out.MissingRequired = append(out.MissingRequired, string(f))
	}
	return out
}

func summaryToProto(s *importer.Summary) *v1.ValidationSummary {
	out := &v1.ValidationSummary{
		TotalRows:    int32(s.TotalRows),
		ValidCount:   int32(s.ValidCount),
		SkippedCount: int32(s.SkippedCount),
		ErrorCount:   int32(s.ErrorCount),
		CanImport:    s.CanImport,
	}
	for _, r := range s.Results {
		if r.Status == constants.RowValid {
			continue
		}
		out.Issues = append(out.Issues, &v1.RowIssue{
			Row:      int32(r.RowNumber),
			Status:   string(r.Status),
			Category: string(r.Category),
			Reason:   r.Reason,
		})
	}
	return out
}

func discoveryToProto(p *importer.DiscoveryPlan) *v1.DiscoverySummary {
	out := &v1.DiscoverySummary{}
	for _, rt := range importer.ReferenceTypes {
		for _, item := range p.ByType[rt] {
			pi := &v1.DiscoveryItem{
				Type:   string(item.Type),
				Value:  item.Value,
				Exists: item.Exists,
			}
			if item.RecordID != nil {
				pi.RecordId = item.RecordID.String()
			}
			out.Items = append(out.Items, pi)
		}
		out.WillCreateCount += int32(p.WillCreateCount[rt])
	}
	return out
}

func jobToProto(job *entity.ImportJob) *v1.ImportJob {
	if job == nil {
		return nil
	}
	out := &v1.ImportJob{
		Id:           job.ID.String(),
		ProjectId:    job.ProjectID.String(),
		Filename:     job.Filename,
		Status:       string(job.Status),
		TotalRows:    int32(job.TotalRows),
		ValidCount:   int32(job.ValidRows),
		SkippedCount: int32(job.SkippedRows),
		ErrorCount:   int32(job.ErrorRows),
		CreatedAt:    job.CreatedAt.UTC().Format(time.RFC3339),
	}
	if len(job.Result) > 0 {
		out.ResultJson = string(job.Result)
	}
	if job.ErrorMessage != nil {
		out.Error = *job.ErrorMessage
	}
	if job.FinishedAt != nil {
		out.UpdatedAt = job.FinishedAt.UTC().Format(time.RFC3339)
	} else if job.StartedAt != nil {
		out.UpdatedAt = job.StartedAt.UTC().Format(time.RFC3339)
	}
	return out
}
