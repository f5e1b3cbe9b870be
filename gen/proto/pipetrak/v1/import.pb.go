// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: pipetrak/v1/import.proto

package pipetrakv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type PreviewImportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Payload       []byte                 `protobuf:"bytes,3,opt,name=payload,proto3" json:"payload,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PreviewImportRequest) Reset() {
	*x = PreviewImportRequest{}
	mi := &file_pipetrak_v1_import_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PreviewImportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PreviewImportRequest) ProtoMessage() {}

func (x *PreviewImportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pipetrak_v1_import_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PreviewImportRequest.ProtoReflect.Descriptor instead.
func (*PreviewImportRequest) Descriptor() ([]byte, []int) {
	return file_pipetrak_v1_import_proto_rawDescGZIP(), []int{0}
}

func (x *PreviewImportRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *PreviewImportRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *PreviewImportRequest) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

type ColumnMapping struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	InputColumn   string                 `protobuf:"bytes,1,opt,name=input_column,json=inputColumn,proto3" json:"input_column,omitempty"`
	ExpectedField string                 `protobuf:"bytes,2,opt,name=expected_field,json=expectedField,proto3" json:"expected_field,omitempty"`
	Confidence    int32                  `protobuf:"varint,3,opt,name=confidence,proto3" json:"confidence,omitempty"`
	MatchTier     string                 `protobuf:"bytes,4,opt,name=match_tier,json=matchTier,proto3" json:"match_tier,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ColumnMapping) Reset() {
	*x = ColumnMapping{}
	mi := &file_pipetrak_v1_import_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ColumnMapping) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ColumnMapping) ProtoMessage() {}

func (x *ColumnMapping) ProtoReflect() protoreflect.Message {
	mi := &file_pipetrak_v1_import_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ColumnMapping.ProtoReflect.Descriptor instead.
func (*ColumnMapping) Descriptor() ([]byte, []int) {
	return file_pipetrak_v1_import_proto_rawDescGZIP(), []int{1}
}

func (x *ColumnMapping) GetInputColumn() string {
	if x != nil {
		return x.InputColumn
	}
	return ""
}

func (x *ColumnMapping) GetExpectedField() string {
	if x != nil {
		return x.ExpectedField
	}
	return ""
}

func (x *ColumnMapping) GetConfidence() int32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *ColumnMapping) GetMatchTier() string {
	if x != nil {
		return x.MatchTier
	}
	return ""
}

type MappingSummary struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	Mappings             []*ColumnMapping       `protobuf:"bytes,1,rep,name=mappings,proto3" json:"mappings,omitempty"`
	UnmappedColumns      []string               `protobuf:"bytes,2,rep,name=unmapped_columns,json=unmappedColumns,proto3" json:"unmapped_columns,omitempty"`
	MissingRequired      []string               `protobuf:"bytes,3,rep,name=missing_required,json=missingRequired,proto3" json:"missing_required,omitempty"`
	HasAllRequiredFields bool                   `protobuf:"varint,4,opt,name=has_all_required_fields,json=hasAllRequiredFields,proto3" json:"has_all_required_fields,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *MappingSummary) Reset() {
	*x = MappingSummary{}
	mi := &file_pipetrak_v1_import_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MappingSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MappingSummary) ProtoMessage() {}

func (x *MappingSummary) ProtoReflect() protoreflect.Message {
	mi := &file_pipetrak_v1_import_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MappingSummary.ProtoReflect.Descriptor instead.
func (*MappingSummary) Descriptor() ([]byte, []int) {
	return file_pipetrak_v1_import_proto_rawDescGZIP(), []int{2}
}

func (x *MappingSummary) GetMappings() []*ColumnMapping {
	if x != nil {
		return x.Mappings
	}
	return nil
}

func (x *MappingSummary) GetUnmappedColumns() []string {
	if x != nil {
		return x.UnmappedColumns
	}
	return nil
}

func (x *MappingSummary) GetMissingRequired() []string {
	if x != nil {
		return x.MissingRequired
	}
	return nil
}

func (x *MappingSummary) GetHasAllRequiredFields() bool {
	if x != nil {
		return x.HasAllRequiredFields
	}
	return false
}

type RowIssue struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Row           int32                  `protobuf:"varint,1,opt,name=row,proto3" json:"row,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	Category      string                 `protobuf:"bytes,3,opt,name=category,proto3" json:"category,omitempty"`
	Reason        string                 `protobuf:"bytes,4,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RowIssue) Reset() {
	*x = RowIssue{}
	mi := &file_pipetrak_v1_import_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RowIssue) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RowIssue) ProtoMessage() {}

func (x *RowIssue) ProtoReflect() protoreflect.Message {
	mi := &file_pipetrak_v1_import_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RowIssue.ProtoReflect.Descriptor instead.
func (*RowIssue) Descriptor() ([]byte, []int) {
	return file_pipetrak_v1_import_proto_rawDescGZIP(), []int{3}
}

func (x *RowIssue) GetRow() int32 {
	if x != nil {
		return x.Row
	}
	return 0
}

func (x *RowIssue) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *RowIssue) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *RowIssue) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type ValidationSummary struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TotalRows     int32                  `protobuf:"varint,1,opt,name=total_rows,json=totalRows,proto3" json:"total_rows,omitempty"`
	ValidCount    int32                  `protobuf:"varint,2,opt,name=valid_count,json=validCount,proto3" json:"valid_count,omitempty"`
	SkippedCount  int32                  `protobuf:"varint,3,opt,name=skipped_count,json=skippedCount,proto3" json:"skipped_count,omitempty"`
	ErrorCount    int32                  `protobuf:"varint,4,opt,name=error_count,json=errorCount,proto3" json:"error_count,omitempty"`
	CanImport     bool                   `protobuf:"varint,5,opt,name=can_import,json=canImport,proto3" json:"can_import,omitempty"`
	Issues        []*RowIssue            `protobuf:"bytes,6,rep,name=issues,proto3" json:"issues,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidationSummary) Reset() {
	*x = ValidationSummary{}
	mi := &file_pipetrak_v1_import_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidationSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidationSummary) ProtoMessage() {}

func (x *ValidationSummary) ProtoReflect() protoreflect.Message {
	mi := &file_pipetrak_v1_import_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidationSummary.ProtoReflect.Descriptor instead.
func (*ValidationSummary) Descriptor() ([]byte, []int) {
	return file_pipetrak_v1_import_proto_rawDescGZIP(), []int{4}
}

func (x *ValidationSummary) GetTotalRows() int32 {
	if x != nil {
		return x.TotalRows
	}
	return 0
}

func (x *ValidationSummary) GetValidCount() int32 {
	if x != nil {
		return x.ValidCount
	}
	return 0
}

func (x *ValidationSummary) GetSkippedCount() int32 {
	if x != nil {
		return x.SkippedCount
	}
	return 0
}

func (x *ValidationSummary) GetErrorCount() int32 {
	if x != nil {
		return x.ErrorCount
	}
	return 0
}

func (x *ValidationSummary) GetCanImport() bool {
	if x != nil {
		return x.CanImport
	}
	return false
}

func (x *ValidationSummary) GetIssues() []*RowIssue {
	if x != nil {
		return x.Issues
	}
	return nil
}

type DiscoveryItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Type          string                 `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"`
	Value         string                 `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
	Exists        bool                   `protobuf:"varint,3,opt,name=exists,proto3" json:"exists,omitempty"`
	RecordId      string                 `protobuf:"bytes,4,opt,name=record_id,json=recordId,proto3" json:"record_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DiscoveryItem) Reset() {
	*x = DiscoveryItem{}
	mi := &file_pipetrak_v1_import_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DiscoveryItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DiscoveryItem) ProtoMessage() {}

func (x *DiscoveryItem) ProtoReflect() protoreflect.Message {
	mi := &file_pipetrak_v1_import_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DiscoveryItem.ProtoReflect.Descriptor instead.
func (*DiscoveryItem) Descriptor() ([]byte, []int) {
	return file_pipetrak_v1_import_proto_rawDescGZIP(), []int{5}
}

func (x *DiscoveryItem) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *DiscoveryItem) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

func (x *DiscoveryItem) GetExists() bool {
	if x != nil {
		return x.Exists
	}
	return false
}

func (x *DiscoveryItem) GetRecordId() string {
	if x != nil {
		return x.RecordId
	}
	return ""
}

type DiscoverySummary struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Items           []*DiscoveryItem       `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	WillCreateCount int32                  `protobuf:"varint,2,opt,name=will_create_count,json=willCreateCount,proto3" json:"will_create_count,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *DiscoverySummary) Reset() {
	*x = DiscoverySummary{}
	mi := &file_pipetrak_v1_import_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DiscoverySummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DiscoverySummary) ProtoMessage() {}

func (x *DiscoverySummary) ProtoReflect() protoreflect.Message {
	mi := &file_pipetrak_v1_import_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DiscoverySummary.ProtoReflect.Descriptor instead.
func (*DiscoverySummary) Descriptor() ([]byte, []int) {
	return file_pipetrak_v1_import_proto_rawDescGZIP(), []int{6}
}

func (x *DiscoverySummary) GetItems() []*DiscoveryItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *DiscoverySummary) GetWillCreateCount() int32 {
	if x != nil {
		return x.WillCreateCount
	}
	return 0
}

type PreviewImportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Mapping       *MappingSummary        `protobuf:"bytes,1,opt,name=mapping,proto3" json:"mapping,omitempty"`
	Validation    *ValidationSummary     `protobuf:"bytes,2,opt,name=validation,proto3" json:"validation,omitempty"`
	Discovery     *DiscoverySummary      `protobuf:"bytes,3,opt,name=discovery,proto3" json:"discovery,omitempty"`
	Blocked       bool                   `protobuf:"varint,4,opt,name=blocked,proto3" json:"blocked,omitempty"`
	BlockReason   string                 `protobuf:"bytes,5,opt,name=block_reason,json=blockReason,proto3" json:"block_reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PreviewImportResponse) Reset() {
	*x = PreviewImportResponse{}
	mi := &file_pipetrak_v1_import_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PreviewImportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PreviewImportResponse) ProtoMessage() {}

func (x *PreviewImportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pipetrak_v1_import_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PreviewImportResponse.ProtoReflect.Descriptor instead.
func (*PreviewImportResponse) Descriptor() ([]byte, []int) {
	return file_pipetrak_v1_import_proto_rawDescGZIP(), []int{7}
}

func (x *PreviewImportResponse) GetMapping() *MappingSummary {
	if x != nil {
		return x.Mapping
	}
	return nil
}

func (x *PreviewImportResponse) GetValidation() *ValidationSummary {
	if x != nil {
		return x.Validation
	}
	return nil
}

func (x *PreviewImportResponse) GetDiscovery() *DiscoverySummary {
	if x != nil {
		return x.Discovery
	}
	return nil
}

func (x *PreviewImportResponse) GetBlocked() bool {
	if x != nil {
		return x.Blocked
	}
	return false
}

func (x *PreviewImportResponse) GetBlockReason() string {
	if x != nil {
		return x.BlockReason
	}
	return ""
}

type ExecuteImportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Payload       []byte                 `protobuf:"bytes,3,opt,name=payload,proto3" json:"payload,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExecuteImportRequest) Reset() {
	*x = ExecuteImportRequest{}
	mi := &file_pipetrak_v1_import_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExecuteImportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExecuteImportRequest) ProtoMessage() {}

func (x *ExecuteImportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pipetrak_v1_import_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExecuteImportRequest.ProtoReflect.Descriptor instead.
func (*ExecuteImportRequest) Descriptor() ([]byte, []int) {
	return file_pipetrak_v1_import_proto_rawDescGZIP(), []int{8}
}

func (x *ExecuteImportRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *ExecuteImportRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ExecuteImportRequest) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

type ImportJob struct {
	state        protoimpl.MessageState `protogen:"open.v1"`
	Id           string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProjectId    string                 `protobuf:"bytes,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	Filename     string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	Status       string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	TotalRows    int32                  `protobuf:"varint,5,opt,name=total_rows,json=totalRows,proto3" json:"total_rows,omitempty"`
	ValidCount   int32                  `protobuf:"varint,6,opt,name=valid_count,json=validCount,proto3" json:"valid_count,omitempty"`
	SkippedCount int32                  `protobuf:"varint,7,opt,name=skipped_count,json=skippedCount,proto3" json:"skipped_count,omitempty"`
	ErrorCount   int32                  `protobuf:"varint,8,opt,name=error_count,json=errorCount,proto3" json:"error_count,omitempty"`
	// result is the stored JSON import result, empty until the job completes.
	ResultJson    string `protobuf:"bytes,9,opt,name=result_json,json=resultJson,proto3" json:"result_json,omitempty"`
	Error         string `protobuf:"bytes,10,opt,name=error,proto3" json:"error,omitempty"`
	CreatedAt     string `protobuf:"bytes,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string `protobuf:"bytes,12,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportJob) Reset() {
	*x = ImportJob{}
	mi := &file_pipetrak_v1_import_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportJob) ProtoMessage() {}

func (x *ImportJob) ProtoReflect() protoreflect.Message {
	mi := &file_pipetrak_v1_import_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportJob.ProtoReflect.Descriptor instead.
func (*ImportJob) Descriptor() ([]byte, []int) {
	return file_pipetrak_v1_import_proto_rawDescGZIP(), []int{9}
}

func (x *ImportJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ImportJob) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *ImportJob) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ImportJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ImportJob) GetTotalRows() int32 {
	if x != nil {
		return x.TotalRows
	}
	return 0
}

func (x *ImportJob) GetValidCount() int32 {
	if x != nil {
		return x.ValidCount
	}
	return 0
}

func (x *ImportJob) GetSkippedCount() int32 {
	if x != nil {
		return x.SkippedCount
	}
	return 0
}

func (x *ImportJob) GetErrorCount() int32 {
	if x != nil {
		return x.ErrorCount
	}
	return 0
}

func (x *ImportJob) GetResultJson() string {
	if x != nil {
		return x.ResultJson
	}
	return ""
}

func (x *ImportJob) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

func (x *ImportJob) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *ImportJob) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ExecuteImportResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Job   *ImportJob             `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	// result_json carries the write-stage result document.
	ResultJson    string `protobuf:"bytes,2,opt,name=result_json,json=resultJson,proto3" json:"result_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExecuteImportResponse) Reset() {
	*x = ExecuteImportResponse{}
	mi := &file_pipetrak_v1_import_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExecuteImportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExecuteImportResponse) ProtoMessage() {}

func (x *ExecuteImportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pipetrak_v1_import_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExecuteImportResponse.ProtoReflect.Descriptor instead.
func (*ExecuteImportResponse) Descriptor() ([]byte, []int) {
	return file_pipetrak_v1_import_proto_rawDescGZIP(), []int{10}
}

func (x *ExecuteImportResponse) GetJob() *ImportJob {
	if x != nil {
		return x.Job
	}
	return nil
}

func (x *ExecuteImportResponse) GetResultJson() string {
	if x != nil {
		return x.ResultJson
	}
	return ""
}

type SubmitImportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Payload       []byte                 `protobuf:"bytes,3,opt,name=payload,proto3" json:"payload,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitImportRequest) Reset() {
	*x = SubmitImportRequest{}
	mi := &file_pipetrak_v1_import_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitImportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitImportRequest) ProtoMessage() {}

func (x *SubmitImportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pipetrak_v1_import_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitImportRequest.ProtoReflect.Descriptor instead.
func (*SubmitImportRequest) Descriptor() ([]byte, []int) {
	return file_pipetrak_v1_import_proto_rawDescGZIP(), []int{11}
}

func (x *SubmitImportRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *SubmitImportRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *SubmitImportRequest) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

type SubmitImportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ImportJob             `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitImportResponse) Reset() {
	*x = SubmitImportResponse{}
	mi := &file_pipetrak_v1_import_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitImportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitImportResponse) ProtoMessage() {}

func (x *SubmitImportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pipetrak_v1_import_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitImportResponse.ProtoReflect.Descriptor instead.
func (*SubmitImportResponse) Descriptor() ([]byte, []int) {
	return file_pipetrak_v1_import_proto_rawDescGZIP(), []int{12}
}

func (x *SubmitImportResponse) GetJob() *ImportJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type GetImportJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetImportJobRequest) Reset() {
	*x = GetImportJobRequest{}
	mi := &file_pipetrak_v1_import_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetImportJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetImportJobRequest) ProtoMessage() {}

func (x *GetImportJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pipetrak_v1_import_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetImportJobRequest.ProtoReflect.Descriptor instead.
func (*GetImportJobRequest) Descriptor() ([]byte, []int) {
	return file_pipetrak_v1_import_proto_rawDescGZIP(), []int{13}
}

func (x *GetImportJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetImportJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ImportJob             `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetImportJobResponse) Reset() {
	*x = GetImportJobResponse{}
	mi := &file_pipetrak_v1_import_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetImportJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetImportJobResponse) ProtoMessage() {}

func (x *GetImportJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pipetrak_v1_import_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetImportJobResponse.ProtoReflect.Descriptor instead.
func (*GetImportJobResponse) Descriptor() ([]byte, []int) {
	return file_pipetrak_v1_import_proto_rawDescGZIP(), []int{14}
}

func (x *GetImportJobResponse) GetJob() *ImportJob {
	if x != nil {
		return x.Job
	}
	return nil
}

var File_pipetrak_v1_import_proto protoreflect.FileDescriptor

const file_pipetrak_v1_import_proto_rawDesc = "" +
	"\n" +
	"\x18pipetrak/v1/import.proto\x12\vpipetrak.v1\"k\n" +
	"\x14PreviewImportRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x18\n" +
	"\apayload\x18\x03 \x01(\fR\apayload\"\x98\x01\n" +
	"\rColumnMapping\x12!\n" +
	"\finput_column\x18\x01 \x01(\tR\vinputColumn\x12%\n" +
	"\x0eexpected_field\x18\x02 \x01(\tR\rexpectedField\x12\x1e\n" +
	"\n" +
	"confidence\x18\x03 \x01(\x05R\n" +
	"confidence\x12\x1d\n" +
	"\n" +
	"match_tier\x18\x04 \x01(\tR\tmatchTier\"\xd5\x01\n" +
	"\x0eMappingSummary\x126\n" +
	"\bmappings\x18\x01 \x03(\v2\x1a.pipetrak.v1.ColumnMappingR\bmappings\x12)\n" +
	"\x10unmapped_columns\x18\x02 \x03(\tR\x0funmappedColumns\x12)\n" +
	"\x10missing_required\x18\x03 \x03(\tR\x0fmissingRequired\x125\n" +
	"\x17has_all_required_fields\x18\x04 \x01(\bR\x14hasAllRequiredFields\"h\n" +
	"\bRowIssue\x12\x10\n" +
	"\x03row\x18\x01 \x01(\x05R\x03row\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x1a\n" +
	"\bcategory\x18\x03 \x01(\tR\bcategory\x12\x16\n" +
	"\x06reason\x18\x04 \x01(\tR\x06reason\"\xe7\x01\n" +
	"\x11ValidationSummary\x12\x1d\n" +
	"\n" +
	"total_rows\x18\x01 \x01(\x05R\ttotalRows\x12\x1f\n" +
	"\vvalid_count\x18\x02 \x01(\x05R\n" +
	"validCount\x12#\n" +
	"\rskipped_count\x18\x03 \x01(\x05R\fskippedCount\x12\x1f\n" +
	"\verror_count\x18\x04 \x01(\x05R\n" +
	"errorCount\x12\x1d\n" +
	"\n" +
	"can_import\x18\x05 \x01(\bR\tcanImport\x12-\n" +
	"\x06issues\x18\x06 \x03(\v2\x15.pipetrak.v1.RowIssueR\x06issues\"n\n" +
	"\rDiscoveryItem\x12\x12\n" +
	"\x04type\x18\x01 \x01(\tR\x04type\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value\x12\x16\n" +
	"\x06exists\x18\x03 \x01(\bR\x06exists\x12\x1b\n" +
	"\trecord_id\x18\x04 \x01(\tR\brecordId\"p\n" +
	"\x10DiscoverySummary\x120\n" +
	"\x05items\x18\x01 \x03(\v2\x1a.pipetrak.v1.DiscoveryItemR\x05items\x12*\n" +
	"\x11will_create_count\x18\x02 \x01(\x05R\x0fwillCreateCount\"\x88\x02\n" +
	"\x15PreviewImportResponse\x125\n" +
	"\amapping\x18\x01 \x01(\v2\x1b.pipetrak.v1.MappingSummaryR\amapping\x12>\n" +
	"\n" +
	"validation\x18\x02 \x01(\v2\x1e.pipetrak.v1.ValidationSummaryR\n" +
	"validation\x12;\n" +
	"\tdiscovery\x18\x03 \x01(\v2\x1d.pipetrak.v1.DiscoverySummaryR\tdiscovery\x12\x18\n" +
	"\ablocked\x18\x04 \x01(\bR\ablocked\x12!\n" +
	"\fblock_reason\x18\x05 \x01(\tR\vblockReason\"k\n" +
	"\x14ExecuteImportRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x18\n" +
	"\apayload\x18\x03 \x01(\fR\apayload\"\xe9\x02\n" +
	"\tImportJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"project_id\x18\x02 \x01(\tR\tprojectId\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"total_rows\x18\x05 \x01(\x05R\ttotalRows\x12\x1f\n" +
	"\vvalid_count\x18\x06 \x01(\x05R\n" +
	"validCount\x12#\n" +
	"\rskipped_count\x18\a \x01(\x05R\fskippedCount\x12\x1f\n" +
	"\verror_count\x18\b \x01(\x05R\n" +
	"errorCount\x12\x1f\n" +
	"\vresult_json\x18\t \x01(\tR\n" +
	"resultJson\x12\x14\n" +
	"\x05error\x18\n" +
	" \x01(\tR\x05error\x12\x1d\n" +
	"\n" +
	"created_at\x18\v \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\f \x01(\tR\tupdatedAt\"b\n" +
	"\x15ExecuteImportResponse\x12(\n" +
	"\x03job\x18\x01 \x01(\v2\x16.pipetrak.v1.ImportJobR\x03job\x12\x1f\n" +
	"\vresult_json\x18\x02 \x01(\tR\n" +
	"resultJson\"j\n" +
	"\x13SubmitImportRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x18\n" +
	"\apayload\x18\x03 \x01(\fR\apayload\"@\n" +
	"\x14SubmitImportResponse\x12(\n" +
	"\x03job\x18\x01 \x01(\v2\x16.pipetrak.v1.ImportJobR\x03job\",\n" +
	"\x13GetImportJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"@\n" +
	"\x14GetImportJobResponse\x12(\n" +
	"\x03job\x18\x01 \x01(\v2\x16.pipetrak.v1.ImportJobR\x03job2\xe9\x02\n" +
	"\rImportService\x12V\n" +
	"\rPreviewImport\x12!.pipetrak.v1.PreviewImportRequest\x1a\".pipetrak.v1.PreviewImportResponse\x12V\n" +
	"\rExecuteImport\x12!.pipetrak.v1.ExecuteImportRequest\x1a\".pipetrak.v1.ExecuteImportResponse\x12S\n" +
	"\fSubmitImport\x12 .pipetrak.v1.SubmitImportRequest\x1a!.pipetrak.v1.SubmitImportResponse\x12S\n" +
	"\fGetImportJob\x12 .pipetrak.v1.GetImportJobRequest\x1a!.pipetrak.v1.GetImportJobResponseB?Z=github.com/pipetrak/pipetrak/gen/proto/pipetrak/v1;pipetrakv1b\x06proto3"

var (
	file_pipetrak_v1_import_proto_rawDescOnce sync.Once
	file_pipetrak_v1_import_proto_rawDescData []byte
)

func file_pipetrak_v1_import_proto_rawDescGZIP() []byte {
	file_pipetrak_v1_import_proto_rawDescOnce.Do(func() {
		file_pipetrak_v1_import_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_pipetrak_v1_import_proto_rawDesc), len(file_pipetrak_v1_import_proto_rawDesc)))
	})
	return file_pipetrak_v1_import_proto_rawDescData
}

var file_pipetrak_v1_import_proto_msgTypes = make([]protoimpl.MessageInfo, 15)
var file_pipetrak_v1_import_proto_goTypes = []any{
	(*PreviewImportRequest)(nil),  // 0: pipetrak.v1.PreviewImportRequest
	(*ColumnMapping)(nil),         // 1: pipetrak.v1.ColumnMapping
	(*MappingSummary)(nil),        // 2: pipetrak.v1.MappingSummary
	(*RowIssue)(nil),              // 3: pipetrak.v1.RowIssue
	(*ValidationSummary)(nil),     // 4: pipetrak.v1.ValidationSummary
	(*DiscoveryItem)(nil),         // 5: pipetrak.v1.DiscoveryItem
	(*DiscoverySummary)(nil),      // 6: pipetrak.v1.DiscoverySummary
	(*PreviewImportResponse)(nil), // 7: pipetrak.v1.PreviewImportResponse
	(*ExecuteImportRequest)(nil),  // 8: pipetrak.v1.ExecuteImportRequest
	(*ImportJob)(nil),             // 9: pipetrak.v1.ImportJob
	(*ExecuteImportResponse)(nil), // 10: pipetrak.v1.ExecuteImportResponse
	(*SubmitImportRequest)(nil),   // 11: pipetrak.v1.SubmitImportRequest
	(*SubmitImportResponse)(nil),  // 12: pipetrak.v1.SubmitImportResponse
	(*GetImportJobRequest)(nil),   // 13: pipetrak.v1.GetImportJobRequest
	(*GetImportJobResponse)(nil),  // 14: pipetrak.v1.GetImportJobResponse
}
var file_pipetrak_v1_import_proto_depIdxs = []int32{
	1,  // 0: pipetrak.v1.MappingSummary.mappings:type_name -> pipetrak.v1.ColumnMapping
	3,  // 1: pipetrak.v1.ValidationSummary.issues:type_name -> pipetrak.v1.RowIssue
	5,  // 2: pipetrak.v1.DiscoverySummary.items:type_name -> pipetrak.v1.DiscoveryItem
	2,  // 3: pipetrak.v1.PreviewImportResponse.mapping:type_name -> pipetrak.v1.MappingSummary
	4,  // 4: pipetrak.v1.PreviewImportResponse.validation:type_name -> pipetrak.v1.ValidationSummary
	6,  // 5: pipetrak.v1.PreviewImportResponse.discovery:type_name -> pipetrak.v1.DiscoverySummary
	9,  // 6: pipetrak.v1.ExecuteImportResponse.job:type_name -> pipetrak.v1.ImportJob
	9,  // 7: pipetrak.v1.SubmitImportResponse.job:type_name -> pipetrak.v1.ImportJob
	9,  // 8: pipetrak.v1.GetImportJobResponse.job:type_name -> pipetrak.v1.ImportJob
	0,  // 9: pipetrak.v1.ImportService.PreviewImport:input_type -> pipetrak.v1.PreviewImportRequest
	8,  // 10: pipetrak.v1.ImportService.ExecuteImport:input_type -> pipetrak.v1.ExecuteImportRequest
	11, // 11: pipetrak.v1.ImportService.SubmitImport:input_type -> pipetrak.v1.SubmitImportRequest
	13, // 12: pipetrak.v1.ImportService.GetImportJob:input_type -> pipetrak.v1.GetImportJobRequest
	7,  // 13: pipetrak.v1.ImportService.PreviewImport:output_type -> pipetrak.v1.PreviewImportResponse
	10, // 14: pipetrak.v1.ImportService.ExecuteImport:output_type -> pipetrak.v1.ExecuteImportResponse
	12, // 15: pipetrak.v1.ImportService.SubmitImport:output_type -> pipetrak.v1.SubmitImportResponse
	14, // 16: pipetrak.v1.ImportService.GetImportJob:output_type -> pipetrak.v1.GetImportJobResponse
	13, // [13:17] is the sub-list for method output_type
	9,  // [9:13] is the sub-list for method input_type
	9,  // [9:9] is the sub-list for extension type_name
	9,  // [9:9] is the sub-list for extension extendee
	0,  // [0:9] is the sub-list for field type_name
}

func init() { file_pipetrak_v1_import_proto_init() }
func file_pipetrak_v1_import_proto_init() {
	if File_pipetrak_v1_import_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_pipetrak_v1_import_proto_rawDesc), len(file_pipetrak_v1_import_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   15,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_pipetrak_v1_import_proto_goTypes,
		DependencyIndexes: file_pipetrak_v1_import_proto_depIdxs,
		MessageInfos:      file_pipetrak_v1_import_proto_msgTypes,
	}.Build()
	File_pipetrak_v1_import_proto = out.File
	file_pipetrak_v1_import_proto_goTypes = nil
	file_pipetrak_v1_import_proto_depIdxs = nil
}
