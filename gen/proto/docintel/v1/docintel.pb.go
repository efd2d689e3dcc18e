// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: docintel/v1/docintel.proto

package docintelv1

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

type Document struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	TenantId       string                 `protobuf:"bytes,2,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	FileName       string                 `protobuf:"bytes,3,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	FilePath       string                 `protobuf:"bytes,4,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	DocumentType   string                 `protobuf:"bytes,5,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	Language       string                 `protobuf:"bytes,6,opt,name=language,proto3" json:"language,omitempty"`
	Status         string                 `protobuf:"bytes,7,opt,name=status,proto3" json:"status,omitempty"`
	Classification string                 `protobuf:"bytes,8,opt,name=classification,proto3" json:"classification,omitempty"`
	Tags           []string               `protobuf:"bytes,9,rep,name=tags,proto3" json:"tags,omitempty"`
	ClientId       string                 `protobuf:"bytes,10,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	PortfolioId    string                 `protobuf:"bytes,11,opt,name=portfolio_id,json=portfolioId,proto3" json:"portfolio_id,omitempty"`
	DocumentDate   string                 `protobuf:"bytes,12,opt,name=document_date,json=documentDate,proto3" json:"document_date,omitempty"` // YYYY-MM-DD
	CreatedAt      string                 `protobuf:"bytes,13,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`          // RFC 3339
	UpdatedAt      string                 `protobuf:"bytes,14,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_docintel_v1_docintel_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_docintel_v1_docintel_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_docintel_v1_docintel_proto_rawDescGZIP(), []int{0}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *Document) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *Document) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

func (x *Document) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *Document) GetLanguage() string {
	if x != nil {
		return x.Language
	}
	return ""
}

func (x *Document) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Document) GetClassification() string {
	if x != nil {
		return x.Classification
	}
	return ""
}

func (x *Document) GetTags() []string {
	if x != nil {
		return x.Tags
	}
	return nil
}

func (x *Document) GetClientId() string {
	if x != nil {
		return x.ClientId
	}
	return ""
}

func (x *Document) GetPortfolioId() string {
	if x != nil {
		return x.PortfolioId
	}
	return ""
}

func (x *Document) GetDocumentDate() string {
	if x != nil {
		return x.DocumentDate
	}
	return ""
}

func (x *Document) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Document) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ProcessJob struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId    string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	Stage         string                 `protobuf:"bytes,4,opt,name=stage,proto3" json:"stage,omitempty"`
	Confidence    float64                `protobuf:"fixed64,5,opt,name=confidence,proto3" json:"confidence,omitempty"`
	TemplateId    string                 `protobuf:"bytes,6,opt,name=template_id,json=templateId,proto3" json:"template_id,omitempty"`
	Error         string                 `protobuf:"bytes,7,opt,name=error,proto3" json:"error,omitempty"`
	StartedAt     string                 `protobuf:"bytes,8,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt    string                 `protobuf:"bytes,9,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessJob) Reset() {
	*x = ProcessJob{}
	mi := &file_docintel_v1_docintel_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessJob) ProtoMessage() {}

func (x *ProcessJob) ProtoReflect() protoreflect.Message {
	mi := &file_docintel_v1_docintel_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessJob.ProtoReflect.Descriptor instead.
func (*ProcessJob) Descriptor() ([]byte, []int) {
	return file_docintel_v1_docintel_proto_rawDescGZIP(), []int{1}
}

func (x *ProcessJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ProcessJob) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ProcessJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ProcessJob) GetStage() string {
	if x != nil {
		return x.Stage
	}
	return ""
}

func (x *ProcessJob) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *ProcessJob) GetTemplateId() string {
	if x != nil {
		return x.TemplateId
	}
	return ""
}

func (x *ProcessJob) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

func (x *ProcessJob) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *ProcessJob) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

type ExtractedField struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	FieldName        string                 `protobuf:"bytes,1,opt,name=field_name,json=fieldName,proto3" json:"field_name,omitempty"`
	FieldType        string                 `protobuf:"bytes,2,opt,name=field_type,json=fieldType,proto3" json:"field_type,omitempty"`
	Value            string                 `protobuf:"bytes,3,opt,name=value,proto3" json:"value,omitempty"`
	Raw              string                 `protobuf:"bytes,4,opt,name=raw,proto3" json:"raw,omitempty"`
	Confidence       float64                `protobuf:"fixed64,5,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Source           string                 `protobuf:"bytes,6,opt,name=source,proto3" json:"source,omitempty"`
	ValidationPassed bool                   `protobuf:"varint,7,opt,name=validation_passed,json=validationPassed,proto3" json:"validation_passed,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ExtractedField) Reset() {
	*x = ExtractedField{}
	mi := &file_docintel_v1_docintel_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractedField) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractedField) ProtoMessage() {}

func (x *ExtractedField) ProtoReflect() protoreflect.Message {
	mi := &file_docintel_v1_docintel_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractedField.ProtoReflect.Descriptor instead.
func (*ExtractedField) Descriptor() ([]byte, []int) {
	return file_docintel_v1_docintel_proto_rawDescGZIP(), []int{2}
}

func (x *ExtractedField) GetFieldName() string {
	if x != nil {
		return x.FieldName
	}
	return ""
}

func (x *ExtractedField) GetFieldType() string {
	if x != nil {
		return x.FieldType
	}
	return ""
}

func (x *ExtractedField) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

func (x *ExtractedField) GetRaw() string {
	if x != nil {
		return x.Raw
	}
	return ""
}

func (x *ExtractedField) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *ExtractedField) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *ExtractedField) GetValidationPassed() bool {
	if x != nil {
		return x.ValidationPassed
	}
	return false
}

type ProcessDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentRequest) Reset() {
	*x = ProcessDocumentRequest{}
	mi := &file_docintel_v1_docintel_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentRequest) ProtoMessage() {}

func (x *ProcessDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docintel_v1_docintel_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentRequest.ProtoReflect.Descriptor instead.
func (*ProcessDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docintel_v1_docintel_proto_rawDescGZIP(), []int{3}
}

func (x *ProcessDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type ProcessDocumentResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Job            *ProcessJob            `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	DocumentType   string                 `protobuf:"bytes,2,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	Confidence     float64                `protobuf:"fixed64,3,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Fields         []*ExtractedField      `protobuf:"bytes,4,rep,name=fields,proto3" json:"fields,omitempty"`
	TargetFolder   string                 `protobuf:"bytes,5,opt,name=target_folder,json=targetFolder,proto3" json:"target_folder,omitempty"`
	Classification string                 `protobuf:"bytes,6,opt,name=classification,proto3" json:"classification,omitempty"`
	Tags           []string               `protobuf:"bytes,7,rep,name=tags,proto3" json:"tags,omitempty"`
	Errors         []string               `protobuf:"bytes,8,rep,name=errors,proto3" json:"errors,omitempty"` // recovered, non-fatal
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ProcessDocumentResponse) Reset() {
	*x = ProcessDocumentResponse{}
	mi := &file_docintel_v1_docintel_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentResponse) ProtoMessage() {}

func (x *ProcessDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docintel_v1_docintel_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentResponse.ProtoReflect.Descriptor instead.
func (*ProcessDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docintel_v1_docintel_proto_rawDescGZIP(), []int{4}
}

func (x *ProcessDocumentResponse) GetJob() *ProcessJob {
	if x != nil {
		return x.Job
	}
	return nil
}

func (x *ProcessDocumentResponse) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *ProcessDocumentResponse) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *ProcessDocumentResponse) GetFields() []*ExtractedField {
	if x != nil {
		return x.Fields
	}
	return nil
}

func (x *ProcessDocumentResponse) GetTargetFolder() string {
	if x != nil {
		return x.TargetFolder
	}
	return ""
}

func (x *ProcessDocumentResponse) GetClassification() string {
	if x != nil {
		return x.Classification
	}
	return ""
}

func (x *ProcessDocumentResponse) GetTags() []string {
	if x != nil {
		return x.Tags
	}
	return nil
}

func (x *ProcessDocumentResponse) GetErrors() []string {
	if x != nil {
		return x.Errors
	}
	return nil
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_docintel_v1_docintel_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docintel_v1_docintel_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docintel_v1_docintel_proto_rawDescGZIP(), []int{5}
}

func (x *GetDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_docintel_v1_docintel_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docintel_v1_docintel_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docintel_v1_docintel_proto_rawDescGZIP(), []int{6}
}

func (x *GetDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TenantId      string                 `protobuf:"bytes,1,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,3,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_docintel_v1_docintel_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docintel_v1_docintel_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_docintel_v1_docintel_proto_rawDescGZIP(), []int{7}
}

func (x *ListDocumentsRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *ListDocumentsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListDocumentsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_docintel_v1_docintel_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docintel_v1_docintel_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_docintel_v1_docintel_proto_rawDescGZIP(), []int{8}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type ListJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsRequest) Reset() {
	*x = ListJobsRequest{}
	mi := &file_docintel_v1_docintel_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsRequest) ProtoMessage() {}

func (x *ListJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docintel_v1_docintel_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsRequest.ProtoReflect.Descriptor instead.
func (*ListJobsRequest) Descriptor() ([]byte, []int) {
	return file_docintel_v1_docintel_proto_rawDescGZIP(), []int{9}
}

func (x *ListJobsRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type ListJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*ProcessJob          `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsResponse) Reset() {
	*x = ListJobsResponse{}
	mi := &file_docintel_v1_docintel_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsResponse) ProtoMessage() {}

func (x *ListJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docintel_v1_docintel_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsResponse.ProtoReflect.Descriptor instead.
func (*ListJobsResponse) Descriptor() ([]byte, []int) {
	return file_docintel_v1_docintel_proto_rawDescGZIP(), []int{10}
}

func (x *ListJobsResponse) GetJobs() []*ProcessJob {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type Template struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	Id                  string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name                string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	DocumentType        string                 `protobuf:"bytes,3,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	Language            string                 `protobuf:"bytes,4,opt,name=language,proto3" json:"language,omitempty"`
	IsActive            bool                   `protobuf:"varint,5,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	PatternCount        int32                  `protobuf:"varint,6,opt,name=pattern_count,json=patternCount,proto3" json:"pattern_count,omitempty"`
	ExtractionRuleCount int32                  `protobuf:"varint,7,opt,name=extraction_rule_count,json=extractionRuleCount,proto3" json:"extraction_rule_count,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *Template) Reset() {
	*x = Template{}
	mi := &file_docintel_v1_docintel_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Template) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Template) ProtoMessage() {}

func (x *Template) ProtoReflect() protoreflect.Message {
	mi := &file_docintel_v1_docintel_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Template.ProtoReflect.Descriptor instead.
func (*Template) Descriptor() ([]byte, []int) {
	return file_docintel_v1_docintel_proto_rawDescGZIP(), []int{11}
}

func (x *Template) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Template) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Template) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *Template) GetLanguage() string {
	if x != nil {
		return x.Language
	}
	return ""
}

func (x *Template) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

func (x *Template) GetPatternCount() int32 {
	if x != nil {
		return x.PatternCount
	}
	return 0
}

func (x *Template) GetExtractionRuleCount() int32 {
	if x != nil {
		return x.ExtractionRuleCount
	}
	return 0
}

type ListTemplatesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Language      string                 `protobuf:"bytes,1,opt,name=language,proto3" json:"language,omitempty"` // empty lists all languages
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTemplatesRequest) Reset() {
	*x = ListTemplatesRequest{}
	mi := &file_docintel_v1_docintel_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTemplatesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTemplatesRequest) ProtoMessage() {}

func (x *ListTemplatesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docintel_v1_docintel_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTemplatesRequest.ProtoReflect.Descriptor instead.
func (*ListTemplatesRequest) Descriptor() ([]byte, []int) {
	return file_docintel_v1_docintel_proto_rawDescGZIP(), []int{12}
}

func (x *ListTemplatesRequest) GetLanguage() string {
	if x != nil {
		return x.Language
	}
	return ""
}

type ListTemplatesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Templates     []*Template            `protobuf:"bytes,1,rep,name=templates,proto3" json:"templates,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTemplatesResponse) Reset() {
	*x = ListTemplatesResponse{}
	mi := &file_docintel_v1_docintel_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTemplatesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTemplatesResponse) ProtoMessage() {}

func (x *ListTemplatesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docintel_v1_docintel_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTemplatesResponse.ProtoReflect.Descriptor instead.
func (*ListTemplatesResponse) Descriptor() ([]byte, []int) {
	return file_docintel_v1_docintel_proto_rawDescGZIP(), []int{13}
}

func (x *ListTemplatesResponse) GetTemplates() []*Template {
	if x != nil {
		return x.Templates
	}
	return nil
}

type FilingRule struct {
	state                   protoimpl.MessageState `protogen:"open.v1"`
	Id                      string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name                    string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Priority                int32                  `protobuf:"varint,3,opt,name=priority,proto3" json:"priority,omitempty"`
	IsActive                bool                   `protobuf:"varint,4,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	ApplicableDocumentTypes []string               `protobuf:"bytes,5,rep,name=applicable_document_types,json=applicableDocumentTypes,proto3" json:"applicable_document_types,omitempty"`
	ConditionCount          int32                  `protobuf:"varint,6,opt,name=condition_count,json=conditionCount,proto3" json:"condition_count,omitempty"`
	ActionCount             int32                  `protobuf:"varint,7,opt,name=action_count,json=actionCount,proto3" json:"action_count,omitempty"`
	unknownFields           protoimpl.UnknownFields
	sizeCache               protoimpl.SizeCache
}

func (x *FilingRule) Reset() {
	*x = FilingRule{}
	mi := &file_docintel_v1_docintel_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FilingRule) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FilingRule) ProtoMessage() {}

func (x *FilingRule) ProtoReflect() protoreflect.Message {
	mi := &file_docintel_v1_docintel_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FilingRule.ProtoReflect.Descriptor instead.
func (*FilingRule) Descriptor() ([]byte, []int) {
	return file_docintel_v1_docintel_proto_rawDescGZIP(), []int{14}
}

func (x *FilingRule) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *FilingRule) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *FilingRule) GetPriority() int32 {
	if x != nil {
		return x.Priority
	}
	return 0
}

func (x *FilingRule) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

func (x *FilingRule) GetApplicableDocumentTypes() []string {
	if x != nil {
		return x.ApplicableDocumentTypes
	}
	return nil
}

func (x *FilingRule) GetConditionCount() int32 {
	if x != nil {
		return x.ConditionCount
	}
	return 0
}

func (x *FilingRule) GetActionCount() int32 {
	if x != nil {
		return x.ActionCount
	}
	return 0
}

type ListRulesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRulesRequest) Reset() {
	*x = ListRulesRequest{}
	mi := &file_docintel_v1_docintel_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRulesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRulesRequest) ProtoMessage() {}

func (x *ListRulesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docintel_v1_docintel_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRulesRequest.ProtoReflect.Descriptor instead.
func (*ListRulesRequest) Descriptor() ([]byte, []int) {
	return file_docintel_v1_docintel_proto_rawDescGZIP(), []int{15}
}

type ListRulesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rules         []*FilingRule          `protobuf:"bytes,1,rep,name=rules,proto3" json:"rules,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRulesResponse) Reset() {
	*x = ListRulesResponse{}
	mi := &file_docintel_v1_docintel_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRulesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRulesResponse) ProtoMessage() {}

func (x *ListRulesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docintel_v1_docintel_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRulesResponse.ProtoReflect.Descriptor instead.
func (*ListRulesResponse) Descriptor() ([]byte, []int) {
	return file_docintel_v1_docintel_proto_rawDescGZIP(), []int{16}
}

func (x *ListRulesResponse) GetRules() []*FilingRule {
	if x != nil {
		return x.Rules
	}
	return nil
}

type IngestFileRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	TenantId       string                 `protobuf:"bytes,1,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	Path           string                 `protobuf:"bytes,2,opt,name=path,proto3" json:"path,omitempty"`
	SkipDuplicates bool                   `protobuf:"varint,3,opt,name=skip_duplicates,json=skipDuplicates,proto3" json:"skip_duplicates,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestFileRequest) Reset() {
	*x = IngestFileRequest{}
	mi := &file_docintel_v1_docintel_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestFileRequest) ProtoMessage() {}

func (x *IngestFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docintel_v1_docintel_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestFileRequest.ProtoReflect.Descriptor instead.
func (*IngestFileRequest) Descriptor() ([]byte, []int) {
	return file_docintel_v1_docintel_proto_rawDescGZIP(), []int{17}
}

func (x *IngestFileRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *IngestFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *IngestFileRequest) GetSkipDuplicates() bool {
	if x != nil {
		return x.SkipDuplicates
	}
	return false
}

type IngestResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	DocumentId     string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	FileExt        string                 `protobuf:"bytes,4,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	IngestedAt     string                 `protobuf:"bytes,5,opt,name=ingested_at,json=ingestedAt,proto3" json:"ingested_at,omitempty"`
	SourcePath     string                 `protobuf:"bytes,6,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Error          string                 `protobuf:"bytes,7,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestResponse) Reset() {
	*x = IngestResponse{}
	mi := &file_docintel_v1_docintel_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestResponse) ProtoMessage() {}

func (x *IngestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docintel_v1_docintel_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestResponse.ProtoReflect.Descriptor instead.
func (*IngestResponse) Descriptor() ([]byte, []int) {
	return file_docintel_v1_docintel_proto_rawDescGZIP(), []int{18}
}

func (x *IngestResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *IngestResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *IngestResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *IngestResponse) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *IngestResponse) GetIngestedAt() string {
	if x != nil {
		return x.IngestedAt
	}
	return ""
}

func (x *IngestResponse) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *IngestResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type IngestDirectoryRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	TenantId       string                 `protobuf:"bytes,1,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	RootPath       string                 `protobuf:"bytes,2,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	SkipHidden     bool                   `protobuf:"varint,3,opt,name=skip_hidden,json=skipHidden,proto3" json:"skip_hidden,omitempty"`
	SkipDuplicates bool                   `protobuf:"varint,4,opt,name=skip_duplicates,json=skipDuplicates,proto3" json:"skip_duplicates,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestDirectoryRequest) Reset() {
	*x = IngestDirectoryRequest{}
	mi := &file_docintel_v1_docintel_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryRequest) ProtoMessage() {}

func (x *IngestDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docintel_v1_docintel_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryRequest.ProtoReflect.Descriptor instead.
func (*IngestDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_docintel_v1_docintel_proto_rawDescGZIP(), []int{19}
}

func (x *IngestDirectoryRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *IngestDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *IngestDirectoryRequest) GetSkipHidden() bool {
	if x != nil {
		return x.SkipHidden
	}
	return false
}

func (x *IngestDirectoryRequest) GetSkipDuplicates() bool {
	if x != nil {
		return x.SkipDuplicates
	}
	return false
}

type IngestDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scanned       uint32                 `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                 `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     uint32                 `protobuf:"varint,3,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Deduplicated  uint32                 `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Failed        uint32                 `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Results       []*IngestResponse      `protobuf:"bytes,6,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryResponse) Reset() {
	*x = IngestDirectoryResponse{}
	mi := &file_docintel_v1_docintel_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryResponse) ProtoMessage() {}

func (x *IngestDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docintel_v1_docintel_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryResponse.ProtoReflect.Descriptor instead.
func (*IngestDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_docintel_v1_docintel_proto_rawDescGZIP(), []int{20}
}

func (x *IngestDirectoryResponse) GetScanned() uint32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *IngestDirectoryResponse) GetMatched() uint32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *IngestDirectoryResponse) GetSucceeded() uint32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *IngestDirectoryResponse) GetDeduplicated() uint32 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

func (x *IngestDirectoryResponse) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *IngestDirectoryResponse) GetResults() []*IngestResponse {
	if x != nil {
		return x.Results
	}
	return nil
}

type ExportDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TenantId      string                 `protobuf:"bytes,1,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentsRequest) Reset() {
	*x = ExportDocumentsRequest{}
	mi := &file_docintel_v1_docintel_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsRequest) ProtoMessage() {}

func (x *ExportDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docintel_v1_docintel_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ExportDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_docintel_v1_docintel_proto_rawDescGZIP(), []int{21}
}

func (x *ExportDocumentsRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

type ExportDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentsResponse) Reset() {
	*x = ExportDocumentsResponse{}
	mi := &file_docintel_v1_docintel_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsResponse) ProtoMessage() {}

func (x *ExportDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docintel_v1_docintel_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ExportDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_docintel_v1_docintel_proto_rawDescGZIP(), []int{22}
}

func (x *ExportDocumentsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_docintel_v1_docintel_proto protoreflect.FileDescriptor

const file_docintel_v1_docintel_proto_rawDesc = "" +
	"\n" +
	"\x1adocintel/v1/docintel.proto\x12\vdocintel.v1\"\xa9\x03\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\ttenant_id\x18\x02 \x01(\tR\btenantId\x12\x1b\n" +
	"\tfile_name\x18\x03 \x01(\tR\bfileName\x12\x1b\n" +
	"\tfile_path\x18\x04 \x01(\tR\bfilePath\x12#\n" +
	"\rdocument_type\x18\x05 \x01(\tR\fdocumentType\x12\x1a\n" +
	"\blanguage\x18\x06 \x01(\tR\blanguage\x12\x16\n" +
	"\x06status\x18\a \x01(\tR\x06status\x12&\n" +
	"\x0eclassification\x18\b \x01(\tR\x0eclassification\x12\x12\n" +
	"\x04tags\x18\t \x03(\tR\x04tags\x12\x1b\n" +
	"\tclient_id\x18\n" +
	" \x01(\tR\bclientId\x12!\n" +
	"\fportfolio_id\x18\v \x01(\tR\vportfolioId\x12#\n" +
	"\rdocument_date\x18\f \x01(\tR\fdocumentDate\x12\x1d\n" +
	"\n" +
	"created_at\x18\r \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x0e \x01(\tR\tupdatedAt\"\x82\x02\n" +
	"\n" +
	"ProcessJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x14\n" +
	"\x05stage\x18\x04 \x01(\tR\x05stage\x12\x1e\n" +
	"\n" +
	"confidence\x18\x05 \x01(\x01R\n" +
	"confidence\x12\x1f\n" +
	"\vtemplate_id\x18\x06 \x01(\tR\n" +
	"templateId\x12\x14\n" +
	"\x05error\x18\a \x01(\tR\x05error\x12\x1d\n" +
	"\n" +
	"started_at\x18\b \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\t \x01(\tR\n" +
	"finishedAt\"\xdb\x01\n" +
	"\x0eExtractedField\x12\x1d\n" +
	"\n" +
	"field_name\x18\x01 \x01(\tR\tfieldName\x12\x1d\n" +
	"\n" +
	"field_type\x18\x02 \x01(\tR\tfieldType\x12\x14\n" +
	"\x05value\x18\x03 \x01(\tR\x05value\x12\x10\n" +
	"\x03raw\x18\x04 \x01(\tR\x03raw\x12\x1e\n" +
	"\n" +
	"confidence\x18\x05 \x01(\x01R\n" +
	"confidence\x12\x16\n" +
	"\x06source\x18\x06 \x01(\tR\x06source\x12+\n" +
	"\x11validation_passed\x18\a \x01(\bR\x10validationPassed\"9\n" +
	"\x16ProcessDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"\xb7\x02\n" +
	"\x17ProcessDocumentResponse\x12)\n" +
	"\x03job\x18\x01 \x01(\v2\x17.docintel.v1.ProcessJobR\x03job\x12#\n" +
	"\rdocument_type\x18\x02 \x01(\tR\fdocumentType\x12\x1e\n" +
	"\n" +
	"confidence\x18\x03 \x01(\x01R\n" +
	"confidence\x123\n" +
	"\x06fields\x18\x04 \x03(\v2\x1b.docintel.v1.ExtractedFieldR\x06fields\x12#\n" +
	"\rtarget_folder\x18\x05 \x01(\tR\ftargetFolder\x12&\n" +
	"\x0eclassification\x18\x06 \x01(\tR\x0eclassification\x12\x12\n" +
	"\x04tags\x18\a \x03(\tR\x04tags\x12\x16\n" +
	"\x06errors\x18\b \x03(\tR\x06errors\"5\n" +
	"\x12GetDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"H\n" +
	"\x13GetDocumentResponse\x121\n" +
	"\bdocument\x18\x01 \x01(\v2\x15.docintel.v1.DocumentR\bdocument\"a\n" +
	"\x14ListDocumentsRequest\x12\x1b\n" +
	"\ttenant_id\x18\x01 \x01(\tR\btenantId\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x03 \x01(\x05R\x06offset\"L\n" +
	"\x15ListDocumentsResponse\x123\n" +
	"\tdocuments\x18\x01 \x03(\v2\x15.docintel.v1.DocumentR\tdocuments\"2\n" +
	"\x0fListJobsRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"?\n" +
	"\x10ListJobsResponse\x12+\n" +
	"\x04jobs\x18\x01 \x03(\v2\x17.docintel.v1.ProcessJobR\x04jobs\"\xe5\x01\n" +
	"\bTemplate\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12#\n" +
	"\rdocument_type\x18\x03 \x01(\tR\fdocumentType\x12\x1a\n" +
	"\blanguage\x18\x04 \x01(\tR\blanguage\x12\x1b\n" +
	"\tis_active\x18\x05 \x01(\bR\bisActive\x12#\n" +
	"\rpattern_count\x18\x06 \x01(\x05R\fpatternCount\x122\n" +
	"\x15extraction_rule_count\x18\a \x01(\x05R\x13extractionRuleCount\"2\n" +
	"\x14ListTemplatesRequest\x12\x1a\n" +
	"\blanguage\x18\x01 \x01(\tR\blanguage\"L\n" +
	"\x15ListTemplatesResponse\x123\n" +
	"\ttemplates\x18\x01 \x03(\v2\x15.docintel.v1.TemplateR\ttemplates\"\xf1\x01\n" +
	"\n" +
	"FilingRule\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1a\n" +
	"\bpriority\x18\x03 \x01(\x05R\bpriority\x12\x1b\n" +
	"\tis_active\x18\x04 \x01(\bR\bisActive\x12:\n" +
	"\x19applicable_document_types\x18\x05 \x03(\tR\x17applicableDocumentTypes\x12'\n" +
	"\x0fcondition_count\x18\x06 \x01(\x05R\x0econditionCount\x12!\n" +
	"\faction_count\x18\a \x01(\x05R\vactionCount\"\x12\n" +
	"\x10ListRulesRequest\"B\n" +
	"\x11ListRulesResponse\x12-\n" +
	"\x05rules\x18\x01 \x03(\v2\x17.docintel.v1.FilingRuleR\x05rules\"m\n" +
	"\x11IngestFileRequest\x12\x1b\n" +
	"\ttenant_id\x18\x01 \x01(\tR\btenantId\x12\x12\n" +
	"\x04path\x18\x02 \x01(\tR\x04path\x12'\n" +
	"\x0fskip_duplicates\x18\x03 \x01(\bR\x0eskipDuplicates\"\xf2\x01\n" +
	"\x0eIngestResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x19\n" +
	"\bfile_ext\x18\x04 \x01(\tR\afileExt\x12\x1f\n" +
	"\vingested_at\x18\x05 \x01(\tR\n" +
	"ingestedAt\x12\x1f\n" +
	"\vsource_path\x18\x06 \x01(\tR\n" +
	"sourcePath\x12\x14\n" +
	"\x05error\x18\a \x01(\tR\x05error\"\x9c\x01\n" +
	"\x16IngestDirectoryRequest\x12\x1b\n" +
	"\ttenant_id\x18\x01 \x01(\tR\btenantId\x12\x1b\n" +
	"\troot_path\x18\x02 \x01(\tR\brootPath\x12\x1f\n" +
	"\vskip_hidden\x18\x03 \x01(\bR\n" +
	"skipHidden\x12'\n" +
	"\x0fskip_duplicates\x18\x04 \x01(\bR\x0eskipDuplicates\"\xde\x01\n" +
	"\x17IngestDirectoryResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x02 \x01(\rR\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x03 \x01(\rR\tsucceeded\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\rR\fdeduplicated\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\rR\x06failed\x125\n" +
	"\aresults\x18\x06 \x03(\v2\x1b.docintel.v1.IngestResponseR\aresults\"5\n" +
	"\x16ExportDocumentsRequest\x12\x1b\n" +
	"\ttenant_id\x18\x01 \x01(\tR\btenantId\"-\n" +
	"\x17ExportDocumentsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xe3\x02\n" +
	"\x10DocumentsService\x12\\\n" +
	"\x0fProcessDocument\x12#.docintel.v1.ProcessDocumentRequest\x1a$.docintel.v1.ProcessDocumentResponse\x12P\n" +
	"\vGetDocument\x12\x1f.docintel.v1.GetDocumentRequest\x1a .docintel.v1.GetDocumentResponse\x12V\n" +
	"\rListDocuments\x12!.docintel.v1.ListDocumentsRequest\x1a\".docintel.v1.ListDocumentsResponse\x12G\n" +
	"\bListJobs\x12\x1c.docintel.v1.ListJobsRequest\x1a\x1d.docintel.v1.ListJobsResponse2j\n" +
	"\x10TemplatesService\x12V\n" +
	"\rListTemplates\x12!.docintel.v1.ListTemplatesRequest\x1a\".docintel.v1.ListTemplatesResponse2Z\n" +
	"\fRulesService\x12J\n" +
	"\tListRules\x12\x1d.docintel.v1.ListRulesRequest\x1a\x1e.docintel.v1.ListRulesResponse2\xbb\x01\n" +
	"\x10IngestionService\x12I\n" +
	"\n" +
	"IngestFile\x12\x1e.docintel.v1.IngestFileRequest\x1a\x1b.docintel.v1.IngestResponse\x12\\\n" +
	"\x0fIngestDirectory\x12#.docintel.v1.IngestDirectoryRequest\x1a$.docintel.v1.IngestDirectoryResponse2m\n" +
	"\rExportService\x12\\\n" +
	"\x0fExportDocuments\x12#.docintel.v1.ExportDocumentsRequest\x1a$.docintel.v1.ExportDocumentsResponseB@Z>github.com/docuvault/docintel/gen/proto/docintel/v1;docintelv1b\x06proto3"

var (
	file_docintel_v1_docintel_proto_rawDescOnce sync.Once
	file_docintel_v1_docintel_proto_rawDescData []byte
)

func file_docintel_v1_docintel_proto_rawDescGZIP() []byte {
	file_docintel_v1_docintel_proto_rawDescOnce.Do(func() {
		file_docintel_v1_docintel_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_docintel_v1_docintel_proto_rawDesc), len(file_docintel_v1_docintel_proto_rawDesc)))
	})
	return file_docintel_v1_docintel_proto_rawDescData
}

var file_docintel_v1_docintel_proto_msgTypes = make([]protoimpl.MessageInfo, 23)
var file_docintel_v1_docintel_proto_goTypes = []any{
	(*Document)(nil),                // 0: docintel.v1.Document
	(*ProcessJob)(nil),              // 1: docintel.v1.ProcessJob
	(*ExtractedField)(nil),          // 2: docintel.v1.ExtractedField
	(*ProcessDocumentRequest)(nil),  // 3: docintel.v1.ProcessDocumentRequest
	(*ProcessDocumentResponse)(nil), // 4: docintel.v1.ProcessDocumentResponse
	(*GetDocumentRequest)(nil),      // 5: docintel.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),     // 6: docintel.v1.GetDocumentResponse
	(*ListDocumentsRequest)(nil),    // 7: docintel.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),   // 8: docintel.v1.ListDocumentsResponse
	(*ListJobsRequest)(nil),         // 9: docintel.v1.ListJobsRequest
	(*ListJobsResponse)(nil),        // 10: docintel.v1.ListJobsResponse
	(*Template)(nil),                // 11: docintel.v1.Template
	(*ListTemplatesRequest)(nil),    // 12: docintel.v1.ListTemplatesRequest
	(*ListTemplatesResponse)(nil),   // 13: docintel.v1.ListTemplatesResponse
	(*FilingRule)(nil),              // 14: docintel.v1.FilingRule
	(*ListRulesRequest)(nil),        // 15: docintel.v1.ListRulesRequest
	(*ListRulesResponse)(nil),       // 16: docintel.v1.ListRulesResponse
	(*IngestFileRequest)(nil),       // 17: docintel.v1.IngestFileRequest
	(*IngestResponse)(nil),          // 18: docintel.v1.IngestResponse
	(*IngestDirectoryRequest)(nil),  // 19: docintel.v1.IngestDirectoryRequest
	(*IngestDirectoryResponse)(nil), // 20: docintel.v1.IngestDirectoryResponse
	(*ExportDocumentsRequest)(nil),  // 21: docintel.v1.ExportDocumentsRequest
	(*ExportDocumentsResponse)(nil), // 22: docintel.v1.ExportDocumentsResponse
}
var file_docintel_v1_docintel_proto_depIdxs = []int32{
	1,  // 0: docintel.v1.ProcessDocumentResponse.job:type_name -> docintel.v1.ProcessJob
	2,  // 1: docintel.v1.ProcessDocumentResponse.fields:type_name -> docintel.v1.ExtractedField
	0,  // 2: docintel.v1.GetDocumentResponse.document:type_name -> docintel.v1.Document
	0,  // 3: docintel.v1.ListDocumentsResponse.documents:type_name -> docintel.v1.Document
	1,  // 4: docintel.v1.ListJobsResponse.jobs:type_name -> docintel.v1.ProcessJob
	11, // 5: docintel.v1.ListTemplatesResponse.templates:type_name -> docintel.v1.Template
	14, // 6: docintel.v1.ListRulesResponse.rules:type_name -> docintel.v1.FilingRule
	18, // 7: docintel.v1.IngestDirectoryResponse.results:type_name -> docintel.v1.IngestResponse
	3,  // 8: docintel.v1.DocumentsService.ProcessDocument:input_type -> docintel.v1.ProcessDocumentRequest
	5,  // 9: docintel.v1.DocumentsService.GetDocument:input_type -> docintel.v1.GetDocumentRequest
	7,  // 10: docintel.v1.DocumentsService.ListDocuments:input_type -> docintel.v1.ListDocumentsRequest
	9,  // 11: docintel.v1.DocumentsService.ListJobs:input_type -> docintel.v1.ListJobsRequest
	12, // 12: docintel.v1.TemplatesService.ListTemplates:input_type -> docintel.v1.ListTemplatesRequest
	15, // 13: docintel.v1.RulesService.ListRules:input_type -> docintel.v1.ListRulesRequest
	17, // 14: docintel.v1.IngestionService.IngestFile:input_type -> docintel.v1.IngestFileRequest
	19, // 15: docintel.v1.IngestionService.IngestDirectory:input_type -> docintel.v1.IngestDirectoryRequest
	21, // 16: docintel.v1.ExportService.ExportDocuments:input_type -> docintel.v1.ExportDocumentsRequest
	4,  // 17: docintel.v1.DocumentsService.ProcessDocument:output_type -> docintel.v1.ProcessDocumentResponse
	6,  // 18: docintel.v1.DocumentsService.GetDocument:output_type -> docintel.v1.GetDocumentResponse
	8,  // 19: docintel.v1.DocumentsService.ListDocuments:output_type -> docintel.v1.ListDocumentsResponse
	10, // 20: docintel.v1.DocumentsService.ListJobs:output_type -> docintel.v1.ListJobsResponse
	13, // 21: docintel.v1.TemplatesService.ListTemplates:output_type -> docintel.v1.ListTemplatesResponse
	16, // 22: docintel.v1.RulesService.ListRules:output_type -> docintel.v1.ListRulesResponse
	18, // 23: docintel.v1.IngestionService.IngestFile:output_type -> docintel.v1.IngestResponse
	20, // 24: docintel.v1.IngestionService.IngestDirectory:output_type -> docintel.v1.IngestDirectoryResponse
	22, // 25: docintel.v1.ExportService.ExportDocuments:output_type -> docintel.v1.ExportDocumentsResponse
	17, // [17:26] is the sub-list for method output_type
	8,  // [8:17] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_docintel_v1_docintel_proto_init() }
func file_docintel_v1_docintel_proto_init() {
	if File_docintel_v1_docintel_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_docintel_v1_docintel_proto_rawDesc), len(file_docintel_v1_docintel_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   23,
			NumExtensions: 0,
			NumServices:   5,
		},
		GoTypes:           file_docintel_v1_docintel_proto_goTypes,
		DependencyIndexes: file_docintel_v1_docintel_proto_depIdxs,
		MessageInfos:      file_docintel_v1_docintel_proto_msgTypes,
	}.Build()
	File_docintel_v1_docintel_proto = out.File
	file_docintel_v1_docintel_proto_goTypes = nil
	file_docintel_v1_docintel_proto_depIdxs = nil
}
