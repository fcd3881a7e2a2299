package pb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)

	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type GenerationMethod int32

const (
	GenerationMethod_AUTO      GenerationMethod = 0
	GenerationMethod_SYNTHETIC GenerationMethod = 1
	GenerationMethod_LLM       GenerationMethod = 2
	GenerationMethod_RETRIEVAL GenerationMethod = 3
	GenerationMethod_HYBRID    GenerationMethod = 4
)

var (
	GenerationMethod_name = map[int32]string{
		0: "AUTO",
		1: "SYNTHETIC",
		2: "LLM",
		3: "RETRIEVAL",
		4: "HYBRID",
	}
	GenerationMethod_value = map[string]int32{
		"AUTO": 0,
		"SYNTHETIC": 1,
		"LLM": 2,
		"RETRIEVAL": 3,
		"HYBRID": 4,
	}
)

func (x GenerationMethod) Enum() *GenerationMethod {
	p := new(GenerationMethod)
	*p = x
	return p
}

func (x GenerationMethod) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (GenerationMethod) Descriptor() protoreflect.EnumDescriptor {
	return file_datagen_proto_enumTypes[0].Descriptor()
}

func (GenerationMethod) Type() protoreflect.EnumType {
	return &file_datagen_proto_enumTypes[0]
}

func (x GenerationMethod) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

func (GenerationMethod) EnumDescriptor() ([]byte, []int) {
	return file_datagen_proto_rawDescGZIP(), []int{0}
}

type GenerateRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	RequestId        string                 `protobuf:"bytes,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	Domain           string                 `protobuf:"bytes,2,opt,name=domain,proto3" json:"domain,omitempty"`
	Entity           string                 `protobuf:"bytes,3,opt,name=entity,proto3" json:"entity,omitempty"`
	Count            int32                  `protobuf:"varint,4,opt,name=count,proto3" json:"count,omitempty"`
	Context          string                 `protobuf:"bytes,5,opt,name=context,proto3" json:"context,omitempty"`
	Hints            []string               `protobuf:"bytes,6,rep,name=hints,proto3" json:"hints,omitempty"`
	Scenarios        []*Scenario            `protobuf:"bytes,7,rep,name=scenarios,proto3" json:"scenarios,omitempty"`
	Constraints      *Constraints           `protobuf:"bytes,8,opt,name=constraints,proto3" json:"constraints,omitempty"`
	Schema           *SchemaRef             `protobuf:"bytes,9,opt,name=schema,proto3" json:"schema,omitempty"`
	InlineSchema     string                 `protobuf:"bytes,10,opt,name=inline_schema,json=inlineSchema,proto3" json:"inline_schema,omitempty"`
	LearnFromHistory bool                   `protobuf:"varint,11,opt,name=learn_from_history,json=learnFromHistory,proto3" json:"learn_from_history,omitempty"`
	DefectTriggering bool                   `protobuf:"varint,12,opt,name=defect_triggering,json=defectTriggering,proto3" json:"defect_triggering,omitempty"`
	ProductionLike   bool                   `protobuf:"varint,13,opt,name=production_like,json=productionLike,proto3" json:"production_like,omitempty"`
	GenerationMethod GenerationMethod       `protobuf:"varint,14,opt,name=generation_method,json=generationMethod,proto3,enum=datagen.v1.GenerationMethod" json:"generation_method,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *GenerateRequest) Reset() {
	*x = GenerateRequest{}
	mi := &file_datagen_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateRequest) ProtoMessage() {}

func (x *GenerateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_datagen_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*GenerateRequest) Descriptor() ([]byte, []int) {
	return file_datagen_proto_rawDescGZIP(), []int{0}
}

func (x *GenerateRequest) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

func (x *GenerateRequest) GetDomain() string {
	if x != nil {
		return x.Domain
	}
	return ""
}

func (x *GenerateRequest) GetEntity() string {
	if x != nil {
		return x.Entity
	}
	return ""
}

func (x *GenerateRequest) GetCount() int32 {
	if x != nil {
		return x.Count
	}
	return 0
}

func (x *GenerateRequest) GetContext() string {
	if x != nil {
		return x.Context
	}
	return ""
}

func (x *GenerateRequest) GetHints() []string {
	if x != nil {
		return x.Hints
	}
	return nil
}

func (x *GenerateRequest) GetScenarios() []*Scenario {
	if x != nil {
		return x.Scenarios
	}
	return nil
}

func (x *GenerateRequest) GetConstraints() *Constraints {
	if x != nil {
		return x.Constraints
	}
	return nil
}

func (x *GenerateRequest) GetSchema() *SchemaRef {
	if x != nil {
		return x.Schema
	}
	return nil
}

func (x *GenerateRequest) GetInlineSchema() string {
	if x != nil {
		return x.InlineSchema
	}
	return ""
}

func (x *GenerateRequest) GetLearnFromHistory() bool {
	if x != nil {
		return x.LearnFromHistory
	}
	return false
}

func (x *GenerateRequest) GetDefectTriggering() bool {
	if x != nil {
		return x.DefectTriggering
	}
	return false
}

func (x *GenerateRequest) GetProductionLike() bool {
	if x != nil {
		return x.ProductionLike
	}
	return false
}

func (x *GenerateRequest) GetGenerationMethod() GenerationMethod {
	if x != nil {
		return x.GenerationMethod
	}
	return GenerationMethod_AUTO
}

type Scenario struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Count         int32                  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Overrides     map[string]string      `protobuf:"bytes,4,rep,name=overrides,proto3" json:"overrides,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Scenario) Reset() {
	*x = Scenario{}
	mi := &file_datagen_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Scenario) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Scenario) ProtoMessage() {}

func (x *Scenario) ProtoReflect() protoreflect.Message {
	mi := &file_datagen_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*Scenario) Descriptor() ([]byte, []int) {
	return file_datagen_proto_rawDescGZIP(), []int{1}
}

func (x *Scenario) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Scenario) GetCount() int32 {
	if x != nil {
		return x.Count
	}
	return 0
}

func (x *Scenario) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Scenario) GetOverrides() map[string]string {
	if x != nil {
		return x.Overrides
	}
	return nil
}

type SchemaRef struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	PredefinedSchema string                 `protobuf:"bytes,1,opt,name=predefined_schema,json=predefinedSchema,proto3" json:"predefined_schema,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *SchemaRef) Reset() {
	*x = SchemaRef{}
	mi := &file_datagen_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SchemaRef) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SchemaRef) ProtoMessage() {}

func (x *SchemaRef) ProtoReflect() protoreflect.Message {
	mi := &file_datagen_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*SchemaRef) Descriptor() ([]byte, []int) {
	return file_datagen_proto_rawDescGZIP(), []int{2}
}

func (x *SchemaRef) GetPredefinedSchema() string {
	if x != nil {
		return x.PredefinedSchema
	}
	return ""
}

type FieldConstraint struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Min           *float64               `protobuf:"fixed64,1,opt,name=min,proto3,oneof" json:"min,omitempty"`
	Max           *float64               `protobuf:"fixed64,2,opt,name=max,proto3,oneof" json:"max,omitempty"`
	MinLength     *int32                 `protobuf:"varint,3,opt,name=min_length,json=minLength,proto3,oneof" json:"min_length,omitempty"`
	MaxLength     *int32                 `protobuf:"varint,4,opt,name=max_length,json=maxLength,proto3,oneof" json:"max_length,omitempty"`
	EnumValues    []string               `protobuf:"bytes,5,rep,name=enum_values,json=enumValues,proto3" json:"enum_values,omitempty"`
	Regex         *string                `protobuf:"bytes,6,opt,name=regex,proto3,oneof" json:"regex,omitempty"`
	Format        *string                `protobuf:"bytes,7,opt,name=format,proto3,oneof" json:"format,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FieldConstraint) Reset() {
	*x = FieldConstraint{}
	mi := &file_datagen_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FieldConstraint) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FieldConstraint) ProtoMessage() {}

func (x *FieldConstraint) ProtoReflect() protoreflect.Message {
	mi := &file_datagen_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*FieldConstraint) Descriptor() ([]byte, []int) {
	return file_datagen_proto_rawDescGZIP(), []int{3}
}

func (x *FieldConstraint) GetMin() float64 {
	if x != nil && x.Min != nil {
		return *x.Min
	}
	return 0
}

func (x *FieldConstraint) GetMax() float64 {
	if x != nil && x.Max != nil {
		return *x.Max
	}
	return 0
}

func (x *FieldConstraint) GetMinLength() int32 {
	if x != nil && x.MinLength != nil {
		return *x.MinLength
	}
	return 0
}

func (x *FieldConstraint) GetMaxLength() int32 {
	if x != nil && x.MaxLength != nil {
		return *x.MaxLength
	}
	return 0
}

func (x *FieldConstraint) GetEnumValues() []string {
	if x != nil {
		return x.EnumValues
	}
	return nil
}

func (x *FieldConstraint) GetRegex() string {
	if x != nil && x.Regex != nil {
		return *x.Regex
	}
	return ""
}

func (x *FieldConstraint) GetFormat() string {
	if x != nil && x.Format != nil {
		return *x.Format
	}
	return ""
}

type Constraints struct {
	state            protoimpl.MessageState      `protogen:"open.v1"`
	FieldConstraints map[string]*FieldConstraint `protobuf:"bytes,1,rep,name=field_constraints,json=fieldConstraints,proto3" json:"field_constraints,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Constraints) Reset() {
	*x = Constraints{}
	mi := &file_datagen_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Constraints) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Constraints) ProtoMessage() {}

func (x *Constraints) ProtoReflect() protoreflect.Message {
	mi := &file_datagen_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*Constraints) Descriptor() ([]byte, []int) {
	return file_datagen_proto_rawDescGZIP(), []int{4}
}

func (x *Constraints) GetFieldConstraints() map[string]*FieldConstraint {
	if x != nil {
		return x.FieldConstraints
	}
	return nil
}

type GenerationMetadata struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	GenerationPath   string                 `protobuf:"bytes,1,opt,name=generation_path,json=generationPath,proto3" json:"generation_path,omitempty"`
	LlmTokensUsed    int32                  `protobuf:"varint,2,opt,name=llm_tokens_used,json=llmTokensUsed,proto3" json:"llm_tokens_used,omitempty"`
	GenerationTimeMs float64                `protobuf:"fixed64,3,opt,name=generation_time_ms,json=generationTimeMs,proto3" json:"generation_time_ms,omitempty"`
	CoherenceScore   float64                `protobuf:"fixed64,4,opt,name=coherence_score,json=coherenceScore,proto3" json:"coherence_score,omitempty"`
	ScenarioCounts   map[string]int32       `protobuf:"bytes,5,rep,name=scenario_counts,json=scenarioCounts,proto3" json:"scenario_counts,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *GenerationMetadata) Reset() {
	*x = GenerationMetadata{}
	mi := &file_datagen_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerationMetadata) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerationMetadata) ProtoMessage() {}

func (x *GenerationMetadata) ProtoReflect() protoreflect.Message {
	mi := &file_datagen_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*GenerationMetadata) Descriptor() ([]byte, []int) {
	return file_datagen_proto_rawDescGZIP(), []int{5}
}

func (x *GenerationMetadata) GetGenerationPath() string {
	if x != nil {
		return x.GenerationPath
	}
	return ""
}

func (x *GenerationMetadata) GetLlmTokensUsed() int32 {
	if x != nil {
		return x.LlmTokensUsed
	}
	return 0
}

func (x *GenerationMetadata) GetGenerationTimeMs() float64 {
	if x != nil {
		return x.GenerationTimeMs
	}
	return 0
}

func (x *GenerationMetadata) GetCoherenceScore() float64 {
	if x != nil {
		return x.CoherenceScore
	}
	return 0
}

func (x *GenerationMetadata) GetScenarioCounts() map[string]int32 {
	if x != nil {
		return x.ScenarioCounts
	}
	return nil
}

type GenerateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RequestId     string                 `protobuf:"bytes,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	Success       bool                   `protobuf:"varint,2,opt,name=success,proto3" json:"success,omitempty"`
	Data          string                 `protobuf:"bytes,3,opt,name=data,proto3" json:"data,omitempty"`
	RecordCount   int32                  `protobuf:"varint,4,opt,name=record_count,json=recordCount,proto3" json:"record_count,omitempty"`
	Error         string                 `protobuf:"bytes,5,opt,name=error,proto3" json:"error,omitempty"`
	Metadata      *GenerationMetadata    `protobuf:"bytes,6,opt,name=metadata,proto3" json:"metadata,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateResponse) Reset() {
	*x = GenerateResponse{}
	mi := &file_datagen_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateResponse) ProtoMessage() {}

func (x *GenerateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_datagen_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*GenerateResponse) Descriptor() ([]byte, []int) {
	return file_datagen_proto_rawDescGZIP(), []int{6}
}

func (x *GenerateResponse) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

func (x *GenerateResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *GenerateResponse) GetData() string {
	if x != nil {
		return x.Data
	}
	return ""
}

func (x *GenerateResponse) GetRecordCount() int32 {
	if x != nil {
		return x.RecordCount
	}
	return 0
}

func (x *GenerateResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

func (x *GenerateResponse) GetMetadata() *GenerationMetadata {
	if x != nil {
		return x.Metadata
	}
	return nil
}

type DataChunk struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RequestId     string                 `protobuf:"bytes,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	Data          string                 `protobuf:"bytes,2,opt,name=data,proto3" json:"data,omitempty"`
	ChunkIndex    int32                  `protobuf:"varint,3,opt,name=chunk_index,json=chunkIndex,proto3" json:"chunk_index,omitempty"`
	IsFinal       bool                   `protobuf:"varint,4,opt,name=is_final,json=isFinal,proto3" json:"is_final,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DataChunk) Reset() {
	*x = DataChunk{}
	mi := &file_datagen_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DataChunk) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DataChunk) ProtoMessage() {}

func (x *DataChunk) ProtoReflect() protoreflect.Message {
	mi := &file_datagen_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*DataChunk) Descriptor() ([]byte, []int) {
	return file_datagen_proto_rawDescGZIP(), []int{7}
}

func (x *DataChunk) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

func (x *DataChunk) GetData() string {
	if x != nil {
		return x.Data
	}
	return ""
}

func (x *DataChunk) GetChunkIndex() int32 {
	if x != nil {
		return x.ChunkIndex
	}
	return 0
}

func (x *DataChunk) GetIsFinal() bool {
	if x != nil {
		return x.IsFinal
	}
	return false
}

type GetSchemasRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Domain        string                 `protobuf:"bytes,1,opt,name=domain,proto3" json:"domain,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSchemasRequest) Reset() {
	*x = GetSchemasRequest{}
	mi := &file_datagen_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSchemasRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSchemasRequest) ProtoMessage() {}

func (x *GetSchemasRequest) ProtoReflect() protoreflect.Message {
	mi := &file_datagen_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*GetSchemasRequest) Descriptor() ([]byte, []int) {
	return file_datagen_proto_rawDescGZIP(), []int{8}
}

func (x *GetSchemasRequest) GetDomain() string {
	if x != nil {
		return x.Domain
	}
	return ""
}

type SchemaFieldInfo struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Type          string                 `protobuf:"bytes,2,opt,name=type,proto3" json:"type,omitempty"`
	Required      bool                   `protobuf:"varint,3,opt,name=required,proto3" json:"required,omitempty"`
	Description   string                 `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	Example       string                 `protobuf:"bytes,5,opt,name=example,proto3" json:"example,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SchemaFieldInfo) Reset() {
	*x = SchemaFieldInfo{}
	mi := &file_datagen_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SchemaFieldInfo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SchemaFieldInfo) ProtoMessage() {}

func (x *SchemaFieldInfo) ProtoReflect() protoreflect.Message {
	mi := &file_datagen_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*SchemaFieldInfo) Descriptor() ([]byte, []int) {
	return file_datagen_proto_rawDescGZIP(), []int{9}
}

func (x *SchemaFieldInfo) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *SchemaFieldInfo) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *SchemaFieldInfo) GetRequired() bool {
	if x != nil {
		return x.Required
	}
	return false
}

func (x *SchemaFieldInfo) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *SchemaFieldInfo) GetExample() string {
	if x != nil {
		return x.Example
	}
	return ""
}

type SchemaInfo struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Domain        string                 `protobuf:"bytes,2,opt,name=domain,proto3" json:"domain,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Fields        []*SchemaFieldInfo     `protobuf:"bytes,4,rep,name=fields,proto3" json:"fields,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SchemaInfo) Reset() {
	*x = SchemaInfo{}
	mi := &file_datagen_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SchemaInfo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SchemaInfo) ProtoMessage() {}

func (x *SchemaInfo) ProtoReflect() protoreflect.Message {
	mi := &file_datagen_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*SchemaInfo) Descriptor() ([]byte, []int) {
	return file_datagen_proto_rawDescGZIP(), []int{10}
}

func (x *SchemaInfo) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *SchemaInfo) GetDomain() string {
	if x != nil {
		return x.Domain
	}
	return ""
}

func (x *SchemaInfo) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *SchemaInfo) GetFields() []*SchemaFieldInfo {
	if x != nil {
		return x.Fields
	}
	return nil
}

type GetSchemasResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Schemas       []*SchemaInfo          `protobuf:"bytes,1,rep,name=schemas,proto3" json:"schemas,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSchemasResponse) Reset() {
	*x = GetSchemasResponse{}
	mi := &file_datagen_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSchemasResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSchemasResponse) ProtoMessage() {}

func (x *GetSchemasResponse) ProtoReflect() protoreflect.Message {
	mi := &file_datagen_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*GetSchemasResponse) Descriptor() ([]byte, []int) {
	return file_datagen_proto_rawDescGZIP(), []int{11}
}

func (x *GetSchemasResponse) GetSchemas() []*SchemaInfo {
	if x != nil {
		return x.Schemas
	}
	return nil
}

type HealthCheckRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HealthCheckRequest) Reset() {
	*x = HealthCheckRequest{}
	mi := &file_datagen_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HealthCheckRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HealthCheckRequest) ProtoMessage() {}

func (x *HealthCheckRequest) ProtoReflect() protoreflect.Message {
	mi := &file_datagen_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*HealthCheckRequest) Descriptor() ([]byte, []int) {
	return file_datagen_proto_rawDescGZIP(), []int{12}
}

type HealthCheckResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	Components    map[string]string      `protobuf:"bytes,2,rep,name=components,proto3" json:"components,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HealthCheckResponse) Reset() {
	*x = HealthCheckResponse{}
	mi := &file_datagen_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HealthCheckResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HealthCheckResponse) ProtoMessage() {}

func (x *HealthCheckResponse) ProtoReflect() protoreflect.Message {
	mi := &file_datagen_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*HealthCheckResponse) Descriptor() ([]byte, []int) {
	return file_datagen_proto_rawDescGZIP(), []int{13}
}

func (x *HealthCheckResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *HealthCheckResponse) GetComponents() map[string]string {
	if x != nil {
		return x.Components
	}
	return nil
}

var File_datagen_proto protoreflect.FileDescriptor

const file_datagen_proto_rawDesc = "" +
	"\n" +
	"\rdatagen.proto\x12\n" +
	"datagen.v1\"\xb8\x04\n" +
	"\x0fGenerateRequest\x12\x1d\n" +
	"\n" +
	"request_id\x18\x01 \x01(\tR\trequestId\x12\x16\n" +
	"\x06domain\x18\x02 \x01(\tR\x06domain\x12\x16\n" +
	"\x06entity\x18\x03 \x01(\tR\x06entity\x12\x14\n" +
	"\x05count\x18\x04 \x01(\x05R\x05count\x12\x18\n" +
	"\acontext\x18\x05 \x01(\tR\acontext\x12\x14\n" +
	"\x05hints\x18\x06 \x03(\tR\x05hints\x122\n" +
	"\tscenarios\x18\a \x03(\v2\x14.datagen.v1.ScenarioR\tscenarios\x129\n" +
	"\vconstraints\x18\b \x01(\v2\x17.datagen.v1.ConstraintsR\vconstraints\x12-\n" +
	"\x06schema\x18\t \x01(\v2\x15.datagen.v1.SchemaRefR\x06schema\x12#\n" +
	"\rinline_schema\x18\n" +
	" \x01(\tR\finlineSchema\x12,\n" +
	"\x12learn_from_history\x18\v \x01(\bR\x10learnFromHistory\x12+\n" +
	"\x11defect_triggering\x18\f \x01(\bR\x10defectTriggering\x12'\n" +
	"\x0fproduction_like\x18\r \x01(\bR\x0eproductionLike\x12I\n" +
	"\x11generation_method\x18\x0e \x01(\x0e2\x1c.datagen.v1.GenerationMethodR\x10generationMethod\"\xd7\x01\n" +
	"\bScenario\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x14\n" +
	"\x05count\x18\x02 \x01(\x05R\x05count\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12A\n" +
	"\toverrides\x18\x04 \x03(\v2#.datagen.v1.Scenario.OverridesEntryR\toverrides\x1a<\n" +
	"\x0eOverridesEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"8\n" +
	"\tSchemaRef\x12+\n" +
	"\x11predefined_schema\x18\x01 \x01(\tR\x10predefinedSchema\"\xa3\x02\n" +
	"\x0fFieldConstraint\x12\x15\n" +
	"\x03min\x18\x01 \x01(\x01H\x00R\x03min\x88\x01\x01\x12\x15\n" +
	"\x03max\x18\x02 \x01(\x01H\x01R\x03max\x88\x01\x01\x12\"\n" +
	"\n" +
	"min_length\x18\x03 \x01(\x05H\x02R\tminLength\x88\x01\x01\x12\"\n" +
	"\n" +
	"max_length\x18\x04 \x01(\x05H\x03R\tmaxLength\x88\x01\x01\x12\x1f\n" +
	"\venum_values\x18\x05 \x03(\tR\n" +
	"enumValues\x12\x19\n" +
	"\x05regex\x18\x06 \x01(\tH\x04R\x05regex\x88\x01\x01\x12\x1b\n" +
	"\x06format\x18\a \x01(\tH\x05R\x06format\x88\x01\x01B\x06\n" +
	"\x04_minB\x06\n" +
	"\x04_maxB\r\n" +
	"\v_min_lengthB\r\n" +
	"\v_max_lengthB\b\n" +
	"\x06_regexB\t\n" +
	"\a_format\"\xcb\x01\n" +
	"\vConstraints\x12Z\n" +
	"\x11field_constraints\x18\x01 \x03(\v2-.datagen.v1.Constraints.FieldConstraintsEntryR\x10fieldConstraints\x1a`\n" +
	"\x15FieldConstraintsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x121\n" +
	"\x05value\x18\x02 \x01(\v2\x1b.datagen.v1.FieldConstraintR\x05value:\x028\x01\"\xdc\x02\n" +
	"\x12GenerationMetadata\x12'\n" +
	"\x0fgeneration_path\x18\x01 \x01(\tR\x0egenerationPath\x12&\n" +
	"\x0fllm_tokens_used\x18\x02 \x01(\x05R\rllmTokensUsed\x12,\n" +
	"\x12generation_time_ms\x18\x03 \x01(\x01R\x10generationTimeMs\x12'\n" +
	"\x0fcoherence_score\x18\x04 \x01(\x01R\x0ecoherenceScore\x12[\n" +
	"\x0fscenario_counts\x18\x05 \x03(\v22.datagen.v1.GenerationMetadata.ScenarioCountsEntryR\x0escenarioCounts\x1aA\n" +
	"\x13ScenarioCountsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x05R\x05value:\x028\x01\"\xd4\x01\n" +
	"\x10GenerateResponse\x12\x1d\n" +
	"\n" +
	"request_id\x18\x01 \x01(\tR\trequestId\x12\x18\n" +
	"\asuccess\x18\x02 \x01(\bR\asuccess\x12\x12\n" +
	"\x04data\x18\x03 \x01(\tR\x04data\x12!\n" +
	"\frecord_count\x18\x04 \x01(\x05R\vrecordCount\x12\x14\n" +
	"\x05error\x18\x05 \x01(\tR\x05error\x12:\n" +
	"\bmetadata\x18\x06 \x01(\v2\x1e.datagen.v1.GenerationMetadataR\bmetadata\"z\n" +
	"\tDataChunk\x12\x1d\n" +
	"\n" +
	"request_id\x18\x01 \x01(\tR\trequestId\x12\x12\n" +
	"\x04data\x18\x02 \x01(\tR\x04data\x12\x1f\n" +
	"\vchunk_index\x18\x03 \x01(\x05R\n" +
	"chunkIndex\x12\x19\n" +
	"\bis_final\x18\x04 \x01(\bR\aisFinal\"+\n" +
	"\x11GetSchemasRequest\x12\x16\n" +
	"\x06domain\x18\x01 \x01(\tR\x06domain\"\x91\x01\n" +
	"\x0fSchemaFieldInfo\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x12\n" +
	"\x04type\x18\x02 \x01(\tR\x04type\x12\x1a\n" +
	"\brequired\x18\x03 \x01(\bR\brequired\x12 \n" +
	"\vdescription\x18\x04 \x01(\tR\vdescription\x12\x18\n" +
	"\aexample\x18\x05 \x01(\tR\aexample\"\x8f\x01\n" +
	"\n" +
	"SchemaInfo\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x16\n" +
	"\x06domain\x18\x02 \x01(\tR\x06domain\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x123\n" +
	"\x06fields\x18\x04 \x03(\v2\x1b.datagen.v1.SchemaFieldInfoR\x06fields\"F\n" +
	"\x12GetSchemasResponse\x120\n" +
	"\aschemas\x18\x01 \x03(\v2\x16.datagen.v1.SchemaInfoR\aschemas\"\x14\n" +
	"\x12HealthCheckRequest\"\xbd\x01\n" +
	"\x13HealthCheckResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12O\n" +
	"\n" +
	"components\x18\x02 \x03(\v2/.datagen.v1.HealthCheckResponse.ComponentsEntryR\n" +
	"components\x1a=\n" +
	"\x0fComponentsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01*O\n" +
	"\x10GenerationMethod\x12\b\n" +
	"\x04AUTO\x10\x00\x12\r\n" +
	"\tSYNTHETIC\x10\x01\x12\a\n" +
	"\x03LLM\x10\x02\x12\r\n" +
	"\tRETRIEVAL\x10\x03\x12\n" +
	"\n" +
	"\x06HYBRID\x10\x042\xc5\x02\n" +
	"\x0fTestDataService\x12I\n" +
	"\fGenerateData\x12\x1b.datagen.v1.GenerateRequest\x1a\x1c.datagen.v1.GenerateResponse\x12J\n" +
	"\x12GenerateDataStream\x12\x1b.datagen.v1.GenerateRequest\x1a\x15.datagen.v1.DataChunk0\x01\x12K\n" +
	"\n" +
	"GetSchemas\x12\x1d.datagen.v1.GetSchemasRequest\x1a\x1e.datagen.v1.GetSchemasResponse\x12N\n" +
	"\vHealthCheck\x12\x1e.datagen.v1.HealthCheckRequest\x1a\x1f.datagen.v1.HealthCheckResponseB#Z!github.com/qaforge/datagen/pkg/pbb\x06proto3"

var (
	file_datagen_proto_rawDescOnce sync.Once
	file_datagen_proto_rawDescData []byte
)

func file_datagen_proto_rawDescGZIP() []byte {
	file_datagen_proto_rawDescOnce.Do(func() {
		file_datagen_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_datagen_proto_rawDesc), len(file_datagen_proto_rawDesc)))
	})
	return file_datagen_proto_rawDescData
}

var file_datagen_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_datagen_proto_msgTypes = make([]protoimpl.MessageInfo, 18)
var file_datagen_proto_goTypes = []any{
	(GenerationMethod)(0),
	(*GenerateRequest)(nil),
	(*Scenario)(nil),
	(*SchemaRef)(nil),
	(*FieldConstraint)(nil),
	(*Constraints)(nil),
	(*GenerationMetadata)(nil),
	(*GenerateResponse)(nil),
	(*DataChunk)(nil),
	(*GetSchemasRequest)(nil),
	(*SchemaFieldInfo)(nil),
	(*SchemaInfo)(nil),
	(*GetSchemasResponse)(nil),
	(*HealthCheckRequest)(nil),
	(*HealthCheckResponse)(nil),
	nil,
	nil,
	nil,
	nil,
}
var file_datagen_proto_depIdxs = []int32{
	2,
	5,
	3,
	0,
	15,
	16,
	17,
	6,
	10,
	11,
	18,
	4,
	1,
	1,
	9,
	13,
	7,
	8,
	12,
	14,
	16,
	12,
	12,
	12,
	0,
}

func init() { file_datagen_proto_init() }
func file_datagen_proto_init() {
	if File_datagen_proto != nil {
		return
	}
	file_datagen_proto_msgTypes[3].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_datagen_proto_rawDesc), len(file_datagen_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   18,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_datagen_proto_goTypes,
		DependencyIndexes: file_datagen_proto_depIdxs,
		EnumInfos:         file_datagen_proto_enumTypes,
		MessageInfos:      file_datagen_proto_msgTypes,
	}.Build()
	File_datagen_proto = out.File
	file_datagen_proto_goTypes = nil
	file_datagen_proto_depIdxs = nil
}
