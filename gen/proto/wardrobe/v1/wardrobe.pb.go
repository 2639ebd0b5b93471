// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: wardrobe/v1/wardrobe.proto

package wardrobev1

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

// LegacyView is the flattened compatibility shape older consumers read.
type LegacyView struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Colors        []string               `protobuf:"bytes,1,rep,name=colors,proto3" json:"colors,omitempty"`
	Materials     []string               `protobuf:"bytes,2,rep,name=materials,proto3" json:"materials,omitempty"`
	Patterns      []string               `protobuf:"bytes,3,rep,name=patterns,proto3" json:"patterns,omitempty"`
	Style         string                 `protobuf:"bytes,4,opt,name=style,proto3" json:"style,omitempty"`
	Occasion      []string               `protobuf:"bytes,5,rep,name=occasion,proto3" json:"occasion,omitempty"`
	Season        []string               `protobuf:"bytes,6,rep,name=season,proto3" json:"season,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LegacyView) Reset() {
	*x = LegacyView{}
	mi := &file_wardrobe_v1_wardrobe_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LegacyView) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LegacyView) ProtoMessage() {}

func (x *LegacyView) ProtoReflect() protoreflect.Message {
	mi := &file_wardrobe_v1_wardrobe_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LegacyView.ProtoReflect.Descriptor instead.
func (*LegacyView) Descriptor() ([]byte, []int) {
	return file_wardrobe_v1_wardrobe_proto_rawDescGZIP(), []int{0}
}

func (x *LegacyView) GetColors() []string {
	if x != nil {
		return x.Colors
	}
	return nil
}

func (x *LegacyView) GetMaterials() []string {
	if x != nil {
		return x.Materials
	}
	return nil
}

func (x *LegacyView) GetPatterns() []string {
	if x != nil {
		return x.Patterns
	}
	return nil
}

func (x *LegacyView) GetStyle() string {
	if x != nil {
		return x.Style
	}
	return ""
}

func (x *LegacyView) GetOccasion() []string {
	if x != nil {
		return x.Occasion
	}
	return nil
}

func (x *LegacyView) GetSeason() []string {
	if x != nil {
		return x.Season
	}
	return nil
}

type WardrobeItem struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OwnerId         string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Name            string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Category        string                 `protobuf:"bytes,4,opt,name=category,proto3" json:"category,omitempty"`
	Subcategory     string                 `protobuf:"bytes,5,opt,name=subcategory,proto3" json:"subcategory,omitempty"`
	ColorName       string                 `protobuf:"bytes,6,opt,name=color_name,json=colorName,proto3" json:"color_name,omitempty"`
	ColorHex        string                 `protobuf:"bytes,7,opt,name=color_hex,json=colorHex,proto3" json:"color_hex,omitempty"`
	SecondaryColors []string               `protobuf:"bytes,8,rep,name=secondary_colors,json=secondaryColors,proto3" json:"secondary_colors,omitempty"`
	Pattern         string                 `protobuf:"bytes,9,opt,name=pattern,proto3" json:"pattern,omitempty"`
	MaterialFamily  string                 `protobuf:"bytes,10,opt,name=material_family,json=materialFamily,proto3" json:"material_family,omitempty"`
	Fit             string                 `protobuf:"bytes,11,opt,name=fit,proto3" json:"fit,omitempty"`
	Length          string                 `protobuf:"bytes,12,opt,name=length,proto3" json:"length,omitempty"`
	Rise            string                 `protobuf:"bytes,13,opt,name=rise,proto3" json:"rise,omitempty"`
	Sleeve          string                 `protobuf:"bytes,14,opt,name=sleeve,proto3" json:"sleeve,omitempty"`
	Neckline        string                 `protobuf:"bytes,15,opt,name=neckline,proto3" json:"neckline,omitempty"`
	DominantFinish  string                 `protobuf:"bytes,16,opt,name=dominant_finish,json=dominantFinish,proto3" json:"dominant_finish,omitempty"`
	BrandText       string                 `protobuf:"bytes,17,opt,name=brand_text,json=brandText,proto3" json:"brand_text,omitempty"`
	Notes           string                 `protobuf:"bytes,18,opt,name=notes,proto3" json:"notes,omitempty"`
	Confidence      float64                `protobuf:"fixed64,19,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Legacy          *LegacyView            `protobuf:"bytes,20,opt,name=legacy,proto3" json:"legacy,omitempty"`
	ImageRef        string                 `protobuf:"bytes,21,opt,name=image_ref,json=imageRef,proto3" json:"image_ref,omitempty"`
	SourceId        string                 `protobuf:"bytes,22,opt,name=source_id,json=sourceId,proto3" json:"source_id,omitempty"`
	CreatedAt       string                 `protobuf:"bytes,23,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	UpdatedAt       string                 `protobuf:"bytes,24,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC3339
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *WardrobeItem) Reset() {
	*x = WardrobeItem{}
	mi := &file_wardrobe_v1_wardrobe_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WardrobeItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WardrobeItem) ProtoMessage() {}

func (x *WardrobeItem) ProtoReflect() protoreflect.Message {
	mi := &file_wardrobe_v1_wardrobe_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WardrobeItem.ProtoReflect.Descriptor instead.
func (*WardrobeItem) Descriptor() ([]byte, []int) {
	return file_wardrobe_v1_wardrobe_proto_rawDescGZIP(), []int{1}
}

func (x *WardrobeItem) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *WardrobeItem) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *WardrobeItem) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *WardrobeItem) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *WardrobeItem) GetSubcategory() string {
	if x != nil {
		return x.Subcategory
	}
	return ""
}

func (x *WardrobeItem) GetColorName() string {
	if x != nil {
		return x.ColorName
	}
	return ""
}

func (x *WardrobeItem) GetColorHex() string {
	if x != nil {
		return x.ColorHex
	}
	return ""
}

func (x *WardrobeItem) GetSecondaryColors() []string {
	if x != nil {
		return x.SecondaryColors
	}
	return nil
}

func (x *WardrobeItem) GetPattern() string {
	if x != nil {
		return x.Pattern
	}
	return ""
}

func (x *WardrobeItem) GetMaterialFamily() string {
	if x != nil {
		return x.MaterialFamily
	}
	return ""
}

func (x *WardrobeItem) GetFit() string {
	if x != nil {
		return x.Fit
	}
	return ""
}

func (x *WardrobeItem) GetLength() string {
	if x != nil {
		return x.Length
	}
	return ""
}

func (x *WardrobeItem) GetRise() string {
	if x != nil {
		return x.Rise
	}
	return ""
}

func (x *WardrobeItem) GetSleeve() string {
	if x != nil {
		return x.Sleeve
	}
	return ""
}

func (x *WardrobeItem) GetNeckline() string {
	if x != nil {
		return x.Neckline
	}
	return ""
}

func (x *WardrobeItem) GetDominantFinish() string {
	if x != nil {
		return x.DominantFinish
	}
	return ""
}

func (x *WardrobeItem) GetBrandText() string {
	if x != nil {
		return x.BrandText
	}
	return ""
}

func (x *WardrobeItem) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *WardrobeItem) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *WardrobeItem) GetLegacy() *LegacyView {
	if x != nil {
		return x.Legacy
	}
	return nil
}

func (x *WardrobeItem) GetImageRef() string {
	if x != nil {
		return x.ImageRef
	}
	return ""
}

func (x *WardrobeItem) GetSourceId() string {
	if x != nil {
		return x.SourceId
	}
	return ""
}

func (x *WardrobeItem) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *WardrobeItem) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type IngestPhotoRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	ImageRef      string                 `protobuf:"bytes,2,opt,name=image_ref,json=imageRef,proto3" json:"image_ref,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestPhotoRequest) Reset() {
	*x = IngestPhotoRequest{}
	mi := &file_wardrobe_v1_wardrobe_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestPhotoRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestPhotoRequest) ProtoMessage() {}

func (x *IngestPhotoRequest) ProtoReflect() protoreflect.Message {
	mi := &file_wardrobe_v1_wardrobe_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestPhotoRequest.ProtoReflect.Descriptor instead.
func (*IngestPhotoRequest) Descriptor() ([]byte, []int) {
	return file_wardrobe_v1_wardrobe_proto_rawDescGZIP(), []int{2}
}

func (x *IngestPhotoRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *IngestPhotoRequest) GetImageRef() string {
	if x != nil {
		return x.ImageRef
	}
	return ""
}

type IngestPhotoResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Success       bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Records       []*WardrobeItem        `protobuf:"bytes,2,rep,name=records,proto3" json:"records,omitempty"`
	Warnings      []string               `protobuf:"bytes,3,rep,name=warnings,proto3" json:"warnings,omitempty"`
	Error         string                 `protobuf:"bytes,4,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestPhotoResponse) Reset() {
	*x = IngestPhotoResponse{}
	mi := &file_wardrobe_v1_wardrobe_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestPhotoResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestPhotoResponse) ProtoMessage() {}

func (x *IngestPhotoResponse) ProtoReflect() protoreflect.Message {
	mi := &file_wardrobe_v1_wardrobe_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestPhotoResponse.ProtoReflect.Descriptor instead.
func (*IngestPhotoResponse) Descriptor() ([]byte, []int) {
	return file_wardrobe_v1_wardrobe_proto_rawDescGZIP(), []int{3}
}

func (x *IngestPhotoResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *IngestPhotoResponse) GetRecords() []*WardrobeItem {
	if x != nil {
		return x.Records
	}
	return nil
}

func (x *IngestPhotoResponse) GetWarnings() []string {
	if x != nil {
		return x.Warnings
	}
	return nil
}

func (x *IngestPhotoResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type ListItemsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListItemsRequest) Reset() {
	*x = ListItemsRequest{}
	mi := &file_wardrobe_v1_wardrobe_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListItemsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListItemsRequest) ProtoMessage() {}

func (x *ListItemsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_wardrobe_v1_wardrobe_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListItemsRequest.ProtoReflect.Descriptor instead.
func (*ListItemsRequest) Descriptor() ([]byte, []int) {
	return file_wardrobe_v1_wardrobe_proto_rawDescGZIP(), []int{4}
}

func (x *ListItemsRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

type ListItemsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*WardrobeItem        `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListItemsResponse) Reset() {
	*x = ListItemsResponse{}
	mi := &file_wardrobe_v1_wardrobe_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListItemsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListItemsResponse) ProtoMessage() {}

func (x *ListItemsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_wardrobe_v1_wardrobe_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListItemsResponse.ProtoReflect.Descriptor instead.
func (*ListItemsResponse) Descriptor() ([]byte, []int) {
	return file_wardrobe_v1_wardrobe_proto_rawDescGZIP(), []int{5}
}

func (x *ListItemsResponse) GetItems() []*WardrobeItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type ExportWardrobeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportWardrobeRequest) Reset() {
	*x = ExportWardrobeRequest{}
	mi := &file_wardrobe_v1_wardrobe_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportWardrobeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportWardrobeRequest) ProtoMessage() {}

func (x *ExportWardrobeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_wardrobe_v1_wardrobe_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportWardrobeRequest.ProtoReflect.Descriptor instead.
func (*ExportWardrobeRequest) Descriptor() ([]byte, []int) {
	return file_wardrobe_v1_wardrobe_proto_rawDescGZIP(), []int{6}
}

func (x *ExportWardrobeRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

type ExportWardrobeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportWardrobeResponse) Reset() {
	*x = ExportWardrobeResponse{}
	mi := &file_wardrobe_v1_wardrobe_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportWardrobeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportWardrobeResponse) ProtoMessage() {}

func (x *ExportWardrobeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_wardrobe_v1_wardrobe_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportWardrobeResponse.ProtoReflect.Descriptor instead.
func (*ExportWardrobeResponse) Descriptor() ([]byte, []int) {
	return file_wardrobe_v1_wardrobe_proto_rawDescGZIP(), []int{7}
}

func (x *ExportWardrobeResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportWardrobeResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_wardrobe_v1_wardrobe_proto protoreflect.FileDescriptor

const file_wardrobe_v1_wardrobe_proto_rawDesc = "" +
	"\n" +
	"\x1awardrobe/v1/wardrobe.proto\x12\vwardrobe.v1\"\xa8\x01\n" +
	"\n" +
	"LegacyView\x12\x16\n" +
	"\x06colors\x18\x01 \x03(\tR\x06colors\x12\x1c\n" +
	"\tmaterials\x18\x02 \x03(\tR\tmaterials\x12\x1a\n" +
	"\bpatterns\x18\x03 \x03(\tR\bpatterns\x12\x14\n" +
	"\x05style\x18\x04 \x01(\tR\x05style\x12\x1a\n" +
	"\boccasion\x18\x05 \x03(\tR\boccasion\x12\x16\n" +
	"\x06season\x18\x06 \x03(\tR\x06season\"\xce\x05\n" +
	"\fWardrobeItem\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x1a\n" +
	"\bcategory\x18\x04 \x01(\tR\bcategory\x12 \n" +
	"\vsubcategory\x18\x05 \x01(\tR\vsubcategory\x12\x1d\n" +
	"\n" +
	"color_name\x18\x06 \x01(\tR\tcolorName\x12\x1b\n" +
	"\tcolor_hex\x18\a \x01(\tR\bcolorHex\x12)\n" +
	"\x10secondary_colors\x18\b \x03(\tR\x0fsecondaryColors\x12\x18\n" +
	"\apattern\x18\t \x01(\tR\apattern\x12'\n" +
	"\x0fmaterial_family\x18\n" +
	" \x01(\tR\x0ematerialFamily\x12\x10\n" +
	"\x03fit\x18\v \x01(\tR\x03fit\x12\x16\n" +
	"\x06length\x18\f \x01(\tR\x06length\x12\x12\n" +
	"\x04rise\x18\r \x01(\tR\x04rise\x12\x16\n" +
	"\x06sleeve\x18\x0e \x01(\tR\x06sleeve\x12\x1a\n" +
	"\bneckline\x18\x0f \x01(\tR\bneckline\x12'\n" +
	"\x0fdominant_finish\x18\x10 \x01(\tR\x0edominantFinish\x12\x1d\n" +
	"\n" +
	"brand_text\x18\x11 \x01(\tR\tbrandText\x12\x14\n" +
	"\x05notes\x18\x12 \x01(\tR\x05notes\x12\x1e\n" +
	"\n" +
	"confidence\x18\x13 \x01(\x01R\n" +
	"confidence\x12/\n" +
	"\x06legacy\x18\x14 \x01(\v2\x17.wardrobe.v1.LegacyViewR\x06legacy\x12\x1b\n" +
	"\timage_ref\x18\x15 \x01(\tR\bimageRef\x12\x1b\n" +
	"\tsource_id\x18\x16 \x01(\tR\bsourceId\x12\x1d\n" +
	"\n" +
	"created_at\x18\x17 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x18 \x01(\tR\tupdatedAt\"L\n" +
	"\x12IngestPhotoRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x1b\n" +
	"\timage_ref\x18\x02 \x01(\tR\bimageRef\"\x96\x01\n" +
	"\x13IngestPhotoResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\x123\n" +
	"\arecords\x18\x02 \x03(\v2\x19.wardrobe.v1.WardrobeItemR\arecords\x12\x1a\n" +
	"\bwarnings\x18\x03 \x03(\tR\bwarnings\x12\x14\n" +
	"\x05error\x18\x04 \x01(\tR\x05error\"-\n" +
	"\x10ListItemsRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\"D\n" +
	"\x11ListItemsResponse\x12/\n" +
	"\x05items\x18\x01 \x03(\v2\x19.wardrobe.v1.WardrobeItemR\x05items\"2\n" +
	"\x15ExportWardrobeRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\"H\n" +
	"\x16ExportWardrobeResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\x8a\x02\n" +
	"\x0fWardrobeService\x12P\n" +
	"\vIngestPhoto\x12\x1f.wardrobe.v1.IngestPhotoRequest\x1a .wardrobe.v1.IngestPhotoResponse\x12J\n" +
	"\tListItems\x12\x1d.wardrobe.v1.ListItemsRequest\x1a\x1e.wardrobe.v1.ListItemsResponse\x12Y\n" +
	"\x0eExportWardrobe\x12\".wardrobe.v1.ExportWardrobeRequest\x1a#.wardrobe.v1.ExportWardrobeResponseBIZGgithub.com/gestir-app/wardrobe-tracker/gen/proto/wardrobe/v1;wardrobev1b\x06proto3"

var (
	file_wardrobe_v1_wardrobe_proto_rawDescOnce sync.Once
	file_wardrobe_v1_wardrobe_proto_rawDescData []byte
)

func file_wardrobe_v1_wardrobe_proto_rawDescGZIP() []byte {
	file_wardrobe_v1_wardrobe_proto_rawDescOnce.Do(func() {
		file_wardrobe_v1_wardrobe_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_wardrobe_v1_wardrobe_proto_rawDesc), len(file_wardrobe_v1_wardrobe_proto_rawDesc)))
	})
	return file_wardrobe_v1_wardrobe_proto_rawDescData
}

var file_wardrobe_v1_wardrobe_proto_msgTypes = make([]protoimpl.MessageInfo, 8)
var file_wardrobe_v1_wardrobe_proto_goTypes = []any{
	(*LegacyView)(nil),             // 0: wardrobe.v1.LegacyView
	(*WardrobeItem)(nil),           // 1: wardrobe.v1.WardrobeItem
	(*IngestPhotoRequest)(nil),     // 2: wardrobe.v1.IngestPhotoRequest
	(*IngestPhotoResponse)(nil),    // 3: wardrobe.v1.IngestPhotoResponse
	(*ListItemsRequest)(nil),       // 4: wardrobe.v1.ListItemsRequest
	(*ListItemsResponse)(nil),      // 5: wardrobe.v1.ListItemsResponse
	(*ExportWardrobeRequest)(nil),  // 6: wardrobe.v1.ExportWardrobeRequest
	(*ExportWardrobeResponse)(nil), // 7: wardrobe.v1.ExportWardrobeResponse
}
var file_wardrobe_v1_wardrobe_proto_depIdxs = []int32{
	0, // 0: wardrobe.v1.WardrobeItem.legacy:type_name -> wardrobe.v1.LegacyView
	1, // 1: wardrobe.v1.IngestPhotoResponse.records:type_name -> wardrobe.v1.WardrobeItem
	1, // 2: wardrobe.v1.ListItemsResponse.items:type_name -> wardrobe.v1.WardrobeItem
	2, // 3: wardrobe.v1.WardrobeService.IngestPhoto:input_type -> wardrobe.v1.IngestPhotoRequest
	4, // 4: wardrobe.v1.WardrobeService.ListItems:input_type -> wardrobe.v1.ListItemsRequest
	6, // 5: wardrobe.v1.WardrobeService.ExportWardrobe:input_type -> wardrobe.v1.ExportWardrobeRequest
	3, // 6: wardrobe.v1.WardrobeService.IngestPhoto:output_type -> wardrobe.v1.IngestPhotoResponse
	5, // 7: wardrobe.v1.WardrobeService.ListItems:output_type -> wardrobe.v1.ListItemsResponse
	7, // 8: wardrobe.v1.WardrobeService.ExportWardrobe:output_type -> wardrobe.v1.ExportWardrobeResponse
	6, // [6:9] is the sub-list for method output_type
	3, // [3:6] is the sub-list for method input_type
	3, // [3:3] is the sub-list for extension type_name
	3, // [3:3] is the sub-list for extension extendee
	0, // [0:3] is the sub-list for field type_name
}

func init() { file_wardrobe_v1_wardrobe_proto_init() }
func file_wardrobe_v1_wardrobe_proto_init() {
	if File_wardrobe_v1_wardrobe_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_wardrobe_v1_wardrobe_proto_rawDesc), len(file_wardrobe_v1_wardrobe_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   8,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_wardrobe_v1_wardrobe_proto_goTypes,
		DependencyIndexes: file_wardrobe_v1_wardrobe_proto_depIdxs,
		MessageInfos:      file_wardrobe_v1_wardrobe_proto_msgTypes,
	}.Build()
	File_wardrobe_v1_wardrobe_proto = out.File
	file_wardrobe_v1_wardrobe_proto_goTypes = nil
	file_wardrobe_v1_wardrobe_proto_depIdxs = nil
}
