// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: cvs/v1/cvs.proto

package cvspb

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

type Profile struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name            string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Email           string                 `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	DefaultLanguage string                 `protobuf:"bytes,4,opt,name=default_language,json=defaultLanguage,proto3" json:"default_language,omitempty"`
	CreatedAt       string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt       string                 `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Profile) Reset() {
	*x = Profile{}
	mi := &file_cvs_v1_cvs_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Profile) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Profile) ProtoMessage() {}

func (x *Profile) ProtoReflect() protoreflect.Message {
	mi := &file_cvs_v1_cvs_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Profile.ProtoReflect.Descriptor instead.
func (*Profile) Descriptor() ([]byte, []int) {
	return file_cvs_v1_cvs_proto_rawDescGZIP(), []int{0}
}

func (x *Profile) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Profile) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Profile) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *Profile) GetDefaultLanguage() string {
	if x != nil {
		return x.DefaultLanguage
	}
	return ""
}

func (x *Profile) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Profile) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Experience struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Position      string                 `protobuf:"bytes,1,opt,name=position,proto3" json:"position,omitempty"`
	Company       string                 `protobuf:"bytes,2,opt,name=company,proto3" json:"company,omitempty"`
	Location      string                 `protobuf:"bytes,3,opt,name=location,proto3" json:"location,omitempty"`
	StartDate     string                 `protobuf:"bytes,4,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"` // YYYY-MM
	EndDate       string                 `protobuf:"bytes,5,opt,name=end_date,json=endDate,proto3" json:"end_date,omitempty"`       // YYYY-MM or "présent"
	Description   string                 `protobuf:"bytes,6,opt,name=description,proto3" json:"description,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Experience) Reset() {
	*x = Experience{}
	mi := &file_cvs_v1_cvs_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Experience) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Experience) ProtoMessage() {}

func (x *Experience) ProtoReflect() protoreflect.Message {
	mi := &file_cvs_v1_cvs_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Experience.ProtoReflect.Descriptor instead.
func (*Experience) Descriptor() ([]byte, []int) {
	return file_cvs_v1_cvs_proto_rawDescGZIP(), []int{1}
}

func (x *Experience) GetPosition() string {
	if x != nil {
		return x.Position
	}
	return ""
}

func (x *Experience) GetCompany() string {
	if x != nil {
		return x.Company
	}
	return ""
}

func (x *Experience) GetLocation() string {
	if x != nil {
		return x.Location
	}
	return ""
}

func (x *Experience) GetStartDate() string {
	if x != nil {
		return x.StartDate
	}
	return ""
}

func (x *Experience) GetEndDate() string {
	if x != nil {
		return x.EndDate
	}
	return ""
}

func (x *Experience) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type Education struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Degree        string                 `protobuf:"bytes,1,opt,name=degree,proto3" json:"degree,omitempty"`
	School        string                 `protobuf:"bytes,2,opt,name=school,proto3" json:"school,omitempty"`
	Location      string                 `protobuf:"bytes,3,opt,name=location,proto3" json:"location,omitempty"`
	StartYear     string                 `protobuf:"bytes,4,opt,name=start_year,json=startYear,proto3" json:"start_year,omitempty"`
	EndYear       string                 `protobuf:"bytes,5,opt,name=end_year,json=endYear,proto3" json:"end_year,omitempty"`
	Description   string                 `protobuf:"bytes,6,opt,name=description,proto3" json:"description,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Education) Reset() {
	*x = Education{}
	mi := &file_cvs_v1_cvs_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Education) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Education) ProtoMessage() {}

func (x *Education) ProtoReflect() protoreflect.Message {
	mi := &file_cvs_v1_cvs_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Education.ProtoReflect.Descriptor instead.
func (*Education) Descriptor() ([]byte, []int) {
	return file_cvs_v1_cvs_proto_rawDescGZIP(), []int{2}
}

func (x *Education) GetDegree() string {
	if x != nil {
		return x.Degree
	}
	return ""
}

func (x *Education) GetSchool() string {
	if x != nil {
		return x.School
	}
	return ""
}

func (x *Education) GetLocation() string {
	if x != nil {
		return x.Location
	}
	return ""
}

func (x *Education) GetStartYear() string {
	if x != nil {
		return x.StartYear
	}
	return ""
}

func (x *Education) GetEndYear() string {
	if x != nil {
		return x.EndYear
	}
	return ""
}

func (x *Education) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type Skill struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Category      string                 `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	Level         string                 `protobuf:"bytes,3,opt,name=level,proto3" json:"level,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Skill) Reset() {
	*x = Skill{}
	mi := &file_cvs_v1_cvs_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Skill) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Skill) ProtoMessage() {}

func (x *Skill) ProtoReflect() protoreflect.Message {
	mi := &file_cvs_v1_cvs_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Skill.ProtoReflect.Descriptor instead.
func (*Skill) Descriptor() ([]byte, []int) {
	return file_cvs_v1_cvs_proto_rawDescGZIP(), []int{3}
}

func (x *Skill) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Skill) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Skill) GetLevel() string {
	if x != nil {
		return x.Level
	}
	return ""
}

type CV struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProfileId     string                 `protobuf:"bytes,2,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	FirstName     string                 `protobuf:"bytes,3,opt,name=first_name,json=firstName,proto3" json:"first_name,omitempty"`
	LastName      string                 `protobuf:"bytes,4,opt,name=last_name,json=lastName,proto3" json:"last_name,omitempty"`
	Email         string                 `protobuf:"bytes,5,opt,name=email,proto3" json:"email,omitempty"`
	Phone         string                 `protobuf:"bytes,6,opt,name=phone,proto3" json:"phone,omitempty"`
	Location      string                 `protobuf:"bytes,7,opt,name=location,proto3" json:"location,omitempty"`
	Headline      string                 `protobuf:"bytes,8,opt,name=headline,proto3" json:"headline,omitempty"`
	Experiences   []*Experience          `protobuf:"bytes,9,rep,name=experiences,proto3" json:"experiences,omitempty"`
	Educations    []*Education           `protobuf:"bytes,10,rep,name=educations,proto3" json:"educations,omitempty"`
	Skills        []*Skill               `protobuf:"bytes,11,rep,name=skills,proto3" json:"skills,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,12,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,13,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CV) Reset() {
	*x = CV{}
	mi := &file_cvs_v1_cvs_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CV) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CV) ProtoMessage() {}

func (x *CV) ProtoReflect() protoreflect.Message {
	mi := &file_cvs_v1_cvs_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CV.ProtoReflect.Descriptor instead.
func (*CV) Descriptor() ([]byte, []int) {
	return file_cvs_v1_cvs_proto_rawDescGZIP(), []int{4}
}

func (x *CV) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *CV) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *CV) GetFirstName() string {
	if x != nil {
		return x.FirstName
	}
	return ""
}

func (x *CV) GetLastName() string {
	if x != nil {
		return x.LastName
	}
	return ""
}

func (x *CV) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *CV) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *CV) GetLocation() string {
	if x != nil {
		return x.Location
	}
	return ""
}

func (x *CV) GetHeadline() string {
	if x != nil {
		return x.Headline
	}
	return ""
}

func (x *CV) GetExperiences() []*Experience {
	if x != nil {
		return x.Experiences
	}
	return nil
}

func (x *CV) GetEducations() []*Education {
	if x != nil {
		return x.Educations
	}
	return nil
}

func (x *CV) GetSkills() []*Skill {
	if x != nil {
		return x.Skills
	}
	return nil
}

func (x *CV) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *CV) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreateProfileRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Name            string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Email           string                 `protobuf:"bytes,2,opt,name=email,proto3" json:"email,omitempty"`
	DefaultLanguage string                 `protobuf:"bytes,3,opt,name=default_language,json=defaultLanguage,proto3" json:"default_language,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CreateProfileRequest) Reset() {
	*x = CreateProfileRequest{}
	mi := &file_cvs_v1_cvs_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProfileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProfileRequest) ProtoMessage() {}

func (x *CreateProfileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cvs_v1_cvs_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProfileRequest.ProtoReflect.Descriptor instead.
func (*CreateProfileRequest) Descriptor() ([]byte, []int) {
	return file_cvs_v1_cvs_proto_rawDescGZIP(), []int{5}
}

func (x *CreateProfileRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateProfileRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *CreateProfileRequest) GetDefaultLanguage() string {
	if x != nil {
		return x.DefaultLanguage
	}
	return ""
}

type CreateProfileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profile       *Profile               `protobuf:"bytes,1,opt,name=profile,proto3" json:"profile,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProfileResponse) Reset() {
	*x = CreateProfileResponse{}
	mi := &file_cvs_v1_cvs_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProfileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProfileResponse) ProtoMessage() {}

func (x *CreateProfileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cvs_v1_cvs_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProfileResponse.ProtoReflect.Descriptor instead.
func (*CreateProfileResponse) Descriptor() ([]byte, []int) {
	return file_cvs_v1_cvs_proto_rawDescGZIP(), []int{6}
}

func (x *CreateProfileResponse) GetProfile() *Profile {
	if x != nil {
		return x.Profile
	}
	return nil
}

type ListProfilesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProfilesRequest) Reset() {
	*x = ListProfilesRequest{}
	mi := &file_cvs_v1_cvs_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProfilesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProfilesRequest) ProtoMessage() {}

func (x *ListProfilesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cvs_v1_cvs_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProfilesRequest.ProtoReflect.Descriptor instead.
func (*ListProfilesRequest) Descriptor() ([]byte, []int) {
	return file_cvs_v1_cvs_proto_rawDescGZIP(), []int{7}
}

type ListProfilesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profiles      []*Profile             `protobuf:"bytes,1,rep,name=profiles,proto3" json:"profiles,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProfilesResponse) Reset() {
	*x = ListProfilesResponse{}
	mi := &file_cvs_v1_cvs_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProfilesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProfilesResponse) ProtoMessage() {}

func (x *ListProfilesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cvs_v1_cvs_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProfilesResponse.ProtoReflect.Descriptor instead.
func (*ListProfilesResponse) Descriptor() ([]byte, []int) {
	return file_cvs_v1_cvs_proto_rawDescGZIP(), []int{8}
}

func (x *ListProfilesResponse) GetProfiles() []*Profile {
	if x != nil {
		return x.Profiles
	}
	return nil
}

type ListCVsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCVsRequest) Reset() {
	*x = ListCVsRequest{}
	mi := &file_cvs_v1_cvs_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCVsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCVsRequest) ProtoMessage() {}

func (x *ListCVsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cvs_v1_cvs_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCVsRequest.ProtoReflect.Descriptor instead.
func (*ListCVsRequest) Descriptor() ([]byte, []int) {
	return file_cvs_v1_cvs_proto_rawDescGZIP(), []int{9}
}

func (x *ListCVsRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *ListCVsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListCVsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListCVsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Cvs           []*CV                  `protobuf:"bytes,1,rep,name=cvs,proto3" json:"cvs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCVsResponse) Reset() {
	*x = ListCVsResponse{}
	mi := &file_cvs_v1_cvs_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCVsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCVsResponse) ProtoMessage() {}

func (x *ListCVsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cvs_v1_cvs_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCVsResponse.ProtoReflect.Descriptor instead.
func (*ListCVsResponse) Descriptor() ([]byte, []int) {
	return file_cvs_v1_cvs_proto_rawDescGZIP(), []int{10}
}

func (x *ListCVsResponse) GetCvs() []*CV {
	if x != nil {
		return x.Cvs
	}
	return nil
}

type GetCVRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCVRequest) Reset() {
	*x = GetCVRequest{}
	mi := &file_cvs_v1_cvs_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCVRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCVRequest) ProtoMessage() {}

func (x *GetCVRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cvs_v1_cvs_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCVRequest.ProtoReflect.Descriptor instead.
func (*GetCVRequest) Descriptor() ([]byte, []int) {
	return file_cvs_v1_cvs_proto_rawDescGZIP(), []int{11}
}

func (x *GetCVRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetCVResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Cv            *CV                    `protobuf:"bytes,1,opt,name=cv,proto3" json:"cv,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCVResponse) Reset() {
	*x = GetCVResponse{}
	mi := &file_cvs_v1_cvs_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCVResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCVResponse) ProtoMessage() {}

func (x *GetCVResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cvs_v1_cvs_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCVResponse.ProtoReflect.Descriptor instead.
func (*GetCVResponse) Descriptor() ([]byte, []int) {
	return file_cvs_v1_cvs_proto_rawDescGZIP(), []int{12}
}

func (x *GetCVResponse) GetCv() *CV {
	if x != nil {
		return x.Cv
	}
	return nil
}

type IngestFileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	Path          string                 `protobuf:"bytes,2,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestFileRequest) Reset() {
	*x = IngestFileRequest{}
	mi := &file_cvs_v1_cvs_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestFileRequest) ProtoMessage() {}

func (x *IngestFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cvs_v1_cvs_proto_msgTypes[13]
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
	return file_cvs_v1_cvs_proto_rawDescGZIP(), []int{13}
}

func (x *IngestFileRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *IngestFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type IngestResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	FileId         string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	FileExt        string                 `protobuf:"bytes,4,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	UploadedAt     string                 `protobuf:"bytes,5,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	SourcePath     string                 `protobuf:"bytes,6,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Error          string                 `protobuf:"bytes,7,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestResponse) Reset() {
	*x = IngestResponse{}
	mi := &file_cvs_v1_cvs_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestResponse) ProtoMessage() {}

func (x *IngestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cvs_v1_cvs_proto_msgTypes[14]
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
	return file_cvs_v1_cvs_proto_rawDescGZIP(), []int{14}
}

func (x *IngestResponse) GetFileId() string {
	if x != nil {
		return x.FileId
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

func (x *IngestResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
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
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	RootPath      string                 `protobuf:"bytes,2,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	SkipHidden    bool                   `protobuf:"varint,3,opt,name=skip_hidden,json=skipHidden,proto3" json:"skip_hidden,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryRequest) Reset() {
	*x = IngestDirectoryRequest{}
	mi := &file_cvs_v1_cvs_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryRequest) ProtoMessage() {}

func (x *IngestDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cvs_v1_cvs_proto_msgTypes[15]
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
	return file_cvs_v1_cvs_proto_rawDescGZIP(), []int{15}
}

func (x *IngestDirectoryRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
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
	mi := &file_cvs_v1_cvs_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryResponse) ProtoMessage() {}

func (x *IngestDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cvs_v1_cvs_proto_msgTypes[16]
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
	return file_cvs_v1_cvs_proto_rawDescGZIP(), []int{16}
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

type ExportCVsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCVsRequest) Reset() {
	*x = ExportCVsRequest{}
	mi := &file_cvs_v1_cvs_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCVsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCVsRequest) ProtoMessage() {}

func (x *ExportCVsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cvs_v1_cvs_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCVsRequest.ProtoReflect.Descriptor instead.
func (*ExportCVsRequest) Descriptor() ([]byte, []int) {
	return file_cvs_v1_cvs_proto_rawDescGZIP(), []int{17}
}

func (x *ExportCVsRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *ExportCVsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportCVsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportCVsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCVsResponse) Reset() {
	*x = ExportCVsResponse{}
	mi := &file_cvs_v1_cvs_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCVsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCVsResponse) ProtoMessage() {}

func (x *ExportCVsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cvs_v1_cvs_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCVsResponse.ProtoReflect.Descriptor instead.
func (*ExportCVsResponse) Descriptor() ([]byte, []int) {
	return file_cvs_v1_cvs_proto_rawDescGZIP(), []int{18}
}

func (x *ExportCVsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_cvs_v1_cvs_proto protoreflect.FileDescriptor

const file_cvs_v1_cvs_proto_rawDesc = "" +
	"\n" +
	"\x10cvs/v1/cvs.proto\x12\x06cvs.v1\"\xac\x01\n" +
	"\aProfile\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x14\n" +
	"\x05email\x18\x03 \x01(\tR\x05email\x12)\n" +
	"\x10default_language\x18\x04 \x01(\tR\x0fdefaultLanguage\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x06 \x01(\tR\tupdatedAt\"\xba\x01\n" +
	"\n" +
	"Experience\x12\x1a\n" +
	"\bposition\x18\x01 \x01(\tR\bposition\x12\x18\n" +
	"\acompany\x18\x02 \x01(\tR\acompany\x12\x1a\n" +
	"\blocation\x18\x03 \x01(\tR\blocation\x12\x1d\n" +
	"\n" +
	"start_date\x18\x04 \x01(\tR\tstartDate\x12\x19\n" +
	"\bend_date\x18\x05 \x01(\tR\aendDate\x12 \n" +
	"\vdescription\x18\x06 \x01(\tR\vdescription\"\xb3\x01\n" +
	"\tEducation\x12\x16\n" +
	"\x06degree\x18\x01 \x01(\tR\x06degree\x12\x16\n" +
	"\x06school\x18\x02 \x01(\tR\x06school\x12\x1a\n" +
	"\blocation\x18\x03 \x01(\tR\blocation\x12\x1d\n" +
	"\n" +
	"start_year\x18\x04 \x01(\tR\tstartYear\x12\x19\n" +
	"\bend_year\x18\x05 \x01(\tR\aendYear\x12 \n" +
	"\vdescription\x18\x06 \x01(\tR\vdescription\"M\n" +
	"\x05Skill\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1a\n" +
	"\bcategory\x18\x02 \x01(\tR\bcategory\x12\x14\n" +
	"\x05level\x18\x03 \x01(\tR\x05level\"\xa1\x03\n" +
	"\x02CV\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x02 \x01(\tR\tprofileId\x12\x1d\n" +
	"\n" +
	"first_name\x18\x03 \x01(\tR\tfirstName\x12\x1b\n" +
	"\tlast_name\x18\x04 \x01(\tR\blastName\x12\x14\n" +
	"\x05email\x18\x05 \x01(\tR\x05email\x12\x14\n" +
	"\x05phone\x18\x06 \x01(\tR\x05phone\x12\x1a\n" +
	"\blocation\x18\a \x01(\tR\blocation\x12\x1a\n" +
	"\bheadline\x18\b \x01(\tR\bheadline\x124\n" +
	"\vexperiences\x18\t \x03(\v2\x12.cvs.v1.ExperienceR\vexperiences\x121\n" +
	"\n" +
	"educations\x18\n" +
	" \x03(\v2\x11.cvs.v1.EducationR\n" +
	"educations\x12%\n" +
	"\x06skills\x18\v \x03(\v2\r.cvs.v1.SkillR\x06skills\x12\x1d\n" +
	"\n" +
	"created_at\x18\f \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\r \x01(\tR\tupdatedAt\"k\n" +
	"\x14CreateProfileRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x14\n" +
	"\x05email\x18\x02 \x01(\tR\x05email\x12)\n" +
	"\x10default_language\x18\x03 \x01(\tR\x0fdefaultLanguage\"B\n" +
	"\x15CreateProfileResponse\x12)\n" +
	"\aprofile\x18\x01 \x01(\v2\x0f.cvs.v1.ProfileR\aprofile\"\x15\n" +
	"\x13ListProfilesRequest\"C\n" +
	"\x14ListProfilesResponse\x12+\n" +
	"\bprofiles\x18\x01 \x03(\v2\x0f.cvs.v1.ProfileR\bprofiles\"e\n" +
	"\x0eListCVsRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"/\n" +
	"\x0fListCVsResponse\x12\x1c\n" +
	"\x03cvs\x18\x01 \x03(\v2\n" +
	".cvs.v1.CVR\x03cvs\"\x1e\n" +
	"\fGetCVRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"+\n" +
	"\rGetCVResponse\x12\x1a\n" +
	"\x02cv\x18\x01 \x01(\v2\n" +
	".cvs.v1.CVR\x02cv\"F\n" +
	"\x11IngestFileRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x12\n" +
	"\x04path\x18\x02 \x01(\tR\x04path\"\xea\x01\n" +
	"\x0eIngestResponse\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x19\n" +
	"\bfile_ext\x18\x04 \x01(\tR\afileExt\x12\x1f\n" +
	"\vuploaded_at\x18\x05 \x01(\tR\n" +
	"uploadedAt\x12\x1f\n" +
	"\vsource_path\x18\x06 \x01(\tR\n" +
	"sourcePath\x12\x14\n" +
	"\x05error\x18\a \x01(\tR\x05error\"u\n" +
	"\x16IngestDirectoryRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x1b\n" +
	"\troot_path\x18\x02 \x01(\tR\brootPath\x12\x1f\n" +
	"\vskip_hidden\x18\x03 \x01(\bR\n" +
	"skipHidden\"\xd9\x01\n" +
	"\x17IngestDirectoryResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x02 \x01(\rR\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x03 \x01(\rR\tsucceeded\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\rR\fdeduplicated\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\rR\x06failed\x120\n" +
	"\aresults\x18\x06 \x03(\v2\x16.cvs.v1.IngestResponseR\aresults\"g\n" +
	"\x10ExportCVsRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"'\n" +
	"\x11ExportCVsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xaa\x01\n" +
	"\x0fProfilesService\x12L\n" +
	"\rCreateProfile\x12\x1c.cvs.v1.CreateProfileRequest\x1a\x1d.cvs.v1.CreateProfileResponse\x12I\n" +
	"\fListProfiles\x12\x1b.cvs.v1.ListProfilesRequest\x1a\x1c.cvs.v1.ListProfilesResponse2~\n" +
	"\n" +
	"CVsService\x12:\n" +
	"\aListCVs\x12\x16.cvs.v1.ListCVsRequest\x1a\x17.cvs.v1.ListCVsResponse\x124\n" +
	"\x05GetCV\x12\x14.cvs.v1.GetCVRequest\x1a\x15.cvs.v1.GetCVResponse2\xa7\x01\n" +
	"\x10IngestionService\x12?\n" +
	"\n" +
	"IngestFile\x12\x19.cvs.v1.IngestFileRequest\x1a\x16.cvs.v1.IngestResponse\x12R\n" +
	"\x0fIngestDirectory\x12\x1e.cvs.v1.IngestDirectoryRequest\x1a\x1f.cvs.v1.IngestDirectoryResponse2Q\n" +
	"\rExportService\x12@\n" +
	"\tExportCVs\x12\x18.cvs.v1.ExportCVsRequest\x1a\x19.cvs.v1.ExportCVsResponseB8Z6github.com/scanfolio/cv-scanner/gen/proto/cvs/v1;cvspbb\x06proto3"

var (
	file_cvs_v1_cvs_proto_rawDescOnce sync.Once
	file_cvs_v1_cvs_proto_rawDescData []byte
)

func file_cvs_v1_cvs_proto_rawDescGZIP() []byte {
	file_cvs_v1_cvs_proto_rawDescOnce.Do(func() {
		file_cvs_v1_cvs_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_cvs_v1_cvs_proto_rawDesc), len(file_cvs_v1_cvs_proto_rawDesc)))
	})
	return file_cvs_v1_cvs_proto_rawDescData
}

var file_cvs_v1_cvs_proto_msgTypes = make([]protoimpl.MessageInfo, 19)
var file_cvs_v1_cvs_proto_goTypes = []any{
	(*Profile)(nil),                 // 0: cvs.v1.Profile
	(*Experience)(nil),              // 1: cvs.v1.Experience
	(*Education)(nil),               // 2: cvs.v1.Education
	(*Skill)(nil),                   // 3: cvs.v1.Skill
	(*CV)(nil),                      // 4: cvs.v1.CV
	(*CreateProfileRequest)(nil),    // 5: cvs.v1.CreateProfileRequest
	(*CreateProfileResponse)(nil),   // 6: cvs.v1.CreateProfileResponse
	(*ListProfilesRequest)(nil),     // 7: cvs.v1.ListProfilesRequest
	(*ListProfilesResponse)(nil),    // 8: cvs.v1.ListProfilesResponse
	(*ListCVsRequest)(nil),          // 9: cvs.v1.ListCVsRequest
	(*ListCVsResponse)(nil),         // 10: cvs.v1.ListCVsResponse
	(*GetCVRequest)(nil),            // 11: cvs.v1.GetCVRequest
	(*GetCVResponse)(nil),           // 12: cvs.v1.GetCVResponse
	(*IngestFileRequest)(nil),       // 13: cvs.v1.IngestFileRequest
	(*IngestResponse)(nil),          // 14: cvs.v1.IngestResponse
	(*IngestDirectoryRequest)(nil),  // 15: cvs.v1.IngestDirectoryRequest
	(*IngestDirectoryResponse)(nil), // 16: cvs.v1.IngestDirectoryResponse
	(*ExportCVsRequest)(nil),        // 17: cvs.v1.ExportCVsRequest
	(*ExportCVsResponse)(nil),       // 18: cvs.v1.ExportCVsResponse
}
var file_cvs_v1_cvs_proto_depIdxs = []int32{
	1,  // 0: cvs.v1.CV.experiences:type_name -> cvs.v1.Experience
	2,  // 1: cvs.v1.CV.educations:type_name -> cvs.v1.Education
	3,  // 2: cvs.v1.CV.skills:type_name -> cvs.v1.Skill
	0,  // 3: cvs.v1.CreateProfileResponse.profile:type_name -> cvs.v1.Profile
	0,  // 4: cvs.v1.ListProfilesResponse.profiles:type_name -> cvs.v1.Profile
	4,  // 5: cvs.v1.ListCVsResponse.cvs:type_name -> cvs.v1.CV
	4,  // 6: cvs.v1.GetCVResponse.cv:type_name -> cvs.v1.CV
	14, // 7: cvs.v1.IngestDirectoryResponse.results:type_name -> cvs.v1.IngestResponse
	5,  // 8: cvs.v1.ProfilesService.CreateProfile:input_type -> cvs.v1.CreateProfileRequest
	7,  // 9: cvs.v1.ProfilesService.ListProfiles:input_type -> cvs.v1.ListProfilesRequest
	9,  // 10: cvs.v1.CVsService.ListCVs:input_type -> cvs.v1.ListCVsRequest
	11, // 11: cvs.v1.CVsService.GetCV:input_type -> cvs.v1.GetCVRequest
	13, // 12: cvs.v1.IngestionService.IngestFile:input_type -> cvs.v1.IngestFileRequest
	15, // 13: cvs.v1.IngestionService.IngestDirectory:input_type -> cvs.v1.IngestDirectoryRequest
	17, // 14: cvs.v1.ExportService.ExportCVs:input_type -> cvs.v1.ExportCVsRequest
	6,  // 15: cvs.v1.ProfilesService.CreateProfile:output_type -> cvs.v1.CreateProfileResponse
	8,  // 16: cvs.v1.ProfilesService.ListProfiles:output_type -> cvs.v1.ListProfilesResponse
	10, // 17: cvs.v1.CVsService.ListCVs:output_type -> cvs.v1.ListCVsResponse
	12, // 18: cvs.v1.CVsService.GetCV:output_type -> cvs.v1.GetCVResponse
	14, // 19: cvs.v1.IngestionService.IngestFile:output_type -> cvs.v1.IngestResponse
	16, // 20: cvs.v1.IngestionService.IngestDirectory:output_type -> cvs.v1.IngestDirectoryResponse
	18, // 21: cvs.v1.ExportService.ExportCVs:output_type -> cvs.v1.ExportCVsResponse
	15, // [15:22] is the sub-list for method output_type
	8,  // [8:15] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_cvs_v1_cvs_proto_init() }
func file_cvs_v1_cvs_proto_init() {
	if File_cvs_v1_cvs_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_cvs_v1_cvs_proto_rawDesc), len(file_cvs_v1_cvs_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   19,
			NumExtensions: 0,
			NumServices:   4,
		},
		GoTypes:           file_cvs_v1_cvs_proto_goTypes,
		DependencyIndexes: file_cvs_v1_cvs_proto_depIdxs,
		MessageInfos:      file_cvs_v1_cvs_proto_msgTypes,
	}.Build()
	File_cvs_v1_cvs_proto = out.File
	file_cvs_v1_cvs_proto_goTypes = nil
	file_cvs_v1_cvs_proto_depIdxs = nil
}
