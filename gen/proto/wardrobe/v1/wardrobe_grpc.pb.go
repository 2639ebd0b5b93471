// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: wardrobe/v1/wardrobe.proto

package wardrobev1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	WardrobeService_IngestPhoto_FullMethodName    = "/wardrobe.v1.WardrobeService/IngestPhoto"
	WardrobeService_ListItems_FullMethodName      = "/wardrobe.v1.WardrobeService/ListItems"
	WardrobeService_ExportWardrobe_FullMethodName = "/wardrobe.v1.WardrobeService/ExportWardrobe"
)

// WardrobeServiceClient is the client API for WardrobeService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type WardrobeServiceClient interface {
	IngestPhoto(ctx context.Context, in *IngestPhotoRequest, opts ...grpc.CallOption) (*IngestPhotoResponse, error)
	ListItems(ctx context.Context, in *ListItemsRequest, opts ...grpc.CallOption) (*ListItemsResponse, error)
	ExportWardrobe(ctx context.Context, in *ExportWardrobeRequest, opts ...grpc.CallOption) (*ExportWardrobeResponse, error)
}

type wardrobeServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewWardrobeServiceClient(cc grpc.ClientConnInterface) WardrobeServiceClient {
	return &wardrobeServiceClient{cc}
}

func (c *wardrobeServiceClient) IngestPhoto(ctx context.Context, in *IngestPhotoRequest, opts ...grpc.CallOption) (*IngestPhotoResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IngestPhotoResponse)
	err := c.cc.Invoke(ctx, WardrobeService_IngestPhoto_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *wardrobeServiceClient) ListItems(ctx context.Context, in *ListItemsRequest, opts ...grpc.CallOption) (*ListItemsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListItemsResponse)
	err := c.cc.Invoke(ctx, WardrobeService_ListItems_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *wardrobeServiceClient) ExportWardrobe(ctx context.Context, in *ExportWardrobeRequest, opts ...grpc.CallOption) (*ExportWardrobeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportWardrobeResponse)
	err := c.cc.Invoke(ctx, WardrobeService_ExportWardrobe_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// WardrobeServiceServer is the server API for WardrobeService service.
// All implementations must embed UnimplementedWardrobeServiceServer
// for forward compatibility.
type WardrobeServiceServer interface {
	IngestPhoto(context.Context, *IngestPhotoRequest) (*IngestPhotoResponse, error)
	ListItems(context.Context, *ListItemsRequest) (*ListItemsResponse, error)
	ExportWardrobe(context.Context, *ExportWardrobeRequest) (*ExportWardrobeResponse, error)
	mustEmbedUnimplementedWardrobeServiceServer()
}

// UnimplementedWardrobeServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedWardrobeServiceServer struct{}

func (UnimplementedWardrobeServiceServer) IngestPhoto(context.Context, *IngestPhotoRequest) (*IngestPhotoResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method IngestPhoto not implemented")
}
func (UnimplementedWardrobeServiceServer) ListItems(context.Context, *ListItemsRequest) (*ListItemsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListItems not implemented")
}
func (UnimplementedWardrobeServiceServer) ExportWardrobe(context.Context, *ExportWardrobeRequest) (*ExportWardrobeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportWardrobe not implemented")
}
func (UnimplementedWardrobeServiceServer) mustEmbedUnimplementedWardrobeServiceServer() {}
func (UnimplementedWardrobeServiceServer) testEmbeddedByValue()                         {}

// UnsafeWardrobeServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to WardrobeServiceServer will
// result in compilation errors.
type UnsafeWardrobeServiceServer interface {
	mustEmbedUnimplementedWardrobeServiceServer()
}

func RegisterWardrobeServiceServer(s grpc.ServiceRegistrar, srv WardrobeServiceServer) {
	// If the following call panics, it indicates UnimplementedWardrobeServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&WardrobeService_ServiceDesc, srv)
}

func _WardrobeService_IngestPhoto_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IngestPhotoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WardrobeServiceServer).IngestPhoto(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WardrobeService_IngestPhoto_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WardrobeServiceServer).IngestPhoto(ctx, req.(*IngestPhotoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WardrobeService_ListItems_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListItemsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WardrobeServiceServer).ListItems(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WardrobeService_ListItems_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WardrobeServiceServer).ListItems(ctx, req.(*ListItemsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WardrobeService_ExportWardrobe_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportWardrobeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WardrobeServiceServer).ExportWardrobe(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WardrobeService_ExportWardrobe_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WardrobeServiceServer).ExportWardrobe(ctx, req.(*ExportWardrobeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// WardrobeService_ServiceDesc is the grpc.ServiceDesc for WardrobeService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var WardrobeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "wardrobe.v1.WardrobeService",
	HandlerType: (*WardrobeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "IngestPhoto",
			Handler:    _WardrobeService_IngestPhoto_Handler,
		},
		{
			MethodName: "ListItems",
			Handler:    _WardrobeService_ListItems_Handler,
		},
		{
			MethodName: "ExportWardrobe",
			Handler:    _WardrobeService_ExportWardrobe_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "wardrobe/v1/wardrobe.proto",
}
