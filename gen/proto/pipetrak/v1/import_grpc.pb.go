// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: pipetrak/v1/import.proto

package pipetrakv1

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
	ImportService_PreviewImport_FullMethodName = "/pipetrak.v1.ImportService/PreviewImport"
	ImportService_ExecuteImport_FullMethodName = "/pipetrak.v1.ImportService/ExecuteImport"
	ImportService_SubmitImport_FullMethodName  = "/pipetrak.v1.ImportService/SubmitImport"
	ImportService_GetImportJob_FullMethodName  = "/pipetrak.v1.ImportService/GetImportJob"
)

// ImportServiceClient is the client API for ImportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ImportService ingests takeoff spreadsheets into a project: preview the
// column mapping and validation output, then execute the write synchronously
// or submit it for background execution.
type ImportServiceClient interface {
	PreviewImport(ctx context.Context, in *PreviewImportRequest, opts ...grpc.CallOption) (*PreviewImportResponse, error)
	ExecuteImport(ctx context.Context, in *ExecuteImportRequest, opts ...grpc.CallOption) (*ExecuteImportResponse, error)
	SubmitImport(ctx context.Context, in *SubmitImportRequest, opts ...grpc.CallOption) (*SubmitImportResponse, error)
	GetImportJob(ctx context.Context, in *GetImportJobRequest, opts ...grpc.CallOption) (*GetImportJobResponse, error)
}

type importServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewImportServiceClient(cc grpc.ClientConnInterface) ImportServiceClient {
	return &importServiceClient{cc}
}

func (c *importServiceClient) PreviewImport(ctx context.Context, in *PreviewImportRequest, opts ...grpc.CallOption) (*PreviewImportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PreviewImportResponse)
	err := c.cc.Invoke(ctx, ImportService_PreviewImport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *importServiceClient) ExecuteImport(ctx context.Context, in *ExecuteImportRequest, opts ...grpc.CallOption) (*ExecuteImportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExecuteImportResponse)
	err := c.cc.Invoke(ctx, ImportService_ExecuteImport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *importServiceClient) SubmitImport(ctx context.Context, in *SubmitImportRequest, opts ...grpc.CallOption) (*SubmitImportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitImportResponse)
	err := c.cc.Invoke(ctx, ImportService_SubmitImport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *importServiceClient) GetImportJob(ctx context.Context, in *GetImportJobRequest, opts ...grpc.CallOption) (*GetImportJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetImportJobResponse)
	err := c.cc.Invoke(ctx, ImportService_GetImportJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ImportServiceServer is the server API for ImportService service.
// All implementations must embed UnimplementedImportServiceServer
// for forward compatibility.
//
// ImportService ingests takeoff spreadsheets into a project: preview the
// column mapping and validation output, then execute the write synchronously
// or submit it for background execution.
type ImportServiceServer interface {
	PreviewImport(context.Context, *PreviewImportRequest) (*PreviewImportResponse, error)
	ExecuteImport(context.Context, *ExecuteImportRequest) (*ExecuteImportResponse, error)
	SubmitImport(context.Context, *SubmitImportRequest) (*SubmitImportResponse, error)
	GetImportJob(context.Context, *GetImportJobRequest) (*GetImportJobResponse, error)
	mustEmbedUnimplementedImportServiceServer()
}

// UnimplementedImportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedImportServiceServer struct{}

func (UnimplementedImportServiceServer) PreviewImport(context.Context, *PreviewImportRequest) (*PreviewImportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PreviewImport not implemented")
}
func (UnimplementedImportServiceServer) ExecuteImport(context.Context, *ExecuteImportRequest) (*ExecuteImportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExecuteImport not implemented")
}
func (UnimplementedImportServiceServer) SubmitImport(context.Context, *SubmitImportRequest) (*SubmitImportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitImport not implemented")
}
func (UnimplementedImportServiceServer) GetImportJob(context.Context, *GetImportJobRequest) (*GetImportJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetImportJob not implemented")
}
func (UnimplementedImportServiceServer) mustEmbedUnimplementedImportServiceServer() {}
func (UnimplementedImportServiceServer) testEmbeddedByValue()                       {}

// UnsafeImportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ImportServiceServer will
// result in compilation errors.
type UnsafeImportServiceServer interface {
	mustEmbedUnimplementedImportServiceServer()
}

func RegisterImportServiceServer(s grpc.ServiceRegistrar, srv ImportServiceServer) {
	// If the following call pancis, it indicates UnimplementedImportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ImportService_ServiceDesc, srv)
}

func _ImportService_PreviewImport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PreviewImportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImportServiceServer).PreviewImport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ImportService_PreviewImport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ImportServiceServer).PreviewImport(ctx, req.(*PreviewImportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ImportService_ExecuteImport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExecuteImportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImportServiceServer).ExecuteImport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ImportService_ExecuteImport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ImportServiceServer).ExecuteImport(ctx, req.(*ExecuteImportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ImportService_SubmitImport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitImportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImportServiceServer).SubmitImport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ImportService_SubmitImport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ImportServiceServer).SubmitImport(ctx, req.(*SubmitImportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ImportService_GetImportJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetImportJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImportServiceServer).GetImportJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ImportService_GetImportJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ImportServiceServer).GetImportJob(ctx, req.(*GetImportJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ImportService_ServiceDesc is the grpc.ServiceDesc for ImportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ImportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "pipetrak.v1.ImportService",
	HandlerType: (*ImportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "PreviewImport",
			Handler:    _ImportService_PreviewImport_Handler,
		},
		{
			MethodName: "ExecuteImport",
			Handler:    _ImportService_ExecuteImport_Handler,
		},
		{
			MethodName: "SubmitImport",
			Handler:    _ImportService_SubmitImport_Handler,
		},
		{
			MethodName: "GetImportJob",
			Handler:    _ImportService_GetImportJob_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pipetrak/v1/import.proto",
}
