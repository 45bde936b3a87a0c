// Package pb holds the gRPC bindings for proto/partstore/v1/parts.proto. The
// service only uses protobuf well-known types, so there is no message code.
package pb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	PartService_SubmitPart_FullMethodName = "/partstore.v1.PartService/SubmitPart"
	PartService_ListParts_FullMethodName  = "/partstore.v1.PartService/ListParts"
	PartService_UpdatePart_FullMethodName = "/partstore.v1.PartService/UpdatePart"
	PartService_DeletePart_FullMethodName = "/partstore.v1.PartService/DeletePart"
)

type PartServiceClient interface {
	SubmitPart(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListParts(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
	UpdatePart(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	DeletePart(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type partServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPartServiceClient(cc grpc.ClientConnInterface) PartServiceClient {
	return &partServiceClient{cc}
}

func (c *partServiceClient) SubmitPart(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, PartService_SubmitPart_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *partServiceClient) ListParts(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, PartService_ListParts_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *partServiceClient) UpdatePart(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, PartService_UpdatePart_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *partServiceClient) DeletePart(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, PartService_DeletePart_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// PartServiceServer must embed UnimplementedPartServiceServer.
type PartServiceServer interface {
	SubmitPart(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListParts(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	UpdatePart(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeletePart(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	mustEmbedUnimplementedPartServiceServer()
}

type UnimplementedPartServiceServer struct{}

func (UnimplementedPartServiceServer) SubmitPart(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method SubmitPart not implemented")
}

func (UnimplementedPartServiceServer) ListParts(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, status.Error(codes.Unimplemented, "method ListParts not implemented")
}

func (UnimplementedPartServiceServer) UpdatePart(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdatePart not implemented")
}

func (UnimplementedPartServiceServer) DeletePart(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method DeletePart not implemented")
}

func (UnimplementedPartServiceServer) mustEmbedUnimplementedPartServiceServer() {}

func RegisterPartServiceServer(s grpc.ServiceRegistrar, srv PartServiceServer) {
	s.RegisterService(&PartService_ServiceDesc, srv)
}

func _PartService_SubmitPart_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PartServiceServer).SubmitPart(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PartService_SubmitPart_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PartServiceServer).SubmitPart(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _PartService_ListParts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PartServiceServer).ListParts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PartService_ListParts_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PartServiceServer).ListParts(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _PartService_UpdatePart_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PartServiceServer).UpdatePart(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PartService_UpdatePart_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PartServiceServer).UpdatePart(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _PartService_DeletePart_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PartServiceServer).DeletePart(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PartService_DeletePart_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PartServiceServer).DeletePart(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

var PartService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "partstore.v1.PartService",
	HandlerType: (*PartServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SubmitPart", Handler: _PartService_SubmitPart_Handler},
		{MethodName: "ListParts", Handler: _PartService_ListParts_Handler},
		{MethodName: "UpdatePart", Handler: _PartService_UpdatePart_Handler},
		{MethodName: "DeletePart", Handler: _PartService_DeletePart_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/partstore/v1/parts.proto",
}
