package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// EncounterServiceName is the fully qualified gRPC service name
const EncounterServiceName = "rpgforge.v1alpha1.EncounterService"

// Full method names
const (
	EncounterService_GenerateEncounter_FullMethodName = "/" + EncounterServiceName + "/GenerateEncounter"
	EncounterService_GetEncounter_FullMethodName      = "/" + EncounterServiceName + "/GetEncounter"
	EncounterService_ListEncounters_FullMethodName    = "/" + EncounterServiceName + "/ListEncounters"
	EncounterService_DeleteEncounter_FullMethodName   = "/" + EncounterServiceName + "/DeleteEncounter"
	EncounterService_AnalyzeParty_FullMethodName      = "/" + EncounterServiceName + "/AnalyzeParty"
)

// EncounterServiceServer is the server API for the encounter service
type EncounterServiceServer interface {
	GenerateEncounter(context.Context, *GenerateEncounterRequest) (*GenerateEncounterResponse, error)
	GetEncounter(context.Context, *GetEncounterRequest) (*GetEncounterResponse, error)
	ListEncounters(context.Context, *ListEncountersRequest) (*ListEncountersResponse, error)
	DeleteEncounter(context.Context, *DeleteEncounterRequest) (*DeleteEncounterResponse, error)
	AnalyzeParty(context.Context, *AnalyzePartyRequest) (*AnalyzePartyResponse, error)
}

// UnimplementedEncounterServiceServer can be embedded to keep servers forward compatible
type UnimplementedEncounterServiceServer struct{}

func (UnimplementedEncounterServiceServer) GenerateEncounter(context.Context, *GenerateEncounterRequest) (*GenerateEncounterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GenerateEncounter not implemented")
}

func (UnimplementedEncounterServiceServer) GetEncounter(context.Context, *GetEncounterRequest) (*GetEncounterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetEncounter not implemented")
}

func (UnimplementedEncounterServiceServer) ListEncounters(context.Context, *ListEncountersRequest) (*ListEncountersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListEncounters not implemented")
}

func (UnimplementedEncounterServiceServer) DeleteEncounter(context.Context, *DeleteEncounterRequest) (*DeleteEncounterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteEncounter not implemented")
}

func (UnimplementedEncounterServiceServer) AnalyzeParty(context.Context, *AnalyzePartyRequest) (*AnalyzePartyResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AnalyzeParty not implemented")
}

// RegisterEncounterServiceServer registers the implementation with a gRPC server
func RegisterEncounterServiceServer(s grpc.ServiceRegistrar, srv EncounterServiceServer) {
	s.RegisterService(&EncounterService_ServiceDesc, srv)
}

func _EncounterService_GenerateEncounter_Handler(
	srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(GenerateEncounterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EncounterServiceServer).GenerateEncounter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EncounterService_GenerateEncounter_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EncounterServiceServer).GenerateEncounter(ctx, req.(*GenerateEncounterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EncounterService_GetEncounter_Handler(
	srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(GetEncounterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EncounterServiceServer).GetEncounter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EncounterService_GetEncounter_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EncounterServiceServer).GetEncounter(ctx, req.(*GetEncounterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EncounterService_ListEncounters_Handler(
	srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(ListEncountersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EncounterServiceServer).ListEncounters(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EncounterService_ListEncounters_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EncounterServiceServer).ListEncounters(ctx, req.(*ListEncountersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EncounterService_DeleteEncounter_Handler(
	srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(DeleteEncounterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EncounterServiceServer).DeleteEncounter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EncounterService_DeleteEncounter_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EncounterServiceServer).DeleteEncounter(ctx, req.(*DeleteEncounterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EncounterService_AnalyzeParty_Handler(
	srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(AnalyzePartyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EncounterServiceServer).AnalyzeParty(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EncounterService_AnalyzeParty_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EncounterServiceServer).AnalyzeParty(ctx, req.(*AnalyzePartyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// EncounterService_ServiceDesc describes the encounter service for grpc.RegisterService
var EncounterService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: EncounterServiceName,
	HandlerType: (*EncounterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GenerateEncounter",
			Handler:    _EncounterService_GenerateEncounter_Handler,
		},
		{
			MethodName: "GetEncounter",
			Handler:    _EncounterService_GetEncounter_Handler,
		},
		{
			MethodName: "ListEncounters",
			Handler:    _EncounterService_ListEncounters_Handler,
		},
		{
			MethodName: "DeleteEncounter",
			Handler:    _EncounterService_DeleteEncounter_Handler,
		},
		{
			MethodName: "AnalyzeParty",
			Handler:    _EncounterService_AnalyzeParty_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rpgforge/v1alpha1/encounter.json",
}

// EncounterServiceClient is the client API for the encounter service
type EncounterServiceClient interface {
	GenerateEncounter(ctx context.Context, in *GenerateEncounterRequest, opts ...grpc.CallOption) (*GenerateEncounterResponse, error)
	GetEncounter(ctx context.Context, in *GetEncounterRequest, opts ...grpc.CallOption) (*GetEncounterResponse, error)
	ListEncounters(ctx context.Context, in *ListEncountersRequest, opts ...grpc.CallOption) (*ListEncountersResponse, error)
	DeleteEncounter(ctx context.Context, in *DeleteEncounterRequest, opts ...grpc.CallOption) (*DeleteEncounterResponse, error)
	AnalyzeParty(ctx context.Context, in *AnalyzePartyRequest, opts ...grpc.CallOption) (*AnalyzePartyResponse, error)
}

type encounterServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewEncounterServiceClient returns a client that always calls with the JSON codec
func NewEncounterServiceClient(cc grpc.ClientConnInterface) EncounterServiceClient {
	return &encounterServiceClient{cc: cc}
}

func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}

func (c *encounterServiceClient) GenerateEncounter(
	ctx context.Context, in *GenerateEncounterRequest, opts ...grpc.CallOption,
) (*GenerateEncounterResponse, error) {
	out := new(GenerateEncounterResponse)
	if err := c.cc.Invoke(ctx, EncounterService_GenerateEncounter_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *encounterServiceClient) GetEncounter(
	ctx context.Context, in *GetEncounterRequest, opts ...grpc.CallOption,
) (*GetEncounterResponse, error) {
	out := new(GetEncounterResponse)
	if err := c.cc.Invoke(ctx, EncounterService_GetEncounter_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *encounterServiceClient) ListEncounters(
	ctx context.Context, in *ListEncountersRequest, opts ...grpc.CallOption,
) (*ListEncountersResponse, error) {
	out := new(ListEncountersResponse)
	if err := c.cc.Invoke(ctx, EncounterService_ListEncounters_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *encounterServiceClient) DeleteEncounter(
	ctx context.Context, in *DeleteEncounterRequest, opts ...grpc.CallOption,
) (*DeleteEncounterResponse, error) {
	out := new(DeleteEncounterResponse)
	if err := c.cc.Invoke(ctx, EncounterService_DeleteEncounter_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *encounterServiceClient) AnalyzeParty(
	ctx context.Context, in *AnalyzePartyRequest, opts ...grpc.CallOption,
) (*AnalyzePartyResponse, error) {
	out := new(AnalyzePartyResponse)
	if err := c.cc.Invoke(ctx, EncounterService_AnalyzeParty_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}
