package pb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

const _ = grpc.SupportPackageIsVersion9

const (
	TestDataService_GenerateData_FullMethodName       = "/datagen.v1.TestDataService/GenerateData"
	TestDataService_GenerateDataStream_FullMethodName = "/datagen.v1.TestDataService/GenerateDataStream"
	TestDataService_GetSchemas_FullMethodName         = "/datagen.v1.TestDataService/GetSchemas"
	TestDataService_HealthCheck_FullMethodName        = "/datagen.v1.TestDataService/HealthCheck"
)

type TestDataServiceClient interface {
	GenerateData(ctx context.Context, in *GenerateRequest, opts ...grpc.CallOption) (*GenerateResponse, error)

	GenerateDataStream(ctx context.Context, in *GenerateRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[DataChunk], error)

	GetSchemas(ctx context.Context, in *GetSchemasRequest, opts ...grpc.CallOption) (*GetSchemasResponse, error)

	HealthCheck(ctx context.Context, in *HealthCheckRequest, opts ...grpc.CallOption) (*HealthCheckResponse, error)
}

type testDataServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTestDataServiceClient(cc grpc.ClientConnInterface) TestDataServiceClient {
	return &testDataServiceClient{cc}
}

func (c *testDataServiceClient) GenerateData(ctx context.Context, in *GenerateRequest, opts ...grpc.CallOption) (*GenerateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GenerateResponse)
	err := c.cc.Invoke(ctx, TestDataService_GenerateData_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *testDataServiceClient) GenerateDataStream(ctx context.Context, in *GenerateRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[DataChunk], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &TestDataService_ServiceDesc.Streams[0], TestDataService_GenerateDataStream_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[GenerateRequest, DataChunk]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type TestDataService_GenerateDataStreamClient = grpc.ServerStreamingClient[DataChunk]

func (c *testDataServiceClient) GetSchemas(ctx context.Context, in *GetSchemasRequest, opts ...grpc.CallOption) (*GetSchemasResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetSchemasResponse)
	err := c.cc.Invoke(ctx, TestDataService_GetSchemas_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *testDataServiceClient) HealthCheck(ctx context.Context, in *HealthCheckRequest, opts ...grpc.CallOption) (*HealthCheckResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(HealthCheckResponse)
	err := c.cc.Invoke(ctx, TestDataService_HealthCheck_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

type TestDataServiceServer interface {
	GenerateData(context.Context, *GenerateRequest) (*GenerateResponse, error)

	GenerateDataStream(*GenerateRequest, grpc.ServerStreamingServer[DataChunk]) error

	GetSchemas(context.Context, *GetSchemasRequest) (*GetSchemasResponse, error)

	HealthCheck(context.Context, *HealthCheckRequest) (*HealthCheckResponse, error)
	mustEmbedUnimplementedTestDataServiceServer()
}

type UnimplementedTestDataServiceServer struct{}

func (UnimplementedTestDataServiceServer) GenerateData(context.Context, *GenerateRequest) (*GenerateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GenerateData not implemented")
}
func (UnimplementedTestDataServiceServer) GenerateDataStream(*GenerateRequest, grpc.ServerStreamingServer[DataChunk]) error {
	return status.Errorf(codes.Unimplemented, "method GenerateDataStream not implemented")
}
func (UnimplementedTestDataServiceServer) GetSchemas(context.Context, *GetSchemasRequest) (*GetSchemasResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSchemas not implemented")
}
func (UnimplementedTestDataServiceServer) HealthCheck(context.Context, *HealthCheckRequest) (*HealthCheckResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method HealthCheck not implemented")
}
func (UnimplementedTestDataServiceServer) mustEmbedUnimplementedTestDataServiceServer() {}
func (UnimplementedTestDataServiceServer) testEmbeddedByValue()                         {}

type UnsafeTestDataServiceServer interface {
	mustEmbedUnimplementedTestDataServiceServer()
}

func RegisterTestDataServiceServer(s grpc.ServiceRegistrar, srv TestDataServiceServer) {

	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&TestDataService_ServiceDesc, srv)
}

func _TestDataService_GenerateData_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GenerateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TestDataServiceServer).GenerateData(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TestDataService_GenerateData_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TestDataServiceServer).GenerateData(ctx, req.(*GenerateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TestDataService_GenerateDataStream_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(GenerateRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(TestDataServiceServer).GenerateDataStream(m, &grpc.GenericServerStream[GenerateRequest, DataChunk]{ServerStream: stream})
}

type TestDataService_GenerateDataStreamServer = grpc.ServerStreamingServer[DataChunk]

func _TestDataService_GetSchemas_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSchemasRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TestDataServiceServer).GetSchemas(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TestDataService_GetSchemas_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TestDataServiceServer).GetSchemas(ctx, req.(*GetSchemasRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TestDataService_HealthCheck_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(HealthCheckRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TestDataServiceServer).HealthCheck(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TestDataService_HealthCheck_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TestDataServiceServer).HealthCheck(ctx, req.(*HealthCheckRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var TestDataService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "datagen.v1.TestDataService",
	HandlerType: (*TestDataServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GenerateData",
			Handler:    _TestDataService_GenerateData_Handler,
		},
		{
			MethodName: "GetSchemas",
			Handler:    _TestDataService_GetSchemas_Handler,
		},
		{
			MethodName: "HealthCheck",
			Handler:    _TestDataService_HealthCheck_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "GenerateDataStream",
			Handler:       _TestDataService_GenerateDataStream_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "datagen.proto",
}
