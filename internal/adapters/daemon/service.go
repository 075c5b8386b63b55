package daemon

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "saltbundle.fileserver.v1.Fileserver"

// Method names of the Fileserver service.
const (
	MethodEnvs      = "Envs"
	MethodFindFile  = "FindFile"
	MethodFileList  = "FileList"
	MethodDirList   = "DirList"
	MethodFileHash  = "FileHash"
	MethodServeFile = "ServeFile"
	MethodUpdate    = "Update"
	MethodFileRoots = "FileRoots"
	MethodExtPillar = "ExtPillar"
	MethodStatus    = "Status"
	MethodShutdown  = "Shutdown"
)

// FileserverServer is the server API of the Fileserver service. Every
// message is a protobuf well-known type, so callers need no generated stubs.
type FileserverServer interface {
	Envs(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	FindFile(context.Context, *structpb.Struct) (*structpb.Struct, error)
	FileList(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	DirList(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	FileHash(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ServeFile(context.Context, *structpb.Struct) (*wrapperspb.BytesValue, error)
	Update(context.Context, *emptypb.Empty) (*wrapperspb.BoolValue, error)
	FileRoots(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	ExtPillar(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Status(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	Shutdown(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
}

// FileserverServiceDesc describes the Fileserver service for grpc.Server.
var FileserverServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*FileserverServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodEnvs, FileserverServer.Envs),
		unary(MethodFindFile, FileserverServer.FindFile),
		unary(MethodFileList, FileserverServer.FileList),
		unary(MethodDirList, FileserverServer.DirList),
		unary(MethodFileHash, FileserverServer.FileHash),
		unary(MethodServeFile, FileserverServer.ServeFile),
		unary(MethodUpdate, FileserverServer.Update),
		unary(MethodFileRoots, FileserverServer.FileRoots),
		unary(MethodExtPillar, FileserverServer.ExtPillar),
		unary(MethodStatus, FileserverServer.Status),
		unary(MethodShutdown, FileserverServer.Shutdown),
	},
	Metadata: "saltbundle/fileserver/v1/fileserver.proto",
}

// fullMethod returns the gRPC path of a Fileserver method.
func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// unary builds the method descriptor of a unary call, decoding the request
// into a fresh Req.
func unary[Req any, PReq interface {
	*Req
	proto.Message
}, Resp proto.Message](
	method string,
	call func(FileserverServer, context.Context, PReq) (Resp, error),
) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := PReq(new(Req))
			if err := dec(in); err != nil {
				return nil, err
			}
			server := srv.(FileserverServer)
			if interceptor == nil {
				return call(server, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(method)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(server, ctx, req.(PReq))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
