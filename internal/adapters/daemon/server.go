package daemon

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"go.trai.ch/saltbundle/internal/core/domain"
	"go.trai.ch/saltbundle/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// IndexInfo reports the project served and the number of formulas currently
// indexed, without building the index.
type IndexInfo func() (projectDir string, formulas int)

// Server exposes a ports.Fileserver over gRPC on a Unix domain socket.
type Server struct {
	fileserver ports.Fileserver
	opts       domain.HostOptions
	lifecycle  *Lifecycle
	logger     ports.Logger
	indexInfo  IndexInfo
	grpcServer *grpc.Server
}

var _ FileserverServer = (*Server)(nil)

// NewServer creates a server answering with fs under the given host options.
// Every request counts as activity for the lifecycle.
func NewServer(
	fs ports.Fileserver,
	opts domain.HostOptions,
	lifecycle *Lifecycle,
	logger ports.Logger,
	indexInfo IndexInfo,
) *Server {
	s := &Server{
		fileserver: fs,
		opts:       opts,
		lifecycle:  lifecycle,
		logger:     logger,
		indexInfo:  indexInfo,
	}
	s.grpcServer = grpc.NewServer(grpc.UnaryInterceptor(s.touch))
	s.grpcServer.RegisterService(&FileserverServiceDesc, s)
	return s
}

func (s *Server) touch(
	ctx context.Context,
	req any,
	_ *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (any, error) {
	s.lifecycle.Touch()
	return handler(ctx, req)
}

// Serve listens on socketPath until ctx is done or the lifecycle shuts down.
// The socket and the PID file next to it are removed on return.
func (s *Server) Serve(ctx context.Context, socketPath string) error {
	lis, err := listen(socketPath)
	if err != nil {
		return err
	}

	pidPath := domain.DaemonPIDPath(socketPath)
	if err := os.WriteFile(pidPath, []byte(strconv.Itoa(os.Getpid())), domain.PrivateFilePerm); err != nil {
		_ = lis.Close()
		_ = os.Remove(socketPath)
		return zerr.With(zerr.Wrap(err, "failed to write PID file"), "path", pidPath)
	}
	defer func() {
		_ = os.Remove(socketPath)
		_ = os.Remove(pidPath)
	}()

	s.logger.Info("daemon listening on " + socketPath)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.grpcServer.Serve(lis); err != nil {
			return zerr.Wrap(err, "daemon server failed")
		}
		return nil
	})
	g.Go(func() error {
		select {
		case <-gctx.Done():
		case <-s.lifecycle.Done():
		}
		s.grpcServer.GracefulStop()
		return nil
	})

	err = g.Wait()
	s.logger.Info("daemon stopped")
	return err
}

func listen(socketPath string) (net.Listener, error) {
	if err := os.MkdirAll(filepath.Dir(socketPath), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create daemon directory"), "path", socketPath)
	}
	if err := os.Remove(socketPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, zerr.With(zerr.Wrap(err, "failed to remove stale socket"), "path", socketPath)
	}

	lis, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to listen on socket"), "path", socketPath)
	}
	if err := os.Chmod(socketPath, domain.SocketPerm); err != nil {
		_ = lis.Close()
		return nil, zerr.With(zerr.Wrap(err, "failed to set socket permissions"), "path", socketPath)
	}
	return lis, nil
}

// Envs implements FileserverServer.
func (s *Server) Envs(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	return stringList(s.fileserver.Envs(ctx))
}

// FindFile implements FileserverServer. The request carries path and saltenv.
func (s *Server) FindFile(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	desc := s.fileserver.FindFile(ctx, s.opts, stringField(req, "path"), stringField(req, "saltenv"))
	return structValue(desc.Map())
}

// FileList implements FileserverServer.
func (s *Server) FileList(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	return stringList(s.fileserver.FileList(ctx, s.opts))
}

// DirList implements FileserverServer.
func (s *Server) DirList(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	return stringList(s.fileserver.DirList(ctx, s.opts))
}

// FileHash implements FileserverServer. The request carries path and an
// optional hash_type.
func (s *Server) FileHash(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sum := s.fileserver.FileHash(ctx, s.opts, stringField(req, "path"), stringField(req, "hash_type"))
	return structValue(sum.Map())
}

// ServeFile implements FileserverServer. The request carries path.
func (s *Server) ServeFile(ctx context.Context, req *structpb.Struct) (*wrapperspb.BytesValue, error) {
	return wrapperspb.Bytes(s.fileserver.ServeFile(ctx, s.opts, stringField(req, "path"))), nil
}

// Update implements FileserverServer.
func (s *Server) Update(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.BoolValue, error) {
	return wrapperspb.Bool(s.fileserver.Update(ctx)), nil
}

// FileRoots implements FileserverServer.
func (s *Server) FileRoots(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	return stringList(s.fileserver.FileRoots(ctx, s.opts))
}

// ExtPillar implements FileserverServer. The request carries minion_id and
// the minion's current pillar.
func (s *Server) ExtPillar(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var pillar map[string]any
	if p := req.GetFields()["pillar"].GetStructValue(); p != nil {
		pillar = p.AsMap()
	}
	return structValue(s.fileserver.ExtPillar(ctx, s.opts, stringField(req, "minion_id"), pillar))
}

// Status implements FileserverServer.
func (s *Server) Status(_ context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	projectDir, formulas := "", 0
	if s.indexInfo != nil {
		projectDir, formulas = s.indexInfo()
	}

	return structValue(map[string]any{
		"running":                true,
		"pid":                    os.Getpid(),
		"uptime_seconds":         int64(s.lifecycle.Uptime().Seconds()),
		"last_activity_unix":     s.lifecycle.LastActivity().Unix(),
		"idle_remaining_seconds": int64(s.lifecycle.IdleRemaining().Seconds()),
		"project_dir":            projectDir,
		"formulas":               formulas,
	})
}

// Shutdown implements FileserverServer.
func (s *Server) Shutdown(_ context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	s.logger.Info("daemon shutdown requested")
	s.lifecycle.Shutdown()
	return &emptypb.Empty{}, nil
}

func stringField(req *structpb.Struct, key string) string {
	return req.GetFields()[key].GetStringValue()
}

func stringList(values []string) (*structpb.ListValue, error) {
	items := make([]any, len(values))
	for i, v := range values {
		items[i] = v
	}
	list, err := structpb.NewList(items)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return list, nil
}

func structValue(m map[string]any) (*structpb.Struct, error) {
	st, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Error(codes.Internal, fmt.Sprintf("encode response: %v", err))
	}
	return st, nil
}

// int64Field reads a numeric field. Struct numbers are float64 on the wire.
func int64Field(st *structpb.Struct, key string) int64 {
	v := st.GetFields()[key].GetNumberValue()
	if v > math.MaxInt64 || v < math.MinInt64 {
		return 0
	}
	return int64(v)
}
