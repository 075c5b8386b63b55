// Package daemon serves the vendor namespace to out-of-process hosts over
// gRPC on a Unix domain socket, and provides the matching client.
package daemon

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/saltbundle/internal/core/domain"
	"go.trai.ch/saltbundle/internal/core/ports"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Client implements ports.DaemonClient and the rest of the Fileserver calls.
type Client struct {
	conn *grpc.ClientConn
}

var _ ports.DaemonClient = (*Client)(nil)

// Dial creates a client for the socket at socketPath.
// grpc.NewClient connects lazily, on the first call.
func Dial(socketPath string) (*Client, error) {
	abs, err := filepath.Abs(socketPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve socket path"), "path", socketPath)
	}

	conn, err := grpc.NewClient("unix://"+abs,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, zerr.Wrap(err, "daemon client creation failed")
	}
	return &Client{conn: conn}, nil
}

func (c *Client) invoke(ctx context.Context, method string, in, out proto.Message) error {
	return c.conn.Invoke(ctx, fullMethod(method), in, out)
}

// Status implements ports.DaemonClient.
func (c *Client) Status(ctx context.Context) (*ports.DaemonStatus, error) {
	out := &structpb.Struct{}
	if err := c.invoke(ctx, MethodStatus, &emptypb.Empty{}, out); err != nil {
		return nil, err
	}
	return &ports.DaemonStatus{
		Running:       out.GetFields()["running"].GetBoolValue(),
		PID:           int(int64Field(out, "pid")),
		Uptime:        time.Duration(int64Field(out, "uptime_seconds")) * time.Second,
		LastActivity:  time.Unix(int64Field(out, "last_activity_unix"), 0),
		IdleRemaining: time.Duration(int64Field(out, "idle_remaining_seconds")) * time.Second,
		ProjectDir:    stringField(out, "project_dir"),
		Formulas:      int(int64Field(out, "formulas")),
	}, nil
}

// Refresh implements ports.DaemonClient.
func (c *Client) Refresh(ctx context.Context) (bool, error) {
	out := &wrapperspb.BoolValue{}
	if err := c.invoke(ctx, MethodUpdate, &emptypb.Empty{}, out); err != nil {
		return false, err
	}
	return out.GetValue(), nil
}

// Shutdown implements ports.DaemonClient.
func (c *Client) Shutdown(ctx context.Context) error {
	return c.invoke(ctx, MethodShutdown, &emptypb.Empty{}, &emptypb.Empty{})
}

// Envs lists the environments served by the daemon.
func (c *Client) Envs(ctx context.Context) ([]string, error) {
	return c.list(ctx, MethodEnvs)
}

// FileList lists every file the daemon serves.
func (c *Client) FileList(ctx context.Context) ([]string, error) {
	return c.list(ctx, MethodFileList)
}

// DirList lists every directory the daemon serves.
func (c *Client) DirList(ctx context.Context) ([]string, error) {
	return c.list(ctx, MethodDirList)
}

// FileRoots lists the formula roots of the daemon's project.
func (c *Client) FileRoots(ctx context.Context) ([]string, error) {
	return c.list(ctx, MethodFileRoots)
}

// FindFile resolves a virtual path and returns the host's find result.
func (c *Client) FindFile(ctx context.Context, path, saltenv string) (map[string]any, error) {
	return c.call(ctx, MethodFindFile, map[string]any{"path": path, "saltenv": saltenv})
}

// FileHash digests the file at a virtual path.
func (c *Client) FileHash(ctx context.Context, path, hashType string) (map[string]any, error) {
	return c.call(ctx, MethodFileHash, map[string]any{"path": path, "hash_type": hashType})
}

// ExtPillar returns the external pillar for a minion.
func (c *Client) ExtPillar(ctx context.Context, minionID string, pillar map[string]any) (map[string]any, error) {
	req := map[string]any{"minion_id": minionID}
	if pillar != nil {
		req["pillar"] = pillar
	}
	return c.call(ctx, MethodExtPillar, req)
}

// ServeFile returns the content of the file at a virtual path.
func (c *Client) ServeFile(ctx context.Context, path string) ([]byte, error) {
	in, err := structpb.NewStruct(map[string]any{"path": path})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode request")
	}
	out := &wrapperspb.BytesValue{}
	if err := c.invoke(ctx, MethodServeFile, in, out); err != nil {
		return nil, err
	}
	return out.GetValue(), nil
}

// Close implements ports.DaemonClient.
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) list(ctx context.Context, method string) ([]string, error) {
	out := &structpb.ListValue{}
	if err := c.invoke(ctx, method, &emptypb.Empty{}, out); err != nil {
		return nil, err
	}
	values := make([]string, 0, len(out.GetValues()))
	for _, v := range out.GetValues() {
		values = append(values, v.GetStringValue())
	}
	return values, nil
}

func (c *Client) call(ctx context.Context, method string, req map[string]any) (map[string]any, error) {
	in, err := structpb.NewStruct(req)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode request")
	}
	out := &structpb.Struct{}
	if err := c.invoke(ctx, method, in, out); err != nil {
		return nil, err
	}
	return out.AsMap(), nil
}

// Connector implements ports.DaemonConnector.
type Connector struct{}

var _ ports.DaemonConnector = (*Connector)(nil)

// NewConnector creates a new daemon connector.
func NewConnector() *Connector {
	return &Connector{}
}

// Connect returns a client to a responsive daemon at socketPath.
func (c *Connector) Connect(ctx context.Context, socketPath string) (ports.DaemonClient, error) {
	return connect(ctx, socketPath)
}

func connect(ctx context.Context, socketPath string) (*Client, error) {
	if _, err := os.Stat(socketPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrDaemonUnavailable, "no socket"), "path", socketPath)
		}
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrDaemonUnavailable, err), "cannot stat socket"),
			"path", socketPath)
	}

	client, err := Dial(socketPath)
	if err != nil {
		return nil, err
	}
	if _, err := client.Status(ctx); err != nil {
		_ = client.Close()
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrDaemonUnavailable, err), "daemon did not answer"),
			"path", socketPath)
	}
	return client, nil
}
