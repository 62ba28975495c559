package api

import (
	"context"

	"google.golang.org/grpc"
)

// Full method names of the DailyWordle service.
const (
	PlayMethod     = "/wordle.v1.DailyWordle/Play"
	GetStatsMethod = "/wordle.v1.DailyWordle/GetStats"
)

// DailyWordleClient is the client API for the game service.
type DailyWordleClient interface {
	// Play opens a game. The client sends guesses; the server answers each one in
	// order and closes the stream once the game is over.
	Play(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[GuessRequest, GuessResponse], error)
	GetStats(ctx context.Context, in *StatsRequest, opts ...grpc.CallOption) (*StatsResponse, error)
}

type dailyWordleClient struct {
	cc grpc.ClientConnInterface
}

// NewDailyWordleClient wraps a connection to a game server.
func NewDailyWordleClient(cc grpc.ClientConnInterface) DailyWordleClient {
	return &dailyWordleClient{cc: cc}
}

func (c *dailyWordleClient) Play(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[GuessRequest, GuessResponse], error) {
	cOpts := append([]grpc.CallOption{CallOption()}, opts...)
	stream, err := c.cc.NewStream(ctx, &DailyWordleServiceDesc.Streams[0], PlayMethod, cOpts...)
	if err != nil {
		return nil, err
	}
	return &grpc.GenericClientStream[GuessRequest, GuessResponse]{ClientStream: stream}, nil
}

func (c *dailyWordleClient) GetStats(ctx context.Context, in *StatsRequest, opts ...grpc.CallOption) (*StatsResponse, error) {
	cOpts := append([]grpc.CallOption{CallOption()}, opts...)
	out := new(StatsResponse)
	if err := c.cc.Invoke(ctx, GetStatsMethod, in, out, cOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

// DailyWordleServer is the server API for the game service.
type DailyWordleServer interface {
	Play(grpc.BidiStreamingServer[GuessRequest, GuessResponse]) error
	GetStats(context.Context, *StatsRequest) (*StatsResponse, error)
}

// RegisterDailyWordleServer registers srv on s.
func RegisterDailyWordleServer(s grpc.ServiceRegistrar, srv DailyWordleServer) {
	s.RegisterService(&DailyWordleServiceDesc, srv)
}

func playHandler(srv any, stream grpc.ServerStream) error {
	return srv.(DailyWordleServer).Play(&grpc.GenericServerStream[GuessRequest, GuessResponse]{ServerStream: stream})
}

func getStatsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(StatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DailyWordleServer).GetStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetStatsMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DailyWordleServer).GetStats(ctx, req.(*StatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DailyWordleServiceDesc describes the game service.
var DailyWordleServiceDesc = grpc.ServiceDesc{
	ServiceName: "wordle.v1.DailyWordle",
	HandlerType: (*DailyWordleServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetStats", Handler: getStatsHandler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "Play", Handler: playHandler, ServerStreams: true, ClientStreams: true},
	},
	Metadata: "wordle/v1/wordle.proto",
}
