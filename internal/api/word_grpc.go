package api

import (
	"context"

	"google.golang.org/grpc"
)

// Full method names of the DailyWord service.
const (
	GetWordMethod      = "/word.v1.DailyWord/GetWord"
	ValidateWordMethod = "/word.v1.DailyWord/ValidateWord"
)

// DailyWordClient is the client API for the word service.
type DailyWordClient interface {
	GetWord(ctx context.Context, in *WordRequest, opts ...grpc.CallOption) (*WordResponse, error)
	ValidateWord(ctx context.Context, in *ValidateRequest, opts ...grpc.CallOption) (*ValidateResponse, error)
}

type dailyWordClient struct {
	cc grpc.ClientConnInterface
}

// NewDailyWordClient wraps a connection to a word server.
func NewDailyWordClient(cc grpc.ClientConnInterface) DailyWordClient {
	return &dailyWordClient{cc: cc}
}

func (c *dailyWordClient) GetWord(ctx context.Context, in *WordRequest, opts ...grpc.CallOption) (*WordResponse, error) {
	cOpts := append([]grpc.CallOption{CallOption()}, opts...)
	out := new(WordResponse)
	if err := c.cc.Invoke(ctx, GetWordMethod, in, out, cOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dailyWordClient) ValidateWord(ctx context.Context, in *ValidateRequest, opts ...grpc.CallOption) (*ValidateResponse, error) {
	cOpts := append([]grpc.CallOption{CallOption()}, opts...)
	out := new(ValidateResponse)
	if err := c.cc.Invoke(ctx, ValidateWordMethod, in, out, cOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

// DailyWordServer is the server API for the word service.
type DailyWordServer interface {
	GetWord(context.Context, *WordRequest) (*WordResponse, error)
	ValidateWord(context.Context, *ValidateRequest) (*ValidateResponse, error)
}

// RegisterDailyWordServer registers srv on s.
func RegisterDailyWordServer(s grpc.ServiceRegistrar, srv DailyWordServer) {
	s.RegisterService(&DailyWordServiceDesc, srv)
}

func getWordHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(WordRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DailyWordServer).GetWord(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetWordMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DailyWordServer).GetWord(ctx, req.(*WordRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func validateWordHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ValidateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DailyWordServer).ValidateWord(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ValidateWordMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DailyWordServer).ValidateWord(ctx, req.(*ValidateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DailyWordServiceDesc describes the word service.
var DailyWordServiceDesc = grpc.ServiceDesc{
	ServiceName: "word.v1.DailyWord",
	HandlerType: (*DailyWordServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetWord", Handler: getWordHandler},
		{MethodName: "ValidateWord", Handler: validateWordHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "word/v1/word.proto",
}
