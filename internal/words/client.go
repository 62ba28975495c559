package words

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/robalobadob/dailywordle/internal/api"
	"github.com/robalobadob/dailywordle/internal/apperr"
	"github.com/robalobadob/dailywordle/internal/daily"
)

// UnavailableMessage is reported whenever the remote word source cannot answer.
const UnavailableMessage = "word server not running or is unavailable"

// Client is a DatedSource backed by a remote word server.
type Client struct {
	rpc     api.DailyWordClient
	timeout time.Duration
}

// NewClient wraps conn. A positive timeout bounds every call.
func NewClient(conn grpc.ClientConnInterface, timeout time.Duration) *Client {
	return &Client{rpc: api.NewDailyWordClient(conn), timeout: timeout}
}

func (c *Client) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout > 0 {
		return context.WithTimeout(ctx, c.timeout)
	}
	return context.WithCancel(ctx)
}

// unavailable maps a transport failure to CodeUnavailable. A cancelled caller
// gets its own context error back.
func unavailable(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return apperr.Wrap(apperr.CodeUnavailable, UnavailableMessage, err)
}

// GetWord asks the word server for today's word.
func (c *Client) GetWord(ctx context.Context) (string, error) {
	return c.getWord(ctx, "")
}

// WordFor asks the word server for the word of date's day.
func (c *Client) WordFor(ctx context.Context, date time.Time) (string, error) {
	return c.getWord(ctx, daily.DateKey(date))
}

func (c *Client) getWord(ctx context.Context, key string) (string, error) {
	callCtx, cancel := c.callCtx(ctx)
	defer cancel()
	resp, err := c.rpc.GetWord(callCtx, &api.WordRequest{Date: key})
	if err != nil {
		return "", unavailable(ctx, err)
	}
	if len(resp.Word) != Length {
		return "", unavailable(ctx, fmt.Errorf("malformed word %q", resp.Word))
	}
	return resp.Word, nil
}

// ValidateWord asks the word server whether w is in its dictionary.
func (c *Client) ValidateWord(ctx context.Context, w string) (bool, error) {
	callCtx, cancel := c.callCtx(ctx)
	defer cancel()
	resp, err := c.rpc.ValidateWord(callCtx, &api.ValidateRequest{Word: w})
	if err != nil {
		return false, unavailable(ctx, err)
	}
	return resp.Valid, nil
}

// Dial opens a lazy connection to a word server. Calls fail with
// CodeUnavailable until the server is up.
func Dial(addr string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("dial word server %s: %w", addr, err)
	}
	return conn, nil
}

// WaitForHealth polls the standard health service until it reports SERVING or
// ctx ends.
func WaitForHealth(ctx context.Context, conn grpc.ClientConnInterface, logf func(string, ...any)) error {
	if conn == nil {
		return errors.New("word server connection is not configured")
	}
	hc := grpc_health_v1.NewHealthClient(conn)
	backoff := 200 * time.Millisecond
	for {
		callCtx, cancel := context.WithTimeout(ctx, time.Second)
		resp, err := hc.Check(callCtx, &grpc_health_v1.HealthCheckRequest{})
		cancel()
		if err == nil && resp.GetStatus() == grpc_health_v1.HealthCheckResponse_SERVING {
			return nil
		}
		if logf != nil {
			if err != nil {
				logf("waiting for word server health: %v", err)
			} else {
				logf("waiting for word server health: status %s", resp.GetStatus())
			}
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for word server health: %w", ctx.Err())
		case <-time.After(backoff):
		}
		if backoff < time.Second {
			backoff = min(backoff*2, time.Second)
		}
	}
}
