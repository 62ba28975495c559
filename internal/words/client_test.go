package words

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/robalobadob/dailywordle/internal/api"
	"github.com/robalobadob/dailywordle/internal/apperr"
)

type fakeWordRPC struct {
	word    string
	valid   map[string]bool
	err     error
	lastReq *api.WordRequest
}

func (f *fakeWordRPC) GetWord(ctx context.Context, in *api.WordRequest, _ ...grpc.CallOption) (*api.WordResponse, error) {
	f.lastReq = in
	if f.err != nil {
		return nil, f.err
	}
	return &api.WordResponse{Word: f.word, Date: in.Date}, nil
}

func (f *fakeWordRPC) ValidateWord(ctx context.Context, in *api.ValidateRequest, _ ...grpc.CallOption) (*api.ValidateResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &api.ValidateResponse{Valid: f.valid[in.Word]}, nil
}

func TestClientGetWord(t *testing.T) {
	rpc := &fakeWordRPC{word: "crane"}
	c := &Client{rpc: rpc, timeout: time.Second}

	w, err := c.GetWord(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "crane", w)
	assert.Empty(t, rpc.lastReq.Date)

	_, err = c.WordFor(context.Background(), time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "20240115", rpc.lastReq.Date)
}

func TestClientValidateWord(t *testing.T) {
	c := &Client{rpc: &fakeWordRPC{valid: map[string]bool{"react": true}}}
	ok, err := c.ValidateWord(context.Background(), "react")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = c.ValidateWord(context.Background(), "zzzzz")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClientUnavailable(t *testing.T) {
	c := &Client{rpc: &fakeWordRPC{err: errors.New("connection refused")}}

	_, err := c.GetWord(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrUnavailable)
	assert.Contains(t, err.Error(), UnavailableMessage)

	_, err = c.ValidateWord(context.Background(), "crane")
	assert.ErrorIs(t, err, apperr.ErrUnavailable)
}

func TestClientMalformedWordIsUnavailable(t *testing.T) {
	c := &Client{rpc: &fakeWordRPC{word: ""}}
	_, err := c.GetWord(context.Background())
	assert.ErrorIs(t, err, apperr.ErrUnavailable)
}

func TestClientCancelledContext(t *testing.T) {
	c := &Client{rpc: &fakeWordRPC{err: errors.New("canceled")}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.GetWord(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
