package main

import (
	"bufio"
	"bytes"
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/robalobadob/dailywordle/internal/api"
	"github.com/robalobadob/dailywordle/internal/grpcserver"
	"github.com/robalobadob/dailywordle/internal/session"
	"github.com/robalobadob/dailywordle/internal/stats"
	"github.com/robalobadob/dailywordle/internal/store"
	"github.com/robalobadob/dailywordle/internal/words"
)

func startGame(t *testing.T) (api.DailyWordleClient, string, []string) {
	t.Helper()
	now := func() time.Time { return time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC) }
	list, err := words.NewList([]string{"crane", "react", "apple", "speed", "tooth"}, words.WithClock(now))
	require.NoError(t, err)
	target, err := list.GetWord(context.Background())
	require.NoError(t, err)
	var others []string
	for _, w := range list.Words() {
		if w != target {
			others = append(others, w)
		}
	}

	srv := grpcserver.New()
	srv.RegisterGame(grpcserver.NewGameService(list, stats.New(store.NewMemoryStore(), nil),
		session.NewIssuer("0123456789abcdef", time.Hour), grpcserver.WithClock(now)))
	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = srv.Serve(ctx, lis)
	}()
	t.Cleanup(func() {
		cancel()
		srv.Stop()
		<-done
	})

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return api.NewDailyWordleClient(conn), target, others
}

func TestPlayUntilSolved(t *testing.T) {
	client, target, others := startGame(t)
	input := strings.Join([]string{"zzzzz", "", others[0], strings.ToUpper(target), others[1]}, "\n")
	var out bytes.Buffer

	last, err := play(context.Background(), client, bufio.NewScanner(strings.NewReader(input)), &out, renderer{})
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.True(t, last.Correct)
	assert.Equal(t, 2, last.TurnsUsed)
	assert.NotEmpty(t, last.Session)
	assert.Contains(t, out.String(), "Not in word list")
	assert.Contains(t, out.String(), "Solved in 2!")
}

func TestPlayInputEndsEarly(t *testing.T) {
	client, _, others := startGame(t)
	var out bytes.Buffer

	last, err := play(context.Background(), client, bufio.NewScanner(strings.NewReader(others[0]+"\n")), &out, renderer{})
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.False(t, last.GameOver)
	assert.Equal(t, 1, last.TurnsUsed)
}
