package grpcserver

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/robalobadob/dailywordle/internal/api"
	"github.com/robalobadob/dailywordle/internal/session"
	"github.com/robalobadob/dailywordle/internal/stats"
	"github.com/robalobadob/dailywordle/internal/store"
	"github.com/robalobadob/dailywordle/internal/words"
)

type syncBuffer struct {
	ch chan []byte
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.ch <- append([]byte(nil), p...)
	return len(p), nil
}

func TestCallLogging(t *testing.T) {
	buf := &syncBuffer{ch: make(chan []byte, 64)}
	prev := log.Logger
	log.Logger = zerolog.New(buf).Level(zerolog.DebugLevel)
	t.Cleanup(func() { log.Logger = prev })

	list, err := words.NewList(testWords, words.WithClock(clock))
	require.NoError(t, err)
	srv := New(grpc.ChainUnaryInterceptor(UnaryLogger()), grpc.ChainStreamInterceptor(StreamLogger()))
	srv.RegisterGame(NewGameService(list, stats.New(store.NewMemoryStore(), nil), session.NewIssuer("0123456789abcdef", time.Hour), WithClock(clock)))
	client := api.NewDailyWordleClient(serve(t, srv))

	_, err = client.GetStats(context.Background(), &api.StatsRequest{Date: "bad"})
	require.Error(t, err)

	deadline := time.After(2 * time.Second)
	for {
		select {
		case line := <-buf.ch:
			if bytes.Contains(line, []byte(api.GetStatsMethod)) {
				assert.Contains(t, string(line), `"level":"warn"`)
				assert.Contains(t, string(line), `"code":"InvalidArgument"`)
				return
			}
		case <-deadline:
			t.Fatal("no log line for GetStats")
		}
	}
}
