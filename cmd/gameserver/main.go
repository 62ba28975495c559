// Command gameserver hosts the daily game over gRPC plus a small HTTP stats
// surface.
package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"

	"github.com/robalobadob/dailywordle/internal/config"
	"github.com/robalobadob/dailywordle/internal/grpcserver"
	"github.com/robalobadob/dailywordle/internal/httpserver"
	"github.com/robalobadob/dailywordle/internal/logger"
	"github.com/robalobadob/dailywordle/internal/session"
	"github.com/robalobadob/dailywordle/internal/stats"
	"github.com/robalobadob/dailywordle/internal/store"
	"github.com/robalobadob/dailywordle/internal/words"
)

func main() {
	config.LoadDotEnv()
	cfg, err := config.LoadGameServer()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Init(logger.Options{Level: cfg.Level, Format: cfg.Format, Service: "gameserver"})

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("gameserver exited")
	}
}

func run(cfg config.GameServer) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, closeSrc, err := wordSource(ctx, cfg, loc)
	if err != nil {
		return err
	}
	defer closeSrc()

	backend, closeStore, err := store.Open(cfg.StatsBackend, cfg.StatsDir, cfg.StatsDB)
	if err != nil {
		return fmt.Errorf("open stats backend: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn().Err(err).Msg("close stats backend")
		}
	}()
	log.Info().Str("backend", cfg.StatsBackend).Msg("stats backend ready")

	st := stats.New(backend, func(ctx context.Context, key string) (string, error) {
		return words.WordForKey(ctx, src, key, loc)
	})
	today := func() time.Time { return time.Now().In(loc) }

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.GRPCAddr, err)
	}
	srv := grpcserver.New(
		grpc.ChainUnaryInterceptor(grpcserver.UnaryLogger()),
		grpc.ChainStreamInterceptor(grpcserver.StreamLogger()),
	)
	srv.RegisterGame(grpcserver.NewGameService(src, st,
		session.NewIssuer(cfg.SessionSecret, cfg.SessionTTL),
		grpcserver.WithLocation(loc),
	))

	errc := make(chan error, 2)
	running := 1
	go func() { errc <- srv.Serve(ctx, lis) }()
	if cfg.HTTPAddr != "" {
		running++
		h := httpserver.New(st, today, cfg.ClientOrigin)
		go func() { errc <- h.Serve(ctx, cfg.HTTPAddr) }()
	}

	var first error
	for ; running > 0; running-- {
		if err := <-errc; err != nil && first == nil {
			first = err
			stop()
		}
	}
	return first
}

// wordSource returns the in-process dictionary, or a client for the remote
// word server when one is configured.
func wordSource(ctx context.Context, cfg config.GameServer, loc *time.Location) (words.DatedSource, func(), error) {
	if cfg.WordServerAddr == "" {
		raw, err := words.Load(cfg.WordsFile)
		if err != nil {
			return nil, nil, fmt.Errorf("load word list: %w", err)
		}
		list, err := words.NewList(raw, words.WithLocation(loc))
		if err != nil {
			return nil, nil, fmt.Errorf("load word list: %w", err)
		}
		log.Info().Int("words", list.Len()).Msg("serving words in-process")
		return list, func() {}, nil
	}

	conn, err := words.Dial(cfg.WordServerAddr)
	if err != nil {
		return nil, nil, err
	}
	waitCtx, cancel := context.WithTimeout(ctx, cfg.WordTimeout)
	defer cancel()
	if err := words.WaitForHealth(waitCtx, conn, func(format string, args ...any) {
		log.Debug().Msgf(format, args...)
	}); err != nil {
		log.Warn().Err(err).Str("addr", cfg.WordServerAddr).Msg("word server not healthy yet, games will report unavailable until it is")
	} else {
		log.Info().Str("addr", cfg.WordServerAddr).Msg("word server healthy")
	}
	return words.NewClient(conn, cfg.WordTimeout), func() { _ = conn.Close() }, nil
}
