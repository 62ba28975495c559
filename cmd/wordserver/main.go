// Command wordserver serves the dictionary and the word of the day over gRPC.
package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"

	"github.com/robalobadob/dailywordle/internal/config"
	"github.com/robalobadob/dailywordle/internal/grpcserver"
	"github.com/robalobadob/dailywordle/internal/logger"
	"github.com/robalobadob/dailywordle/internal/words"
)

func main() {
	config.LoadDotEnv()
	cfg, err := config.LoadWordServer()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Init(logger.Options{Level: cfg.Level, Format: cfg.Format, Service: "wordserver"})

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("wordserver exited")
	}
}

func run(cfg config.WordServer) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	raw, err := words.Load(cfg.WordsFile)
	if err != nil {
		return fmt.Errorf("load word list: %w", err)
	}
	list, err := words.NewList(raw, words.WithLocation(loc))
	if err != nil {
		return fmt.Errorf("load word list: %w", err)
	}
	log.Info().Int("words", list.Len()).Str("file", cfg.WordsFile).Str("tz", loc.String()).Msg("word list loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.GRPCAddr, err)
	}
	srv := grpcserver.New(
		grpc.ChainUnaryInterceptor(grpcserver.UnaryLogger()),
		grpc.ChainStreamInterceptor(grpcserver.StreamLogger()),
	)
	srv.RegisterWords(grpcserver.NewWordService(list))
	return srv.Serve(ctx, lis)
}
