package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/robalobadob/dailywordle/internal/api"
	"github.com/robalobadob/dailywordle/internal/config"
)

func dial() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", serverAddr, err)
	}
	return conn, nil
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	conn, err := dial()
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	client := api.NewDailyWordleClient(conn)
	r := renderer{color: useColor}

	last, err := play(ctx, client, bufio.NewScanner(cmd.InOrStdin()), cmd.OutOrStdout(), r)
	if err != nil {
		return explain(err)
	}
	if last == nil || !last.GameOver {
		return nil
	}
	if err := saveSession(last.Session); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "could not remember session: %v\n", err)
	}

	sctx, scancel := context.WithTimeout(cmd.Context(), callTimeout())
	defer scancel()
	st, err := client.GetStats(sctx, &api.StatsRequest{Session: last.Session})
	if err != nil {
		return explain(err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), r.stats(st))
	return nil
}

// play drives one Play stream from lines of input. It returns the last response
// received, which is the final one when the game ended.
func play(ctx context.Context, client api.DailyWordleClient, in *bufio.Scanner, out io.Writer, r renderer) (*api.GuessResponse, error) {
	stream, err := client.Play(ctx)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(out, "Guess the five-letter word. Six tries.")

	var last *api.GuessResponse
	for {
		fmt.Fprint(out, "> ")
		if !in.Scan() {
			_ = stream.CloseSend()
			return last, in.Err()
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		if err := stream.Send(&api.GuessRequest{Guess: line}); err != nil {
			if errors.Is(err, io.EOF) {
				_, err = stream.Recv()
			}
			return last, err
		}
		resp, err := stream.Recv()
		if err != nil {
			return last, err
		}
		last = resp
		fmt.Fprintln(out, r.turn(resp))
		if resp.GameOver {
			return last, nil
		}
	}
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	conn, err := dial()
	if err != nil {
		return err
	}
	defer conn.Close()

	req := &api.StatsRequest{Date: statsDate}
	if statsDate == "" {
		req.Session = loadSession()
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout())
	defer cancel()
	st, err := api.NewDailyWordleClient(conn).GetStats(ctx, req)
	if err != nil {
		return explain(err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer{color: useColor}.stats(st))
	return nil
}

// explain turns gRPC failures into messages a player can act on.
func explain(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unavailable:
		return fmt.Errorf("server unavailable: %s", st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("bad request: %s", st.Message())
	case codes.Canceled:
		return nil
	default:
		return fmt.Errorf("%s: %s", st.Code(), st.Message())
	}
}

func saveSession(token string) error {
	if token == "" {
		return nil
	}
	path := config.DefaultSessionPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token), 0o600)
}

func loadSession() string {
	b, err := os.ReadFile(config.DefaultSessionPath())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}
