package grpcserver

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/robalobadob/dailywordle/internal/api"
	"github.com/robalobadob/dailywordle/internal/apperr"
	"github.com/robalobadob/dailywordle/internal/daily"
	"github.com/robalobadob/dailywordle/internal/game"
	"github.com/robalobadob/dailywordle/internal/session"
	"github.com/robalobadob/dailywordle/internal/stats"
	"github.com/robalobadob/dailywordle/internal/words"
)

// GameService implements api.DailyWordleServer.
type GameService struct {
	words    words.DatedSource
	stats    *stats.Store
	sessions *session.Issuer
	now      func() time.Time
	loc      *time.Location
}

// GameOption configures a GameService.
type GameOption func(*GameService)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) GameOption {
	return func(g *GameService) { g.now = now }
}

// WithLocation sets the time zone that decides where a day begins.
func WithLocation(loc *time.Location) GameOption {
	return func(g *GameService) {
		if loc != nil {
			g.loc = loc
		}
	}
}

// NewGameService wires the game service to its collaborators.
func NewGameService(src words.DatedSource, st *stats.Store, iss *session.Issuer, opts ...GameOption) *GameService {
	g := &GameService{words: src, stats: st, sessions: iss, now: time.Now, loc: time.UTC}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *GameService) today() time.Time { return g.now().In(g.loc) }

// Play runs one game over the stream. The day is fixed when the stream opens so
// a game straddling midnight is scored and recorded against its starting day.
func (g *GameService) Play(stream grpc.BidiStreamingServer[api.GuessRequest, api.GuessResponse]) error {
	ctx := stream.Context()
	day := g.today()
	key := daily.DateKey(day)
	l := log.With().Str("date", key).Logger()

	target, err := g.words.WordFor(ctx, day)
	if err != nil {
		l.Warn().Err(err).Msg("word of the day unavailable")
		return toStatus(ctx, err)
	}
	if _, err := g.stats.Read(ctx, key); err != nil {
		l.Warn().Err(err).Msg("warm daily stats")
	}
	token, err := g.sessions.Issue(key)
	if err != nil {
		return status.Error(codes.Internal, err.Error())
	}

	sess := game.NewSession(key, target, g.words, g.stats)
	l.Debug().Msg("session started")
	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			l.Debug().Int("turns", sess.TurnsUsed()).Msg("client left before game over")
			return nil
		}
		if err != nil {
			l.Debug().Err(err).Int("turns", sess.TurnsUsed()).Msg("session cancelled")
			return err
		}

		turn, err := sess.Guess(ctx, req.Guess)
		if err != nil {
			return toStatus(ctx, err)
		}
		resp := guessResponse(turn)
		resp.Session = token
		if turn.GameOver {
			resp.Answer = sess.Target()
		}
		if err := stream.Send(resp); err != nil {
			return err
		}
		if turn.GameOver {
			l.Info().Str("state", sess.State().String()).Int("turns", sess.TurnsUsed()).Msg("game over")
			return nil
		}
	}
}

// GetStats reports the aggregate for the requested day: an explicit date, else
// the day carried by the session token, else today. A bad token is ignored.
func (g *GameService) GetStats(ctx context.Context, in *api.StatsRequest) (*api.StatsResponse, error) {
	key, err := g.statsDay(in)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	d, err := g.stats.Read(ctx, key)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return statsResponse(d.Summary()), nil
}

func (g *GameService) statsDay(in *api.StatsRequest) (string, error) {
	if in.Date != "" {
		if _, err := daily.ParseDateKey(in.Date, g.loc); err != nil {
			return "", err
		}
		return in.Date, nil
	}
	if in.Session != "" {
		day, err := g.sessions.Day(in.Session)
		if err == nil {
			return day, nil
		}
		log.Debug().Err(err).Msg("ignoring session token")
	}
	return daily.DateKey(g.today()), nil
}

// toStatus reports a cancelled caller as such and everything else through apperr.
func toStatus(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return status.FromContextError(ctxErr).Err()
	}
	return apperr.ToStatus(err)
}

func guessResponse(t game.Turn) *api.GuessResponse {
	resp := &api.GuessResponse{
		Valid:     t.Valid,
		Correct:   t.Correct,
		GameOver:  t.GameOver,
		TurnsUsed: t.TurnsUsed,
	}
	if !t.Valid {
		return resp
	}
	resp.Letters = make([]api.Letter, len(t.Result.Letters))
	for i, lr := range t.Result.Letters {
		resp.Letters[i] = api.Letter{Char: lr.Char, Outcome: string(lr.Outcome)}
	}
	resp.Included = orEmpty(t.Result.Included)
	resp.Excluded = orEmpty(t.Result.Excluded)
	resp.Available = orEmpty(t.Result.Available)
	return resp
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func statsResponse(s stats.Summary) *api.StatsResponse {
	return &api.StatsResponse{
		Date:           s.Date,
		Word:           s.Word,
		Players:        s.Players,
		WinPercentage:  s.WinPercentage,
		AverageGuesses: s.AverageGuesses,
		Distribution:   s.Distribution[:],
	}
}
