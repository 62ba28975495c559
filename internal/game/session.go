// Session state machine for one player's attempt at the day's word.
//
// State transitions:
//   - InProgress(n) + invalid guess → InProgress(n), nothing recorded.
//   - InProgress(n) + valid guess equal to the target → Won.
//   - InProgress(5) + valid wrong guess → Lost.
//   - otherwise InProgress(n+1).
//
// Reaching Won or Lost hands the outcome to the Recorder exactly once.

package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/dailywordle/internal/apperr"
)

// Validator checks candidate guesses against the dictionary.
type Validator interface {
	ValidateWord(ctx context.Context, word string) (bool, error)
}

// Recorder receives the outcome of a completed session.
type Recorder interface {
	WriteOutcome(ctx context.Context, dateKey, word string, won bool, turnsUsed int) error
}

// Turn is the server's answer to one guess.
type Turn struct {
	Valid     bool
	Correct   bool
	GameOver  bool
	TurnsUsed int
	Result    GuessResult
}

// Session holds the mutable state of a single game. It is owned by one goroutine
// and not safe for concurrent use.
type Session struct {
	dateKey   string
	target    string
	validator Validator
	recorder  Recorder

	turns    int
	state    State
	keyboard Keyboard
}

// NewSession starts a game against target for the day identified by dateKey.
// recorder may be nil, in which case outcomes are not recorded.
func NewSession(dateKey, target string, v Validator, r Recorder) *Session {
	return &Session{
		dateKey:   dateKey,
		target:    strings.ToLower(target),
		validator: v,
		recorder:  r,
	}
}

// Guess validates and applies one guess.
//
// An invalid guess yields Turn{Valid: false} and changes nothing. A validator
// failure is returned as an error and also changes nothing. Guessing after the
// session is over returns apperr.ErrGameOver.
func (s *Session) Guess(ctx context.Context, guess string) (Turn, error) {
	if s.state != InProgress {
		return Turn{}, apperr.ErrGameOver
	}
	if err := ctx.Err(); err != nil {
		return Turn{}, err
	}

	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != WordLength || !isAlpha(guess) {
		return Turn{Valid: false, TurnsUsed: s.turns}, nil
	}
	ok, err := s.validator.ValidateWord(ctx, guess)
	if err != nil {
		return Turn{}, fmt.Errorf("validate guess: %w", err)
	}
	if !ok {
		return Turn{Valid: false, TurnsUsed: s.turns}, nil
	}

	s.turns++
	outcomes := Score(guess, s.target)
	s.keyboard.Apply(guess, outcomes)

	turn := Turn{Valid: true, TurnsUsed: s.turns, Result: s.keyboard.result(guess, outcomes)}
	switch {
	case guess == s.target:
		s.state = Won
		turn.Correct, turn.GameOver = true, true
	case s.turns >= MaxTurns:
		s.state = Lost
		turn.GameOver = true
	}

	if turn.GameOver {
		s.record(ctx)
	}
	return turn, nil
}

func (s *Session) record(ctx context.Context) {
	if s.recorder == nil {
		return
	}
	won := s.state == Won
	// The game is complete; a caller hanging up now must not lose the outcome.
	ctx = context.WithoutCancel(ctx)
	if err := s.recorder.WriteOutcome(ctx, s.dateKey, s.target, won, s.turns); err != nil {
		log.Warn().Err(err).Str("date", s.dateKey).Bool("won", won).Msg("record outcome")
	}
}

// State reports the current lifecycle state.
func (s *Session) State() State { return s.state }

// TurnsUsed reports how many valid guesses have been made.
func (s *Session) TurnsUsed() int { return s.turns }

// DateKey reports the day this session belongs to.
func (s *Session) DateKey() string { return s.dateKey }

// Target reveals the target word. Callers should only expose it once the game is over.
func (s *Session) Target() string { return s.target }

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if idx(s[i]) < 0 {
			return false
		}
	}
	return true
}
