package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/robalobadob/dailywordle/internal/api"
)

func TestRenderTurnPlain(t *testing.T) {
	r := renderer{}
	out := r.turn(&api.GuessResponse{
		Valid:     true,
		TurnsUsed: 2,
		Letters: []api.Letter{
			{Char: "r", Outcome: api.OutcomeWrongPosition},
			{Char: "e", Outcome: api.OutcomeWrongPosition},
			{Char: "a", Outcome: api.OutcomeCorrect},
			{Char: "c", Outcome: api.OutcomeWrongPosition},
			{Char: "t", Outcome: api.OutcomeIncorrect},
		},
		Included: []string{"a", "c", "e", "r"},
		Excluded: []string{"t"},
	})
	assert.Contains(t, out, "(R) (E) [A] (C)  T   2/6")
	assert.Contains(t, out, "in: a c e r  out: t")
	assert.NotContains(t, out, "Solved")
}

func TestRenderTurnInvalid(t *testing.T) {
	assert.Equal(t, "Not in word list, try again.", renderer{}.turn(&api.GuessResponse{}))
}

func TestRenderTurnGameOver(t *testing.T) {
	r := renderer{}
	won := r.turn(&api.GuessResponse{Valid: true, Correct: true, GameOver: true, TurnsUsed: 3, Answer: "crane"})
	assert.Contains(t, won, "Solved in 3!")

	lost := r.turn(&api.GuessResponse{Valid: true, GameOver: true, TurnsUsed: 6, Answer: "crane"})
	assert.Contains(t, lost, "The word was CRANE.")
}

func TestRenderStatsPlain(t *testing.T) {
	out := renderer{}.stats(&api.StatsResponse{
		Date:           "20240115",
		Players:        4,
		WinPercentage:  75,
		AverageGuesses: 3,
		Distribution:   []int{0, 1, 2, 0, 0, 0},
	})
	assert.Contains(t, out, "Stats for 20240115")
	assert.Contains(t, out, "players: 4  won: 75%  avg guesses: 3.00")
	assert.Contains(t, out, "3 "+strings.Repeat("#", 21)+" 2")
	assert.Contains(t, out, "2 "+strings.Repeat("#", 11)+" 1")
	assert.Contains(t, out, "1 # 0")
}

func TestExplain(t *testing.T) {
	assert.NoError(t, explain(nil))
	assert.NoError(t, explain(status.Error(codes.Canceled, "bye")))

	err := explain(status.Error(codes.Unavailable, "word server not running or is unavailable"))
	assert.EqualError(t, err, "server unavailable: word server not running or is unavailable")

	plain := errors.New("boom")
	assert.Equal(t, plain, explain(plain))
}
