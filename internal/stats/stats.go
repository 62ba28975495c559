// Package stats aggregates completed games into per-day statistics.
//
// Store keeps an in-memory cache of DailyStats in front of a persistence backend.
// A single mutex guards the cache and the backend for every date: each Read and
// WriteOutcome runs start to finish under it, so an update (increment + persist)
// is atomic with respect to every other stats operation.
package stats

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/dailywordle/internal/apperr"
	"github.com/robalobadob/dailywordle/internal/store"
)

// Buckets is the size of the guess distribution.
const Buckets = store.Buckets

// ErrWordUnknown is returned by a WordFunc that cannot compute the word for a
// date on its own. Persisted records for that date are then trusted as-is.
var ErrWordUnknown = errors.New("stats: word for date unknown")

// WordFunc computes the target word for a date independently of stored stats.
type WordFunc func(ctx context.Context, dateKey string) (string, error)

// DailyStats is the aggregate for one calendar day.
// Invariant: sum(Distribution) == PlayersCorrect <= Players.
type DailyStats struct {
	DateKey        string       `json:"date"`
	Word           string       `json:"word"`
	Players        int          `json:"players"`
	PlayersCorrect int          `json:"playersCorrect"`
	Distribution   [Buckets]int `json:"guessDistribution"`
}

// WinPercentage is the integer-truncated share of players who won, 0..100.
func (d DailyStats) WinPercentage() int {
	if d.Players == 0 {
		return 0
	}
	return d.PlayersCorrect * 100 / d.Players
}

// AverageGuesses is the mean number of guesses over winning games, 0 with no winners.
func (d DailyStats) AverageGuesses() float64 {
	if d.PlayersCorrect == 0 {
		return 0
	}
	total := 0
	for i, n := range d.Distribution {
		total += n * (i + 1)
	}
	return float64(total) / float64(d.PlayersCorrect)
}

// Summary is the client-facing view of a day's stats.
type Summary struct {
	Date           string       `json:"date"`
	Word           string       `json:"word"`
	Players        int          `json:"players"`
	WinPercentage  int          `json:"winPercentage"`
	AverageGuesses float64      `json:"averageGuesses"`
	Distribution   [Buckets]int `json:"guessDistribution"`
}

// Summary derives the client-facing view.
func (d DailyStats) Summary() Summary {
	return Summary{
		Date:           d.DateKey,
		Word:           d.Word,
		Players:        d.Players,
		WinPercentage:  d.WinPercentage(),
		AverageGuesses: d.AverageGuesses(),
		Distribution:   d.Distribution,
	}
}

func (d DailyStats) consistent() bool {
	sum := 0
	for _, n := range d.Distribution {
		if n < 0 {
			return false
		}
		sum += n
	}
	return sum == d.PlayersCorrect && d.PlayersCorrect <= d.Players
}

func (d DailyStats) record() store.Record {
	return store.Record{
		Word:              d.Word,
		Players:           d.Players,
		PlayersCorrect:    d.PlayersCorrect,
		GuessDistribution: d.Distribution,
	}
}

func fromRecord(key string, r store.Record) DailyStats {
	return DailyStats{
		DateKey:        key,
		Word:           r.Word,
		Players:        r.Players,
		PlayersCorrect: r.PlayersCorrect,
		Distribution:   r.GuessDistribution,
	}
}

// Option configures a Store.
type Option func(*Store)

// WithLogger overrides the global logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// Store is the stats aggregator.
type Store struct {
	mu      sync.Mutex // guards cache and all backend access
	backend store.Store
	words   WordFunc
	cache   map[string]*DailyStats
	log     zerolog.Logger
}

// New builds a Store over backend. words may be nil, meaning no date's word can
// be computed independently.
func New(backend store.Store, words WordFunc, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		words:   words,
		cache:   make(map[string]*DailyStats),
		log:     log.Logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Read returns the stats for dateKey, loading or initializing them on first access.
//
// The word for the date is computed with the WordFunc and compared with any
// persisted record; a mismatching or unreadable record is discarded for a zeroed
// entry. Only kept records are cached, so a day nobody has played costs nothing
// to hold. A WordFunc failure other than ErrWordUnknown is returned.
func (s *Store) Read(ctx context.Context, dateKey string) (DailyStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d, ok := s.cache[dateKey]; ok {
		return *d, nil
	}

	expected, verify := "", false
	if s.words != nil {
		w, err := s.words(ctx, dateKey)
		switch {
		case err == nil:
			expected, verify = w, true
		case errors.Is(err, ErrWordUnknown):
		default:
			return DailyStats{}, fmt.Errorf("word for %s: %w", dateKey, err)
		}
	}

	d, loaded := s.loadLocked(ctx, dateKey, expected, verify)
	if loaded {
		s.cache[dateKey] = d
	}
	return *d, nil
}

// WriteOutcome records one completed game for dateKey and persists the day's
// record before returning. Persistence failures are logged and swallowed: the
// in-memory counters stay updated. Only invalid arguments return an error.
func (s *Store) WriteOutcome(ctx context.Context, dateKey, word string, won bool, turnsUsed int) error {
	if won && (turnsUsed < 1 || turnsUsed > Buckets) {
		return apperr.New(apperr.CodeInvalidArgument, fmt.Sprintf("turns used %d out of range", turnsUsed))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.cache[dateKey]
	if !ok {
		d, _ = s.loadLocked(ctx, dateKey, word, true)
		s.cache[dateKey] = d
	}

	d.Players++
	if won {
		d.PlayersCorrect++
		d.Distribution[turnsUsed-1]++
	}
	d.Word = word

	if err := s.backend.Save(ctx, dateKey, d.record()); err != nil {
		s.log.Error().Err(err).Str("date", dateKey).Msg("persist daily stats")
	}
	return nil
}

// loadLocked pulls dateKey from the backend, falling back to a fresh entry for
// expected when the record is missing, unreadable, inconsistent, or (when verify
// is set) for a different word. loaded reports whether the backend record was
// kept. Caller holds s.mu.
func (s *Store) loadLocked(ctx context.Context, dateKey, expected string, verify bool) (d *DailyStats, loaded bool) {
	fresh := &DailyStats{DateKey: dateKey, Word: expected}

	rec, err := s.backend.Load(ctx, dateKey)
	switch {
	case errors.Is(err, store.ErrNotFound):
		s.log.Debug().Str("date", dateKey).Msg("no stats found, starting fresh")
		return fresh, false
	case err != nil:
		s.log.Error().Err(err).Str("date", dateKey).Msg("load daily stats, starting fresh")
		return fresh, false
	}

	got := fromRecord(dateKey, rec)
	if verify && got.Word != expected {
		s.log.Warn().Str("date", dateKey).Str("stored", got.Word).Str("expected", expected).
			Msg("stats word mismatch, discarding stale record")
		return fresh, false
	}
	if !got.consistent() {
		s.log.Warn().Str("date", dateKey).Msg("inconsistent stats record, discarding")
		if !verify {
			fresh.Word = got.Word
		}
		return fresh, false
	}
	s.log.Debug().Str("date", dateKey).Int("players", got.Players).Msg("loaded stats")
	return &got, true
}
