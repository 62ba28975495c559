// Package store persists daily stats records.
//
// A record is the whole aggregate for one calendar day and is always written
// wholesale; there are no partial updates. Implementations:
//   - FileStore:   one indented JSON document per day in a directory.
//   - SQLiteStore: one row per day holding the same JSON document.
//   - memory:      map-backed, state is lost when the process restarts.
package store

import (
	"context"
	"errors"
)

// Buckets is the size of the guess distribution.
const Buckets = 6

// ErrNotFound is returned by Load when no record exists for a date.
var ErrNotFound = errors.New("store: record not found")

// Record is the persisted form of a day's stats.
type Record struct {
	Word              string       `json:"word"`
	Players           int          `json:"players"`
	PlayersCorrect    int          `json:"playersCorrect"`
	GuessDistribution [Buckets]int `json:"guessDistribution"`
}

// Store defines the persistence interface for daily stats.
type Store interface {
	// Load returns the record for dateKey or ErrNotFound.
	Load(ctx context.Context, dateKey string) (Record, error)

	// Save replaces the record for dateKey.
	Save(ctx context.Context, dateKey string, r Record) error
}
