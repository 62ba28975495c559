// Package daily picks the word of the day.
//
// Selection is a pure function of the calendar date and the dictionary size, so a
// restart mid-day never changes the day's word and no counter has to be stored.
package daily

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

// KeyLayout is the time layout of a date key (YYYYMMDD).
const KeyLayout = "20060102"

// ErrBadKey is returned by ParseDateKey for anything that is not an 8-digit date.
var ErrBadKey = errors.New("daily: malformed date key")

// DateKey returns YYYYMMDD for t in t's own location.
func DateKey(t time.Time) string {
	return t.Format(KeyLayout)
}

// ParseDateKey parses an 8-digit YYYYMMDD key as midnight in loc.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	if len(key) != len(KeyLayout) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadKey, key)
	}
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(KeyLayout, key, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadKey, key)
	}
	return t, nil
}

// Seed derives the generator seed for a date: year*10000 + month*100 + day.
func Seed(date time.Time) int64 {
	y, m, d := date.Date()
	return int64(y)*10000 + int64(m)*100 + int64(d)
}

// draw is the raw, uncorrected index for a date.
func draw(date time.Time, n int) int {
	r := rand.New(rand.NewPCG(uint64(Seed(date)), 0))
	return r.IntN(n)
}

// firstDay reports whether date is the first representable calendar day,
// which has no yesterday to compare against.
func firstDay(date time.Time) bool {
	y, m, d := date.Date()
	return y == 1 && m == time.January && d == 1
}

// SelectIndex returns the dictionary index of the word for date.
//
// The raw draw for the day is bumped by one (mod n) when it equals the index that
// was actually used the day before, so consecutive days never share a word when
// n > 1. Yesterday's index may itself have been bumped, so the walk goes back to
// the most recent day whose raw draw could not have collided and replays forward.
func SelectIndex(date time.Time, n int) int {
	if n <= 1 {
		return 0
	}
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if n == 2 {
		// With two words every day after the first is forced to alternate.
		return alternate(day)
	}

	// Walk back to an anchor: a day whose raw draw lies outside {y, y+1} for the
	// previous raw draw y. Its final index is its raw draw no matter what happened
	// before it.
	raws := []int{draw(day, n)}
	anchor := day
	for anchor.Year() >= 1 && !firstDay(anchor) {
		prev := anchor.AddDate(0, 0, -1)
		y := draw(prev, n)
		cur := raws[len(raws)-1]
		if cur != y && cur != (y+1)%n {
			break
		}
		raws = append(raws, y)
		anchor = prev
	}

	idx := raws[len(raws)-1]
	for i := len(raws) - 2; i >= 0; i-- {
		next := raws[i]
		if next == idx {
			next = (next + 1) % n
		}
		idx = next
	}
	return idx
}

// alternate handles a two-word dictionary: the first day keeps its raw draw and
// every later day flips.
func alternate(day time.Time) int {
	origin := time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	base := draw(origin, 2)
	days := (day.Unix() - origin.Unix()) / 86400
	idx := (int64(base) + days) % 2
	if idx < 0 {
		idx += 2
	}
	return int(idx)
}
