// Word list management for the word source.
//
// Responsibilities:
//   - Load the dictionary from a configured file or fall back to the embedded default.
//   - Keep a set for quick validation lookups.
//   - Pick the word of the day with daily.SelectIndex.
//
// File formats (by extension):
//   - .json: a JSON array of strings, e.g. ["apple","crane"].
//   - anything else: one word per line, "#" comments and blank lines ignored.
//
// Constraints:
//   - Words must be 5 alphabetic letters (a–z); others are dropped.
//   - Lists are normalized to lowercase and de-duplicated, first occurrence wins.

package words

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robalobadob/dailywordle/assets"
	"github.com/robalobadob/dailywordle/internal/daily"
)

// Length is the length of every dictionary word.
const Length = 5

// ErrEmpty is returned when a dictionary ends up with no usable words.
var ErrEmpty = errors.New("words: dictionary is empty")

// Source supplies the word of the day and validates guesses.
type Source interface {
	GetWord(ctx context.Context) (string, error)
	ValidateWord(ctx context.Context, word string) (bool, error)
}

// DatedSource can also report the word of an arbitrary day.
type DatedSource interface {
	Source
	WordFor(ctx context.Context, date time.Time) (string, error)
}

// Load reads a dictionary file, or the embedded default when path is empty.
func Load(path string) ([]string, error) {
	if path == "" {
		return parseLines(bytes.NewReader(assets.Words))
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var out []string
		if err := json.Unmarshal(b, &out); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return out, nil
	}
	return readWordFile(path)
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseLines(f)
}

// parseLines reads one word per line, skipping blanks and "#" comments.
func parseLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// List is an in-process dictionary implementing DatedSource.
type List struct {
	words []string
	set   map[string]struct{}
	now   func() time.Time
	loc   *time.Location
}

// ListOption configures a List.
type ListOption func(*List)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) ListOption {
	return func(l *List) { l.now = now }
}

// WithLocation sets the time zone that decides where a day begins.
func WithLocation(loc *time.Location) ListOption {
	return func(l *List) {
		if loc != nil {
			l.loc = loc
		}
	}
}

// NewList normalizes raw into a dictionary. It fails with ErrEmpty when no valid
// word remains.
func NewList(raw []string, opts ...ListOption) (*List, error) {
	l := &List{set: make(map[string]struct{}, len(raw)), now: time.Now, loc: time.UTC}
	for _, opt := range opts {
		opt(l)
	}
	for _, w := range raw {
		w = strings.ToLower(strings.TrimSpace(w))
		if len(w) != Length || !isAlpha(w) {
			continue
		}
		if _, dup := l.set[w]; dup {
			continue
		}
		l.set[w] = struct{}{}
		l.words = append(l.words, w)
	}
	if len(l.words) == 0 {
		return nil, ErrEmpty
	}
	return l, nil
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Today returns the current instant in the list's location.
func (l *List) Today() time.Time { return l.now().In(l.loc) }

// GetWord returns today's word.
func (l *List) GetWord(ctx context.Context) (string, error) {
	return l.WordFor(ctx, l.Today())
}

// WordFor returns the word of date's calendar day in the list's location.
func (l *List) WordFor(ctx context.Context, date time.Time) (string, error) {
	return l.words[daily.SelectIndex(date.In(l.loc), len(l.words))], nil
}

// ValidateWord reports whether w is in the dictionary, ignoring case.
func (l *List) ValidateWord(ctx context.Context, w string) (bool, error) {
	_, ok := l.set[strings.ToLower(strings.TrimSpace(w))]
	return ok, nil
}

// Words returns a copy of the dictionary in load order.
func (l *List) Words() []string { return append([]string(nil), l.words...) }

// Len returns the number of words.
func (l *List) Len() int { return len(l.words) }

// Location returns the time zone that decides where a day begins.
func (l *List) Location() *time.Location { return l.loc }

// WordForKey resolves a YYYYMMDD key in loc and asks src for that day's word.
func WordForKey(ctx context.Context, src DatedSource, key string, loc *time.Location) (string, error) {
	date, err := daily.ParseDateKey(key, loc)
	if err != nil {
		return "", err
	}
	return src.WordFor(ctx, date)
}
