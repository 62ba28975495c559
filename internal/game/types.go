// Core type definitions for the game engine.
// Defines:
//   - Outcome: per-letter classification of a guess.
//   - GuessResult: outcomes plus the keyboard feedback sets.
//   - State: where a session is in its lifecycle.

package game

const (
	// WordLength is the number of letters in every target and guess.
	WordLength = 5
	// MaxTurns is the number of valid guesses a session allows.
	MaxTurns = 6
)

// Outcome is the evaluation result for a single letter in a guess.
//   - Correct:       letter is in the target at this position.
//   - WrongPosition: letter is in the target, elsewhere.
//   - Incorrect:     letter is not in the target, or every occurrence is already
//     accounted for by other positions of the guess.
type Outcome string

const (
	Correct       Outcome = "correct"
	WrongPosition Outcome = "wrong_position"
	Incorrect     Outcome = "incorrect"
)

// LetterResult pairs a guessed character with its outcome.
type LetterResult struct {
	Char    string  `json:"char"`
	Outcome Outcome `json:"outcome"`
}

// GuessResult is the feedback for one guess. Letters are in guess order; the three
// sets are sorted and together partition a–z.
type GuessResult struct {
	Letters   []LetterResult `json:"letters"`
	Included  []string       `json:"included"`
	Excluded  []string       `json:"excluded"`
	Available []string       `json:"available"`
}

// State is the lifecycle state of a session.
type State int

const (
	InProgress State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "in_progress"
	}
}
