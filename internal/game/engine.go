// Guess evaluation.
//
// Score implements the two-pass algorithm: exact positions are consumed first, then
// the remaining positions are resolved left to right against whatever occurrences
// of each letter are left in the target. Keyboard accumulates the included/excluded
// sets across the guesses of one session.
package game

const alphabet = 26

// idx maps a lowercase ASCII letter to 0..25, anything else to -1.
func idx(c byte) int {
	if c < 'a' || c > 'z' {
		return -1
	}
	return int(c - 'a')
}

// Score classifies each position of guess against target. Both must be lower-case
// and of equal length.
func Score(guess, target string) []Outcome {
	n := len(guess)
	res := make([]Outcome, n)
	if guess == target {
		for i := range res {
			res[i] = Correct
		}
		return res
	}

	var total, consumed [alphabet]int
	for i := 0; i < len(target); i++ {
		if j := idx(target[i]); j >= 0 {
			total[j]++
		}
	}

	// Pass 1: exact positions.
	for i := 0; i < n; i++ {
		if i < len(target) && guess[i] == target[i] {
			res[i] = Correct
			if j := idx(guess[i]); j >= 0 {
				consumed[j]++
			}
		}
	}

	// Pass 2: whatever is left, left to right.
	for i := 0; i < n; i++ {
		if res[i] == Correct {
			continue
		}
		j := idx(guess[i])
		switch {
		case j < 0 || total[j] == 0:
			res[i] = Incorrect
		case consumed[j] < total[j]:
			res[i] = WrongPosition
			consumed[j]++
		default:
			res[i] = Incorrect
		}
	}
	return res
}

type keyState uint8

const (
	keyAvailable keyState = iota
	keyIncluded
	keyExcluded
)

// Keyboard tracks which letters are known present, known absent, or untouched.
// Classifications only ever move out of available; included and excluded are final.
type Keyboard struct {
	keys [alphabet]keyState
}

// Apply folds one scored guess into the keyboard. A letter is included when any of
// its positions scored Correct or WrongPosition, excluded when every position scored
// Incorrect.
func (k *Keyboard) Apply(guess string, outcomes []Outcome) {
	var hit, seen [alphabet]bool
	for i := 0; i < len(guess) && i < len(outcomes); i++ {
		j := idx(guess[i])
		if j < 0 {
			continue
		}
		seen[j] = true
		if outcomes[i] != Incorrect {
			hit[j] = true
		}
	}
	for j := 0; j < alphabet; j++ {
		if !seen[j] || k.keys[j] != keyAvailable {
			continue
		}
		if hit[j] {
			k.keys[j] = keyIncluded
		} else {
			k.keys[j] = keyExcluded
		}
	}
}

func (k *Keyboard) letters(want keyState) []string {
	out := []string{}
	for j := 0; j < alphabet; j++ {
		if k.keys[j] == want {
			out = append(out, string(rune('a'+j)))
		}
	}
	return out
}

// Included returns the letters known to be in the word, sorted.
func (k *Keyboard) Included() []string { return k.letters(keyIncluded) }

// Excluded returns the letters known not to be in the word, sorted.
func (k *Keyboard) Excluded() []string { return k.letters(keyExcluded) }

// Available returns the letters not yet ruled in or out, sorted.
func (k *Keyboard) Available() []string { return k.letters(keyAvailable) }

// result builds a GuessResult for guess from its outcomes and the keyboard state.
func (k *Keyboard) result(guess string, outcomes []Outcome) GuessResult {
	letters := make([]LetterResult, len(outcomes))
	for i, o := range outcomes {
		letters[i] = LetterResult{Char: string(guess[i]), Outcome: o}
	}
	return GuessResult{
		Letters:   letters,
		Included:  k.Included(),
		Excluded:  k.Excluded(),
		Available: k.Available(),
	}
}

// Evaluate scores guess against target on a fresh keyboard.
func Evaluate(guess, target string) GuessResult {
	var k Keyboard
	outcomes := Score(guess, target)
	k.Apply(guess, outcomes)
	return k.result(guess, outcomes)
}
