package api

// Outcome values carried in Letter.Outcome.
const (
	OutcomeCorrect       = "correct"
	OutcomeWrongPosition = "wrong_position"
	OutcomeIncorrect     = "incorrect"
)

// WordRequest asks the word server for the word of a day. Date is YYYYMMDD; empty
// means the server's today.
type WordRequest struct {
	Date string `json:"date,omitempty"`
}

// WordResponse carries a day's word.
type WordResponse struct {
	Word string `json:"word"`
	Date string `json:"date"`
}

// ValidateRequest asks whether a candidate is in the dictionary.
type ValidateRequest struct {
	Word string `json:"word"`
}

// ValidateResponse answers a ValidateRequest.
type ValidateResponse struct {
	Valid bool `json:"valid"`
}

// GuessRequest is one client message on the Play stream.
type GuessRequest struct {
	Guess string `json:"guess"`
}

// Letter is the outcome for one position of a guess.
type Letter struct {
	Char    string `json:"char"`
	Outcome string `json:"outcome"`
}

// GuessResponse is the server's reply to one GuessRequest.
type GuessResponse struct {
	Valid     bool     `json:"valid"`
	Correct   bool     `json:"correct"`
	GameOver  bool     `json:"gameOver"`
	TurnsUsed int      `json:"turnsUsed"`
	Letters   []Letter `json:"letters,omitempty"`
	// The keyboard sets are present on every valid reply, empty or not. They
	// are null on an invalid one.
	Included  []string `json:"included"`
	Excluded  []string `json:"excluded"`
	Available []string `json:"available"`
	// Answer is set once the game is over.
	Answer string `json:"answer,omitempty"`
	// Session identifies this game to later GetStats calls.
	Session string `json:"session,omitempty"`
}

// StatsRequest selects the day to report. Date wins over Session; with neither
// the server reports today.
type StatsRequest struct {
	Session string `json:"session,omitempty"`
	Date    string `json:"date,omitempty"`
}

// StatsResponse reports a day's aggregate stats.
type StatsResponse struct {
	Date           string  `json:"date"`
	Word           string  `json:"word"`
	Players        int     `json:"players"`
	WinPercentage  int     `json:"winPercentage"`
	AverageGuesses float64 `json:"averageGuesses"`
	Distribution   []int   `json:"guessDistribution"`
}
