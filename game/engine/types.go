package engine

import (
	"slices"

	"github.com/wricardo/wordgrid-game/game/grid"
)

const (
	// MinWordLength is the shortest word Solve reports
	MinWordLength = 3

	// Validation constants
	MinGridSize         = 1
	MaxGridSize         = 50
	WebSocketBufferSize = 256
)

// GuessReason explains the outcome of a guess
type GuessReason string

const (
	ReasonAccepted        GuessReason = "accepted"
	ReasonTooShort        GuessReason = "too_short"
	ReasonNotInDictionary GuessReason = "not_in_dictionary"
	ReasonNotOnBoard      GuessReason = "not_on_board"
	ReasonAlreadyFound    GuessReason = "already_found"
	ReasonGameOver        GuessReason = "game_over"
)

// Messages holds the texts shown to the player. Accepted is formatted with
// the word and the points it scored; Victory with the number of words.
type Messages struct {
	Welcome         string `json:"welcome"`
	Accepted        string `json:"accepted"`
	AlreadyFound    string `json:"already_found"`
	NotInDictionary string `json:"not_in_dictionary"`
	NotOnBoard      string `json:"not_on_board"`
	TooShort        string `json:"too_short"`
	GameOver        string `json:"game_over"`
	Victory         string `json:"victory"`
}

// GameConfig represents a board configuration loaded from JSON
type GameConfig struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	GridSize    int    `json:"grid_size"`
	// Letters fills the grid in row-major order. Empty means random letters.
	Letters string `json:"letters,omitempty"`
	// Dictionary is the word list file, relative to the config directory
	Dictionary string   `json:"dictionary"`
	Messages   Messages `json:"messages"`
}

// GameState represents the complete state of one game
type GameState struct {
	Letters      string              `json:"letters"`
	GridSize     int                 `json:"grid_size"`
	Rows         []string            `json:"rows"`
	FoundWords   []string            `json:"found_words"`
	Score        int                 `json:"score"`
	TotalWords   int                 `json:"total_words"`
	MaxScore     int                 `json:"max_score"`
	Message      string              `json:"message"`
	GameOver     bool                `json:"game_over"`
	Victory      bool                `json:"victory"`
	ConfigName   string              `json:"config_name"`
	GuessHistory []GuessHistoryEntry `json:"guess_history"`
	TotalGuesses int                 `json:"total_guesses"`
}

// Clone returns a copy of the state that shares no slices with s
func (s *GameState) Clone() *GameState {
	if s == nil {
		return nil
	}
	c := *s
	c.Rows = slices.Clone(s.Rows)
	c.FoundWords = slices.Clone(s.FoundWords)
	c.GuessHistory = slices.Clone(s.GuessHistory)
	return &c
}

// GuessHistoryEntry represents a single guess in the game history
type GuessHistoryEntry struct {
	Word        string      `json:"word"`
	Accepted    bool        `json:"accepted"`
	Reason      GuessReason `json:"reason"`
	Points      int         `json:"points"`
	Timestamp   int64       `json:"timestamp"`
	GuessNumber int         `json:"guess_number"`
}

// GuessResult is the outcome of a single guess
type GuessResult struct {
	Word     string      `json:"word"`
	Accepted bool        `json:"accepted"`
	Reason   GuessReason `json:"reason"`
	Points   int         `json:"points"`
	Path     []grid.Cell `json:"path,omitempty"`
	Message  string      `json:"message"`
}
