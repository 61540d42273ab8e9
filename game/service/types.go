package service

import (
	"time"

	"github.com/wricardo/wordgrid-game/game/engine"
	"github.com/wricardo/wordgrid-game/game/grid"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// GuessResponse contains the result of a guess and the state after it
type GuessResponse struct {
	*engine.GuessResult
	GameState *engine.GameState `json:"game_state"`
	Events    []GameEvent       `json:"events,omitempty"`
}

// BoardCheck reports whether a word can be traced on a session's board.
// The dictionary is not needed for the path, it is only reported.
type BoardCheck struct {
	Word         string      `json:"word"`
	OnBoard      bool        `json:"on_board"`
	Path         []grid.Cell `json:"path,omitempty"`
	InDictionary bool        `json:"in_dictionary"`
}

// SolveResult lists every word hidden in a session's board
type SolveResult struct {
	Words      []string `json:"words"`
	TotalWords int      `json:"total_words"`
	MaxScore   int      `json:"max_score"`
	Found      int      `json:"found"`
	Remaining  []string `json:"remaining"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string    `json:"type"` // "guess", "word_found", "victory", "reset"
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Word      string    `json:"word,omitempty"`
}

// HistoryOptions configures guess history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated guess history
type HistoryResponse struct {
	Guesses      []engine.GuessHistoryEntry `json:"guesses"`
	TotalGuesses int                        `json:"total_guesses"`
	Page         int                        `json:"page"`
	PageSize     int                        `json:"page_size"`
	TotalPages   int                        `json:"total_pages"`
	HasNext      bool                       `json:"has_next"`
	HasPrevious  bool                       `json:"has_previous"`
}

// WordQuery selects words from a dictionary. Length takes precedence over
// Prefix when both are set.
type WordQuery struct {
	Prefix string `json:"prefix,omitempty"`
	Length int    `json:"length,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

// WordLookup is the answer to a WordQuery
type WordLookup struct {
	ConfigID  string   `json:"config_id"`
	Prefix    string   `json:"prefix,omitempty"`
	Length    int      `json:"length,omitempty"`
	Words     []string `json:"words"`
	Count     int      `json:"count"`
	Truncated bool     `json:"truncated,omitempty"`
}

// DictionaryCheck reports dictionary membership of a word
type DictionaryCheck struct {
	ConfigID string `json:"config_id"`
	Word     string `json:"word"`
	Found    bool   `json:"found"`
	IsPrefix bool   `json:"is_prefix"`
}

// ConfigInfo provides information about a game configuration
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use for session creation
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	GridSize    int    `json:"grid_size"`
	Dictionary  string `json:"dictionary"`
	FixedBoard  bool   `json:"fixed_board"`
}
