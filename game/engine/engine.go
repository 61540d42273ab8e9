package engine

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/wricardo/wordgrid-game/game/dictionary"
	"github.com/wricardo/wordgrid-game/game/grid"
)

// GameEngine plays one board: it holds the grid, its solution and the state
// of the player's guesses.
type GameEngine struct {
	config   *GameConfig
	dict     Dictionary
	solver   *Solver
	solution map[string]struct{}
	maxScore int
	state    *GameState
}

// NewEngine creates a game for config. The grid uses config.Letters when set
// and letters drawn from src otherwise.
func NewEngine(config *GameConfig, dict Dictionary, src grid.LetterSource) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	letters := config.Letters
	if letters == "" {
		letters = grid.Generate(config.GridSize*config.GridSize, src)
	}
	return NewEngineWithLetters(config, dict, letters)
}

// NewEngineWithLetters creates a game for config on a fixed set of letters,
// ignoring config.Letters. It is used to restore persisted games. Letters
// are lowercased to match the dictionary's stored form.
func NewEngineWithLetters(config *GameConfig, dict Dictionary, letters string) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}
	if dict == nil {
		return nil, fmt.Errorf("dictionary cannot be nil")
	}

	g, err := grid.New(config.GridSize, strings.ToLower(letters))
	if err != nil {
		return nil, fmt.Errorf("failed to build grid: %w", err)
	}

	solver := NewSolver(g, dict)
	solution := solver.Solve()

	e := &GameEngine{
		config:   config,
		dict:     dict,
		solver:   solver,
		solution: solution,
	}
	for w := range solution {
		e.maxScore += Score(w)
	}
	e.state = e.initState()
	return e, nil
}

func (e *GameEngine) initState() *GameState {
	g := e.solver.Grid()
	return &GameState{
		Letters:      g.Letters(),
		GridSize:     g.Size(),
		Rows:         g.Rows(),
		FoundWords:   []string{},
		TotalWords:   len(e.solution),
		MaxScore:     e.maxScore,
		Message:      e.config.Messages.Welcome,
		ConfigName:   e.config.Name,
		GuessHistory: []GuessHistoryEntry{},
	}
}

// GetState returns a snapshot of the current game state. Later guesses do
// not modify it.
func (e *GameEngine) GetState() *GameState {
	return e.state.Clone()
}

// SetState replaces the game state (used for persistence loading). The state
// must describe the engine's board.
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	if state.Letters != e.solver.Grid().Letters() {
		return fmt.Errorf("state letters %q do not match board %q", state.Letters, e.solver.Grid().Letters())
	}
	state = state.Clone()
	if state.FoundWords == nil {
		state.FoundWords = []string{}
	}
	if state.GuessHistory == nil {
		state.GuessHistory = []GuessHistoryEntry{}
	}
	state.TotalWords = len(e.solution)
	state.MaxScore = e.maxScore
	e.state = state
	return nil
}

// Reset starts the board over. Found words and score are cleared; the
// cumulative guess history is kept.
func (e *GameEngine) Reset() *GameState {
	prevHistory := e.state.GuessHistory
	prevTotal := e.state.TotalGuesses

	e.state = e.initState()
	e.state.GuessHistory = prevHistory
	e.state.TotalGuesses = prevTotal
	return e.state.Clone()
}

// Guess checks a word against the board and records the outcome
func (e *GameEngine) Guess(word string) *GuessResult {
	clean, ok := dictionary.Sanitize(word)
	if !ok {
		clean = strings.ToLower(strings.TrimSpace(word))
	}
	result := &GuessResult{Word: clean}
	msgs := e.config.Messages

	switch {
	case e.state.GameOver:
		result.Reason = ReasonGameOver
		result.Message = msgs.GameOver
	case !ok:
		result.Reason = ReasonNotInDictionary
		result.Message = msgs.NotInDictionary
	case len([]rune(clean)) < MinWordLength:
		result.Reason = ReasonTooShort
		result.Message = msgs.TooShort
	case e.isFound(clean):
		result.Reason = ReasonAlreadyFound
		result.Message = msgs.AlreadyFound
	case !e.inSolution(clean):
		if e.dict.ContainsWord(clean) {
			result.Reason = ReasonNotOnBoard
			result.Message = msgs.NotOnBoard
		} else {
			result.Reason = ReasonNotInDictionary
			result.Message = msgs.NotInDictionary
		}
	default:
		result.Accepted = true
		result.Reason = ReasonAccepted
		result.Points = Score(clean)
		result.Path, _ = e.solver.Trace(clean)
		result.Message = fmt.Sprintf(msgs.Accepted, clean, result.Points)

		e.state.FoundWords = append(e.state.FoundWords, clean)
		sort.Strings(e.state.FoundWords)
		e.state.Score += result.Points

		if len(e.state.FoundWords) == len(e.solution) {
			e.state.GameOver = true
			e.state.Victory = true
			result.Message = fmt.Sprintf(msgs.Victory, len(e.solution))
		}
	}

	if result.Message == "" {
		result.Message = string(result.Reason)
	}
	e.state.Message = result.Message
	e.addGuessToHistory(result)
	return result
}

// Contains reports whether word can be traced on the board
func (e *GameEngine) Contains(word string) bool {
	return e.solver.Contains(word)
}

// Trace returns a path spelling word on the board
func (e *GameEngine) Trace(word string) ([]grid.Cell, bool) {
	return e.solver.Trace(word)
}

// Solution returns every word on the board, sorted
func (e *GameEngine) Solution() []string {
	words := make([]string, 0, len(e.solution))
	for w := range e.solution {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// RemainingWords returns the solution words not found yet, sorted
func (e *GameEngine) RemainingWords() []string {
	var remaining []string
	for _, w := range e.Solution() {
		if !e.isFound(w) {
			remaining = append(remaining, w)
		}
	}
	return remaining
}

// Grid returns the board
func (e *GameEngine) Grid() *grid.Grid {
	return e.solver.Grid()
}

// GetConfig returns the board configuration
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// IsGameOver returns whether the game is over
func (e *GameEngine) IsGameOver() bool {
	return e.state.GameOver
}

// IsVictory returns whether every word on the board was found
func (e *GameEngine) IsVictory() bool {
	return e.state.Victory
}

// GetScore returns the current score
func (e *GameEngine) GetScore() int {
	return e.state.Score
}

// MaxScore returns the score of finding every word
func (e *GameEngine) MaxScore() int {
	return e.maxScore
}

// GetGuessHistory returns a copy of the complete guess history
func (e *GameEngine) GetGuessHistory() []GuessHistoryEntry {
	return slices.Clone(e.state.GuessHistory)
}

// GetLastGuess returns the last guess made, or nil if no guesses
func (e *GameEngine) GetLastGuess() *GuessHistoryEntry {
	if len(e.state.GuessHistory) == 0 {
		return nil
	}
	last := e.state.GuessHistory[len(e.state.GuessHistory)-1]
	return &last
}

func (e *GameEngine) inSolution(word string) bool {
	_, ok := e.solution[word]
	return ok
}

func (e *GameEngine) isFound(word string) bool {
	i := sort.SearchStrings(e.state.FoundWords, word)
	return i < len(e.state.FoundWords) && e.state.FoundWords[i] == word
}

func (e *GameEngine) addGuessToHistory(result *GuessResult) {
	entry := GuessHistoryEntry{
		Word:        result.Word,
		Accepted:    result.Accepted,
		Reason:      result.Reason,
		Points:      result.Points,
		Timestamp:   time.Now().Unix(),
		GuessNumber: e.state.TotalGuesses + 1,
	}
	e.state.GuessHistory = append(e.state.GuessHistory, entry)
	e.state.TotalGuesses++
}
