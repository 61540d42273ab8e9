package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/wricardo/wordgrid-game/game/dictionary"
	"github.com/wricardo/wordgrid-game/game/engine"
)

const (
	defaultWordLimit = 100
	maxWordLimit     = 1000
)

// ErrConfigNotFound is matched against config manager errors to build a
// helpful message listing the available configs.
var ErrConfigNotFound = errors.New("configuration not found")

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// getConfigID returns the config_id for a given config name, used for consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	// Fallback: return as-is or "default"
	if configName == "" {
		return "default"
	}
	return configName
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	config, err := s.loadConfig(configName)
	if err != nil {
		return nil, err
	}

	dict, err := s.configs.LoadDictionary(config)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary for %s: %w", config.Name, err)
	}

	// Let session manager generate a proper 4-character ID
	session, err := s.sessions.Create("", config, dict)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	// Prefer the input configName if provided, otherwise look up the
	// config_id by display name
	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     configID,
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.Engine.GetState(),
		GameConfig:     session.Config,
	}, nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return s.toInfo(session), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, s.toInfo(sess))
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// Guess submits a word for a session
func (s *gameServiceImpl) Guess(ctx context.Context, sessionID, word string) (*GuessResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	result := sess.Engine.Guess(word)
	state := sess.Engine.GetState()

	now := time.Now()
	events := []GameEvent{{
		Type:      "guess",
		Message:   result.Message,
		Timestamp: now,
		Word:      result.Word,
	}}
	if result.Accepted {
		events = append(events, GameEvent{
			Type:      "word_found",
			Message:   fmt.Sprintf("%s found for %d points (%d/%d)", result.Word, result.Points, len(state.FoundWords), state.TotalWords),
			Timestamp: now,
			Word:      result.Word,
		})
		if state.Victory {
			events = append(events, GameEvent{
				Type:      "victory",
				Message:   state.Message,
				Timestamp: now,
			})
		}
	}

	// Auto-save session after guess
	if err := s.sessions.Save(sessionID); err != nil {
		log.Printf("Warning: Failed to persist session %s after guess: %v", sessionID, err)
	}

	return &GuessResponse{
		GuessResult: result,
		GameState:   state,
		Events:      events,
	}, nil
}

// CheckWord reports whether word can be traced on the session's board
func (s *gameServiceImpl) CheckWord(ctx context.Context, sessionID, word string) (*BoardCheck, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	clean, ok := dictionary.Sanitize(word)
	if !ok {
		return &BoardCheck{Word: word}, nil
	}

	path, onBoard := sess.Engine.Trace(clean)
	check := &BoardCheck{
		Word:    clean,
		OnBoard: onBoard,
		Path:    path,
	}
	if dict, err := s.configs.LoadDictionary(sess.Config); err == nil {
		check.InDictionary = dict.ContainsWord(clean)
	}
	return check, nil
}

// Solve returns every word on the session's board
func (s *gameServiceImpl) Solve(ctx context.Context, sessionID string) (*SolveResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	words := sess.Engine.Solution()
	remaining := sess.Engine.RemainingWords()
	if remaining == nil {
		remaining = []string{}
	}

	return &SolveResult{
		Words:      words,
		TotalWords: len(words),
		MaxScore:   sess.Engine.MaxScore(),
		Found:      len(sess.Engine.GetState().FoundWords),
		Remaining:  remaining,
	}, nil
}

// Reset resets a game session to initial state
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	state := sess.Engine.Reset()

	// Auto-save session after reset
	if err := s.sessions.Save(sessionID); err != nil {
		log.Printf("Warning: Failed to persist session %s after reset: %v", sessionID, err)
	}

	return state, nil
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return sess.Engine.GetState(), nil
}

// GetGuessHistory returns paginated guess history
func (s *gameServiceImpl) GetGuessHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	history := sess.Engine.GetGuessHistory()
	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	// Calculate pagination
	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	var guesses []engine.GuessHistoryEntry
	if opts.Order == "desc" {
		// Most recent first
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			guesses = append(guesses, history[i])
		}
	} else if start < total {
		guesses = history[start:end]
	}

	if guesses == nil {
		guesses = []engine.GuessHistoryEntry{}
	}

	return &HistoryResponse{
		Guesses:      guesses,
		TotalGuesses: total,
		Page:         opts.Page,
		PageSize:     opts.Limit,
		TotalPages:   totalPages,
		HasNext:      opts.Page < totalPages,
		HasPrevious:  opts.Page > 1,
	}, nil
}

// ListConfigs returns available game configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific game configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a game configuration to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}

// LookupWords lists dictionary words of a config by length or prefix
func (s *gameServiceImpl) LookupWords(ctx context.Context, configName string, query WordQuery) (*WordLookup, error) {
	config, err := s.loadConfig(configName)
	if err != nil {
		return nil, err
	}
	dict, err := s.configs.LoadDictionary(config)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary for %s: %w", config.Name, err)
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultWordLimit
	}
	if limit > maxWordLimit {
		limit = maxWordLimit
	}

	lookup := &WordLookup{ConfigID: configName}
	if lookup.ConfigID == "" {
		lookup.ConfigID = s.getConfigID(config.Name)
	}

	if query.Length > 0 {
		lookup.Length = query.Length
		lookup.Words = dict.WordsOfLength(query.Length)
		lookup.Count = len(lookup.Words)
		if len(lookup.Words) > limit {
			lookup.Words = lookup.Words[:limit]
			lookup.Truncated = true
		}
		return lookup, nil
	}

	lookup.Prefix = query.Prefix
	lookup.Words = []string{}
	dict.Walk(query.Prefix, func(word string) bool {
		lookup.Count++
		if len(lookup.Words) < limit {
			lookup.Words = append(lookup.Words, word)
		}
		return true
	})
	lookup.Truncated = lookup.Count > len(lookup.Words)
	return lookup, nil
}

// DictionaryContains reports whether word is in the dictionary of a config
func (s *gameServiceImpl) DictionaryContains(ctx context.Context, configName, word string) (*DictionaryCheck, error) {
	config, err := s.loadConfig(configName)
	if err != nil {
		return nil, err
	}
	dict, err := s.configs.LoadDictionary(config)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary for %s: %w", config.Name, err)
	}

	clean, _ := dictionary.Sanitize(word)
	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}
	return &DictionaryCheck{
		ConfigID: configID,
		Word:     clean,
		Found:    dict.ContainsWord(word),
		IsPrefix: clean != "" && dict.IsPrefix(clean),
	}, nil
}

// loadConfig loads a configuration by name, or the default when name is empty
func (s *gameServiceImpl) loadConfig(configName string) (*engine.GameConfig, error) {
	if configName == "" {
		config := s.configs.GetDefault()
		if config == nil {
			return nil, fmt.Errorf("no default configuration available")
		}
		return config, nil
	}

	config, err := s.configs.LoadConfig(configName)
	if err == nil {
		return config, nil
	}

	// Provide helpful error message with available options
	if errors.Is(err, ErrConfigNotFound) {
		availableConfigs, listErr := s.configs.ListConfigs()
		if listErr == nil && len(availableConfigs) > 0 {
			var configIDs []string
			for _, cfg := range availableConfigs {
				configIDs = append(configIDs, cfg.ConfigID)
			}
			return nil, fmt.Errorf("config '%s' not found. Available configs: %v: %w", configName, configIDs, err)
		}
		return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations: %w", configName, err)
	}
	return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
}

func (s *gameServiceImpl) toInfo(sess *Session) *SessionInfo {
	return &SessionInfo{
		ID:             sess.ID,
		ConfigName:     s.getConfigID(sess.Config.Name),
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		GameState:      sess.Engine.GetState(),
		GameConfig:     sess.Config,
	}
}
