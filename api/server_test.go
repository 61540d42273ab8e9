package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/wricardo/wordgrid-game/game/engine"
	"github.com/wricardo/wordgrid-game/game/grid"
	"github.com/wricardo/wordgrid-game/game/service"
	"github.com/wricardo/wordgrid-game/transport/websocket"
)

// MockGameService implements service.GameService for testing
type MockGameService struct {
	// Session Management
	CreateSessionFunc func(ctx context.Context, configName string) (*service.SessionInfo, error)
	GetSessionFunc    func(ctx context.Context, sessionID string) (*service.SessionInfo, error)
	ListSessionsFunc  func(ctx context.Context) ([]*service.SessionInfo, error)
	DeleteSessionFunc func(ctx context.Context, sessionID string) error

	// Game Operations
	GuessFunc     func(ctx context.Context, sessionID, word string) (*service.GuessResponse, error)
	CheckWordFunc func(ctx context.Context, sessionID, word string) (*service.BoardCheck, error)
	SolveFunc     func(ctx context.Context, sessionID string) (*service.SolveResult, error)
	ResetFunc     func(ctx context.Context, sessionID string) (*engine.GameState, error)

	// Game State
	GetGameStateFunc    func(ctx context.Context, sessionID string) (*engine.GameState, error)
	GetGuessHistoryFunc func(ctx context.Context, sessionID string, opts service.HistoryOptions) (*service.HistoryResponse, error)

	// Configuration
	ListConfigsFunc func(ctx context.Context) ([]*service.ConfigInfo, error)
	LoadConfigFunc  func(ctx context.Context, configName string) (*engine.GameConfig, error)
	SaveConfigFunc  func(ctx context.Context, configName string, config *engine.GameConfig) error

	// Dictionary
	LookupWordsFunc        func(ctx context.Context, configName string, query service.WordQuery) (*service.WordLookup, error)
	DictionaryContainsFunc func(ctx context.Context, configName, word string) (*service.DictionaryCheck, error)
}

func testState() *engine.GameState {
	return &engine.GameState{
		Letters:    "catsdoger",
		GridSize:   3,
		Rows:       []string{"cat", "sdo", "ger"},
		FoundWords: []string{},
		TotalWords: 9,
		MaxScore:   9,
		ConfigName: "test",
	}
}

// Session Management
func (m *MockGameService) CreateSession(ctx context.Context, configName string) (*service.SessionInfo, error) {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(ctx, configName)
	}
	return &service.SessionInfo{
		ID:         "test-session",
		ConfigName: configName,
		CreatedAt:  time.Now(),
		GameState:  testState(),
	}, nil
}

func (m *MockGameService) GetSession(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(ctx, sessionID)
	}
	return &service.SessionInfo{
		ID:         sessionID,
		ConfigName: "test-config",
		CreatedAt:  time.Now(),
		GameState:  testState(),
	}, nil
}

func (m *MockGameService) ListSessions(ctx context.Context) ([]*service.SessionInfo, error) {
	if m.ListSessionsFunc != nil {
		return m.ListSessionsFunc(ctx)
	}
	return []*service.SessionInfo{}, nil
}

func (m *MockGameService) DeleteSession(ctx context.Context, sessionID string) error {
	if m.DeleteSessionFunc != nil {
		return m.DeleteSessionFunc(ctx, sessionID)
	}
	return nil
}

// Game Operations
func (m *MockGameService) Guess(ctx context.Context, sessionID, word string) (*service.GuessResponse, error) {
	if m.GuessFunc != nil {
		return m.GuessFunc(ctx, sessionID, word)
	}
	return &service.GuessResponse{
		GuessResult: &engine.GuessResult{Word: word, Reason: engine.ReasonNotOnBoard},
		GameState:   testState(),
	}, nil
}

func (m *MockGameService) CheckWord(ctx context.Context, sessionID, word string) (*service.BoardCheck, error) {
	if m.CheckWordFunc != nil {
		return m.CheckWordFunc(ctx, sessionID, word)
	}
	return &service.BoardCheck{Word: word}, nil
}

func (m *MockGameService) Solve(ctx context.Context, sessionID string) (*service.SolveResult, error) {
	if m.SolveFunc != nil {
		return m.SolveFunc(ctx, sessionID)
	}
	return &service.SolveResult{Words: []string{}}, nil
}

func (m *MockGameService) Reset(ctx context.Context, sessionID string) (*engine.GameState, error) {
	if m.ResetFunc != nil {
		return m.ResetFunc(ctx, sessionID)
	}
	return testState(), nil
}

// Game State
func (m *MockGameService) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	if m.GetGameStateFunc != nil {
		return m.GetGameStateFunc(ctx, sessionID)
	}
	return testState(), nil
}

func (m *MockGameService) GetGuessHistory(ctx context.Context, sessionID string, opts service.HistoryOptions) (*service.HistoryResponse, error) {
	if m.GetGuessHistoryFunc != nil {
		return m.GetGuessHistoryFunc(ctx, sessionID, opts)
	}
	return &service.HistoryResponse{
		Guesses:  []engine.GuessHistoryEntry{},
		Page:     opts.Page,
		PageSize: opts.Limit,
	}, nil
}

// Configuration
func (m *MockGameService) ListConfigs(ctx context.Context) ([]*service.ConfigInfo, error) {
	if m.ListConfigsFunc != nil {
		return m.ListConfigsFunc(ctx)
	}
	return []*service.ConfigInfo{}, nil
}

func (m *MockGameService) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	if m.LoadConfigFunc != nil {
		return m.LoadConfigFunc(ctx, configName)
	}
	return &engine.GameConfig{
		Name:        configName,
		Description: "Test config",
	}, nil
}

func (m *MockGameService) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	if m.SaveConfigFunc != nil {
		return m.SaveConfigFunc(ctx, configName, config)
	}
	return nil
}

// Dictionary
func (m *MockGameService) LookupWords(ctx context.Context, configName string, query service.WordQuery) (*service.WordLookup, error) {
	if m.LookupWordsFunc != nil {
		return m.LookupWordsFunc(ctx, configName, query)
	}
	return &service.WordLookup{ConfigID: configName, Words: []string{}}, nil
}

func (m *MockGameService) DictionaryContains(ctx context.Context, configName, word string) (*service.DictionaryCheck, error) {
	if m.DictionaryContainsFunc != nil {
		return m.DictionaryContainsFunc(ctx, configName, word)
	}
	return &service.DictionaryCheck{ConfigID: configName, Word: word}, nil
}

// Test helpers
func setupTestServer(t *testing.T, mockService *MockGameService) *Server {
	hub := websocket.NewHub()
	go hub.Run()
	t.Cleanup(hub.Stop)
	return NewServer(mockService, hub)
}

func makeRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	if err := json.Unmarshal(w.Body.Bytes(), target); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
}

type routeTest struct {
	name           string
	method         string
	path           string
	body           interface{}
	setupMock      func(*MockGameService)
	expectedStatus int
	validateResp   func(*testing.T, *httptest.ResponseRecorder)
}

func runRouteTests(t *testing.T, tests []routeTest) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockGameService{}
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			server := setupTestServer(t, mockService)
			w := httptest.NewRecorder()
			server.ServeHTTP(w, makeRequest(tt.method, tt.path, tt.body))

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d (%s)", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.validateResp != nil {
				tt.validateResp(t, w)
			}
		})
	}
}

func expectError(want string) func(*testing.T, *httptest.ResponseRecorder) {
	return func(t *testing.T, w *httptest.ResponseRecorder) {
		var resp map[string]string
		parseResponse(t, w, &resp)
		if resp["error"] != want {
			t.Errorf("Expected error %q, got %q", want, resp["error"])
		}
	}
}

// Session Management Tests

func TestCreateSession(t *testing.T) {
	runRouteTests(t, []routeTest{
		{
			name:   "Create session with default config",
			method: "POST",
			path:   "/api/sessions",
			setupMock: func(m *MockGameService) {
				m.CreateSessionFunc = func(ctx context.Context, configName string) (*service.SessionInfo, error) {
					if configName != "" {
						t.Errorf("Expected empty config name, got %s", configName)
					}
					return &service.SessionInfo{ID: "ab12", ConfigName: "classic", GameState: testState()}, nil
				}
			},
			expectedStatus: http.StatusCreated,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.SessionInfo
				parseResponse(t, w, &resp)
				if resp.ID != "ab12" {
					t.Errorf("Expected session ID ab12, got %s", resp.ID)
				}
				if resp.GameState == nil || resp.GameState.Letters != "catsdoger" {
					t.Error("Expected game state in response")
				}
			},
		},
		{
			name:   "Create session with specific config",
			method: "POST",
			path:   "/api/sessions",
			body:   map[string]string{"config_id": "french"},
			setupMock: func(m *MockGameService) {
				m.CreateSessionFunc = func(ctx context.Context, configName string) (*service.SessionInfo, error) {
					if configName != "french" {
						t.Errorf("Expected config 'french', got %s", configName)
					}
					return &service.SessionInfo{ID: "cd34", ConfigName: configName, GameState: testState()}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "Unknown config",
			method: "POST",
			path:   "/api/sessions",
			body:   map[string]string{"config_id": "nope"},
			setupMock: func(m *MockGameService) {
				m.CreateSessionFunc = func(ctx context.Context, configName string) (*service.SessionInfo, error) {
					return nil, fmt.Errorf("config 'nope' not found: %w", service.ErrConfigNotFound)
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "Handle service error",
			method: "POST",
			path:   "/api/sessions",
			setupMock: func(m *MockGameService) {
				m.CreateSessionFunc = func(ctx context.Context, configName string) (*service.SessionInfo, error) {
					return nil, fmt.Errorf("service error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
			validateResp:   expectError("service error"),
		},
	})
}

func TestListSessions(t *testing.T) {
	now := time.Now()
	sessions := func(ctx context.Context) ([]*service.SessionInfo, error) {
		return []*service.SessionInfo{
			{ID: "old", CreatedAt: now.Add(-2 * time.Hour), LastAccessedAt: now},
			{ID: "mid", CreatedAt: now.Add(-time.Hour), LastAccessedAt: now.Add(-2 * time.Hour)},
			{ID: "new", CreatedAt: now, LastAccessedAt: now.Add(-time.Hour)},
		}, nil
	}

	ids := func(t *testing.T, w *httptest.ResponseRecorder) []string {
		var resp struct {
			Count    int                    `json:"count"`
			Total    int                    `json:"total"`
			Sessions []*service.SessionInfo `json:"sessions"`
		}
		parseResponse(t, w, &resp)
		out := make([]string, 0, len(resp.Sessions))
		for _, s := range resp.Sessions {
			out = append(out, s.ID)
		}
		if resp.Total != 3 {
			t.Errorf("Expected total 3, got %d", resp.Total)
		}
		if resp.Count != len(out) {
			t.Errorf("count %d does not match %d sessions", resp.Count, len(out))
		}
		return out
	}

	runRouteTests(t, []routeTest{
		{
			name:           "Default sort by last access, newest first",
			method:         "GET",
			path:           "/api/sessions",
			setupMock:      func(m *MockGameService) { m.ListSessionsFunc = sessions },
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				got := ids(t, w)
				if fmt.Sprint(got) != "[old new mid]" {
					t.Errorf("Unexpected order %v", got)
				}
			},
		},
		{
			name:           "Sort by creation ascending with limit",
			method:         "GET",
			path:           "/api/sessions?sort=created&order=asc&limit=2",
			setupMock:      func(m *MockGameService) { m.ListSessionsFunc = sessions },
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				got := ids(t, w)
				if fmt.Sprint(got) != "[old mid]" {
					t.Errorf("Unexpected order %v", got)
				}
			},
		},
		{
			name:   "Service error",
			method: "GET",
			path:   "/api/sessions",
			setupMock: func(m *MockGameService) {
				m.ListSessionsFunc = func(ctx context.Context) ([]*service.SessionInfo, error) {
					return nil, fmt.Errorf("boom")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	})
}

func TestGetAndDeleteSession(t *testing.T) {
	notFound := func(m *MockGameService) {
		m.GetSessionFunc = func(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
			return nil, fmt.Errorf("session not found")
		}
		m.DeleteSessionFunc = func(ctx context.Context, sessionID string) error {
			return fmt.Errorf("session not found")
		}
	}

	runRouteTests(t, []routeTest{
		{
			name:           "Get existing session",
			method:         "GET",
			path:           "/api/sessions/ab12",
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.SessionInfo
				parseResponse(t, w, &resp)
				if resp.ID != "ab12" {
					t.Errorf("Expected ab12, got %s", resp.ID)
				}
			},
		},
		{
			name:           "Get missing session",
			method:         "GET",
			path:           "/api/sessions/zz99",
			setupMock:      notFound,
			expectedStatus: http.StatusNotFound,
			validateResp:   expectError("session not found"),
		},
		{
			name:           "Delete session",
			method:         "DELETE",
			path:           "/api/sessions/ab12",
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]string
				parseResponse(t, w, &resp)
				if resp["message"] != "Session ab12 deleted" {
					t.Errorf("Unexpected message %q", resp["message"])
				}
			},
		},
		{
			name:           "Delete missing session",
			method:         "DELETE",
			path:           "/api/sessions/zz99",
			setupMock:      notFound,
			expectedStatus: http.StatusNotFound,
		},
	})
}

// Game Operation Tests

func TestGuess(t *testing.T) {
	accepted := func(m *MockGameService) {
		m.GuessFunc = func(ctx context.Context, sessionID, word string) (*service.GuessResponse, error) {
			if sessionID != "ab12" || word != "toad" {
				t.Errorf("Unexpected guess %s/%s", sessionID, word)
			}
			state := testState()
			state.FoundWords = []string{"toad"}
			state.Score = 1
			return &service.GuessResponse{
				GuessResult: &engine.GuessResult{
					Word:     "toad",
					Accepted: true,
					Reason:   engine.ReasonAccepted,
					Points:   1,
					Path:     []grid.Cell{{Row: 1, Col: 2}},
					Message:  "Found toad! +1 points",
				},
				GameState: state,
				Events: []service.GameEvent{
					{Type: "guess", Word: "toad"},
					{Type: "word_found", Word: "toad"},
				},
			}, nil
		}
	}

	runRouteTests(t, []routeTest{
		{
			name:           "Accepted guess",
			method:         "POST",
			path:           "/api/sessions/ab12/guess",
			body:           map[string]string{"word": "toad"},
			setupMock:      accepted,
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.GuessResponse
				parseResponse(t, w, &resp)
				if resp.GuessResult == nil || !resp.Accepted || resp.Points != 1 {
					t.Fatalf("Unexpected result %+v", resp.GuessResult)
				}
				if resp.Reason != engine.ReasonAccepted {
					t.Errorf("Expected reason accepted, got %s", resp.Reason)
				}
				if len(resp.Path) != 1 {
					t.Errorf("Expected path in response, got %v", resp.Path)
				}
				if resp.GameState == nil || resp.GameState.Score != 1 {
					t.Error("Expected updated game state")
				}
				if len(resp.Events) != 2 {
					t.Errorf("Expected 2 events, got %d", len(resp.Events))
				}
			},
		},
		{
			name:           "Rejected guess is still 200",
			method:         "POST",
			path:           "/api/sessions/ab12/guess",
			body:           map[string]string{"word": "zebra"},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.GuessResponse
				parseResponse(t, w, &resp)
				if resp.Accepted || resp.Reason != engine.ReasonNotOnBoard {
					t.Errorf("Unexpected result %+v", resp.GuessResult)
				}
			},
		},
		{
			name:           "Missing word",
			method:         "POST",
			path:           "/api/sessions/ab12/guess",
			body:           map[string]string{"word": "  "},
			expectedStatus: http.StatusBadRequest,
			validateResp:   expectError("word is required"),
		},
		{
			name:           "Invalid body",
			method:         "POST",
			path:           "/api/sessions/ab12/guess",
			body:           "not an object",
			expectedStatus: http.StatusBadRequest,
			validateResp:   expectError("Invalid request body"),
		},
		{
			name:   "Unknown session",
			method: "POST",
			path:   "/api/sessions/zz99/guess",
			body:   map[string]string{"word": "toad"},
			setupMock: func(m *MockGameService) {
				m.GuessFunc = func(ctx context.Context, sessionID, word string) (*service.GuessResponse, error) {
					return nil, fmt.Errorf("session not found")
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	})
}

func TestContainsAndSolve(t *testing.T) {
	runRouteTests(t, []routeTest{
		{
			name:   "Word on board",
			method: "GET",
			path:   "/api/sessions/ab12/contains/Toad",
			setupMock: func(m *MockGameService) {
				m.CheckWordFunc = func(ctx context.Context, sessionID, word string) (*service.BoardCheck, error) {
					if word != "Toad" {
						t.Errorf("Word should reach the service unchanged, got %s", word)
					}
					return &service.BoardCheck{
						Word:         "toad",
						OnBoard:      true,
						InDictionary: true,
						Path:         []grid.Cell{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 0, Col: 1}, {Row: 1, Col: 1}},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.BoardCheck
				parseResponse(t, w, &resp)
				if !resp.OnBoard || len(resp.Path) != 4 {
					t.Errorf("Unexpected check %+v", resp)
				}
			},
		},
		{
			name:   "Solve board",
			method: "GET",
			path:   "/api/sessions/ab12/solve",
			setupMock: func(m *MockGameService) {
				m.SolveFunc = func(ctx context.Context, sessionID string) (*service.SolveResult, error) {
					return &service.SolveResult{
						Words:      []string{"cat", "dot", "toad"},
						TotalWords: 3,
						MaxScore:   3,
						Found:      1,
						Remaining:  []string{"cat", "dot"},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.SolveResult
				parseResponse(t, w, &resp)
				if resp.TotalWords != 3 || len(resp.Remaining) != 2 {
					t.Errorf("Unexpected solve result %+v", resp)
				}
			},
		},
		{
			name:   "Solve unknown session",
			method: "GET",
			path:   "/api/sessions/zz99/solve",
			setupMock: func(m *MockGameService) {
				m.SolveFunc = func(ctx context.Context, sessionID string) (*service.SolveResult, error) {
					return nil, fmt.Errorf("session not found")
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	})
}

func TestResetAndState(t *testing.T) {
	runRouteTests(t, []routeTest{
		{
			name:           "Reset",
			method:         "POST",
			path:           "/api/sessions/ab12/reset",
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp struct {
					Message string            `json:"message"`
					State   *engine.GameState `json:"state"`
				}
				parseResponse(t, w, &resp)
				if resp.Message != "Game reset successfully" || resp.State == nil {
					t.Errorf("Unexpected reset response %+v", resp)
				}
			},
		},
		{
			name:   "Reset unknown session",
			method: "POST",
			path:   "/api/sessions/zz99/reset",
			setupMock: func(m *MockGameService) {
				m.ResetFunc = func(ctx context.Context, sessionID string) (*engine.GameState, error) {
					return nil, fmt.Errorf("session not found")
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Game state",
			method:         "GET",
			path:           "/api/sessions/ab12/state",
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp engine.GameState
				parseResponse(t, w, &resp)
				if resp.GridSize != 3 || len(resp.Rows) != 3 {
					t.Errorf("Unexpected state %+v", resp)
				}
			},
		},
	})
}

func TestGetHistory(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected service.HistoryOptions
	}{
		{"Defaults", "", service.HistoryOptions{Page: 1, Limit: 20, Order: "desc"}},
		{"Explicit values", "?page=3&limit=5&order=asc", service.HistoryOptions{Page: 3, Limit: 5, Order: "asc"}},
		{"Invalid values fall back", "?page=-1&limit=abc&order=sideways", service.HistoryOptions{Page: 1, Limit: 20, Order: "desc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got service.HistoryOptions
			mockService := &MockGameService{
				GetGuessHistoryFunc: func(ctx context.Context, sessionID string, opts service.HistoryOptions) (*service.HistoryResponse, error) {
					got = opts
					return &service.HistoryResponse{Page: opts.Page, PageSize: opts.Limit}, nil
				},
			}

			server := setupTestServer(t, mockService)
			w := httptest.NewRecorder()
			server.ServeHTTP(w, makeRequest("GET", "/api/sessions/ab12/history"+tt.query, nil))

			if w.Code != http.StatusOK {
				t.Fatalf("Expected status 200, got %d", w.Code)
			}
			if got != tt.expected {
				t.Errorf("Expected options %+v, got %+v", tt.expected, got)
			}
		})
	}
}

// Configuration Tests

func TestConfigs(t *testing.T) {
	validConfig := engine.GameConfig{
		Name:        "mini",
		Description: "Tiny board",
		GridSize:    2,
		Letters:     "abcd",
		Dictionary:  "dictionaries/english.txt",
		Messages:    engine.DefaultMessages(),
	}

	runRouteTests(t, []routeTest{
		{
			name:   "List configs",
			method: "GET",
			path:   "/api/configs",
			setupMock: func(m *MockGameService) {
				m.ListConfigsFunc = func(ctx context.Context) ([]*service.ConfigInfo, error) {
					return []*service.ConfigInfo{
						{ConfigID: "classic", Name: "Classic", GridSize: 4},
						{ConfigID: "french", Name: "French", GridSize: 4, FixedBoard: true},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp []service.ConfigInfo
				parseResponse(t, w, &resp)
				if len(resp) != 2 || !resp[1].FixedBoard {
					t.Errorf("Unexpected configs %+v", resp)
				}
			},
		},
		{
			name:   "Get config strips .json",
			method: "GET",
			path:   "/api/configs/french.json",
			setupMock: func(m *MockGameService) {
				m.LoadConfigFunc = func(ctx context.Context, configName string) (*engine.GameConfig, error) {
					if configName != "french" {
						t.Errorf("Expected 'french', got %s", configName)
					}
					return &engine.GameConfig{Name: "French", GridSize: 4}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Get missing config",
			method: "GET",
			path:   "/api/configs/nope",
			setupMock: func(m *MockGameService) {
				m.LoadConfigFunc = func(ctx context.Context, configName string) (*engine.GameConfig, error) {
					return nil, service.ErrConfigNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "Create config",
			method: "POST",
			path:   "/api/configs",
			body:   validConfig,
			setupMock: func(m *MockGameService) {
				m.SaveConfigFunc = func(ctx context.Context, configName string, config *engine.GameConfig) error {
					if configName != "mini" || config.Letters != "abcd" {
						t.Errorf("Unexpected config %s %+v", configName, config)
					}
					return nil
				}
			},
			expectedStatus: http.StatusCreated,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				parseResponse(t, w, &resp)
				if resp["config_id"] != "mini" {
					t.Errorf("Expected config_id mini, got %v", resp["config_id"])
				}
			},
		},
		{
			name:           "Create config without name",
			method:         "POST",
			path:           "/api/configs",
			body:           engine.GameConfig{GridSize: 4},
			expectedStatus: http.StatusBadRequest,
			validateResp:   expectError("Config name is required"),
		},
		{
			name:           "Create invalid config",
			method:         "POST",
			path:           "/api/configs",
			body:           engine.GameConfig{Name: "broken", GridSize: 0},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Save failure",
			method: "POST",
			path:   "/api/configs",
			body:   validConfig,
			setupMock: func(m *MockGameService) {
				m.SaveConfigFunc = func(ctx context.Context, configName string, config *engine.GameConfig) error {
					return fmt.Errorf("disk full")
				}
			},
			expectedStatus: http.StatusInternalServerError,
			validateResp:   expectError("Failed to save config: disk full"),
		},
	})
}

// Dictionary Tests

func TestLookupWords(t *testing.T) {
	runRouteTests(t, []routeTest{
		{
			name:   "Words by length",
			method: "GET",
			path:   "/api/dictionaries/french/words?length=5&limit=10",
			setupMock: func(m *MockGameService) {
				m.LookupWordsFunc = func(ctx context.Context, configName string, q service.WordQuery) (*service.WordLookup, error) {
					if configName != "french" || q.Length != 5 || q.Limit != 10 || q.Prefix != "" {
						t.Errorf("Unexpected query %s %+v", configName, q)
					}
					return &service.WordLookup{ConfigID: "french", Length: 5, Words: []string{"songe"}, Count: 1}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.WordLookup
				parseResponse(t, w, &resp)
				if resp.Count != 1 || resp.Words[0] != "songe" {
					t.Errorf("Unexpected lookup %+v", resp)
				}
			},
		},
		{
			name:   "Words by prefix",
			method: "GET",
			path:   "/api/dictionaries/classic/words?prefix=ca",
			setupMock: func(m *MockGameService) {
				m.LookupWordsFunc = func(ctx context.Context, configName string, q service.WordQuery) (*service.WordLookup, error) {
					if q.Prefix != "ca" || q.Length != 0 {
						t.Errorf("Unexpected query %+v", q)
					}
					return &service.WordLookup{ConfigID: configName, Prefix: "ca", Words: []string{"cat"}, Count: 1}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Bad length",
			method:         "GET",
			path:           "/api/dictionaries/classic/words?length=five",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Unknown config",
			method: "GET",
			path:   "/api/dictionaries/nope/words?length=3",
			setupMock: func(m *MockGameService) {
				m.LookupWordsFunc = func(ctx context.Context, configName string, q service.WordQuery) (*service.WordLookup, error) {
					return nil, fmt.Errorf("config 'nope' not found: %w", service.ErrConfigNotFound)
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "Broken dictionary",
			method: "GET",
			path:   "/api/dictionaries/classic/words",
			setupMock: func(m *MockGameService) {
				m.LookupWordsFunc = func(ctx context.Context, configName string, q service.WordQuery) (*service.WordLookup, error) {
					return nil, fmt.Errorf("failed to load dictionary")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	})
}

func TestDictionaryContains(t *testing.T) {
	runRouteTests(t, []routeTest{
		{
			name:   "Known word",
			method: "GET",
			path:   "/api/dictionaries/french/contains/songe",
			setupMock: func(m *MockGameService) {
				m.DictionaryContainsFunc = func(ctx context.Context, configName, word string) (*service.DictionaryCheck, error) {
					return &service.DictionaryCheck{ConfigID: configName, Word: word, Found: true, IsPrefix: true}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.DictionaryCheck
				parseResponse(t, w, &resp)
				if !resp.Found || resp.ConfigID != "french" || resp.Word != "songe" {
					t.Errorf("Unexpected check %+v", resp)
				}
			},
		},
		{
			name:   "Unknown config",
			method: "GET",
			path:   "/api/dictionaries/nope/contains/songe",
			setupMock: func(m *MockGameService) {
				m.DictionaryContainsFunc = func(ctx context.Context, configName, word string) (*service.DictionaryCheck, error) {
					return nil, service.ErrConfigNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	})
}

func TestUnifiedSessions(t *testing.T) {
	all := func(ctx context.Context) ([]*service.SessionInfo, error) {
		return []*service.SessionInfo{
			{ID: "a1", ConfigName: "classic", GameState: &engine.GameState{TotalWords: 12}},
			{ID: "b2", ConfigName: "french", GameState: &engine.GameState{TotalWords: 40}},
			{ID: "c3", ConfigName: "french", GameState: &engine.GameState{TotalWords: 40}},
		}, nil
	}

	type unified struct {
		ConfigName string                   `json:"config_name"`
		TotalWords int                      `json:"total_words"`
		Sessions   []map[string]interface{} `json:"sessions"`
	}

	runRouteTests(t, []routeTest{
		{
			name:           "All sessions",
			method:         "GET",
			path:           "/api/sessions/unified",
			setupMock:      func(m *MockGameService) { m.ListSessionsFunc = all },
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp unified
				parseResponse(t, w, &resp)
				if len(resp.Sessions) != 3 {
					t.Errorf("Expected 3 sessions, got %d", len(resp.Sessions))
				}
			},
		},
		{
			name:           "Filter by config",
			method:         "GET",
			path:           "/api/sessions/unified?configName=french",
			setupMock:      func(m *MockGameService) { m.ListSessionsFunc = all },
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp unified
				parseResponse(t, w, &resp)
				if len(resp.Sessions) != 2 || resp.ConfigName != "french" || resp.TotalWords != 40 {
					t.Errorf("Unexpected response %+v", resp)
				}
			},
		},
		{
			name:   "Specific IDs skip unknown ones",
			method: "GET",
			path:   "/api/sessions/unified?sessionIds=a1,%20missing,,c3",
			setupMock: func(m *MockGameService) {
				m.GetSessionFunc = func(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
					if sessionID == "missing" {
						return nil, fmt.Errorf("session not found")
					}
					return &service.SessionInfo{ID: sessionID, ConfigName: "classic"}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp unified
				parseResponse(t, w, &resp)
				if len(resp.Sessions) != 2 {
					t.Fatalf("Expected 2 sessions, got %d", len(resp.Sessions))
				}
				if resp.Sessions[1]["session_id"] != "c3" {
					t.Errorf("Expected c3, got %v", resp.Sessions[1]["session_id"])
				}
			},
		},
	})
}

func TestHealth(t *testing.T) {
	server := setupTestServer(t, &MockGameService{})
	w := httptest.NewRecorder()
	server.ServeHTTP(w, makeRequest("GET", "/api/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var resp map[string]interface{}
	parseResponse(t, w, &resp)
	if resp["status"] != "healthy" {
		t.Errorf("Expected healthy, got %v", resp["status"])
	}
}

func TestServerWithoutHub(t *testing.T) {
	server := NewServer(&MockGameService{}, nil)

	w := httptest.NewRecorder()
	server.ServeHTTP(w, makeRequest("POST", "/api/sessions/ab12/guess", map[string]string{"word": "cat"}))
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 without hub, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest("GET", "/ws?session=ab12", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected /ws to be unrouted without hub, got %d", w.Code)
	}
}

func TestWebSocket(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    string
		setupMock      func(*MockGameService)
		expectedStatus int
	}{
		{
			name:           "Missing session parameter",
			queryParams:    "",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Invalid session",
			queryParams: "?session=invalid",
			setupMock: func(m *MockGameService) {
				m.GetSessionFunc = func(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
					return nil, fmt.Errorf("session not found")
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Valid session",
			queryParams:    "?session=ab12",
			expectedStatus: http.StatusSwitchingProtocols,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockGameService{}
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			server := setupTestServer(t, mockService)
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/ws"+tt.queryParams, nil)

			if tt.expectedStatus == http.StatusSwitchingProtocols {
				req.Header.Set("Upgrade", "websocket")
				req.Header.Set("Connection", "Upgrade")
				req.Header.Set("Sec-WebSocket-Key", "dGhlIHNhbXBsZSBub25jZQ==")
				req.Header.Set("Sec-WebSocket-Version", "13")
			}

			server.handleWebSocket(w, req)

			// ResponseRecorder is not an http.Hijacker, so a valid upgrade
			// attempt ends in a 500 from the upgrader
			if tt.expectedStatus == http.StatusSwitchingProtocols && w.Code == http.StatusInternalServerError {
				return
			}

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}
