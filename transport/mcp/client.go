package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wricardo/wordgrid-game/game/engine"
	"github.com/wricardo/wordgrid-game/game/grid"
	"github.com/wricardo/wordgrid-game/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Word Grid Game",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Word Grid Game - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Find every dictionary word hidden in the letter grid. Words are traced through
neighbouring cells (including diagonals) without reusing a cell, and need at
least 3 letters.

AVAILABLE TOOLS:
- create_session / get_session / list_sessions: manage games
- game_state: show the board, score and found words
- guess: submit a word
- check_board: trace a word on the board without guessing it
- solve_board: list every word on the board (spoils the game)
- reset_game: clear found words and score
- guess_history: past guesses
- list_configs: available boards and dictionaries
- lookup_words: words from a config's dictionary by prefix or length
- game_instructions: full rules and scoring`),
	)

	c.registerTools()
}

func sessionIDProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Session ID",
	}
}

func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional config selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "Config to use, see list_configs (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Show the board, score and the words found so far",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "guess",
		Description: "Submit a word found on the board",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"word": map[string]interface{}{
					"type":        "string",
					"description": "The word to submit (case-insensitive)",
				},
			},
			Required: []string{"session_id", "word"},
		},
	}, c.handleGuess)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "check_board",
		Description: "Check whether a word can be traced on the board and show its path. Does not count as a guess.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"word": map[string]interface{}{
					"type":        "string",
					"description": "The word to trace",
				},
			},
			Required: []string{"session_id", "word"},
		},
	}, c.handleCheckBoard)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "solve_board",
		Description: "List every dictionary word on the board",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleSolveBoard)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Reset the game: clears found words and score",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "guess_history",
		Description: "Get paginated guess history",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"page": map[string]interface{}{
					"type":        "number",
					"description": "Page number (default 1)",
				},
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Guesses per page (default 20)",
				},
				"order": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"asc", "desc"},
					"description": "Oldest or newest first (default desc)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGuessHistory)

	// Configuration and dictionaries
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available game configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "lookup_words",
		Description: "List words from a config's dictionary by prefix or exact length",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "Config whose dictionary to search",
				},
				"prefix": map[string]interface{}{
					"type":        "string",
					"description": "Only words starting with this prefix",
				},
				"length": map[string]interface{}{
					"type":        "number",
					"description": "Only words with exactly this many letters (takes precedence over prefix)",
				},
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of words (default 100)",
				},
			},
			Required: []string{"config_id"},
		},
	}, c.handleLookupWords)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get the rules, scoring and tips",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// apiCall performs a JSON request against the REST API. Error responses
// are turned into errors carrying the server's message.
func (c *Client) apiCall(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

func arguments(request mcp.CallToolRequest) map[string]interface{} {
	args, _ := request.Params.Arguments.(map[string]interface{})
	if args == nil {
		return map[string]interface{}{}
	}
	return args
}

func sessionPath(sessionID, suffix string) string {
	return "/api/sessions/" + url.PathEscape(sessionID) + suffix
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	configID, _ := args["config_id"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var session service.SessionInfo
	if err := c.apiCall(ctx, "POST", "/api/sessions", body, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n\n", session.ID, session.ConfigName)
	if session.GameState != nil {
		result += formatGameState(session.GameState)
	}
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	if err := c.apiCall(ctx, "GET", "/api/sessions", nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		progress := ""
		if s.GameState != nil {
			progress = fmt.Sprintf(", Found: %d/%d", len(s.GameState.FoundWords), s.GameState.TotalWords)
		}
		fmt.Fprintf(&b, "- %s (Config: %s%s, Created: %s)\n",
			s.ID, s.ConfigName, progress, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)

	var session service.SessionInfo
	if err := c.apiCall(ctx, "GET", sessionPath(sessionID, ""), nil, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSessionInfo(&session)), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)

	var state engine.GameState
	if err := c.apiCall(ctx, "GET", sessionPath(sessionID, "/state"), nil, &state); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatGameState(&state)), nil
}

func (c *Client) handleGuess(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	word, _ := args["word"].(string)

	if strings.TrimSpace(word) == "" {
		return mcp.NewToolResultError("word is required"), nil
	}

	var result service.GuessResponse
	body := map[string]string{"word": word}
	if err := c.apiCall(ctx, "POST", sessionPath(sessionID, "/guess"), body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatGuessResult(&result)), nil
}

func (c *Client) handleCheckBoard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	word, _ := args["word"].(string)

	if strings.TrimSpace(word) == "" {
		return mcp.NewToolResultError("word is required"), nil
	}

	var check service.BoardCheck
	path := sessionPath(sessionID, "/contains/"+url.PathEscape(word))
	if err := c.apiCall(ctx, "GET", path, nil, &check); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatBoardCheck(&check)), nil
}

func (c *Client) handleSolveBoard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)

	var result service.SolveResult
	if err := c.apiCall(ctx, "GET", sessionPath(sessionID, "/solve"), nil, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSolveResult(&result)), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}

	if err := c.apiCall(ctx, "POST", sessionPath(sessionID, "/reset"), nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGuessHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)

	params := url.Values{}
	if page, ok := args["page"].(float64); ok {
		params.Set("page", fmt.Sprintf("%d", int(page)))
	}
	if limit, ok := args["limit"].(float64); ok {
		params.Set("limit", fmt.Sprintf("%d", int(limit)))
	}
	if order, ok := args["order"].(string); ok && order != "" {
		params.Set("order", order)
	}

	path := sessionPath(sessionID, "/history")
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var history service.HistoryResponse
	if err := c.apiCall(ctx, "GET", path, nil, &history); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatHistory(&history)), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	if err := c.apiCall(ctx, "GET", "/api/configs", nil, &configs); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	b.WriteString("Available Configurations:\n\n")
	for _, config := range configs {
		board := "random letters"
		if config.FixedBoard {
			board = "fixed board"
		}
		fmt.Fprintf(&b, "• %s (config_id: %s)\n  %s\n  Grid: %dx%d, %s, Dictionary: %s\n\n",
			config.Name, config.ConfigID, config.Description,
			config.GridSize, config.GridSize, board, config.Dictionary)
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleLookupWords(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	configID, _ := args["config_id"].(string)
	if configID == "" {
		return mcp.NewToolResultError("config_id is required"), nil
	}

	params := url.Values{}
	if prefix, ok := args["prefix"].(string); ok && prefix != "" {
		params.Set("prefix", prefix)
	}
	if length, ok := args["length"].(float64); ok && length > 0 {
		params.Set("length", fmt.Sprintf("%d", int(length)))
	}
	if limit, ok := args["limit"].(float64); ok && limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", int(limit)))
	}

	path := "/api/dictionaries/" + url.PathEscape(configID) + "/words"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var lookup service.WordLookup
	if err := c.apiCall(ctx, "GET", path, nil, &lookup); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatWordLookup(&lookup)), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `Word Grid Game - Complete Instructions

GAME OBJECTIVE:
Find every dictionary word hidden in the square letter grid.

BUILDING A WORD:
• Start on any cell and move to one of its (up to) 8 neighbours, diagonals included
• Each cell may be used at most once per word
• Words need at least 3 letters
• Letters are case-insensitive; the grid only holds a-z

SCORING:
• 3 or 4 letters: 1 point
• 5 letters: 2 points
• 6 letters: 3 points
• 7 letters: 5 points
• 8 or more letters: 11 points

GUESS OUTCOMES:
• accepted: the word is new, on the board and in the dictionary
• already_found: you found it earlier
• too_short: fewer than 3 letters
• not_on_board: a real word, but it cannot be traced on this grid
• not_in_dictionary: the dictionary does not know it
• game_over: every word has already been found

STRATEGY TIPS:
• Look for common endings (-s, -ed, -er, -ing) next to words you already found
• Plurals and verb forms of a found word are often on the board too
• Use check_board to see the path of a word before guessing
• Use lookup_words with a prefix to explore a region of the dictionary

VICTORY CONDITIONS:
The game is won when every word on the board has been found. Reset to
play the same board again; the guess history is kept.

Good luck and happy hunting!`

	return mcp.NewToolResultText(instructions), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	result := fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\nLast Accessed: %s\n\n",
		session.ID, session.ConfigName,
		session.CreatedAt.Format(time.RFC3339), session.LastAccessedAt.Format(time.RFC3339))
	if session.GameState != nil {
		result += formatGameState(session.GameState)
	}
	return result
}

// formatBoard renders the rows with spaced upper-case letters
func formatBoard(rows []string) string {
	var b strings.Builder
	for _, row := range rows {
		letters := strings.Split(strings.ToUpper(row), "")
		b.WriteString("  ")
		b.WriteString(strings.Join(letters, " "))
		b.WriteString("\n")
	}
	return b.String()
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Board (%dx%d):\n", state.GridSize, state.GridSize)
	b.WriteString(formatBoard(state.Rows))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Score: %d/%d\n", state.Score, state.MaxScore)
	fmt.Fprintf(&b, "Words Found: %d/%d\n", len(state.FoundWords), state.TotalWords)
	if len(state.FoundWords) > 0 {
		fmt.Fprintf(&b, "Found: %s\n", strings.Join(state.FoundWords, ", "))
	}
	if state.Message != "" {
		fmt.Fprintf(&b, "Message: %s\n", state.Message)
	}

	if state.Victory {
		b.WriteString("\n🎉 VICTORY!\n")
	} else if state.GameOver {
		b.WriteString("\n💀 GAME OVER\n")
	}

	return b.String()
}

// formatCells lists cells as 1-based (row,col) pairs
func formatCells(path []grid.Cell) string {
	parts := make([]string, len(path))
	for i, cell := range path {
		parts[i] = fmt.Sprintf("(%d,%d)", cell.Row+1, cell.Col+1)
	}
	return strings.Join(parts, " → ")
}

func formatGuessResult(result *service.GuessResponse) string {
	var b strings.Builder

	if result.GuessResult != nil {
		if result.Accepted {
			fmt.Fprintf(&b, "✓ %s accepted (+%d points)\n", strings.ToUpper(result.Word), result.Points)
			if len(result.Path) > 0 {
				fmt.Fprintf(&b, "Path: %s\n", formatCells(result.Path))
			}
		} else {
			fmt.Fprintf(&b, "✗ %s rejected: %s\n", strings.ToUpper(result.Word), result.Reason)
		}
		if result.Message != "" {
			fmt.Fprintf(&b, "%s\n", result.Message)
		}
	}

	if state := result.GameState; state != nil {
		fmt.Fprintf(&b, "\nScore: %d/%d | Words Found: %d/%d\n",
			state.Score, state.MaxScore, len(state.FoundWords), state.TotalWords)
		if state.Victory {
			b.WriteString("\n🎉 VICTORY!\n")
		}
	}

	return b.String()
}

func formatBoardCheck(check *service.BoardCheck) string {
	var b strings.Builder
	if check.OnBoard {
		fmt.Fprintf(&b, "%s is on the board\nPath: %s\n", strings.ToUpper(check.Word), formatCells(check.Path))
	} else {
		fmt.Fprintf(&b, "%s cannot be traced on the board\n", strings.ToUpper(check.Word))
	}
	if check.InDictionary {
		b.WriteString("It is in the dictionary.\n")
	} else {
		b.WriteString("It is not in the dictionary.\n")
	}
	return b.String()
}

func formatSolveResult(result *service.SolveResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Words on the board: %d (max score %d)\n", result.TotalWords, result.MaxScore)
	fmt.Fprintf(&b, "Found so far: %d\n\n", result.Found)

	byLength := make(map[int][]string)
	maxLen := 0
	for _, w := range result.Words {
		n := len([]rune(w))
		byLength[n] = append(byLength[n], w)
		if n > maxLen {
			maxLen = n
		}
	}
	for n := engine.MinWordLength; n <= maxLen; n++ {
		if words := byLength[n]; len(words) > 0 {
			fmt.Fprintf(&b, "%d letters (%d): %s\n", n, len(words), strings.Join(words, ", "))
		}
	}

	if len(result.Remaining) > 0 && len(result.Remaining) < result.TotalWords {
		fmt.Fprintf(&b, "\nStill missing (%d): %s\n", len(result.Remaining), strings.Join(result.Remaining, ", "))
	}
	return b.String()
}

func formatHistory(history *service.HistoryResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Guess History (Page %d/%d, Total: %d):\n\n",
		history.Page, history.TotalPages, history.TotalGuesses)

	for _, g := range history.Guesses {
		mark := "✗"
		detail := string(g.Reason)
		if g.Accepted {
			mark = "✓"
			detail = fmt.Sprintf("+%d", g.Points)
		}
		fmt.Fprintf(&b, "#%d %s %s (%s)\n", g.GuessNumber, mark, g.Word, detail)
	}

	if history.HasNext {
		b.WriteString("\nMore guesses on the next page.\n")
	}
	return b.String()
}

func formatWordLookup(lookup *service.WordLookup) string {
	var b strings.Builder
	switch {
	case lookup.Length > 0:
		fmt.Fprintf(&b, "%d-letter words in %s: %d\n", lookup.Length, lookup.ConfigID, lookup.Count)
	case lookup.Prefix != "":
		fmt.Fprintf(&b, "Words starting with %q in %s: %d\n", lookup.Prefix, lookup.ConfigID, lookup.Count)
	default:
		fmt.Fprintf(&b, "Words in %s: %d\n", lookup.ConfigID, lookup.Count)
	}
	if len(lookup.Words) > 0 {
		b.WriteString(strings.Join(lookup.Words, ", "))
		b.WriteString("\n")
	}
	if lookup.Truncated {
		b.WriteString("(truncated, raise limit to see more)\n")
	}
	return b.String()
}
