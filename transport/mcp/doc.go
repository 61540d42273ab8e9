// Package mcp exposes the word grid game to AI agents over the Model
// Context Protocol.
//
// The Client is a thin proxy: every tool call becomes a request to the
// REST API, and the JSON answer is rendered as plain text for the agent.
// It holds no game state of its own.
//
// Tools:
//   - create_session, get_session, list_sessions
//   - game_state, guess, check_board, solve_board, reset_game, guess_history
//   - list_configs, lookup_words, game_instructions
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
package mcp
