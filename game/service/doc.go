// Package service provides the business logic layer for the word grid game.
//
// The service package implements:
//   - Multi-session game management
//   - Configuration loading and dictionary caching
//   - Guess processing and board queries
//   - Guess history with filtering and paging
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager manages game configuration loading and validation.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the game engine. Each session owns its own engine, so boards and scores are
// independent.
//
// Usage:
//
//	configMgr, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//	gameService := service.NewGameService(session.NewManager(), configMgr)
//
//	sessionInfo, err := gameService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	resp, err := gameService.Guess(ctx, sessionInfo.ID, "toad")
//
// Session Management:
//
// Sessions are identified by short random IDs. They track creation and last
// access times and keep the full guess history.
package service
