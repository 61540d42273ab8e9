// Package session provides session management for the word grid game.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - JSON file persistence of sessions
//   - Session cleanup and expiration
//
// Core Types:
//
// Manager keeps the sessions in memory and, when created with
// NewManagerWithPersistence, writes every change through to a
// SessionPersistence. FilePersistence stores one JSON file per session in a
// directory. A stored session keeps its board letters, so a random board is
// restored exactly as it was played.
//
// Session Identifiers:
//
// Generated IDs are 4 hex characters from crypto/rand. Lookups are
// case-insensitive. Caller supplied IDs may only contain letters, digits,
// '-' and '_' because they name files on disk.
//
// Usage:
//
//	configs, _ := config.NewManager("configs")
//	store, err := session.NewFilePersistence("sessions", configs)
//	if err != nil {
//		log.Fatal(err)
//	}
//	manager := session.NewManagerWithPersistence(store)
//
//	gameConfig := configs.GetDefault()
//	dict, _ := configs.LoadDictionary(gameConfig)
//	sess, err := manager.Create("", gameConfig, dict)
//
// Cleanup:
//
// CleanupExpiredSessions evicts idle sessions from memory only; their files
// remain and are loaded again on the next Get.
package session
