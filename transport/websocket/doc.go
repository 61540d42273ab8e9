// Package websocket pushes live game updates to browsers watching a session.
//
// A central Hub tracks connections per session ID. Each connection gets a
// reader goroutine (which only handles control frames) and a writer goroutine
// that forwards queued messages and sends pings.
//
// Outgoing messages are JSON:
//
//	{"session_id": "ab12", "event": "state_update", "game_state": {...}}
//	{"session_id": "ab12", "event": "word_found", "data": {...}}
//
// Session IDs are case-insensitive, matching the session manager.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//	defer hub.Stop()
//
//	router.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
//		hub.ServeWS(w, r, r.URL.Query().Get("session"))
//	})
package websocket
