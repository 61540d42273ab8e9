// Package api provides the HTTP REST API for the word grid game.
//
// Sessions:
//   - POST   /api/sessions                 create a session {config_id}
//   - GET    /api/sessions                 list (?sort=created|accessed&order=asc|desc&limit=n)
//   - GET    /api/sessions/unified         several sessions at once (?sessionIds=a,b or ?configName=x)
//   - GET    /api/sessions/{id}            session info
//   - DELETE /api/sessions/{id}            delete
//
// Play:
//   - GET  /api/sessions/{id}/state           current game state
//   - POST /api/sessions/{id}/guess           submit {word}
//   - GET  /api/sessions/{id}/contains/{word} trace a word on the board
//   - GET  /api/sessions/{id}/solve           every word on the board
//   - POST /api/sessions/{id}/reset           clear found words and score
//   - GET  /api/sessions/{id}/history         guesses (?page=&limit=&order=)
//
// Configurations and dictionaries:
//   - GET  /api/configs                              list
//   - POST /api/configs                              save a GameConfig
//   - GET  /api/configs/{name}                       get one
//   - GET  /api/dictionaries/{name}/words            ?prefix=p or ?length=n, &limit=
//   - GET  /api/dictionaries/{name}/contains/{word}  membership
//
// GET /api/health reports liveness, and /ws?session=ID upgrades to a
// WebSocket that receives the session's state after every guess or reset.
//
// Errors are JSON objects of the form {"error": "..."}. A rejected guess
// is not an error: it returns 200 with accepted=false and a reason.
package api
