// Package api provides the HTTP REST API for 2048 sessions.
//
// Endpoints:
//
// Sessions:
//   - POST   /api/sessions             create a session, body {"config_id": "classic"} (optional)
//   - GET    /api/sessions             list sessions (?sort=created|accessed&order=asc|desc&limit=N)
//   - GET    /api/sessions/{id}        session details, state and preset
//   - DELETE /api/sessions/{id}        remove a session
//
// Game:
//   - GET  /api/sessions/{id}/state     current board, score, status and possible moves
//   - POST /api/sessions/{id}/start     place two starting tiles and begin play
//   - POST /api/sessions/{id}/restart   reset to the preset position and begin again
//   - POST /api/sessions/{id}/control   press the start/restart control shown to the player
//   - POST /api/sessions/{id}/move      body {"direction": "left|right|up|down"}
//   - POST /api/sessions/{id}/bulk-move body {"moves": ["left", "up", ...]}
//   - GET  /api/sessions/{id}/history   accepted moves (?page=1&limit=20&order=desc)
//
// Presets:
//   - GET  /api/configs         list presets
//   - GET  /api/configs/{name}  fetch one preset
//   - POST /api/configs         save a preset
//
// Other:
//   - GET /api/health
//   - GET /ws?session={id}  WebSocket feed of state updates and events
//
// A move that leaves the board unchanged, or one sent while the game is idle
// or finished, is answered with 200 and "success": false. Errors are JSON
// objects of the form {"error": "..."}: unknown sessions and presets map to
// 404, malformed input to 400.
//
// Bulk moves stop at the first invalid direction, rejected move, win or
// loss. The response reports stop_reason_code (no_change, not_playing,
// invalid_direction, win, lose), the 1-based stopped_on_move, per-step score
// changes and whether the request was truncated to the server's limit.
package api
