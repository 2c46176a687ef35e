// Package websocket provides the live state feed for the 2048 server.
//
// The package uses a hub-and-spoke model where a central Hub owns every
// connection. Registration, removal and fan-out all happen on the goroutine
// running Hub.Run, so broadcasting never touches client state directly.
//
// Message Protocol:
//
// Clients only listen. Each text frame is one JSON message:
//
//	{"session_id": "a1b2", "event": "state_update", "game_state": {...}}
//	{"session_id": "a1b2", "event": "events", "data": [...]}
//
// Session Integration:
//
// Clients pick their session with the query parameter ?session=a1b2 and only
// receive updates for that session.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run(ctx)
//
//	hub.ServeWS(w, r, sessionID)
//	hub.BroadcastToSession(sessionID, state)
//
// Pings keep idle connections alive; a client whose buffer fills up is
// dropped.
package websocket
