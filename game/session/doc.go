// Package session provides in-memory session management for the 2048 server.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - Session cleanup and expiration
//
// Each session owns its own engine.Game built from a preset. Engine options
// passed to NewManager, such as a fixed random source, apply to every game
// the manager creates.
//
// Session Identifiers:
//
// Sessions use 4-character hex IDs generated with crypto/rand. Lookups are
// case-insensitive and generated IDs never collide with live sessions.
//
// Usage:
//
//	manager := session.NewManager()
//
//	sess, err := manager.Create("", preset)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sess, err = manager.Get(sess.ID)
//	removed := manager.CleanupExpiredSessions(24 * time.Hour)
//
// Sessions live only in memory and disappear when the process exits.
package session
