// Package mcp exposes 2048 sessions as Model Context Protocol tools.
//
// The Client is a thin proxy: every tool call is translated into a REST
// request against the api package and the JSON answer is rendered as text
// an agent can read, with the board drawn as a fixed-width grid.
//
// Tools:
//   - create_session, get_session, list_sessions, delete_session
//   - start_game, restart_game, press_control
//   - game_state, move, bulk_move, move_history
//   - list_configs, game_instructions
//
// move and bulk_move take an "intent" argument that is not sent to the
// server; it exists so agents state what they expect a move to do.
//
// Transport Modes:
//   - Stdio: serve the client's MCP server over stdin/stdout
//   - HTTP: POST JSON-RPC messages to /mcp on the game server
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
package mcp
