// Package service provides the business logic layer for the 2048 server.
//
// The service package implements:
//   - Multi-session game management
//   - Start, restart and the combined start/restart control
//   - Single and bulk move processing
//   - Per-session move history
//   - Preset listing, loading and saving
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager manages preset loading and validation.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the engine. An engine.Game is not safe for concurrent use, so every call
// that touches a game holds one service-wide lock.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	info, err := gameService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gameService.Start(ctx, info.ID)
//	result, err := gameService.Move(ctx, info.ID, "left")
//
// Control:
//
// Each session tracks the label of a single start/restart control. It reads
// "start" after creation or a restart and flips to "restart" on the first
// accepted move. PressControl performs whichever action the label shows.
package service
