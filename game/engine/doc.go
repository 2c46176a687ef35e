// Package engine provides the core game logic for 2048.
//
// The engine package implements the game mechanics including:
//   - Sliding and merging tiles on a fixed 4x4 board
//   - Random tile spawning after every accepted move
//   - Score tracking from merge gains
//   - The idle, playing, win and lose lifecycle
//   - Preset loading and validation
//
// Core Types:
//
// Game owns the live board, the score and the status. Board is a fixed-size
// array, so every value returned from the engine is already a deep copy.
// GameState is a JSON snapshot and GameConfig a named starting position.
//
// Usage:
//
//	game, err := engine.NewGame()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	game.Start()
//	if game.MoveLeft() {
//		fmt.Println(game.GetState(), game.GetScore(), game.GetStatus())
//	}
//
// Game Rules:
//
// Each move slides every row (left/right) or column (up/down) toward one
// edge. Two equal tiles that meet merge into one of double value and the
// merged value is added to the score; a tile merges at most once per move.
// A move that changes nothing is rejected. After an accepted move the game
// is won if a 2048 tile exists; otherwise a 2 (90%) or 4 (10%) appears on a
// random empty cell, and the game is lost if the board is full with no equal
// neighbours.
//
// Tests can make spawns deterministic with WithRandomSource.
package engine
