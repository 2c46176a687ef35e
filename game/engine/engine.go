package engine

import (
	"fmt"
	"math/rand/v2"
)

// Game owns a single board and applies moves to it. A Game is not safe for
// concurrent use; callers serialize access.
type Game struct {
	initialState Board
	board        Board
	score        int
	status       Status
	random       RandomSource
	configName   string
}

// Option customizes a Game at construction.
type Option func(*Game)

// WithInitialBoard sets the board the game starts from and restarts to.
func WithInitialBoard(b Board) Option {
	return func(g *Game) {
		g.initialState = b
	}
}

// WithRandomSource replaces the default pseudo-random source used for spawns.
func WithRandomSource(r RandomSource) Option {
	return func(g *Game) {
		if r != nil {
			g.random = r
		}
	}
}

// NewGame creates an idle game. Without WithInitialBoard the board is empty.
func NewGame(opts ...Option) (*Game, error) {
	g := &Game{
		status: StatusIdle,
		random: rand.Float64,
	}
	for _, opt := range opts {
		opt(g)
	}

	if err := ValidateBoard(g.initialState); err != nil {
		return nil, err
	}

	g.board = g.initialState
	return g, nil
}

// NewGameFromConfig creates an idle game starting from a preset.
func NewGameFromConfig(config *GameConfig, opts ...Option) (*Game, error) {
	if config == nil {
		return NewGame(opts...)
	}
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	var initial Board
	if len(config.Board) > 0 {
		b, err := BoardFromRows(config.Board)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", config.Name, err)
		}
		initial = b
	}

	g, err := NewGame(append([]Option{WithInitialBoard(initial)}, opts...)...)
	if err != nil {
		return nil, err
	}
	g.configName = config.Name
	return g, nil
}

// Start begins play. It does nothing unless the game is idle. An empty
// board receives two random tiles; a preset board is left untouched.
func (g *Game) Start() {
	if g.status != StatusIdle {
		return
	}

	g.status = StatusPlaying

	if countEmpty(g.board) == Size*Size {
		g.spawnRandomTile()
		g.spawnRandomTile()
	}
}

// Restart returns to the initial board with zero score, from any status.
func (g *Game) Restart() {
	g.board = g.initialState
	g.score = 0
	g.status = StatusIdle
}

// MoveLeft slides every row toward column 0.
func (g *Game) MoveLeft() bool {
	return g.Move(Left)
}

// MoveRight slides every row toward the last column.
func (g *Game) MoveRight() bool {
	return g.Move(Right)
}

// MoveUp slides every column toward row 0.
func (g *Game) MoveUp() bool {
	return g.Move(Up)
}

// MoveDown slides every column toward the last row.
func (g *Game) MoveDown() bool {
	return g.Move(Down)
}

// Move applies a move and reports whether the board changed.
func (g *Game) Move(dir Direction) bool {
	return g.Play(dir).Moved
}

// Play applies a move and reports its full outcome. A rejected move leaves
// board, score and status unchanged.
func (g *Game) Play(dir Direction) MoveOutcome {
	outcome := MoveOutcome{Direction: dir, Status: g.status}

	if g.status != StatusPlaying {
		return outcome
	}

	moved, gained, merges := moveBoard(g.board, dir)
	if moved == g.board {
		return outcome
	}

	g.board = moved
	g.score += gained
	outcome.Moved = true
	outcome.Gained = gained
	outcome.Merges = merges

	if hasValue(g.board, WinningTile) {
		g.status = StatusWin
		outcome.Status = g.status
		return outcome
	}

	outcome.Spawned = g.spawnRandomTile()

	if !hasAvailableMoves(g.board) {
		g.status = StatusLose
	}

	outcome.Status = g.status
	return outcome
}

// CanMove reports whether a move in dir would be accepted right now.
func (g *Game) CanMove(dir Direction) bool {
	if g.status != StatusPlaying {
		return false
	}
	moved, _, _ := moveBoard(g.board, dir)
	return moved != g.board
}

// GetPossibleMoves returns every direction that would change the board.
func (g *Game) GetPossibleMoves() []Direction {
	possible := []Direction{}
	for _, dir := range Directions {
		if g.CanMove(dir) {
			possible = append(possible, dir)
		}
	}
	return possible
}

// GetState returns a copy of the live board.
func (g *Game) GetState() Board {
	return g.board
}

// InitialState returns a copy of the board the game restarts to.
func (g *Game) InitialState() Board {
	return g.initialState
}

// GetScore returns the sum of all merge gains since the last restart.
func (g *Game) GetScore() int {
	return g.score
}

// GetStatus returns the current lifecycle phase.
func (g *Game) GetStatus() Status {
	return g.status
}

// MaxTile returns the largest value on the board.
func (g *Game) MaxTile() int {
	return maxTile(g.board)
}

// ConfigName returns the preset name the game was built from, if any.
func (g *Game) ConfigName() string {
	return g.configName
}

// Snapshot builds a JSON-friendly view of the game.
func (g *Game) Snapshot() *GameState {
	return &GameState{
		Board:         g.board,
		Score:         g.score,
		Status:        g.status,
		MaxTile:       maxTile(g.board),
		EmptyCells:    countEmpty(g.board),
		PossibleMoves: g.GetPossibleMoves(),
		ConfigName:    g.configName,
	}
}

// spawnRandomTile places a 2 (or, rarely, a 4) on a uniformly chosen empty
// cell. It returns nil when the board is full.
func (g *Game) spawnRandomTile() *Tile {
	empties := emptyCells(g.board)
	if len(empties) == 0 {
		return nil
	}

	idx := int(g.random() * float64(len(empties)))
	if idx >= len(empties) {
		idx = len(empties) - 1
	}
	pos := empties[idx]

	value := 2
	if g.random() < FourProbability {
		value = 4
	}

	g.board[pos.Row][pos.Col] = value
	return &Tile{Position: pos, Value: value}
}
