package engine

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Size is the board dimension; boards are always Size x Size.
	Size = 4

	// WinningTile ends the game in victory as soon as it appears.
	WinningTile = 2048

	// FourProbability is the chance that a spawned tile is a 4 instead of a 2.
	FourProbability = 0.1
)

var (
	ErrInvalidBoard     = errors.New("invalid board")
	ErrInvalidDirection = errors.New("invalid direction")
)

// Board is the grid of tile values. 0 means empty.
type Board [Size][Size]int

// Status is the coarse lifecycle phase of a game
type Status string

const (
	StatusIdle    Status = "idle"
	StatusPlaying Status = "playing"
	StatusWin     Status = "win"
	StatusLose    Status = "lose"
)

// IsTerminal reports whether no further moves can be accepted until restart.
func (s Status) IsTerminal() bool {
	return s == StatusWin || s == StatusLose
}

// Direction selects which way tiles slide
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists every direction in a stable order.
var Directions = []Direction{Left, Right, Up, Down}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// MarshalText encodes the direction as its lowercase name.
func (d Direction) MarshalText() ([]byte, error) {
	switch d {
	case Left, Right, Up, Down:
		return []byte(d.String()), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
}

// UnmarshalText decodes a lowercase direction name.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDirection converts "left", "right", "up" or "down" (any case) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// RandomSource returns a pseudo-random float in [0, 1).
type RandomSource func() float64

// Position addresses a single cell
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Tile is a value placed at a position
type Tile struct {
	Position
	Value int `json:"value"`
}

// MoveOutcome describes what a single move did to the game.
type MoveOutcome struct {
	Direction Direction `json:"direction"`
	Moved     bool      `json:"moved"`
	Gained    int       `json:"gained"`
	Merges    int       `json:"merges"`
	Spawned   *Tile     `json:"spawned,omitempty"`
	Status    Status    `json:"status"`
}

// GameState is a read-only snapshot of a game, suitable for JSON encoding.
type GameState struct {
	Board         Board       `json:"board"`
	Score         int         `json:"score"`
	Status        Status      `json:"status"`
	MaxTile       int         `json:"max_tile"`
	EmptyCells    int         `json:"empty_cells"`
	PossibleMoves []Direction `json:"possible_moves"`
	ConfigName    string      `json:"config_name,omitempty"`
}

// GameConfig is a named starting position loaded from JSON.
type GameConfig struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Board       [][]int `json:"board,omitempty"`
}
