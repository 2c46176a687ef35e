package service

import (
	"time"

	"github.com/wricardo/mcp-training/slide2048/game/engine"
)

// ControlMode is the label of the single start/restart control a client shows.
type ControlMode string

const (
	ControlStart   ControlMode = "start"
	ControlRestart ControlMode = "restart"
)

// Stop reason codes reported by BulkMove
const (
	StopNoChange         = "no_change"
	StopNotPlaying       = "not_playing"
	StopInvalidDirection = "invalid_direction"
	StopWin              = "win"
	StopLose             = "lose"
)

// Event types attached to results
const (
	EventStart   = "start"
	EventRestart = "restart"
	EventMove    = "move"
	EventMerge   = "merge"
	EventSpawn   = "spawn"
	EventWin     = "win"
	EventLose    = "lose"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	Control        ControlMode        `json:"control"`
	ScoreDisplay   string             `json:"score_display"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// ControlResult contains the result of a start or restart
type ControlResult struct {
	Success   bool              `json:"success"`
	Action    string            `json:"action"`
	Control   ControlMode       `json:"control"`
	GameState *engine.GameState `json:"game_state"`
	Message   string            `json:"message"`
	Events    []GameEvent       `json:"events,omitempty"`
}

// MoveResult contains the result of a move operation
type MoveResult struct {
	Success   bool              `json:"success"`
	GameState *engine.GameState `json:"game_state"`
	Control   ControlMode       `json:"control"`
	Message   string            `json:"message"`
	Events    []GameEvent       `json:"events,omitempty"`
	Step      *StepInfo         `json:"step,omitempty"`
}

// BulkMoveResult contains the result of multiple moves
type BulkMoveResult struct {
	MovesExecuted  int               `json:"moves_executed"`
	RequestedMoves int               `json:"requested_moves"`
	Success        bool              `json:"success"`
	GameState      *engine.GameState `json:"game_state"`
	Control        ControlMode       `json:"control"`
	Events         []GameEvent       `json:"events"`
	StoppedReason  string            `json:"stopped_reason,omitempty"`
	StopReasonCode string            `json:"stop_reason_code,omitempty"` // no_change|not_playing|invalid_direction|win|lose
	StoppedOnMove  int               `json:"stopped_on_move,omitempty"`  // 1-based
	Truncated      bool              `json:"truncated,omitempty"`
	Limit          int               `json:"limit,omitempty"`

	StartScore int `json:"start_score"`
	EndScore   int `json:"end_score"`
	ScoreDelta int `json:"score_delta"`

	Steps []StepInfo `json:"steps,omitempty"`

	GameOver      bool               `json:"game_over"`
	Message       string             `json:"message,omitempty"`
	PossibleMoves []engine.Direction `json:"possible_moves"`
}

// StepInfo is a compact record of one accepted move
type StepInfo struct {
	Idx         int              `json:"idx"`
	Dir         engine.Direction `json:"dir"`
	Gained      int              `json:"gained"`
	Merges      int              `json:"merges"`
	ScoreBefore int              `json:"score_before"`
	ScoreAfter  int              `json:"score_after"`
	Spawned     *engine.Tile     `json:"spawned,omitempty"`
	Status      engine.Status    `json:"status"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string           `json:"type"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Position  *engine.Position `json:"position,omitempty"`
	Value     int              `json:"value,omitempty"`
}

// MoveRecord is one accepted move kept in a session's history
type MoveRecord struct {
	Index     int              `json:"index"`
	Direction engine.Direction `json:"direction"`
	Gained    int              `json:"gained"`
	Merges    int              `json:"merges"`
	Score     int              `json:"score"`
	Status    engine.Status    `json:"status"`
	Spawned   *engine.Tile     `json:"spawned,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

// HistoryOptions configures move history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated move history
type HistoryResponse struct {
	Moves       []MoveRecord `json:"moves"`
	TotalMoves  int          `json:"total_moves"`
	Page        int          `json:"page"`
	PageSize    int          `json:"page_size"`
	TotalPages  int          `json:"total_pages"`
	HasNext     bool         `json:"has_next"`
	HasPrevious bool         `json:"has_previous"`
}

// ConfigInfo provides information about a preset
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use for session creation
	Name        string `json:"name"`
	Description string `json:"description"`
	Tiles       int    `json:"tiles"`
	MaxTile     int    `json:"max_tile"`
}
