package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/wricardo/mcp-training/slide2048/game/engine"
)

// DefaultMaxBulkMoves is used when no limit is configured.
const DefaultMaxBulkMoves = 100

// DefaultHistoryLimit is how many move records a session retains. Older
// records are dropped first.
const DefaultHistoryLimit = 1000

// gameServiceImpl implements the GameService interface. A single mutex
// serializes every call into the engine.
type gameServiceImpl struct {
	sessions     SessionManager
	configs      ConfigManager
	maxBulkMoves int
	historyLimit int
	now          func() time.Time
	mu           sync.Mutex
}

// Option customizes the game service
type Option func(*gameServiceImpl)

// WithMaxBulkMoves caps the number of moves a single BulkMove call executes.
func WithMaxBulkMoves(n int) Option {
	return func(s *gameServiceImpl) {
		if n > 0 {
			s.maxBulkMoves = n
		}
	}
}

// WithHistoryLimit caps the number of move records kept per session.
func WithHistoryLimit(n int) Option {
	return func(s *gameServiceImpl) {
		if n > 0 {
			s.historyLimit = n
		}
	}
}

// WithClock replaces time.Now for event timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *gameServiceImpl) {
		if now != nil {
			s.now = now
		}
	}
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager, opts ...Option) GameService {
	s := &gameServiceImpl{
		sessions:     sessions,
		configs:      configs,
		maxBulkMoves: DefaultMaxBulkMoves,
		historyLimit: DefaultHistoryLimit,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScoreDisplay renders a score the way the board header shows it: blank
// until the first point is earned.
func ScoreDisplay(score int) string {
	if score == 0 {
		return ""
	}
	return fmt.Sprintf("%d", score)
}

// CreateSession creates a new game session from a preset, or the default
// preset when configName is empty.
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	configID := strings.TrimSuffix(configName, ".json")

	var config *engine.GameConfig
	if configID != "" {
		var err error
		config, err = s.configs.LoadConfig(configID)
		if err != nil {
			if errors.Is(err, ErrConfigNotFound) {
				return nil, s.configNotFound(configID)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configID, err)
		}
	} else {
		config = s.configs.GetDefault()
		if config == nil {
			config = engine.DefaultConfig()
		}
		configID = s.getConfigID(config.Name)
	}

	// Let session manager generate a proper 4-character ID
	sess, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	sess.ConfigID = configID

	return sessionInfo(sess), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	return sessionInfo(sess), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, sessionInfo(sess))
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.Delete(sessionID); err != nil {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return nil
}

// Start moves an idle game into play.
func (s *gameServiceImpl) Start(ctx context.Context, sessionID string) (*ControlResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	return s.start(sess), nil
}

// Restart returns the game to its initial board with zero score.
func (s *gameServiceImpl) Restart(ctx context.Context, sessionID string) (*ControlResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	return s.restart(sess), nil
}

// PressControl performs whichever action the session's control shows.
func (s *gameServiceImpl) PressControl(ctx context.Context, sessionID string) (*ControlResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	if sess.Control == ControlRestart {
		return s.restart(sess), nil
	}
	return s.start(sess), nil
}

func (s *gameServiceImpl) start(sess *Session) *ControlResult {
	result := &ControlResult{Action: EventStart}

	if sess.Game.GetStatus() != engine.StatusIdle {
		result.Message = fmt.Sprintf("Game is already %s", sess.Game.GetStatus())
	} else {
		before := engine.CountTiles(sess.Game.GetState())
		sess.Game.Start()
		result.Success = true
		result.Message = "Game started"
		result.Events = append(result.Events, s.event(EventStart, "Game started"))

		board := sess.Game.GetState()
		if engine.CountTiles(board) > before {
			for r, row := range board {
				for c, v := range row {
					if v != 0 {
						result.Events = append(result.Events, s.spawnEvent(&engine.Tile{Position: engine.Position{Row: r, Col: c}, Value: v}))
					}
				}
			}
		}
	}

	result.Control = sess.Control
	result.GameState = sess.Game.Snapshot()
	return result
}

func (s *gameServiceImpl) restart(sess *Session) *ControlResult {
	sess.Game.Restart()
	sess.Control = ControlStart
	sess.History = nil

	return &ControlResult{
		Success:   true,
		Action:    EventRestart,
		Control:   sess.Control,
		GameState: sess.Game.Snapshot(),
		Message:   "Game restarted",
		Events:    []GameEvent{s.event(EventRestart, "Game restarted to its initial board")},
	}
}

// Move executes a single move for a session
func (s *gameServiceImpl) Move(ctx context.Context, sessionID, direction string) (*MoveResult, error) {
	dir, err := engine.ParseDirection(direction)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	result := &MoveResult{Events: []GameEvent{}}

	if status := sess.Game.GetStatus(); status != engine.StatusPlaying {
		result.Message = notPlayingMessage(status)
	} else {
		step, events := s.play(sess, dir, 1)
		if step == nil {
			result.Message = fmt.Sprintf("Moving %s does not change the board", dir)
		} else {
			result.Success = true
			result.Step = step
			result.Events = events
			result.Message = moveMessage(step)
		}
	}

	result.Control = sess.Control
	result.GameState = sess.Game.Snapshot()
	return result, nil
}

// BulkMove executes multiple moves in sequence, stopping at the first
// rejected move or when the game ends.
func (s *gameServiceImpl) BulkMove(ctx context.Context, sessionID string, moves []string) (*BulkMoveResult, error) {
	if len(moves) == 0 {
		return nil, fmt.Errorf("%w: no moves provided", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	result := &BulkMoveResult{
		RequestedMoves: len(moves),
		Events:         make([]GameEvent, 0),
		Success:        true,
		StartScore:     sess.Game.GetScore(),
	}

	if len(moves) > s.maxBulkMoves {
		result.Truncated = true
		result.Limit = s.maxBulkMoves
		moves = moves[:s.maxBulkMoves]
	}

	for i, move := range moves {
		dir, err := engine.ParseDirection(move)
		if err != nil {
			result.stop(i+1, StopInvalidDirection, fmt.Sprintf("move %d: unknown direction %q", i+1, move))
			break
		}

		if status := sess.Game.GetStatus(); status != engine.StatusPlaying {
			result.stop(i+1, StopNotPlaying, fmt.Sprintf("move %d: %s", i+1, notPlayingMessage(status)))
			break
		}

		step, events := s.play(sess, dir, i+1)
		if step == nil {
			result.stop(i+1, StopNoChange, fmt.Sprintf("move %d: moving %s does not change the board", i+1, dir))
			break
		}

		result.MovesExecuted++
		result.Steps = append(result.Steps, *step)
		result.Events = append(result.Events, events...)

		if step.Status.IsTerminal() {
			result.StopReasonCode = string(step.Status)
			result.StoppedOnMove = i + 1
			if i+1 < len(moves) {
				result.StoppedReason = fmt.Sprintf("game ended (%s) after move %d", step.Status, i+1)
			}
			break
		}
	}

	state := sess.Game.Snapshot()
	result.GameState = state
	result.Control = sess.Control
	result.EndScore = state.Score
	result.ScoreDelta = state.Score - result.StartScore
	result.GameOver = state.Status.IsTerminal()
	result.PossibleMoves = state.PossibleMoves
	result.Message = bulkMessage(result)

	return result, nil
}

func (r *BulkMoveResult) stop(idx int, code, reason string) {
	r.Success = false
	r.StoppedOnMove = idx
	r.StopReasonCode = code
	r.StoppedReason = reason
}

// play applies one move and records it. It returns nil when the board did
// not change.
func (s *gameServiceImpl) play(sess *Session, dir engine.Direction, idx int) (*StepInfo, []GameEvent) {
	scoreBefore := sess.Game.GetScore()
	outcome := sess.Game.Play(dir)
	if !outcome.Moved {
		return nil, nil
	}

	sess.Control = ControlRestart

	step := &StepInfo{
		Idx:         idx,
		Dir:         dir,
		Gained:      outcome.Gained,
		Merges:      outcome.Merges,
		ScoreBefore: scoreBefore,
		ScoreAfter:  sess.Game.GetScore(),
		Spawned:     outcome.Spawned,
		Status:      outcome.Status,
	}

	index := 1
	if n := len(sess.History); n > 0 {
		index = sess.History[n-1].Index + 1
	}

	sess.History = append(sess.History, MoveRecord{
		Index:     index,
		Direction: dir,
		Gained:    outcome.Gained,
		Merges:    outcome.Merges,
		Score:     step.ScoreAfter,
		Status:    outcome.Status,
		Spawned:   outcome.Spawned,
		Timestamp: s.now(),
	})
	if over := len(sess.History) - s.historyLimit; over > 0 {
		sess.History = append([]MoveRecord(nil), sess.History[over:]...)
	}

	return step, s.moveEvents(outcome, step.ScoreAfter)
}

func (s *gameServiceImpl) moveEvents(outcome engine.MoveOutcome, score int) []GameEvent {
	events := []GameEvent{s.event(EventMove, fmt.Sprintf("Moved %s", outcome.Direction))}

	if outcome.Merges > 0 {
		ev := s.event(EventMerge, fmt.Sprintf("%d merge(s), +%d points, score %d", outcome.Merges, outcome.Gained, score))
		ev.Value = outcome.Gained
		events = append(events, ev)
	}

	if outcome.Spawned != nil {
		events = append(events, s.spawnEvent(outcome.Spawned))
	}

	switch outcome.Status {
	case engine.StatusWin:
		events = append(events, s.event(EventWin, fmt.Sprintf("Reached %d! Final score %d", engine.WinningTile, score)))
	case engine.StatusLose:
		events = append(events, s.event(EventLose, fmt.Sprintf("No moves left. Final score %d", score)))
	}

	return events
}

func (s *gameServiceImpl) spawnEvent(tile *engine.Tile) GameEvent {
	pos := tile.Position
	ev := s.event(EventSpawn, fmt.Sprintf("New %d at (%d,%d)", tile.Value, pos.Row, pos.Col))
	ev.Position = &pos
	ev.Value = tile.Value
	return ev
}

func (s *gameServiceImpl) event(kind, message string) GameEvent {
	return GameEvent{Type: kind, Message: message, Timestamp: s.now()}
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	return sess.Game.Snapshot(), nil
}

// GetMoveHistory returns paginated move history
func (s *gameServiceImpl) GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	history := sess.History
	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order != "asc" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	moves := []MoveRecord{}
	if opts.Page > totalPages {
		return &HistoryResponse{
			Moves:       moves,
			TotalMoves:  total,
			Page:        opts.Page,
			PageSize:    opts.Limit,
			TotalPages:  totalPages,
			HasNext:     false,
			HasPrevious: true,
		}, nil
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	if start >= 0 && start < total {
		if opts.Order == "desc" {
			// Most recent first
			for i := total - 1 - start; i >= total-end; i-- {
				moves = append(moves, history[i])
			}
		} else {
			moves = append(moves, history[start:end]...)
		}
	}

	return &HistoryResponse{
		Moves:       moves,
		TotalMoves:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// ListConfigs returns available presets
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific preset
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a preset to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	if strings.TrimSpace(configName) == "" {
		return fmt.Errorf("%w: config name is required", ErrInvalidConfig)
	}
	return s.configs.SaveConfig(configName, config)
}

// session looks up a session and marks it as accessed. Callers hold s.mu.
func (s *gameServiceImpl) session(sessionID string) (*Session, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	s.sessions.UpdateLastAccessed(sessionID)
	return sess, nil
}

// getConfigID maps a preset display name back to its id
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

func (s *gameServiceImpl) configNotFound(configID string) error {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil && len(availableConfigs) > 0 {
		ids := make([]string, 0, len(availableConfigs))
		for _, cfg := range availableConfigs {
			ids = append(ids, cfg.ConfigID)
		}
		return fmt.Errorf("%w: '%s'. Available configs: %v", ErrConfigNotFound, configID, ids)
	}
	return fmt.Errorf("%w: '%s'. Use /api/configs to list available configurations", ErrConfigNotFound, configID)
}

func sessionInfo(sess *Session) *SessionInfo {
	state := sess.Game.Snapshot()
	return &SessionInfo{
		ID:             sess.ID,
		ConfigName:     sess.ConfigID,
		Control:        sess.Control,
		ScoreDisplay:   ScoreDisplay(state.Score),
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		GameState:      state,
		GameConfig:     sess.Config,
	}
}

func notPlayingMessage(status engine.Status) string {
	switch status {
	case engine.StatusIdle:
		return "Game has not started; start it first"
	case engine.StatusWin:
		return "Game is won; restart to play again"
	case engine.StatusLose:
		return "Game is lost; restart to play again"
	default:
		return fmt.Sprintf("Game is %s", status)
	}
}

func moveMessage(step *StepInfo) string {
	switch step.Status {
	case engine.StatusWin:
		return fmt.Sprintf("You reached %d! Score: %d", engine.WinningTile, step.ScoreAfter)
	case engine.StatusLose:
		return fmt.Sprintf("Game over. Score: %d", step.ScoreAfter)
	}
	if step.Gained > 0 {
		return fmt.Sprintf("Moved %s, +%d points", step.Dir, step.Gained)
	}
	return fmt.Sprintf("Moved %s", step.Dir)
}

func bulkMessage(r *BulkMoveResult) string {
	msg := fmt.Sprintf("Executed %d of %d moves, score %d", r.MovesExecuted, r.RequestedMoves, r.EndScore)
	if r.StoppedReason != "" {
		msg += ": " + r.StoppedReason
	}
	return msg
}
