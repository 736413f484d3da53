package session

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"snake-classic/game"
	"snake-classic/game/types"
	"snake-classic/stats"
)

// Cues are the audible reactions to game events.
type Cues interface {
	Eat()
	Crash()
}

type nopCues struct{}

func (nopCues) Eat()   {}
func (nopCues) Crash() {}

// HistoryLen is how many finished games a Frame carries for the score graph.
const HistoryLen = 20

// Frame is everything a renderer needs for one frame.
type Frame struct {
	game.Snapshot
	BestScore    int
	GamesPlayed  int
	RecentScores []int // oldest first, at most HistoryLen
}

// Session drives one Game from discrete commands and ticks, and keeps the
// per-process statistics. Calls must be serialized by the caller.
type Session struct {
	game      *game.Game
	stats     *stats.GameStats
	cues      Cues
	logger    *log.Logger
	now       func() time.Time
	startTime time.Time
	recorded  bool
}

type Option func(*Session)

func WithCues(c Cues) Option {
	return func(s *Session) {
		if c != nil {
			s.cues = c
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

func New(g *game.Game, st *stats.GameStats, opts ...Option) *Session {
	s := &Session{
		game:   g,
		stats:  st,
		cues:   nopCues{},
		logger: log.New(io.Discard, "", 0),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.stats == nil {
		s.stats = stats.NewGameStats()
	}
	s.startTime = s.now()
	s.logger.Printf("game started on %dx%d grid", g.Grid().Width, g.Grid().Height)
	return s
}

func (s *Session) Game() *game.Game {
	return s.game
}

func (s *Session) Stats() *stats.GameStats {
	return s.stats
}

// Handle applies one input command and reports whether the player asked to quit.
func (s *Session) Handle(cmd types.Command) bool {
	if dir, ok := cmd.Direction(); ok {
		s.game.QueueDirection(dir)
		return false
	}

	switch cmd {
	case types.CommandTogglePause:
		if s.game.TogglePause() {
			s.logger.Printf("game %s", s.game.Status())
		}
	case types.CommandReset:
		// Restart is offered from the game over screen only.
		if s.game.IsOver() {
			s.game.Reset()
			s.startTime = s.now()
			s.recorded = false
			s.logger.Printf("game reset")
		}
	case types.CommandQuit:
		return true
	}
	return false
}

// Tick advances the game by one step.
func (s *Session) Tick() game.StepResult {
	res := s.game.Step()

	if res.Ate {
		s.cues.Eat()
	}
	if res.GameOver && !s.recorded {
		if !res.Cleared {
			s.cues.Crash()
		}
		s.record(res.Cleared)
	}
	return res
}

func (s *Session) record(cleared bool) {
	s.recorded = true
	cause := s.game.Cause().String()
	if cleared {
		cause = "cleared"
	}

	rec := s.stats.AddGame(stats.GameRecord{
		StartTime:   s.startTime,
		EndTime:     s.now(),
		Score:       s.game.Score(),
		ApplesEaten: s.game.ApplesEaten(),
		Length:      s.game.Len(),
		Ticks:       s.game.Ticks(),
		Cause:       cause,
	})
	s.logger.Printf("game over: id=%s score=%d apples=%d cause=%s ticks=%d",
		rec.ID, rec.Score, rec.ApplesEaten, rec.Cause, rec.Ticks)
}

func (s *Session) Frame() Frame {
	best := s.stats.GetMaxScore()
	if score := s.game.Score(); score > best {
		best = score
	}
	games := s.stats.GetStats()
	if len(games) > HistoryLen {
		games = games[len(games)-HistoryLen:]
	}
	scores := make([]int, len(games))
	for i, rec := range games {
		scores[i] = rec.Score
	}

	return Frame{
		Snapshot:     s.game.Snapshot(),
		BestScore:    best,
		GamesPlayed:  s.stats.GetGamesPlayed(),
		RecentScores: scores,
	}
}

// Run is the loop for frontends that deliver input asynchronously. It renders
// after every tick and every command, and returns nil when the player quits or
// the command channel closes.
func (s *Session) Run(ctx context.Context, ticks <-chan time.Time, commands <-chan types.Command, render func(Frame) error) error {
	if err := render(s.Frame()); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd, ok := <-commands:
			if !ok {
				return nil
			}
			if s.Handle(cmd) {
				return nil
			}
		case <-ticks:
			s.Tick()
		}

		if err := render(s.Frame()); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
}
