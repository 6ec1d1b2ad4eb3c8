package loop

import (
	"context"
	"fmt"
	"log"
	"time"

	"snakegame/game/engine"
	"snakegame/game/stats"
)

// Observer receives the snapshot produced by each tick. Observers must
// not block; the loop calls them on its own goroutine.
type Observer func(snapshot engine.Snapshot)

// Loop drives a game engine at its tick cadence: it polls input,
// advances the engine, records session statistics, renders the frame,
// and notifies observers. One Loop runs one play session from start
// until quit.
type Loop struct {
	engine    engine.Engine
	input     InputSource
	renderer  Renderer
	store     stats.Persistence
	recorder  *stats.Recorder
	observers []Observer

	recorded bool
	quit     bool
}

// New creates a game loop. store may be nil to disable session
// persistence.
func New(eng engine.Engine, input InputSource, renderer Renderer, store stats.Persistence) *Loop {
	return &Loop{
		engine:   eng,
		input:    input,
		renderer: renderer,
		store:    store,
		recorder: stats.NewRecorder(),
	}
}

// AddObserver registers a per-tick snapshot observer. Must be called
// before Run.
func (l *Loop) AddObserver(fn Observer) {
	l.observers = append(l.observers, fn)
}

// Run executes the game loop until the player quits or the context is
// canceled. The tick interval is re-read from the engine after every
// tick, so eating food speeds up the following ticks.
func (l *Loop) Run(ctx context.Context) error {
	l.recorder.Start(time.Now())

	timer := time.NewTimer(l.engine.TickInterval())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}

		if err := l.tick(); err != nil {
			return err
		}
		if l.quit {
			return nil
		}

		timer.Reset(l.engine.TickInterval())
	}
}

// tick runs one frame: input, engine step, stats, render, observers.
func (l *Loop) tick() error {
	l.applyCommands()
	if l.quit {
		return nil
	}

	result := l.engine.Step()
	if result.Moved && !result.GameOver {
		// The move that ends the game is not folded into the record;
		// the record reflects the last completed tick.
		l.recorder.Update(l.engine.SnakeAnalytics(), l.engine.FoodStats(), l.engine.Score())
	}
	if result.GameOver {
		l.finishSession()
	}

	snapshot := l.engine.Snapshot()
	if l.store != nil {
		if scores := l.store.HighScores(); len(scores) > 0 {
			snapshot.BestScore = scores[0].Score
		}
	}

	if l.renderer != nil {
		if err := l.renderer.Render(snapshot); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
	}
	for _, fn := range l.observers {
		fn(snapshot)
	}
	return nil
}

// applyCommands consumes the pending input in arrival order. Each
// movement command is applied immediately so the last one before a
// tick wins. Movement and pause are ignored after game over; restart
// is only honored after game over.
func (l *Loop) applyCommands() {
	for _, cmd := range l.input.Poll() {
		switch cmd {
		case CommandQuit:
			l.quit = true
			return
		case CommandTogglePause:
			l.engine.TogglePause()
		case CommandRestart:
			if l.engine.IsGameOver() {
				l.engine.Restart()
				l.recorder.Start(time.Now())
				l.recorded = false
			}
		default:
			if dir, ok := cmd.Direction(); ok {
				if l.engine.IsGameOver() || l.engine.IsPaused() {
					continue
				}
				l.engine.ChangeDirection(dir)
			}
		}
	}
}

// finishSession persists the ended session exactly once and logs the
// result.
func (l *Loop) finishSession() {
	if l.recorded {
		return
	}
	l.recorded = true

	record := l.recorder.Finalize(time.Now())
	log.Printf("game over: score=%d length=%d moves=%d", record.Score, record.MaxLength, record.TotalMoves)

	if l.store == nil {
		return
	}
	if err := l.store.Record(record); err != nil {
		log.Printf("error saving game record: %v", err)
		return
	}

	summary := stats.Summarize(l.store.History())
	log.Printf("session stats: games=%d avg_score=%.2f best=%d",
		summary.TotalGames, summary.AverageScore, summary.BestScore)
}
