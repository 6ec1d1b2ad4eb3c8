// Package terminal renders the game in a terminal using tcell and
// translates key events into game loop commands.
package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"snakegame/game/engine"
	"snakegame/game/loop"
)

// inputBuffer bounds the pending key commands; extra keys between ticks
// are dropped.
const inputBuffer = 16

// Screen draws the game on a terminal and collects keyboard input. It
// implements both loop.Renderer and loop.InputSource.
type Screen struct {
	screen tcell.Screen
	config *engine.Config

	background tcell.Style
	snakeStyle tcell.Style
	headStyle  tcell.Style
	foodStyle  tcell.Style
	textStyle  tcell.Style
	gridStyle  tcell.Style

	commands chan loop.Command
	closed   sync.Once
}

// NewScreen initializes the terminal and starts the key event reader.
func NewScreen(config *engine.Config) (*Screen, error) {
	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := ts.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}

	colors := config.Game.Colors
	background := tcell.StyleDefault.Background(tcell.GetColor(colors.Background))

	s := &Screen{
		screen:     ts,
		config:     config,
		background: background,
		snakeStyle: background.Foreground(tcell.GetColor(colors.Snake)),
		headStyle:  background.Foreground(tcell.GetColor(colors.SnakeHead)),
		foodStyle:  background.Foreground(tcell.GetColor(colors.Food)),
		textStyle:  background.Foreground(tcell.GetColor(colors.Text)),
		gridStyle:  background.Foreground(tcell.GetColor(colors.Grid)),
		commands:   make(chan loop.Command, inputBuffer),
	}

	ts.SetStyle(background)
	ts.HideCursor()
	ts.Clear()

	go s.pollEvents()
	return s, nil
}

// pollEvents reads terminal events until the screen is finalized and
// pushes decoded commands into the buffer, dropping input when full.
func (s *Screen) pollEvents() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventKey:
			cmd := decodeKey(ev)
			if cmd == loop.CommandNone {
				continue
			}
			select {
			case s.commands <- cmd:
			default:
			}
		}
	}
}

// decodeKey maps a key event to a game command. Arrows and WASD move,
// space pauses, r restarts, q/ESC/Ctrl-C quit.
func decodeKey(ev *tcell.EventKey) loop.Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return loop.CommandMoveUp
	case tcell.KeyDown:
		return loop.CommandMoveDown
	case tcell.KeyLeft:
		return loop.CommandMoveLeft
	case tcell.KeyRight:
		return loop.CommandMoveRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return loop.CommandQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return loop.CommandMoveUp
		case 's', 'S':
			return loop.CommandMoveDown
		case 'a', 'A':
			return loop.CommandMoveLeft
		case 'd', 'D':
			return loop.CommandMoveRight
		case ' ':
			return loop.CommandTogglePause
		case 'r', 'R':
			return loop.CommandRestart
		case 'q', 'Q':
			return loop.CommandQuit
		}
	}
	return loop.CommandNone
}

// Poll drains the pending commands without blocking.
func (s *Screen) Poll() []loop.Command {
	var cmds []loop.Command
	for {
		select {
		case cmd := <-s.commands:
			cmds = append(cmds, cmd)
		default:
			return cmds
		}
	}
}

// Render draws the board, snake, food, score line, and any overlay.
func (s *Screen) Render(snapshot engine.Snapshot) error {
	s.screen.Clear()

	gridW := s.config.Game.GridWidth()
	gridH := s.config.Game.GridHeight()

	s.drawBorder(gridW, gridH)
	if s.config.Features.ShowGrid {
		s.drawGrid(gridW, gridH)
	}

	s.setCell(snapshot.Food, '●', s.foodStyle)
	for i := len(snapshot.Body) - 1; i >= 0; i-- {
		if i == 0 {
			s.setCell(snapshot.Body[i], '█', s.headStyle)
		} else {
			s.setCell(snapshot.Body[i], '█', s.snakeStyle)
		}
	}

	if s.config.Features.ShowScore {
		line := fmt.Sprintf(" Score: %d  Length: %d ", snapshot.Score, snapshot.Length)
		if snapshot.BestScore > 0 {
			line += fmt.Sprintf(" Best: %d ", snapshot.BestScore)
		}
		s.drawText(1, gridH+1, line, s.textStyle)
	}

	switch {
	case snapshot.GameOver:
		s.drawCentered(gridW, gridH, " GAME OVER - press r to restart, q to quit ")
	case snapshot.Paused:
		s.drawCentered(gridW, gridH, " PAUSED - press space to resume ")
	}

	s.screen.Show()
	return nil
}

// drawBorder outlines the playable grid one cell outside it.
func (s *Screen) drawBorder(gridW, gridH int) {
	for x := -1; x <= gridW; x++ {
		s.setCell(engine.Position{X: x, Y: -1}, '─', s.textStyle)
		s.setCell(engine.Position{X: x, Y: gridH}, '─', s.textStyle)
	}
	for y := -1; y <= gridH; y++ {
		s.setCell(engine.Position{X: -1, Y: y}, '│', s.textStyle)
		s.setCell(engine.Position{X: gridW, Y: y}, '│', s.textStyle)
	}
	s.setCell(engine.Position{X: -1, Y: -1}, '┌', s.textStyle)
	s.setCell(engine.Position{X: gridW, Y: -1}, '┐', s.textStyle)
	s.setCell(engine.Position{X: -1, Y: gridH}, '└', s.textStyle)
	s.setCell(engine.Position{X: gridW, Y: gridH}, '┘', s.textStyle)
}

// drawGrid fills empty cells with faint dots.
func (s *Screen) drawGrid(gridW, gridH int) {
	for y := 0; y < gridH; y++ {
		for x := 0; x < gridW; x++ {
			s.setCell(engine.Position{X: x, Y: y}, '·', s.gridStyle)
		}
	}
}

// setCell draws one rune at a grid position. Grid coordinates are
// shifted by one so the border at -1 lands on screen column 0.
func (s *Screen) setCell(pos engine.Position, r rune, style tcell.Style) {
	s.screen.SetContent(pos.X+1, pos.Y+1, r, nil, style)
}

func (s *Screen) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		s.screen.SetContent(x+i, y+1, r, nil, style)
	}
}

func (s *Screen) drawCentered(gridW, gridH int, text string) {
	x := (gridW+2)/2 - len(text)/2
	if x < 0 {
		x = 0
	}
	s.drawText(x, gridH/2, text, s.textStyle)
}

// Close restores the terminal. Safe to call more than once.
func (s *Screen) Close() {
	s.closed.Do(s.screen.Fini)
}
