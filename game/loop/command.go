package loop

import "snakegame/game/engine"

// Command is a player input decoded by an InputSource.
type Command int

const (
	CommandNone Command = iota
	CommandMoveUp
	CommandMoveDown
	CommandMoveLeft
	CommandMoveRight
	CommandTogglePause
	CommandRestart
	CommandQuit
)

// Direction returns the movement direction for a movement command. The
// second result is false for non-movement commands.
func (c Command) Direction() (engine.Direction, bool) {
	switch c {
	case CommandMoveUp:
		return engine.DirectionUp, true
	case CommandMoveDown:
		return engine.DirectionDown, true
	case CommandMoveLeft:
		return engine.DirectionLeft, true
	case CommandMoveRight:
		return engine.DirectionRight, true
	default:
		return 0, false
	}
}

// InputSource supplies the player commands that arrived since the last
// poll, in arrival order. Poll never blocks.
type InputSource interface {
	Poll() []Command
}

// Renderer draws one frame of the game state.
type Renderer interface {
	Render(snapshot engine.Snapshot) error
}
