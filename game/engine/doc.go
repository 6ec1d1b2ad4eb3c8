// Package engine implements the core snake game model: the grid value
// types, the snake with deferred growth and collision detection, food
// placement, the session configuration, and the per-tick update rules.
//
// The package is pure game logic with no I/O. A GameEngine owns exactly
// one live session and is mutated only by its caller; the game loop in
// package loop drives Step at the configured tick cadence and hands the
// resulting Snapshot to rendering and spectator collaborators.
//
// Movement rules:
//
//   - The snake advances one cell per tick in its current direction.
//   - A direction change is applied on the next tick; reversing 180
//     degrees is rejected so the head cannot run into the second
//     segment.
//   - Eating food defers growth by one move, awards ScoreIncrement
//     points, and shrinks the tick interval down to a configured floor.
//   - The session ends when the head leaves the grid or overlaps the
//     body.
package engine
