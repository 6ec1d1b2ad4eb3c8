package engine

// growthState tracks whether the next move consumes a pending growth.
// Growth from eating is deferred by exactly one move: the tail is kept
// on the move that consumes pendingGrowth, then the state returns to
// normalMove.
type growthState int

const (
	normalMove growthState = iota
	pendingGrowth
)

// Snake represents the player-controlled snake. The body is ordered
// head-first and always contains at least one segment.
type Snake struct {
	body      []Position
	direction Direction
	growth    growthState

	totalMoves       int
	directionChanges int
}

// NewSnake creates a snake of length 1 at the starting cell, facing right.
func NewSnake(startX, startY int) *Snake {
	return &Snake{
		body:      []Position{{X: startX, Y: startY}},
		direction: DirectionRight,
	}
}

// Move advances the snake one cell in its current direction. The new
// head is inserted at the front; unless a growth is pending, the tail
// is removed so the length stays constant. Move always succeeds.
func (s *Snake) Move() {
	newHead := s.body[0].Add(s.direction.Delta())
	s.body = append([]Position{newHead}, s.body...)

	if s.growth == pendingGrowth {
		s.growth = normalMove
	} else {
		s.body = s.body[:len(s.body)-1]
	}

	s.totalMoves++
}

// ChangeDirection updates the snake's direction for the next move.
// A 180-degree reversal is rejected and returns false. Re-selecting the
// current direction is accepted but not counted as a change.
func (s *Snake) ChangeDirection(d Direction) bool {
	if d == s.direction.Opposite() {
		return false
	}
	if d != s.direction {
		s.directionChanges++
	}
	s.direction = d
	return true
}

// Grow marks the snake to grow on its next move. Calling it more than
// once before the next move has the same effect as calling it once.
func (s *Snake) Grow() {
	s.growth = pendingGrowth
}

// CheckWallCollision reports whether the head lies outside the grid.
func (s *Snake) CheckWallCollision(width, height int) bool {
	head := s.body[0]
	return head.X < 0 || head.X >= width || head.Y < 0 || head.Y >= height
}

// CheckSelfCollision reports whether the head overlaps any other body
// segment. Because growth is deferred by one move, snakes of length 1
// or 2 can never self-collide.
func (s *Snake) CheckSelfCollision() bool {
	head := s.body[0]
	for _, segment := range s.body[1:] {
		if segment == head {
			return true
		}
	}
	return false
}

// Head returns the position of the snake's head.
func (s *Snake) Head() Position {
	return s.body[0]
}

// Length returns the current number of body segments.
func (s *Snake) Length() int {
	return len(s.body)
}

// Direction returns the snake's current direction.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Body returns a copy of the body segments, head first.
func (s *Snake) Body() []Position {
	body := make([]Position, len(s.body))
	copy(body, s.body)
	return body
}

// Analytics returns a read-only snapshot of movement metrics.
func (s *Snake) Analytics() SnakeAnalytics {
	moves := s.totalMoves
	if moves < 1 {
		moves = 1
	}
	return SnakeAnalytics{
		Length:           len(s.body),
		TotalMoves:       s.totalMoves,
		DirectionChanges: s.directionChanges,
		EfficiencyRatio:  float64(len(s.body)) / float64(moves),
	}
}
