package engine

import "testing"

func TestNewSnake(t *testing.T) {
	s := NewSnake(5, 7)

	if s.Length() != 1 {
		t.Errorf("Length = %d, want 1", s.Length())
	}
	if s.Head() != (Position{X: 5, Y: 7}) {
		t.Errorf("Head = %v, want {5 7}", s.Head())
	}
	if s.Direction() != DirectionRight {
		t.Errorf("Direction = %v, want right", s.Direction())
	}
}

func TestMoveKeepsLength(t *testing.T) {
	s := NewSnake(5, 5)

	for i := 0; i < 10; i++ {
		s.Move()
	}

	if s.Length() != 1 {
		t.Errorf("Length after 10 moves = %d, want 1", s.Length())
	}
	if s.Head() != (Position{X: 15, Y: 5}) {
		t.Errorf("Head = %v, want {15 5}", s.Head())
	}
}

func TestDeferredGrowth(t *testing.T) {
	s := NewSnake(5, 5)

	s.Grow()
	if s.Length() != 1 {
		t.Errorf("Length immediately after Grow = %d, want 1", s.Length())
	}

	s.Move()
	if s.Length() != 2 {
		t.Errorf("Length after growth move = %d, want 2", s.Length())
	}

	s.Move()
	if s.Length() != 2 {
		t.Errorf("Length after plain move = %d, want 2", s.Length())
	}
}

func TestGrowIsIdempotentBetweenMoves(t *testing.T) {
	s := NewSnake(5, 5)

	s.Grow()
	s.Grow()
	s.Move()

	if s.Length() != 2 {
		t.Errorf("Length = %d, want 2 (double Grow must add one segment)", s.Length())
	}
}

func TestChangeDirectionRejectsReversal(t *testing.T) {
	tests := []struct {
		current  Direction
		reversal Direction
	}{
		{DirectionRight, DirectionLeft},
		{DirectionLeft, DirectionRight},
		{DirectionUp, DirectionDown},
		{DirectionDown, DirectionUp},
	}

	for _, tt := range tests {
		t.Run(tt.current.String(), func(t *testing.T) {
			s := NewSnake(5, 5)
			s.direction = tt.current

			if s.ChangeDirection(tt.reversal) {
				t.Errorf("ChangeDirection(%v) accepted while facing %v", tt.reversal, tt.current)
			}
			if s.Direction() != tt.current {
				t.Errorf("Direction changed to %v after rejected reversal", s.Direction())
			}
		})
	}
}

func TestChangeDirectionCountsOnlyActualChanges(t *testing.T) {
	s := NewSnake(5, 5)

	if !s.ChangeDirection(DirectionRight) {
		t.Fatal("re-selecting current direction must be accepted")
	}
	if s.directionChanges != 0 {
		t.Errorf("directionChanges = %d after no-op change, want 0", s.directionChanges)
	}

	s.ChangeDirection(DirectionUp)
	s.ChangeDirection(DirectionLeft)
	s.ChangeDirection(DirectionLeft)

	if s.directionChanges != 2 {
		t.Errorf("directionChanges = %d, want 2", s.directionChanges)
	}
}

func TestCheckWallCollision(t *testing.T) {
	tests := []struct {
		name string
		head Position
		hit  bool
	}{
		{"inside", Position{X: 4, Y: 4}, false},
		{"top-left corner", Position{X: 0, Y: 0}, false},
		{"bottom-right corner", Position{X: 9, Y: 9}, false},
		{"left of grid", Position{X: -1, Y: 4}, true},
		{"right of grid", Position{X: 10, Y: 4}, true},
		{"above grid", Position{X: 4, Y: -1}, true},
		{"below grid", Position{X: 4, Y: 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSnake(tt.head.X, tt.head.Y)
			if got := s.CheckWallCollision(10, 10); got != tt.hit {
				t.Errorf("CheckWallCollision(%v) = %v, want %v", tt.head, got, tt.hit)
			}
		})
	}
}

func TestCheckSelfCollision(t *testing.T) {
	// Head overlapping the third segment.
	s := &Snake{
		body: []Position{
			{X: 5, Y: 5},
			{X: 5, Y: 6},
			{X: 5, Y: 5},
		},
		direction: DirectionRight,
	}
	if !s.CheckSelfCollision() {
		t.Error("expected self collision when head overlaps body")
	}

	// A short snake with distinct cells never self-collides.
	s = &Snake{
		body: []Position{
			{X: 5, Y: 5},
			{X: 4, Y: 5},
		},
		direction: DirectionRight,
	}
	if s.CheckSelfCollision() {
		t.Error("unexpected self collision for length-2 snake")
	}
}

func TestScenarioFirstMove(t *testing.T) {
	// 10x10 grid, snake at (5,5) facing right.
	s := NewSnake(5, 5)

	s.Move()
	if s.Head() != (Position{X: 6, Y: 5}) {
		t.Errorf("head = %v, want {6 5}", s.Head())
	}
	if s.CheckWallCollision(10, 10) {
		t.Error("unexpected wall collision")
	}
	if s.ChangeDirection(DirectionLeft) {
		t.Error("reversal to left accepted while facing right")
	}
}

// TestScenarioGrowthAndTurns walks a snake through a scripted session on
// a 10x10 grid: eat twice, turn, and verify the body tracks the path.
func TestScenarioGrowthAndTurns(t *testing.T) {
	s := NewSnake(2, 5)

	s.Grow()
	s.Move() // head (3,5), length 2
	s.Grow()
	s.Move() // head (4,5), length 3

	if s.Length() != 3 {
		t.Fatalf("Length = %d, want 3", s.Length())
	}

	s.ChangeDirection(DirectionUp)
	s.Move() // head (4,4)

	wantBody := []Position{{X: 4, Y: 4}, {X: 4, Y: 5}, {X: 3, Y: 5}}
	body := s.Body()
	for i, want := range wantBody {
		if body[i] != want {
			t.Errorf("body[%d] = %v, want %v", i, body[i], want)
		}
	}

	if s.CheckSelfCollision() {
		t.Error("unexpected self collision")
	}
	if s.CheckWallCollision(10, 10) {
		t.Error("unexpected wall collision")
	}

	analytics := s.Analytics()
	if analytics.TotalMoves != 3 {
		t.Errorf("TotalMoves = %d, want 3", analytics.TotalMoves)
	}
	if analytics.DirectionChanges != 1 {
		t.Errorf("DirectionChanges = %d, want 1", analytics.DirectionChanges)
	}
}

func TestAnalyticsZeroMoves(t *testing.T) {
	s := NewSnake(5, 5)
	analytics := s.Analytics()

	if analytics.TotalMoves != 0 {
		t.Errorf("TotalMoves = %d, want 0", analytics.TotalMoves)
	}
	if analytics.EfficiencyRatio != 1.0 {
		t.Errorf("EfficiencyRatio = %v, want 1.0 (guarded divisor)", analytics.EfficiencyRatio)
	}
}
