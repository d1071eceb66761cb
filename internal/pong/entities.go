package pong

import "github.com/avasilyev/tui-pong/internal/core"

// Collider is anything the ball can hit. All entities participating in
// collision checks expose their axis-aligned bounding box through it.
type Collider interface {
	Bounds() core.Rect
}

// Ball is the bouncing ball. Vel holds unit-sign direction components
// (each exactly +1 or -1); the actual displacement per tick is
// Vel * Speed * TimeStep. Reflection only negates components, so the
// magnitude never changes.
type Ball struct {
	Pos  core.Vec2
	Size core.Vec2
	Vel  core.Vec2
}

// NewBall creates a ball at the arena center moving up-right.
func NewBall() *Ball {
	return &Ball{
		Pos:  core.NewVec2(0, 0),
		Size: core.NewVec2(BallSize, BallSize),
		Vel:  core.NewVec2(1, 1),
	}
}

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() core.Rect {
	return core.Rect{Center: b.Pos, Size: b.Size}
}

// Move advances the ball by its velocity over one fixed timestep.
// No bounds clamping happens here; the collision resolver corrects
// overlap on the following tick.
func (b *Ball) Move() {
	b.Pos = b.Pos.Add(b.Vel.Scale(Speed * TimeStep))
}

// PaddleID distinguishes the two paddles.
type PaddleID int

const (
	PaddleLeft PaddleID = iota
	PaddleRight
)

// Paddle is a player-controlled paddle. Its x position is fixed per side;
// only y changes during play.
type Paddle struct {
	ID   PaddleID
	Pos  core.Vec2
	Size core.Vec2
}

// NewPaddle creates a paddle centered vertically on its side of the arena.
func NewPaddle(id PaddleID) *Paddle {
	x := LeftPaddleX
	if id == PaddleRight {
		x = RightPaddleX
	}
	return &Paddle{
		ID:   id,
		Pos:  core.NewVec2(x, 0),
		Size: core.NewVec2(PaddleWidth, PaddleHeight),
	}
}

// Bounds returns the paddle's bounding box.
func (p *Paddle) Bounds() core.Rect {
	return core.Rect{Center: p.Pos, Size: p.Size}
}

// MoveBy shifts the paddle vertically by direction dir over one fixed
// timestep, saturating at the paddle travel bounds. dir is expected in
// {-1, 0, +1}.
func (p *Paddle) MoveBy(dir float64) {
	newY := p.Pos.Y + dir*Speed*TimeStep
	p.Pos.Y = core.ClampF(newY, PaddleBottomBound, PaddleTopBound)
}

// Wall is one of the four static arena walls, immutable after creation.
type Wall struct {
	Side WallSide
	Pos  core.Vec2
	Size core.Vec2
}

// NewWall creates the wall for the given side.
func NewWall(side WallSide) *Wall {
	return &Wall{
		Side: side,
		Pos:  side.Position(),
		Size: side.Size(),
	}
}

// Bounds returns the wall's bounding box.
func (w *Wall) Bounds() core.Rect {
	return core.Rect{Center: w.Pos, Size: w.Size}
}
