package pong

import (
	"errors"
	"fmt"

	"github.com/avasilyev/tui-pong/internal/core"
)

// ErrBallCount is returned by Step when the collision resolver does not
// find exactly one ball. The simulation cannot proceed past this.
var ErrBallCount = errors.New("pong: collision resolver requires exactly one ball")

// CollisionEvent signals that a collision happened this tick. It carries no
// payload; one event is emitted per overlapping collider, whether or not a
// reflection occurred.
type CollisionEvent struct{}

// World holds all entities and advances them tick by tick. All entities are
// created once and live for the process duration; only the ball's position,
// the ball's velocity signs, and the paddle y positions mutate during play.
type World struct {
	Walls   [4]*Wall
	Paddles [2]*Paddle
	Balls   []*Ball

	events []CollisionEvent
	total  uint64
	ticks  uint64
}

// NewWorld creates the arena: four walls, two paddles, one ball.
func NewWorld() *World {
	return &World{
		Walls: [4]*Wall{
			NewWall(WallLeft),
			NewWall(WallRight),
			NewWall(WallTop),
			NewWall(WallBottom),
		},
		Paddles: [2]*Paddle{
			NewPaddle(PaddleLeft),
			NewPaddle(PaddleRight),
		},
		Balls: []*Ball{NewBall()},
	}
}

// Ball returns the single ball, or nil when the single-ball invariant is
// currently violated.
func (w *World) Ball() *Ball {
	if len(w.Balls) != 1 {
		return nil
	}
	return w.Balls[0]
}

// Left returns the left paddle.
func (w *World) Left() *Paddle {
	return w.Paddles[PaddleLeft]
}

// Right returns the right paddle.
func (w *World) Right() *Paddle {
	return w.Paddles[PaddleRight]
}

// Colliders returns everything the ball is tested against, in the committed
// resolution order: walls left, right, top, bottom, then the left and right
// paddles. Multiple overlaps in one tick resolve in this order.
func (w *World) Colliders() []Collider {
	return []Collider{
		w.Walls[0], w.Walls[1], w.Walls[2], w.Walls[3],
		w.Paddles[PaddleLeft], w.Paddles[PaddleRight],
	}
}

// Ticks returns the number of completed simulation ticks.
func (w *World) Ticks() uint64 {
	return w.ticks
}

// Events returns the collision events emitted during the last Step.
// The slice is reused across ticks; callers must not retain it.
func (w *World) Events() []CollisionEvent {
	return w.events
}

// TotalCollisions returns the number of collision events emitted since the
// world was created.
func (w *World) TotalCollisions() uint64 {
	return w.total
}

// Step advances the simulation by one fixed tick: paddle input, then ball
// kinematics, then collision resolution. Returns ErrBallCount (wrapped)
// when the single-ball precondition is violated.
func (w *World) Step(in core.InputFrame) error {
	w.ticks++
	w.events = w.events[:0]

	w.movePaddles(in)
	for _, b := range w.Balls {
		b.Move()
	}

	return w.resolveCollisions()
}

// movePaddles applies the input mapper: each pressed direction contributes
// +1 (up) or -1 (down), so opposing keys cancel. The resulting displacement
// is clamped to the paddle travel bounds.
func (w *World) movePaddles(in core.InputFrame) {
	w.Paddles[PaddleLeft].MoveBy(direction(in.Has(core.ActionLeftUp), in.Has(core.ActionLeftDown)))
	w.Paddles[PaddleRight].MoveBy(direction(in.Has(core.ActionRightUp), in.Has(core.ActionRightDown)))
}

// direction folds a pair of held keys into a displacement in {-1, 0, +1}.
func direction(up, down bool) float64 {
	var d float64
	if up {
		d++
	}
	if down {
		d--
	}
	return d
}

// resolveCollisions tests the ball against every collider and reflects its
// velocity on impact. Flips from different colliders in the same tick
// compound, so a corner hit can flip both axes.
func (w *World) resolveCollisions() error {
	if len(w.Balls) != 1 {
		return fmt.Errorf("%w: have %d", ErrBallCount, len(w.Balls))
	}
	ball := w.Balls[0]

	for _, c := range w.Colliders() {
		side := Collide(ball.Bounds(), c.Bounds())
		if side == SideNone {
			continue
		}

		w.events = append(w.events, CollisionEvent{})
		w.total++

		reflectX := false
		reflectY := false
		switch side {
		case SideLeft:
			reflectX = ball.Vel.X > 0
		case SideRight:
			reflectX = ball.Vel.X < 0
		case SideTop:
			reflectY = ball.Vel.Y < 0
		case SideBottom:
			reflectY = ball.Vel.Y > 0
		case SideInside:
			// Overlap without a clear face: event only, no reflection.
		}

		if reflectX {
			ball.Vel.X = -ball.Vel.X
		}
		if reflectY {
			ball.Vel.Y = -ball.Vel.Y
		}
	}

	return nil
}
