// Package pong implements a two-player Pong clone: a ball bouncing inside a
// walled arena with two keyboard-controlled paddles. The simulation runs in
// fixed world units at a fixed timestep and has no dependency on the
// terminal platform.
package pong

import "github.com/avasilyev/tui-pong/internal/core"

// Arena dimensions and speeds, in world units. These are compile-time
// constants, not runtime configuration.
const (
	WindowWidth  = 750.0
	WindowHeight = 450.0

	// TimeStep is the fixed simulation timestep in seconds.
	TimeStep = 1.0 / 60.0

	// Gap is the inset of the walls from the window edge, and of the
	// paddles from their wall.
	Gap = 30.0

	WallThickness = 10.0

	LeftWallX   = -(WindowWidth/2 - Gap)
	RightWallX  = WindowWidth/2 - Gap
	TopWallY    = WindowHeight/2 - Gap
	BottomWallY = -(WindowHeight/2 - Gap)

	PaddleWidth  = 10.0
	PaddleHeight = 100.0

	LeftPaddleX  = LeftWallX + Gap
	RightPaddleX = RightWallX - Gap

	BallSize = 10.0

	// Speed applies to both the ball and the paddles, in units per second.
	Speed = 200.0

	// Paddle centers stay within these y bounds so the paddle never
	// penetrates the horizontal walls.
	PaddleTopBound    = TopWallY - WallThickness/2 - PaddleHeight/2
	PaddleBottomBound = BottomWallY + WallThickness/2 + PaddleHeight/2
)

// WallSide identifies one of the four arena walls.
type WallSide int

const (
	WallLeft WallSide = iota
	WallRight
	WallTop
	WallBottom
)

// String returns a human-readable name for the wall side.
func (s WallSide) String() string {
	switch s {
	case WallLeft:
		return "Left"
	case WallRight:
		return "Right"
	case WallTop:
		return "Top"
	case WallBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// Position returns the center of the wall for this side.
func (s WallSide) Position() core.Vec2 {
	switch s {
	case WallLeft:
		return core.NewVec2(LeftWallX, 0)
	case WallRight:
		return core.NewVec2(RightWallX, 0)
	case WallTop:
		return core.NewVec2(0, TopWallY)
	default:
		return core.NewVec2(0, BottomWallY)
	}
}

// Size returns the dimensions of the wall for this side. Walls extend past
// the arena corners by one thickness so the corners are closed.
func (s WallSide) Size() core.Vec2 {
	arenaWidth := RightWallX - LeftWallX
	arenaHeight := TopWallY - BottomWallY

	switch s {
	case WallLeft, WallRight:
		return core.NewVec2(WallThickness, arenaHeight+WallThickness)
	default:
		return core.NewVec2(arenaWidth+WallThickness, WallThickness)
	}
}
