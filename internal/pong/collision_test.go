package pong

import (
	"testing"

	"github.com/avasilyev/tui-pong/internal/core"
)

func TestCollideClassification(t *testing.T) {
	// A wide, flat collider similar to a horizontal wall.
	wall := core.NewRect(0, 0, 100, 20)

	tests := []struct {
		name     string
		ball     core.Rect
		other    core.Rect
		expected Side
	}{
		{
			name:     "straddles left edge",
			ball:     core.NewRect(-52, 0, 10, 10),
			other:    wall,
			expected: SideLeft,
		},
		{
			name:     "straddles right edge",
			ball:     core.NewRect(52, 0, 10, 10),
			other:    wall,
			expected: SideRight,
		},
		{
			name:     "straddles top edge",
			ball:     core.NewRect(0, 12, 10, 10),
			other:    wall,
			expected: SideTop,
		},
		{
			name:     "straddles bottom edge",
			ball:     core.NewRect(0, -12, 10, 10),
			other:    wall,
			expected: SideBottom,
		},
		{
			name:     "fully contained",
			ball:     core.NewRect(0, 0, 10, 10),
			other:    wall,
			expected: SideInside,
		},
		{
			name:     "no overlap",
			ball:     core.NewRect(0, 40, 10, 10),
			other:    wall,
			expected: SideNone,
		},
		{
			name:     "equal penetration depths classify inside",
			ball:     core.NewRect(-12, -12, 10, 10),
			other:    core.NewRect(0, 0, 20, 20),
			expected: SideInside,
		},
		{
			name:     "smaller penetration axis wins",
			ball:     core.NewRect(-12, -13, 10, 10),
			other:    core.NewRect(0, 0, 20, 20),
			expected: SideBottom,
		},
		{
			name:     "identical boxes classify inside",
			ball:     core.NewRect(5, 5, 10, 10),
			other:    core.NewRect(5, 5, 10, 10),
			expected: SideInside,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Collide(tc.ball, tc.other)
			if got != tc.expected {
				t.Errorf("Collide() = %s, expected %s", got, tc.expected)
			}
		})
	}
}

func TestWallGeometry(t *testing.T) {
	left := NewWall(WallLeft)
	if left.Pos.X != LeftWallX || left.Pos.Y != 0 {
		t.Errorf("left wall position = %v, expected (%v, 0)", left.Pos, LeftWallX)
	}
	if left.Size.X != WallThickness {
		t.Errorf("left wall width = %v, expected %v", left.Size.X, WallThickness)
	}
	// Vertical walls extend past the corners by one thickness.
	wantH := (TopWallY - BottomWallY) + WallThickness
	if left.Size.Y != wantH {
		t.Errorf("left wall height = %v, expected %v", left.Size.Y, wantH)
	}

	top := NewWall(WallTop)
	if top.Pos.X != 0 || top.Pos.Y != TopWallY {
		t.Errorf("top wall position = %v, expected (0, %v)", top.Pos, TopWallY)
	}
	wantW := (RightWallX - LeftWallX) + WallThickness
	if top.Size.X != wantW || top.Size.Y != WallThickness {
		t.Errorf("top wall size = %v, expected (%v, %v)", top.Size, wantW, WallThickness)
	}
}

func TestPaddleBounds(t *testing.T) {
	// Bounds derive from arena height minus half wall minus half paddle.
	want := TopWallY - WallThickness/2 - PaddleHeight/2
	if PaddleTopBound != want {
		t.Errorf("PaddleTopBound = %v, expected %v", PaddleTopBound, want)
	}
	if PaddleBottomBound != -want {
		t.Errorf("PaddleBottomBound = %v, expected %v", PaddleBottomBound, -want)
	}
}
