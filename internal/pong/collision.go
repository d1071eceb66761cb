package pong

import (
	"math"

	"github.com/avasilyev/tui-pong/internal/core"
)

// Side classifies which face of a collider the ball struck.
type Side int

const (
	// SideNone means the boxes do not overlap.
	SideNone Side = iota
	// SideLeft means the ball hit the collider's left face.
	SideLeft
	// SideRight means the ball hit the collider's right face.
	SideRight
	// SideTop means the ball hit the collider's top face.
	SideTop
	// SideBottom means the ball hit the collider's bottom face.
	SideBottom
	// SideInside means the boxes overlap but no face can be singled out:
	// the ball is contained on both axes, or the penetration depths tie.
	SideInside
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideNone:
		return "None"
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	case SideTop:
		return "Top"
	case SideBottom:
		return "Bottom"
	case SideInside:
		return "Inside"
	default:
		return "Unknown"
	}
}

// Collide tests ball box a against collider box b and classifies the hit.
//
// On overlap, each axis yields a candidate face: the face of b whose edge
// the ball straddles, with the straddle depth as penetration. An axis on
// which the ball does not straddle either edge (it is contained within b's
// extent) contributes no face. The axis with the smaller penetration wins;
// equal depths classify as SideInside and cause no reflection, so an
// exactly diagonal corner hit resolves on a later tick once the depths
// diverge.
func Collide(a, b core.Rect) Side {
	if !a.Overlaps(b) {
		return SideNone
	}

	xSide, xDepth := SideInside, math.Inf(1)
	if a.MinX() < b.MinX() && a.MaxX() > b.MinX() && a.MaxX() < b.MaxX() {
		xSide, xDepth = SideLeft, a.MaxX()-b.MinX()
	} else if a.MinX() > b.MinX() && a.MinX() < b.MaxX() && a.MaxX() > b.MaxX() {
		xSide, xDepth = SideRight, b.MaxX()-a.MinX()
	}

	ySide, yDepth := SideInside, math.Inf(1)
	if a.MinY() < b.MinY() && a.MaxY() > b.MinY() && a.MaxY() < b.MaxY() {
		ySide, yDepth = SideBottom, a.MaxY()-b.MinY()
	} else if a.MinY() > b.MinY() && a.MinY() < b.MaxY() && a.MaxY() > b.MaxY() {
		ySide, yDepth = SideTop, b.MaxY()-a.MinY()
	}

	switch {
	case xDepth < yDepth:
		return xSide
	case yDepth < xDepth:
		return ySide
	default:
		return SideInside
	}
}
