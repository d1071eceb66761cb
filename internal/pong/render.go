package pong

import "github.com/avasilyev/tui-pong/internal/core"

// Theme selects the glyphs and colors used to draw the arena.
type Theme struct {
	BallChar   rune
	PaddleChar rune
	WallChar   rune

	BallColor        core.Color
	LeftPaddleColor  core.Color
	RightPaddleColor core.Color
	WallColor        core.Color
}

// DefaultTheme returns the built-in look: block paddles and walls, a round
// ball, all in grayscale.
func DefaultTheme() Theme {
	return Theme{
		BallChar:         '●',
		PaddleChar:       '█',
		WallChar:         '█',
		BallColor:        core.ColorBrightWhite,
		LeftPaddleColor:  core.ColorWhite,
		RightPaddleColor: core.ColorGray,
		WallColor:        core.ColorDarkGray,
	}
}

// Render draws the world into the screen buffer. World coordinates have the
// origin at the arena center with y growing upward; they are projected onto
// the cell grid, which has the origin top-left with y growing downward.
func (w *World) Render(dst *core.Screen, th Theme) {
	dst.Clear()

	for _, wall := range w.Walls {
		drawRect(dst, wall.Bounds(), th.WallChar, th.WallColor)
	}

	drawRect(dst, w.Left().Bounds(), th.PaddleChar, th.LeftPaddleColor)
	drawRect(dst, w.Right().Bounds(), th.PaddleChar, th.RightPaddleColor)

	if ball := w.Ball(); ball != nil {
		drawRect(dst, ball.Bounds(), th.BallChar, th.BallColor)
	}
}

// projectX maps a world x-coordinate to a cell column.
func projectX(x float64, screenW int) int {
	return int((x + WindowWidth/2) / WindowWidth * float64(screenW))
}

// projectY maps a world y-coordinate to a cell row, flipping the axis.
func projectY(y float64, screenH int) int {
	return int((WindowHeight/2 - y) / WindowHeight * float64(screenH))
}

// drawRect projects a world-space box onto the cell grid and fills it.
// Boxes thinner than one cell still occupy one cell so small entities
// remain visible at any terminal size.
func drawRect(dst *core.Screen, r core.Rect, fill rune, c core.Color) {
	x0 := projectX(r.MinX(), dst.Width())
	x1 := projectX(r.MaxX(), dst.Width())
	y0 := projectY(r.MaxY(), dst.Height())
	y1 := projectY(r.MinY(), dst.Height())

	cw := core.Max(1, x1-x0)
	ch := core.Max(1, y1-y0)

	dst.DrawRect(x0, y0, cw, ch, fill, c)
}
