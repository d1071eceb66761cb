// Package config provides YAML-based configuration for the presentation
// surface: glyphs, colors, and logging. Gameplay constants (arena geometry,
// speeds, tick rate) are compile-time constants in the pong package and are
// deliberately not configurable here.
package config

import (
	"github.com/avasilyev/tui-pong/internal/core"
	"github.com/avasilyev/tui-pong/internal/pong"
)

// Config is the root configuration document.
type Config struct {
	Theme   ThemeConfig   `yaml:"theme"`
	Logging LoggingConfig `yaml:"logging"`
}

// ThemeConfig selects the glyphs and colors used to draw the arena.
// Chars are strings in YAML; only the first rune of each is used.
type ThemeConfig struct {
	BallChar   string `yaml:"ball_char"`
	PaddleChar string `yaml:"paddle_char"`
	WallChar   string `yaml:"wall_char"`

	BallColor        string `yaml:"ball_color"`
	LeftPaddleColor  string `yaml:"left_paddle_color"`
	RightPaddleColor string `yaml:"right_paddle_color"`
	WallColor        string `yaml:"wall_color"`
}

// LoggingConfig controls the log output. The TUI owns stdout, so logs go to
// a file; an empty path disables logging entirely.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// colorNames maps YAML color names to screen colors.
var colorNames = map[string]core.Color{
	"default":      core.ColorDefault,
	"red":          core.ColorRed,
	"green":        core.ColorGreen,
	"yellow":       core.ColorYellow,
	"blue":         core.ColorBlue,
	"magenta":      core.ColorMagenta,
	"cyan":         core.ColorCyan,
	"white":        core.ColorWhite,
	"bright_white": core.ColorBrightWhite,
	"gray":         core.ColorGray,
	"dark_gray":    core.ColorDarkGray,
}

// parseColor resolves a color name, falling back when unknown or empty.
func parseColor(name string, fallback core.Color) core.Color {
	if c, ok := colorNames[name]; ok {
		return c
	}
	return fallback
}

// parseChar returns the first rune of s, or fallback when s is empty.
func parseChar(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

// GameTheme converts the configured theme into the renderer's theme,
// filling gaps with the built-in defaults.
func (c Config) GameTheme() pong.Theme {
	th := pong.DefaultTheme()
	th.BallChar = parseChar(c.Theme.BallChar, th.BallChar)
	th.PaddleChar = parseChar(c.Theme.PaddleChar, th.PaddleChar)
	th.WallChar = parseChar(c.Theme.WallChar, th.WallChar)
	th.BallColor = parseColor(c.Theme.BallColor, th.BallColor)
	th.LeftPaddleColor = parseColor(c.Theme.LeftPaddleColor, th.LeftPaddleColor)
	th.RightPaddleColor = parseColor(c.Theme.RightPaddleColor, th.RightPaddleColor)
	th.WallColor = parseColor(c.Theme.WallColor, th.WallColor)
	return th
}
