package config

import (
	_ "embed"
)

//go:embed defaults/config.yaml
var defaultConfigYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Theme: ThemeConfig{
			BallChar:         "●",
			PaddleChar:       "█",
			WallChar:         "█",
			BallColor:        "bright_white",
			LeftPaddleColor:  "white",
			RightPaddleColor: "gray",
			WallColor:        "dark_gray",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}
