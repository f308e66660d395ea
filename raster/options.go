package raster

import "github.com/gogpu/textlerp"

// Option configures a Canvas.
type Option func(*config)

type config struct {
	background textlerp.Color
	cacheSize  int
}

func defaultConfig() config {
	return config{
		background: textlerp.Transparent,
		cacheSize:  1024,
	}
}

// WithBackground sets the color Begin and Clear fill the image with.
// The default is transparent.
func WithBackground(c textlerp.Color) Option {
	return func(cfg *config) {
		cfg.background = c
	}
}

// WithOutlineCacheSize sets how many glyph outlines the canvas keeps.
// Zero disables caching.
func WithOutlineCacheSize(n int) Option {
	return func(cfg *config) {
		if n >= 0 {
			cfg.cacheSize = n
		}
	}
}
