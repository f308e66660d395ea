package textlerp

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false, so slog never builds
// the record in the first place.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var silent = slog.New(discard{})

// current holds the logger shared by textlerp, text and raster.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger sets the logger used by textlerp and its sub-packages. Nothing
// is logged until it is called; nil makes the packages silent again.
// It may be called while other goroutines are logging.
//
// Records are logged at two levels:
//   - [slog.LevelDebug]: reshape and rebase summaries, runes no font covers
//   - [slog.LevelWarn]: glyphs a canvas cannot draw, malformed feature tags
//
// For example, to see everything on stderr:
//
//	textlerp.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger, or a silent one.
func Logger() *slog.Logger {
	return current.Load()
}
