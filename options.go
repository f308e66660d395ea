package textlerp

// Option configures an Interpolator during creation.
//
// Example:
//
//	ip, err := textlerp.New(layout, shaper, blender, style,
//	    textlerp.WithStyleCount(layout.LineCount()))
type Option func(*options)

// options holds optional configuration for Interpolator creation.
type options struct {
	styleCount      int
	scratchCapacity int
	progress        float64
}

// defaultOptions returns the default interpolator options.
func defaultOptions() options {
	return options{
		styleCount:      1,
		scratchCapacity: 10, // glyphs; grown on reshape as needed
	}
}

// WithStyleCount sets how many per-line styles the base and target lists
// start with. Lines beyond the list use the style at index 0.
// Values below 1 are ignored.
func WithStyleCount(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.styleCount = n
		}
	}
}

// WithScratchCapacity preallocates the position buffer used while drawing
// for runs of up to n glyphs. The buffer still grows on reshape when a
// longer run appears.
func WithScratchCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.scratchCapacity = n
		}
	}
}

// WithProgress sets the initial progress. It is clamped to [0, 1].
func WithProgress(p float64) Option {
	return func(o *options) {
		o.progress = clampProgress(p)
	}
}
