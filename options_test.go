package textlerp

import (
	"math"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.styleCount != 1 {
		t.Errorf("styleCount = %d, want 1", o.styleCount)
	}
	if o.scratchCapacity != 10 {
		t.Errorf("scratchCapacity = %d, want 10", o.scratchCapacity)
	}
	if o.progress != 0 {
		t.Errorf("progress = %v, want 0", o.progress)
	}
}

func TestOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
		want options
	}{
		{"style count", WithStyleCount(4), options{styleCount: 4, scratchCapacity: 10}},
		{"style count zero ignored", WithStyleCount(0), options{styleCount: 1, scratchCapacity: 10}},
		{"scratch", WithScratchCapacity(64), options{styleCount: 1, scratchCapacity: 64}},
		{"scratch negative ignored", WithScratchCapacity(-3), options{styleCount: 1, scratchCapacity: 10}},
		{"progress", WithProgress(0.4), options{styleCount: 1, scratchCapacity: 10, progress: 0.4}},
		{"progress clamped high", WithProgress(7), options{styleCount: 1, scratchCapacity: 10, progress: 1}},
		{"progress clamped low", WithProgress(-1), options{styleCount: 1, scratchCapacity: 10}},
		{"progress NaN", WithProgress(math.NaN()), options{styleCount: 1, scratchCapacity: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			tt.opt(&o)
			if o != tt.want {
				t.Errorf("options = %+v, want %+v", o, tt.want)
			}
		})
	}
}
