package recording

import (
	"testing"

	"github.com/gogpu/textlerp"
)

// testFont is a font identified only by its key.
type testFont textlerp.FontKey

func (f testFont) Key() textlerp.FontKey { return textlerp.FontKey(f) }

func TestResourcePool_AddFont(t *testing.T) {
	p := NewResourcePool()

	a := p.AddFont(testFont(7))
	b := p.AddFont(testFont(9))
	again := p.AddFont(testFont(7))

	if a == b {
		t.Error("different fonts share a reference")
	}
	if again != a {
		t.Errorf("AddFont(same key) = %d, want %d", again, a)
	}
	if p.FontCount() != 2 {
		t.Errorf("FontCount() = %d, want 2", p.FontCount())
	}
	if got := p.GetFont(b); got != testFont(9) {
		t.Errorf("GetFont(%d) = %v, want 9", b, got)
	}
}

func TestResourcePool_NilAndInvalid(t *testing.T) {
	p := NewResourcePool()
	ref := p.AddFont(nil)
	if ref.IsValid() {
		t.Error("AddFont(nil) returned a valid reference")
	}
	if p.GetFont(ref) != nil {
		t.Error("GetFont(invalid) != nil")
	}
	if p.GetFont(3) != nil {
		t.Error("GetFont(out of range) != nil")
	}
}

func TestResourcePool_ClearAndClone(t *testing.T) {
	p := NewResourcePool()
	p.AddFont(testFont(1))

	c := p.Clone()
	p.Clear()
	if p.FontCount() != 0 {
		t.Errorf("FontCount() after Clear = %d", p.FontCount())
	}
	if c.FontCount() != 1 || c.GetFont(0) != testFont(1) {
		t.Error("Clone was affected by Clear")
	}
	if ref := p.AddFont(testFont(1)); ref != 0 {
		t.Errorf("AddFont after Clear = %d, want 0", ref)
	}
}
