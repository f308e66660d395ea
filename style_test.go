package textlerp

import (
	"reflect"
	"testing"
)

func TestLerpStyle(t *testing.T) {
	base := Style{Size: 10, Color: Black, Variations: weight(400), LetterSpacing: 1}
	target := Style{Size: 30, Color: White, Variations: weight(900), LetterSpacing: 5}

	got := LerpStyle(base, target, 0.25)
	if got.Size != 15 {
		t.Errorf("Size = %v, want 15", got.Size)
	}
	if got.Color != 0xFF404040 {
		t.Errorf("Color = %#08x, want 0xff404040", uint32(got.Color))
	}
	// Only size and color blend; the rest comes from base.
	if got.LetterSpacing != 1 || !reflect.DeepEqual(got.Variations, base.Variations) {
		t.Errorf("non-blended fields = %+v, want base values", got)
	}

	got.Variations[0].Value = 1
	if base.Variations[0].Value != 400 {
		t.Error("LerpStyle result aliases base variations")
	}
}

func TestLerpStyle_Endpoints(t *testing.T) {
	base := Style{Size: 10.1, Color: ARGB(0x10, 0x20, 0x30, 0x40)}
	target := Style{Size: 33.7, Color: ARGB(0xF0, 0xE0, 0xD0, 0xC0)}

	if got := LerpStyle(base, target, 0); got.Size != base.Size || got.Color != base.Color {
		t.Errorf("t=0: %+v, want %+v", got, base)
	}
	if got := LerpStyle(base, target, 1); got.Size != target.Size || got.Color != target.Color {
		t.Errorf("t=1: size %v color %#08x, want %v %#08x", got.Size, uint32(got.Color), target.Size, uint32(target.Color))
	}
}

func TestLerpStyles_Fallback(t *testing.T) {
	base := []Style{{Size: 10}}
	target := []Style{{Size: 20}, {Size: 40}, {Size: 60}}

	got := lerpStyles(nil, base, target, 0.5)
	want := []float64{15, 25, 35}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, s := range got {
		if s.Size != want[i] {
			t.Errorf("style %d size = %v, want %v", i, s.Size, want[i])
		}
	}
}

func TestStyleAt(t *testing.T) {
	styles := []Style{{Size: 1}, {Size: 2}}
	tests := []struct {
		i    int
		want float64
	}{
		{0, 1},
		{1, 2},
		{2, 1},
		{9, 1},
	}
	for _, tt := range tests {
		if got := styleAt(styles, tt.i).Size; got != tt.want {
			t.Errorf("styleAt(%d).Size = %v, want %v", tt.i, got, tt.want)
		}
	}
}

func TestStyleClone(t *testing.T) {
	s := Style{Size: 12, Variations: []Variation{{"wght", 700}, {"wdth", 90}}}
	c := s.Clone()
	c.Variations[1].Value = 50
	if s.Variations[1].Value != 90 {
		t.Error("Clone shares variation storage")
	}
	if (Style{}).Clone().Variations != nil {
		t.Error("Clone of a style without variations allocated a slice")
	}
}

func TestStyleEqual(t *testing.T) {
	base := Style{Size: 12, Color: White, Variations: []Variation{{"wght", 700}}, LetterSpacing: 1}
	tests := []struct {
		name string
		edit func(s *Style)
		want bool
	}{
		{"same", func(*Style) {}, true},
		{"size", func(s *Style) { s.Size = 13 }, false},
		{"color", func(s *Style) { s.Color = Black }, false},
		{"spacing", func(s *Style) { s.LetterSpacing = 0 }, false},
		{"variation value", func(s *Style) { s.Variations[0].Value = 400 }, false},
		{"no variations", func(s *Style) { s.Variations = nil }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := base.Clone()
			tt.edit(&o)
			if got := base.Equal(o); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
	if !(Style{}).Equal(Style{Variations: []Variation{}}) {
		t.Error("nil and empty variation lists should compare equal")
	}
}
