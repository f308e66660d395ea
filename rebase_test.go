package textlerp

import (
	"reflect"
	"testing"
)

func TestRebase_NoopAtZero(t *testing.T) {
	fx := newFixtureText(t, "ab12")
	ip := fx.mustBuild()
	if err := ip.ApplyTargetStyle(Style{Size: 20, Variations: weight(700)}); err != nil {
		t.Fatalf("ApplyTargetStyle() = %v", err)
	}
	before := draw(ip)
	lerps := fx.blender.lerps
	baseStyles := ip.BaseStyles()

	ip.Rebase()

	if fx.blender.lerps != lerps {
		t.Errorf("Rebase at 0 blended fonts %d times", fx.blender.lerps-lerps)
	}
	if !reflect.DeepEqual(ip.BaseStyles(), baseStyles) {
		t.Error("Rebase at 0 changed the base styles")
	}
	if after := draw(ip); !reflect.DeepEqual(before, after) {
		t.Error("Rebase at 0 changed the drawing")
	}
}

func TestRebase_AtOne(t *testing.T) {
	fx := newFixtureText(t, "ab12")
	ip := fx.mustBuild()
	target := Style{Size: 20, Color: White, Variations: weight(700)}
	if err := ip.ApplyTargetStyle(target); err != nil {
		t.Fatalf("ApplyTargetStyle() = %v", err)
	}
	ip.SetProgress(1)
	ip.Rebase()

	if ip.Progress() != 0 {
		t.Errorf("Progress() = %v, want 0", ip.Progress())
	}
	if !reflect.DeepEqual(ip.BaseStyles(), []Style{target}) {
		t.Errorf("BaseStyles() = %+v, want %+v", ip.BaseStyles(), target)
	}

	l := ip.lines[0]
	if !reflect.DeepEqual(l.baseX, l.targetX) || !reflect.DeepEqual(l.baseY, l.targetY) {
		t.Error("base positions differ from target positions")
	}
	for i, r := range l.runs {
		if !sameFont(r.BaseFont, r.TargetFont) {
			t.Errorf("run %d base font %+v, want target font %+v", i, r.BaseFont, r.TargetFont)
		}
	}

	// Base and target must not share variation storage.
	ip.target[0].Variations[0].Value = 100
	if ip.base[0].Variations[0].Value != 700 {
		t.Error("base style aliases target style")
	}
}

// TestRebase_Continuity checks that drawing right before and right after a
// rebase produces the same calls. Variations and letter spacing only take
// effect through shaping, so the styles are compared by size and color.
func TestRebase_Continuity(t *testing.T) {
	for _, p := range []float64{0.1, 0.25, 0.5, 0.6, 0.99, 1} {
		t.Run(strconvFloat(p), func(t *testing.T) {
			fx := newFixtureText(t, "Hi 42", "there")
			fx.style = Style{Size: 12, Color: ARGB(0xFF, 0x10, 0x20, 0x30), Variations: weight(300)}
			ip := fx.mustBuild()

			err := ip.ApplyTargetStyle(
				Style{Size: 18, Color: ARGB(0x80, 0xF0, 0xE0, 0xD0), Variations: weight(800)},
				Style{Size: 9, Color: White, Variations: weight(500), LetterSpacing: 2},
			)
			if err != nil {
				t.Fatalf("ApplyTargetStyle() = %v", err)
			}

			ip.SetProgress(p)
			before := draw(ip)
			ip.Rebase()
			after := draw(ip)

			if ip.Progress() != 0 {
				t.Errorf("Progress() = %v after Rebase, want 0", ip.Progress())
			}
			if len(before) != len(after) {
				t.Fatalf("draw calls: %d before, %d after", len(before), len(after))
			}
			for i := range before {
				if !sameDrawing(before[i], after[i]) {
					t.Errorf("call %d differs:\nbefore %+v\nafter  %+v", i, before[i], after[i])
				}
			}
		})
	}
}

// sameDrawing reports whether two draw calls put the same pixels on a
// canvas.
func sameDrawing(a, b drawCall) bool {
	return a.dx == b.dx && a.dy == b.dy &&
		reflect.DeepEqual(a.glyphs, b.glyphs) &&
		reflect.DeepEqual(a.positions, b.positions) &&
		a.font == b.font &&
		a.style.Size == b.style.Size && a.style.Color == b.style.Color
}

// TestRebase_ThenNewTarget starts a second animation from the middle of the
// first one.
func TestRebase_ThenNewTarget(t *testing.T) {
	fx := newFixtureText(t, "abc")
	ip := fx.mustBuild()
	if err := ip.ApplyTargetStyle(Style{Size: 20, Variations: weight(800)}); err != nil {
		t.Fatalf("ApplyTargetStyle() = %v", err)
	}
	ip.SetProgress(0.5)
	mid := draw(ip)
	ip.Rebase()

	next := Style{Size: 8, Color: White, Variations: weight(200)}
	if err := ip.ApplyTargetStyle(next); err != nil {
		t.Fatalf("ApplyTargetStyle() after Rebase = %v", err)
	}

	if got := draw(ip); !reflect.DeepEqual(got, mid) {
		t.Error("applying a new target moved the rebased text")
	}

	ip.SetProgress(1)
	end := draw(ip)
	want := fx.shape(0, next)
	for i, g := range want.Glyphs {
		if end[0].positions[2*i] != g.X || end[0].positions[2*i+1] != g.Y {
			t.Errorf("glyph %d at (%v, %v), want (%v, %v)",
				i, end[0].positions[2*i], end[0].positions[2*i+1], g.X, g.Y)
		}
	}
	if got, want := end[0].font, fx.fonts.get("sans", 200).key; got != want {
		t.Errorf("font = %v, want %v", got, want)
	}

	// The rebased base font is the half-way weight.
	if f := ip.lines[0].runs[0].BaseFont.(*fakeFont); f.weight != 600 {
		t.Errorf("rebased base weight = %v, want 600", f.weight)
	}
}
