package textlerp

import (
	"errors"
	"math/rand"
	"testing"
)

// runOf builds a ShapedRun whose glyph i uses fonts[i].
func runOf(fonts ...Font) *ShapedRun {
	r := &ShapedRun{}
	for i, f := range fonts {
		r.Glyphs = append(r.Glyphs, ShapedGlyph{ID: GlyphID(i + 1), Font: f})
	}
	return r
}

func TestSegmentFontRuns(t *testing.T) {
	ff := newFakeFonts()
	blender := &fakeBlender{fonts: ff}
	sans4, sans7 := ff.get("sans", 400), ff.get("sans", 700)
	mono4, mono7 := ff.get("mono", 400), ff.get("mono", 700)
	serif7 := ff.get("serif", 700)

	type span struct{ start, end int }
	tests := []struct {
		name      string
		base      []Font
		target    []Font
		want      []span
		wantErr   error
		wantIndex int
	}{
		{
			name: "empty line",
		},
		{
			name:   "single run",
			base:   []Font{sans4, sans4, sans4},
			target: []Font{sans7, sans7, sans7},
			want:   []span{{0, 3}},
		},
		{
			name:   "three runs",
			base:   []Font{sans4, sans4, mono4, mono4, sans4},
			target: []Font{sans7, sans7, mono7, mono7, sans7},
			want:   []span{{0, 2}, {2, 4}, {4, 5}},
		},
		{
			name:   "same font both sides",
			base:   []Font{mono4, sans4},
			target: []Font{mono4, sans4},
			want:   []span{{0, 1}, {1, 2}},
		},
		{
			name:      "base changes alone",
			base:      []Font{sans4, mono4},
			target:    []Font{sans7, sans7},
			wantErr:   ErrAsymmetricFontChange,
			wantIndex: 1,
		},
		{
			name:      "target changes alone",
			base:      []Font{sans4, sans4, sans4},
			target:    []Font{sans7, sans7, mono7},
			wantErr:   ErrAsymmetricFontChange,
			wantIndex: 2,
		},
		{
			name:      "incompatible first run",
			base:      []Font{sans4},
			target:    []Font{serif7},
			wantErr:   ErrIncompatibleFonts,
			wantIndex: 0,
		},
		{
			name:      "incompatible later run",
			base:      []Font{sans4, mono4},
			target:    []Font{sans7, serif7},
			wantErr:   ErrIncompatibleFonts,
			wantIndex: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs, longest, err := segmentFontRuns(runOf(tt.base...), runOf(tt.target...), blender)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("segmentFontRuns() error = %v, want %v", err, tt.wantErr)
				}
				var re *ReshapeError
				if !errors.As(err, &re) || re.Index != tt.wantIndex {
					t.Errorf("segmentFontRuns() error index = %+v, want %d", err, tt.wantIndex)
				}
				return
			}
			if err != nil {
				t.Fatalf("segmentFontRuns() = %v", err)
			}
			if len(runs) != len(tt.want) {
				t.Fatalf("got %d runs, want %d", len(runs), len(tt.want))
			}
			wantLongest := 0
			for i, w := range tt.want {
				if runs[i].Start != w.start || runs[i].End != w.end {
					t.Errorf("run %d = [%d,%d), want [%d,%d)", i, runs[i].Start, runs[i].End, w.start, w.end)
				}
				if !sameFont(runs[i].BaseFont, tt.base[w.start]) || !sameFont(runs[i].TargetFont, tt.target[w.start]) {
					t.Errorf("run %d has wrong fonts", i)
				}
				wantLongest = max(wantLongest, w.end-w.start)
			}
			if longest != wantLongest {
				t.Errorf("longest = %d, want %d", longest, wantLongest)
			}
		})
	}
}

// TestSegmentFontRuns_MaximalContiguous checks on random font sequences that
// the runs tile the line and that no two neighbouring runs share a font pair.
func TestSegmentFontRuns_MaximalContiguous(t *testing.T) {
	ff := newFakeFonts()
	blender := &fakeBlender{fonts: ff}
	families := []string{"sans", "mono", "serif"}
	rng := rand.New(rand.NewSource(42))

	for iter := 0; iter < 200; iter++ {
		n := rng.Intn(40)
		var base, target []Font
		for i := 0; i < n; i++ {
			fam := families[rng.Intn(len(families))]
			if i > 0 && rng.Intn(3) > 0 {
				// Repeat the previous family so runs get longer than one glyph.
				fam = base[i-1].(*fakeFont).family
			}
			base = append(base, ff.get(fam, 400))
			target = append(target, ff.get(fam, 900))
		}

		runs, _, err := segmentFontRuns(runOf(base...), runOf(target...), blender)
		if err != nil {
			t.Fatalf("iteration %d: segmentFontRuns() = %v", iter, err)
		}

		next := 0
		for i, r := range runs {
			if r.Start != next || r.Start >= r.End {
				t.Fatalf("iteration %d: run %d = [%d,%d) after %d", iter, i, r.Start, r.End, next)
			}
			for g := r.Start; g < r.End; g++ {
				if !sameFont(base[g], r.BaseFont) || !sameFont(target[g], r.TargetFont) {
					t.Fatalf("iteration %d: glyph %d does not match run %d fonts", iter, g, i)
				}
			}
			if i > 0 && sameFont(runs[i-1].BaseFont, r.BaseFont) && sameFont(runs[i-1].TargetFont, r.TargetFont) {
				t.Fatalf("iteration %d: runs %d and %d share a font pair", iter, i-1, i)
			}
			next = r.End
		}
		if next != n {
			t.Fatalf("iteration %d: runs cover [0,%d), want [0,%d)", iter, next, n)
		}
	}
}

func TestFontRunLen(t *testing.T) {
	r := FontRun{Start: 3, End: 8}
	if got := r.Len(); got != 5 {
		t.Errorf("Len() = %d, want 5", got)
	}
}
