package text

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// goRegular loads Go Regular, a static font covering Latin, Greek and
// Cyrillic.
func goRegular(t testing.TB) *FontSource {
	t.Helper()
	return mustSource(t, goregular.TTF)
}

// goMono loads Go Mono.
func goMono(t testing.TB) *FontSource {
	t.Helper()
	return mustSource(t, gomono.TTF)
}

// selawik loads a subset of Selawik with one variation axis, wght 300..700
// (default 400).
func selawik(t testing.TB) *FontSource {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "Selawik-VF-Subset.ttf"))
	if err != nil {
		t.Fatalf("reading test font: %v", err)
	}
	return mustSource(t, data)
}

func mustSource(t testing.TB, data []byte, opts ...SourceOption) *FontSource {
	t.Helper()
	src, err := NewFontSource(data, opts...)
	if err != nil {
		t.Fatalf("NewFontSource() = %v", err)
	}
	return src
}

func mustFont(t testing.TB, src *FontSource, wght float32) *Font {
	t.Helper()
	f, err := src.Font(wghtVar(wght)...)
	if err != nil {
		t.Fatalf("Font(wght=%v) = %v", wght, err)
	}
	return f
}

func mustShaper(t testing.TB, primary *FontSource, opts ...ShaperOption) *GoTextShaper {
	t.Helper()
	s, err := NewGoTextShaper(primary, opts...)
	if err != nil {
		t.Fatalf("NewGoTextShaper() = %v", err)
	}
	return s
}
