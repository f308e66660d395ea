package main

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/textlerp"
	_ "github.com/gogpu/textlerp/raster" // registers the "raster" backend
	"github.com/gogpu/textlerp/recording"
	"github.com/gogpu/textlerp/text"
)

// defaultBackend is the backend frames are rendered with.
const defaultBackend = "raster"

// builtinFonts are the fonts available by name.
var builtinFonts = map[string][]byte{
	"goregular": goregular.TTF,
	"gomono":    gomono.TTF,
}

// loadFont loads a built-in font by name or a font file by path.
func loadFont(name string) (*text.FontSource, error) {
	if data, ok := builtinFonts[name]; ok {
		return text.NewFontSource(data)
	}
	return text.NewFontSourceFromFile(name)
}

// newShaper loads the primary and fallback fonts.
func newShaper(primary string, fallback []string) (*text.GoTextShaper, error) {
	src, err := loadFont(primary)
	if err != nil {
		return nil, fmt.Errorf("loading font %s: %w", primary, err)
	}
	fallbacks := make([]*text.FontSource, 0, len(fallback))
	for _, name := range fallback {
		fb, err := loadFont(name)
		if err != nil {
			return nil, fmt.Errorf("loading fallback font %s: %w", name, err)
		}
		fallbacks = append(fallbacks, fb)
	}
	return text.NewGoTextShaper(src, text.WithFallback(fallbacks...))
}

// animation renders a script frame by frame. Each frame is recorded, then
// rendered to a backend looked up by name and saved.
type animation struct {
	script  Script
	ip      *textlerp.Interpolator
	rec     *recording.Recorder
	backend recording.FileBackend
	outDir  string
	frames  int
}

// newFileBackend creates the named backend, which must be able to write
// files.
func newFileBackend(name string) (recording.FileBackend, error) {
	b, err := recording.NewBackend(name)
	if err != nil {
		return nil, err
	}
	fb, ok := b.(recording.FileBackend)
	if !ok {
		return nil, fmt.Errorf("backend %q cannot write files", name)
	}
	return fb, nil
}

func newAnimation(s Script, outDir, backendName string) (*animation, error) {
	backend, err := newFileBackend(backendName)
	if err != nil {
		return nil, err
	}
	sh, err := newShaper(s.Font, s.Fallback)
	if err != nil {
		return nil, err
	}
	base, err := s.Base.style()
	if err != nil {
		return nil, fmt.Errorf("base style: %w", err)
	}
	opts, err := s.layoutOptions(base)
	if err != nil {
		return nil, err
	}
	layout, err := text.NewLayout(s.Text, sh, opts)
	if err != nil {
		return nil, err
	}
	ip, err := textlerp.New(layout, sh, text.NewBlender(), base)
	if err != nil {
		return nil, err
	}
	bg, err := parseColor(s.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	rec := recording.NewRecorder(s.Width, s.Height)
	rec.SetBackground(bg)
	return &animation{
		script:  s,
		ip:      ip,
		rec:     rec,
		backend: backend,
		outDir:  outDir,
	}, nil
}

// run writes the first frame, then Frames frames per step. Each step ends
// with a rebase so the next one starts where it stopped.
func (a *animation) run() error {
	if err := os.MkdirAll(a.outDir, 0o755); err != nil { //nolint:gosec // output directory is meant to be readable
		return err
	}
	if err := a.frame(); err != nil {
		return err
	}
	for i, st := range a.script.Steps {
		target, err := st.Target.style()
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		if err := a.ip.ApplyTargetStyle(target); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		until := st.Until
		if until == 0 {
			until = 1
		}
		for k := 1; k <= st.Frames; k++ {
			a.ip.SetProgress(until * float64(k) / float64(st.Frames))
			if err := a.frame(); err != nil {
				return err
			}
		}
		a.ip.Rebase()
	}
	return nil
}

// frame records the current state, renders it and saves it as the next
// PNG.
func (a *animation) frame() error {
	a.rec.Reset()
	a.rec.Translate(a.script.Margin, a.script.Margin)
	a.ip.Draw(a.rec)
	if err := a.rec.FinishRecording().Render(a.backend); err != nil {
		return fmt.Errorf("rendering frame %d: %w", a.frames, err)
	}

	path := filepath.Join(a.outDir, fmt.Sprintf("frame-%04d.png", a.frames))
	if err := a.backend.SaveToFile(path); err != nil {
		return err
	}
	a.frames++
	textlerp.Logger().Debug("textlerp: frame written", "path", path, "progress", a.ip.Progress())
	return nil
}
