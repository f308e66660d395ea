// Command textlerp renders a text style animation to PNG frames.
//
// The animation is described by a YAML script (see testdata/weight.yaml);
// flags override the script's values:
//
//	textlerp -s anim.yaml -o frames
//	textlerp -f gomono -n 24 "Hello, world"
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/gogpu/textlerp"
	"github.com/gogpu/textlerp/recording"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("textlerp", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		scriptPath string
		fontPath   string
		fallback   []string
		frames     int
		width      int
		height     int
		background string
		outDir     string
		backend    string
		verbose    bool
		showHelp   bool
	)
	fs.StringVarP(&scriptPath, "script", "s", "", "YAML animation script")
	fs.StringVarP(&fontPath, "font", "f", "", "Font file path or built-in font name (goregular, gomono)")
	fs.StringSliceVar(&fallback, "fallback", nil, "Fallback fonts, in order")
	fs.IntVarP(&frames, "frames", "n", 0, "Frames per animation step")
	fs.IntVar(&width, "width", 0, "Canvas width in pixels")
	fs.IntVar(&height, "height", 0, "Canvas height in pixels")
	fs.StringVar(&background, "background", "", "Background color, #RRGGBB or #AARRGGBB")
	fs.StringVarP(&outDir, "output", "o", "frames", "Output directory")
	fs.StringVar(&backend, "backend", defaultBackend, "Backend frames are rendered with")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if showHelp {
		printHelp(stdout, fs)
		return 0
	}
	if verbose {
		textlerp.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer textlerp.SetLogger(nil)
	}

	s := defaultScript()
	if scriptPath != "" {
		var err error
		if s, err = loadScript(scriptPath); err != nil {
			fmt.Fprintf(stderr, "Error loading script: %v\n", err)
			return 1
		}
	}

	if rest := fs.Args(); len(rest) > 0 {
		s.Text = strings.Join(rest, " ")
	}
	if fontPath != "" {
		s.Font = fontPath
	}
	if fs.Changed("fallback") {
		s.Fallback = fallback
	}
	if frames > 0 {
		for i := range s.Steps {
			s.Steps[i].Frames = frames
		}
	}
	if width > 0 {
		s.Width = width
	}
	if height > 0 {
		s.Height = height
	}
	if background != "" {
		s.Background = background
	}
	if err := s.validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	a, err := newAnimation(s, outDir, backend)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if err := a.run(); err != nil {
		fmt.Fprintf(stderr, "Error rendering: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "%d frames written to %s\n", a.frames, outDir)
	return 0
}

func printHelp(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintln(w, "textlerp - text style animation renderer")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  textlerp [flags] [text]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Backends: %s\n", strings.Join(recording.Backends(), ", "))
}
