package main

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/textlerp"
	"github.com/gogpu/textlerp/text"
)

// Script describes an animation: a text, its starting style and a sequence
// of steps, each animating towards a new target style.
type Script struct {
	Text       string     `yaml:"text"`
	Font       string     `yaml:"font"`
	Fallback   []string   `yaml:"fallback"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Margin     float64    `yaml:"margin"`
	Background string     `yaml:"background"`
	Layout     LayoutSpec `yaml:"layout"`
	Base       StyleSpec  `yaml:"base"`
	Steps      []Step     `yaml:"steps"`
}

// LayoutSpec configures line breaking and alignment.
type LayoutSpec struct {
	Width       float64 `yaml:"width"`
	LineSpacing float64 `yaml:"line_spacing"`
	Align       string  `yaml:"align"`
	Direction   string  `yaml:"direction"`
	Wrap        bool    `yaml:"wrap"`
}

// StyleSpec is the YAML form of textlerp.Style.
type StyleSpec struct {
	Size          float64            `yaml:"size"`
	Color         string             `yaml:"color"`
	Variations    map[string]float32 `yaml:"variations"`
	LetterSpacing float64            `yaml:"letter_spacing"`
}

// Step animates from the current state to Target over Frames frames.
// With Until in (0,1) the step is interrupted at that progress and the next
// step starts from there; 0 runs the whole step.
type Step struct {
	Target StyleSpec `yaml:"target"`
	Frames int       `yaml:"frames"`
	Until  float64   `yaml:"until"`
}

func defaultScript() Script {
	return Script{
		Text:       "Interpolate",
		Font:       "goregular",
		Width:      640,
		Height:     160,
		Margin:     16,
		Background: "#FFFFFFFF",
		Layout:     LayoutSpec{LineSpacing: 1},
		Base:       StyleSpec{Size: 32, Color: "#FF000000"},
		Steps: []Step{
			{Target: StyleSpec{Size: 64, Color: "#FF2060C0"}, Frames: 10},
		},
	}
}

// loadScript reads a YAML script on top of the defaults.
func loadScript(path string) (Script, error) {
	s := defaultScript()
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing %s: %w", path, err)
	}
	return s, s.validate()
}

func (s *Script) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", s.Width, s.Height)
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("script has no steps")
	}
	for i, st := range s.Steps {
		if st.Frames < 1 {
			return fmt.Errorf("step %d: frames must be at least 1", i)
		}
		if st.Until < 0 || st.Until > 1 {
			return fmt.Errorf("step %d: until %v out of [0,1]", i, st.Until)
		}
	}
	return nil
}

// layoutOptions converts the layout section, measuring with the base style.
func (s *Script) layoutOptions(base textlerp.Style) (text.LayoutOptions, error) {
	opts := text.DefaultLayoutOptions()
	opts.Width = s.Layout.Width
	if s.Layout.LineSpacing > 0 {
		opts.LineSpacing = s.Layout.LineSpacing
	}
	if s.Layout.Wrap {
		opts.Wrap = text.WrapWord
	}
	opts.Style = base

	switch strings.ToLower(s.Layout.Align) {
	case "", "start":
		opts.Alignment = text.AlignStart
	case "center":
		opts.Alignment = text.AlignCenter
	case "end":
		opts.Alignment = text.AlignEnd
	default:
		return opts, fmt.Errorf("unknown alignment %q", s.Layout.Align)
	}

	switch strings.ToLower(s.Layout.Direction) {
	case "", "auto":
		opts.Direction = text.DirectionAuto
	case "ltr":
		opts.Direction = text.DirectionLTR
	case "rtl":
		opts.Direction = text.DirectionRTL
	default:
		return opts, fmt.Errorf("unknown direction %q", s.Layout.Direction)
	}
	return opts, nil
}

// style converts a StyleSpec. Variations are sorted by tag.
func (ss StyleSpec) style() (textlerp.Style, error) {
	c, err := parseColor(ss.Color)
	if err != nil {
		return textlerp.Style{}, err
	}
	st := textlerp.Style{Size: ss.Size, Color: c, LetterSpacing: ss.LetterSpacing}
	for tag, v := range ss.Variations {
		st.Variations = append(st.Variations, textlerp.Variation{Tag: tag, Value: v})
	}
	slices.SortFunc(st.Variations, func(a, b textlerp.Variation) int {
		return strings.Compare(a.Tag, b.Tag)
	})
	return st, nil
}

// parseColor parses "#RRGGBB" or "#AARRGGBB". An empty string is black.
func parseColor(s string) (textlerp.Color, error) {
	if s == "" {
		return textlerp.Black, nil
	}
	hex := strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q", s)
	}
	switch len(hex) {
	case 6:
		return textlerp.Color(0xFF000000 | uint32(v)), nil
	case 8:
		return textlerp.Color(v), nil
	default:
		return 0, fmt.Errorf("invalid color %q", s)
	}
}
