// Package termrender draws a scene stage onto a tcell terminal screen.
// One scene unit is one terminal cell; elements render as a glyph picked
// by scale, dimmed as they fade out. Like pkg/render it is a thin
// collaborator implementation the particle system never imports.
package termrender

import (
	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/sparks/pkg/scene"
)

// Scale thresholds for the glyph ramp.
const (
	smallGlyphMax = 0.75
	largeGlyphMin = 1.5
)

// Stage is a tcell-rendered scene container sized to the screen. It
// embeds the headless stage and satisfies scene.Container.
type Stage struct {
	*scene.Stage

	screen   tcell.Screen
	palette  map[string]tcell.Color
	fallback tcell.Color
}

// NewStage creates a stage covering the whole screen. Elements occupy a
// single cell.
func NewStage(screen tcell.Screen) *Stage {
	w, h := screen.Size()
	s := &Stage{
		Stage:    scene.NewStage(float64(w), float64(h)),
		screen:   screen,
		palette:  make(map[string]tcell.Color),
		fallback: tcell.ColorWhite,
	}
	s.SetNodeSize(1, 1)
	return s
}

// MapClass assigns a terminal color to a presentation class.
func (s *Stage) MapClass(class string, c tcell.Color) {
	s.palette[class] = c
}

// colorFor resolves an element's color; the last mapped class wins.
func (s *Stage) colorFor(classes []string) tcell.Color {
	c := s.fallback
	for _, class := range classes {
		if mapped, ok := s.palette[class]; ok {
			c = mapped
		}
	}
	return c
}

// glyphFor picks a rune by element scale.
func glyphFor(scale float64) rune {
	switch {
	case scale <= smallGlyphMax:
		return '·'
	case scale >= largeGlyphMin:
		return '●'
	default:
		return '•'
	}
}

// Draw clears the screen, renders every visible element, and shows the
// result.
func (s *Stage) Draw() {
	s.screen.Clear()

	w, h := s.screen.Size()
	for _, el := range s.Elements() {
		if !el.Visible() || el.Opacity() <= 0 {
			continue
		}

		x := int(el.X())
		y := int(el.Y())
		if x < 0 || x >= w || y < 0 || y >= h {
			continue
		}

		style := tcell.StyleDefault.Foreground(s.colorFor(el.Classes()))
		if el.Opacity() < 0.5 {
			style = style.Dim(true)
		}
		s.screen.SetContent(x, y, glyphFor(el.Scale()), nil, style)
	}

	s.screen.Show()
}
