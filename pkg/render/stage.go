// Package render draws a scene stage with ebiten. Each element becomes a
// filled circle whose color comes from the element's presentation
// classes, faded by opacity and sized by scale. The package is a thin
// renderer over the headless scene model, not a rendering engine; the
// particle system never imports it.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/sparks/pkg/scene"
)

// Stage is an ebiten-rendered scene container. It embeds the headless
// stage, so it satisfies scene.Container and can be handed directly to an
// emitter as its origin.
type Stage struct {
	*scene.Stage

	palette  map[string]color.RGBA
	fallback color.RGBA
}

// NewStage creates a render stage with the given bounds. Elements with no
// mapped class draw white.
func NewStage(width, height float64) *Stage {
	return &Stage{
		Stage:    scene.NewStage(width, height),
		palette:  make(map[string]color.RGBA),
		fallback: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}

// MapClass assigns a draw color to a presentation class.
func (s *Stage) MapClass(class string, c color.RGBA) {
	s.palette[class] = c
}

// colorFor resolves an element's color: the last mapped class wins, so a
// random class layered over the main class overrides it.
func (s *Stage) colorFor(classes []string) color.RGBA {
	c := s.fallback
	for _, class := range classes {
		if mapped, ok := s.palette[class]; ok {
			c = mapped
		}
	}
	return c
}

// Draw renders every visible element onto screen.
func (s *Stage) Draw(screen *ebiten.Image) {
	for _, el := range s.Elements() {
		if !el.Visible() {
			continue
		}

		opacity := el.Opacity()
		if opacity <= 0 {
			continue
		}
		if opacity > 1 {
			opacity = 1
		}

		w, h := el.Size()
		radius := float32((w + h) / 4 * el.Scale())
		if radius <= 0 {
			continue
		}

		// Element coordinates are the top-left corner; the circle sits at
		// the element's center.
		cx := float32(el.X() + w/2)
		cy := float32(el.Y() + h/2)

		c := s.colorFor(el.Classes())
		faded := color.RGBA{
			R: uint8(float64(c.R) * opacity),
			G: uint8(float64(c.G) * opacity),
			B: uint8(float64(c.B) * opacity),
			A: uint8(float64(c.A) * opacity),
		}
		vector.DrawFilledCircle(screen, cx, cy, radius, faded, true)
	}
}
