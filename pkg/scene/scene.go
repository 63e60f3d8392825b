// Package scene defines the visual-node model the particle system draws
// into: containers that own child nodes, and nodes with animatable
// numeric properties, presentation classes, and a measurable size.
//
// The package also ships a headless in-memory implementation (Stage and
// Element) that the tests run against and that the renderers wrap. A
// renderer only needs to walk Stage.Elements and map classes to visuals.
package scene

import "github.com/gonewx/sparks/pkg/tween"

// Animatable node property names.
const (
	PropX       = "x"
	PropY       = "y"
	PropOpacity = "opacity"
	PropScale   = "scale"
)

// Node is one visual element living inside a Container. Its numeric
// properties (PropX, PropY, PropOpacity, PropScale) are animatable
// through the tween engine; classes are opaque presentation tags a
// renderer maps to colors, glyphs, or styles.
type Node interface {
	tween.Target

	// AddClass tags the node with a presentation class.
	AddClass(class string)

	// Classes returns the node's presentation classes in the order added.
	Classes() []string

	// Size reports the node's rendered width and height in pixels.
	Size() (w, h float64)

	// SetVisible shows or hides the node without touching its opacity.
	SetVisible(visible bool)

	// Visible reports whether the node is shown.
	Visible() bool

	// Remove detaches the node from its container. Removing an already
	// removed node is a no-op.
	Remove()
}

// Container creates child nodes and reports its bounding box. Particle
// coordinates are relative to the container's top-left corner.
type Container interface {
	// NewNode creates a child node at (0, 0), visible, with opacity 1 and
	// scale 1.
	NewNode() Node

	// Bounds reports the container's width and height in pixels.
	Bounds() (width, height float64)
}
