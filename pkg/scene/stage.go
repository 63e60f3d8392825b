package scene

// Stage is the in-memory Container implementation. It tracks live child
// elements in creation order and hands renderers a stable snapshot to
// draw from. All mutation happens on the host loop's execution context;
// the stage performs no locking of its own.
type Stage struct {
	width  float64
	height float64

	// Rendered size assigned to every child element. The headless model
	// has no layout engine, so the size is a stage-wide constant.
	nodeWidth  float64
	nodeHeight float64

	elements []*Element
}

// DefaultNodeSize is the rendered width and height assigned to elements
// created by stages that did not override the node size.
const DefaultNodeSize = 8.0

// NewStage creates a stage with the given bounds and the default node
// size.
func NewStage(width, height float64) *Stage {
	return &Stage{
		width:      width,
		height:     height,
		nodeWidth:  DefaultNodeSize,
		nodeHeight: DefaultNodeSize,
	}
}

// SetNodeSize overrides the rendered size reported by child elements.
func (s *Stage) SetNodeSize(w, h float64) {
	s.nodeWidth = w
	s.nodeHeight = h
}

// Bounds reports the stage's width and height.
func (s *Stage) Bounds() (float64, float64) {
	return s.width, s.height
}

// NewNode creates a child element at (0, 0), visible, opaque, unscaled.
func (s *Stage) NewNode() Node {
	e := &Element{
		stage:   s,
		visible: true,
		props: map[string]float64{
			PropX:       0,
			PropY:       0,
			PropOpacity: 1,
			PropScale:   1,
		},
	}
	s.elements = append(s.elements, e)
	return e
}

// Elements returns the live child elements in creation order. The slice
// is owned by the stage; callers must not mutate it.
func (s *Stage) Elements() []*Element {
	return s.elements
}

// Len reports the number of live child elements.
func (s *Stage) Len() int {
	return len(s.elements)
}

// remove detaches e from the stage (identity-based, order-preserving).
func (s *Stage) remove(e *Element) {
	for i, candidate := range s.elements {
		if candidate == e {
			s.elements = append(s.elements[:i], s.elements[i+1:]...)
			return
		}
	}
}

// Element is the in-memory Node implementation created by Stage.NewNode.
type Element struct {
	stage   *Stage
	props   map[string]float64
	classes []string
	visible bool
	removed bool
}

// Property reports the current value of a named property.
func (e *Element) Property(name string) (float64, bool) {
	v, ok := e.props[name]
	return v, ok
}

// SetProperty assigns a named property. Unknown names are stored as-is so
// callers can animate renderer-specific properties.
func (e *Element) SetProperty(name string, value float64) {
	e.props[name] = value
}

// AddClass tags the element with a presentation class.
func (e *Element) AddClass(class string) {
	e.classes = append(e.classes, class)
}

// Classes returns the element's classes in the order added.
func (e *Element) Classes() []string {
	return e.classes
}

// Size reports the stage-wide element size.
func (e *Element) Size() (float64, float64) {
	return e.stage.nodeWidth, e.stage.nodeHeight
}

// SetVisible shows or hides the element.
func (e *Element) SetVisible(visible bool) {
	e.visible = visible
}

// Visible reports whether the element is shown.
func (e *Element) Visible() bool {
	return e.visible
}

// Removed reports whether the element has been detached from its stage.
func (e *Element) Removed() bool {
	return e.removed
}

// Remove detaches the element from its stage. Idempotent.
func (e *Element) Remove() {
	if e.removed {
		return
	}
	e.removed = true
	e.stage.remove(e)
}

// Convenience accessors used by the renderers.

// X returns the element's horizontal position.
func (e *Element) X() float64 { return e.props[PropX] }

// Y returns the element's vertical position.
func (e *Element) Y() float64 { return e.props[PropY] }

// Opacity returns the element's opacity in [0, 1].
func (e *Element) Opacity() float64 { return e.props[PropOpacity] }

// Scale returns the element's scale multiplier.
func (e *Element) Scale() float64 { return e.props[PropScale] }
