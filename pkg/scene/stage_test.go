package scene

import "testing"

// TestStage_NewNodeDefaults verifies freshly created nodes start visible,
// opaque, unscaled, at the origin.
func TestStage_NewNodeDefaults(t *testing.T) {
	s := NewStage(640, 480)
	n := s.NewNode()

	if !n.Visible() {
		t.Error("new node should be visible")
	}
	for name, want := range map[string]float64{
		PropX: 0, PropY: 0, PropOpacity: 1, PropScale: 1,
	} {
		v, ok := n.Property(name)
		if !ok || v != want {
			t.Errorf("property %q: got %v (ok=%v), want %v", name, v, ok, want)
		}
	}

	w, h := n.Size()
	if w != DefaultNodeSize || h != DefaultNodeSize {
		t.Errorf("Size: got (%v, %v), want (%v, %v)", w, h, DefaultNodeSize, DefaultNodeSize)
	}
}

func TestStage_Bounds(t *testing.T) {
	s := NewStage(800, 600)
	w, h := s.Bounds()
	if w != 800 || h != 600 {
		t.Errorf("Bounds: got (%v, %v), want (800, 600)", w, h)
	}
}

// TestStage_RemoveIsIdempotent verifies removal detaches exactly one
// element and that removing twice changes nothing.
func TestStage_RemoveIsIdempotent(t *testing.T) {
	s := NewStage(100, 100)
	a := s.NewNode()
	b := s.NewNode()
	c := s.NewNode()

	b.Remove()
	if s.Len() != 2 {
		t.Fatalf("Len after remove: got %d, want 2", s.Len())
	}

	b.Remove() // no-op
	if s.Len() != 2 {
		t.Fatalf("Len after duplicate remove: got %d, want 2", s.Len())
	}

	remaining := s.Elements()
	if remaining[0] != a || remaining[1] != c {
		t.Error("removal did not preserve the order of the remaining elements")
	}
}

func TestElement_Classes(t *testing.T) {
	s := NewStage(100, 100)
	n := s.NewNode()

	n.AddClass("spark")
	n.AddClass("spark--red")

	classes := n.Classes()
	if len(classes) != 2 || classes[0] != "spark" || classes[1] != "spark--red" {
		t.Errorf("Classes: got %v", classes)
	}
}

func TestStage_SetNodeSize(t *testing.T) {
	s := NewStage(100, 100)
	s.SetNodeSize(2, 3)

	w, h := s.NewNode().Size()
	if w != 2 || h != 3 {
		t.Errorf("Size after SetNodeSize: got (%v, %v), want (2, 3)", w, h)
	}
}
