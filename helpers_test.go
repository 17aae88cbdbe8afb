package guikit_test

import (
	"testing"

	"github.com/go-theft-auto/guikit"
)

// newTestHost returns a host whose default font is one unit per cell.
func newTestHost() *guikit.MemoryHost {
	return guikit.NewMemoryHost(guikit.WithDefaultFont(guikit.NewCellFont(1, 1)))
}

func mustAdd(t *testing.T, h *guikit.MemoryHost, kind guikit.Kind, opts ...guikit.ItemOption) guikit.ID {
	t.Helper()
	id, err := h.Add(kind, opts...)
	if err != nil {
		t.Fatalf("Add(%s): %v", kind, err)
	}
	return id
}

// fakeTree reports fixed type tags and nothing else.
type fakeTree map[guikit.ID]string

func (f fakeTree) Parent(id guikit.ID) (guikit.ID, error)               { return 0, nil }
func (f fakeTree) TypeTag(id guikit.ID) (string, error)                 { return f[id], nil }
func (f fakeTree) Pos(id guikit.ID) (guikit.Vec2, error)                { return guikit.Vec2{}, nil }
func (f fakeTree) RectSize(id guikit.ID) (guikit.Vec2, error)           { return guikit.Vec2{}, nil }
func (f fakeTree) Children(id guikit.ID, slot int) ([]guikit.ID, error) { return nil, nil }
