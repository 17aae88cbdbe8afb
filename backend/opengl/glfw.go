// Package opengl connects guikit to a GLFW window with an OpenGL context:
// cursor tracking for position lookups, the system clipboard, and frame
// clearing.
package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/guikit"
)

// Pointer is the mouse state sampled for one frame.
type Pointer struct {
	Pos     guikit.Vec2
	Clicked bool // Left button released this frame
	Down    bool // Left button currently held
}

// PointerAdapter adapts GLFW mouse input to a per-frame Pointer.
type PointerAdapter struct {
	window   *glfw.Window
	pointer  Pointer
	released bool
}

// NewPointerAdapter creates an adapter and installs its mouse button callback.
func NewPointerAdapter(window *glfw.Window) *PointerAdapter {
	a := &PointerAdapter{window: window}
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	return a
}

// Update samples the pointer for a new frame.
// Call this once per frame after glfw.PollEvents.
func (a *PointerAdapter) Update() Pointer {
	a.pointer = Pointer{
		Pos:     CursorPos(a.window),
		Clicked: a.released,
		Down:    a.window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press,
	}
	a.released = false
	return a.pointer
}

// Pointer returns the state sampled by the last Update.
func (a *PointerAdapter) Pointer() Pointer {
	return a.pointer
}

func (a *PointerAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button == glfw.MouseButtonLeft && action == glfw.Release {
		a.released = true
	}
}

// CursorPos returns the cursor position in window coordinates.
func CursorPos(window *glfw.Window) guikit.Vec2 {
	x, y := window.GetCursorPos()
	return guikit.Vec2{X: float32(x), Y: float32(y)}
}

// HoveredItem returns the item under the cursor from a position-sorted list.
// The same layout precondition as guikit.FindByPosition applies.
func HoveredItem[T guikit.Positioned](t guikit.Tree, window *glfw.Window, items []T, horizontal bool) (T, int, error) {
	return guikit.FindByPosition(t, items, CursorPos(window), horizontal)
}

// Clipboard is a guikit.ClipboardProvider backed by GLFW.
type Clipboard struct {
	Window *glfw.Window
}

// GetText implements guikit.ClipboardProvider.
func (c *Clipboard) GetText() string {
	return c.Window.GetClipboardString()
}

// SetText implements guikit.ClipboardProvider.
func (c *Clipboard) SetText(text string) {
	c.Window.SetClipboardString(text)
}
