package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/guikit"
)

// Init loads the OpenGL function pointers for the current context.
// The window's context must be current.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	return nil
}

// ClearFrame sizes the viewport to the window's framebuffer and clears it
// with a packed guikit color. It returns the framebuffer size.
func ClearFrame(window *glfw.Window, color uint32) guikit.Vec2 {
	w, h := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(w), int32(h))

	r, g, b, a := guikit.UnpackRGBA(color)
	gl.ClearColor(float32(r)/255, float32(g)/255, float32(b)/255, float32(a)/255)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	return guikit.Vec2{X: float32(w), Y: float32(h)}
}
