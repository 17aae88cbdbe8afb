package guikit

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Max returns the component-wise maximum of two vectors.
func (v Vec2) Max(other Vec2) Vec2 {
	return Vec2{X: maxf(v.X, other.X), Y: maxf(v.Y, other.Y)}
}

// Axis returns X when horizontal is true and Y otherwise.
func (v Vec2) Axis(horizontal bool) float32 {
	if horizontal {
		return v.X
	}
	return v.Y
}

// RGBA creates a packed color from individual components (0-255).
// Colors are packed as 0xAABBGGRR for OpenGL compatibility.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// maxf returns the maximum of two float32 values.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
