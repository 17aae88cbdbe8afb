package guikit

import (
	"fmt"
	"sync"

	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Font measures single lines of text. Hosts use it to answer TextSize;
// line splitting and wrapping happen outside the font.
//
// Implementations:
//   - FaceFont wraps a golang.org/x/image font.Face (bitmap or TrueType)
//   - CellFont counts terminal cells, for grid and test hosts
type Font interface {
	// MeasureText returns the width and height of one line of text.
	MeasureText(text string) Vec2

	// LineHeight returns the distance between two baselines.
	LineHeight() float32
}

// FaceFont measures text with a font.Face.
// Faces are not safe for concurrent use, so measurements are serialised.
type FaceFont struct {
	mu         sync.Mutex
	face       font.Face
	lineHeight float32
}

// NewFaceFont wraps face.
func NewFaceFont(face font.Face) *FaceFont {
	return &FaceFont{
		face:       face,
		lineHeight: fixedToFloat(face.Metrics().Height),
	}
}

// DefaultFont returns the built-in 7x13 bitmap font.
func DefaultFont() *FaceFont {
	return NewFaceFont(basicfont.Face7x13)
}

// LoadTTF parses TrueType/OpenType data and returns a font of the given
// pixel size.
func LoadTTF(data []byte, sizePx float64) (*FaceFont, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("guikit: parse font: %w", err)
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: sizePx, DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("guikit: new face: %w", err)
	}
	return NewFaceFont(face), nil
}

// MeasureText implements Font.
func (f *FaceFont) MeasureText(text string) Vec2 {
	f.mu.Lock()
	adv := font.MeasureString(f.face, text)
	f.mu.Unlock()
	return Vec2{X: fixedToFloat(adv), Y: f.lineHeight}
}

// LineHeight implements Font.
func (f *FaceFont) LineHeight() float32 {
	return f.lineHeight
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// CellFont measures text in fixed-size cells, counting East Asian wide
// runes as two cells.
type CellFont struct {
	CellW, CellH float32
}

// NewCellFont returns a CellFont with the given cell size.
func NewCellFont(cellW, cellH float32) CellFont {
	return CellFont{CellW: cellW, CellH: cellH}
}

// MeasureText implements Font.
func (f CellFont) MeasureText(text string) Vec2 {
	return Vec2{X: float32(runewidth.StringWidth(text)) * f.CellW, Y: f.CellH}
}

// LineHeight implements Font.
func (f CellFont) LineHeight() float32 {
	return f.CellH
}
