package guikit_test

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-theft-auto/guikit"
)

func TestDefaultFont(t *testing.T) {
	f := guikit.DefaultFont()

	if got := f.MeasureText("abc"); got != (guikit.Vec2{X: 21, Y: 13}) {
		t.Errorf("MeasureText(abc) = %+v, want {21 13}", got)
	}
	if lh := f.LineHeight(); lh != 13 {
		t.Errorf("LineHeight = %v, want 13", lh)
	}
}

func TestCellFontWideRunes(t *testing.T) {
	f := guikit.NewCellFont(8, 16)

	tests := []struct {
		text  string
		width float32
	}{
		{"abc", 24},
		{"日本", 32},
		{"", 0},
	}
	for _, tt := range tests {
		if got := f.MeasureText(tt.text); got.X != tt.width || got.Y != 16 {
			t.Errorf("MeasureText(%q) = %+v, want width %v", tt.text, got, tt.width)
		}
	}
}

func TestLoadTTF(t *testing.T) {
	f, err := guikit.LoadTTF(goregular.TTF, 16)
	if err != nil {
		t.Fatalf("LoadTTF: %v", err)
	}
	if f.LineHeight() <= 0 {
		t.Errorf("LineHeight = %v", f.LineHeight())
	}
	short, long := f.MeasureText("i"), f.MeasureText("iiii")
	if short.X <= 0 || long.X <= short.X {
		t.Errorf("MeasureText widths: i=%v iiii=%v", short.X, long.X)
	}

	if _, err := guikit.LoadTTF([]byte("not a font"), 16); err == nil {
		t.Error("expected an error for invalid font data")
	}
}
