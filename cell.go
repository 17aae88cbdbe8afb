package guikit

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// CellHost is what CellText needs from the host.
type CellHost interface {
	ValueStore
	Tree
	TextMeasurer
}

// CellText returns the text shown in a table cell and the size it occupies.
//
// A Text cell contributes its value. Any other cell is treated as a
// container: each child in the item slot becomes one line, either the
// child's own value (Text children) or the concatenated values of the
// child's children.
//
// With wrapWidth >= 0 the text is re-wrapped to wrapWidth (0 only honours
// newlines) and the size grows to fit the wrapped text.
func CellText(h CellHost, cell ID, wrapWidth float32, font ID) (string, Vec2, error) {
	kind, err := Classify(h, cell)
	if err != nil {
		return "", Vec2{}, err
	}

	var text string
	var size Vec2
	if kind == KindText {
		v, err := h.Value(cell)
		if err != nil {
			return "", Vec2{}, err
		}
		text = textOf(v)
		if size, err = h.TextSize(text, font, wrapWidth); err != nil {
			return "", Vec2{}, err
		}
	} else {
		if size, err = h.RectSize(cell); err != nil {
			return "", Vec2{}, err
		}
		if text, err = containerText(h, cell); err != nil {
			return "", Vec2{}, err
		}
	}

	if wrapWidth < 0 {
		return text, size, nil
	}

	wrapped, err := WrapText(h, text, wrapWidth, font)
	if err != nil {
		return "", Vec2{}, err
	}
	wrappedSize, err := h.TextSize(wrapped, font, -1)
	if err != nil {
		return "", Vec2{}, err
	}
	if strings.HasSuffix(wrapped, "\n") {
		// Measured text ignores the empty line after a trailing newline.
		space, err := h.TextSize(" ", font, -1)
		if err != nil {
			return "", Vec2{}, err
		}
		wrappedSize.Y += space.Y
	}
	return wrapped, size.Max(wrappedSize), nil
}

// containerText builds one line per child of cell.
func containerText(h CellHost, cell ID) (string, error) {
	children, err := h.Children(cell, ItemSlot)
	if err != nil {
		return "", err
	}

	lines := make([]string, len(children))
	for i, child := range children {
		kind, err := Classify(h, child)
		if err != nil {
			return "", err
		}
		if kind == KindText {
			v, err := h.Value(child)
			if err != nil {
				return "", err
			}
			lines[i] = textOf(v)
			continue
		}

		parts, err := h.Children(child, ItemSlot)
		if err != nil {
			return "", err
		}
		var b strings.Builder
		for _, part := range parts {
			v, err := h.Value(part)
			if err != nil {
				return "", err
			}
			b.WriteString(textOf(v))
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n"), nil
}

// WrapText breaks text into lines no wider than wrapWidth, measuring one
// rune at a time with font. A rune that overflows the line starts the next
// one and its width counts toward that line, so "aaaaaaa" at width 3 gives
// "aaa", "aaa", "a". A rune wider than wrapWidth on an empty line stays
// there rather than leaving an empty line. Literal newlines always break.
// With wrapWidth <= 0 only newlines break lines. Bytes are copied as-is,
// including invalid UTF-8.
func WrapText(m TextMeasurer, text string, wrapWidth float32, font ID) (string, error) {
	var lines []string
	var line strings.Builder
	var width float32

	for i := 0; i < len(text); {
		_, n := utf8.DecodeRuneInString(text[i:])
		chunk := text[i : i+n]
		i += n
		if chunk == "\n" {
			lines = append(lines, line.String())
			line.Reset()
			width = 0
			continue
		}

		size, err := m.TextSize(chunk, font, -1)
		if err != nil {
			return "", err
		}
		width += size.X
		if wrapWidth > 0 && width > wrapWidth && line.Len() > 0 {
			lines = append(lines, line.String())
			line.Reset()
			width = size.X
		}
		line.WriteString(chunk)
	}
	lines = append(lines, line.String())
	return strings.Join(lines, "\n"), nil
}

// textOf renders a widget value as text.
func textOf(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}
