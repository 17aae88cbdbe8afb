package guikit

// ClipboardProvider abstracts system clipboard access.
// Implement this interface with platform-specific clipboard APIs; the
// backend/opengl package has a GLFW implementation.
type ClipboardProvider interface {
	// GetText retrieves text from the system clipboard.
	// Returns empty string if clipboard is empty or contains non-text data.
	GetText() string

	// SetText copies text to the system clipboard.
	SetText(text string)
}

// CopyCellText puts the text of a table cell on the clipboard, wrapped to
// wrapWidth when wrapWidth >= 0. It returns the copied text.
func CopyCellText(h CellHost, clip ClipboardProvider, cell ID, wrapWidth float32, font ID) (string, error) {
	text, _, err := CellText(h, cell, wrapWidth, font)
	if err != nil {
		return "", err
	}
	clip.SetText(text)
	logger.Debug("cell copied", "cell", cell, "bytes", len(text))
	return text, nil
}
