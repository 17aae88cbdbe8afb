package guikit_test

import (
	"errors"
	"testing"

	"github.com/go-theft-auto/guikit"
)

// buildNested creates window > outer group > inner group > text.
func buildNested(t *testing.T, h *guikit.MemoryHost) (window, outer, inner, text guikit.ID) {
	t.Helper()
	window = mustAdd(t, h, guikit.KindWindow)
	outer = mustAdd(t, h, guikit.KindGroup, guikit.WithParent(window))
	inner = mustAdd(t, h, guikit.KindGroup, guikit.WithParent(outer))
	text = mustAdd(t, h, guikit.KindText, guikit.WithParent(inner))
	return window, outer, inner, text
}

func TestFindContainer(t *testing.T) {
	h := newTestHost()
	window, outer, inner, text := buildNested(t, h)
	detached := mustAdd(t, h, guikit.KindGroup)

	tests := []struct {
		name   string
		item   guikit.ID
		kind   guikit.Kind
		want   guikit.ID
		wantOK bool
	}{
		{"nearest group", text, guikit.KindGroup, inner, true},
		{"skips the item itself", inner, guikit.KindGroup, outer, true},
		{"stops at the window", outer, guikit.KindGroup, 0, false},
		{"window ancestor", text, guikit.KindWindow, window, true},
		{"window is not its own ancestor", window, guikit.KindWindow, 0, false},
		{"no match", text, guikit.KindTab, 0, false},
		{"detached root", detached, guikit.KindGroup, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := guikit.FindContainer(h, tt.item, tt.kind)
			if err != nil {
				t.Fatalf("FindContainer: %v", err)
			}
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("FindContainer = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFindContainerErrors(t *testing.T) {
	h := newTestHost()
	_, _, _, text := buildNested(t, h)

	if _, _, err := guikit.FindContainer(h, text, guikit.KindButton); !errors.Is(err, guikit.ErrNotContainer) {
		t.Errorf("non-container kind: error = %v, want ErrNotContainer", err)
	}
	if _, _, err := guikit.FindContainer(h, 12345, guikit.KindGroup); !errors.Is(err, guikit.ErrItemNotFound) {
		t.Errorf("missing item: error = %v, want ErrItemNotFound", err)
	}
}

func TestWithContainer(t *testing.T) {
	h := newTestHost()
	window := mustAdd(t, h, guikit.KindWindow)

	var child guikit.ID
	err := guikit.WithContainer(h, window, func() error {
		if top := h.TopContainer(); top != window {
			t.Errorf("TopContainer = %d inside block, want %d", top, window)
		}
		var err error
		child, err = h.Add(guikit.KindButton)
		return err
	})
	if err != nil {
		t.Fatalf("WithContainer: %v", err)
	}
	if top := h.TopContainer(); top != 0 {
		t.Errorf("TopContainer = %d after block, want 0", top)
	}
	if parent, _ := h.Parent(child); parent != window {
		t.Errorf("child parent = %d, want %d", parent, window)
	}
}

func TestWithContainerPopsOnFailure(t *testing.T) {
	h := newTestHost()
	window := mustAdd(t, h, guikit.KindWindow)

	errBoom := errors.New("boom")
	err := guikit.WithContainer(h, window, func() error { return errBoom })
	if !errors.Is(err, errBoom) {
		t.Errorf("error = %v, want errBoom", err)
	}
	if top := h.TopContainer(); top != 0 {
		t.Errorf("TopContainer = %d after error, want 0", top)
	}

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic to propagate")
			}
		}()
		_ = guikit.WithContainer(h, window, func() error { panic("boom") })
	}()
	if top := h.TopContainer(); top != 0 {
		t.Errorf("TopContainer = %d after panic, want 0", top)
	}
}

func TestWithContainerPopError(t *testing.T) {
	h := newTestHost()
	window := mustAdd(t, h, guikit.KindWindow)

	errBoom := errors.New("boom")
	err := guikit.WithContainer(h, window, func() error {
		if err := h.PopContainer(); err != nil {
			t.Fatalf("PopContainer: %v", err)
		}
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Errorf("error = %v, want errBoom", err)
	}
	if !errors.Is(err, guikit.ErrEmptyStack) {
		t.Errorf("error = %v, want ErrEmptyStack", err)
	}
}

func TestWithContainerPushFailure(t *testing.T) {
	h := newTestHost()
	button := mustAdd(t, h, guikit.KindButton)

	called := false
	err := guikit.WithContainer(h, button, func() error {
		called = true
		return nil
	})
	if !errors.Is(err, guikit.ErrNotContainer) {
		t.Errorf("error = %v, want ErrNotContainer", err)
	}
	if called {
		t.Error("fn ran although push failed")
	}
}
