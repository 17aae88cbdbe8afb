package guikit_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-theft-auto/guikit"
)

func TestMemoryHostContainerStack(t *testing.T) {
	h := newTestHost()
	window := mustAdd(t, h, guikit.KindWindow)
	other := mustAdd(t, h, guikit.KindChildWindow, guikit.WithParent(window))

	var inStack, explicit guikit.ID
	err := guikit.WithContainer(h, window, func() error {
		inStack = mustAdd(t, h, guikit.KindButton)
		explicit = mustAdd(t, h, guikit.KindButton, guikit.WithParent(other))
		return nil
	})
	if err != nil {
		t.Fatalf("WithContainer: %v", err)
	}

	children, err := h.Children(window, guikit.ItemSlot)
	if err != nil {
		t.Fatalf("Children: %v", err)
	}
	if diff := cmp.Diff([]guikit.ID{other, inStack}, children); diff != "" {
		t.Errorf("window children (-want +got):\n%s", diff)
	}
	if parent, _ := h.Parent(explicit); parent != other {
		t.Errorf("explicit parent = %d, want %d", parent, other)
	}

	if err := h.PopContainer(); !errors.Is(err, guikit.ErrEmptyStack) {
		t.Errorf("PopContainer on empty stack = %v, want ErrEmptyStack", err)
	}
}

func TestMemoryHostAddErrors(t *testing.T) {
	h := newTestHost()
	button := mustAdd(t, h, guikit.KindButton)

	if _, err := h.Add(guikit.KindText, guikit.WithParent(button)); !errors.Is(err, guikit.ErrNotContainer) {
		t.Errorf("non-container parent: %v", err)
	}
	if _, err := h.Add(guikit.KindText, guikit.WithParent(999)); !errors.Is(err, guikit.ErrItemNotFound) {
		t.Errorf("missing parent: %v", err)
	}
	if _, err := h.Add(guikit.KindText, guikit.WithTag(button)); !errors.Is(err, guikit.ErrDuplicateID) {
		t.Errorf("duplicate tag: %v", err)
	}
	if _, err := h.Add(guikit.KindUnknown); !errors.Is(err, guikit.ErrUnknownKind) {
		t.Errorf("unknown kind: %v", err)
	}
	if _, err := h.Add(guikit.KindText, guikit.WithSlot(9)); err == nil {
		t.Error("slot out of range: expected an error")
	}
	if _, err := h.Children(button, -1); err == nil {
		t.Error("Children slot out of range: expected an error")
	}
}

func TestMemoryHostTagsAdvanceGenerator(t *testing.T) {
	h := newTestHost()
	mustAdd(t, h, guikit.KindText, guikit.WithTag(100))
	if id := h.GenerateID(); id <= 100 {
		t.Errorf("GenerateID = %d after tag 100", id)
	}

	h = guikit.NewMemoryHost(guikit.WithFirstID(5000))
	if id := h.GenerateID(); id != 5000 {
		t.Errorf("first id = %d, want 5000", id)
	}
}

func TestMemoryHostDelete(t *testing.T) {
	h := newTestHost()
	window := mustAdd(t, h, guikit.KindWindow)
	group := mustAdd(t, h, guikit.KindGroup, guikit.WithParent(window))
	text := mustAdd(t, h, guikit.KindText, guikit.WithParent(group))
	keep := mustAdd(t, h, guikit.KindText, guikit.WithParent(window))

	if err := h.Delete(group); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if n := h.Len(); n != 2 {
		t.Errorf("Len = %d, want 2", n)
	}
	if _, err := h.Value(text); !errors.Is(err, guikit.ErrItemNotFound) {
		t.Errorf("Value(deleted child) = %v, want ErrItemNotFound", err)
	}
	children, _ := h.Children(window, guikit.ItemSlot)
	if diff := cmp.Diff([]guikit.ID{keep}, children); diff != "" {
		t.Errorf("children after delete (-want +got):\n%s", diff)
	}
	if err := h.Delete(group); !errors.Is(err, guikit.ErrItemNotFound) {
		t.Errorf("second Delete = %v, want ErrItemNotFound", err)
	}
}

func TestMemoryHostLayout(t *testing.T) {
	h := newTestHost()
	id := mustAdd(t, h, guikit.KindButton, guikit.WithPos(1, 2), guikit.WithSize(3, 4))

	if err := h.SetPos(id, 10, 20); err != nil {
		t.Fatalf("SetPos: %v", err)
	}
	if pos, _ := h.Pos(id); pos != (guikit.Vec2{X: 10, Y: 20}) {
		t.Errorf("Pos = %+v", pos)
	}
	if size, _ := h.RectSize(id); size != (guikit.Vec2{X: 3, Y: 4}) {
		t.Errorf("RectSize = %+v", size)
	}
	if err := h.SetSize(777, 1, 1); !errors.Is(err, guikit.ErrItemNotFound) {
		t.Errorf("SetSize(missing) = %v", err)
	}
}

func TestMemoryHostTextSize(t *testing.T) {
	h := newTestHost()

	tests := []struct {
		text string
		wrap float32
		want guikit.Vec2
	}{
		{"hello", -1, guikit.Vec2{X: 5, Y: 1}},
		{"", -1, guikit.Vec2{X: 0, Y: 1}},
		{"ab\ncdef", 0, guikit.Vec2{X: 4, Y: 2}},
		{"ab\n", -1, guikit.Vec2{X: 2, Y: 1}},
		{"abcdef", 4, guikit.Vec2{X: 4, Y: 2}},
		{"aaaa\nbb", 3, guikit.Vec2{X: 3, Y: 3}},
	}
	for _, tt := range tests {
		got, err := h.TextSize(tt.text, 0, tt.wrap)
		if err != nil {
			t.Fatalf("TextSize(%q): %v", tt.text, err)
		}
		if got != tt.want {
			t.Errorf("TextSize(%q, %v) = %+v, want %+v", tt.text, tt.wrap, got, tt.want)
		}
	}
}

func TestMemoryHostFonts(t *testing.T) {
	h := newTestHost()
	big := h.AddFont(guikit.NewCellFont(2, 3))

	got, err := h.TextSize("abc", big, -1)
	if err != nil {
		t.Fatalf("TextSize: %v", err)
	}
	if want := (guikit.Vec2{X: 6, Y: 3}); got != want {
		t.Errorf("TextSize with font = %+v, want %+v", got, want)
	}
	if _, err := h.TextSize("abc", 4242, -1); !errors.Is(err, guikit.ErrItemNotFound) {
		t.Errorf("unknown font: %v", err)
	}
	if _, err := h.Add(guikit.KindText, guikit.WithTag(big)); !errors.Is(err, guikit.ErrDuplicateID) {
		t.Errorf("tag reusing a font id: %v", err)
	}
}

func TestMemoryHostConcurrent(t *testing.T) {
	h := newTestHost()
	window := mustAdd(t, h, guikit.KindWindow)

	const workers, rounds = 8, 100
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				text := fmt.Sprintf("w%d-%d", w, i)
				id, err := h.Add(guikit.KindText, guikit.WithParent(window), guikit.WithValue(text))
				if err != nil {
					errs <- err
					return
				}
				got, _, err := guikit.CellText(h, id, 2, 0)
				if err != nil {
					errs <- err
					return
				}
				if got == "" {
					errs <- fmt.Errorf("empty cell text for %q", text)
					return
				}
				if err := h.Delete(id); err != nil {
					errs <- err
					return
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}

	if n := h.Len(); n != 1 {
		t.Errorf("Len = %d, want 1", n)
	}
	children, _ := h.Children(window, guikit.ItemSlot)
	if len(children) != 0 {
		t.Errorf("window still has %d children", len(children))
	}
}
