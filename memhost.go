package guikit

import (
	"fmt"
	"strings"
	"sync"
)

// slotCount is the number of child slots every item has.
const slotCount = 4

// memItem is one widget held by a MemoryHost.
type memItem struct {
	kind     Kind
	parent   ID
	children [slotCount][]ID
	value    any
	pos      Vec2
	size     Vec2
}

// MemoryHost is an in-memory Host: a registry of widgets with values,
// positions and a container stack, but no rendering. It backs tests and
// headless tools, and can front a real toolkit that keeps its own tree
// in sync through Add, Delete, SetPos and SetSize.
//
// MemoryHost is safe for concurrent use, though GUI code normally calls it
// from the UI thread only.
type MemoryHost struct {
	mu          sync.RWMutex
	ids         *IDSequence
	items       map[ID]*memItem
	stack       []ID
	fonts       map[ID]Font
	defaultFont Font
}

// MemoryHostOption configures a MemoryHost.
type MemoryHostOption func(*MemoryHost)

// WithDefaultFont sets the font used for font ID 0.
func WithDefaultFont(f Font) MemoryHostOption {
	return func(h *MemoryHost) { h.defaultFont = f }
}

// WithFirstID sets the first ID the host generates.
func WithFirstID(id ID) MemoryHostOption {
	return func(h *MemoryHost) { h.ids = NewIDSequence(id) }
}

// NewMemoryHost creates an empty host using DefaultFont for font ID 0.
func NewMemoryHost(opts ...MemoryHostOption) *MemoryHost {
	h := &MemoryHost{
		ids:   NewIDSequence(1),
		items: make(map[ID]*memItem),
		fonts: make(map[ID]Font),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.defaultFont == nil {
		h.defaultFont = DefaultFont()
	}
	return h
}

type itemConfig struct {
	tag       ID
	parent    ID
	hasParent bool
	slot      int
	value     any
	pos       Vec2
	size      Vec2
}

// ItemOption configures an item created with MemoryHost.Add.
type ItemOption func(*itemConfig)

// WithTag registers the item under an ID generated earlier, typically a
// leaf of an Instance.
func WithTag(id ID) ItemOption {
	return func(c *itemConfig) { c.tag = id }
}

// WithParent attaches the item to parent instead of the container stack top.
func WithParent(parent ID) ItemOption {
	return func(c *itemConfig) { c.parent, c.hasParent = parent, true }
}

// WithSlot places the item in a child slot other than ItemSlot.
func WithSlot(slot int) ItemOption {
	return func(c *itemConfig) { c.slot = slot }
}

// WithValue sets the item's initial value.
func WithValue(v any) ItemOption {
	return func(c *itemConfig) { c.value = v }
}

// WithPos sets the item's position.
func WithPos(x, y float32) ItemOption {
	return func(c *itemConfig) { c.pos = Vec2{X: x, Y: y} }
}

// WithSize sets the item's size.
func WithSize(w, h float32) ItemOption {
	return func(c *itemConfig) { c.size = Vec2{X: w, Y: h} }
}

// Add creates an item of the given kind and returns its ID. Without
// WithParent the item is attached to the container on top of the container
// stack, or becomes a root if the stack is empty.
func (h *MemoryHost) Add(kind Kind, opts ...ItemOption) (ID, error) {
	if _, ok := kindByName[kind.String()]; !ok {
		return 0, fmt.Errorf("guikit: add %s: %w", kind, ErrUnknownKind)
	}
	cfg := itemConfig{slot: ItemSlot}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.slot < 0 || cfg.slot >= slotCount {
		return 0, fmt.Errorf("guikit: add %s: slot %d out of range", kind, cfg.slot)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	parent := cfg.parent
	if !cfg.hasParent && len(h.stack) > 0 {
		parent = h.stack[len(h.stack)-1]
	}
	var p *memItem
	if parent != 0 {
		var ok bool
		if p, ok = h.items[parent]; !ok {
			return 0, fmt.Errorf("guikit: add %s: parent %d: %w", kind, parent, ErrItemNotFound)
		}
		if !p.kind.IsContainer() {
			return 0, fmt.Errorf("guikit: add %s: parent %d is %s: %w", kind, parent, p.kind, ErrNotContainer)
		}
	}

	id := cfg.tag
	if id == 0 {
		id = h.ids.GenerateID()
	} else {
		if h.exists(id) {
			return 0, fmt.Errorf("guikit: add %s: tag %d: %w", kind, id, ErrDuplicateID)
		}
		h.ids.Skip(id)
	}

	h.items[id] = &memItem{
		kind:   kind,
		parent: parent,
		value:  cfg.value,
		pos:    cfg.pos,
		size:   cfg.size,
	}
	if p != nil {
		p.children[cfg.slot] = append(p.children[cfg.slot], id)
	}
	return id, nil
}

func (h *MemoryHost) exists(id ID) bool {
	_, item := h.items[id]
	_, font := h.fonts[id]
	return item || font
}

// Delete removes an item and everything below it.
func (h *MemoryHost) Delete(id ID) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	item, ok := h.items[id]
	if !ok {
		return fmt.Errorf("guikit: delete %d: %w", id, ErrItemNotFound)
	}
	if p, ok := h.items[item.parent]; ok {
		for slot, ids := range p.children {
			p.children[slot] = removeID(ids, id)
		}
	}
	h.deleteTree(id)
	return nil
}

func (h *MemoryHost) deleteTree(id ID) {
	item := h.items[id]
	delete(h.items, id)
	for _, ids := range item.children {
		for _, child := range ids {
			h.deleteTree(child)
		}
	}
}

func removeID(ids []ID, id ID) []ID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// Len returns the number of live items.
func (h *MemoryHost) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.items)
}

// AddFont registers a font and returns the ID to pass to TextSize.
func (h *MemoryHost) AddFont(f Font) ID {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.ids.GenerateID()
	h.fonts[id] = f
	return id
}

// SetPos records an item's laid-out position.
func (h *MemoryHost) SetPos(id ID, x, y float32) error {
	return h.update(id, func(it *memItem) { it.pos = Vec2{X: x, Y: y} })
}

// SetSize records an item's laid-out size.
func (h *MemoryHost) SetSize(id ID, w, ht float32) error {
	return h.update(id, func(it *memItem) { it.size = Vec2{X: w, Y: ht} })
}

func (h *MemoryHost) update(id ID, fn func(*memItem)) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	item, ok := h.items[id]
	if !ok {
		return fmt.Errorf("guikit: item %d: %w", id, ErrItemNotFound)
	}
	fn(item)
	return nil
}

func (h *MemoryHost) get(id ID) (*memItem, error) {
	item, ok := h.items[id]
	if !ok {
		return nil, fmt.Errorf("guikit: item %d: %w", id, ErrItemNotFound)
	}
	return item, nil
}

// GenerateID implements IDGenerator.
func (h *MemoryHost) GenerateID() ID {
	return h.ids.GenerateID()
}

// Value implements ValueStore.
func (h *MemoryHost) Value(id ID) (any, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	item, err := h.get(id)
	if err != nil {
		return nil, err
	}
	return item.value, nil
}

// SetValue implements ValueStore.
func (h *MemoryHost) SetValue(id ID, value any) error {
	return h.update(id, func(it *memItem) { it.value = value })
}

// Parent implements Tree.
func (h *MemoryHost) Parent(id ID) (ID, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	item, err := h.get(id)
	if err != nil {
		return 0, err
	}
	return item.parent, nil
}

// TypeTag implements Tree.
func (h *MemoryHost) TypeTag(id ID) (string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	item, err := h.get(id)
	if err != nil {
		return "", err
	}
	return TypeTag(item.kind), nil
}

// Pos implements Tree.
func (h *MemoryHost) Pos(id ID) (Vec2, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	item, err := h.get(id)
	if err != nil {
		return Vec2{}, err
	}
	return item.pos, nil
}

// RectSize implements Tree.
func (h *MemoryHost) RectSize(id ID) (Vec2, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	item, err := h.get(id)
	if err != nil {
		return Vec2{}, err
	}
	return item.size, nil
}

// Children implements Tree.
func (h *MemoryHost) Children(id ID, slot int) ([]ID, error) {
	if slot < 0 || slot >= slotCount {
		return nil, fmt.Errorf("guikit: children of %d: slot %d out of range", id, slot)
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	item, err := h.get(id)
	if err != nil {
		return nil, err
	}
	return append([]ID(nil), item.children[slot]...), nil
}

// PushContainer implements ContainerStack.
func (h *MemoryHost) PushContainer(id ID) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	item, err := h.get(id)
	if err != nil {
		return err
	}
	if !item.kind.IsContainer() {
		return fmt.Errorf("guikit: push %d (%s): %w", id, item.kind, ErrNotContainer)
	}
	h.stack = append(h.stack, id)
	return nil
}

// PopContainer implements ContainerStack.
func (h *MemoryHost) PopContainer() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.stack) == 0 {
		return fmt.Errorf("guikit: pop: %w", ErrEmptyStack)
	}
	h.stack = h.stack[:len(h.stack)-1]
	return nil
}

// TopContainer returns the container on top of the stack, or 0.
func (h *MemoryHost) TopContainer() ID {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.stack) == 0 {
		return 0
	}
	return h.stack[len(h.stack)-1]
}

// TextSize implements TextMeasurer. Lines are split on '\n', a trailing
// newline does not add a line, and with wrapWidth > 0 each line is broken
// at character boundaries.
func (h *MemoryHost) TextSize(text string, font ID, wrapWidth float32) (Vec2, error) {
	h.mu.RLock()
	f := h.defaultFont
	if font != 0 {
		var ok bool
		if f, ok = h.fonts[font]; !ok {
			h.mu.RUnlock()
			return Vec2{}, fmt.Errorf("guikit: font %d: %w", font, ErrItemNotFound)
		}
	}
	h.mu.RUnlock()
	return measureText(f, text, wrapWidth), nil
}

func measureText(f Font, text string, wrapWidth float32) Vec2 {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	var size Vec2
	count := 0
	for _, line := range lines {
		for _, l := range wrapByChar(f, line, wrapWidth) {
			size.X = maxf(size.X, f.MeasureText(l).X)
			count++
		}
	}
	size.Y = float32(count) * f.LineHeight()
	return size
}

// wrapByChar wraps a single line at character boundaries.
func wrapByChar(f Font, line string, maxWidth float32) []string {
	if maxWidth <= 0 || line == "" {
		return []string{line}
	}

	var lines []string
	var current []rune
	for _, r := range line {
		candidate := append(current, r)
		if f.MeasureText(string(candidate)).X > maxWidth && len(current) > 0 {
			lines = append(lines, string(current))
			current = []rune{r}
		} else {
			current = candidate
		}
	}
	return append(lines, string(current))
}
