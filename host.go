package guikit

import "errors"

// Errors returned by guikit. Host failures are wrapped, never replaced,
// so errors.Is still sees the host's own error values.
var (
	// ErrItemNotFound is returned when an ID does not name a live widget.
	ErrItemNotFound = errors.New("item not found")

	// ErrUnknownKind is returned when a type tag is missing from the kind tables.
	ErrUnknownKind = errors.New("unknown item kind")

	// ErrNotContainer is returned when a container kind was required.
	ErrNotContainer = errors.New("kind is not a container")

	// ErrNoItems is returned by FindByPosition for an empty item list.
	ErrNoItems = errors.New("no items")

	// ErrShapeMismatch is returned when an Instance and a Values record
	// were built from different schemas.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrDuplicateID is returned when a tag is registered twice.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrEmptyStack is returned by PopContainer with nothing pushed.
	ErrEmptyStack = errors.New("container stack is empty")

	// ErrNilSchema is returned when a schema or record argument is nil.
	ErrNilSchema = errors.New("nil schema")
)

// IDGenerator issues widget IDs that are unique for the process lifetime.
type IDGenerator interface {
	GenerateID() ID
}

// ValueStore reads and writes the current value of a widget.
type ValueStore interface {
	Value(id ID) (any, error)
	SetValue(id ID, value any) error
}

// Tree exposes the host's widget containment tree.
type Tree interface {
	// Parent returns the item's parent, or 0 for a root item.
	Parent(id ID) (ID, error)

	// TypeTag returns the namespaced type string, e.g. "mvAppItemType::mvText".
	TypeTag(id ID) (string, error)

	// Pos returns the item's last laid-out position.
	Pos(id ID) (Vec2, error)

	// RectSize returns the item's last laid-out size.
	RectSize(id ID) (Vec2, error)

	// Children returns the item's children in the given slot.
	Children(id ID, slot int) ([]ID, error)
}

// TextMeasurer measures rendered text. A wrapWidth <= 0 disables wrapping.
type TextMeasurer interface {
	TextSize(text string, font ID, wrapWidth float32) (Vec2, error)
}

// ContainerStack is the host's implicit parent stack used while creating
// widgets. Prefer WithContainer over calling it directly.
type ContainerStack interface {
	PushContainer(id ID) error
	PopContainer() error
}

// Host is the full set of toolkit services guikit consumes.
type Host interface {
	IDGenerator
	ValueStore
	Tree
	TextMeasurer
	ContainerStack
}

// ItemSlot is the children slot holding ordinary widgets.
const ItemSlot = 1
