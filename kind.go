package guikit

import (
	"fmt"
	"strings"
)

// Kind is the runtime kind of a widget. The set is closed: supporting a new
// widget means adding it to the tables below.
type Kind int

const (
	KindUnknown Kind = iota

	// Containers
	KindWindow
	KindChildWindow
	KindGroup
	KindTab
	KindMenuBar
	KindTable
	KindTableRow

	// Widgets
	KindInputText
	KindInputInt
	KindInputFloat
	KindText
	KindCombo
	KindDragFloat
	KindDragInt
	KindButton
	KindCheckbox
	KindSelectable
)

// TagNamespace prefixes every type tag reported by the host.
const TagNamespace = "mvAppItemType::"

// topContainer is where every ancestor walk ends.
const topContainer = KindWindow

var containerNames = map[Kind]string{
	KindWindow:      "mvWindowAppItem",
	KindChildWindow: "mvChildWindow",
	KindGroup:       "mvGroup",
	KindTab:         "mvTab",
	KindMenuBar:     "mvMenuBar",
	KindTable:       "mvTable",
	KindTableRow:    "mvTableRow",
}

var widgetNames = map[Kind]string{
	KindInputText:  "mvInputText",
	KindInputInt:   "mvInputInt",
	KindInputFloat: "mvInputFloat",
	KindText:       "mvText",
	KindCombo:      "mvCombo",
	KindDragFloat:  "mvDragFloat",
	KindDragInt:    "mvDragInt",
	KindButton:     "mvButton",
	KindCheckbox:   "mvCheckbox",
	KindSelectable: "mvSelectable",
}

// kindByName is the reverse of both tables. Built once, read-only after init.
var kindByName map[string]Kind

func init() {
	kindByName = make(map[string]Kind, len(containerNames)+len(widgetNames))
	for k, name := range containerNames {
		kindByName[name] = k
	}
	for k, name := range widgetNames {
		kindByName[name] = k
	}
}

// String returns the kind's type name, e.g. "mvGroup".
func (k Kind) String() string {
	if name, ok := containerNames[k]; ok {
		return name
	}
	if name, ok := widgetNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsContainer reports whether widgets of this kind can hold children.
func (k Kind) IsContainer() bool {
	_, ok := containerNames[k]
	return ok
}

// ParseKind maps a type name ("mvText") to its Kind.
func ParseKind(name string) (Kind, error) {
	k, ok := kindByName[name]
	if !ok {
		return KindUnknown, fmt.Errorf("guikit: %q: %w", name, ErrUnknownKind)
	}
	return k, nil
}

// TypeTag returns the namespaced tag a host reports for kind.
func TypeTag(k Kind) string {
	return TagNamespace + k.String()
}

// tagName strips the namespace from a type tag.
func tagName(tag string) string {
	if i := strings.LastIndex(tag, "::"); i >= 0 {
		return tag[i+2:]
	}
	return tag
}

// ItemName returns the kind name of an item, the last segment of its type tag.
func ItemName(t Tree, id ID) (string, error) {
	tag, err := t.TypeTag(id)
	if err != nil {
		return "", err
	}
	return tagName(tag), nil
}

// Classify returns the Kind of an item.
func Classify(t Tree, id ID) (Kind, error) {
	name, err := ItemName(t, id)
	if err != nil {
		return KindUnknown, err
	}
	k, ok := kindByName[name]
	if !ok {
		return KindUnknown, fmt.Errorf("guikit: item %d has type %q: %w", id, name, ErrUnknownKind)
	}
	return k, nil
}
