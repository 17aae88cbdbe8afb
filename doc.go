/*
Package guikit provides helpers for immediate-mode GUI toolkits: declarative
widget-id schemas, value snapshots of widget groups, container-tree lookups
and table-cell text measurement.

guikit does not draw anything. Every helper talks to the toolkit through the
small interfaces in host.go (IDGenerator, ValueStore, Tree, TextMeasurer,
ContainerStack), so it can sit on top of any toolkit that exposes item IDs,
values and a parent/child tree. MemoryHost implements all of them in memory.

# Quick Start

	// Declare the shape of a widget group once.
	var Login = guikit.MustSchema("Login",
	    guikit.Leaf("user"),
	    guikit.Leaf("password"),
	    guikit.Tuple("size", "w", "h"),
	)

	// Reserve one ID per widget, then create widgets under those IDs.
	form := guikit.MustGenerate(host, Login)
	user, _ := form.Leaf("user")
	host.Add(guikit.KindInputText, guikit.WithTag(user))

	// Snapshot every value, and write a snapshot back.
	values, err := guikit.Read(host, form)
	err = guikit.Write(host, form, values)

# Schemas

A Schema is a closed, declarative list of fields:

	Leaf(name)               one widget
	Tuple(name, slots...)    a fixed number of named widgets
	Nested(name, schema)     a nested group

Generate turns a schema into an Instance (a Record of IDs); Read turns an
Instance into Values (a Record of widget values); Write applies Values to an
Instance. Records built from the same schema line up field for field, and
Write refuses a Values record of a different shape with a *ShapeError
before touching any widget.

Schemas can also be loaded from YAML with LoadSchemaYAML, and snapshots
saved and restored with MarshalValuesYAML / UnmarshalValuesYAML.

# Tree Lookups

	FindContainer(tree, item, guikit.KindGroup)     nearest Group ancestor
	FindByPosition(tree, rows, mousePos, false)     row under the mouse
	Classify(tree, item)                            widget Kind
	WithContainer(stack, id, fn)                    scoped container push/pop

FindByPosition reads positions from the last layout pass. Widgets that have
not been laid out yet may report a zero position, so only call it once
layout has settled.

# Cell Text

CellText returns what a table cell displays, either a Text widget's value or
one line per child of a container cell, optionally re-wrapped to a width,
together with the size it needs. CopyCellText sends the same text to a
ClipboardProvider.

# Kinds

The supported widget kinds are fixed by the tables in kind.go. Type tags
reported by a host look like "mvAppItemType::mvGroup"; an unknown tag is an
ErrUnknownKind error, not a silent fallback.

# Logging

guikit logs at Debug level only, through log/slog on stderr. Call
SetVerbose(true) to see it.
*/
package guikit
