package guikit

import (
	"errors"
	"fmt"
	"strings"
)

// FieldKind tells the generator and the mirror what a schema field holds.
type FieldKind int

const (
	// FieldLeaf holds a single widget.
	FieldLeaf FieldKind = iota
	// FieldTuple holds a fixed number of named widgets.
	FieldTuple
	// FieldNested holds another schema.
	FieldNested
)

func (k FieldKind) String() string {
	switch k {
	case FieldLeaf:
		return "leaf"
	case FieldTuple:
		return "tuple"
	case FieldNested:
		return "nested"
	default:
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
}

// Field is one entry of a Schema. Build fields with Leaf, Tuple and Nested.
type Field struct {
	Name   string
	Kind   FieldKind
	Slots  []string // FieldTuple only
	Schema *Schema  // FieldNested only
}

// Leaf declares a field holding one widget.
func Leaf(name string) Field {
	return Field{Name: name, Kind: FieldLeaf}
}

// Tuple declares a field holding one widget per named slot.
func Tuple(name string, slots ...string) Field {
	return Field{Name: name, Kind: FieldTuple, Slots: slots}
}

// Nested declares a field holding a group described by another schema.
func Nested(name string, schema *Schema) Field {
	return Field{Name: name, Kind: FieldNested, Schema: schema}
}

// Schema describes the shape of a group of related widgets. Schemas are
// declared once and never modified; Instances and Values built from the
// same schema always line up field for field.
//
//	var Login = guikit.MustSchema("Login",
//	    guikit.Leaf("user"),
//	    guikit.Leaf("password"),
//	    guikit.Tuple("size", "w", "h"),
//	    guikit.Nested("advanced", Advanced),
//	)
type Schema struct {
	name   string
	fields []Field
	index  map[string]int
}

// NewSchema validates fields and returns a schema.
func NewSchema(name string, fields ...Field) (*Schema, error) {
	s := &Schema{
		name:   name,
		fields: make([]Field, len(fields)),
		index:  make(map[string]int, len(fields)),
	}

	var errs []error
	for i, f := range fields {
		if err := validateField(f); err != nil {
			errs = append(errs, fmt.Errorf("field %d: %w", i, err))
			continue
		}
		if _, dup := s.index[f.Name]; dup {
			errs = append(errs, fmt.Errorf("field %q declared twice", f.Name))
			continue
		}
		f.Slots = append([]string(nil), f.Slots...)
		s.fields[i] = f
		s.index[f.Name] = i
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("guikit: schema %q: %w", name, errors.Join(errs...))
	}
	return s, nil
}

// MustSchema is like NewSchema but panics on an invalid declaration.
// Intended for package-level schema variables.
func MustSchema(name string, fields ...Field) *Schema {
	s, err := NewSchema(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

func validateField(f Field) error {
	if strings.TrimSpace(f.Name) == "" {
		return errors.New("empty name")
	}
	if strings.Contains(f.Name, ".") {
		return fmt.Errorf("name %q contains '.'", f.Name)
	}
	switch f.Kind {
	case FieldLeaf:
		return nil
	case FieldTuple:
		if len(f.Slots) == 0 {
			return fmt.Errorf("tuple %q has no slots", f.Name)
		}
		seen := make(map[string]bool, len(f.Slots))
		for _, slot := range f.Slots {
			if strings.TrimSpace(slot) == "" || strings.Contains(slot, ".") {
				return fmt.Errorf("tuple %q has invalid slot %q", f.Name, slot)
			}
			if seen[slot] {
				return fmt.Errorf("tuple %q repeats slot %q", f.Name, slot)
			}
			seen[slot] = true
		}
		return nil
	case FieldNested:
		if f.Schema == nil {
			return fmt.Errorf("nested %q has no schema", f.Name)
		}
		return nil
	default:
		return fmt.Errorf("field %q has unknown kind %s", f.Name, f.Kind)
	}
}

// Name returns the schema's name.
func (s *Schema) Name() string { return s.name }

// Fields returns the fields in declaration order.
func (s *Schema) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// Field looks up a field by name.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// LeafCount returns how many widgets an instance of the schema holds.
func (s *Schema) LeafCount() int {
	n := 0
	for _, f := range s.fields {
		switch f.Kind {
		case FieldLeaf:
			n++
		case FieldTuple:
			n += len(f.Slots)
		case FieldNested:
			n += f.Schema.LeafCount()
		}
	}
	return n
}

// Conforms checks that other has the same field names, kinds, slots and
// nesting as s. Schema names are not compared.
func (s *Schema) Conforms(other *Schema) error {
	return s.conforms(other, "")
}

func (s *Schema) conforms(other *Schema, prefix string) error {
	if s == other {
		return nil
	}
	if other == nil {
		return &ShapeError{Path: strings.TrimSuffix(prefix, "."), Reason: "missing schema"}
	}
	if len(s.fields) != len(other.fields) {
		return &ShapeError{
			Path:   strings.TrimSuffix(prefix, "."),
			Reason: fmt.Sprintf("%d fields, want %d", len(other.fields), len(s.fields)),
		}
	}
	for i, f := range s.fields {
		path := prefix + f.Name
		o := other.fields[i]
		if o.Name != f.Name {
			return &ShapeError{Path: path, Reason: fmt.Sprintf("found field %q", o.Name)}
		}
		if o.Kind != f.Kind {
			return &ShapeError{Path: path, Reason: fmt.Sprintf("%s field, want %s", o.Kind, f.Kind)}
		}
		switch f.Kind {
		case FieldTuple:
			if len(o.Slots) != len(f.Slots) {
				return &ShapeError{Path: path, Reason: fmt.Sprintf("%d slots, want %d", len(o.Slots), len(f.Slots))}
			}
			for j, slot := range f.Slots {
				if o.Slots[j] != slot {
					return &ShapeError{Path: path + "." + slot, Reason: fmt.Sprintf("found slot %q", o.Slots[j])}
				}
			}
		case FieldNested:
			if err := f.Schema.conforms(o.Schema, path+"."); err != nil {
				return err
			}
		}
	}
	return nil
}

// ShapeError reports where two records or schemas diverge.
type ShapeError struct {
	Path   string
	Reason string
}

func (e *ShapeError) Error() string {
	if e.Path == "" {
		return "guikit: shape mismatch: " + e.Reason
	}
	return fmt.Sprintf("guikit: shape mismatch at %s: %s", e.Path, e.Reason)
}

// Is makes errors.Is(err, ErrShapeMismatch) match.
func (e *ShapeError) Is(target error) bool {
	return target == ErrShapeMismatch
}
