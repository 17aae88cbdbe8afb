package guikit

import (
	"fmt"
	"strings"
)

// Record is a value laid out by a Schema: one slot per field, with tuple
// fields holding one element per named slot and nested fields holding a
// sub-record.
//
// Instance and Values are the two records guikit works with.
type Record[T any] struct {
	schema *Schema
	slots  []slot[T]
}

type slot[T any] struct {
	leaf   T
	tuple  []T
	nested *Record[T]
}

// Instance holds the widget IDs of one realised schema.
type Instance = Record[ID]

// Values holds a snapshot of widget values shaped like an Instance.
type Values = Record[any]

// newRecord allocates a zeroed record for schema, including all nested records.
func newRecord[T any](schema *Schema) *Record[T] {
	r := &Record[T]{schema: schema, slots: make([]slot[T], len(schema.fields))}
	for i, f := range schema.fields {
		switch f.Kind {
		case FieldTuple:
			r.slots[i].tuple = make([]T, len(f.Slots))
		case FieldNested:
			r.slots[i].nested = newRecord[T](f.Schema)
		}
	}
	return r
}

// NewValues returns an empty Values for schema, ready to be filled with Set
// and written with Write.
func NewValues(schema *Schema) *Values {
	return newRecord[any](schema)
}

// Schema returns the schema the record was built from.
func (r *Record[T]) Schema() *Schema { return r.schema }

func (r *Record[T]) field(name string, kind FieldKind) (int, error) {
	i, ok := r.schema.index[name]
	if !ok {
		return 0, &ShapeError{Path: name, Reason: fmt.Sprintf("no such field in %s", r.schema.name)}
	}
	if got := r.schema.fields[i].Kind; got != kind {
		return 0, &ShapeError{Path: name, Reason: fmt.Sprintf("%s field, not %s", got, kind)}
	}
	return i, nil
}

// Leaf returns a leaf field.
func (r *Record[T]) Leaf(name string) (T, error) {
	i, err := r.field(name, FieldLeaf)
	if err != nil {
		var zero T
		return zero, err
	}
	return r.slots[i].leaf, nil
}

// SetLeaf sets a leaf field.
func (r *Record[T]) SetLeaf(name string, v T) error {
	i, err := r.field(name, FieldLeaf)
	if err != nil {
		return err
	}
	r.slots[i].leaf = v
	return nil
}

// Tuple returns a copy of a tuple field, in slot order.
func (r *Record[T]) Tuple(name string) ([]T, error) {
	i, err := r.field(name, FieldTuple)
	if err != nil {
		return nil, err
	}
	return append([]T(nil), r.slots[i].tuple...), nil
}

func (r *Record[T]) tupleIndex(name, slotName string) (int, int, error) {
	i, err := r.field(name, FieldTuple)
	if err != nil {
		return 0, 0, err
	}
	for j, s := range r.schema.fields[i].Slots {
		if s == slotName {
			return i, j, nil
		}
	}
	return 0, 0, &ShapeError{Path: name + "." + slotName, Reason: "no such slot"}
}

// TupleSlot returns one named element of a tuple field.
func (r *Record[T]) TupleSlot(name, slotName string) (T, error) {
	i, j, err := r.tupleIndex(name, slotName)
	if err != nil {
		var zero T
		return zero, err
	}
	return r.slots[i].tuple[j], nil
}

// SetTupleSlot sets one named element of a tuple field.
func (r *Record[T]) SetTupleSlot(name, slotName string, v T) error {
	i, j, err := r.tupleIndex(name, slotName)
	if err != nil {
		return err
	}
	r.slots[i].tuple[j] = v
	return nil
}

// Nested returns the sub-record of a nested field.
func (r *Record[T]) Nested(name string) (*Record[T], error) {
	i, err := r.field(name, FieldNested)
	if err != nil {
		return nil, err
	}
	return r.slots[i].nested, nil
}

// Get resolves a dotted path such as "title", "size.w" or "advanced.debug".
func (r *Record[T]) Get(path string) (T, error) {
	rec, name, slotName, err := r.resolve(path)
	if err != nil {
		var zero T
		return zero, err
	}
	if slotName != "" {
		return rec.TupleSlot(name, slotName)
	}
	return rec.Leaf(name)
}

// Set assigns the leaf or tuple slot at a dotted path.
func (r *Record[T]) Set(path string, v T) error {
	rec, name, slotName, err := r.resolve(path)
	if err != nil {
		return err
	}
	if slotName != "" {
		return rec.SetTupleSlot(name, slotName, v)
	}
	return rec.SetLeaf(name, v)
}

// resolve walks nested fields until the path names a leaf or a tuple slot.
func (r *Record[T]) resolve(path string) (*Record[T], string, string, error) {
	parts := strings.Split(path, ".")
	rec := r
	for i, part := range parts {
		idx, ok := rec.schema.index[part]
		if !ok {
			return nil, "", "", &ShapeError{Path: strings.Join(parts[:i+1], "."), Reason: "no such field"}
		}
		f := rec.schema.fields[idx]
		rest := len(parts) - i - 1
		switch f.Kind {
		case FieldNested:
			if rest == 0 {
				return nil, "", "", &ShapeError{Path: path, Reason: "path ends at a nested group"}
			}
			rec = rec.slots[idx].nested
		case FieldTuple:
			if rest != 1 {
				return nil, "", "", &ShapeError{Path: path, Reason: "tuple needs exactly one slot name"}
			}
			return rec, part, parts[i+1], nil
		default:
			if rest != 0 {
				return nil, "", "", &ShapeError{Path: path, Reason: "path continues past a leaf"}
			}
			return rec, part, "", nil
		}
	}
	return nil, "", "", &ShapeError{Path: path, Reason: "empty path"}
}

// Walk calls fn for every leaf and tuple slot in declaration order, with its
// dotted path. Walk stops at the first error fn returns.
func (r *Record[T]) Walk(fn func(path string, v T) error) error {
	return r.walk("", fn)
}

func (r *Record[T]) walk(prefix string, fn func(string, T) error) error {
	for i, f := range r.schema.fields {
		path := prefix + f.Name
		s := r.slots[i]
		switch f.Kind {
		case FieldLeaf:
			if err := fn(path, s.leaf); err != nil {
				return err
			}
		case FieldTuple:
			for j, name := range f.Slots {
				if err := fn(path+"."+name, s.tuple[j]); err != nil {
					return err
				}
			}
		case FieldNested:
			if err := s.nested.walk(path+".", fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// IDs lists every widget ID of an instance in declaration order.
func IDs(inst *Instance) []ID {
	ids := make([]ID, 0, inst.schema.LeafCount())
	_ = inst.Walk(func(_ string, id ID) error {
		ids = append(ids, id)
		return nil
	})
	return ids
}

// Map converts the record to nested maps: tuples and nested groups become
// map[string]any keyed by slot or field name.
func (r *Record[T]) Map() map[string]any {
	m := make(map[string]any, len(r.slots))
	for i, f := range r.schema.fields {
		s := r.slots[i]
		switch f.Kind {
		case FieldLeaf:
			m[f.Name] = s.leaf
		case FieldTuple:
			t := make(map[string]any, len(f.Slots))
			for j, name := range f.Slots {
				t[name] = s.tuple[j]
			}
			m[f.Name] = t
		case FieldNested:
			m[f.Name] = s.nested.Map()
		}
	}
	return m
}

// ValuesFromMap builds Values for schema from the nested-map form produced by
// Map. Every field must be present and no extra keys are allowed.
func ValuesFromMap(schema *Schema, m map[string]any) (*Values, error) {
	if schema == nil {
		return nil, fmt.Errorf("guikit: values from map: %w", ErrNilSchema)
	}
	v := NewValues(schema)
	if err := fillValues(v, m, ""); err != nil {
		return nil, err
	}
	return v, nil
}

func fillValues(r *Values, m map[string]any, prefix string) error {
	for key := range m {
		if _, ok := r.schema.index[key]; !ok {
			return &ShapeError{Path: prefix + key, Reason: "unexpected field"}
		}
	}
	for i, f := range r.schema.fields {
		path := prefix + f.Name
		raw, ok := m[f.Name]
		if !ok {
			return &ShapeError{Path: path, Reason: "missing field"}
		}
		switch f.Kind {
		case FieldLeaf:
			r.slots[i].leaf = raw
		case FieldTuple:
			t, ok := raw.(map[string]any)
			if !ok {
				return &ShapeError{Path: path, Reason: fmt.Sprintf("tuple must be a mapping, got %T", raw)}
			}
			if len(t) != len(f.Slots) {
				return &ShapeError{Path: path, Reason: fmt.Sprintf("%d slots, want %d", len(t), len(f.Slots))}
			}
			for j, name := range f.Slots {
				v, ok := t[name]
				if !ok {
					return &ShapeError{Path: path + "." + name, Reason: "missing slot"}
				}
				r.slots[i].tuple[j] = v
			}
		case FieldNested:
			sub, ok := raw.(map[string]any)
			if !ok {
				return &ShapeError{Path: path, Reason: fmt.Sprintf("group must be a mapping, got %T", raw)}
			}
			if err := fillValues(r.slots[i].nested, sub, path+"."); err != nil {
				return err
			}
		}
	}
	return nil
}
