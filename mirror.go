package guikit

import "fmt"

// Read snapshots the current value of every widget in inst. The result has
// the same schema as inst. A widget that no longer exists fails the read
// with the host's error, wrapped with the field path.
func Read(store ValueStore, inst *Instance) (*Values, error) {
	if inst == nil || inst.schema == nil {
		return nil, fmt.Errorf("guikit: read: %w", ErrNilSchema)
	}
	return read(store, inst, "")
}

func read(store ValueStore, inst *Instance, prefix string) (*Values, error) {
	vals := &Values{schema: inst.schema, slots: make([]slot[any], len(inst.slots))}
	for i, f := range inst.schema.fields {
		path := prefix + f.Name
		src := inst.slots[i]
		switch f.Kind {
		case FieldNested:
			sub, err := read(store, src.nested, path+".")
			if err != nil {
				return nil, err
			}
			vals.slots[i].nested = sub
		case FieldTuple:
			tuple := make([]any, len(src.tuple))
			for j, id := range src.tuple {
				v, err := store.Value(id)
				if err != nil {
					return nil, fmt.Errorf("guikit: read %s.%s: %w", path, f.Slots[j], err)
				}
				tuple[j] = v
			}
			vals.slots[i].tuple = tuple
		default:
			v, err := store.Value(src.leaf)
			if err != nil {
				return nil, fmt.Errorf("guikit: read %s: %w", path, err)
			}
			vals.slots[i].leaf = v
		}
	}
	return vals, nil
}

// Write sets every widget in inst to the matching entry of vals. The two
// records must have the same shape; a mismatch is reported as a *ShapeError
// before any widget is modified.
func Write(store ValueStore, inst *Instance, vals *Values) error {
	if inst == nil || inst.schema == nil || vals == nil || vals.schema == nil {
		return fmt.Errorf("guikit: write: %w", ErrNilSchema)
	}
	if err := inst.schema.Conforms(vals.schema); err != nil {
		return err
	}
	logger.Debug("writing values", "schema", inst.schema.name, "widgets", inst.schema.LeafCount())
	return write(store, inst, vals, "")
}

func write(store ValueStore, inst *Instance, vals *Values, prefix string) error {
	for i, f := range inst.schema.fields {
		path := prefix + f.Name
		dst, src := inst.slots[i], vals.slots[i]
		switch f.Kind {
		case FieldNested:
			if err := write(store, dst.nested, src.nested, path+"."); err != nil {
				return err
			}
		case FieldTuple:
			for j, id := range dst.tuple {
				if err := store.SetValue(id, src.tuple[j]); err != nil {
					return fmt.Errorf("guikit: write %s.%s: %w", path, f.Slots[j], err)
				}
			}
		default:
			if err := store.SetValue(dst.leaf, src.leaf); err != nil {
				return fmt.Errorf("guikit: write %s: %w", path, err)
			}
		}
	}
	return nil
}
