package guikit

import "fmt"

// Generate realises schema into an Instance, asking gen for one fresh ID per
// leaf and per tuple slot. Fields are visited in declaration order, so a
// deterministic generator yields deterministic instances.
func Generate(gen IDGenerator, schema *Schema) (*Instance, error) {
	if schema == nil {
		return nil, fmt.Errorf("guikit: generate: %w", ErrNilSchema)
	}
	inst := generate(gen, schema)
	logger.Debug("instance generated", "schema", schema.name, "ids", schema.LeafCount())
	return inst, nil
}

// MustGenerate is like Generate but panics on a nil schema.
func MustGenerate(gen IDGenerator, schema *Schema) *Instance {
	inst, err := Generate(gen, schema)
	if err != nil {
		panic(err)
	}
	return inst
}

func generate(gen IDGenerator, schema *Schema) *Instance {
	inst := &Instance{schema: schema, slots: make([]slot[ID], len(schema.fields))}
	for i, f := range schema.fields {
		switch f.Kind {
		case FieldNested:
			inst.slots[i].nested = generate(gen, f.Schema)
		case FieldTuple:
			ids := make([]ID, len(f.Slots))
			for j := range ids {
				ids[j] = gen.GenerateID()
			}
			inst.slots[i].tuple = ids
		default:
			inst.slots[i].leaf = gen.GenerateID()
		}
	}
	return inst
}
