package guikit

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// schemaDoc is the YAML form of a Schema:
//
//	name: Settings
//	fields:
//	  - name: title
//	  - name: size
//	    tuple: [w, h]
//	  - name: advanced
//	    schema:
//	      name: Advanced
//	      fields:
//	        - name: debug
type schemaDoc struct {
	Name   string     `yaml:"name"`
	Fields []fieldDoc `yaml:"fields"`
}

type fieldDoc struct {
	Name   string     `yaml:"name"`
	Tuple  []string   `yaml:"tuple,omitempty"`
	Schema *schemaDoc `yaml:"schema,omitempty"`
}

// LoadSchemaYAML parses a schema declaration.
func LoadSchemaYAML(data []byte) (*Schema, error) {
	var doc schemaDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("guikit: parse schema: %w", err)
	}
	return doc.build()
}

func (d *schemaDoc) build() (*Schema, error) {
	if d.Name == "" {
		return nil, errors.New("guikit: schema without name")
	}
	fields := make([]Field, 0, len(d.Fields))
	for _, fd := range d.Fields {
		switch {
		case fd.Schema != nil && len(fd.Tuple) > 0:
			return nil, fmt.Errorf("guikit: schema %q: field %q is both tuple and schema", d.Name, fd.Name)
		case fd.Schema != nil:
			sub, err := fd.Schema.build()
			if err != nil {
				return nil, err
			}
			fields = append(fields, Nested(fd.Name, sub))
		case len(fd.Tuple) > 0:
			fields = append(fields, Tuple(fd.Name, fd.Tuple...))
		default:
			fields = append(fields, Leaf(fd.Name))
		}
	}
	return NewSchema(d.Name, fields...)
}

// MarshalValuesYAML encodes a snapshot as a YAML mapping in field
// declaration order. Tuples and nested groups become nested mappings.
func MarshalValuesYAML(v *Values) ([]byte, error) {
	if v == nil || v.schema == nil {
		return nil, fmt.Errorf("guikit: marshal values: %w", ErrNilSchema)
	}
	node, err := valuesNode(v)
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("guikit: marshal values: %w", err)
	}
	return out, nil
}

func valuesNode(v *Values) (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for i, f := range v.schema.fields {
		s := v.slots[i]
		var val *yaml.Node
		var err error
		switch f.Kind {
		case FieldNested:
			val, err = valuesNode(s.nested)
		case FieldTuple:
			val = &yaml.Node{Kind: yaml.MappingNode}
			for j, name := range f.Slots {
				elem, encErr := encodeNode(s.tuple[j])
				if encErr != nil {
					return nil, fmt.Errorf("guikit: marshal %s.%s: %w", f.Name, name, encErr)
				}
				val.Content = append(val.Content, keyNode(name), elem)
			}
		default:
			val, err = encodeNode(s.leaf)
		}
		if err != nil {
			return nil, fmt.Errorf("guikit: marshal %s: %w", f.Name, err)
		}
		n.Content = append(n.Content, keyNode(f.Name), val)
	}
	return n, nil
}

func keyNode(name string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
}

func encodeNode(v any) (*yaml.Node, error) {
	var n yaml.Node
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	return &n, nil
}

// UnmarshalValuesYAML decodes a snapshot written by MarshalValuesYAML and
// checks it against schema.
func UnmarshalValuesYAML(schema *Schema, data []byte) (*Values, error) {
	if schema == nil {
		return nil, fmt.Errorf("guikit: parse values: %w", ErrNilSchema)
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("guikit: parse values: %w", err)
	}
	if m == nil {
		m = map[string]any{}
	}
	return ValuesFromMap(schema, m)
}
